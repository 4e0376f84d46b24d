package ui

import (
	"fmt"

	"activity-signup-client/internal/model"
)

// Mode — режим интерфейса.
type Mode string

const (
	ModeStudent Mode = "student"
	ModeTeacher Mode = "teacher"
)

// PlaceholderOption — первая опция селектора занятий.
const PlaceholderOption = "-- Select an activity --"

// LoadErrorText показывается вместо списка, если загрузка не удалась.
const LoadErrorText = "Failed to load activities. Please try again later."

// Page — снимок отрисованного интерфейса.
type Page struct {
	Mode          Mode   `json:"mode"`
	TeacherStatus string `json:"teacher_status"`

	ShowLoginButton        bool `json:"show_login_button"`
	ShowLogoutButton       bool `json:"show_logout_button"`
	ShowSignupForm         bool `json:"show_signup_form"`
	ShowTeacherRequiredMsg bool `json:"show_teacher_required_message"`

	MenuOpen      bool   `json:"menu_open"`
	LoginOpen     bool   `json:"login_open"`
	LoginUsername string `json:"login_username,omitempty"`

	Loading    bool     `json:"loading"`
	LoadError  string   `json:"load_error,omitempty"`
	Activities []Card   `json:"activities"`
	Options    []Option `json:"options"`

	Form   SignupForm `json:"form"`
	Banner *Banner    `json:"banner,omitempty"`
}

// Card — карточка одного занятия.
type Card struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Schedule     string        `json:"schedule"`
	SpotsLeft    int           `json:"spots_left"`
	Availability string        `json:"availability"`
	Participants []Participant `json:"participants"`
}

// Participant — строка участника. Removable выставляется только в режиме учителя.
type Participant struct {
	Email     string `json:"email"`
	Removable bool   `json:"removable"`
}

// Option — опция селектора занятий.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// SignupForm — текущие значения формы записи.
type SignupForm struct {
	Email    string `json:"email"`
	Activity string `json:"activity"`
}

func renderCard(a model.Activity, teacher bool) Card {
	participants := make([]Participant, 0, len(a.Participants))
	for _, email := range a.Participants {
		participants = append(participants, Participant{Email: email, Removable: teacher})
	}
	return Card{
		Name:         a.Name,
		Description:  a.Description,
		Schedule:     a.Schedule,
		SpotsLeft:    a.SpotsLeft(),
		Availability: fmt.Sprintf("%d spots left", a.SpotsLeft()),
		Participants: participants,
	}
}

func renderOptions(names []string, selected string) []Option {
	opts := make([]Option, 0, len(names)+1)
	opts = append(opts, Option{Value: "", Label: PlaceholderOption, Selected: selected == ""})
	for _, n := range names {
		opts = append(opts, Option{Value: n, Label: n, Selected: n == selected})
	}
	return opts
}
