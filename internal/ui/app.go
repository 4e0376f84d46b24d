// Package ui содержит состояние клиентского интерфейса и обработчики его событий.
// Слой не знает о способе доставки событий: его вызывает HTTP-диспетчер.
package ui

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"activity-signup-client/internal/model"
	"activity-signup-client/internal/service"
)

// App — клиентское приложение: сессия, список занятий, баннер и видимость элементов.
type App struct {
	sessions   *service.SessionManager
	activities *service.ActivityService
	mutations  *service.MutationService
	banner     *bannerSlot
	log        *slog.Logger

	mu            sync.RWMutex
	loaded        bool
	list          []model.Activity
	loadErr       string
	optionNames   []string
	menuOpen      bool
	loginOpen     bool
	loginUsername string
	form          SignupForm
}

// NewApp связывает сервисы с состоянием интерфейса и подписывается на изменения сессии.
func NewApp(
	sessions *service.SessionManager,
	activities *service.ActivityService,
	mutations *service.MutationService,
	bannerTTL time.Duration,
	log *slog.Logger,
) *App {
	a := &App{
		sessions:   sessions,
		activities: activities,
		mutations:  mutations,
		banner:     newBannerSlot(bannerTTL),
		log:        log,
	}
	sessions.Observe(a.onSessionChange)
	return a
}

func (a *App) onSessionChange(s model.Session) {
	a.mu.Lock()
	a.menuOpen = false
	a.mu.Unlock()

	mode := ModeStudent
	if !s.IsZero() {
		mode = ModeTeacher
	}
	a.log.Info("auth mode changed", slog.String("mode", string(mode)))
}

// Load обрабатывает загрузку страницы: сбрасывает временное состояние и обновляет список.
func (a *App) Load(ctx context.Context) {
	a.mu.Lock()
	a.menuOpen = false
	a.loginOpen = false
	a.form = SignupForm{}
	a.mu.Unlock()

	a.Refresh(ctx)
}

// Refresh перезагружает занятия с сервера и заменяет список и селектор.
// Ошибка не возвращается: вместо списка показывается сообщение.
func (a *App) Refresh(ctx context.Context) {
	list, err := a.activities.List(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.loaded = true

	if err != nil {
		a.log.Error("failed to fetch activities", slog.Any("err", err))
		a.list = nil
		a.loadErr = service.MessageOf(err, LoadErrorText)
		return
	}

	names := make([]string, 0, len(list))
	for _, act := range list {
		names = append(names, act.Name)
	}
	a.list = list
	a.loadErr = ""
	a.optionNames = names
	a.form.Activity = ""
}

// Login обрабатывает отправку формы входа.
func (a *App) Login(ctx context.Context, username, password string) {
	a.mu.Lock()
	a.loginUsername = username
	a.mu.Unlock()

	res, err := a.sessions.Login(ctx, username, password)
	if err != nil {
		a.fail("login", err)
		return
	}

	a.mu.Lock()
	a.loginOpen = false
	a.loginUsername = ""
	a.menuOpen = false
	a.mu.Unlock()

	a.banner.show(res.Message, BannerSuccess)
	a.Refresh(ctx)
}

// Logout обрабатывает кнопку выхода.
func (a *App) Logout(ctx context.Context) {
	a.sessions.Logout(ctx)

	a.mu.Lock()
	a.menuOpen = false
	a.mu.Unlock()

	a.banner.show("Logged out.", BannerInfo)
	a.Refresh(ctx)
}

// Signup обрабатывает отправку формы записи.
func (a *App) Signup(ctx context.Context, activity, email string) {
	a.mu.Lock()
	a.form = SignupForm{Email: email, Activity: activity}
	a.mu.Unlock()

	msg, err := a.mutations.Signup(ctx, activity, email)
	if err != nil {
		a.fail("signup", err)
		return
	}

	a.mu.Lock()
	a.form = SignupForm{}
	a.mu.Unlock()

	a.banner.show(msg, BannerSuccess)
	a.Refresh(ctx)
}

// Unregister обрабатывает кнопку удаления участника.
func (a *App) Unregister(ctx context.Context, activity, email string) {
	msg, err := a.mutations.Unregister(ctx, activity, email)
	if err != nil {
		a.fail("unregister", err)
		return
	}

	a.banner.show(msg, BannerSuccess)
	a.Refresh(ctx)
}

// ToggleMenu открывает или закрывает меню учителя.
func (a *App) ToggleMenu() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.menuOpen = !a.menuOpen
}

// OpenLogin показывает окно входа.
func (a *App) OpenLogin() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loginOpen = true
}

// CloseLogin скрывает окно входа.
func (a *App) CloseLogin() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loginOpen = false
}

func (a *App) fail(op string, err error) {
	if service.KindOf(err) == service.KindRequest {
		a.log.Error("request failed", slog.String("op", op), slog.Any("err", err))
	}
	a.banner.show(service.MessageOf(err, "An error occurred"), BannerError)
}

// Snapshot возвращает текущий вид интерфейса.
// Кнопки удаления участников строятся по текущей сессии, поэтому после сброса
// сессии они исчезают без повторной загрузки списка.
func (a *App) Snapshot() Page {
	session := a.sessions.Current()
	teacher := !session.IsZero()

	a.mu.RLock()
	defer a.mu.RUnlock()

	p := Page{
		Mode:                   ModeStudent,
		TeacherStatus:          "Student mode",
		ShowLoginButton:        !teacher,
		ShowLogoutButton:       teacher,
		ShowSignupForm:         teacher,
		ShowTeacherRequiredMsg: !teacher,
		MenuOpen:               a.menuOpen,
		LoginOpen:              a.loginOpen,
		LoginUsername:          a.loginUsername,
		Loading:                !a.loaded,
		LoadError:              a.loadErr,
		Activities:             make([]Card, 0, len(a.list)),
		Options:                renderOptions(a.optionNames, a.form.Activity),
		Form:                   a.form,
		Banner:                 a.banner.visible(),
	}
	if teacher {
		p.Mode = ModeTeacher
		p.TeacherStatus = "Teacher mode: " + session.Username
	}
	for _, act := range a.list {
		p.Activities = append(p.Activities, renderCard(act, teacher))
	}
	return p
}
