// Package model содержит доменные структуры клиента: занятия и сессию учителя.
package model

// Activity описывает занятие, на которое можно записать ученика.
// Name является ключом в коллекции и в JSON-теле не передаётся.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft возвращает количество свободных мест.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// HasParticipant проверяет, записан ли участник с указанным email.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
