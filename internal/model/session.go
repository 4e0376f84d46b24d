package model

// Session описывает сессию учителя: непрозрачный токен и имя пользователя.
// Пустой токен означает, что учитель не вошёл в систему.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// IsZero сообщает, что сессия пуста (режим ученика).
func (s Session) IsZero() bool {
	return s.Token == ""
}
