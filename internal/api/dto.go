// Package api реализует HTTP-клиент к серверу занятий.
package api

// TokenHeader — заголовок, в котором сервер ожидает токен учителя.
const TokenHeader = "X-Teacher-Token"

// RequestIDHeader — заголовок для корреляции запросов в логах.
const RequestIDHeader = "X-Request-ID"

// Reply описывает ответ сервера на изменяющий запрос.
// Status содержит HTTP-код, остальные поля заполняются из тела ответа.
// Detail заполняется, только если сервер прислал detail строкой: ошибки
// валидации приходят массивом и текста для пользователя не несут.
type Reply struct {
	Status    int    `json:"-"`
	Message   string `json:"message"`
	UpdatedBy string `json:"updated_by,omitempty"`
	Detail    string `json:"-"`
}

// OK сообщает, что сервер ответил кодом 2xx.
func (r Reply) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginReply описывает ответ на /auth/login.
type LoginReply struct {
	Status   int    `json:"-"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Message  string `json:"message"`
	Detail   string `json:"-"`
}

// OK сообщает, что вход выполнен.
func (r LoginReply) OK() bool {
	return r.Status >= 200 && r.Status < 300
}
