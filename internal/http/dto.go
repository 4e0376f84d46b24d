// Package http диспетчеризует события браузера в обработчики клиентского приложения
// и отрисовывает его состояние в HTML и JSON.
package http

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
