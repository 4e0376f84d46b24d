package http

import (
	"net/http"
)

// Все события после обработки перенаправляют на /view, чтобы повтор
// страницы в браузере не отправлял форму второй раз.
func (h *Handler) done(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/view", http.StatusSeeOther)
}

func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request, handlerName string) bool {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, handlerName, http.StatusBadRequest, "BAD_REQUEST", "invalid form", err)
		return false
	}
	return true
}

func (h *Handler) handleMenuToggle(w http.ResponseWriter, r *http.Request) {
	h.App.ToggleMenu()
	h.done(w, r)
}

func (h *Handler) handleLoginOpen(w http.ResponseWriter, r *http.Request) {
	h.App.OpenLogin()
	h.done(w, r)
}

func (h *Handler) handleLoginCancel(w http.ResponseWriter, r *http.Request) {
	h.App.CloseLogin()
	h.done(w, r)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	const handlerName = "login"

	if !h.parseForm(w, r, handlerName) {
		return
	}
	h.App.Login(r.Context(), r.PostForm.Get("username"), r.PostForm.Get("password"))
	h.done(w, r)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.App.Logout(r.Context())
	h.done(w, r)
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	const handlerName = "signup"

	if !h.parseForm(w, r, handlerName) {
		return
	}
	h.App.Signup(r.Context(), r.PostForm.Get("activity"), r.PostForm.Get("email"))
	h.done(w, r)
}

func (h *Handler) handleUnregister(w http.ResponseWriter, r *http.Request) {
	const handlerName = "unregister"

	if !h.parseForm(w, r, handlerName) {
		return
	}
	h.App.Unregister(r.Context(), r.PostForm.Get("activity"), r.PostForm.Get("email"))
	h.done(w, r)
}
