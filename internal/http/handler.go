package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"activity-signup-client/internal/ui"
)

// App описывает обработчики событий клиентского приложения.
type App interface {
	Load(ctx context.Context)
	Refresh(ctx context.Context)
	Login(ctx context.Context, username, password string)
	Logout(ctx context.Context)
	Signup(ctx context.Context, activity, email string)
	Unregister(ctx context.Context, activity, email string)
	ToggleMenu()
	OpenLogin()
	CloseLogin()
	Snapshot() ui.Page
}

type Handler struct {
	App            App
	Log            *slog.Logger
	AllowedOrigins []string
}

func NewHandler(app App, allowedOrigins []string, log *slog.Logger) *Handler {
	return &Handler{
		App:            app,
		Log:            log,
		AllowedOrigins: allowedOrigins,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.handleHealth)

	r.Get("/", h.handleLoad)
	r.Get("/view", h.handleView)

	r.Group(func(r chi.Router) {
		r.Use(h.requireSameOrigin)

		r.Post("/menu/toggle", h.handleMenuToggle)

		r.Route("/login", func(r chi.Router) {
			r.Post("/", h.handleLogin)
			r.Post("/open", h.handleLoginOpen)
			r.Post("/cancel", h.handleLoginCancel)
		})
		r.Post("/logout", h.handleLogout)

		r.Post("/signup", h.handleSignup)
		r.Post("/unregister", h.handleUnregister)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Get("/view", h.handleViewJSON)
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, handlerName string, status int, code, message string, err error) {
	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("code", code),
		slog.String("message", message),
		slog.Any("err", err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := errorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
