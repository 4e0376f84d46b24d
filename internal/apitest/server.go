// Package apitest поднимает в процессе фейковый сервер занятий для тестов клиента.
// Контракт совпадает с настоящим сервером: коды ответов, тела ошибок, заголовок токена.
package apitest

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/tidwall/sjson"

	"activity-signup-client/internal/api"
	"activity-signup-client/internal/model"
)

// Server хранит занятия и сессии учителей в памяти.
type Server struct {
	mu         sync.Mutex
	teachers   map[string]string
	sessions   map[string]string
	activities []model.Activity

	requests atomic.Int64
	failList atomic.Bool
}

// NewServer создаёт сервер с заданными учётными записями (username → password) и занятиями.
func NewServer(teachers map[string]string, activities []model.Activity) *Server {
	copied := make([]model.Activity, len(activities))
	for i, a := range activities {
		a.Participants = append([]string{}, a.Participants...)
		copied[i] = a
	}
	return &Server{
		teachers:   teachers,
		sessions:   make(map[string]string),
		activities: copied,
	}
}

// Requests возвращает количество обработанных запросов.
func (s *Server) Requests() int64 {
	return s.requests.Load()
}

// FailActivities заставляет GET /activities отвечать 500.
func (s *Server) FailActivities(fail bool) {
	s.failList.Store(fail)
}

// RevokeAll забывает все выданные токены, имитируя перезапуск сервера.
func (s *Server) RevokeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]string)
}

// Router возвращает chi-роутер с эндпоинтами сервера занятий.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.countRequests)

	r.Get("/activities", s.handleList)

	r.Route("/activities/{name}", func(r chi.Router) {
		r.Post("/signup", s.handleSignup)
		r.Delete("/unregister", s.handleUnregister)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)
	})

	return r
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	if s.failList.Load() {
		writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Порядок ключей важен для клиента, поэтому объект собирается вручную.
	body := []byte(`{}`)
	for _, a := range s.activities {
		var err error
		body, err = sjson.SetBytes(body, escapeKey(a.Name), a)
		if err != nil {
			writeDetail(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid JSON")
		return
	}

	s.mu.Lock()
	expected, ok := s.teachers[req.Username]
	if !ok || expected != req.Password {
		s.mu.Unlock()
		writeDetail(w, http.StatusUnauthorized, "Invalid teacher credentials")
		return
	}
	token := newToken()
	s.sessions[token] = req.Username
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{
		"message":  "Teacher login successful",
		"token":    token,
		"username": req.Username,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(api.TokenHeader)

	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(a *model.Activity, email string) (string, int, string) {
		if a.HasParticipant(email) {
			return "", http.StatusBadRequest, "Student is already signed up"
		}
		a.Participants = append(a.Participants, email)
		return "Signed up " + email + " for " + a.Name, http.StatusOK, ""
	})
}

func (s *Server) handleUnregister(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(a *model.Activity, email string) (string, int, string) {
		if !a.HasParticipant(email) {
			return "", http.StatusBadRequest, "Student is not signed up for this activity"
		}
		kept := a.Participants[:0]
		for _, p := range a.Participants {
			if p != email {
				kept = append(kept, p)
			}
		}
		a.Participants = kept
		return "Unregistered " + email + " from " + a.Name, http.StatusOK, ""
	})
}

type mutation func(a *model.Activity, email string) (message string, status int, detail string)

func (s *Server) mutate(w http.ResponseWriter, r *http.Request, fn mutation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	teacher, ok := s.sessions[r.Header.Get(api.TokenHeader)]
	if !ok {
		writeDetail(w, http.StatusForbidden, "Teacher login is required for this action")
		return
	}

	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid activity name")
		return
	}
	email := r.URL.Query().Get("email")
	if email == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "email is required")
		return
	}

	for i := range s.activities {
		if s.activities[i].Name != name {
			continue
		}
		msg, status, detail := fn(&s.activities[i], email)
		if detail != "" {
			writeDetail(w, status, detail)
			return
		}
		writeJSON(w, status, map[string]string{
			"message":    msg,
			"updated_by": teacher,
		})
		return
	}
	writeDetail(w, http.StatusNotFound, "Activity not found")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func newToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

// escapeKey экранирует символы, которые sjson трактует как синтаксис пути.
func escapeKey(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', ':', '!', '=', '<', '>', '%':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
