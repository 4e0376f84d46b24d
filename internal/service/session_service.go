package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"

	"activity-signup-client/internal/api"
	"activity-signup-client/internal/model"
	"activity-signup-client/internal/repository"
)

// Ключи локального хранилища, под которыми лежит сессия учителя.
const (
	TokenKey    = "teacherToken"
	UsernameKey = "teacherUsername"
)

// LocalStorage описывает строковое key-value хранилище, переживающее перезапуск.
type LocalStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// AuthAPI описывает серверные методы входа и выхода.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (api.LoginReply, error)
	Logout(ctx context.Context, header http.Header) error
}

// LoginResult — сессия, выданная сервером, и его сообщение для пользователя.
type LoginResult struct {
	Session model.Session
	Message string
}

// SessionManager хранит сессию учителя и сообщает наблюдателям о её изменениях.
type SessionManager struct {
	store LocalStorage
	auth  AuthAPI
	log   *slog.Logger

	mu        sync.RWMutex
	session   model.Session
	observers []func(model.Session)
}

// NewSessionManager создаёт менеджер и восстанавливает сессию из локального хранилища.
func NewSessionManager(ctx context.Context, store LocalStorage, auth AuthAPI, log *slog.Logger) (*SessionManager, error) {
	m := &SessionManager{
		store: store,
		auth:  auth,
		log:   log,
	}

	token, err := readKey(ctx, store, TokenKey)
	if err != nil {
		return nil, err
	}
	username, err := readKey(ctx, store, UsernameKey)
	if err != nil {
		return nil, err
	}
	m.session = model.Session{Token: token, Username: username}

	return m, nil
}

func readKey(ctx context.Context, store LocalStorage, key string) (string, error) {
	v, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return "", nil
		}
		return "", err
	}
	return v, nil
}

// Current возвращает копию текущей сессии.
func (m *SessionManager) Current() model.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// IsLoggedIn сообщает, что токен не пуст.
func (m *SessionManager) IsLoggedIn() bool {
	return !m.Current().IsZero()
}

// AuthHeader возвращает заголовки авторизации: пустые, если учитель не вошёл.
func (m *SessionManager) AuthHeader() http.Header {
	h := http.Header{}
	if s := m.Current(); !s.IsZero() {
		h.Set(api.TokenHeader, s.Token)
	}
	return h
}

// Observe регистрирует наблюдателя. Наблюдатели вызываются после каждого изменения сессии.
func (m *SessionManager) Observe(fn func(model.Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, fn)
}

// Login выполняет вход учителя и сохраняет сессию.
func (m *SessionManager) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return LoginResult{}, ErrValidation("Please enter username and password.")
	}

	reply, err := m.auth.Login(ctx, username, password)
	if err != nil {
		return LoginResult{}, ErrRequest("Failed to login. Please try again.", err)
	}
	if !reply.OK() {
		return LoginResult{}, ErrServer(reply.Status, firstNonEmpty(reply.Detail, "Login failed."))
	}

	s := model.Session{Token: reply.Token, Username: reply.Username}
	if err := m.persist(ctx, s); err != nil {
		m.removeKeys(ctx)
		return LoginResult{}, ErrRequest("Failed to login. Please try again.", err)
	}
	m.set(s)

	m.log.Info("teacher logged in", slog.String("username", s.Username))
	return LoginResult{Session: s, Message: reply.Message}, nil
}

// Logout уведомляет сервер (ошибка игнорируется) и безусловно сбрасывает сессию.
func (m *SessionManager) Logout(ctx context.Context) {
	if err := m.auth.Logout(ctx, m.AuthHeader()); err != nil {
		m.log.Warn("logout notification failed", slog.Any("err", err))
	}
	m.Clear(ctx)
}

// Clear сбрасывает сессию без обращения к серверу.
func (m *SessionManager) Clear(ctx context.Context) {
	m.removeKeys(ctx)
	m.set(model.Session{})
}

// removeKeys удаляет оба ключа сессии из хранилища.
func (m *SessionManager) removeKeys(ctx context.Context) {
	for _, key := range []string{TokenKey, UsernameKey} {
		if err := m.store.Remove(ctx, key); err != nil {
			m.log.Error("failed to remove session key",
				slog.String("key", key),
				slog.Any("err", err),
			)
		}
	}
}

func (m *SessionManager) persist(ctx context.Context, s model.Session) error {
	if err := m.store.Set(ctx, TokenKey, s.Token); err != nil {
		return err
	}
	return m.store.Set(ctx, UsernameKey, s.Username)
}

func (m *SessionManager) set(s model.Session) {
	m.mu.Lock()
	m.session = s
	observers := slices.Clone(m.observers)
	m.mu.Unlock()

	for _, fn := range observers {
		fn(s)
	}
}
