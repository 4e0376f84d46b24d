package service

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"activity-signup-client/internal/api"
)

// MutationService записывает и отписывает учеников от имени вошедшего учителя.
type MutationService struct {
	api      ActivityAPI
	sessions *SessionManager
	log      *slog.Logger
}

// NewMutationService создаёт сервис изменяющих операций.
func NewMutationService(api ActivityAPI, sessions *SessionManager, log *slog.Logger) *MutationService {
	return &MutationService{
		api:      api,
		sessions: sessions,
		log:      log,
	}
}

// Signup записывает ученика на занятие и возвращает сообщение сервера.
func (s *MutationService) Signup(ctx context.Context, activity, email string) (string, error) {
	return s.run(ctx, "signup", activity, email, s.api.Signup, "Failed to sign up. Please try again.")
}

// Unregister отписывает ученика от занятия и возвращает сообщение сервера.
func (s *MutationService) Unregister(ctx context.Context, activity, email string) (string, error) {
	return s.run(ctx, "unregister", activity, email, s.api.Unregister, "Failed to unregister. Please try again.")
}

type mutateFunc func(ctx context.Context, header http.Header, activity, email string) (api.Reply, error)

func (s *MutationService) run(ctx context.Context, op, activity, email string, call mutateFunc, requestFailed string) (string, error) {
	if !s.sessions.IsLoggedIn() {
		return "", ErrValidation("Teacher login is required.")
	}
	if activity == "" || strings.TrimSpace(email) == "" {
		return "", ErrValidation("Please select an activity and enter an email.")
	}

	reply, err := call(ctx, s.sessions.AuthHeader(), activity, email)
	if err != nil {
		s.log.Error("mutation request failed",
			slog.String("op", op),
			slog.String("activity", activity),
			slog.Any("err", err),
		)
		return "", ErrRequest(requestFailed, err)
	}

	switch {
	case reply.Status == http.StatusForbidden:
		s.sessions.Clear(ctx)
		s.log.Warn("teacher session rejected by server", slog.String("op", op))
		return "", ErrAuth(firstNonEmpty(reply.Detail, "Teacher login required."))
	case reply.OK():
		s.log.Info("mutation applied",
			slog.String("op", op),
			slog.String("activity", activity),
			slog.String("updated_by", reply.UpdatedBy),
		)
		return reply.Message, nil
	default:
		return "", ErrServer(reply.Status, firstNonEmpty(reply.Detail, "An error occurred"))
	}
}
