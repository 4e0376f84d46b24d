package service

import (
	"context"
	"net/http"

	"activity-signup-client/internal/api"
	"activity-signup-client/internal/model"
)

// ActivityAPI описывает серверные методы для работы с занятиями.
type ActivityAPI interface {
	ListActivities(ctx context.Context) ([]model.Activity, error)
	Signup(ctx context.Context, header http.Header, activity, email string) (api.Reply, error)
	Unregister(ctx context.Context, header http.Header, activity, email string) (api.Reply, error)
}

// ActivityService загружает коллекцию занятий с сервера.
type ActivityService struct {
	api ActivityAPI
}

// NewActivityService создаёт сервис чтения занятий.
func NewActivityService(api ActivityAPI) *ActivityService {
	return &ActivityService{api: api}
}

// List возвращает все занятия в порядке сервера.
func (s *ActivityService) List(ctx context.Context) ([]model.Activity, error) {
	activities, err := s.api.ListActivities(ctx)
	if err != nil {
		return nil, ErrRequest("Failed to load activities. Please try again later.", err)
	}
	return activities, nil
}
