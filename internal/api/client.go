package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"activity-signup-client/internal/model"
)

// ErrUnexpectedStatus возвращается, если список занятий пришёл с кодом не 2xx.
var ErrUnexpectedStatus = errors.New("unexpected status")

// ErrMalformedBody возвращается, если тело ответа не разбирается как ожидаемый JSON.
var ErrMalformedBody = errors.New("malformed response body")

// maxBodySize ограничивает размер читаемого ответа.
const maxBodySize = 1 << 20

// Client ходит в REST API сервера занятий.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// NewClient создаёт клиента. Если hc == nil, используется клиент с таймаутом timeout.
func NewClient(baseURL string, hc *http.Client, timeout time.Duration, log *slog.Logger) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		log:     log,
	}
}

// ListActivities загружает всю коллекцию занятий.
// Порядок занятий совпадает с порядком ключей в ответе сервера.
func (c *Client) ListActivities(ctx context.Context) ([]model.Activity, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/activities", nil, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("list activities: %w: %d", ErrUnexpectedStatus, status)
	}
	return decodeActivities(body)
}

// Signup записывает ученика на занятие.
func (c *Client) Signup(ctx context.Context, header http.Header, activity, email string) (Reply, error) {
	return c.mutate(ctx, http.MethodPost, activityPath(activity, "signup", email), header)
}

// Unregister отписывает ученика от занятия.
func (c *Client) Unregister(ctx context.Context, header http.Header, activity, email string) (Reply, error) {
	return c.mutate(ctx, http.MethodDelete, activityPath(activity, "unregister", email), header)
}

// Login отправляет учётные данные учителя.
func (c *Client) Login(ctx context.Context, username, password string) (LoginReply, error) {
	payload, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return LoginReply{}, fmt.Errorf("encode login request: %w", err)
	}

	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")

	status, body, err := c.do(ctx, http.MethodPost, "/auth/login", hdr, payload)
	if err != nil {
		return LoginReply{}, err
	}

	var reply LoginReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return LoginReply{}, fmt.Errorf("decode login reply: %w: %v", ErrMalformedBody, err)
	}
	reply.Status = status
	reply.Detail = detailText(body)
	return reply, nil
}

// Logout уведомляет сервер о выходе. Тело ответа не разбирается.
func (c *Client) Logout(ctx context.Context, header http.Header) error {
	_, _, err := c.do(ctx, http.MethodPost, "/auth/logout", header, nil)
	return err
}

func (c *Client) mutate(ctx context.Context, method, path string, header http.Header) (Reply, error) {
	status, body, err := c.do(ctx, method, path, header, nil)
	if err != nil {
		return Reply{}, err
	}

	var reply Reply
	if err := json.Unmarshal(body, &reply); err != nil {
		return Reply{}, fmt.Errorf("decode reply: %w: %v", ErrMalformedBody, err)
	}
	reply.Status = status
	reply.Detail = detailText(body)
	return reply, nil
}

func (c *Client) do(ctx context.Context, method, path string, header http.Header, payload []byte) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("api request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.Any("err", err),
		)
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return 0, nil, fmt.Errorf("read body: %w", err)
	}

	c.log.Debug("api request",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", requestID),
		slog.Int("status", resp.StatusCode),
		slog.Duration("took", time.Since(started)),
	)
	return resp.StatusCode, data, nil
}

func detailText(body []byte) string {
	if d := gjson.GetBytes(body, "detail"); d.Type == gjson.String {
		return d.Str
	}
	return ""
}

func activityPath(activity, action, email string) string {
	q := url.Values{}
	q.Set("email", email)
	return "/activities/" + url.PathEscape(activity) + "/" + action + "?" + q.Encode()
}

// decodeActivities разбирает объект {name: activity}, сохраняя порядок ключей.
func decodeActivities(body []byte) ([]model.Activity, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("decode activities: %w", ErrMalformedBody)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, fmt.Errorf("decode activities: %w: expected object", ErrMalformedBody)
	}

	activities := make([]model.Activity, 0)
	var decodeErr error
	root.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			decodeErr = fmt.Errorf("decode activity %q: %w: expected object", key.String(), ErrMalformedBody)
			return false
		}
		var a model.Activity
		if err := json.Unmarshal([]byte(value.Raw), &a); err != nil {
			decodeErr = fmt.Errorf("decode activity %q: %w: %v", key.String(), ErrMalformedBody, err)
			return false
		}
		a.Name = key.String()
		if a.Participants == nil {
			a.Participants = []string{}
		}
		activities = append(activities, a)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return activities, nil
}
