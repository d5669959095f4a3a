package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/shield-chat/internal/config"
	"github.com/MKhiriev/shield-chat/internal/logger"
	"github.com/MKhiriev/shield-chat/internal/utils"
	"github.com/MKhiriev/shield-chat/models"
)

type httpStoreAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPStoreAdapter constructs an HTTP/REST implementation of
// [StoreAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPStoreAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (StoreAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpStoreAdapter{client: cli, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse address: %w", err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("address has no host: %s", raw)
	}

	return strings.TrimRight(parsed.String(), "/"), nil
}

func (h *httpStoreAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpStoreAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpStoreAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	token := h.Token()
	if token == "" {
		return models.User{}, fmt.Errorf("no session token: %w", ErrUnauthorized)
	}

	resp, err := h.authedRequest(ctx).Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode current user response: %w", err)
	}

	// Older auth backends omit the id in /me; the token subject claim is
	// authoritative either way.
	if user.UserId == "" {
		if sub, subErr := utils.ParseUserIdFromJWT(token); subErr == nil {
			user.UserId = sub
		}
	}

	return user, nil
}

func (h *httpStoreAdapter) ListMessages(ctx context.Context, room string) ([]models.Message, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("orderBy", "createdAt").
		Get("/api/rooms/" + url.PathEscape(room) + "/messages")
	if err != nil {
		return nil, fmt.Errorf("list messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var messages []models.Message
	if err = json.Unmarshal(resp.Body(), &messages); err != nil {
		return nil, fmt.Errorf("decode messages snapshot: %w", err)
	}

	return messages, nil
}

func (h *httpStoreAdapter) AppendMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post("/api/rooms/" + url.PathEscape(msg.Room) + "/messages")
	if err != nil {
		return models.Message{}, fmt.Errorf("append message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	var committed models.Message
	if err = json.Unmarshal(resp.Body(), &committed); err != nil {
		return models.Message{}, fmt.Errorf("decode append response: %w", err)
	}

	return committed, nil
}

func (h *httpStoreAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
