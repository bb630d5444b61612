package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/promptdeck/promptdeck/internal/config"
	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/internal/utils"
	"github.com/promptdeck/promptdeck/models"
)

type httpGateway struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// authResult mirrors the body of a successful register or login response.
type authResult struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// NewHTTPGateway constructs the HTTP/REST implementation of [Gateway].
// It normalises and validates the base URL from cfg.ServerURL and configures
// the underlying client with the resolved base URL and request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a URL.
func NewHTTPGateway(cfg config.Client, logger *logger.Logger) (Gateway, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway server url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpGateway{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [Gateway]. The token is whitespace-trimmed; an empty
// string clears the stored token.
func (h *httpGateway) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [Gateway].
func (h *httpGateway) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [Gateway]. It POSTs the credentials to
// POST /api/auth/register, stores the returned token, and returns the new
// identity.
func (h *httpGateway) Register(ctx context.Context, user models.User) (models.Identity, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

// Login implements [Gateway]. It POSTs the credentials to
// POST /api/auth/login, stores the returned token, and returns the identity.
func (h *httpGateway) Login(ctx context.Context, user models.User) (models.Identity, error) {
	return h.authenticate(ctx, "/api/auth/login", user)
}

func (h *httpGateway) authenticate(ctx context.Context, path string, user models.User) (models.Identity, error) {
	var result authResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.Identity{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	if result.Token == "" {
		return models.Identity{}, fmt.Errorf("auth response carries no token")
	}

	h.SetToken(result.Token)
	return models.Identity{UserID: result.UserID, Email: result.Email}, nil
}

// FetchCommands implements [Gateway]. The endpoint is public; the list
// arrives newest first and is decoded as-is.
func (h *httpGateway) FetchCommands(ctx context.Context) ([]models.CommandRecord, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/commands/")
	if err != nil {
		return nil, fmt.Errorf("fetch commands request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.CommandRecord
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode commands response: %w", err)
	}

	return records, nil
}

// GetCommand implements [Gateway].
func (h *httpGateway) GetCommand(ctx context.Context, id string) (models.CommandRecord, error) {
	var record models.CommandRecord

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&record).
		Get("/api/commands/" + url.PathEscape(id))
	if err != nil {
		return models.CommandRecord{}, fmt.Errorf("get command request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CommandRecord{}, err
	}

	return record, nil
}

// CreateCommand implements [Gateway].
func (h *httpGateway) CreateCommand(ctx context.Context, input models.NewCommand) (models.CommandRecord, error) {
	var record models.CommandRecord

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&record).
		Post("/api/commands/")
	if err != nil {
		return models.CommandRecord{}, fmt.Errorf("create command request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CommandRecord{}, err
	}

	return record, nil
}

// PatchCommand implements [Gateway].
func (h *httpGateway) PatchCommand(ctx context.Context, id string, patch models.CommandPatch) (models.CommandRecord, error) {
	var record models.CommandRecord

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&record).
		Patch("/api/commands/" + url.PathEscape(id))
	if err != nil {
		return models.CommandRecord{}, fmt.Errorf("patch command request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CommandRecord{}, err
	}

	return record, nil
}

// DeleteCommand implements [Gateway].
func (h *httpGateway) DeleteCommand(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/commands/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete command request: %w", err)
	}

	return mapHTTPError(resp)
}

// RecordView implements [Gateway]. The endpoint is public.
func (h *httpGateway) RecordView(ctx context.Context, id string) error {
	resp, err := h.client.R().SetContext(ctx).Post("/api/commands/" + url.PathEscape(id) + "/views")
	if err != nil {
		return fmt.Errorf("record view request: %w", err)
	}

	return mapHTTPError(resp)
}

// RecordCopy implements [Gateway]. The endpoint is public.
func (h *httpGateway) RecordCopy(ctx context.Context, id string) error {
	resp, err := h.client.R().SetContext(ctx).Post("/api/commands/" + url.PathEscape(id) + "/copies")
	if err != nil {
		return fmt.Errorf("record copy request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListFavorites implements [Gateway].
func (h *httpGateway) ListFavorites(ctx context.Context) ([]string, error) {
	resp, err := h.authedRequest(ctx).Get("/api/favorites/")
	if err != nil {
		return nil, fmt.Errorf("list favorites request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var commandIDs []string
	if err = json.Unmarshal(resp.Body(), &commandIDs); err != nil {
		return nil, fmt.Errorf("decode favorites response: %w", err)
	}

	return commandIDs, nil
}

// AddFavorite implements [Gateway].
func (h *httpGateway) AddFavorite(ctx context.Context, commandID string) (models.Favorite, error) {
	var favorite models.Favorite

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.Favorite{CommandID: commandID}).
		SetResult(&favorite).
		Post("/api/favorites/")
	if err != nil {
		return models.Favorite{}, fmt.Errorf("add favorite request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Favorite{}, err
	}

	return favorite, nil
}

// RemoveFavorite implements [Gateway].
func (h *httpGateway) RemoveFavorite(ctx context.Context, commandID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/favorites/" + url.PathEscape(commandID))
	if err != nil {
		return fmt.Errorf("remove favorite request: %w", err)
	}

	return mapHTTPError(resp)
}

// LogActivity implements [Gateway]. The token is attached when present so the
// row is linked to the user; anonymous entries go through without one.
func (h *httpGateway) LogActivity(ctx context.Context, entry models.ActivityEntry) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(entry).
		Post("/api/activities/")
	if err != nil {
		return fmt.Errorf("log activity request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpGateway) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
