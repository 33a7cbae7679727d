package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress (a missing scheme
// means http), configures the request timeout, and keys the request body
// signer with appCfg.HashKey (no signing when empty).
//
// Returns [ErrInvalidAddress] if adapterCfg.HTTPAddress is empty or cannot be
// parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher: utils.NewHasher(appCfg.HashKey),
		logger: logger,
	}, nil
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

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Identity, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

// Login implements [ServerAdapter]. POST /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Identity, error) {
	return h.authenticate(ctx, "/api/auth/login", models.User{Email: user.Email, Password: user.Password})
}

// authenticate posts credentials and keeps the bearer token of the
// Authorization response header.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.Identity, error) {
	var identity models.Identity

	req, err := h.signedRequest(ctx, user)
	if err != nil {
		return models.Identity{}, err
	}

	resp, err := req.SetResult(&identity).Post(path)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.authenticate").Str("path", path).Msg("request failed")
		return models.Identity{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Identity{}, fmt.Errorf("auth parse bearer token: %w", err)
	}

	h.SetToken(token)
	return identity, nil
}

// CurrentUser implements [ServerAdapter]. GET /api/auth/user.
func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.Identity, error) {
	var identity models.Identity

	resp, err := h.authedRequest(ctx).SetResult(&identity).Get("/api/auth/user")
	if err != nil {
		return models.Identity{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	return identity, nil
}

// GetProfile implements [ServerAdapter]. GET /api/profiles/me.
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.authedRequest(ctx).SetResult(&profile).Get("/api/profiles/me")
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

// ListNotes implements [ServerAdapter]. GET /api/notes?order=...
func (h *httpServerAdapter) ListNotes(ctx context.Context, order models.SortOrder) ([]models.Note, error) {
	if order == "" {
		order = models.SortNewestFirst
	}

	notes := make([]models.Note, 0)
	resp, err := h.authedRequest(ctx).
		SetQueryParam("order", string(order)).
		SetResult(&notes).
		Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

// CreateNote implements [ServerAdapter]. POST /api/notes.
func (h *httpServerAdapter) CreateNote(ctx context.Context, note models.NewNote) (models.Note, error) {
	var created models.Note

	req, err := h.signedRequest(ctx, note)
	if err != nil {
		return models.Note{}, err
	}

	resp, err := req.SetResult(&created).Post("/api/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return created, nil
}

// UpdateNote implements [ServerAdapter]. PATCH /api/notes/{id}.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	var updated models.Note

	req, err := h.signedRequest(ctx, update)
	if err != nil {
		return models.Note{}, err
	}

	resp, err := req.
		SetPathParam("id", update.ID).
		SetResult(&updated).
		Patch("/api/notes/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return updated, nil
}

// DeleteNote implements [ServerAdapter]. DELETE /api/notes/{id}.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/notes/{id}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// RenderNoteHTML implements [ServerAdapter]. GET /api/notes/{id}/html.
func (h *httpServerAdapter) RenderNoteHTML(ctx context.Context, id string) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Accept", "text/html").
		SetPathParam("id", id).
		Get("/api/notes/{id}/html")
	if err != nil {
		return nil, fmt.Errorf("render note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Version implements [ServerAdapter]. GET /api/version/.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// signedRequest is an authed request with a JSON body and, when a hash key
// is configured, the HMAC of that body in [utils.HashHeader].
func (h *httpServerAdapter) signedRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := h.authedRequest(ctx).SetBody(payload)
	if h.hasher.Enabled() {
		req.SetHeader(utils.HashHeader, h.hasher.SumHex(payload))
	}

	return req, nil
}
