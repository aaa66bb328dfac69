// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-creds-manager/internal/config"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/utils"
	"github.com/MKhiriev/go-creds-manager/models"
)

type httpServerAdapter struct {
	// client bounds every call with the request timeout; stream has no
	// timeout because subscriptions stay open indefinitely.
	client *utils.HTTPClient
	stream *utils.HTTPClient

	hasher *utils.Hasher

	mu            sync.RWMutex
	token         string
	onStreamError func(models.Path, error)

	logger *logger.Logger
}

// NewHTTPServerAdapter builds the adapter for the server at
// cfg.HTTPAddress, which may omit the scheme.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(utils.WithBaseURL(baseURL), utils.WithTimeout(cfg.RequestTimeout)),
		stream: utils.NewHTTPClient(utils.WithBaseURL(baseURL)),
		hasher: utils.NewHasher(cfg.HashKey),
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

// dataURL is the API path of p. Subfolder names are escaped so spaces and
// other reserved characters survive routing.
func dataURL(p models.Path) string {
	if p.IsFolder() {
		return "/api/data/" + string(p.FolderType)
	}
	return "/api/data/" + string(p.FolderType) + "/" + url.PathEscape(p.Subfolder)
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) SetStreamErrorHandler(fn func(path models.Path, err error)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onStreamError = fn
}

func (h *httpServerAdapter) streamErrorHandler() func(models.Path, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.onStreamError
}

// Login POSTs creds to /api/auth/login. The token is taken from the
// Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	var info models.SessionInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&info).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrNoToken, err)
	}

	identifier := info.Identifier
	if identifier == "" {
		identifier, err = utils.ParseIdentifierFromJWT(token)
	}
	if err != nil || identifier == "" {
		identifier = creds.Identifier
	}

	h.SetToken(token)
	h.logger.Debug().Str("func", "*httpServerAdapter.Login").Str("identifier", identifier).Msg("signed in")

	return models.Token{SignedString: token, Identifier: identifier}, nil
}

func (h *httpServerAdapter) Session(ctx context.Context) (models.SessionInfo, error) {
	var info models.SessionInfo

	resp, err := h.authedRequest(ctx).SetResult(&info).Get("/api/auth/session")
	if err != nil {
		return models.SessionInfo{}, fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) Folder(ctx context.Context, ft models.FolderType) (models.FolderData, error) {
	body, err := h.get(ctx, models.FolderPath(ft))
	if err != nil {
		return nil, err
	}
	return models.DecodeFolderData(body)
}

func (h *httpServerAdapter) Item(ctx context.Context, path models.Path) (models.DataItem, error) {
	body, err := h.get(ctx, path)
	if err != nil {
		return nil, err
	}
	return models.DecodeDataItem(body)
}

func (h *httpServerAdapter) get(ctx context.Context, path models.Path) ([]byte, error) {
	resp, err := h.authedRequest(ctx).Get(dataURL(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// Write PUTs the item as JSON. The body is signed with the HashSHA256
// header when a hash key is configured.
func (h *httpServerAdapter) Write(ctx context.Context, path models.Path, item models.DataItem) error {
	body, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if h.hasher.Enabled() {
		req.SetHeader(utils.HashHeader, h.hasher.SumHex(body))
	}

	resp, err := req.Put(dataURL(path))
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Delete(ctx context.Context, path models.Path) error {
	resp, err := h.authedRequest(ctx).Delete(dataURL(path))
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.withToken(h.client.R().SetContext(ctx))
}

func (h *httpServerAdapter) withToken(req *resty.Request) *resty.Request {
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
