// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-content-admin/internal/config"
	"github.com/MKhiriev/go-content-admin/internal/logger"
	"github.com/MKhiriev/go-content-admin/internal/utils"
	"github.com/MKhiriev/go-content-admin/models"
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the operation trace id on every request.
const TraceIDHeader = "X-Trace-ID"

type httpContentAdapter struct {
	client   *utils.HTTPClient
	resource models.Resource

	token models.Token
	ids   *utils.UUIDGenerator
	now   func() time.Time

	logger *logger.Logger
}

// NewHTTPContentAdapter constructs a resty implementation of [ContentAPI]
// bound to resource.
//
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. apiToken may be empty, a bare token or a
// "Bearer <token>" value; JWT claims are read without verification so that
// an expired token fails fast with [ErrTokenExpired].
//
// Returns an error if the address cannot be parsed, the resource is unknown,
// or the token is a malformed JWT.
func NewHTTPContentAdapter(adapterCfg config.Adapter, apiToken string, resource models.Resource, logger *logger.Logger) (ContentAPI, error) {
	if !resource.Valid() {
		return nil, fmt.Errorf("unknown resource %q", resource)
	}

	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	var token models.Token
	if strings.TrimSpace(apiToken) != "" {
		token, err = utils.ParseToken(apiToken)
		if err != nil {
			return nil, fmt.Errorf("invalid api token: %w", err)
		}
	}

	return &httpContentAdapter{
		client:   utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		resource: resource,
		token:    token,
		ids:      utils.NewUUIDGenerator(),
		now:      time.Now,
		logger:   logger,
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

// Resource implements [ContentAPI].
func (h *httpContentAdapter) Resource() models.Resource {
	return h.resource
}

// GetAll implements [ContentAPI]. GET /api/{resource}.
func (h *httpContentAdapter) GetAll(ctx context.Context, categories []models.Category) ([]models.Item, error) {
	return h.list(ctx, "get all", h.itemsPath(""), nil, categories)
}

// Search implements [ContentAPI]. GET /api/{resource}/search?q=query.
func (h *httpContentAdapter) Search(ctx context.Context, query string, categories []models.Category) ([]models.Item, error) {
	return h.list(ctx, "search", h.itemsPath("/search"), map[string]string{"q": query}, categories)
}

// GetDeleted implements [ContentAPI]. GET /api/{resource}/deleted.
func (h *httpContentAdapter) GetDeleted(ctx context.Context, categories []models.Category) ([]models.Item, error) {
	return h.list(ctx, "get deleted", h.itemsPath("/deleted"), nil, categories)
}

// GetByID implements [ContentAPI]. GET /api/{resource}/{id}.
func (h *httpContentAdapter) GetByID(ctx context.Context, id int64, categories []models.Category) (models.Item, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Item{}, err
	}

	var result models.ItemResponse
	resp, err := req.SetResult(&result).Get(h.itemPath(id, ""))
	if err != nil {
		return models.Item{}, fmt.Errorf("get by id request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return models.AttachCategories([]models.Item{result.Data}, categories)[0], nil
}

// Create implements [ContentAPI]. POST /api/{resource}.
func (h *httpContentAdapter) Create(ctx context.Context, payload models.ItemPayload) (models.Item, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Item{}, err
	}

	var result models.ItemResponse
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&result).
		Post(h.itemsPath(""))
	if err != nil {
		return models.Item{}, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return result.Data, nil
}

// Update implements [ContentAPI]. PATCH /api/{resource}/{id} with only the
// changed fields.
func (h *httpContentAdapter) Update(ctx context.Context, id int64, patch models.ItemPatch) (models.Item, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Item{}, err
	}

	var result models.ItemResponse
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&result).
		Patch(h.itemPath(id, ""))
	if err != nil {
		return models.Item{}, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return result.Data, nil
}

// Delete implements [ContentAPI]. DELETE /api/{resource}/{id}.
func (h *httpContentAdapter) Delete(ctx context.Context, id int64) error {
	return h.send(ctx, "delete", resty.MethodDelete, h.itemPath(id, ""), nil)
}

// Restore implements [ContentAPI]. POST /api/{resource}/{id}/restore.
func (h *httpContentAdapter) Restore(ctx context.Context, id int64) error {
	return h.send(ctx, "restore", resty.MethodPost, h.itemPath(id, "/restore"), nil)
}

// HardDelete implements [ContentAPI]. DELETE /api/{resource}/{id}/permanent.
func (h *httpContentAdapter) HardDelete(ctx context.Context, id int64) error {
	return h.send(ctx, "hard delete", resty.MethodDelete, h.itemPath(id, "/permanent"), nil)
}

// GetCategories implements [ContentAPI]. GET /api/categories.
func (h *httpContentAdapter) GetCategories(ctx context.Context) ([]models.Category, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var result models.CategoriesResponse
	resp, err := req.SetResult(&result).Get("/api/categories")
	if err != nil {
		return nil, fmt.Errorf("get categories request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Data, nil
}

// CreateCategory implements [ContentAPI]. POST /api/categories.
func (h *httpContentAdapter) CreateCategory(ctx context.Context, payload models.CategoryPayload) error {
	return h.send(ctx, "create category", resty.MethodPost, "/api/categories", payload)
}

// DeleteCategory implements [ContentAPI]. DELETE /api/categories/{id}.
func (h *httpContentAdapter) DeleteCategory(ctx context.Context, id int64) error {
	return h.send(ctx, "delete category", resty.MethodDelete, "/api/categories/"+strconv.FormatInt(id, 10), nil)
}

func (h *httpContentAdapter) list(ctx context.Context, op, path string, query map[string]string, categories []models.Category) ([]models.Item, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var result models.ListResponse
	resp, err := req.SetQueryParams(query).SetResult(&result).Get(path)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	items := result.Data
	if items == nil {
		items = []models.Item{}
	}
	return models.AttachCategories(items, categories), nil
}

func (h *httpContentAdapter) send(ctx context.Context, op, method, path string, body any) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}

	return mapHTTPError(resp)
}

func (h *httpContentAdapter) itemsPath(suffix string) string {
	return "/api/" + h.resource.String() + suffix
}

func (h *httpContentAdapter) itemPath(id int64, suffix string) string {
	return h.itemsPath("/" + strconv.FormatInt(id, 10) + suffix)
}

// authedRequest prepares a request carrying the bearer token and the trace
// id of ctx. A fresh trace id is generated when ctx has none.
func (h *httpContentAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	if h.token.Expired(h.now()) {
		h.logger.Warn().
			Str("func", "httpContentAdapter.authedRequest").
			Time("expires_at", *h.token.ExpiresAt).
			Msg("api token is expired")
		return nil, ErrTokenExpired
	}

	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = h.ids.Generate()
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(TraceIDHeader, traceID)
	if token := h.token.String(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req, nil
}
