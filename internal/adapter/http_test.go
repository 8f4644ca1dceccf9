// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-content-admin/internal/config"
	"github.com/MKhiriev/go-content-admin/internal/logger"
	"github.com/MKhiriev/go-content-admin/internal/utils"
	"github.com/MKhiriev/go-content-admin/models"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpContentAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL, token string) *httpContentAdapter {
	t.Helper()
	a, err := NewHTTPContentAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: time.Second}, token, models.ResourceBlogs, logger.Nop())
	require.NoError(t, err)
	return a.(*httpContentAdapter)
}

func newServer(t *testing.T, r chi.Router) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// writeJSON answers like the content API does: a JSON body with the given status.
func writeJSON(w http.ResponseWriter, data any, status int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return 0, err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return w.Write(body)
}

var testCategories = []models.Category{{ID: 1, Name: "Audio"}, {ID: 2, Name: "News"}}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPContentAdapter_Validation(t *testing.T) {
	_, err := NewHTTPContentAdapter(config.Adapter{HTTPAddress: ""}, "", models.ResourceBlogs, logger.Nop())
	assert.Error(t, err)

	_, err = NewHTTPContentAdapter(config.Adapter{HTTPAddress: "localhost:1"}, "", models.Resource("users"), logger.Nop())
	assert.Error(t, err)

	_, err = NewHTTPContentAdapter(config.Adapter{HTTPAddress: "localhost:1"}, "a.b.c", models.ResourceBlogs, logger.Nop())
	assert.Error(t, err)

	a, err := NewHTTPContentAdapter(config.Adapter{HTTPAddress: "localhost:1"}, "", models.ResourceProducts, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, models.ResourceProducts, a.Resource())
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"localhost:8080", "http://localhost:8080", false},
		{"https://cms.example.com/", "https://cms.example.com", false},
		{"  ", "", true},
		{"http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── lists ────────────────────────────────────────────────────────────────────

func TestGetAll_AttachesCategories(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/blogs", func(w http.ResponseWriter, r *http.Request) {
		_, _ = writeJSON(w, models.ListResponse{Data: []models.Item{
			{ID: 1, Title: "A", CategoryID: 2},
			{ID: 2, Title: "B", CategoryID: 9},
		}}, http.StatusOK)
	})
	srv := newServer(t, r)

	items, err := newTestAdapter(t, srv.URL, "").GetAll(context.Background(), testCategories)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "News", items[0].Category)
	assert.Empty(t, items[1].Category)
}

func TestGetAll_EmptyDataIsEmptySlice(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/blogs", func(w http.ResponseWriter, r *http.Request) {
		_, _ = writeJSON(w, map[string]any{"data": nil}, http.StatusOK)
	})
	srv := newServer(t, r)

	items, err := newTestAdapter(t, srv.URL, "").GetAll(context.Background(), nil)

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSearch_SendsQuery(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/blogs/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "warm bass", r.URL.Query().Get("q"))
		_, _ = writeJSON(w, models.ListResponse{Data: []models.Item{{ID: 7}}}, http.StatusOK)
	})
	srv := newServer(t, r)

	items, err := newTestAdapter(t, srv.URL, "").Search(context.Background(), "warm bass", nil)

	require.NoError(t, err)
	assert.Equal(t, int64(7), items[0].ID)
}

func TestGetDeleted(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/blogs/deleted", func(w http.ResponseWriter, r *http.Request) {
		_, _ = writeJSON(w, models.ListResponse{Data: []models.Item{{ID: 3, CategoryID: 1}}}, http.StatusOK)
	})
	srv := newServer(t, r)

	items, err := newTestAdapter(t, srv.URL, "").GetDeleted(context.Background(), testCategories)

	require.NoError(t, err)
	assert.Equal(t, "Audio", items[0].Category)
}

func TestGetByID(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/blogs/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "42", chi.URLParam(r, "id"))
		_, _ = writeJSON(w, models.ItemResponse{Data: models.Item{ID: 42, CategoryID: 1}}, http.StatusOK)
	})
	srv := newServer(t, r)

	item, err := newTestAdapter(t, srv.URL, "").GetByID(context.Background(), 42, testCategories)

	require.NoError(t, err)
	assert.Equal(t, int64(42), item.ID)
	assert.Equal(t, "Audio", item.Category)
}

// ── mutations ────────────────────────────────────────────────────────────────

func TestCreate_PostsPayload(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/blogs", func(w http.ResponseWriter, r *http.Request) {
		var payload models.ItemPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Hello", payload.Title)
		_, _ = writeJSON(w, models.ItemResponse{Data: models.Item{ID: 11, Title: payload.Title}}, http.StatusCreated)
	})
	srv := newServer(t, r)

	item, err := newTestAdapter(t, srv.URL, "").Create(context.Background(), models.ItemPayload{Title: "Hello"})

	require.NoError(t, err)
	assert.Equal(t, int64(11), item.ID)
}

func TestUpdate_SendsOnlyChangedFields(t *testing.T) {
	r := chi.NewRouter()
	r.Patch("/api/blogs/{id}", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"title": "New", "published": false}, body)
		_, _ = writeJSON(w, models.ItemResponse{Data: models.Item{ID: 5, Title: "New"}}, http.StatusOK)
	})
	srv := newServer(t, r)

	original := models.Item{ID: 5, Title: "Old", Published: true}
	edited := original.Payload()
	edited.Title = "New"
	edited.Published = false

	item, err := newTestAdapter(t, srv.URL, "").Update(context.Background(), 5, models.ChangedFields(original, edited))

	require.NoError(t, err)
	assert.Equal(t, "New", item.Title)
}

func TestDeleteRestoreHardDelete_Routes(t *testing.T) {
	var hits []string
	r := chi.NewRouter()
	r.Delete("/api/blogs/{id}", func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, "delete "+chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/api/blogs/{id}/restore", func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, "restore "+chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusOK)
	})
	r.Delete("/api/blogs/{id}/permanent", func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, "permanent "+chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	})
	srv := newServer(t, r)
	a := newTestAdapter(t, srv.URL, "")
	ctx := context.Background()

	require.NoError(t, a.Delete(ctx, 1))
	require.NoError(t, a.Restore(ctx, 2))
	require.NoError(t, a.HardDelete(ctx, 3))

	assert.Equal(t, []string{"delete 1", "restore 2", "permanent 3"}, hits)
}

func TestProductsResourcePath(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/products", func(w http.ResponseWriter, r *http.Request) {
		_, _ = writeJSON(w, models.ListResponse{Data: []models.Item{{ID: 1}}}, http.StatusOK)
	})
	srv := newServer(t, r)

	a, err := NewHTTPContentAdapter(config.Adapter{HTTPAddress: srv.URL}, "", models.ResourceProducts, logger.Nop())
	require.NoError(t, err)

	items, err := a.GetAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

// ── categories ───────────────────────────────────────────────────────────────

func TestCategories(t *testing.T) {
	var created models.CategoryPayload
	var deleted string
	r := chi.NewRouter()
	r.Get("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		_, _ = writeJSON(w, models.CategoriesResponse{Data: testCategories}, http.StatusOK)
	})
	r.Post("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&created))
		w.WriteHeader(http.StatusCreated)
	})
	r.Delete("/api/categories/{id}", func(w http.ResponseWriter, r *http.Request) {
		deleted = chi.URLParam(r, "id")
		w.WriteHeader(http.StatusNoContent)
	})
	srv := newServer(t, r)
	a := newTestAdapter(t, srv.URL, "")
	ctx := context.Background()

	got, err := a.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, testCategories, got)

	require.NoError(t, a.CreateCategory(ctx, models.CategoryPayload{Name: "Guides", Slug: "guides"}))
	assert.Equal(t, "Guides", created.Name)

	require.NoError(t, a.DeleteCategory(ctx, 2))
	assert.Equal(t, "2", deleted)
}

// ── headers ──────────────────────────────────────────────────────────────────

func TestAuthedRequest_Headers(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/blogs", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer opaque-key", r.Header.Get("Authorization"))
		assert.Equal(t, "trace-1", r.Header.Get(TraceIDHeader))
		_, _ = writeJSON(w, models.ListResponse{}, http.StatusOK)
	})
	srv := newServer(t, r)

	ctx := utils.WithTraceID(context.Background(), "trace-1")
	_, err := newTestAdapter(t, srv.URL, "Bearer opaque-key").GetAll(ctx, nil)
	require.NoError(t, err)
}

func TestAuthedRequest_GeneratesTraceID(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/blogs", func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get(TraceIDHeader))
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = writeJSON(w, models.ListResponse{}, http.StatusOK)
	})
	srv := newServer(t, r)

	_, err := newTestAdapter(t, srv.URL, "").GetAll(context.Background(), nil)
	require.NoError(t, err)
}

func TestAuthedRequest_ExpiredTokenFailsFast(t *testing.T) {
	var calls atomic.Int32
	r := chi.NewRouter()
	r.Get("/api/blogs", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})
	srv := newServer(t, r)

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	a := newTestAdapter(t, srv.URL, raw)
	a.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = a.GetAll(context.Background(), nil)

	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Zero(t, calls.Load())
}

// ── errors ───────────────────────────────────────────────────────────────────

func TestMapHTTPError_Statuses(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusUnprocessableEntity, ErrUnprocessable},
		{http.StatusTooManyRequests, ErrTooManyRequests},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			r := chi.NewRouter()
			r.Delete("/api/blogs/{id}", func(w http.ResponseWriter, r *http.Request) {
				_, _ = writeJSON(w, map[string]string{"error": "boom"}, tt.status)
			})
			srv := newServer(t, r)

			err := newTestAdapter(t, srv.URL, "").Delete(context.Background(), 1)

			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "boom")
		})
	}
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	srv := newServer(t, r)

	_, err := newTestAdapter(t, srv.URL, "").GetCategories(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "a", errorMessage([]byte(`{"error":"a"}`)))
	assert.Equal(t, "b", errorMessage([]byte(`{"message":"b"}`)))
	assert.Equal(t, "plain text", errorMessage([]byte(" plain text \n")))
}

func TestContextCancelled(t *testing.T) {
	release := make(chan struct{})
	r := chi.NewRouter()
	r.Get("/api/blogs", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	srv := newServer(t, r)
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL, "").GetAll(ctx, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
