// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for the content
// admin client: the content REST API and the object storage used for
// images.
//
// [ContentAPI] decouples the service layer from HTTP. The package ships a
// resty implementation ([NewHTTPContentAdapter]). [UploadService] stores
// files in an S3-compatible bucket through minio-go ([NewUploadService]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-content-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ContentAPI is the remote store of one resource (blogs or products) plus the
// shared category list. List and get calls take the current category list so
// that the returned items carry resolved category names.
type ContentAPI interface {
	// Resource returns the resource this API instance is bound to.
	Resource() models.Resource

	// GetAll returns every non-deleted item.
	GetAll(ctx context.Context, categories []models.Category) ([]models.Item, error)

	// Search returns the non-deleted items matching query. Matching is done
	// by the server.
	Search(ctx context.Context, query string, categories []models.Category) ([]models.Item, error)

	// GetDeleted returns the soft-deleted items.
	GetDeleted(ctx context.Context, categories []models.Category) ([]models.Item, error)

	// GetByID returns one item.
	GetByID(ctx context.Context, id int64, categories []models.Category) (models.Item, error)

	// Create stores a new item and returns it with server fields set.
	Create(ctx context.Context, payload models.ItemPayload) (models.Item, error)

	// Update applies patch to the item and returns the updated item.
	Update(ctx context.Context, id int64, patch models.ItemPatch) (models.Item, error)

	// Delete soft-deletes an item.
	Delete(ctx context.Context, id int64) error

	// Restore brings a soft-deleted item back.
	Restore(ctx context.Context, id int64) error

	// HardDelete removes a soft-deleted item permanently.
	HardDelete(ctx context.Context, id int64) error

	GetCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, payload models.CategoryPayload) error
	DeleteCategory(ctx context.Context, id int64) error
}

// UploadService stores files referenced by items.
type UploadService interface {
	// UploadImage stores file under folder and returns its public URL and
	// the identifier needed to delete it.
	UploadImage(ctx context.Context, file models.UploadFile, folder string) (models.UploadResult, error)

	// DeleteFile removes the object identified by a public id or a public
	// URL. It reports false when there was nothing to delete.
	DeleteFile(ctx context.Context, publicIDOrURL string, kind models.FileKind) (bool, error)
}
