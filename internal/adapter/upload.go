// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/MKhiriev/go-content-admin/internal/config"
	"github.com/MKhiriev/go-content-admin/internal/logger"
	"github.com/MKhiriev/go-content-admin/internal/utils"
	"github.com/MKhiriev/go-content-admin/models"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".avif": true, ".svg": true,
}

type minioUploadService struct {
	client    *minio.Client
	bucket    string
	publicURL string

	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewUploadService returns an [UploadService] backed by an S3-compatible
// bucket. When no endpoint is configured the returned service rejects every
// call with [ErrUploadDisabled].
func NewUploadService(cfg config.Upload, logger *logger.Logger) (UploadService, error) {
	if !cfg.Enabled() {
		return disabledUploadService{}, nil
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       cfg.UseSSL,
		Region:       region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage client: %w", err)
	}

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + cfg.Endpoint + "/" + cfg.Bucket
	}

	return &minioUploadService{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicURL,
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}, nil
}

// UploadImage implements [UploadService]. The object key is
// folder/<uuid><ext>, where ext is taken from the original file name.
func (s *minioUploadService) UploadImage(ctx context.Context, file models.UploadFile, folder string) (models.UploadResult, error) {
	if file.Reader == nil || file.Size == 0 {
		return models.UploadResult{}, ErrEmptyFile
	}

	ext := strings.ToLower(path.Ext(file.Name))
	if !strings.HasPrefix(file.ContentType, "image/") && !imageExtensions[ext] {
		return models.UploadResult{}, fmt.Errorf("%w: %s", ErrNotAnImage, file.Name)
	}

	key := path.Join(strings.Trim(folder, "/"), s.ids.Generate()+ext)

	info, err := s.client.PutObject(ctx, s.bucket, key, file.Reader, file.Size, minio.PutObjectOptions{
		ContentType:  file.ContentType,
		UserMetadata: map[string]string{"original-name": path.Base(file.Name)},
	})
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("failed to upload %s: %w", file.Name, err)
	}

	s.logger.Debug().
		Str("func", "minioUploadService.UploadImage").
		Str("key", key).
		Int64("size", info.Size).
		Msg("image uploaded")

	return models.UploadResult{URL: s.publicURL + "/" + key, PublicID: key}, nil
}

// DeleteFile implements [UploadService]. Image deletions are refused for keys
// without an image extension.
func (s *minioUploadService) DeleteFile(ctx context.Context, publicIDOrURL string, kind models.FileKind) (bool, error) {
	key := s.objectKey(publicIDOrURL)
	if key == "" {
		return false, nil
	}
	if kind != models.FileKindRaw && !imageExtensions[strings.ToLower(path.Ext(key))] {
		return false, nil
	}

	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", key, err)
	}

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return false, fmt.Errorf("failed to delete %s: %w", key, err)
	}

	s.logger.Debug().
		Str("func", "minioUploadService.DeleteFile").
		Str("key", key).
		Msg("file deleted")

	return true, nil
}

// objectKey resolves a public id or a public URL into an object key.
func (s *minioUploadService) objectKey(publicIDOrURL string) string {
	v := strings.TrimSpace(publicIDOrURL)
	if key, ok := strings.CutPrefix(v, s.publicURL+"/"); ok {
		return key
	}
	if !strings.Contains(v, "://") {
		return strings.TrimLeft(v, "/")
	}

	u, err := url.Parse(v)
	if err != nil {
		return ""
	}
	p := strings.TrimLeft(u.Path, "/")
	if key, ok := strings.CutPrefix(p, s.bucket+"/"); ok {
		return key
	}
	return p
}

type disabledUploadService struct{}

func (disabledUploadService) UploadImage(context.Context, models.UploadFile, string) (models.UploadResult, error) {
	return models.UploadResult{}, ErrUploadDisabled
}

func (disabledUploadService) DeleteFile(context.Context, string, models.FileKind) (bool, error) {
	return false, ErrUploadDisabled
}
