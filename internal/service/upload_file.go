// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-content-admin/models"
)

// openUploadFile opens path for streaming to the upload service. The caller
// closes the returned file.
func openUploadFile(path string) (models.UploadFile, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.UploadFile{}, nil, fmt.Errorf("%w: %w", ErrValidationImagePath, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return models.UploadFile{}, nil, fmt.Errorf("%w: %w", ErrValidationImagePath, err)
	}
	if info.IsDir() {
		f.Close()
		return models.UploadFile{}, nil, fmt.Errorf("%w: %s is a directory", ErrValidationImagePath, path)
	}

	return models.UploadFile{
		Name:        filepath.Base(path),
		ContentType: mime.TypeByExtension(strings.ToLower(filepath.Ext(path))),
		Size:        info.Size(),
		Reader:      f,
	}, f, nil
}
