// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// FileKind tells the upload service what kind of object is addressed.
type FileKind string

const (
	FileKindImage FileKind = "image"
	FileKindRaw   FileKind = "raw"
)

// UploadFile is a file ready to be streamed to object storage.
type UploadFile struct {
	// Name is the original file name; its extension is kept in the object key.
	Name        string
	ContentType string
	// Size is the exact byte length of Reader, or -1 when unknown.
	Size   int64
	Reader io.Reader
}

// UploadResult describes a stored object.
type UploadResult struct {
	// URL is the public address of the object.
	URL string `json:"url"`
	// PublicID is the storage key used to delete the object later.
	PublicID string `json:"publicId"`
}
