package service

import (
	"context"
)

// StorageService issues short-lived credentials scoped to exactly one object
// path. File bytes never pass through this service.
type StorageService interface {
	SignedUploadURL(ctx context.Context, storagePath, contentType string) (string, error)
	SignedDownloadURL(ctx context.Context, storagePath string) (string, error)
	DeleteByPrefix(ctx context.Context, prefix string) error
	Close() error
}
