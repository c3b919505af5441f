package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"gyomutime/pkg/logger"
)

type CloudStorageClient struct {
	client      *storage.Client
	bucketName  string
	uploadTTL   time.Duration
	downloadTTL time.Duration
}

func NewCloudStorageClient(ctx context.Context, bucketName string, uploadTTL, downloadTTL time.Duration, opts ...option.ClientOption) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	storageClient := &CloudStorageClient{
		client:      client,
		bucketName:  bucketName,
		uploadTTL:   uploadTTL,
		downloadTTL: downloadTTL,
	}

	if err := storageClient.setBucketCORS(ctx); err != nil {
		logger.Warn("Failed to set CORS configuration: %v", err)
	}

	return storageClient, nil
}

// Direct-to-bucket uploads need CORS on the bucket itself since the signed
// PUT comes from the browser.
func (c *CloudStorageClient) setBucketCORS(ctx context.Context) error {
	bucket := c.client.Bucket(c.bucketName)

	attrs, err := bucket.Attrs(ctx)
	if err != nil {
		return fmt.Errorf("failed to get bucket attributes: %w", err)
	}
	if len(attrs.CORS) > 0 {
		return nil
	}

	_, err = bucket.Update(ctx, storage.BucketAttrsToUpdate{
		CORS: []storage.CORS{{
			MaxAge:          time.Hour,
			Methods:         []string{"GET", "PUT", "OPTIONS"},
			Origins:         []string{"*"},
			ResponseHeaders: []string{"Content-Type"},
		}},
	})
	if err != nil {
		return fmt.Errorf("failed to update bucket CORS: %w", err)
	}
	return nil
}

// SignedUploadURL issues a write credential good for exactly one object
// path and content type.
func (c *CloudStorageClient) SignedUploadURL(ctx context.Context, storagePath, contentType string) (string, error) {
	opts := &storage.SignedURLOptions{
		Scheme:      storage.SigningSchemeV4,
		Method:      http.MethodPut,
		ContentType: contentType,
		Expires:     time.Now().Add(c.uploadTTL),
	}

	url, err := c.client.Bucket(c.bucketName).SignedURL(storagePath, opts)
	if err != nil {
		return "", fmt.Errorf("failed to sign upload URL: %w", err)
	}
	return url, nil
}

// SignedDownloadURL issues a read credential that forces an attachment
// disposition so user-uploaded content is never rendered inline.
func (c *CloudStorageClient) SignedDownloadURL(ctx context.Context, storagePath string) (string, error) {
	opts := &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(c.downloadTTL),
		QueryParameters: url.Values{
			"response-content-disposition": {"attachment"},
		},
	}

	signed, err := c.client.Bucket(c.bucketName).SignedURL(storagePath, opts)
	if err != nil {
		return "", fmt.Errorf("failed to sign download URL: %w", err)
	}
	return signed, nil
}

// DeleteByPrefix removes every object under a prefix, so deleting a
// document and its files cannot leave orphans behind.
func (c *CloudStorageClient) DeleteByPrefix(ctx context.Context, prefix string) error {
	bucket := c.client.Bucket(c.bucketName)
	it := bucket.Objects(ctx, &storage.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to list objects under %s: %w", prefix, err)
		}
		if err := bucket.Object(attrs.Name).Delete(ctx); err != nil && err != storage.ErrObjectNotExist {
			return fmt.Errorf("failed to delete %s: %w", attrs.Name, err)
		}
	}
	return nil
}

func (c *CloudStorageClient) DownloadTTL() time.Duration {
	return c.downloadTTL
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
