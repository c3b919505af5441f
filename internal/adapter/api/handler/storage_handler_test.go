package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gyomutime/internal/usecase"
)

func newTestStorageHandler() (*StorageHandler, *memSubmissionRepo) {
	repo := newMemSubmissionRepo()
	uc := usecase.NewStorageUseCase(repo, memStorage{}, 200*1024*1024, 15*time.Minute)
	return NewStorageHandler(uc), repo
}

func TestCreateUploadURLEndpoint(t *testing.T) {
	h, _ := newTestStorageHandler()

	rec := call(t, h.CreateUploadURL, http.MethodPost, "/v1/storage/upload-url",
		`{"filename":"data.csv","contentType":"text/csv","size":512}`, testUser("owner", "user"))
	require.Equal(t, http.StatusOK, rec.Code)

	var ticket struct {
		UploadURL    string `json:"uploadUrl"`
		StoragePath  string `json:"storagePath"`
		SubmissionID string `json:"submissionId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ticket))
	assert.NotEmpty(t, ticket.SubmissionID)
	assert.Equal(t, "uploads/owner/"+ticket.SubmissionID+"/data.csv", ticket.StoragePath)
	assert.NotEmpty(t, ticket.UploadURL)
}

func TestCreateUploadURLUnsupportedType(t *testing.T) {
	h, _ := newTestStorageHandler()

	rec := call(t, h.CreateUploadURL, http.MethodPost, "/v1/storage/upload-url",
		`{"filename":"page.html","contentType":"text/html","size":512}`, testUser("owner", "user"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported_type")
}

func TestCreateDownloadURLEndpoint(t *testing.T) {
	h, _ := newTestStorageHandler()

	rec := call(t, h.CreateDownloadURL, http.MethodPost, "/v1/storage/download-url",
		`{"storagePath":"uploads/owner/sub-1/data.csv"}`, testUser("owner", "user"))
	require.Equal(t, http.StatusOK, rec.Code)

	var ticket struct {
		DownloadURL string `json:"downloadUrl"`
		ExpiresIn   int    `json:"expiresIn"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ticket))
	assert.Contains(t, ticket.DownloadURL, "uploads/owner/sub-1/data.csv")
	assert.Equal(t, 900, ticket.ExpiresIn)

	rec = call(t, h.CreateDownloadURL, http.MethodPost, "/v1/storage/download-url",
		`{"storagePath":"uploads/owner/sub-1/data.csv"}`, testUser("intruder", "user"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
