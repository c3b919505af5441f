package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gyomutime/pkg/errors"
)

func newStorageUseCase() (*StorageUseCase, *fakeSubmissionRepo) {
	repo := newFakeSubmissionRepo()
	return NewStorageUseCase(repo, &fakeStorage{}, testMaxBytes, 15*time.Minute), repo
}

func TestCreateUploadURLAllocatesSubmissionID(t *testing.T) {
	uc, _ := newStorageUseCase()

	ticket, err := uc.CreateUploadURL(context.Background(), user("owner"), "", "data.csv", "text/csv", 512)
	require.NoError(t, err)

	assert.NotEmpty(t, ticket.SubmissionID)
	assert.Equal(t, "uploads/owner/"+ticket.SubmissionID+"/data.csv", ticket.StoragePath)
	assert.Contains(t, ticket.UploadURL, ticket.StoragePath)
}

func TestCreateUploadURLForExistingSubmission(t *testing.T) {
	uc, repo := newStorageUseCase()
	ctx := context.Background()

	subUC := NewSubmissionUseCase(repo, &fakeStorage{}, testMaxBytes)
	created, err := subUC.Create(ctx, user("owner"), validCreateInput())
	require.NoError(t, err)

	ticket, err := uc.CreateUploadURL(ctx, user("owner"), created.ID, "extra.csv", "text/csv", 512)
	require.NoError(t, err)
	assert.Equal(t, created.ID, ticket.SubmissionID)

	_, err = uc.CreateUploadURL(ctx, user("intruder"), created.ID, "extra.csv", "text/csv", 512)
	assert.True(t, errors.Is(err, "forbidden"))

	_, err = uc.CreateUploadURL(ctx, admin("staff"), created.ID, "extra.csv", "text/csv", 512)
	assert.NoError(t, err)

	_, err = uc.CreateUploadURL(ctx, user("owner"), "missing", "extra.csv", "text/csv", 512)
	assert.True(t, errors.Is(err, "not_found"))
}

func TestCreateUploadURLValidation(t *testing.T) {
	uc, _ := newStorageUseCase()
	ctx := context.Background()

	_, err := uc.CreateUploadURL(ctx, user("owner"), "", "app.exe", "text/csv", 512)
	assert.True(t, errors.Is(err, "bad_request"))

	_, err = uc.CreateUploadURL(ctx, user("owner"), "", "data.csv", "text/html", 512)
	assert.True(t, errors.Is(err, "unsupported_type"))

	_, err = uc.CreateUploadURL(ctx, user("owner"), "", "data.csv", "text/csv", testMaxBytes+1)
	assert.True(t, errors.Is(err, "too_large"))
}

func TestCreateDownloadURLForUploadPath(t *testing.T) {
	uc, _ := newStorageUseCase()
	ctx := context.Background()

	ticket, err := uc.CreateDownloadURL(ctx, user("owner"), "uploads/owner/sub-1/data.csv")
	require.NoError(t, err)
	assert.Contains(t, ticket.DownloadURL, "uploads/owner/sub-1/data.csv")
	assert.Equal(t, 900, ticket.ExpiresIn)

	_, err = uc.CreateDownloadURL(ctx, user("intruder"), "uploads/owner/sub-1/data.csv")
	assert.True(t, errors.Is(err, "forbidden"))

	_, err = uc.CreateDownloadURL(ctx, admin("staff"), "uploads/owner/sub-1/data.csv")
	assert.NoError(t, err)
}

func TestCreateDownloadURLForResultPath(t *testing.T) {
	uc, repo := newStorageUseCase()
	ctx := context.Background()

	subUC := NewSubmissionUseCase(repo, &fakeStorage{}, testMaxBytes)
	created, err := subUC.Create(ctx, user("owner"), validCreateInput())
	require.NoError(t, err)

	path := "results/" + created.ID + "/out.zip"

	_, err = uc.CreateDownloadURL(ctx, user("owner"), path)
	assert.NoError(t, err)

	_, err = uc.CreateDownloadURL(ctx, user("intruder"), path)
	assert.True(t, errors.Is(err, "forbidden"))

	_, err = uc.CreateDownloadURL(ctx, user("owner"), "results/missing/out.zip")
	assert.True(t, errors.Is(err, "not_found"))
}

func TestCreateDownloadURLRejectsOtherPaths(t *testing.T) {
	uc, _ := newStorageUseCase()
	ctx := context.Background()

	for _, path := range []string{"", "templates/tpl-1/form.xlsx", "uploads/owner", "random/path.csv"} {
		_, err := uc.CreateDownloadURL(ctx, admin("staff"), path)
		assert.True(t, errors.Is(err, "bad_request"), path)
	}
}
