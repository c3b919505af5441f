package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gyomutime/internal/domain/entity"
	"gyomutime/internal/domain/repository"
	"gyomutime/internal/domain/service"
	"gyomutime/pkg/errors"
)

// StorageUseCase is the signed-transfer broker: pure authorization plus
// credential issuance. File bytes flow directly between client and bucket.
type StorageUseCase struct {
	submissionRepo repository.SubmissionRepository
	storage        service.StorageService
	maxUploadBytes int64
	downloadTTL    time.Duration
}

func NewStorageUseCase(
	submissionRepo repository.SubmissionRepository,
	storage service.StorageService,
	maxUploadBytes int64,
	downloadTTL time.Duration,
) *StorageUseCase {
	return &StorageUseCase{
		submissionRepo: submissionRepo,
		storage:        storage,
		maxUploadBytes: maxUploadBytes,
		downloadTTL:    downloadTTL,
	}
}

type UploadTicket struct {
	UploadURL    string `json:"uploadUrl"`
	StoragePath  string `json:"storagePath"`
	SubmissionID string `json:"submissionId"`
}

// CreateUploadURL issues a write credential for one upload path. With a
// submission id the caller must own the submission (or be admin); without
// one a fresh id is allocated so the client can upload before the record
// exists.
func (uc *StorageUseCase) CreateUploadURL(ctx context.Context, actor *entity.AuthUser, submissionID, filename, contentType string, size int64) (*UploadTicket, error) {
	if err := validateFileMeta(filename, contentType, size, uc.maxUploadBytes); err != nil {
		return nil, err
	}

	if submissionID != "" {
		submission, err := uc.submissionRepo.GetByID(ctx, submissionID)
		if err != nil {
			return nil, err
		}
		if submission.OwnerUID != actor.UID && !actor.IsAdmin() {
			return nil, errors.Forbidden("not owner", nil)
		}
	} else {
		submissionID = uuid.NewString()
	}

	storagePath := entity.UploadPath(actor.UID, submissionID, filename)
	uploadURL, err := uc.storage.SignedUploadURL(ctx, storagePath, contentType)
	if err != nil {
		return nil, errors.Internal("Failed to issue upload URL", err)
	}

	return &UploadTicket{
		UploadURL:    uploadURL,
		StoragePath:  storagePath,
		SubmissionID: submissionID,
	}, nil
}

type DownloadTicket struct {
	DownloadURL string `json:"downloadUrl"`
	ExpiresIn   int    `json:"expiresIn"`
}

// CreateDownloadURL authorizes by path prefix: uploads/{uid}/... is owner
// or admin; results/{submissionId}/... resolves the owning submission.
func (uc *StorageUseCase) CreateDownloadURL(ctx context.Context, actor *entity.AuthUser, storagePath string) (*DownloadTicket, error) {
	if storagePath == "" {
		return nil, errors.BadRequest("storagePath required", nil)
	}

	if ownerUID, _, ok := entity.ParseUploadPath(storagePath); ok {
		if ownerUID != actor.UID && !actor.IsAdmin() {
			return nil, errors.Forbidden("not allowed", nil)
		}
	} else if submissionID, ok := entity.ParseResultPath(storagePath); ok {
		submission, err := uc.submissionRepo.GetByID(ctx, submissionID)
		if err != nil {
			return nil, err
		}
		if submission.OwnerUID != actor.UID && !actor.IsAdmin() {
			return nil, errors.Forbidden("not allowed", nil)
		}
	} else {
		return nil, errors.BadRequest("invalid path", nil)
	}

	downloadURL, err := uc.storage.SignedDownloadURL(ctx, storagePath)
	if err != nil {
		return nil, errors.Internal("Failed to issue download URL", err)
	}

	return &DownloadTicket{
		DownloadURL: downloadURL,
		ExpiresIn:   int(uc.downloadTTL.Seconds()),
	}, nil
}
