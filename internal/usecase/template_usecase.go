package usecase

import (
	"context"
	"time"

	"gyomutime/internal/domain/entity"
	"gyomutime/internal/domain/repository"
	"gyomutime/internal/domain/service"
	"gyomutime/pkg/errors"
)

type TemplateUseCase struct {
	templateRepo   repository.TemplateRepository
	storage        service.StorageService
	maxUploadBytes int64
	downloadTTL    time.Duration
}

func NewTemplateUseCase(
	templateRepo repository.TemplateRepository,
	storage service.StorageService,
	maxUploadBytes int64,
	downloadTTL time.Duration,
) *TemplateUseCase {
	return &TemplateUseCase{
		templateRepo:   templateRepo,
		storage:        storage,
		maxUploadBytes: maxUploadBytes,
		downloadTTL:    downloadTTL,
	}
}

type CreateTemplateInput struct {
	Title       string
	Description string
	Filename    string
	ContentType string
	Size        int64
}

type TemplateTicket struct {
	ID          string `json:"id"`
	UploadURL   string `json:"uploadUrl"`
	StoragePath string `json:"storagePath"`
}

// Create writes the template record and issues the upload URL in one call.
func (uc *TemplateUseCase) Create(ctx context.Context, actor *entity.AuthUser, input CreateTemplateInput) (*TemplateTicket, error) {
	if input.Title == "" {
		return nil, errors.BadRequest("title required", nil)
	}
	if err := validateFileMeta(input.Filename, input.ContentType, input.Size, uc.maxUploadBytes); err != nil {
		return nil, err
	}

	id := uc.templateRepo.NewID()
	storagePath := entity.TemplatePath(id, input.Filename)
	now := time.Now()
	template := &entity.Template{
		ID:             id,
		Title:          input.Title,
		Description:    sanitizePlain(input.Description),
		Filename:       input.Filename,
		Mime:           input.ContentType,
		Size:           input.Size,
		StoragePath:    storagePath,
		CreatedBy:      actor.UID,
		CreatedByEmail: actor.Email,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}

	uploadURL, err := uc.storage.SignedUploadURL(ctx, storagePath, input.ContentType)
	if err != nil {
		return nil, errors.Internal("Failed to issue upload URL", err)
	}

	return &TemplateTicket{ID: id, UploadURL: uploadURL, StoragePath: storagePath}, nil
}

func (uc *TemplateUseCase) List(ctx context.Context) ([]*entity.Template, error) {
	return uc.templateRepo.List(ctx)
}

// UpdateMeta changes title and/or description; nil means leave unchanged.
func (uc *TemplateUseCase) UpdateMeta(ctx context.Context, id string, title, description *string) error {
	template, err := uc.templateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if title != nil {
		template.Title = *title
	}
	if description != nil {
		template.Description = sanitizePlain(*description)
	}
	return uc.templateRepo.Update(ctx, template)
}

// ReplaceFile updates the file metadata and issues an upload URL for the
// template's storage prefix. The path is rederived so a rename replaces
// the object key with the record.
func (uc *TemplateUseCase) ReplaceFile(ctx context.Context, id, filename, contentType string, size int64) (*TemplateTicket, error) {
	if err := validateFileMeta(filename, contentType, size, uc.maxUploadBytes); err != nil {
		return nil, err
	}

	template, err := uc.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	storagePath := entity.TemplatePath(template.ID, filename)
	template.Filename = filename
	template.Mime = contentType
	template.Size = size
	template.StoragePath = storagePath
	if err := uc.templateRepo.Update(ctx, template); err != nil {
		return nil, err
	}

	uploadURL, err := uc.storage.SignedUploadURL(ctx, storagePath, contentType)
	if err != nil {
		return nil, errors.Internal("Failed to issue upload URL", err)
	}

	return &TemplateTicket{ID: template.ID, UploadURL: uploadURL, StoragePath: storagePath}, nil
}

// DownloadURL is public: templates are a globally visible catalog.
func (uc *TemplateUseCase) DownloadURL(ctx context.Context, id string) (*DownloadTicket, error) {
	template, err := uc.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template.StoragePath == "" {
		return nil, errors.Internal("template has no storage path", nil)
	}

	downloadURL, err := uc.storage.SignedDownloadURL(ctx, template.StoragePath)
	if err != nil {
		return nil, errors.Internal("Failed to issue download URL", err)
	}
	return &DownloadTicket{
		DownloadURL: downloadURL,
		ExpiresIn:   int(uc.downloadTTL.Seconds()),
	}, nil
}

// Delete removes the objects first, then the record, so a half-failed
// delete leaves a record pointing at nothing rather than orphaned objects.
func (uc *TemplateUseCase) Delete(ctx context.Context, id string) error {
	template, err := uc.templateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.storage.DeleteByPrefix(ctx, "templates/"+template.ID+"/"); err != nil {
		return errors.Internal("Failed to delete template objects", err)
	}
	return uc.templateRepo.Delete(ctx, id)
}
