package usecase

import (
	"context"
	"fmt"
	"time"

	"gyomutime/internal/domain/entity"
	"gyomutime/internal/domain/repository"
	"gyomutime/internal/domain/service"
	"gyomutime/pkg/errors"
)

type SubmissionUseCase struct {
	submissionRepo repository.SubmissionRepository
	storage        service.StorageService
	maxUploadBytes int64
}

func NewSubmissionUseCase(
	submissionRepo repository.SubmissionRepository,
	storage service.StorageService,
	maxUploadBytes int64,
) *SubmissionUseCase {
	return &SubmissionUseCase{
		submissionRepo: submissionRepo,
		storage:        storage,
		maxUploadBytes: maxUploadBytes,
	}
}

type FileMetaInput struct {
	Name        string
	Size        int64
	ContentType string
}

type GroupingInput struct {
	ContactName  string
	ContactEmail string
	MaxPerClass  int
	MinSlots     int
	MaxSlots     int
	Notes        string
}

type CreateSubmissionInput struct {
	Title       string
	Description string
	Category    string
	FilesMeta   []FileMetaInput
	Grouping    *GroupingInput
}

// Create validates and writes the submission record. No bytes move here;
// file entries only declare metadata and their derived storage paths.
func (uc *SubmissionUseCase) Create(ctx context.Context, actor *entity.AuthUser, input CreateSubmissionInput) (*entity.Submission, error) {
	if err := uc.validateCreate(input); err != nil {
		return nil, err
	}

	id := uc.submissionRepo.NewID()
	files := make([]entity.FileMeta, 0, len(input.FilesMeta))
	for _, f := range input.FilesMeta {
		files = append(files, entity.FileMeta{
			Name:        f.Name,
			Size:        f.Size,
			ContentType: f.ContentType,
			StoragePath: entity.UploadPath(actor.UID, id, f.Name),
		})
	}

	now := time.Now()
	submission := &entity.Submission{
		ID:          id,
		OwnerUID:    actor.UID,
		OwnerEmail:  actor.Email,
		Title:       input.Title,
		Description: sanitizePlain(input.Description),
		Category:    input.Category,
		Status:      entity.StatusUploaded,
		Files:       files,
		Results:     []entity.FileMeta{},
		Messages:    []entity.Message{},
		Meta:        sanitizeGrouping(input.Grouping),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (uc *SubmissionUseCase) validateCreate(input CreateSubmissionInput) error {
	if l := len(input.Title); l < 1 || l > entity.MaxTitleLen {
		return errors.BadRequest(fmt.Sprintf("title must be 1-%d characters", entity.MaxTitleLen), nil)
	}
	if len(input.Description) > entity.MaxDescriptionLen {
		return errors.BadRequest(fmt.Sprintf("description must be at most %d characters", entity.MaxDescriptionLen), nil)
	}
	if !entity.ValidCategory(input.Category) {
		return errors.BadRequest("unknown category", nil)
	}
	if len(input.FilesMeta) == 0 {
		return errors.BadRequest("at least one file is required", nil)
	}
	for _, f := range input.FilesMeta {
		if err := validateFileMeta(f.Name, f.ContentType, f.Size, uc.maxUploadBytes); err != nil {
			return err
		}
	}
	return nil
}

func sanitizeGrouping(g *GroupingInput) *entity.SubmissionMeta {
	if g == nil {
		return nil
	}
	return &entity.SubmissionMeta{
		Grouping: &entity.GroupingMeta{
			ContactName:  sanitizePlain(g.ContactName),
			ContactEmail: sanitizePlain(g.ContactEmail),
			MaxPerClass:  g.MaxPerClass,
			MinSlots:     g.MinSlots,
			MaxSlots:     g.MaxSlots,
			Notes:        sanitizePlain(g.Notes),
		},
	}
}

// Get returns a submission to its owner or any admin.
func (uc *SubmissionUseCase) Get(ctx context.Context, actor *entity.AuthUser, id string) (*entity.Submission, error) {
	submission, err := uc.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if submission.OwnerUID != actor.UID && !actor.IsAdmin() {
		return nil, errors.Forbidden("not owner", nil)
	}
	return submission, nil
}

func (uc *SubmissionUseCase) List(ctx context.Context, actor *entity.AuthUser) ([]*entity.Submission, error) {
	if actor.IsAdmin() {
		return uc.submissionRepo.ListAll(ctx)
	}
	return uc.submissionRepo.ListByOwner(ctx, actor.UID)
}

// UpdateStatus moves a submission through the status machine. Any value in
// the closed status set is reachable from any other; only the actor's role
// and the enum membership are enforced.
func (uc *SubmissionUseCase) UpdateStatus(ctx context.Context, actor *entity.AuthUser, id, status string) error {
	if !actor.IsAdmin() {
		return errors.Forbidden("admin only", nil)
	}
	if !entity.ValidStatus(status) {
		return errors.BadRequest("unknown status", nil)
	}
	if _, err := uc.submissionRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.submissionRepo.UpdateStatus(ctx, id, status)
}

// AppendMessage adds a note to the submission thread. The author role comes
// from the verified token; a client-supplied role is ignored.
func (uc *SubmissionUseCase) AppendMessage(ctx context.Context, actor *entity.AuthUser, id, text string) error {
	if l := len(text); l < 1 || l > entity.MaxMessageLen {
		return errors.BadRequest(fmt.Sprintf("text must be 1-%d characters", entity.MaxMessageLen), nil)
	}

	submission, err := uc.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	role := "user"
	if actor.IsAdmin() {
		role = "admin"
	} else if submission.OwnerUID != actor.UID {
		return errors.Forbidden("not owner", nil)
	}

	return uc.submissionRepo.AppendMessage(ctx, id, entity.Message{
		By:   role,
		Text: sanitizePlain(text),
		At:   time.Now(),
	})
}

type ResultTicket struct {
	UploadURL   string `json:"uploadUrl"`
	StoragePath string `json:"storagePath"`
}

// AppendResult records a result file and returns a signed upload URL for
// it. Store mutation and credential issuance happen in one call because
// the result path depends on submission identity.
func (uc *SubmissionUseCase) AppendResult(ctx context.Context, actor *entity.AuthUser, id, filename, contentType string, size int64) (*ResultTicket, error) {
	if !actor.IsAdmin() {
		return nil, errors.Forbidden("admin only", nil)
	}
	if err := validateFileMeta(filename, contentType, size, uc.maxUploadBytes); err != nil {
		return nil, err
	}
	if _, err := uc.submissionRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	storagePath := entity.ResultPath(id, filename)
	uploadURL, err := uc.storage.SignedUploadURL(ctx, storagePath, contentType)
	if err != nil {
		return nil, errors.Internal("Failed to issue upload URL", err)
	}

	result := entity.FileMeta{
		Name:        filename,
		Size:        size,
		ContentType: contentType,
		StoragePath: storagePath,
	}
	if err := uc.submissionRepo.AppendResult(ctx, id, result); err != nil {
		return nil, err
	}

	return &ResultTicket{UploadURL: uploadURL, StoragePath: storagePath}, nil
}

func validateFileMeta(filename, contentType string, size, maxBytes int64) error {
	if !entity.ValidFilename(filename) {
		return errors.BadRequest("invalid filename", nil)
	}
	if !entity.AllowedContentType(contentType) {
		return errors.UnsupportedType("contentType not allowed")
	}
	if size < 0 || size > maxBytes {
		return errors.TooLarge(fmt.Sprintf("max %d bytes", maxBytes))
	}
	return nil
}
