package repository

import (
	"context"

	"gyomutime/internal/domain/entity"
)

type SubmissionRepository interface {
	// NewID allocates a document id without writing anything, so storage
	// paths can be derived before the record exists.
	NewID() string
	Create(ctx context.Context, submission *entity.Submission) error
	GetByID(ctx context.Context, id string) (*entity.Submission, error)
	ListByOwner(ctx context.Context, ownerUID string) ([]*entity.Submission, error)
	ListAll(ctx context.Context) ([]*entity.Submission, error)
	UpdateStatus(ctx context.Context, id, status string) error
	AppendResult(ctx context.Context, id string, result entity.FileMeta) error
	AppendMessage(ctx context.Context, id string, message entity.Message) error
}
