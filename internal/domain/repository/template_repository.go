package repository

import (
	"context"

	"gyomutime/internal/domain/entity"
)

type TemplateRepository interface {
	NewID() string
	Create(ctx context.Context, template *entity.Template) error
	GetByID(ctx context.Context, id string) (*entity.Template, error)
	List(ctx context.Context) ([]*entity.Template, error)
	Update(ctx context.Context, template *entity.Template) error
	Delete(ctx context.Context, id string) error
}
