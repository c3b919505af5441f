package repository

import (
	"context"

	"gyomutime/internal/domain/entity"
)

type ElectivesRepository interface {
	GetConfig(ctx context.Context, termID string) (*entity.ElectivesConfig, error)
	SaveConfig(ctx context.Context, config *entity.ElectivesConfig) error
	CreateRequest(ctx context.Context, request *entity.ElectivesRequest) error
	SaveTimetableRequest(ctx context.Context, request *entity.TimetableRequest) error
}
