package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gyomutime/internal/domain/entity"
	"gyomutime/internal/domain/repository"
	"gyomutime/pkg/errors"
)

const (
	electivesConfigCollection  = "electivesConfigs"
	electivesRequestCollection = "electivesRequests"
	timetableCollection        = "timetableRequests"
)

type firestoreElectivesRepository struct {
	client *firestore.Client
}

func NewFirestoreElectivesRepository(client *firestore.Client) repository.ElectivesRepository {
	return &firestoreElectivesRepository{
		client: client,
	}
}

func (r *firestoreElectivesRepository) GetConfig(ctx context.Context, termID string) (*entity.ElectivesConfig, error) {
	doc, err := r.client.Collection(electivesConfigCollection).Doc(termID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Electives config", err)
		}
		return nil, errors.Internal("Failed to get electives config", err)
	}

	var config entity.ElectivesConfig
	if err := doc.DataTo(&config); err != nil {
		return nil, errors.Internal("Failed to parse electives config", err)
	}

	return &config, nil
}

// SaveConfig upserts a term config, preserving createdAt across re-saves.
func (r *firestoreElectivesRepository) SaveConfig(ctx context.Context, config *entity.ElectivesConfig) error {
	ref := r.client.Collection(electivesConfigCollection).Doc(config.TermID)

	now := time.Now()
	config.UpdatedAt = now
	config.CreatedAt = now
	if snap, err := ref.Get(ctx); err == nil {
		if created, derr := snap.DataAt("createdAt"); derr == nil {
			if t, ok := created.(time.Time); ok {
				config.CreatedAt = t
			}
		}
	}

	if _, err := ref.Set(ctx, config); err != nil {
		return errors.Internal("Failed to save electives config", err)
	}
	return nil
}

func (r *firestoreElectivesRepository) CreateRequest(ctx context.Context, request *entity.ElectivesRequest) error {
	if request.ID == "" {
		request.ID = r.client.Collection(electivesRequestCollection).NewDoc().ID
	}
	_, err := r.client.Collection(electivesRequestCollection).Doc(request.ID).Set(ctx, request)
	if err != nil {
		return errors.Internal("Failed to create electives request", err)
	}
	return nil
}

// SaveTimetableRequest merge-upserts, so partial saves from the request page
// never clobber fields written earlier. MergeAll requires map data.
func (r *firestoreElectivesRepository) SaveTimetableRequest(ctx context.Context, request *entity.TimetableRequest) error {
	now := time.Now()
	data := map[string]interface{}{
		"id":        request.SubmissionID,
		"updatedAt": now,
	}
	ref := r.client.Collection(timetableCollection).Doc(request.SubmissionID)
	if _, err := ref.Get(ctx); status.Code(err) == codes.NotFound {
		data["createdAt"] = now
	}
	if request.WeekdayPeriods != nil {
		data["weekdayPeriods"] = request.WeekdayPeriods
	}
	if request.Move != nil {
		data["move"] = request.Move
	}
	if request.ExcludeRule != "" {
		data["excludeRule"] = request.ExcludeRule
	}
	if request.Teachers != nil {
		data["teachers"] = request.Teachers
	}

	if _, err := ref.Set(ctx, data, firestore.MergeAll); err != nil {
		return errors.Internal("Failed to save timetable request", err)
	}
	return nil
}
