package usecase

import (
	"context"
	"time"

	"gyomutime/internal/domain/entity"
	"gyomutime/internal/domain/repository"
	"gyomutime/pkg/errors"
)

type ElectivesUseCase struct {
	electivesRepo repository.ElectivesRepository
}

func NewElectivesUseCase(electivesRepo repository.ElectivesRepository) *ElectivesUseCase {
	return &ElectivesUseCase{
		electivesRepo: electivesRepo,
	}
}

func (uc *ElectivesUseCase) GetConfig(ctx context.Context, termID string) (*entity.ElectivesConfig, error) {
	if termID == "" {
		return nil, errors.BadRequest("termId is required", nil)
	}
	return uc.electivesRepo.GetConfig(ctx, termID)
}

type SaveConfigInput struct {
	TermID   string
	Blocks   []entity.ElectivesBlock
	Subjects []entity.ElectivesSubject
	Meta     map[string]interface{}
}

func (uc *ElectivesUseCase) SaveConfig(ctx context.Context, input SaveConfigInput) (*entity.ElectivesConfig, error) {
	if input.TermID == "" || len(input.TermID) > 100 {
		return nil, errors.BadRequest("termId must be 1-100 characters", nil)
	}
	if n := len(input.Blocks); n < 1 || n > 20 {
		return nil, errors.BadRequest("blocks must have 1-20 entries", nil)
	}
	if len(input.Subjects) == 0 {
		return nil, errors.BadRequest("at least one subject is required", nil)
	}
	for _, b := range input.Blocks {
		if b.Key == "" || b.Name == "" {
			return nil, errors.BadRequest("block key and name are required", nil)
		}
	}
	for _, s := range input.Subjects {
		if s.Name == "" {
			return nil, errors.BadRequest("subject name is required", nil)
		}
	}

	config := &entity.ElectivesConfig{
		TermID:   input.TermID,
		Blocks:   input.Blocks,
		Subjects: input.Subjects,
		Meta:     input.Meta,
		Public:   true,
	}
	if err := uc.electivesRepo.SaveConfig(ctx, config); err != nil {
		return nil, err
	}
	return config, nil
}

type SubmitRequestInput struct {
	TermID      string
	Contact     entity.Contact
	Constraints entity.ElectivesConstraints
	Notes       string
	Source      *entity.RequestSource
	Subjects    []entity.RequestSubject
	Teachers    *entity.TeacherConstraints
}

// SubmitRequest records a sectioning intake from the importer page.
func (uc *ElectivesUseCase) SubmitRequest(ctx context.Context, input SubmitRequestInput) (*entity.ElectivesRequest, error) {
	if input.Contact.Name == "" || input.Contact.Email == "" {
		return nil, errors.BadRequest("contact name and email are required", nil)
	}
	if len(input.Subjects) == 0 {
		return nil, errors.BadRequest("at least one subject is required", nil)
	}
	if len(input.Notes) > entity.MaxDescriptionLen {
		return nil, errors.BadRequest("notes too long", nil)
	}

	now := time.Now()
	request := &entity.ElectivesRequest{
		TermID: input.TermID,
		Contact: entity.Contact{
			Name:  sanitizePlain(input.Contact.Name),
			Email: sanitizePlain(input.Contact.Email),
		},
		Constraints: input.Constraints,
		Notes:       sanitizePlain(input.Notes),
		Source:      input.Source,
		Subjects:    input.Subjects,
		Teachers:    input.Teachers,
		Status:      "submitted",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.electivesRepo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// SubmitTimetable merge-saves timetable constraints keyed by submission id.
func (uc *ElectivesUseCase) SubmitTimetable(ctx context.Context, request *entity.TimetableRequest) error {
	if request.SubmissionID == "" {
		return errors.BadRequest("submissionId is required", nil)
	}
	if len(request.ExcludeRule) > 2000 {
		return errors.BadRequest("excludeRule too long", nil)
	}
	request.ExcludeRule = sanitizePlain(request.ExcludeRule)
	return uc.electivesRepo.SaveTimetableRequest(ctx, request)
}
