package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gyomutime/internal/domain/entity"
	"gyomutime/pkg/errors"
)

type fakeElectivesRepo struct {
	configs    map[string]*entity.ElectivesConfig
	requests   []*entity.ElectivesRequest
	timetables map[string]*entity.TimetableRequest
}

func newFakeElectivesRepo() *fakeElectivesRepo {
	return &fakeElectivesRepo{
		configs:    map[string]*entity.ElectivesConfig{},
		timetables: map[string]*entity.TimetableRequest{},
	}
}

func (r *fakeElectivesRepo) GetConfig(ctx context.Context, termID string) (*entity.ElectivesConfig, error) {
	config, ok := r.configs[termID]
	if !ok {
		return nil, errors.NotFound("Electives config", nil)
	}
	return config, nil
}

func (r *fakeElectivesRepo) SaveConfig(ctx context.Context, config *entity.ElectivesConfig) error {
	copied := *config
	r.configs[config.TermID] = &copied
	return nil
}

func (r *fakeElectivesRepo) CreateRequest(ctx context.Context, request *entity.ElectivesRequest) error {
	request.ID = fmt.Sprintf("req-%d", len(r.requests)+1)
	copied := *request
	r.requests = append(r.requests, &copied)
	return nil
}

func (r *fakeElectivesRepo) SaveTimetableRequest(ctx context.Context, request *entity.TimetableRequest) error {
	copied := *request
	r.timetables[request.SubmissionID] = &copied
	return nil
}

func validSaveConfigInput() SaveConfigInput {
	return SaveConfigInput{
		TermID:   "2026-2",
		Blocks:   []entity.ElectivesBlock{{Key: "A", Name: "A블록", MaxRooms: 8}},
		Subjects: []entity.ElectivesSubject{{Name: "물리학II", Applicants: 42}},
	}
}

func TestSaveAndGetConfig(t *testing.T) {
	uc := NewElectivesUseCase(newFakeElectivesRepo())
	ctx := context.Background()

	saved, err := uc.SaveConfig(ctx, validSaveConfigInput())
	require.NoError(t, err)
	assert.True(t, saved.Public)

	got, err := uc.GetConfig(ctx, "2026-2")
	require.NoError(t, err)
	assert.Equal(t, "2026-2", got.TermID)

	_, err = uc.GetConfig(ctx, "")
	assert.True(t, errors.Is(err, "bad_request"))

	_, err = uc.GetConfig(ctx, "2030-1")
	assert.True(t, errors.Is(err, "not_found"))
}

func TestSaveConfigValidation(t *testing.T) {
	uc := NewElectivesUseCase(newFakeElectivesRepo())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*SaveConfigInput)
	}{
		{"empty term", func(in *SaveConfigInput) { in.TermID = "" }},
		{"term too long", func(in *SaveConfigInput) { in.TermID = strings.Repeat("a", 101) }},
		{"no blocks", func(in *SaveConfigInput) { in.Blocks = nil }},
		{"too many blocks", func(in *SaveConfigInput) {
			in.Blocks = make([]entity.ElectivesBlock, 21)
			for i := range in.Blocks {
				in.Blocks[i] = entity.ElectivesBlock{Key: fmt.Sprintf("k%d", i), Name: "n"}
			}
		}},
		{"block missing key", func(in *SaveConfigInput) { in.Blocks[0].Key = "" }},
		{"no subjects", func(in *SaveConfigInput) { in.Subjects = nil }},
		{"subject missing name", func(in *SaveConfigInput) { in.Subjects[0].Name = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validSaveConfigInput()
			tc.mutate(&input)
			_, err := uc.SaveConfig(ctx, input)
			assert.True(t, errors.Is(err, "bad_request"))
		})
	}
}

func TestSubmitRequest(t *testing.T) {
	repo := newFakeElectivesRepo()
	uc := NewElectivesUseCase(repo)
	ctx := context.Background()

	input := SubmitRequestInput{
		TermID:   "2026-2",
		Contact:  entity.Contact{Name: "<b>김선생</b>", Email: "kim@school.example.com"},
		Subjects: []entity.RequestSubject{{Name: "물리학II", Applicants: 42, Cap: 24, Sections: 2}},
		Notes:    "오후 배정 선호",
	}

	request, err := uc.SubmitRequest(ctx, input)
	require.NoError(t, err)
	assert.NotEmpty(t, request.ID)
	assert.Equal(t, "submitted", request.Status)
	assert.Equal(t, "김선생", request.Contact.Name)

	_, err = uc.SubmitRequest(ctx, SubmitRequestInput{Subjects: input.Subjects})
	assert.True(t, errors.Is(err, "bad_request"))

	_, err = uc.SubmitRequest(ctx, SubmitRequestInput{Contact: input.Contact})
	assert.True(t, errors.Is(err, "bad_request"))
}

func TestSubmitTimetable(t *testing.T) {
	repo := newFakeElectivesRepo()
	uc := NewElectivesUseCase(repo)
	ctx := context.Background()

	err := uc.SubmitTimetable(ctx, &entity.TimetableRequest{})
	assert.True(t, errors.Is(err, "bad_request"))

	err = uc.SubmitTimetable(ctx, &entity.TimetableRequest{
		SubmissionID: "sub-1",
		ExcludeRule:  strings.Repeat("a", 2001),
	})
	assert.True(t, errors.Is(err, "bad_request"))

	require.NoError(t, uc.SubmitTimetable(ctx, &entity.TimetableRequest{
		SubmissionID:   "sub-1",
		WeekdayPeriods: map[string]int{"mon": 7},
		ExcludeRule:    "<i>1교시 제외</i>",
	}))
	stored := repo.timetables["sub-1"]
	require.NotNil(t, stored)
	assert.Equal(t, "1교시 제외", stored.ExcludeRule)
}
