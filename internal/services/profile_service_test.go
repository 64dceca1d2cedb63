package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Deepanshu41008/Yapassio-platform/internal/logger"
	"github.com/Deepanshu41008/Yapassio-platform/internal/models"
	"github.com/Deepanshu41008/Yapassio-platform/internal/services/dto"
	"github.com/Deepanshu41008/Yapassio-platform/pkg/apperrors"
)

func mentorRegistration() *dto.RegisterMentorRequest {
	return &dto.RegisterMentorRequest{
		UserID:                   "user-m-1",
		Name:                     "Arjun",
		MentorType:               "industry",
		Domains:                  []string{"Software", "distributed-systems"},
		AvailabilityHoursPerWeek: 4,
		PreferredTimeSlots:       []string{"mon_evening"},
		ExpertiseLevel:           "senior",
		YearsOfExperience:        11,
		Bio:                      "Backend engineer and team lead.",
		Languages:                []string{"English", "Hindi"},
		MaxMentees:               3,
		RemoteWilling:            true,
	}
}

func studentUpsert() *dto.UpsertStudentRequest {
	return &dto.UpsertStudentRequest{
		UserID:            "user-s-1",
		Name:              "Priya",
		DomainsOfInterest: []string{"software"},
		CareerGoals:       []string{"become a backend engineer", "work on infrastructure"},
		AcademicLevel:     "undergrad",
		Languages:         []string{"english"},
	}
}

func newTestProfileService(collab *fakeCollaborator) (ProfileService, *fakeMentorRepo, *fakeStudentRepo) {
	mentorRepo := newFakeMentorRepo()
	studentRepo := newFakeStudentRepo()
	var svc ProfileService
	if collab == nil {
		svc = NewProfileService(mentorRepo, studentRepo, nil, nil, logger.NewNop())
	} else {
		svc = NewProfileService(mentorRepo, studentRepo, collab, nil, logger.NewNop())
	}
	return svc, mentorRepo, studentRepo
}

func TestRegisterMentor(t *testing.T) {
	collab := &fakeCollaborator{
		embedFn: func(text string) ([]float64, error) {
			assert.Contains(t, text, "Backend engineer and team lead.")
			assert.Contains(t, text, "software, distributed-systems")
			return []float64{0.1, 0.2, 0.3}, nil
		},
	}
	svc, mentorRepo, _ := newTestProfileService(collab)

	resp, err := svc.RegisterMentor(context.Background(), mentorRegistration())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.MentorID)
	assert.Equal(t, "pending", resp.VerificationStatus)
	assert.True(t, resp.ProfileEmbeddingGenerated)
	// Set-valued fields are normalized to lower case on the way in.
	assert.Equal(t, []string{"software", "distributed-systems"}, resp.Domains)
	assert.Equal(t, []string{"english", "hindi"}, resp.Languages)

	stored, err := mentorRepo.FindByMentorID(resp.MentorID)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, stored.GetEmbedding())
}

func TestRegisterMentorDuplicateUser(t *testing.T) {
	svc, _, _ := newTestProfileService(nil)

	_, err := svc.RegisterMentor(context.Background(), mentorRegistration())
	require.NoError(t, err)

	_, err = svc.RegisterMentor(context.Background(), mentorRegistration())
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestRegisterMentorEmbeddingFailureDegrades(t *testing.T) {
	collab := &fakeCollaborator{
		embedFn: func(text string) ([]float64, error) { return nil, errors.New("backend down") },
	}
	svc, _, _ := newTestProfileService(collab)

	resp, err := svc.RegisterMentor(context.Background(), mentorRegistration())
	require.NoError(t, err)
	assert.False(t, resp.ProfileEmbeddingGenerated)
}

func TestVerifyMentor(t *testing.T) {
	svc, _, _ := newTestProfileService(nil)

	created, err := svc.RegisterMentor(context.Background(), mentorRegistration())
	require.NoError(t, err)

	verified, err := svc.VerifyMentor(context.Background(), created.MentorID, models.VerificationStatusVerified)
	require.NoError(t, err)
	assert.Equal(t, "verified", verified.VerificationStatus)

	_, err = svc.VerifyMentor(context.Background(), created.MentorID, models.VerificationStatusPending)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidInput, appErr.Code)

	_, err = svc.VerifyMentor(context.Background(), "m-ghost", models.VerificationStatusVerified)
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestCreateOrUpdateStudentUpserts(t *testing.T) {
	embeddedTexts := []string{}
	collab := &fakeCollaborator{
		embedFn: func(text string) ([]float64, error) {
			embeddedTexts = append(embeddedTexts, text)
			return []float64{0.5}, nil
		},
	}
	svc, _, studentRepo := newTestProfileService(collab)

	created, err := svc.CreateOrUpdateStudent(context.Background(), studentUpsert())
	require.NoError(t, err)
	assert.NotEmpty(t, created.StudentID)
	assert.True(t, created.ProfileEmbeddingGenerated)
	// Goal order is meaningful and must survive the round trip.
	assert.Equal(t, []string{"become a backend engineer", "work on infrastructure"}, created.CareerGoals)

	update := studentUpsert()
	update.Bio = "Now focused on compilers."
	updated, err := svc.CreateOrUpdateStudent(context.Background(), update)
	require.NoError(t, err)
	assert.Equal(t, created.StudentID, updated.StudentID)
	assert.Equal(t, "Now focused on compilers.", updated.Bio)

	stored, err := studentRepo.FindByStudentID(created.StudentID)
	require.NoError(t, err)
	assert.Equal(t, "Now focused on compilers.", stored.Bio)

	// The embedding is regenerated on update, from the fresh profile text.
	require.Len(t, embeddedTexts, 2)
	assert.True(t, strings.Contains(embeddedTexts[1], "Now focused on compilers."))
}

func TestGetStudentNotFound(t *testing.T) {
	svc, _, _ := newTestProfileService(nil)

	_, err := svc.GetStudent(context.Background(), "ghost")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
