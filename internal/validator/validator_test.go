package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Deepanshu41008/Yapassio-platform/internal/services/dto"
)

func validRegistration() *dto.RegisterMentorRequest {
	return &dto.RegisterMentorRequest{
		UserID:            "user-1",
		Name:              "Arjun",
		MentorType:        "industry",
		Domains:           []string{"software"},
		ExpertiseLevel:    "senior",
		YearsOfExperience: 10,
		Languages:         []string{"english"},
		MaxMentees:        2,
	}
}

func TestValidateRegisterMentor(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(validRegistration()))
}

func TestValidateRejectsUnknownEnums(t *testing.T) {
	v := New()

	req := validRegistration()
	req.MentorType = "astrologer"
	req.ExpertiseLevel = "wizard"

	err := v.Validate(req)
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, ve.Errors, "mentor_type")
	assert.Contains(t, ve.Errors, "expertise_level")
}

func TestValidateReportsWireFieldNames(t *testing.T) {
	v := New()

	req := validRegistration()
	req.Domains = nil
	req.MaxMentees = 0

	err := v.Validate(req)
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, ve.Errors, "domains")
	assert.Contains(t, ve.Errors, "max_mentees")
}

func TestValidateStudentAcademicLevel(t *testing.T) {
	v := New()

	req := &dto.UpsertStudentRequest{
		UserID:            "user-1",
		Name:              "Priya",
		DomainsOfInterest: []string{"software"},
		AcademicLevel:     "kindergarten",
	}

	err := v.Validate(req)
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, ve.Errors, "academic_level")
}
