package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Deepanshu41008/Yapassio-platform/internal/ai"
	"github.com/Deepanshu41008/Yapassio-platform/internal/cache"
	"github.com/Deepanshu41008/Yapassio-platform/internal/logger"
	"github.com/Deepanshu41008/Yapassio-platform/internal/models"
	"github.com/Deepanshu41008/Yapassio-platform/internal/repositories"
	"github.com/Deepanshu41008/Yapassio-platform/internal/services/dto"
	"github.com/Deepanshu41008/Yapassio-platform/pkg/apperrors"
)

type ProfileService interface {
	RegisterMentor(ctx context.Context, req *dto.RegisterMentorRequest) (*dto.MentorProfileResponse, error)
	GetMentor(ctx context.Context, mentorID string) (*dto.MentorProfileResponse, error)
	VerifyMentor(ctx context.Context, mentorID string, status models.VerificationStatus) (*dto.MentorProfileResponse, error)
	CreateOrUpdateStudent(ctx context.Context, req *dto.UpsertStudentRequest) (*dto.StudentProfileResponse, error)
	GetStudent(ctx context.Context, studentID string) (*dto.StudentProfileResponse, error)
}

type profileService struct {
	mentorRepo   repositories.MentorRepository
	studentRepo  repositories.StudentRepository
	collaborator ai.Collaborator
	profileCache *cache.ProfileCache
	log          logger.Logger
}

func NewProfileService(
	mentorRepo repositories.MentorRepository,
	studentRepo repositories.StudentRepository,
	collaborator ai.Collaborator,
	profileCache *cache.ProfileCache,
	log logger.Logger,
) ProfileService {
	return &profileService{
		mentorRepo:   mentorRepo,
		studentRepo:  studentRepo,
		collaborator: collaborator,
		profileCache: profileCache,
		log:          log,
	}
}

// -------------------------------
// Mentors
// -------------------------------

func (s *profileService) RegisterMentor(ctx context.Context, req *dto.RegisterMentorRequest) (*dto.MentorProfileResponse, error) {
	mentor := &models.Mentor{
		MentorID:                 uuid.New().String(),
		UserID:                   req.UserID,
		Name:                     req.Name,
		MentorType:               models.MentorType(req.MentorType),
		AvailabilityHoursPerWeek: req.AvailabilityHoursPerWeek,
		ExpertiseLevel:           models.ExpertiseLevel(req.ExpertiseLevel),
		YearsOfExperience:        req.YearsOfExperience,
		Bio:                      req.Bio,
		MaxMentees:               req.MaxMentees,
		RemoteWilling:            req.RemoteWilling,
		VerificationStatus:       models.VerificationStatusPending,
	}
	mentor.SetDomains(normalizeAll(req.Domains))
	mentor.SetLanguages(normalizeAll(req.Languages))
	mentor.SetPreferredTimeSlots(normalizeAll(req.PreferredTimeSlots))
	mentor.SetLocation(locationFromPayload(req.Location))

	mentor.SetEmbedding(s.embedProfile(ctx, mentorEmbeddingText(mentor), "mentor", mentor.MentorID))

	if err := s.mentorRepo.Create(mentor); err != nil {
		if errors.Is(err, repositories.ErrMentorAlreadyExists) {
			return nil, apperrors.AlreadyExists("a mentor profile already exists for this user")
		}
		return nil, apperrors.DatabaseError(err)
	}

	return mentorResponse(mentor), nil
}

func (s *profileService) GetMentor(ctx context.Context, mentorID string) (*dto.MentorProfileResponse, error) {
	mentor, err := s.mentorRepo.FindByMentorID(mentorID)
	if err != nil {
		if errors.Is(err, repositories.ErrMentorNotFound) {
			return nil, apperrors.NotFound("mentor")
		}
		return nil, apperrors.DatabaseError(err)
	}
	return mentorResponse(mentor), nil
}

func (s *profileService) VerifyMentor(ctx context.Context, mentorID string, status models.VerificationStatus) (*dto.MentorProfileResponse, error) {
	if status != models.VerificationStatusVerified && status != models.VerificationStatusRejected {
		return nil, apperrors.InvalidInput("status must be verified or rejected")
	}

	if err := s.mentorRepo.UpdateVerificationStatus(mentorID, status); err != nil {
		if errors.Is(err, repositories.ErrMentorNotFound) {
			return nil, apperrors.NotFound("mentor")
		}
		return nil, apperrors.DatabaseError(err)
	}

	return s.GetMentor(ctx, mentorID)
}

// -------------------------------
// Students
// -------------------------------

// CreateOrUpdateStudent upserts by user id. Career goals keep their submitted
// order; the profile embedding is regenerated on every upsert because any
// field may have shifted the profile's meaning.
func (s *profileService) CreateOrUpdateStudent(ctx context.Context, req *dto.UpsertStudentRequest) (*dto.StudentProfileResponse, error) {
	student, err := s.studentRepo.FindByUserID(req.UserID)
	isNew := false
	if err != nil {
		if !errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.DatabaseError(err)
		}
		isNew = true
		student = &models.Student{
			StudentID: uuid.New().String(),
			UserID:    req.UserID,
		}
	}

	student.Name = req.Name
	student.AcademicLevel = models.AcademicLevel(req.AcademicLevel)
	student.Bio = req.Bio
	student.SetDomainsOfInterest(normalizeAll(req.DomainsOfInterest))
	student.SetCareerGoals(req.CareerGoals)
	student.SetLanguages(normalizeAll(req.Languages))
	student.SetPreferredTimeSlots(normalizeAll(req.PreferredTimeSlots))
	student.SetLocation(locationFromPayload(req.Location))

	student.SetEmbedding(s.embedProfile(ctx, studentEmbeddingText(student), "student", student.StudentID))

	if isNew {
		err = s.studentRepo.Create(student)
	} else {
		err = s.studentRepo.Update(student)
	}
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	// Drop the stale cached copy; the next matching run re-fills it.
	s.profileCache.InvalidateStudent(ctx, student.StudentID)

	return studentResponse(student), nil
}

func (s *profileService) GetStudent(ctx context.Context, studentID string) (*dto.StudentProfileResponse, error) {
	student, err := s.studentRepo.FindByStudentID(studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.NotFound("student")
		}
		return nil, apperrors.DatabaseError(err)
	}
	return studentResponse(student), nil
}

// -------------------------------
// Embeddings
// -------------------------------

// embedProfile returns the semantic vector for a profile text, or an empty
// vector when the collaborator is unavailable. Registration must never fail
// on embedding trouble; the profile simply scores zero on domain similarity
// until it is re-embedded.
func (s *profileService) embedProfile(ctx context.Context, text, kind, id string) []float64 {
	if s.collaborator == nil {
		return nil
	}

	embedding, err := s.collaborator.Embed(ctx, text)
	if err != nil {
		s.log.Warn("profile embedding degraded to empty", map[string]interface{}{
			"profile_kind": kind,
			"profile_id":   id,
			"error":        err.Error(),
		})
		return nil
	}
	return embedding
}

func mentorEmbeddingText(m *models.Mentor) string {
	return fmt.Sprintf("Mentor bio: %s. Domains: %s. Expertise: %s %s with %d years of experience.",
		m.Bio,
		strings.Join(m.GetDomains(), ", "),
		m.ExpertiseLevel,
		m.MentorType,
		m.YearsOfExperience,
	)
}

func studentEmbeddingText(st *models.Student) string {
	return fmt.Sprintf("Student bio: %s. Interested in: %s. Career goals: %s. Academic level: %s.",
		st.Bio,
		strings.Join(st.GetDomainsOfInterest(), ", "),
		strings.Join(st.GetCareerGoals(), "; "),
		st.AcademicLevel,
	)
}

// -------------------------------
// Mapping
// -------------------------------

func locationFromPayload(p dto.LocationPayload) models.Location {
	loc := models.Location{
		City:    strings.TrimSpace(p.City),
		State:   strings.TrimSpace(p.State),
		Country: strings.TrimSpace(p.Country),
	}
	if p.Latitude != nil && p.Longitude != nil {
		loc.Latitude = *p.Latitude
		loc.Longitude = *p.Longitude
		loc.HasCoordinates = true
	}
	return loc
}

func locationPayload(loc models.Location) dto.LocationPayload {
	p := dto.LocationPayload{
		City:    loc.City,
		State:   loc.State,
		Country: loc.Country,
	}
	if loc.HasCoordinates {
		lat, lon := loc.Latitude, loc.Longitude
		p.Latitude = &lat
		p.Longitude = &lon
	}
	return p
}

func mentorResponse(m *models.Mentor) *dto.MentorProfileResponse {
	return &dto.MentorProfileResponse{
		MentorID:                  m.MentorID,
		UserID:                    m.UserID,
		Name:                      m.Name,
		MentorType:                string(m.MentorType),
		Domains:                   m.GetDomains(),
		Location:                  locationPayload(m.GetLocation()),
		AvailabilityHoursPerWeek:  m.AvailabilityHoursPerWeek,
		PreferredTimeSlots:        m.GetPreferredTimeSlots(),
		ExpertiseLevel:            string(m.ExpertiseLevel),
		YearsOfExperience:         m.YearsOfExperience,
		Bio:                       m.Bio,
		Languages:                 m.GetLanguages(),
		MaxMentees:                m.MaxMentees,
		CurrentMenteesCount:       m.CurrentMenteesCount,
		RemoteWilling:             m.RemoteWilling,
		VerificationStatus:        string(m.VerificationStatus),
		ProfileEmbeddingGenerated: len(m.GetEmbedding()) > 0,
		CreatedAt:                 m.CreatedAt,
	}
}

func studentResponse(st *models.Student) *dto.StudentProfileResponse {
	return &dto.StudentProfileResponse{
		StudentID:                 st.StudentID,
		UserID:                    st.UserID,
		Name:                      st.Name,
		DomainsOfInterest:         st.GetDomainsOfInterest(),
		CareerGoals:               st.GetCareerGoals(),
		Location:                  locationPayload(st.GetLocation()),
		PreferredTimeSlots:        st.GetPreferredTimeSlots(),
		AcademicLevel:             string(st.AcademicLevel),
		Languages:                 st.GetLanguages(),
		Bio:                       st.Bio,
		ProfileEmbeddingGenerated: len(st.GetEmbedding()) > 0,
		CreatedAt:                 st.CreatedAt,
	}
}
