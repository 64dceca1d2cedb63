package repositories

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Deepanshu41008/Yapassio-platform/internal/models"
)

var (
	ErrMentorNotFound      = errors.New("mentor not found")
	ErrMentorAlreadyExists = errors.New("mentor already exists for this user")
)

type MentorRepository interface {
	Create(mentor *models.Mentor) error
	FindByMentorID(mentorID string) (*models.Mentor, error)
	FindByUserID(userID string) (*models.Mentor, error)
	Update(mentor *models.Mentor) error
	UpdateVerificationStatus(mentorID string, status models.VerificationStatus) error
	IncrementMenteesCount(mentorID string) error
	SearchCandidates(criteria MentorSearchCriteria) ([]models.Mentor, error)
}

// MentorSearchCriteria holds the hard gates applied in SQL before any
// scoring happens. Soft preferences never appear here.
type MentorSearchCriteria struct {
	MentorTypes        []models.MentorType
	MinExperienceYears *int
	RequiredLanguages  []string
	OnlyWithCapacity   bool
	Limit              int
}

type MentorRepositoryImpl struct {
	db *gorm.DB
}

func NewMentorRepository(db *gorm.DB) MentorRepository {
	return &MentorRepositoryImpl{db: db}
}

func (r *MentorRepositoryImpl) Create(mentor *models.Mentor) error {
	var existing models.Mentor
	if err := r.db.Where("user_id = ?", mentor.UserID).First(&existing).Error; err == nil {
		return ErrMentorAlreadyExists
	}
	return r.db.Create(mentor).Error
}

func (r *MentorRepositoryImpl) FindByMentorID(mentorID string) (*models.Mentor, error) {
	var mentor models.Mentor
	err := r.db.Where("mentor_id = ?", mentorID).First(&mentor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMentorNotFound
		}
		return nil, err
	}
	return &mentor, nil
}

func (r *MentorRepositoryImpl) FindByUserID(userID string) (*models.Mentor, error) {
	var mentor models.Mentor
	err := r.db.Where("user_id = ?", userID).First(&mentor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMentorNotFound
		}
		return nil, err
	}
	return &mentor, nil
}

func (r *MentorRepositoryImpl) Update(mentor *models.Mentor) error {
	result := r.db.Model(mentor).Updates(map[string]interface{}{
		"name":                        mentor.Name,
		"mentor_type":                 mentor.MentorType,
		"domains":                     mentor.Domains,
		"location":                    mentor.Location,
		"availability_hours_per_week": mentor.AvailabilityHoursPerWeek,
		"preferred_time_slots":        mentor.PreferredTimeSlots,
		"expertise_level":             mentor.ExpertiseLevel,
		"years_of_experience":         mentor.YearsOfExperience,
		"bio":                         mentor.Bio,
		"languages":                   mentor.Languages,
		"max_mentees":                 mentor.MaxMentees,
		"remote_willing":              mentor.RemoteWilling,
		"profile_embedding":           mentor.ProfileEmbedding,
		"updated_at":                  time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMentorNotFound
	}
	return nil
}

func (r *MentorRepositoryImpl) UpdateVerificationStatus(mentorID string, status models.VerificationStatus) error {
	result := r.db.Model(&models.Mentor{}).Where("mentor_id = ?", mentorID).Updates(map[string]interface{}{
		"verification_status": status,
		"updated_at":          time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMentorNotFound
	}
	return nil
}

func (r *MentorRepositoryImpl) IncrementMenteesCount(mentorID string) error {
	return r.db.Model(&models.Mentor{}).Where("mentor_id = ?", mentorID).
		Update("current_mentees_count", gorm.Expr("current_mentees_count + ?", 1)).Error
}

// SearchCandidates returns verified mentors passing every hard gate, ordered
// by mentor_id for a stable candidate pool across identical requests.
func (r *MentorRepositoryImpl) SearchCandidates(criteria MentorSearchCriteria) ([]models.Mentor, error) {
	var mentors []models.Mentor
	query := r.db.Model(&models.Mentor{}).
		Where("verification_status = ?", models.VerificationStatusVerified)

	if len(criteria.MentorTypes) > 0 {
		query = query.Where("mentor_type IN ?", criteria.MentorTypes)
	}

	if criteria.MinExperienceYears != nil {
		query = query.Where("years_of_experience >= ?", *criteria.MinExperienceYears)
	}

	// JSONB containment: the mentor's languages must include every required
	// language, so conditions are joined with AND.
	if len(criteria.RequiredLanguages) > 0 {
		conditions := []string{}
		args := []interface{}{}

		for _, language := range criteria.RequiredLanguages {
			conditions = append(conditions, "languages::jsonb @> ?")
			languageJSON, _ := json.Marshal([]string{language})
			args = append(args, datatypes.JSON(languageJSON))
		}

		query = query.Where("("+strings.Join(conditions, " AND ")+")", args...)
	}

	if criteria.OnlyWithCapacity {
		query = query.Where("current_mentees_count < max_mentees")
	}

	query = query.Order("mentor_id ASC")
	if criteria.Limit > 0 {
		query = query.Limit(criteria.Limit)
	}

	err := query.Find(&mentors).Error
	return mentors, err
}
