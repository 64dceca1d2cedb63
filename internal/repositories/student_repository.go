package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Deepanshu41008/Yapassio-platform/internal/models"
)

var ErrStudentNotFound = errors.New("student not found")

type StudentRepository interface {
	Create(student *models.Student) error
	FindByStudentID(studentID string) (*models.Student, error)
	FindByUserID(userID string) (*models.Student, error)
	Update(student *models.Student) error
}

type StudentRepositoryImpl struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &StudentRepositoryImpl{db: db}
}

func (r *StudentRepositoryImpl) Create(student *models.Student) error {
	return r.db.Create(student).Error
}

func (r *StudentRepositoryImpl) FindByStudentID(studentID string) (*models.Student, error) {
	var student models.Student
	err := r.db.Where("student_id = ?", studentID).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepositoryImpl) FindByUserID(userID string) (*models.Student, error) {
	var student models.Student
	err := r.db.Where("user_id = ?", userID).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepositoryImpl) Update(student *models.Student) error {
	result := r.db.Model(student).Updates(map[string]interface{}{
		"name":                 student.Name,
		"domains_of_interest":  student.DomainsOfInterest,
		"career_goals":         student.CareerGoals,
		"location":             student.Location,
		"preferred_time_slots": student.PreferredTimeSlots,
		"academic_level":       student.AcademicLevel,
		"languages":            student.Languages,
		"bio":                  student.Bio,
		"profile_embedding":    student.ProfileEmbedding,
		"updated_at":           time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStudentNotFound
	}
	return nil
}
