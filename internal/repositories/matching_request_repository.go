package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Deepanshu41008/Yapassio-platform/internal/models"
)

var ErrMatchingRequestNotFound = errors.New("matching request not found")

type MatchingRequestRepository interface {
	Create(request *models.MatchingRequest) error
	FindByRequestID(requestID string) (*models.MatchingRequest, error)
	FindOpenRequest(studentID, mentorID string) (*models.MatchingRequest, error)
	ListByStudent(studentID string) ([]models.MatchingRequest, error)
	UpdateStatus(requestID string, status models.ConnectionStatus) error
	ExpireOverdue(now time.Time) (int64, error)
}

type MatchingRequestRepositoryImpl struct {
	db *gorm.DB
}

func NewMatchingRequestRepository(db *gorm.DB) MatchingRequestRepository {
	return &MatchingRequestRepositoryImpl{db: db}
}

func (r *MatchingRequestRepositoryImpl) Create(request *models.MatchingRequest) error {
	return r.db.Create(request).Error
}

func (r *MatchingRequestRepositoryImpl) FindByRequestID(requestID string) (*models.MatchingRequest, error) {
	var request models.MatchingRequest
	err := r.db.Where("request_id = ?", requestID).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchingRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

// FindOpenRequest returns the pending or accepted request between the pair,
// if one exists. Declined and expired requests do not block a new one.
func (r *MatchingRequestRepositoryImpl) FindOpenRequest(studentID, mentorID string) (*models.MatchingRequest, error) {
	var request models.MatchingRequest
	err := r.db.Where("student_id = ? AND mentor_id = ? AND status IN ?",
		studentID, mentorID,
		[]models.ConnectionStatus{models.ConnectionStatusPending, models.ConnectionStatusAccepted}).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchingRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *MatchingRequestRepositoryImpl) ListByStudent(studentID string) ([]models.MatchingRequest, error) {
	var requests []models.MatchingRequest
	err := r.db.Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *MatchingRequestRepositoryImpl) UpdateStatus(requestID string, status models.ConnectionStatus) error {
	result := r.db.Model(&models.MatchingRequest{}).Where("request_id = ?", requestID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMatchingRequestNotFound
	}
	return nil
}

// ExpireOverdue flips pending requests past their deadline to expired.
func (r *MatchingRequestRepositoryImpl) ExpireOverdue(now time.Time) (int64, error) {
	result := r.db.Model(&models.MatchingRequest{}).
		Where("status = ? AND expires_at < ?", models.ConnectionStatusPending, now).
		Updates(map[string]interface{}{
			"status":     models.ConnectionStatusExpired,
			"updated_at": now,
		})
	return result.RowsAffected, result.Error
}
