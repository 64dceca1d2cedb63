package workers

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Deepanshu41008/Yapassio-platform/internal/logger"
	"github.com/Deepanshu41008/Yapassio-platform/internal/models"
	"github.com/Deepanshu41008/Yapassio-platform/internal/repositories"
)

type stubRequestRepo struct {
	expired int64
	err     error
	calls   int
}

func (s *stubRequestRepo) Create(*models.MatchingRequest) error { return nil }
func (s *stubRequestRepo) FindByRequestID(string) (*models.MatchingRequest, error) {
	return nil, repositories.ErrMatchingRequestNotFound
}
func (s *stubRequestRepo) FindOpenRequest(string, string) (*models.MatchingRequest, error) {
	return nil, repositories.ErrMatchingRequestNotFound
}
func (s *stubRequestRepo) ListByStudent(string) ([]models.MatchingRequest, error) { return nil, nil }
func (s *stubRequestRepo) UpdateStatus(string, models.ConnectionStatus) error     { return nil }
func (s *stubRequestRepo) ExpireOverdue(time.Time) (int64, error) {
	s.calls++
	return s.expired, s.err
}

func TestSweepReportsExpirations(t *testing.T) {
	repo := &stubRequestRepo{expired: 3}
	w := NewExpiryWorker(repo, time.Hour, logger.NewNop())

	w.sweep()
	assert.Equal(t, 1, repo.calls)
}

func TestSweepSurvivesRepositoryErrors(t *testing.T) {
	repo := &stubRequestRepo{err: errors.New("connection reset")}
	w := NewExpiryWorker(repo, time.Hour, logger.NewNop())

	// Must not panic; the next tick retries.
	w.sweep()
	w.sweep()
	assert.Equal(t, 2, repo.calls)
}
