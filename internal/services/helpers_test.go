package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/Deepanshu41008/Yapassio-platform/internal/models"
	"github.com/Deepanshu41008/Yapassio-platform/internal/repositories"
)

// In-memory repository fakes. SearchCandidates mirrors the SQL gates so the
// service tests exercise the same filtering contract as the real store.

type fakeStudentRepo struct {
	students map[string]*models.Student
}

func newFakeStudentRepo(students ...*models.Student) *fakeStudentRepo {
	r := &fakeStudentRepo{students: map[string]*models.Student{}}
	for _, s := range students {
		r.students[s.StudentID] = s
	}
	return r
}

func (r *fakeStudentRepo) Create(student *models.Student) error {
	r.students[student.StudentID] = student
	return nil
}

func (r *fakeStudentRepo) FindByStudentID(studentID string) (*models.Student, error) {
	if s, ok := r.students[studentID]; ok {
		return s, nil
	}
	return nil, repositories.ErrStudentNotFound
}

func (r *fakeStudentRepo) FindByUserID(userID string) (*models.Student, error) {
	for _, s := range r.students {
		if s.UserID == userID {
			return s, nil
		}
	}
	return nil, repositories.ErrStudentNotFound
}

func (r *fakeStudentRepo) Update(student *models.Student) error {
	if _, ok := r.students[student.StudentID]; !ok {
		return repositories.ErrStudentNotFound
	}
	r.students[student.StudentID] = student
	return nil
}

type fakeMentorRepo struct {
	mentors map[string]*models.Mentor
}

func newFakeMentorRepo(mentors ...*models.Mentor) *fakeMentorRepo {
	r := &fakeMentorRepo{mentors: map[string]*models.Mentor{}}
	for _, m := range mentors {
		r.mentors[m.MentorID] = m
	}
	return r
}

func (r *fakeMentorRepo) Create(mentor *models.Mentor) error {
	for _, m := range r.mentors {
		if m.UserID == mentor.UserID {
			return repositories.ErrMentorAlreadyExists
		}
	}
	r.mentors[mentor.MentorID] = mentor
	return nil
}

func (r *fakeMentorRepo) FindByMentorID(mentorID string) (*models.Mentor, error) {
	if m, ok := r.mentors[mentorID]; ok {
		return m, nil
	}
	return nil, repositories.ErrMentorNotFound
}

func (r *fakeMentorRepo) FindByUserID(userID string) (*models.Mentor, error) {
	for _, m := range r.mentors {
		if m.UserID == userID {
			return m, nil
		}
	}
	return nil, repositories.ErrMentorNotFound
}

func (r *fakeMentorRepo) Update(mentor *models.Mentor) error {
	if _, ok := r.mentors[mentor.MentorID]; !ok {
		return repositories.ErrMentorNotFound
	}
	r.mentors[mentor.MentorID] = mentor
	return nil
}

func (r *fakeMentorRepo) UpdateVerificationStatus(mentorID string, status models.VerificationStatus) error {
	m, ok := r.mentors[mentorID]
	if !ok {
		return repositories.ErrMentorNotFound
	}
	m.VerificationStatus = status
	return nil
}

func (r *fakeMentorRepo) IncrementMenteesCount(mentorID string) error {
	m, ok := r.mentors[mentorID]
	if !ok {
		return repositories.ErrMentorNotFound
	}
	m.CurrentMenteesCount++
	return nil
}

func (r *fakeMentorRepo) SearchCandidates(criteria repositories.MentorSearchCriteria) ([]models.Mentor, error) {
	var out []models.Mentor
	for _, m := range r.mentors {
		if m.VerificationStatus != models.VerificationStatusVerified {
			continue
		}
		if len(criteria.MentorTypes) > 0 && !containsType(criteria.MentorTypes, m.MentorType) {
			continue
		}
		if criteria.MinExperienceYears != nil && m.YearsOfExperience < *criteria.MinExperienceYears {
			continue
		}
		if !containsAll(m.GetLanguages(), criteria.RequiredLanguages) {
			continue
		}
		if criteria.OnlyWithCapacity && !m.HasCapacity() {
			continue
		}
		out = append(out, *m)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].MentorID < out[b].MentorID })
	if criteria.Limit > 0 && len(out) > criteria.Limit {
		out = out[:criteria.Limit]
	}
	return out, nil
}

func containsType(types []models.MentorType, t models.MentorType) bool {
	for _, v := range types {
		if v == t {
			return true
		}
	}
	return false
}

func containsAll(have, want []string) bool {
	set := map[string]struct{}{}
	for _, v := range have {
		set[v] = struct{}{}
	}
	for _, v := range want {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}

type fakeRequestRepo struct {
	requests map[string]*models.MatchingRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[string]*models.MatchingRequest{}}
}

func (r *fakeRequestRepo) Create(request *models.MatchingRequest) error {
	request.CreatedAt = time.Now().UTC()
	r.requests[request.RequestID] = request
	return nil
}

func (r *fakeRequestRepo) FindByRequestID(requestID string) (*models.MatchingRequest, error) {
	if req, ok := r.requests[requestID]; ok {
		return req, nil
	}
	return nil, repositories.ErrMatchingRequestNotFound
}

func (r *fakeRequestRepo) FindOpenRequest(studentID, mentorID string) (*models.MatchingRequest, error) {
	for _, req := range r.requests {
		if req.StudentID == studentID && req.MentorID == mentorID && req.IsOpen() {
			return req, nil
		}
	}
	return nil, repositories.ErrMatchingRequestNotFound
}

func (r *fakeRequestRepo) ListByStudent(studentID string) ([]models.MatchingRequest, error) {
	var out []models.MatchingRequest
	for _, req := range r.requests {
		if req.StudentID == studentID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) UpdateStatus(requestID string, status models.ConnectionStatus) error {
	req, ok := r.requests[requestID]
	if !ok {
		return repositories.ErrMatchingRequestNotFound
	}
	req.Status = status
	return nil
}

func (r *fakeRequestRepo) ExpireOverdue(now time.Time) (int64, error) {
	var n int64
	for _, req := range r.requests {
		if req.Status == models.ConnectionStatusPending && req.ExpiresAt.Before(now) {
			req.Status = models.ConnectionStatusExpired
			n++
		}
	}
	return n, nil
}

// fakeCollaborator scripts the AI backend.
type fakeCollaborator struct {
	embedFn    func(text string) ([]float64, error)
	generateFn func(prompt string) (string, error)
}

func (f *fakeCollaborator) Embed(_ context.Context, text string) ([]float64, error) {
	if f.embedFn != nil {
		return f.embedFn(text)
	}
	return nil, errors.New("no embedding scripted")
}

func (f *fakeCollaborator) GenerateText(_ context.Context, prompt string) (string, error) {
	if f.generateFn != nil {
		return f.generateFn(prompt)
	}
	return "", errors.New("no reply scripted")
}
