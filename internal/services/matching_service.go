package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"

	"github.com/Deepanshu41008/Yapassio-platform/internal/ai"
	"github.com/Deepanshu41008/Yapassio-platform/internal/algorithms"
	"github.com/Deepanshu41008/Yapassio-platform/internal/cache"
	"github.com/Deepanshu41008/Yapassio-platform/internal/config"
	"github.com/Deepanshu41008/Yapassio-platform/internal/logger"
	"github.com/Deepanshu41008/Yapassio-platform/internal/models"
	"github.com/Deepanshu41008/Yapassio-platform/internal/repositories"
	"github.com/Deepanshu41008/Yapassio-platform/internal/services/dto"
	"github.com/Deepanshu41008/Yapassio-platform/pkg/apperrors"
)

// AlgorithmVersion is reported on every matching response so clients can
// correlate results with the scoring formula that produced them.
const AlgorithmVersion = "1.0"

// Factor weights. They must sum to 1.0.
const (
	weightDomainSimilarity  = 0.40
	weightLocationScore     = 0.20
	weightAvailabilityScore = 0.15
	weightExperienceMatch   = 0.15
	weightLanguageMatch     = 0.10
)

const connectionRequestTTL = 7 * 24 * time.Hour

type MatchingService interface {
	FindMentors(ctx context.Context, req *dto.FindMentorsRequest) (*dto.FindMentorsResponse, error)
	ScoreMentor(ctx context.Context, student *models.Student, mentor *models.Mentor, maxDistanceKm float64) *dto.MatchResult
	RequestConnection(ctx context.Context, req *dto.ConnectionRequest) (*dto.ConnectionResponse, error)
	Weights() dto.MatchingWeights
}

type matchingService struct {
	studentRepo  repositories.StudentRepository
	mentorRepo   repositories.MentorRepository
	requestRepo  repositories.MatchingRequestRepository
	collaborator ai.Collaborator
	profileCache *cache.ProfileCache
	cfg          config.MatchingConfig
	log          logger.Logger
}

func NewMatchingService(
	studentRepo repositories.StudentRepository,
	mentorRepo repositories.MentorRepository,
	requestRepo repositories.MatchingRequestRepository,
	collaborator ai.Collaborator,
	profileCache *cache.ProfileCache,
	cfg config.MatchingConfig,
	log logger.Logger,
) MatchingService {
	return &matchingService{
		studentRepo:  studentRepo,
		mentorRepo:   mentorRepo,
		requestRepo:  requestRepo,
		collaborator: collaborator,
		profileCache: profileCache,
		cfg:          cfg,
		log:          log,
	}
}

// -------------------------------
// Matching
// -------------------------------

func (s *matchingService) FindMentors(ctx context.Context, req *dto.FindMentorsRequest) (*dto.FindMentorsResponse, error) {
	student, err := s.loadStudent(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	criteria := repositories.MentorSearchCriteria{
		MinExperienceYears: req.Filters.MinExperienceYears,
		RequiredLanguages:  normalizeAll(req.Filters.RequiredLanguages),
		OnlyWithCapacity:   !req.Filters.IncludeFullCapacity,
		Limit:              s.cfg.CandidatePoolLimit,
	}
	for _, raw := range req.Filters.MentorTypes {
		t := models.MentorType(raw)
		if !t.IsValid() {
			return nil, apperrors.InvalidInput(fmt.Sprintf("unknown mentor type %q", raw))
		}
		criteria.MentorTypes = append(criteria.MentorTypes, t)
	}

	candidates, err := s.mentorRepo.SearchCandidates(criteria)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	maxDistance := s.cfg.DefaultMaxDistanceKm
	if req.Filters.MaxDistanceKm != nil {
		if *req.Filters.MaxDistanceKm <= 0 {
			return nil, apperrors.InvalidInput("max_distance_km must be positive")
		}
		maxDistance = *req.Filters.MaxDistanceKm
	}

	// Score candidates concurrently. Each slot is written by exactly one
	// goroutine; a nil slot means the candidate was cut by the distance gate.
	results := make([]*dto.MatchResult, len(candidates))
	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(s.scoringConcurrency())

	for i := range candidates {
		i := i
		grp.Go(func() error {
			mentor := &candidates[i]
			match := s.ScoreMentor(grpCtx, student, mentor, maxDistance)
			// Remote-willing mentors pass the radius gate; their distance is
			// still computed and reported.
			if req.Filters.MaxDistanceKm != nil && !mentor.RemoteWilling &&
				match.DistanceKm != nil && *match.DistanceKm > *req.Filters.MaxDistanceKm {
				return nil
			}
			results[i] = match
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, apperrors.InternalError(err)
	}

	matches := make([]*dto.MatchResult, 0, len(results))
	for _, m := range results {
		if m != nil {
			matches = append(matches, m)
		}
	}

	totalEvaluated := len(matches)

	// Deterministic order: score descending, mentor_id ascending on ties.
	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].CompatibilityScore != matches[b].CompatibilityScore {
			return matches[a].CompatibilityScore > matches[b].CompatibilityScore
		}
		return matches[a].MentorID < matches[b].MentorID
	})

	limit := req.Limit
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	if limit > s.cfg.CandidatePoolLimit {
		limit = s.cfg.CandidatePoolLimit
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}

	s.explainMatches(ctx, student, matches)

	return &dto.FindMentorsResponse{
		Matches:          matches,
		TotalEvaluated:   totalEvaluated,
		AlgorithmVersion: AlgorithmVersion,
		MatchedAt:        time.Now().UTC(),
	}, nil
}

// ScoreMentor computes the five sub-scores and the weighted total for one
// candidate. It never fails: any collaborator trouble degrades the affected
// factor and the candidate stays ranked.
func (s *matchingService) ScoreMentor(ctx context.Context, student *models.Student, mentor *models.Mentor, maxDistanceKm float64) *dto.MatchResult {
	locationScore, distanceKm := s.locationScore(student, mentor, maxDistanceKm)

	breakdown := dto.ScoreBreakdown{
		DomainSimilarity:  round2(s.domainSimilarity(student, mentor)),
		LocationScore:     round2(locationScore),
		AvailabilityScore: round2(availabilityScore(student.GetPreferredTimeSlots(), mentor.GetPreferredTimeSlots())),
		ExperienceMatch:   round2(s.experienceMatch(ctx, student, mentor)),
		LanguageMatch:     round2(languageMatch(student.GetLanguages(), mentor.GetLanguages())),
	}

	// Sub-scores live on [0, 1]; the published total is on [0, 100].
	total := weightDomainSimilarity*breakdown.DomainSimilarity +
		weightLocationScore*breakdown.LocationScore +
		weightAvailabilityScore*breakdown.AvailabilityScore +
		weightExperienceMatch*breakdown.ExperienceMatch +
		weightLanguageMatch*breakdown.LanguageMatch

	loc := mentor.GetLocation()
	return &dto.MatchResult{
		UserID:             mentor.UserID,
		MentorID:           mentor.MentorID,
		CompatibilityScore: round2(total * 100),
		ScoreBreakdown:     breakdown,
		DistanceKm:         distanceKm,
		MentorProfile: dto.MentorSummary{
			MentorID:          mentor.MentorID,
			Name:              mentor.Name,
			MentorType:        string(mentor.MentorType),
			Domains:           mentor.GetDomains(),
			ExpertiseLevel:    string(mentor.ExpertiseLevel),
			YearsOfExperience: mentor.YearsOfExperience,
			Languages:         mentor.GetLanguages(),
			Bio:               mentor.Bio,
			City:              loc.City,
			Country:           loc.Country,
			RemoteWilling:     mentor.RemoteWilling,
		},
	}
}

func (s *matchingService) Weights() dto.MatchingWeights {
	return dto.MatchingWeights{
		DomainSimilarity:  weightDomainSimilarity,
		LocationScore:     weightLocationScore,
		AvailabilityScore: weightAvailabilityScore,
		ExperienceMatch:   weightExperienceMatch,
		LanguageMatch:     weightLanguageMatch,
	}
}

// -------------------------------
// Connection requests
// -------------------------------

func (s *matchingService) RequestConnection(ctx context.Context, req *dto.ConnectionRequest) (*dto.ConnectionResponse, error) {
	student, err := s.loadStudent(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	mentor, err := s.mentorRepo.FindByMentorID(req.MentorID)
	if err != nil {
		if errors.Is(err, repositories.ErrMentorNotFound) {
			return nil, apperrors.NotFound("mentor")
		}
		return nil, apperrors.DatabaseError(err)
	}

	if mentor.VerificationStatus != models.VerificationStatusVerified {
		return nil, apperrors.InvalidInput("mentor is not verified")
	}
	if !mentor.HasCapacity() {
		return nil, apperrors.InvalidInput("mentor has no mentee capacity left")
	}

	if _, err := s.requestRepo.FindOpenRequest(student.StudentID, mentor.MentorID); err == nil {
		return nil, apperrors.AlreadyExists("an open request to this mentor already exists")
	} else if !errors.Is(err, repositories.ErrMatchingRequestNotFound) {
		return nil, apperrors.DatabaseError(err)
	}

	match := s.ScoreMentor(ctx, student, mentor, s.cfg.DefaultMaxDistanceKm)
	factors, _ := json.Marshal(match.ScoreBreakdown)

	request := &models.MatchingRequest{
		RequestID:    uuid.New().String(),
		StudentID:    student.StudentID,
		MentorID:     mentor.MentorID,
		Message:      req.Message,
		MatchScore:   match.CompatibilityScore,
		MatchFactors: datatypes.JSON(factors),
		Status:       models.ConnectionStatusPending,
		ExpiresAt:    time.Now().UTC().Add(connectionRequestTTL),
	}
	if err := s.requestRepo.Create(request); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.ConnectionResponse{
		RequestID:  request.RequestID,
		StudentID:  request.StudentID,
		MentorID:   request.MentorID,
		Status:     string(request.Status),
		MatchScore: request.MatchScore,
		Breakdown:  match.ScoreBreakdown,
		ExpiresAt:  request.ExpiresAt,
		CreatedAt:  request.CreatedAt,
	}, nil
}

// -------------------------------
// Sub-scores
// -------------------------------

// domainSimilarity compares profile embeddings. Negative cosine values are
// clamped to zero since "opposite interests" carries no ranking meaning here,
// and a missing embedding on either side yields zero.
func (s *matchingService) domainSimilarity(student *models.Student, mentor *models.Mentor) float64 {
	sim := algorithms.CosineSimilarity(student.GetEmbedding(), mentor.GetEmbedding())
	if sim < 0 {
		return 0
	}
	return sim
}

// locationScore prefers remote-willing mentors outright, then decays linearly
// with distance when both sides have coordinates, then falls back to a
// textual city/state/country ladder.
func (s *matchingService) locationScore(student *models.Student, mentor *models.Mentor, maxDistanceKm float64) (float64, *float64) {
	studentLoc := student.GetLocation()
	mentorLoc := mentor.GetLocation()

	var distanceKm *float64
	if studentLoc.HasCoordinates && mentorLoc.HasCoordinates {
		d, err := algorithms.DistanceKm(
			algorithms.Coordinates{Latitude: studentLoc.Latitude, Longitude: studentLoc.Longitude},
			algorithms.Coordinates{Latitude: mentorLoc.Latitude, Longitude: mentorLoc.Longitude},
		)
		if err == nil {
			distanceKm = &d
		}
	}

	if mentor.RemoteWilling {
		return 1.0, distanceKm
	}

	if distanceKm != nil {
		return math.Max(0, 1-*distanceKm/maxDistanceKm), distanceKm
	}

	switch {
	case textEqual(studentLoc.City, mentorLoc.City):
		return 1.0, nil
	case textEqual(studentLoc.State, mentorLoc.State):
		return 0.6, nil
	case textEqual(studentLoc.Country, mentorLoc.Country):
		return 0.3, nil
	}
	return 0.1, nil
}

// availabilityScore is the fraction of the student's preferred slots the
// mentor also offers. A student with no stated slots is assumed flexible and
// gets the neutral 0.5.
func availabilityScore(studentSlots, mentorSlots []string) float64 {
	if len(studentSlots) == 0 {
		return 0.5
	}
	return float64(intersectionCount(studentSlots, mentorSlots)) / float64(len(studentSlots))
}

// experienceMatch starts from a deterministic tier distance between the
// student's academic level and the mentor's expertise, then lets the
// collaborator override it when it produces a usable number. Collaborator
// failure keeps the deterministic value.
func (s *matchingService) experienceMatch(ctx context.Context, student *models.Student, mentor *models.Mentor) float64 {
	score := tierScore(student.AcademicLevel, mentor.ExpertiseLevel)

	if s.collaborator == nil {
		return score
	}

	prompt := fmt.Sprintf(
		"A %s student seeks mentorship. The mentor is a %s-level %s professional with %d years of experience. "+
			"Rate how well the mentor's experience fits the student's stage. Answer with a single number from 0 to 1.",
		student.AcademicLevel, mentor.ExpertiseLevel, mentor.MentorType, mentor.YearsOfExperience,
	)
	reply, err := s.collaborator.GenerateText(ctx, prompt)
	if err != nil {
		s.log.Warn("experience assessment degraded to tier distance", map[string]interface{}{
			"mentor_id": mentor.MentorID,
			"error":     err.Error(),
		})
		return score
	}
	if v, ok := ai.ParseUnitScore(reply); ok {
		return v
	}
	return score
}

// languageMatch is the fraction of the student's languages the mentor
// speaks. A student listing no languages gets 1.0.
func languageMatch(studentLangs, mentorLangs []string) float64 {
	if len(studentLangs) == 0 {
		return 1.0
	}
	return float64(intersectionCount(studentLangs, mentorLangs)) / float64(len(studentLangs))
}

// expected mentor tier per academic stage, in expertise order
// junior, mid, senior, expert.
var expectedTier = map[models.AcademicLevel]int{
	models.AcademicLevelHighSchool:   0,
	models.AcademicLevelUndergrad:    1,
	models.AcademicLevelPostgrad:     2,
	models.AcademicLevelProfessional: 3,
}

var expertiseTier = map[models.ExpertiseLevel]int{
	models.ExpertiseLevelJunior: 0,
	models.ExpertiseLevelMid:    1,
	models.ExpertiseLevelSenior: 2,
	models.ExpertiseLevelExpert: 3,
}

func tierScore(level models.AcademicLevel, expertise models.ExpertiseLevel) float64 {
	distance := expectedTier[level] - expertiseTier[expertise]
	if distance < 0 {
		distance = -distance
	}
	return math.Max(0, 1-0.25*float64(distance))
}

// -------------------------------
// Explanations
// -------------------------------

// explainMatches attaches a collaborator-written reasoning line to each
// returned match. Strictly best effort: failures leave the field empty.
func (s *matchingService) explainMatches(ctx context.Context, student *models.Student, matches []*dto.MatchResult) {
	if s.collaborator == nil || len(matches) == 0 {
		return
	}

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(s.scoringConcurrency())

	for _, match := range matches {
		match := match
		grp.Go(func() error {
			prompt := fmt.Sprintf(
				"In two sentences, explain to a student interested in %s why mentor %s (%s, %s level, domains: %s) "+
					"is a good match. Compatibility score: %.2f.",
				strings.Join(student.GetDomainsOfInterest(), ", "),
				match.MentorProfile.Name,
				match.MentorProfile.MentorType,
				match.MentorProfile.ExpertiseLevel,
				strings.Join(match.MentorProfile.Domains, ", "),
				match.CompatibilityScore,
			)
			reasoning, err := s.collaborator.GenerateText(grpCtx, prompt)
			if err != nil {
				s.log.Warn("match explanation skipped", map[string]interface{}{
					"mentor_id": match.MentorID,
					"error":     err.Error(),
				})
				return nil
			}
			match.AIReasoning = strings.TrimSpace(reasoning)
			return nil
		})
	}
	_ = grp.Wait()
}

// -------------------------------
// Helpers
// -------------------------------

func (s *matchingService) loadStudent(ctx context.Context, studentID string) (*models.Student, error) {
	if student, ok := s.profileCache.GetStudent(ctx, studentID); ok {
		return student, nil
	}

	student, err := s.studentRepo.FindByStudentID(studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.NotFound("student")
		}
		return nil, apperrors.DatabaseError(err)
	}

	s.profileCache.SetStudent(ctx, student)
	return student, nil
}

func (s *matchingService) scoringConcurrency() int {
	if s.cfg.ScoringConcurrency > 0 {
		return s.cfg.ScoringConcurrency
	}
	return 1
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func normalizeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if n := normalize(v); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func textEqual(a, b string) bool {
	return a != "" && b != "" && normalize(a) == normalize(b)
}

func intersectionCount(wanted, offered []string) int {
	set := make(map[string]struct{}, len(offered))
	for _, v := range offered {
		set[normalize(v)] = struct{}{}
	}

	count := 0
	seen := make(map[string]struct{}, len(wanted))
	for _, v := range wanted {
		n := normalize(v)
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		if _, ok := set[n]; ok {
			count++
		}
	}
	return count
}
