package dto

import "time"

// MatchFilters are hard gates: a candidate failing any of them is excluded
// before scoring.
type MatchFilters struct {
	MaxDistanceKm       *float64 `json:"max_distance_km"`
	MentorTypes         []string `json:"mentor_types"`
	MinExperienceYears  *int     `json:"min_experience_years"`
	RequiredLanguages   []string `json:"required_languages"`
	IncludeFullCapacity bool     `json:"include_full_capacity"`
}

// MatchPreferences are soft signals that shape scores without excluding
// anyone.
type MatchPreferences struct {
	PreferRemote bool `json:"prefer_remote"`
}

type FindMentorsRequest struct {
	StudentID   string           `json:"student_id" binding:"required"`
	Filters     MatchFilters     `json:"filters"`
	Preferences MatchPreferences `json:"preferences"`
	Limit       int              `json:"limit"`
}

// ScoreBreakdown holds the five sub-scores, each already rounded to two
// decimals and in [0, 1].
type ScoreBreakdown struct {
	DomainSimilarity  float64 `json:"domain_similarity"`
	LocationScore     float64 `json:"location_score"`
	AvailabilityScore float64 `json:"availability_score"`
	ExperienceMatch   float64 `json:"experience_match"`
	LanguageMatch     float64 `json:"language_match"`
}

type MentorSummary struct {
	MentorID          string   `json:"mentor_id"`
	Name              string   `json:"name"`
	MentorType        string   `json:"mentor_type"`
	Domains           []string `json:"domains"`
	ExpertiseLevel    string   `json:"expertise_level"`
	YearsOfExperience int      `json:"years_of_experience"`
	Languages         []string `json:"languages"`
	Bio               string   `json:"bio"`
	City              string   `json:"city"`
	Country           string   `json:"country"`
	RemoteWilling     bool     `json:"remote_willing"`
}

type MatchResult struct {
	UserID             string         `json:"user_id"`
	MentorID           string         `json:"mentor_id"`
	CompatibilityScore float64        `json:"compatibility_score"`
	ScoreBreakdown     ScoreBreakdown `json:"score_breakdown"`
	DistanceKm         *float64       `json:"distance_km"`
	AIReasoning        string         `json:"ai_reasoning,omitempty"`
	MentorProfile      MentorSummary  `json:"mentor_profile"`
}

type FindMentorsResponse struct {
	Matches          []*MatchResult `json:"matches"`
	TotalEvaluated   int            `json:"total_evaluated"`
	AlgorithmVersion string         `json:"algorithm_version"`
	MatchedAt        time.Time      `json:"matched_at"`
}

// MatchingWeights expose the factor weights; they always sum to 1.0.
type MatchingWeights struct {
	DomainSimilarity  float64 `json:"domain_similarity"`
	LocationScore     float64 `json:"location_score"`
	AvailabilityScore float64 `json:"availability_score"`
	ExperienceMatch   float64 `json:"experience_match"`
	LanguageMatch     float64 `json:"language_match"`
}

type ConnectionRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	MentorID  string `json:"mentor_id" binding:"required"`
	Message   string `json:"message" binding:"max=1000"`
}

type ConnectionResponse struct {
	RequestID  string         `json:"request_id"`
	StudentID  string         `json:"student_id"`
	MentorID   string         `json:"mentor_id"`
	Status     string         `json:"status"`
	MatchScore float64        `json:"match_score"`
	Breakdown  ScoreBreakdown `json:"score_breakdown"`
	ExpiresAt  time.Time      `json:"expires_at"`
	CreatedAt  time.Time      `json:"created_at"`
}
