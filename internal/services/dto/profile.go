package dto

import "time"

type LocationPayload struct {
	City      string   `json:"city"`
	State     string   `json:"state"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type RegisterMentorRequest struct {
	UserID                   string          `json:"user_id" binding:"required"`
	Name                     string          `json:"name" binding:"required,max=120"`
	MentorType               string          `json:"mentor_type" binding:"required,is-mentor-type"`
	Domains                  []string        `json:"domains" binding:"required,min=1"`
	Location                 LocationPayload `json:"location"`
	AvailabilityHoursPerWeek float64         `json:"availability_hours_per_week" binding:"gte=0,lte=168"`
	PreferredTimeSlots       []string        `json:"preferred_time_slots"`
	ExpertiseLevel           string          `json:"expertise_level" binding:"required,is-expertise-level"`
	YearsOfExperience        int             `json:"years_of_experience" binding:"gte=0"`
	Bio                      string          `json:"bio" binding:"max=500"`
	Languages                []string        `json:"languages" binding:"required,min=1"`
	MaxMentees               int             `json:"max_mentees" binding:"gte=1"`
	RemoteWilling            bool            `json:"remote_willing"`
}

type UpsertStudentRequest struct {
	UserID             string          `json:"user_id" binding:"required"`
	Name               string          `json:"name" binding:"required,max=120"`
	DomainsOfInterest  []string        `json:"domains_of_interest" binding:"required,min=1"`
	CareerGoals        []string        `json:"career_goals"`
	Location           LocationPayload `json:"location"`
	PreferredTimeSlots []string        `json:"preferred_time_slots"`
	AcademicLevel      string          `json:"academic_level" binding:"required,is-academic-level"`
	Languages          []string        `json:"languages"`
	Bio                string          `json:"bio" binding:"max=500"`
}

type VerifyMentorRequest struct {
	Status string `json:"status" binding:"required,oneof=verified rejected"`
}

type MentorProfileResponse struct {
	MentorID                  string          `json:"mentor_id"`
	UserID                    string          `json:"user_id"`
	Name                      string          `json:"name"`
	MentorType                string          `json:"mentor_type"`
	Domains                   []string        `json:"domains"`
	Location                  LocationPayload `json:"location"`
	AvailabilityHoursPerWeek  float64         `json:"availability_hours_per_week"`
	PreferredTimeSlots        []string        `json:"preferred_time_slots"`
	ExpertiseLevel            string          `json:"expertise_level"`
	YearsOfExperience         int             `json:"years_of_experience"`
	Bio                       string          `json:"bio"`
	Languages                 []string        `json:"languages"`
	MaxMentees                int             `json:"max_mentees"`
	CurrentMenteesCount       int             `json:"current_mentees_count"`
	RemoteWilling             bool            `json:"remote_willing"`
	VerificationStatus        string          `json:"verification_status"`
	ProfileEmbeddingGenerated bool            `json:"profile_embedding_generated"`
	CreatedAt                 time.Time       `json:"created_at"`
}

type StudentProfileResponse struct {
	StudentID                 string          `json:"student_id"`
	UserID                    string          `json:"user_id"`
	Name                      string          `json:"name"`
	DomainsOfInterest         []string        `json:"domains_of_interest"`
	CareerGoals               []string        `json:"career_goals"`
	Location                  LocationPayload `json:"location"`
	PreferredTimeSlots        []string        `json:"preferred_time_slots"`
	AcademicLevel             string          `json:"academic_level"`
	Languages                 []string        `json:"languages"`
	Bio                       string          `json:"bio"`
	ProfileEmbeddingGenerated bool            `json:"profile_embedding_generated"`
	CreatedAt                 time.Time       `json:"created_at"`
}
