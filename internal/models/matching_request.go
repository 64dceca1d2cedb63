package models

import (
	"time"

	"gorm.io/datatypes"
)

// MatchingRequest is a student's connection request to a mentor, with the
// compatibility score snapshotted at request time.
type MatchingRequest struct {
	BaseModel
	RequestID    string `gorm:"uniqueIndex;not null"`
	StudentID    string `gorm:"index;not null"`
	MentorID     string `gorm:"index;not null"`
	Message      string `gorm:"size:1000"`
	MatchScore   float64
	MatchFactors datatypes.JSON   `gorm:"type:jsonb"` // score breakdown at request time
	Status       ConnectionStatus `gorm:"index;default:'pending'"`
	ExpiresAt    time.Time
}

// IsOpen reports whether the request still blocks duplicates.
func (r *MatchingRequest) IsOpen() bool {
	return r.Status == ConnectionStatusPending || r.Status == ConnectionStatusAccepted
}
