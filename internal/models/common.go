package models

import (
	"time"
)

type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CreatedAt time.Time `gorm:"default:now()"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// EmbeddingDimension is the contract dimensionality of profile embeddings.
// Gemini text-embedding-004 produces 768-dimensional vectors; student and
// mentor embeddings must agree for cosine similarity to be computable.
const EmbeddingDimension = 768

// Location is the structured place stored on both profile kinds.
// Coordinates are optional; Lat/Lon are only meaningful when HasCoordinates.
type Location struct {
	City           string  `json:"city"`
	State          string  `json:"state"`
	Country        string  `json:"country"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	HasCoordinates bool    `json:"has_coordinates"`
}
