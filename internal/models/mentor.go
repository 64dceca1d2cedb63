package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type Mentor struct {
	BaseModel
	MentorID                 string             `gorm:"uniqueIndex;not null"`
	UserID                   string             `gorm:"uniqueIndex;not null"`
	Name                     string             `gorm:"size:120;not null"`
	MentorType               MentorType         `gorm:"not null"`
	Domains                  datatypes.JSON     `gorm:"type:jsonb"` // ["software", "public_policy"]
	Location                 datatypes.JSON     `gorm:"type:jsonb"`
	AvailabilityHoursPerWeek float64            `gorm:"not null"`
	PreferredTimeSlots       datatypes.JSON     `gorm:"type:jsonb"` // ["mon_evening", "sat_morning"]
	ExpertiseLevel           ExpertiseLevel     `gorm:"not null"`
	YearsOfExperience        int                `gorm:"not null"`
	Bio                      string             `gorm:"size:500"`
	Languages                datatypes.JSON     `gorm:"type:jsonb"`
	MaxMentees               int                `gorm:"not null;default:1"`
	CurrentMenteesCount      int                `gorm:"default:0"`
	RemoteWilling            bool               `gorm:"default:false"`
	VerificationStatus       VerificationStatus `gorm:"index;default:'pending'"`
	ProfileEmbedding         datatypes.JSON     `gorm:"type:jsonb"` // 768 floats, empty when generation failed
}

func (m *Mentor) GetDomains() []string {
	return jsonToStrings(m.Domains)
}

func (m *Mentor) SetDomains(domains []string) {
	m.Domains = stringsToJSON(domains)
}

func (m *Mentor) GetLanguages() []string {
	return jsonToStrings(m.Languages)
}

func (m *Mentor) SetLanguages(languages []string) {
	m.Languages = stringsToJSON(languages)
}

func (m *Mentor) GetPreferredTimeSlots() []string {
	return jsonToStrings(m.PreferredTimeSlots)
}

func (m *Mentor) SetPreferredTimeSlots(slots []string) {
	m.PreferredTimeSlots = stringsToJSON(slots)
}

func (m *Mentor) GetLocation() Location {
	var loc Location
	if len(m.Location) > 0 {
		_ = json.Unmarshal(m.Location, &loc)
	}
	return loc
}

func (m *Mentor) SetLocation(loc Location) {
	data, _ := json.Marshal(loc)
	m.Location = datatypes.JSON(data)
}

func (m *Mentor) GetEmbedding() []float64 {
	return jsonToFloats(m.ProfileEmbedding)
}

func (m *Mentor) SetEmbedding(embedding []float64) {
	data, _ := json.Marshal(embedding)
	m.ProfileEmbedding = datatypes.JSON(data)
}

// HasCapacity reports whether the mentor can take another mentee.
func (m *Mentor) HasCapacity() bool {
	return m.CurrentMenteesCount < m.MaxMentees
}

func jsonToStrings(data datatypes.JSON) []string {
	var out []string
	if len(data) > 0 {
		_ = json.Unmarshal(data, &out)
	}
	return out
}

func stringsToJSON(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	data, _ := json.Marshal(values)
	return datatypes.JSON(data)
}

func jsonToFloats(data datatypes.JSON) []float64 {
	var out []float64
	if len(data) > 0 {
		_ = json.Unmarshal(data, &out)
	}
	return out
}
