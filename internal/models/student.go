package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type Student struct {
	BaseModel
	StudentID          string         `gorm:"uniqueIndex;not null"`
	UserID             string         `gorm:"uniqueIndex;not null"`
	Name               string         `gorm:"size:120;not null"`
	DomainsOfInterest  datatypes.JSON `gorm:"type:jsonb"`
	CareerGoals        datatypes.JSON `gorm:"type:jsonb"` // ordered, free text
	Location           datatypes.JSON `gorm:"type:jsonb"`
	PreferredTimeSlots datatypes.JSON `gorm:"type:jsonb"`
	AcademicLevel      AcademicLevel  `gorm:"not null"`
	Languages          datatypes.JSON `gorm:"type:jsonb"`
	Bio                string         `gorm:"size:500"`
	ProfileEmbedding   datatypes.JSON `gorm:"type:jsonb"`
}

func (s *Student) GetDomainsOfInterest() []string {
	return jsonToStrings(s.DomainsOfInterest)
}

func (s *Student) SetDomainsOfInterest(domains []string) {
	s.DomainsOfInterest = stringsToJSON(domains)
}

func (s *Student) GetCareerGoals() []string {
	return jsonToStrings(s.CareerGoals)
}

func (s *Student) SetCareerGoals(goals []string) {
	s.CareerGoals = stringsToJSON(goals)
}

func (s *Student) GetPreferredTimeSlots() []string {
	return jsonToStrings(s.PreferredTimeSlots)
}

func (s *Student) SetPreferredTimeSlots(slots []string) {
	s.PreferredTimeSlots = stringsToJSON(slots)
}

func (s *Student) GetLanguages() []string {
	return jsonToStrings(s.Languages)
}

func (s *Student) SetLanguages(languages []string) {
	s.Languages = stringsToJSON(languages)
}

func (s *Student) GetLocation() Location {
	var loc Location
	if len(s.Location) > 0 {
		_ = json.Unmarshal(s.Location, &loc)
	}
	return loc
}

func (s *Student) SetLocation(loc Location) {
	data, _ := json.Marshal(loc)
	s.Location = datatypes.JSON(data)
}

func (s *Student) GetEmbedding() []float64 {
	return jsonToFloats(s.ProfileEmbedding)
}

func (s *Student) SetEmbedding(embedding []float64) {
	data, _ := json.Marshal(embedding)
	s.ProfileEmbedding = datatypes.JSON(data)
}
