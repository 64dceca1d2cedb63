package models

type UserRole string
type MentorType string
type ExpertiseLevel string
type AcademicLevel string
type VerificationStatus string
type ConnectionStatus string

const (
	UserRoleStudent UserRole = "student"
	UserRoleMentor  UserRole = "mentor"
	UserRoleAdmin   UserRole = "admin"

	MentorTypeAcademia     MentorType = "academia"
	MentorTypeCivilService MentorType = "civil_service"
	MentorTypeIndustry     MentorType = "industry"
	MentorTypeEntrepreneur MentorType = "entrepreneur"

	ExpertiseLevelJunior ExpertiseLevel = "junior"
	ExpertiseLevelMid    ExpertiseLevel = "mid"
	ExpertiseLevelSenior ExpertiseLevel = "senior"
	ExpertiseLevelExpert ExpertiseLevel = "expert"

	AcademicLevelHighSchool   AcademicLevel = "high_school"
	AcademicLevelUndergrad    AcademicLevel = "undergrad"
	AcademicLevelPostgrad     AcademicLevel = "postgrad"
	AcademicLevelProfessional AcademicLevel = "professional"

	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusVerified VerificationStatus = "verified"
	VerificationStatusRejected VerificationStatus = "rejected"

	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusDeclined ConnectionStatus = "declined"
	ConnectionStatusExpired  ConnectionStatus = "expired"
)

func (t MentorType) IsValid() bool {
	switch t {
	case MentorTypeAcademia, MentorTypeCivilService, MentorTypeIndustry, MentorTypeEntrepreneur:
		return true
	}
	return false
}

func (l ExpertiseLevel) IsValid() bool {
	switch l {
	case ExpertiseLevelJunior, ExpertiseLevelMid, ExpertiseLevelSenior, ExpertiseLevelExpert:
		return true
	}
	return false
}

func (l AcademicLevel) IsValid() bool {
	switch l {
	case AcademicLevelHighSchool, AcademicLevelUndergrad, AcademicLevelPostgrad, AcademicLevelProfessional:
		return true
	}
	return false
}

func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationStatusPending, VerificationStatusVerified, VerificationStatusRejected:
		return true
	}
	return false
}
