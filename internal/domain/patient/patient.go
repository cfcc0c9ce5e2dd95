package patient

import (
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Status represents the lifecycle state of a patient record.
// Patients are registered Active and stay Active unless explicitly
// deactivated; no deactivation route is exposed yet.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	}
	return false
}

type Patient struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Name   string `gorm:"column:name;type:varchar(100);not null"`
	Gender Gender `gorm:"column:gender;type:varchar(10);not null"`
	Age    int    `gorm:"column:age;not null"`

	// Phone is stored exactly as entered; only the digit count is
	// validated, so "555-123-4567" round-trips with its separators.
	// 15 digits max, but separators count toward the raw length.
	Phone string `gorm:"column:phone;type:varchar(32);not null"`

	Status Status `gorm:"column:status;type:varchar(20);not null;default:'Active';index"`
}

func (Patient) TableName() string {
	return "opd.patients"
}

func (p *Patient) IsActive() bool {
	return p.Status == StatusActive
}

// RegisterPatientCommand carries raw form input; the service validates
// each field and rejects on the first failure.
type RegisterPatientCommand struct {
	Name   string
	Gender string
	Age    string
	Phone  string
}

// ListPatientsQuery filters the patient listing. Search matches a
// substring of name OR phone; empty search returns all patients.
type ListPatientsQuery struct {
	Search string
	Status *Status
}
