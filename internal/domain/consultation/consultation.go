package consultation

import (
	"time"

	"github.com/google/uuid"
)

// Status lifecycle: Draft → Completed, terminal. Completing a consultation
// also completes its appointment in the same transaction.
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusCompleted Status = "Completed"
)

type Consultation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	// At most one consultation per appointment; the unique index closes
	// the race between the duplicate check and the insert.
	AppointmentID uuid.UUID `gorm:"column:appointment_id;type:uuid;not null;uniqueIndex"`

	// Denormalized from the appointment so a patient's consultation
	// history is a single-table query.
	PatientID uuid.UUID `gorm:"column:patient_id;type:uuid;not null;index"`

	// Vitals are short free-text measurements, e.g. blood pressure and
	// temperature. Nil means the field was left blank on the form.
	Vitals1 *string `gorm:"column:vitals_1;type:varchar(100)"`
	Vitals2 *string `gorm:"column:vitals_2;type:varchar(100)"`
	Notes   *string `gorm:"column:notes;type:text"`

	Status Status `gorm:"column:status;type:varchar(20);not null;default:'Draft';index"`

	CompletedAt *time.Time `gorm:"column:completed_at"`
}

func (Consultation) TableName() string {
	return "opd.consultations"
}

func (c *Consultation) IsDraft() bool {
	return c.Status == StatusDraft
}

// Complete moves the consultation to its terminal state.
func (c *Consultation) Complete() error {
	if c.Status != StatusDraft {
		return ErrAlreadyCompleted
	}
	now := time.Now()
	c.Status = StatusCompleted
	c.CompletedAt = &now
	return nil
}

// CreateConsultationCommand carries raw form input for a new consultation.
type CreateConsultationCommand struct {
	AppointmentID uuid.UUID
	Vitals1       string
	Vitals2       string
	Notes         string
}

type ListConsultationsQuery struct {
	PatientID *uuid.UUID
	Status    *Status
}
