package appointment

import (
	"time"

	"github.com/google/uuid"
)

// State transitions possibilities:
//
//	scheduled → completed (side effect of completing the consultation)
//
// There is no cancellation and no reverse transition; completion happens
// exactly once.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
)

type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	PatientID uuid.UUID `gorm:"column:patient_id;type:uuid;not null;index"`

	DoctorName  string    `gorm:"column:doctor_name;type:varchar(100);not null"`
	ScheduledAt time.Time `gorm:"column:scheduled_at;not null;index"`

	Status Status `gorm:"column:status;type:varchar(20);not null;default:'Scheduled';index"`

	CompletedAt *time.Time `gorm:"column:completed_at"`
}

func (Appointment) TableName() string {
	return "opd.appointments"
}

func (a *Appointment) IsScheduled() bool {
	return a.Status == StatusScheduled
}

// Complete moves the appointment to its terminal state. It is only ever
// called as part of completing the appointment's consultation.
func (a *Appointment) Complete() error {
	if a.Status != StatusScheduled {
		return ErrInvalidStatusTransition
	}
	now := time.Now()
	a.Status = StatusCompleted
	a.CompletedAt = &now
	return nil
}

// ScheduleAppointmentCommand carries raw form input for scheduling.
type ScheduleAppointmentCommand struct {
	PatientID   string
	DoctorName  string
	ScheduledAt string
}

type ListAppointmentsQuery struct {
	PatientID *uuid.UUID
	Status    *Status
	// DayOf restricts results to appointments whose date component equals
	// this day, regardless of time of day or status.
	DayOf *time.Time
}
