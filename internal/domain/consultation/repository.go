package consultation

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/appointment"
)

type Repository interface {
	// Create persists a new consultation. Returns ErrConsultationExists
	// if one already exists for the appointment (unique index violation).
	Create(ctx context.Context, c *Consultation) error

	// GetByID retrieves a consultation by primary key. Returns
	// ErrConsultationNotFound if not found.
	GetByID(ctx context.Context, id uuid.UUID) (*Consultation, error)

	// GetByAppointmentID retrieves the consultation attached to an
	// appointment, or ErrConsultationNotFound when none exists.
	GetByAppointmentID(ctx context.Context, appointmentID uuid.UUID) (*Consultation, error)

	// List returns consultations matching the query, newest first.
	List(ctx context.Context, q *ListConsultationsQuery) ([]*Consultation, error)

	// Complete persists the consultation and appointment status changes
	// in a single transaction; both writes commit or both roll back.
	Complete(ctx context.Context, c *Consultation, a *appointment.Appointment) error
}
