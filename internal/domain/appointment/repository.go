package appointment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error

	// GetByID retrieves an appointment by primary key. Returns
	// ErrAppointmentNotFound if not found.
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)

	// List returns appointments matching the query, ordered by scheduled time.
	List(ctx context.Context, q *ListAppointmentsQuery) ([]*Appointment, error)
}
