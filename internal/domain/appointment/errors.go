package appointment

import "errors"

var (
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrInvalidStatusTransition = errors.New("invalid appointment status transition")
	ErrScheduledInPast         = errors.New("appointment cannot be scheduled in the past")
	ErrNotScheduled            = errors.New("consultation can only be created for scheduled appointments")
)
