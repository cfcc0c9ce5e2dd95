package consultation

import "errors"

var (
	ErrConsultationNotFound = errors.New("consultation not found")
	ErrConsultationExists   = errors.New("consultation already exists for this appointment")
	ErrAlreadyCompleted     = errors.New("consultation is already completed")
)
