package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/appointment"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/consultation"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/patient"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/validation"
)

const (
	maxVitalsLen = 100
	maxNotesLen  = 1000
)

type ConsultationService struct {
	repo        consultation.Repository
	apptRepo    appointment.Repository
	patientRepo patient.Repository
	auditSvc    *AuditService
	log         *zap.Logger
}

func NewConsultationService(
	repo consultation.Repository,
	apptRepo appointment.Repository,
	patientRepo patient.Repository,
	auditSvc *AuditService,
	log *zap.Logger,
) *ConsultationService {
	return &ConsultationService{
		repo:        repo,
		apptRepo:    apptRepo,
		patientRepo: patientRepo,
		auditSvc:    auditSvc,
		log:         log,
	}
}

// CreateConsultation enforces the workflow preconditions in a fixed order:
// the appointment must be Scheduled, must not already have a consultation,
// and its patient must be Active. The first failing check is the rejection
// reason. Field validation of the optional text inputs follows the checks.
func (s *ConsultationService) CreateConsultation(ctx context.Context, cmd *consultation.CreateConsultationCommand, requestID, ip string) (*consultation.Consultation, error) {
	a, err := s.apptRepo.GetByID(ctx, cmd.AppointmentID)
	if err != nil {
		return nil, err
	}

	if !a.IsScheduled() {
		return nil, appointment.ErrNotScheduled
	}

	if _, err := s.repo.GetByAppointmentID(ctx, a.ID); err == nil {
		return nil, consultation.ErrConsultationExists
	} else if !errors.Is(err, consultation.ErrConsultationNotFound) {
		return nil, fmt.Errorf("checking existing consultation: %w", err)
	}

	p, err := s.patientRepo.GetByID(ctx, a.PatientID)
	if err != nil {
		return nil, fmt.Errorf("verifying patient: %w", err)
	}
	if !p.IsActive() {
		return nil, patient.ErrPatientInactive
	}

	vitals1, err := validation.OptionalText("vitals_1", cmd.Vitals1, maxVitalsLen)
	if err != nil {
		return nil, err
	}
	vitals2, err := validation.OptionalText("vitals_2", cmd.Vitals2, maxVitalsLen)
	if err != nil {
		return nil, err
	}
	notes, err := validation.OptionalText("notes", cmd.Notes, maxNotesLen)
	if err != nil {
		return nil, err
	}

	c := &consultation.Consultation{
		AppointmentID: a.ID,
		PatientID:     a.PatientID,
		Vitals1:       vitals1,
		Vitals2:       vitals2,
		Notes:         notes,
		Status:        consultation.StatusDraft,
	}

	// The unique index on appointment_id backs up the duplicate check
	// above: a concurrent insert loses here instead of slipping through.
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, consultation.ErrConsultationExists) {
			return nil, err
		}
		s.log.Error("failed to create consultation", zap.Error(err))
		return nil, fmt.Errorf("creating consultation: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "create",
		ResourceType: "consultation",
		ResourceID:   c.ID.String(),
		RequestID:    requestID,
		IPAddress:    ip,
	})

	s.log.Info("consultation created",
		zap.String("consultation_id", c.ID.String()),
		zap.String("appointment_id", a.ID.String()),
	)

	return c, nil
}

// CompleteConsultation moves a Draft consultation and its appointment to
// Completed in one transaction. Completing twice is rejected with no state
// change.
func (s *ConsultationService) CompleteConsultation(ctx context.Context, id uuid.UUID, requestID, ip string) (*consultation.Consultation, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.Complete(); err != nil {
		return nil, err
	}

	a, err := s.apptRepo.GetByID(ctx, c.AppointmentID)
	if err != nil {
		return nil, fmt.Errorf("loading appointment: %w", err)
	}
	if err := a.Complete(); err != nil {
		return nil, err
	}

	if err := s.repo.Complete(ctx, c, a); err != nil {
		s.log.Error("failed to complete consultation", zap.Error(err))
		return nil, fmt.Errorf("completing consultation: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "complete",
		ResourceType: "consultation",
		ResourceID:   c.ID.String(),
		RequestID:    requestID,
		IPAddress:    ip,
	})

	s.log.Info("consultation completed",
		zap.String("consultation_id", c.ID.String()),
		zap.String("appointment_id", a.ID.String()),
	)

	return c, nil
}

func (s *ConsultationService) GetConsultation(ctx context.Context, id uuid.UUID) (*consultation.Consultation, error) {
	return s.repo.GetByID(ctx, id)
}

// ListCompletedForPatient returns a patient's consultation history,
// restricted to Completed entries.
func (s *ConsultationService) ListCompletedForPatient(ctx context.Context, patientID uuid.UUID) ([]*consultation.Consultation, error) {
	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return nil, err
	}
	status := consultation.StatusCompleted
	return s.repo.List(ctx, &consultation.ListConsultationsQuery{
		PatientID: &patientID,
		Status:    &status,
	})
}
