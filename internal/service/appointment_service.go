package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/appointment"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/patient"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/validation"
)

type AppointmentService struct {
	repo        appointment.Repository
	patientRepo patient.Repository
	auditSvc    *AuditService
	log         *zap.Logger
}

func NewAppointmentService(
	repo appointment.Repository,
	patientRepo patient.Repository,
	auditSvc *AuditService,
	log *zap.Logger,
) *AppointmentService {
	return &AppointmentService{repo: repo, patientRepo: patientRepo, auditSvc: auditSvc, log: log}
}

// ScheduleAppointment checks the referenced patient first (existence, then
// Active status), then validates the remaining fields, stopping at the
// first failure. A new appointment always starts Scheduled.
func (s *AppointmentService) ScheduleAppointment(ctx context.Context, cmd *appointment.ScheduleAppointmentCommand, requestID, ip string) (*appointment.Appointment, error) {
	patientID, err := uuid.Parse(cmd.PatientID)
	if err != nil {
		return nil, &validation.FieldError{Field: "patient_id", Reason: "invalid patient selection"}
	}

	p, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !p.IsActive() {
		return nil, patient.ErrPatientInactive
	}

	doctorName, err := validation.DoctorName(cmd.DoctorName)
	if err != nil {
		return nil, err
	}
	scheduledAt, err := validation.AppointmentTime(cmd.ScheduledAt, time.Now())
	if err != nil {
		return nil, err
	}

	a := &appointment.Appointment{
		PatientID:   patientID,
		DoctorName:  doctorName,
		ScheduledAt: scheduledAt,
		Status:      appointment.StatusScheduled,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.log.Error("failed to create appointment", zap.Error(err))
		return nil, fmt.Errorf("creating appointment: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "create",
		ResourceType: "appointment",
		ResourceID:   a.ID.String(),
		RequestID:    requestID,
		IPAddress:    ip,
	})

	s.log.Info("appointment scheduled",
		zap.String("appointment_id", a.ID.String()),
		zap.String("patient_id", patientID.String()),
		zap.Time("scheduled_at", scheduledAt),
	)

	return a, nil
}

func (s *AppointmentService) GetAppointment(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AppointmentService) ListAppointments(ctx context.Context, q *appointment.ListAppointmentsQuery) ([]*appointment.Appointment, error) {
	return s.repo.List(ctx, q)
}

// ListTodayAppointments returns every appointment whose date component is
// today, regardless of time of day or status.
func (s *AppointmentService) ListTodayAppointments(ctx context.Context) ([]*appointment.Appointment, error) {
	today := time.Now()
	return s.repo.List(ctx, &appointment.ListAppointmentsQuery{DayOf: &today})
}
