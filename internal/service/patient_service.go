package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/patient"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/validation"
)

type PatientService struct {
	repo     patient.Repository
	auditSvc *AuditService
	log      *zap.Logger
}

func NewPatientService(repo patient.Repository, auditSvc *AuditService, log *zap.Logger) *PatientService {
	return &PatientService{
		repo:     repo,
		auditSvc: auditSvc,
		log:      log,
	}
}

// RegisterPatient validates the raw form fields in order, stopping at the
// first failure, and persists the new record with status Active.
func (s *PatientService) RegisterPatient(ctx context.Context, cmd *patient.RegisterPatientCommand, requestID, ip string) (*patient.Patient, error) {
	name, err := validation.PatientName(cmd.Name)
	if err != nil {
		return nil, err
	}
	gender, err := validation.Gender(cmd.Gender)
	if err != nil {
		return nil, err
	}
	age, err := validation.Age(cmd.Age)
	if err != nil {
		return nil, err
	}
	phone, err := validation.Phone(cmd.Phone)
	if err != nil {
		return nil, err
	}

	p := &patient.Patient{
		Name:   name,
		Gender: gender,
		Age:    age,
		Phone:  phone,
		Status: patient.StatusActive,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.log.Error("failed to create patient", zap.Error(err))
		return nil, fmt.Errorf("creating patient: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "create",
		ResourceType: "patient",
		ResourceID:   p.ID.String(),
		RequestID:    requestID,
		IPAddress:    ip,
	})

	s.log.Info("patient registered",
		zap.String("patient_id", p.ID.String()),
	)

	return p, nil
}

func (s *PatientService) GetPatient(ctx context.Context, id uuid.UUID) (*patient.Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// ListPatients returns patients matching q. An empty search term returns
// all patients; a non-empty term substring-matches name OR phone.
func (s *PatientService) ListPatients(ctx context.Context, q *patient.ListPatientsQuery) ([]*patient.Patient, error) {
	return s.repo.List(ctx, q)
}
