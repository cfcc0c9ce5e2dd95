package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/appointment"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/consultation"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/patient"
)

type mockPatientRepo struct {
	mock.Mock
}

func (m *mockPatientRepo) Create(ctx context.Context, p *patient.Patient) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPatientRepo) GetByID(ctx context.Context, id uuid.UUID) (*patient.Patient, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*patient.Patient); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPatientRepo) List(ctx context.Context, q *patient.ListPatientsQuery) ([]*patient.Patient, error) {
	args := m.Called(ctx, q)
	if ps, ok := args.Get(0).([]*patient.Patient); ok {
		return ps, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAppointmentRepo struct {
	mock.Mock
}

func (m *mockAppointmentRepo) Create(ctx context.Context, a *appointment.Appointment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*appointment.Appointment); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentRepo) List(ctx context.Context, q *appointment.ListAppointmentsQuery) ([]*appointment.Appointment, error) {
	args := m.Called(ctx, q)
	if as, ok := args.Get(0).([]*appointment.Appointment); ok {
		return as, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockConsultationRepo struct {
	mock.Mock
}

func (m *mockConsultationRepo) Create(ctx context.Context, c *consultation.Consultation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockConsultationRepo) GetByID(ctx context.Context, id uuid.UUID) (*consultation.Consultation, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*consultation.Consultation); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockConsultationRepo) GetByAppointmentID(ctx context.Context, appointmentID uuid.UUID) (*consultation.Consultation, error) {
	args := m.Called(ctx, appointmentID)
	if c, ok := args.Get(0).(*consultation.Consultation); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockConsultationRepo) List(ctx context.Context, q *consultation.ListConsultationsQuery) ([]*consultation.Consultation, error) {
	args := m.Called(ctx, q)
	if cs, ok := args.Get(0).([]*consultation.Consultation); ok {
		return cs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockConsultationRepo) Complete(ctx context.Context, c *consultation.Consultation, a *appointment.Appointment) error {
	args := m.Called(ctx, c, a)
	return args.Error(0)
}

// stubAuditRepo discards entries; the async audit path is not under test.
type stubAuditRepo struct{}

func (stubAuditRepo) Create(ctx context.Context, entry *domain.AuditLog) error { return nil }

func newTestAuditService() *AuditService {
	return NewAuditService(stubAuditRepo{}, zap.NewNop())
}
