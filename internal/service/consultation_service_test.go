package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/appointment"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/consultation"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/patient"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/validation"
)

func newConsultationService(repo *mockConsultationRepo, apptRepo *mockAppointmentRepo, patientRepo *mockPatientRepo) *ConsultationService {
	return NewConsultationService(repo, apptRepo, patientRepo, newTestAuditService(), zap.NewNop())
}

type consultationFixture struct {
	patientID     uuid.UUID
	appointmentID uuid.UUID
	repo          *mockConsultationRepo
	apptRepo      *mockAppointmentRepo
	patientRepo   *mockPatientRepo
	svc           *ConsultationService
}

func newConsultationFixture() *consultationFixture {
	f := &consultationFixture{
		patientID:     uuid.New(),
		appointmentID: uuid.New(),
		repo:          new(mockConsultationRepo),
		apptRepo:      new(mockAppointmentRepo),
		patientRepo:   new(mockPatientRepo),
	}
	f.svc = newConsultationService(f.repo, f.apptRepo, f.patientRepo)
	return f
}

func (f *consultationFixture) givenAppointment(status appointment.Status) {
	f.apptRepo.On("GetByID", mock.Anything, f.appointmentID).
		Return(&appointment.Appointment{ID: f.appointmentID, PatientID: f.patientID, Status: status}, nil)
}

func (f *consultationFixture) givenNoExistingConsultation() {
	f.repo.On("GetByAppointmentID", mock.Anything, f.appointmentID).
		Return(nil, consultation.ErrConsultationNotFound)
}

func (f *consultationFixture) givenExistingConsultation() {
	f.repo.On("GetByAppointmentID", mock.Anything, f.appointmentID).
		Return(&consultation.Consultation{ID: uuid.New(), AppointmentID: f.appointmentID}, nil)
}

func (f *consultationFixture) givenPatient(status patient.Status) {
	f.patientRepo.On("GetByID", mock.Anything, f.patientID).
		Return(&patient.Patient{ID: f.patientID, Status: status}, nil)
}

func TestCreateConsultation(t *testing.T) {
	f := newConsultationFixture()
	f.givenAppointment(appointment.StatusScheduled)
	f.givenNoExistingConsultation()
	f.givenPatient(patient.StatusActive)
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("*consultation.Consultation")).Return(nil)

	c, err := f.svc.CreateConsultation(context.Background(), &consultation.CreateConsultationCommand{
		AppointmentID: f.appointmentID,
		Vitals1:       "120/80",
	}, "req-1", "127.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, consultation.StatusDraft, c.Status)
	assert.Equal(t, f.appointmentID, c.AppointmentID)
	assert.Equal(t, f.patientID, c.PatientID)
	require.NotNil(t, c.Vitals1)
	assert.Equal(t, "120/80", *c.Vitals1)
	// Blank optional fields are stored as absent, not empty strings.
	assert.Nil(t, c.Vitals2)
	assert.Nil(t, c.Notes)
}

// The workflow checks run in a fixed order: scheduled, uniqueness, patient
// active. Each test below makes every later check fail too, proving the
// earlier check wins.
func TestCreateConsultationCheckPrecedence(t *testing.T) {
	t.Run("not scheduled beats duplicate and inactive", func(t *testing.T) {
		f := newConsultationFixture()
		f.givenAppointment(appointment.StatusCompleted)
		f.givenExistingConsultation()
		f.givenPatient(patient.StatusInactive)

		_, err := f.svc.CreateConsultation(context.Background(),
			&consultation.CreateConsultationCommand{AppointmentID: f.appointmentID}, "req-1", "127.0.0.1")

		assert.ErrorIs(t, err, appointment.ErrNotScheduled)
	})

	t.Run("duplicate beats inactive", func(t *testing.T) {
		f := newConsultationFixture()
		f.givenAppointment(appointment.StatusScheduled)
		f.givenExistingConsultation()
		f.givenPatient(patient.StatusInactive)

		_, err := f.svc.CreateConsultation(context.Background(),
			&consultation.CreateConsultationCommand{AppointmentID: f.appointmentID}, "req-1", "127.0.0.1")

		assert.ErrorIs(t, err, consultation.ErrConsultationExists)
	})

	t.Run("inactive patient checked last", func(t *testing.T) {
		f := newConsultationFixture()
		f.givenAppointment(appointment.StatusScheduled)
		f.givenNoExistingConsultation()
		f.givenPatient(patient.StatusInactive)

		_, err := f.svc.CreateConsultation(context.Background(),
			&consultation.CreateConsultationCommand{AppointmentID: f.appointmentID}, "req-1", "127.0.0.1")

		assert.ErrorIs(t, err, patient.ErrPatientInactive)
	})
}

func TestCreateConsultationRejectsUnknownAppointment(t *testing.T) {
	f := newConsultationFixture()
	f.apptRepo.On("GetByID", mock.Anything, f.appointmentID).
		Return(nil, appointment.ErrAppointmentNotFound)

	_, err := f.svc.CreateConsultation(context.Background(),
		&consultation.CreateConsultationCommand{AppointmentID: f.appointmentID}, "req-1", "127.0.0.1")

	assert.ErrorIs(t, err, appointment.ErrAppointmentNotFound)
}

func TestCreateConsultationRejectsOverlongFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cmd *consultation.CreateConsultationCommand)
		field  string
	}{
		{"vitals_1 over 100", func(c *consultation.CreateConsultationCommand) { c.Vitals1 = strings.Repeat("x", 101) }, "vitals_1"},
		{"vitals_2 over 100", func(c *consultation.CreateConsultationCommand) { c.Vitals2 = strings.Repeat("x", 101) }, "vitals_2"},
		{"notes over 1000", func(c *consultation.CreateConsultationCommand) { c.Notes = strings.Repeat("x", 1001) }, "notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newConsultationFixture()
			f.givenAppointment(appointment.StatusScheduled)
			f.givenNoExistingConsultation()
			f.givenPatient(patient.StatusActive)

			cmd := &consultation.CreateConsultationCommand{AppointmentID: f.appointmentID}
			tt.mutate(cmd)

			_, err := f.svc.CreateConsultation(context.Background(), cmd, "req-1", "127.0.0.1")

			var fieldErr *validation.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.field, fieldErr.Field)
			f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateConsultationDuplicateRaceSurfacesAsExists(t *testing.T) {
	// A concurrent insert can pass the duplicate check and lose at the
	// unique index instead.
	f := newConsultationFixture()
	f.givenAppointment(appointment.StatusScheduled)
	f.givenNoExistingConsultation()
	f.givenPatient(patient.StatusActive)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(consultation.ErrConsultationExists)

	_, err := f.svc.CreateConsultation(context.Background(),
		&consultation.CreateConsultationCommand{AppointmentID: f.appointmentID}, "req-1", "127.0.0.1")

	assert.ErrorIs(t, err, consultation.ErrConsultationExists)
}

func TestCompleteConsultation(t *testing.T) {
	f := newConsultationFixture()
	consID := uuid.New()
	f.repo.On("GetByID", mock.Anything, consID).
		Return(&consultation.Consultation{ID: consID, AppointmentID: f.appointmentID, PatientID: f.patientID, Status: consultation.StatusDraft}, nil)
	f.givenAppointment(appointment.StatusScheduled)
	f.repo.On("Complete", mock.Anything,
		mock.MatchedBy(func(c *consultation.Consultation) bool {
			return c.Status == consultation.StatusCompleted && c.CompletedAt != nil
		}),
		mock.MatchedBy(func(a *appointment.Appointment) bool {
			return a.Status == appointment.StatusCompleted && a.CompletedAt != nil
		}),
	).Return(nil)

	c, err := f.svc.CompleteConsultation(context.Background(), consID, "req-1", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, consultation.StatusCompleted, c.Status)
	f.repo.AssertExpectations(t)
}

func TestCompleteConsultationTwiceIsRejected(t *testing.T) {
	f := newConsultationFixture()
	consID := uuid.New()
	f.repo.On("GetByID", mock.Anything, consID).
		Return(&consultation.Consultation{ID: consID, AppointmentID: f.appointmentID, Status: consultation.StatusCompleted}, nil)

	_, err := f.svc.CompleteConsultation(context.Background(), consID, "req-1", "127.0.0.1")

	assert.ErrorIs(t, err, consultation.ErrAlreadyCompleted)
	f.repo.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}

func TestListCompletedForPatient(t *testing.T) {
	f := newConsultationFixture()
	f.givenPatient(patient.StatusActive)
	f.repo.On("List", mock.Anything, mock.MatchedBy(func(q *consultation.ListConsultationsQuery) bool {
		return q.PatientID != nil && *q.PatientID == f.patientID &&
			q.Status != nil && *q.Status == consultation.StatusCompleted
	})).Return([]*consultation.Consultation{}, nil)

	_, err := f.svc.ListCompletedForPatient(context.Background(), f.patientID)
	require.NoError(t, err)
	f.repo.AssertExpectations(t)
}

func TestListCompletedForPatientRejectsUnknownPatient(t *testing.T) {
	f := newConsultationFixture()
	f.patientRepo.On("GetByID", mock.Anything, f.patientID).Return(nil, patient.ErrPatientNotFound)

	_, err := f.svc.ListCompletedForPatient(context.Background(), f.patientID)
	assert.ErrorIs(t, err, patient.ErrPatientNotFound)
}
