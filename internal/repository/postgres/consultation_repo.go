package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/appointment"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/consultation"
)

type ConsultationRepository struct {
	db *gorm.DB
}

func NewConsultationRepository(db *gorm.DB) *ConsultationRepository {
	return &ConsultationRepository{db: db}
}

func (r *ConsultationRepository) Create(ctx context.Context, c *consultation.Consultation) error {
	err := r.db.WithContext(ctx).Create(c).Error
	// TranslateError surfaces the unique index on appointment_id as
	// ErrDuplicatedKey, which closes the check/insert race.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return consultation.ErrConsultationExists
	}
	if err != nil {
		return fmt.Errorf("inserting consultation: %w", err)
	}
	return nil
}

func (r *ConsultationRepository) GetByID(ctx context.Context, id uuid.UUID) (*consultation.Consultation, error) {
	var c consultation.Consultation
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, consultation.ErrConsultationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching consultation: %w", err)
	}
	return &c, nil
}

func (r *ConsultationRepository) GetByAppointmentID(ctx context.Context, appointmentID uuid.UUID) (*consultation.Consultation, error) {
	var c consultation.Consultation
	err := r.db.WithContext(ctx).First(&c, "appointment_id = ?", appointmentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, consultation.ErrConsultationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching consultation by appointment: %w", err)
	}
	return &c, nil
}

func (r *ConsultationRepository) List(ctx context.Context, q *consultation.ListConsultationsQuery) ([]*consultation.Consultation, error) {
	tx := r.db.WithContext(ctx).Model(&consultation.Consultation{})

	if q.PatientID != nil {
		tx = tx.Where("patient_id = ?", *q.PatientID)
	}
	if q.Status != nil {
		tx = tx.Where("status = ?", *q.Status)
	}

	var consultations []*consultation.Consultation
	if err := tx.Order("created_at DESC").Find(&consultations).Error; err != nil {
		return nil, fmt.Errorf("listing consultations: %w", err)
	}
	return consultations, nil
}

// Complete persists the consultation and appointment status changes in a
// single transaction. No intermediate state (consultation Completed,
// appointment still Scheduled) is ever observable.
func (r *ConsultationRepository) Complete(ctx context.Context, c *consultation.Consultation, a *appointment.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&consultation.Consultation{}).
			Where("id = ?", c.ID).
			Updates(map[string]any{
				"status":       c.Status,
				"completed_at": c.CompletedAt,
			}).Error; err != nil {
			return fmt.Errorf("updating consultation status: %w", err)
		}

		if err := tx.Model(&appointment.Appointment{}).
			Where("id = ?", a.ID).
			Updates(map[string]any{
				"status":       a.Status,
				"completed_at": a.CompletedAt,
			}).Error; err != nil {
			return fmt.Errorf("updating appointment status: %w", err)
		}

		return nil
	})
}
