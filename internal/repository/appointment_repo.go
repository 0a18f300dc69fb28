package repository

import (
	"context"

	"CentroPokemon/internal/model"

	"gorm.io/gorm"
)

// AppointmentRepository is the storage boundary for scheduled visits.
// Appointments are never updated or deleted once created.
type AppointmentRepository interface {
	Create(ctx context.Context, a *model.Appointment) error
	// ListByTrainer returns a trainer's appointments ordered by scheduled
	// time ascending.
	ListByTrainer(ctx context.Context, trainerID uint64) ([]*model.Appointment, error)
}

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates an AppointmentRepository backed by gorm.
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, a *model.Appointment) error {
	return translateError(r.db.WithContext(ctx).Create(a).Error)
}

func (r *appointmentRepository) ListByTrainer(ctx context.Context, trainerID uint64) ([]*model.Appointment, error) {
	var list []*model.Appointment
	if err := r.db.WithContext(ctx).
		Where("trainer_id = ?", trainerID).
		Order("scheduled_at ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
