package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"CentroPokemon/internal/model"
	"CentroPokemon/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AppointmentService schedules and lists veterinary visits for a trainer's
// own Pokémon.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	trainers     repository.TrainerRepository
	pokemons     repository.PokemonRepository
	logger       *logrus.Logger
}

// NewAppointmentService creates an AppointmentService.
func NewAppointmentService(appointments repository.AppointmentRepository, trainers repository.TrainerRepository, pokemons repository.PokemonRepository, logger *logrus.Logger) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		trainers:     trainers,
		pokemons:     pokemons,
		logger:       logger,
	}
}

// Schedule creates an appointment. The trainer must exist and the Pokémon
// must belong to that trainer at creation time; ownership is not re-checked
// afterwards. Past dates and overlaps are accepted here; any such rule
// belongs to the layer above.
func (s *AppointmentService) Schedule(ctx context.Context, trainerID, pokemonID uint64, category string, whenUTC time.Time, notes *string) (*model.Appointment, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}
	if whenUTC.IsZero() {
		return nil, fmt.Errorf("%w: scheduled time is required", ErrValidation)
	}

	trainer, err := s.trainers.FindByID(ctx, trainerID)
	if err != nil {
		return nil, fmt.Errorf("lookup trainer: %w", err)
	}
	if trainer == nil {
		return nil, fmt.Errorf("%w: trainer %d", ErrNotFound, trainerID)
	}

	p, err := s.pokemons.FindByIDAndTrainer(ctx, pokemonID, trainerID)
	if err != nil {
		return nil, fmt.Errorf("lookup pokemon: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: pokemon does not belong to trainer", ErrOwnership)
	}

	a := &model.Appointment{
		AppointmentUUID: uuid.NewString(),
		TrainerID:       trainerID,
		PokemonID:       pokemonID,
		Category:        category,
		ScheduledAt:     whenUTC.UTC(),
		Notes:           notes,
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	s.logger.WithField("trainer_id", trainerID).WithField("appointment_uuid", a.AppointmentUUID).
		Info("appointment scheduled")
	return a, nil
}

// List returns the trainer's appointments ordered by scheduled time.
func (s *AppointmentService) List(ctx context.Context, trainerID uint64) ([]*model.Appointment, error) {
	return s.appointments.ListByTrainer(ctx, trainerID)
}
