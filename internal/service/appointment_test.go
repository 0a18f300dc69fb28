package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAppointmentService() (*AppointmentService, *fakeTrainerRepo, *fakePokemonRepo, *fakeAppointmentRepo) {
	trainers := newFakeTrainerRepo()
	pokemons := newFakePokemonRepo()
	appointments := newFakeAppointmentRepo()
	return NewAppointmentService(appointments, trainers, pokemons, testLogger()), trainers, pokemons, appointments
}

func TestScheduleAppointment(t *testing.T) {
	ctx := context.Background()
	svc, trainers, pokemons, _ := newTestAppointmentService()
	trainer := seedTrainer(t, trainers, "ash")
	p := seedOwnedPokemon(t, pokemons, trainer.ID, "Pikachu", intPtr(40), intPtr(100))

	when := time.Date(2026, 9, 10, 14, 30, 0, 0, time.UTC)
	a, err := svc.Schedule(ctx, trainer.ID, p.ID, "checkup", when, nil)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.NotEmpty(t, a.AppointmentUUID)
	assert.Equal(t, trainer.ID, a.TrainerID)
	assert.Equal(t, p.ID, a.PokemonID)
	assert.True(t, a.ScheduledAt.Equal(when))
}

func TestScheduleRejectsOtherTrainersPokemon(t *testing.T) {
	ctx := context.Background()
	svc, trainers, pokemons, appointments := newTestAppointmentService()
	ash := seedTrainer(t, trainers, "ash")
	misty := seedTrainer(t, trainers, "misty")
	p := seedOwnedPokemon(t, pokemons, misty.ID, "Staryu", intPtr(10), intPtr(50))

	_, err := svc.Schedule(ctx, ash.ID, p.ID, "checkup", time.Now().Add(time.Hour), nil)
	assert.ErrorIs(t, err, ErrOwnership)
	assert.Empty(t, appointments.appointments)
}

func TestScheduleUnknownTrainer(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestAppointmentService()

	_, err := svc.Schedule(ctx, 42, 1, "checkup", time.Now().Add(time.Hour), nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleValidation(t *testing.T) {
	ctx := context.Background()
	svc, trainers, pokemons, _ := newTestAppointmentService()
	trainer := seedTrainer(t, trainers, "ash")
	p := seedOwnedPokemon(t, pokemons, trainer.ID, "Pikachu", intPtr(40), intPtr(100))

	_, err := svc.Schedule(ctx, trainer.ID, p.ID, "   ", time.Now().Add(time.Hour), nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Schedule(ctx, trainer.ID, p.ID, "checkup", time.Time{}, nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListOrderedByScheduledTime(t *testing.T) {
	ctx := context.Background()
	svc, trainers, pokemons, _ := newTestAppointmentService()
	trainer := seedTrainer(t, trainers, "ash")
	p := seedOwnedPokemon(t, pokemons, trainer.ID, "Pikachu", intPtr(40), intPtr(100))

	later := time.Date(2026, 9, 20, 9, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	_, err := svc.Schedule(ctx, trainer.ID, p.ID, "vaccine", later, nil)
	require.NoError(t, err)
	_, err = svc.Schedule(ctx, trainer.ID, p.ID, "checkup", earlier, nil)
	require.NoError(t, err)

	list, err := svc.List(ctx, trainer.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "checkup", list[0].Category)
	assert.Equal(t, "vaccine", list[1].Category)
}
