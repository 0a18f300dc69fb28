package service

import (
	"context"
	"fmt"

	"CentroPokemon/internal/model"
	"CentroPokemon/internal/repository"

	"github.com/sirupsen/logrus"
)

// CenterService restores the health of a trainer's Pokémon.
type CenterService struct {
	pokemons repository.PokemonRepository
	logger   *logrus.Logger
}

// NewCenterService creates a CenterService.
func NewCenterService(pokemons repository.PokemonRepository, logger *logrus.Logger) *CenterService {
	return &CenterService{pokemons: pokemons, logger: logger}
}

// CollectionStatus summarizes a trainer's collection health. Entries with
// unset health fields count toward Total but never toward NeedingHealing.
type CollectionStatus struct {
	Total          int64 `json:"total"`
	NeedingHealing int64 `json:"needing_healing"`
}

// Heal restores one Pokémon to full health. Healing an already healthy
// Pokémon succeeds and changes nothing. The Pokémon must belong to the
// trainer; otherwise the call fails with NotFound.
func (s *CenterService) Heal(ctx context.Context, trainerID, pokemonID uint64) (*model.Pokemon, error) {
	p, err := s.pokemons.FindByIDAndTrainer(ctx, pokemonID, trainerID)
	if err != nil {
		return nil, fmt.Errorf("lookup pokemon: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: pokemon does not belong to trainer", ErrNotFound)
	}
	p.Heal()
	if err := s.pokemons.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save pokemon: %w", err)
	}
	return p, nil
}

// HealAll restores every Pokémon the trainer owns in one batch and returns
// them; an empty collection yields an empty result.
func (s *CenterService) HealAll(ctx context.Context, trainerID uint64) ([]*model.Pokemon, error) {
	list, err := s.pokemons.FindByTrainer(ctx, trainerID)
	if err != nil {
		return nil, fmt.Errorf("list collection: %w", err)
	}
	if len(list) == 0 {
		return list, nil
	}
	for _, p := range list {
		p.Heal()
	}
	if err := s.pokemons.SaveAll(ctx, list); err != nil {
		return nil, fmt.Errorf("save collection: %w", err)
	}
	s.logger.WithField("trainer_id", trainerID).WithField("count", len(list)).
		Info("collection healed")
	return list, nil
}

// NeedsHealing reports whether a Pokémon is below its maximum health, under
// the same ownership rule as Heal.
func (s *CenterService) NeedsHealing(ctx context.Context, trainerID, pokemonID uint64) (bool, error) {
	p, err := s.pokemons.FindByIDAndTrainer(ctx, pokemonID, trainerID)
	if err != nil {
		return false, fmt.Errorf("lookup pokemon: %w", err)
	}
	if p == nil {
		return false, fmt.Errorf("%w: pokemon does not belong to trainer", ErrNotFound)
	}
	return p.NeedsHealing(), nil
}

// Status counts the trainer's Pokémon and how many of them need healing.
func (s *CenterService) Status(ctx context.Context, trainerID uint64) (*CollectionStatus, error) {
	total, err := s.pokemons.CountByTrainer(ctx, trainerID)
	if err != nil {
		return nil, fmt.Errorf("count collection: %w", err)
	}
	list, err := s.pokemons.FindByTrainer(ctx, trainerID)
	if err != nil {
		return nil, fmt.Errorf("list collection: %w", err)
	}
	var needing int64
	for _, p := range list {
		if p.NeedsHealing() {
			needing++
		}
	}
	return &CollectionStatus{Total: total, NeedingHealing: needing}, nil
}
