package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"CentroPokemon/internal/model"
	"CentroPokemon/internal/repository"

	"github.com/sirupsen/logrus"
)

// CollectionService applies the domain rules for a trainer's Pokémon
// collection: add from catalog data, list, remove.
type CollectionService struct {
	pokemons repository.PokemonRepository
	trainers repository.TrainerRepository
	registry *TypeRegistry
	logger   *logrus.Logger
}

// NewCollectionService creates a CollectionService.
func NewCollectionService(pokemons repository.PokemonRepository, trainers repository.TrainerRepository, registry *TypeRegistry, logger *logrus.Logger) *CollectionService {
	return &CollectionService{
		pokemons: pokemons,
		trainers: trainers,
		registry: registry,
		logger:   logger,
	}
}

// AddPokemonInput is the payload for adding a collection entry. Health and
// level default to 100/100/1 when unset.
type AddPokemonInput struct {
	PokeAPIID *int64
	NamePt    string
	NameEn    string
	SpriteURL string
	CurrentHP *int
	MaxHP     *int
	Level     *int
	Abilities []string
	TypeNames []string
}

// Add registers a Pokémon for the trainer. Every type name is resolved
// through the registry, which may insert new type rows as a byproduct.
func (s *CollectionService) Add(ctx context.Context, trainerID uint64, in AddPokemonInput) (*model.Pokemon, error) {
	trainer, err := s.trainers.FindByID(ctx, trainerID)
	if err != nil {
		return nil, fmt.Errorf("lookup trainer: %w", err)
	}
	if trainer == nil {
		return nil, fmt.Errorf("%w: trainer %d", ErrNotFound, trainerID)
	}

	if in.PokeAPIID != nil {
		existing, err := s.pokemons.FindByTrainerAndPokeAPIID(ctx, trainerID, *in.PokeAPIID)
		if err != nil {
			return nil, fmt.Errorf("check duplicate: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: pokemon already added for this trainer (source id %d)", ErrConflict, *in.PokeAPIID)
		}
	}

	namePt := strings.TrimSpace(in.NamePt)
	if namePt == "" {
		return nil, fmt.Errorf("%w: primary name is required", ErrValidation)
	}
	if !isAbsoluteHTTPURL(in.SpriteURL) {
		return nil, fmt.Errorf("%w: sprite url must be an absolute http(s) reference", ErrValidation)
	}
	if len(in.TypeNames) == 0 {
		return nil, fmt.Errorf("%w: select at least one type", ErrValidation)
	}

	currentHP := valueOrDefault(in.CurrentHP, 100)
	maxHP := valueOrDefault(in.MaxHP, 100)
	level := valueOrDefault(in.Level, 1)
	if currentHP < 1 || maxHP < 1 {
		return nil, fmt.Errorf("%w: health values must be at least 1", ErrValidation)
	}
	if level < 1 {
		return nil, fmt.Errorf("%w: level must be at least 1", ErrValidation)
	}

	types, err := s.registry.ResolveAll(ctx, in.TypeNames)
	if err != nil {
		return nil, fmt.Errorf("resolve types: %w", err)
	}

	var abilities []byte
	if len(in.Abilities) > 0 {
		abilities, err = json.Marshal(in.Abilities)
		if err != nil {
			return nil, fmt.Errorf("encode abilities: %w", err)
		}
	}

	p := &model.Pokemon{
		PokeAPIID: in.PokeAPIID,
		TrainerID: &trainer.ID,
		NamePt:    namePt,
		NameEn:    strings.TrimSpace(in.NameEn),
		SpriteURL: in.SpriteURL,
		CurrentHP: &currentHP,
		MaxHP:     &maxHP,
		Level:     level,
		Abilities: abilities,
		Types:     types,
	}
	if err := s.pokemons.Create(ctx, p); err != nil {
		if isDuplicate(err) {
			// a concurrent add with the same source id lost the race at
			// the storage layer; same contract as the pre-check
			return nil, fmt.Errorf("%w: pokemon already added for this trainer", ErrConflict)
		}
		return nil, fmt.Errorf("create pokemon: %w", err)
	}
	s.logger.WithField("trainer_id", trainerID).WithField("pokemon_id", p.ID).
		Info("pokemon added to collection")
	return p, nil
}

// List returns the trainer's collection. A trainer without Pokémon, or an
// unknown trainer id, yields an empty list rather than an error.
func (s *CollectionService) List(ctx context.Context, trainerID uint64) ([]*model.Pokemon, error) {
	return s.pokemons.FindByTrainer(ctx, trainerID)
}

// Remove deletes a collection entry if it belongs to the trainer. It returns
// false both for an unknown id and for another trainer's Pokémon, so callers
// cannot probe for existence.
func (s *CollectionService) Remove(ctx context.Context, trainerID, pokemonID uint64) (bool, error) {
	p, err := s.pokemons.FindByIDAndTrainer(ctx, pokemonID, trainerID)
	if err != nil {
		return false, fmt.Errorf("lookup pokemon: %w", err)
	}
	if p == nil {
		return false, nil
	}
	if err := s.pokemons.Delete(ctx, p); err != nil {
		return false, fmt.Errorf("delete pokemon: %w", err)
	}
	s.logger.WithField("trainer_id", trainerID).WithField("pokemon_id", pokemonID).
		Info("pokemon removed from collection")
	return true, nil
}

func isAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func valueOrDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
