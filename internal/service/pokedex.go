package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"CentroPokemon/internal/interfaces"
	"CentroPokemon/internal/model"
	"CentroPokemon/internal/repository"

	"github.com/sirupsen/logrus"
)

// PokedexService serves the catalog as a read-through cache over the
// external data source: the local store is checked first, and on a miss the
// fetched record is merged into the catalog before being returned.
type PokedexService struct {
	pokemons     repository.PokemonRepository
	registry     *TypeRegistry
	translations *TypeTranslations
	provider     interfaces.PokemonProvider
	totalCount   int
	logger       *logrus.Logger
}

// NewPokedexService creates a PokedexService. totalCount bounds random
// lookups against the source id space.
func NewPokedexService(pokemons repository.PokemonRepository, registry *TypeRegistry, translations *TypeTranslations, provider interfaces.PokemonProvider, totalCount int, logger *logrus.Logger) *PokedexService {
	if totalCount <= 0 {
		totalCount = 898
	}
	return &PokedexService{
		pokemons:     pokemons,
		registry:     registry,
		translations: translations,
		provider:     provider,
		totalCount:   totalCount,
		logger:       logger,
	}
}

// Lookup finds a catalog entry by name (either language, case-insensitive)
// or numeric source id. On a local miss the external source is consulted;
// an absent external result surfaces as NotFound.
func (s *PokedexService) Lookup(ctx context.Context, nameOrID string) (*model.Pokemon, error) {
	query := strings.TrimSpace(nameOrID)
	if query == "" {
		return nil, fmt.Errorf("%w: name or id is required", ErrValidation)
	}

	local, err := s.findLocal(ctx, query)
	if err != nil {
		return nil, err
	}
	if local != nil {
		return local, nil
	}

	ext := s.provider.FetchPokemon(ctx, query)
	if ext == nil {
		return nil, fmt.Errorf("%w: pokemon %q", ErrNotFound, query)
	}
	return s.merge(ctx, ext)
}

// Random loads a random entry from the source id space.
func (s *PokedexService) Random(ctx context.Context) (*model.Pokemon, error) {
	id := rand.IntN(s.totalCount) + 1
	return s.Lookup(ctx, strconv.Itoa(id))
}

// RandomByType loads a random entry carrying the given type, which may be
// named in either language.
func (s *PokedexService) RandomByType(ctx context.Context, typeName string) (*model.Pokemon, error) {
	code := s.translations.ToEn(NormalizeTypeName(typeName))
	roster := s.provider.FetchTypeRoster(ctx, code)
	if len(roster) == 0 {
		return nil, fmt.Errorf("%w: no pokemon for type %q", ErrNotFound, typeName)
	}
	return s.Lookup(ctx, roster[rand.IntN(len(roster))])
}

// RefreshCatalog re-fetches the stalest catalog entries from the source and
// merges them, returning how many were refreshed. Entries the source no
// longer answers for are skipped.
func (s *PokedexService) RefreshCatalog(ctx context.Context, batchSize int) (int, error) {
	stale, err := s.pokemons.ListCatalogStalest(ctx, batchSize)
	if err != nil {
		return 0, fmt.Errorf("list stale catalog entries: %w", err)
	}
	refreshed := 0
	for _, p := range stale {
		if p.PokeAPIID == nil {
			continue
		}
		ext := s.provider.FetchPokemon(ctx, strconv.FormatInt(*p.PokeAPIID, 10))
		if ext == nil {
			continue
		}
		if _, err := s.merge(ctx, ext); err != nil {
			s.logger.WithError(err).WithField("poke_api_id", *p.PokeAPIID).
				Warn("catalog refresh merge failed")
			continue
		}
		refreshed++
	}
	return refreshed, nil
}

// findLocal checks the catalog by source id, then English name, then
// Portuguese name.
func (s *PokedexService) findLocal(ctx context.Context, query string) (*model.Pokemon, error) {
	if id, err := strconv.ParseInt(query, 10, 64); err == nil {
		p, err := s.pokemons.FindByPokeAPIID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("lookup catalog by source id: %w", err)
		}
		return p, nil
	}
	p, err := s.pokemons.FindByNameEn(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("lookup catalog by english name: %w", err)
	}
	if p != nil {
		return p, nil
	}
	p, err = s.pokemons.FindByNamePt(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("lookup catalog by portuguese name: %w", err)
	}
	return p, nil
}

// merge folds an external record into the catalog: an existing row with the
// same source id is updated in place, otherwise a new unowned row is
// created. Types are resolved through the registry, which may insert new
// type rows.
func (s *PokedexService) merge(ctx context.Context, ext *model.ExternalPokemon) (*model.Pokemon, error) {
	target, err := s.pokemons.FindByPokeAPIID(ctx, ext.PokeAPIID)
	if err != nil {
		return nil, fmt.Errorf("lookup catalog for merge: %w", err)
	}
	isNew := target == nil
	if isNew {
		sourceID := ext.PokeAPIID
		hp := 100
		current := 100
		target = &model.Pokemon{
			PokeAPIID: &sourceID,
			Level:     1,
			MaxHP:     &hp,
			CurrentHP: &current,
		}
	}

	target.NameEn = ext.NameEn
	if ext.NamePt != "" {
		target.NamePt = ext.NamePt
	} else {
		target.NamePt = ext.NameEn
	}
	if ext.SpriteURL != "" {
		target.SpriteURL = ext.SpriteURL
	}
	if len(ext.Abilities) > 0 {
		encoded, err := json.Marshal(ext.Abilities)
		if err != nil {
			return nil, fmt.Errorf("encode abilities: %w", err)
		}
		target.Abilities = encoded
	}

	if ext.BaseStats != nil {
		if ext.BaseStats.HP > 0 {
			hp := ext.BaseStats.HP
			current := ext.BaseStats.HP
			target.MaxHP = &hp
			target.CurrentHP = &current
		}
		if target.Stats == nil {
			target.Stats = &model.PokemonStats{}
		}
		target.Stats.HP = ext.BaseStats.HP
		target.Stats.Attack = ext.BaseStats.Attack
		target.Stats.Defense = ext.BaseStats.Defense
		target.Stats.Speed = ext.BaseStats.Speed
		target.Stats.SpecialAttack = ext.BaseStats.SpecialAttack
		target.Stats.SpecialDefense = ext.BaseStats.SpecialDefense
	}

	if ext.DescriptionPt != "" || ext.DescriptionEn != "" {
		var pt, en *string
		if ext.DescriptionPt != "" {
			pt = &ext.DescriptionPt
		}
		if ext.DescriptionEn != "" {
			en = &ext.DescriptionEn
		}
		if len(target.Descriptions) > 0 {
			target.Descriptions[0].TextPt = pt
			target.Descriptions[0].TextEn = en
		} else {
			target.Descriptions = []model.PokemonDescription{{TextPt: pt, TextEn: en}}
		}
	}

	types, err := s.registry.ResolveAll(ctx, ext.TypeCodes)
	if err != nil {
		return nil, fmt.Errorf("resolve types: %w", err)
	}

	if isNew {
		target.Types = types
		if err := s.pokemons.Create(ctx, target); err != nil {
			return nil, fmt.Errorf("create catalog entry: %w", err)
		}
	} else {
		if err := s.pokemons.Save(ctx, target); err != nil {
			return nil, fmt.Errorf("update catalog entry: %w", err)
		}
		if err := s.pokemons.ReplaceTypes(ctx, target, types); err != nil {
			return nil, fmt.Errorf("update catalog types: %w", err)
		}
		target.Types = types
	}
	s.logger.WithField("poke_api_id", ext.PokeAPIID).WithField("name_en", ext.NameEn).
		Debug("catalog entry merged from external source")
	return target, nil
}
