package repository

import (
	"context"
	"errors"

	"CentroPokemon/internal/model"

	"gorm.io/gorm"
)

// PokemonRepository is the storage boundary for collection entries.
// Find lookups return (nil, nil) when no row matches; list operations return
// empty slices, never an error, for unknown trainers.
type PokemonRepository interface {
	Create(ctx context.Context, p *model.Pokemon) error
	// Save persists the entry together with its stats and descriptions.
	Save(ctx context.Context, p *model.Pokemon) error
	SaveAll(ctx context.Context, list []*model.Pokemon) error
	Delete(ctx context.Context, p *model.Pokemon) error
	// ReplaceTypes rewrites the many-to-many type set of an entry.
	ReplaceTypes(ctx context.Context, p *model.Pokemon, types []model.Type) error

	FindByIDAndTrainer(ctx context.Context, id, trainerID uint64) (*model.Pokemon, error)
	FindByTrainer(ctx context.Context, trainerID uint64) ([]*model.Pokemon, error)
	FindByTrainerAndPokeAPIID(ctx context.Context, trainerID uint64, pokeAPIID int64) (*model.Pokemon, error)
	// FindByPokeAPIID returns the catalog row (no owner) for a source id.
	FindByPokeAPIID(ctx context.Context, pokeAPIID int64) (*model.Pokemon, error)
	// FindByNameEn / FindByNamePt match catalog rows case-insensitively.
	FindByNameEn(ctx context.Context, name string) (*model.Pokemon, error)
	FindByNamePt(ctx context.Context, name string) (*model.Pokemon, error)
	CountByTrainer(ctx context.Context, trainerID uint64) (int64, error)
	// ListCatalogStalest returns unowned catalog entries, least recently
	// updated first, for the periodic refresh job.
	ListCatalogStalest(ctx context.Context, limit int) ([]*model.Pokemon, error)
}

type pokemonRepository struct {
	db *gorm.DB
}

// NewPokemonRepository creates a PokemonRepository backed by gorm.
func NewPokemonRepository(db *gorm.DB) PokemonRepository {
	return &pokemonRepository{db: db}
}

// withAssociations preloads everything a collection entry carries.
func (r *pokemonRepository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Types").
		Preload("Stats").
		Preload("Descriptions")
}

func (r *pokemonRepository) Create(ctx context.Context, p *model.Pokemon) error {
	return translateError(r.db.WithContext(ctx).Create(p).Error)
}

func (r *pokemonRepository) Save(ctx context.Context, p *model.Pokemon) error {
	return translateError(r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(p).Error)
}

func (r *pokemonRepository) SaveAll(ctx context.Context, list []*model.Pokemon) error {
	if len(list) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Save(list).Error
}

func (r *pokemonRepository) Delete(ctx context.Context, p *model.Pokemon) error {
	return r.db.WithContext(ctx).Select("Stats", "Descriptions").Delete(p).Error
}

func (r *pokemonRepository) ReplaceTypes(ctx context.Context, p *model.Pokemon, types []model.Type) error {
	return r.db.WithContext(ctx).Model(p).Association("Types").Replace(types)
}

func (r *pokemonRepository) findOne(db *gorm.DB) (*model.Pokemon, error) {
	var p model.Pokemon
	if err := db.First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *pokemonRepository) FindByIDAndTrainer(ctx context.Context, id, trainerID uint64) (*model.Pokemon, error) {
	return r.findOne(r.withAssociations(ctx).
		Where("id = ? AND trainer_id = ?", id, trainerID))
}

func (r *pokemonRepository) FindByTrainer(ctx context.Context, trainerID uint64) ([]*model.Pokemon, error) {
	var list []*model.Pokemon
	if err := r.withAssociations(ctx).
		Where("trainer_id = ?", trainerID).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *pokemonRepository) FindByTrainerAndPokeAPIID(ctx context.Context, trainerID uint64, pokeAPIID int64) (*model.Pokemon, error) {
	return r.findOne(r.withAssociations(ctx).
		Where("trainer_id = ? AND poke_api_id = ?", trainerID, pokeAPIID))
}

func (r *pokemonRepository) FindByPokeAPIID(ctx context.Context, pokeAPIID int64) (*model.Pokemon, error) {
	return r.findOne(r.withAssociations(ctx).
		Where("poke_api_id = ? AND trainer_id IS NULL", pokeAPIID))
}

func (r *pokemonRepository) FindByNameEn(ctx context.Context, name string) (*model.Pokemon, error) {
	return r.findOne(r.withAssociations(ctx).
		Where("LOWER(name_en) = LOWER(?) AND trainer_id IS NULL", name))
}

func (r *pokemonRepository) FindByNamePt(ctx context.Context, name string) (*model.Pokemon, error) {
	return r.findOne(r.withAssociations(ctx).
		Where("LOWER(name_pt) = LOWER(?) AND trainer_id IS NULL", name))
}

func (r *pokemonRepository) CountByTrainer(ctx context.Context, trainerID uint64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Pokemon{}).
		Where("trainer_id = ?", trainerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *pokemonRepository) ListCatalogStalest(ctx context.Context, limit int) ([]*model.Pokemon, error) {
	if limit <= 0 {
		limit = 20
	}
	var list []*model.Pokemon
	if err := r.db.WithContext(ctx).
		Where("trainer_id IS NULL AND poke_api_id IS NOT NULL").
		Order("updated_at ASC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
