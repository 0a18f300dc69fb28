package repository

import (
	"context"
	"errors"

	"CentroPokemon/internal/model"

	"gorm.io/gorm"
)

// TypeRepository is the storage boundary for type rows. Rows are created
// lazily on first encounter and never deleted.
type TypeRepository interface {
	Create(ctx context.Context, t *model.Type) error
	// FindByNamePt matches the canonical name case-insensitively.
	FindByNamePt(ctx context.Context, name string) (*model.Type, error)
	// FindByNameEn matches the source-language name case-insensitively.
	FindByNameEn(ctx context.Context, name string) (*model.Type, error)
	List(ctx context.Context) ([]*model.Type, error)
}

type typeRepository struct {
	db *gorm.DB
}

// NewTypeRepository creates a TypeRepository backed by gorm.
func NewTypeRepository(db *gorm.DB) TypeRepository {
	return &typeRepository{db: db}
}

func (r *typeRepository) Create(ctx context.Context, t *model.Type) error {
	return translateError(r.db.WithContext(ctx).Create(t).Error)
}

func (r *typeRepository) FindByNamePt(ctx context.Context, name string) (*model.Type, error) {
	var t model.Type
	if err := r.db.WithContext(ctx).
		Where("LOWER(name_pt) = LOWER(?)", name).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *typeRepository) FindByNameEn(ctx context.Context, name string) (*model.Type, error) {
	var t model.Type
	if err := r.db.WithContext(ctx).
		Where("LOWER(name_en) = LOWER(?)", name).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *typeRepository) List(ctx context.Context) ([]*model.Type, error) {
	var list []*model.Type
	if err := r.db.WithContext(ctx).Order("name_pt ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
