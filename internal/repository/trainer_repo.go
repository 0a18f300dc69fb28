package repository

import (
	"context"
	"errors"

	"CentroPokemon/internal/model"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateKey signals a storage-level uniqueness violation. Services map
// it to their Conflict failure so a lost check-then-act race still fails safe.
var ErrDuplicateKey = errors.New("duplicate key")

// translateError converts driver unique-violation errors to ErrDuplicateKey.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateKey
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}

// TrainerRepository is the storage boundary for trainer accounts.
// Find lookups return (nil, nil) when no row matches.
type TrainerRepository interface {
	Create(ctx context.Context, t *model.Trainer) error
	FindByID(ctx context.Context, id uint64) (*model.Trainer, error)
	// FindByUsername matches case-insensitively.
	FindByUsername(ctx context.Context, username string) (*model.Trainer, error)
	// FindByEmail matches case-insensitively.
	FindByEmail(ctx context.Context, email string) (*model.Trainer, error)
}

type trainerRepository struct {
	db *gorm.DB
}

// NewTrainerRepository creates a TrainerRepository backed by gorm.
func NewTrainerRepository(db *gorm.DB) TrainerRepository {
	return &trainerRepository{db: db}
}

func (r *trainerRepository) Create(ctx context.Context, t *model.Trainer) error {
	return translateError(r.db.WithContext(ctx).Create(t).Error)
}

func (r *trainerRepository) FindByID(ctx context.Context, id uint64) (*model.Trainer, error) {
	var t model.Trainer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *trainerRepository) FindByUsername(ctx context.Context, username string) (*model.Trainer, error) {
	var t model.Trainer
	if err := r.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?)", username).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *trainerRepository) FindByEmail(ctx context.Context, email string) (*model.Trainer, error) {
	var t model.Trainer
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}
