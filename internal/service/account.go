package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"CentroPokemon/internal/model"
	"CentroPokemon/internal/repository"
	"CentroPokemon/internal/utils/password"

	"github.com/sirupsen/logrus"
)

// AccountService registers and authenticates trainers.
type AccountService struct {
	trainers repository.TrainerRepository
	logger   *logrus.Logger
}

// NewAccountService creates an AccountService.
func NewAccountService(trainers repository.TrainerRepository, logger *logrus.Logger) *AccountService {
	return &AccountService{trainers: trainers, logger: logger}
}

// Register creates an active trainer account. All string inputs are trimmed;
// name, username, e-mail and password are required. Username and e-mail must
// be unique case-insensitively. The password is stored as an argon2id hash.
func (s *AccountService) Register(ctx context.Context, name, username, email, plaintext string, phone *string) (*model.Trainer, error) {
	name = strings.TrimSpace(name)
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	plaintext = strings.TrimSpace(plaintext)
	if name == "" || username == "" || email == "" || plaintext == "" {
		return nil, fmt.Errorf("%w: name, username, email and password are required", ErrValidation)
	}

	if existing, err := s.trainers.FindByUsername(ctx, username); err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	} else if existing != nil {
		return nil, fmt.Errorf("%w: username already registered: %s", ErrConflict, username)
	}
	if existing, err := s.trainers.FindByEmail(ctx, email); err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	} else if existing != nil {
		return nil, fmt.Errorf("%w: email already registered: %s", ErrConflict, email)
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var trimmedPhone *string
	if phone != nil {
		p := strings.TrimSpace(*phone)
		if p != "" {
			trimmedPhone = &p
		}
	}

	t := &model.Trainer{
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Phone:        trimmedPhone,
		Active:       true,
	}
	if err := s.trainers.Create(ctx, t); err != nil {
		if isDuplicate(err) {
			return nil, fmt.Errorf("%w: username or email already registered", ErrConflict)
		}
		return nil, fmt.Errorf("create trainer: %w", err)
	}
	s.logger.WithField("trainer_id", t.ID).WithField("username", t.Username).
		Info("trainer registered")
	return t, nil
}

// Authenticate verifies a credential against a stored hash. Lookup is by
// username first, then e-mail, both case-insensitive. An inactive account or
// a failed verification yields an absent result, not an error.
func (s *AccountService) Authenticate(ctx context.Context, usernameOrEmail, plaintext string) (*model.Trainer, error) {
	usernameOrEmail = strings.TrimSpace(usernameOrEmail)
	plaintext = strings.TrimSpace(plaintext)
	if usernameOrEmail == "" || plaintext == "" {
		return nil, nil
	}

	t, err := s.trainers.FindByUsername(ctx, usernameOrEmail)
	if err != nil {
		return nil, fmt.Errorf("lookup by username: %w", err)
	}
	if t == nil {
		t, err = s.trainers.FindByEmail(ctx, usernameOrEmail)
		if err != nil {
			return nil, fmt.Errorf("lookup by email: %w", err)
		}
	}
	if t == nil || !t.Active {
		return nil, nil
	}

	ok, err := password.Verify(plaintext, t.PasswordHash)
	if err != nil || !ok {
		return nil, nil
	}
	return t, nil
}

func isDuplicate(err error) bool {
	return errors.Is(err, repository.ErrDuplicateKey)
}
