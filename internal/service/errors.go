package service

import "errors"

// Domain failure taxonomy. Services wrap these with fmt.Errorf("...: %w", ...)
// so callers can classify with errors.Is while keeping a readable message.
var (
	// ErrNotFound means a referenced trainer or Pokémon does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation means a required input is missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrConflict means a uniqueness rule was violated
	// (username, e-mail, or catalog entry already added).
	ErrConflict = errors.New("conflict")
	// ErrOwnership means the entity exists but belongs to another trainer.
	// Collection and healing operations fold this into ErrNotFound to avoid
	// leaking existence; the appointment service reports it as-is.
	ErrOwnership = errors.New("ownership mismatch")
)
