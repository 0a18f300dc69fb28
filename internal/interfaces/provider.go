package interfaces

import (
	"context"

	"CentroPokemon/internal/model"
)

// PokemonProvider is the external data boundary. Implementations must never
// let a transport error escape: network failures, not-found responses and
// malformed payloads all collapse to an absent (nil) result.
type PokemonProvider interface {
	// FetchPokemon loads a normalized record by name or numeric id,
	// or nil when the source has nothing usable.
	FetchPokemon(ctx context.Context, nameOrID string) *model.ExternalPokemon
	// FetchTypeRoster lists the source ids of Pokémon with the given type
	// code, or nil on any failure.
	FetchTypeRoster(ctx context.Context, typeCode string) []string
}
