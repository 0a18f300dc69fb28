package pokeapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"CentroPokemon/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pikachuPayload = `{
	"id": 25,
	"name": "pikachu",
	"abilities": [
		{"ability": {"name": "static"}, "slot": 1},
		{"ability": {"name": "lightning-rod"}, "slot": 3}
	],
	"types": [{"slot": 1, "type": {"name": "electric"}}],
	"stats": [
		{"base_stat": 35, "stat": {"name": "hp"}},
		{"base_stat": 55, "stat": {"name": "attack"}},
		{"base_stat": 40, "stat": {"name": "defense"}},
		{"base_stat": 90, "stat": {"name": "speed"}},
		{"base_stat": 50, "stat": {"name": "special-attack"}},
		{"base_stat": 50, "stat": {"name": "special-defense"}}
	],
	"sprites": {
		"front_default": "https://sprites.example.com/front/25.png",
		"other": {
			"official-artwork": {"front_default": "https://sprites.example.com/art/25.png"},
			"dream_world": {"front_default": "https://sprites.example.com/dream/25.png"},
			"home": {"front_default": ""}
		}
	}
}`

const pikachuSpeciesPayload = `{
	"names": [
		{"name": "Pikachu", "language": {"name": "en"}},
		{"name": "Pikachu-BR", "language": {"name": "pt-BR"}}
	],
	"flavor_text_entries": [
		{"flavor_text": "Mouse\nPokemon.", "language": {"name": "en"}},
		{"flavor_text": "Rato\felétrico.", "language": {"name": "pt-BR"}}
	]
}`

const electricRosterPayload = `{
	"pokemon": [
		{"pokemon": {"name": "pikachu", "url": "https://pokeapi.co/api/v2/pokemon/25/"}},
		{"pokemon": {"name": "raichu", "url": "https://pokeapi.co/api/v2/pokemon/26/"}}
	]
}`

func testAdapter(t *testing.T, handler http.Handler) *Adapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.PokeAPIConfig{BaseURL: server.URL, Timeout: 2, RetryCount: 0}
	return NewAdapter(cfg, logger).(*Adapter)
}

func TestFetchPokemonNormalizes(t *testing.T) {
	adapter := testAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pokemon/pikachu":
			io.WriteString(w, pikachuPayload)
		case "/pokemon-species/25":
			io.WriteString(w, pikachuSpeciesPayload)
		default:
			http.NotFound(w, r)
		}
	}))

	ext := adapter.FetchPokemon(context.Background(), " Pikachu ")
	require.NotNil(t, ext)
	assert.Equal(t, int64(25), ext.PokeAPIID)
	assert.Equal(t, "pikachu", ext.NameEn)
	assert.Equal(t, "Pikachu-BR", ext.NamePt)
	assert.Equal(t, "https://sprites.example.com/art/25.png", ext.SpriteURL)
	assert.Equal(t, []string{"electric"}, ext.TypeCodes)
	assert.Equal(t, []string{"static", "lightning-rod"}, ext.Abilities)
	require.NotNil(t, ext.BaseStats)
	assert.Equal(t, 35, ext.BaseStats.HP)
	assert.Equal(t, 90, ext.BaseStats.Speed)
	assert.Equal(t, "Mouse Pokemon.", ext.DescriptionEn)
	assert.Equal(t, "Rato elétrico.", ext.DescriptionPt)
}

func TestFetchPokemonSpeciesBestEffort(t *testing.T) {
	adapter := testAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/pokemon/pikachu" {
			io.WriteString(w, pikachuPayload)
			return
		}
		http.NotFound(w, r)
	}))

	ext := adapter.FetchPokemon(context.Background(), "pikachu")
	require.NotNil(t, ext)
	assert.Equal(t, "pikachu", ext.NameEn)
	assert.Empty(t, ext.NamePt)
	assert.Empty(t, ext.DescriptionEn)
}

func TestFetchPokemonFailuresCollapseToNil(t *testing.T) {
	notFound := testAdapter(t, http.HandlerFunc(http.NotFound))
	assert.Nil(t, notFound.FetchPokemon(context.Background(), "missingno"))

	malformed := testAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, "{not json")
	}))
	assert.Nil(t, malformed.FetchPokemon(context.Background(), "pikachu"))

	unusable := testAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"id": 0, "name": ""}`)
	}))
	assert.Nil(t, unusable.FetchPokemon(context.Background(), "pikachu"))
}

func TestFetchPokemonRetries(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		switch r.URL.Path {
		case "/pokemon/pikachu":
			io.WriteString(w, pikachuPayload)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.PokeAPIConfig{BaseURL: server.URL, Timeout: 2, RetryCount: 1}
	adapter := NewAdapter(cfg, logger).(*Adapter)

	ext := adapter.FetchPokemon(context.Background(), "pikachu")
	require.NotNil(t, ext)
	assert.Equal(t, int64(25), ext.PokeAPIID)
}

func TestFetchTypeRoster(t *testing.T) {
	adapter := testAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/type/electric" {
			io.WriteString(w, electricRosterPayload)
			return
		}
		http.NotFound(w, r)
	}))

	ids := adapter.FetchTypeRoster(context.Background(), "Electric")
	assert.Equal(t, []string{"25", "26"}, ids)

	assert.Nil(t, adapter.FetchTypeRoster(context.Background(), "plasma"))
}
