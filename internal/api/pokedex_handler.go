package api

import (
	"net/http"

	"CentroPokemon/internal/adapter/pokeapi"
	"CentroPokemon/internal/config"
	"CentroPokemon/internal/repository"
	"CentroPokemon/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PokedexHandler exposes the read-through catalog.
type PokedexHandler struct {
	pokedex *service.PokedexService
	logger  *logrus.Logger
}

// NewPokedexHandler wires the catalog service with the external adapter.
func NewPokedexHandler(db *gorm.DB, logger *logrus.Logger, cfg *config.Config) *PokedexHandler {
	translations := service.DefaultTypeTranslations()
	registry := service.NewTypeRegistry(repository.NewTypeRepository(db), translations, logger)
	provider := pokeapi.NewAdapter(&cfg.PokeAPI, logger)
	return &PokedexHandler{
		pokedex: service.NewPokedexService(
			repository.NewPokemonRepository(db),
			registry,
			translations,
			provider,
			cfg.PokeAPI.TotalCount,
			logger,
		),
		logger: logger,
	}
}

// Service returns the underlying catalog service, used by the refresh job.
func (h *PokedexHandler) Service() *service.PokedexService {
	return h.pokedex
}

// Lookup finds an entry by name (either language) or source id.
// GET /api/pokedex/:nameOrId
func (h *PokedexHandler) Lookup(c *gin.Context) {
	p, err := h.pokedex.Lookup(c.Request.Context(), c.Param("nameOrId"))
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, pokemonResponse(p))
}

// Random loads a random catalog entry.
// GET /api/pokedex/random
func (h *PokedexHandler) Random(c *gin.Context) {
	p, err := h.pokedex.Random(c.Request.Context())
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, pokemonResponse(p))
}

// RandomByType loads a random entry of a given type.
// GET /api/pokedex/random/type/:type
func (h *PokedexHandler) RandomByType(c *gin.Context) {
	p, err := h.pokedex.RandomByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, pokemonResponse(p))
}
