package api

import (
	"net/http"

	"CentroPokemon/internal/repository"
	"CentroPokemon/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CenterHandler exposes the healing service.
type CenterHandler struct {
	center *service.CenterService
	logger *logrus.Logger
}

// NewCenterHandler wires the healing service from the DB handle.
func NewCenterHandler(db *gorm.DB, logger *logrus.Logger) *CenterHandler {
	return &CenterHandler{
		center: service.NewCenterService(repository.NewPokemonRepository(db), logger),
		logger: logger,
	}
}

// Heal restores one Pokémon to full health.
// POST /api/center/:trainerId/heal/:pokemonId
func (h *CenterHandler) Heal(c *gin.Context) {
	trainerID, ok := paramUint(c, "trainerId")
	if !ok {
		return
	}
	pokemonID, ok := paramUint(c, "pokemonId")
	if !ok {
		return
	}
	p, err := h.center.Heal(c.Request.Context(), trainerID, pokemonID)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, pokemonResponse(p))
}

// HealAll restores every Pokémon the trainer owns.
// POST /api/center/:trainerId/heal-all
func (h *CenterHandler) HealAll(c *gin.Context) {
	trainerID, ok := paramUint(c, "trainerId")
	if !ok {
		return
	}
	list, err := h.center.HealAll(c.Request.Context(), trainerID)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, pokemonResponses(list))
}

// NeedsHealing reports whether one Pokémon is below max health.
// GET /api/center/:trainerId/pokemons/:pokemonId/needs-healing
func (h *CenterHandler) NeedsHealing(c *gin.Context) {
	trainerID, ok := paramUint(c, "trainerId")
	if !ok {
		return
	}
	pokemonID, ok := paramUint(c, "pokemonId")
	if !ok {
		return
	}
	needs, err := h.center.NeedsHealing(c.Request.Context(), trainerID, pokemonID)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"needs_healing": needs})
}

// Status summarizes the trainer's collection health.
// GET /api/center/:trainerId/status
func (h *CenterHandler) Status(c *gin.Context) {
	trainerID, ok := paramUint(c, "trainerId")
	if !ok {
		return
	}
	status, err := h.center.Status(c.Request.Context(), trainerID)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
