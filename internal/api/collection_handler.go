package api

import (
	"net/http"

	"CentroPokemon/internal/repository"
	"CentroPokemon/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CollectionHandler exposes a trainer's Pokémon collection.
type CollectionHandler struct {
	collection *service.CollectionService
	logger     *logrus.Logger
}

// NewCollectionHandler wires the collection service from the DB handle.
func NewCollectionHandler(db *gorm.DB, logger *logrus.Logger) *CollectionHandler {
	trainers := repository.NewTrainerRepository(db)
	pokemons := repository.NewPokemonRepository(db)
	registry := service.NewTypeRegistry(repository.NewTypeRepository(db), service.DefaultTypeTranslations(), logger)
	return &CollectionHandler{
		collection: service.NewCollectionService(pokemons, trainers, registry, logger),
		logger:     logger,
	}
}

// AddPokemonRequest is the payload for adding a collection entry.
type AddPokemonRequest struct {
	PokeAPIID *int64   `json:"poke_api_id"`
	NamePt    string   `json:"name_pt"`
	NameEn    string   `json:"name_en"`
	SpriteURL string   `json:"sprite_url"`
	CurrentHP *int     `json:"current_hp"`
	MaxHP     *int     `json:"max_hp"`
	Level     *int     `json:"level"`
	Abilities []string `json:"abilities"`
	TypeNames []string `json:"type_names"`
}

// Add registers a Pokémon for the trainer.
// POST /api/trainers/:trainerId/pokemons
func (h *CollectionHandler) Add(c *gin.Context) {
	trainerID, ok := paramUint(c, "trainerId")
	if !ok {
		return
	}
	var req AddPokemonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.collection.Add(c.Request.Context(), trainerID, service.AddPokemonInput{
		PokeAPIID: req.PokeAPIID,
		NamePt:    req.NamePt,
		NameEn:    req.NameEn,
		SpriteURL: req.SpriteURL,
		CurrentHP: req.CurrentHP,
		MaxHP:     req.MaxHP,
		Level:     req.Level,
		Abilities: req.Abilities,
		TypeNames: req.TypeNames,
	})
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, pokemonResponse(p))
}

// List returns the trainer's collection (empty list for unknown trainers).
// GET /api/trainers/:trainerId/pokemons
func (h *CollectionHandler) List(c *gin.Context) {
	trainerID, ok := paramUint(c, "trainerId")
	if !ok {
		return
	}
	list, err := h.collection.List(c.Request.Context(), trainerID)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, pokemonResponses(list))
}

// Remove deletes a collection entry owned by the trainer. Both unknown ids
// and other trainers' Pokémon answer 404.
// DELETE /api/trainers/:trainerId/pokemons/:pokemonId
func (h *CollectionHandler) Remove(c *gin.Context) {
	trainerID, ok := paramUint(c, "trainerId")
	if !ok {
		return
	}
	pokemonID, ok := paramUint(c, "pokemonId")
	if !ok {
		return
	}
	removed, err := h.collection.Remove(c.Request.Context(), trainerID, pokemonID)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "pokemon not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
