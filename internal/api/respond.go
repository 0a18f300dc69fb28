package api

import (
	"errors"
	"net/http"
	"strconv"

	"CentroPokemon/internal/model"
	"CentroPokemon/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondDomainError maps the domain failure taxonomy to HTTP statuses.
// Validation, NotFound, Conflict and OwnershipMismatch are caller-correctable
// and must stay distinguishable; anything else is a server fault.
func respondDomainError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrOwnership):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// paramUint parses a numeric path parameter; a second return of false means
// a 400 response was already written.
func paramUint(c *gin.Context, name string) (uint64, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be numeric"})
		return 0, false
	}
	return v, true
}

// TypeResponse is the wire shape of a type label.
type TypeResponse struct {
	ID     uint64 `json:"id"`
	NamePt string `json:"name_pt"`
	NameEn string `json:"name_en"`
}

// StatsResponse is the wire shape of the six base attributes.
type StatsResponse struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	Speed          int `json:"speed"`
	SpecialAttack  int `json:"special_attack"`
	SpecialDefense int `json:"special_defense"`
}

// DescriptionResponse is the wire shape of a flavor text pair.
type DescriptionResponse struct {
	TextPt *string `json:"text_pt"`
	TextEn *string `json:"text_en"`
}

// PokemonResponse is the wire shape of a collection or catalog entry.
type PokemonResponse struct {
	ID           uint64                `json:"id"`
	PokeAPIID    *int64                `json:"poke_api_id,omitempty"`
	NamePt       string                `json:"name_pt"`
	NameEn       string                `json:"name_en,omitempty"`
	SpriteURL    string                `json:"sprite_url,omitempty"`
	CurrentHP    *int                  `json:"current_hp"`
	MaxHP        *int                  `json:"max_hp"`
	Level        int                   `json:"level"`
	Abilities    []string              `json:"abilities,omitempty"`
	Types        []TypeResponse        `json:"types"`
	Stats        *StatsResponse        `json:"stats,omitempty"`
	Descriptions []DescriptionResponse `json:"descriptions,omitempty"`
}

func pokemonResponse(p *model.Pokemon) PokemonResponse {
	resp := PokemonResponse{
		ID:        p.ID,
		PokeAPIID: p.PokeAPIID,
		NamePt:    p.NamePt,
		NameEn:    p.NameEn,
		SpriteURL: p.SpriteURL,
		CurrentHP: p.CurrentHP,
		MaxHP:     p.MaxHP,
		Level:     p.Level,
		Abilities: p.AbilityList(),
		Types:     make([]TypeResponse, 0, len(p.Types)),
	}
	for _, t := range p.Types {
		resp.Types = append(resp.Types, TypeResponse{ID: t.ID, NamePt: t.NamePt, NameEn: t.NameEn})
	}
	if p.Stats != nil {
		resp.Stats = &StatsResponse{
			HP:             p.Stats.HP,
			Attack:         p.Stats.Attack,
			Defense:        p.Stats.Defense,
			Speed:          p.Stats.Speed,
			SpecialAttack:  p.Stats.SpecialAttack,
			SpecialDefense: p.Stats.SpecialDefense,
		}
	}
	for _, d := range p.Descriptions {
		resp.Descriptions = append(resp.Descriptions, DescriptionResponse{TextPt: d.TextPt, TextEn: d.TextEn})
	}
	return resp
}

func pokemonResponses(list []*model.Pokemon) []PokemonResponse {
	out := make([]PokemonResponse, 0, len(list))
	for _, p := range list {
		out = append(out, pokemonResponse(p))
	}
	return out
}
