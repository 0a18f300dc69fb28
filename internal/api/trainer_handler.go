package api

import (
	"fmt"
	"net/http"

	"CentroPokemon/internal/model"
	"CentroPokemon/internal/repository"
	"CentroPokemon/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TrainerHandler exposes registration and login.
type TrainerHandler struct {
	accounts   *service.AccountService
	collection *service.CollectionService
	logger     *logrus.Logger
}

// NewTrainerHandler wires the account and collection services from the DB
// handle; the collection service is needed for starter assignment.
func NewTrainerHandler(db *gorm.DB, logger *logrus.Logger) *TrainerHandler {
	trainers := repository.NewTrainerRepository(db)
	pokemons := repository.NewPokemonRepository(db)
	registry := service.NewTypeRegistry(repository.NewTypeRepository(db), service.DefaultTypeTranslations(), logger)
	return &TrainerHandler{
		accounts:   service.NewAccountService(trainers, logger),
		collection: service.NewCollectionService(pokemons, trainers, registry, logger),
		logger:     logger,
	}
}

// RegisterRequest is the registration payload. Starter fields are optional;
// when starter_id is present the new trainer receives an initial Pokémon.
type RegisterRequest struct {
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone"`

	StarterID        *int64  `json:"starter_id"`
	StarterName      *string `json:"starter_name"`
	StarterSpriteURL *string `json:"starter_sprite_url"`
}

// LoginRequest is the authentication payload.
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

// TrainerResponse is the safe wire shape of an account.
type TrainerResponse struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Active   bool    `json:"active"`
}

func trainerResponse(t *model.Trainer) TrainerResponse {
	return TrainerResponse{
		ID:       t.ID,
		Name:     t.Name,
		Username: t.Username,
		Email:    t.Email,
		Phone:    t.Phone,
		Active:   t.Active,
	}
}

// Register creates a trainer account and optionally assigns a starter.
// POST /api/trainers/register
func (h *TrainerHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	t, err := h.accounts.Register(c.Request.Context(), req.Name, req.Username, req.Email, req.Password, req.Phone)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	if req.StarterID != nil {
		h.assignStarter(c, t.ID, req)
	}

	c.JSON(http.StatusCreated, trainerResponse(t))
}

// assignStarter adds the initial Pokémon. Failures are logged but never fail
// the registration itself.
func (h *TrainerHandler) assignStarter(c *gin.Context, trainerID uint64, req RegisterRequest) {
	id := *req.StarterID
	name, typeName := defaultStarter(id)
	if req.StarterName != nil && *req.StarterName != "" {
		name = *req.StarterName
	}
	sprite := defaultStarterSprite(id)
	if req.StarterSpriteURL != nil && *req.StarterSpriteURL != "" {
		sprite = *req.StarterSpriteURL
	}

	_, err := h.collection.Add(c.Request.Context(), trainerID, service.AddPokemonInput{
		PokeAPIID: &id,
		NamePt:    name,
		NameEn:    name,
		SpriteURL: sprite,
		TypeNames: []string{typeName},
	})
	if err != nil {
		h.logger.WithError(err).WithField("trainer_id", trainerID).
			Warn("starter assignment failed")
	}
}

func defaultStarter(id int64) (name, typeName string) {
	switch id {
	case 1:
		return "Bulbasaur", "Planta"
	case 4:
		return "Charmander", "Fogo"
	case 7:
		return "Squirtle", "Água"
	default:
		return "Inicial", "Normal"
	}
}

func defaultStarterSprite(id int64) string {
	return fmt.Sprintf("https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/%d.png", id)
}

// Login authenticates by username or e-mail.
// POST /api/trainers/login
func (h *TrainerHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	t, err := h.accounts.Authenticate(c.Request.Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	if t == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, trainerResponse(t))
}
