package api

import (
	"net/http"
	"time"

	"CentroPokemon/internal/model"
	"CentroPokemon/internal/repository"
	"CentroPokemon/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AppointmentHandler exposes the visit scheduler.
type AppointmentHandler struct {
	appointments *service.AppointmentService
	logger       *logrus.Logger
}

// NewAppointmentHandler wires the appointment service from the DB handle.
func NewAppointmentHandler(db *gorm.DB, logger *logrus.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: service.NewAppointmentService(
			repository.NewAppointmentRepository(db),
			repository.NewTrainerRepository(db),
			repository.NewPokemonRepository(db),
			logger,
		),
		logger: logger,
	}
}

// ScheduleRequest is the scheduling payload. ScheduledAt is RFC 3339.
type ScheduleRequest struct {
	PokemonID   uint64    `json:"pokemon_id"`
	Category    string    `json:"category"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Notes       *string   `json:"notes"`
}

// AppointmentResponse is the wire shape of a scheduled visit.
type AppointmentResponse struct {
	UUID        string    `json:"uuid"`
	TrainerID   uint64    `json:"trainer_id"`
	PokemonID   uint64    `json:"pokemon_id"`
	Category    string    `json:"category"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Notes       *string   `json:"notes,omitempty"`
}

func appointmentResponse(a *model.Appointment) AppointmentResponse {
	return AppointmentResponse{
		UUID:        a.AppointmentUUID,
		TrainerID:   a.TrainerID,
		PokemonID:   a.PokemonID,
		Category:    a.Category,
		ScheduledAt: a.ScheduledAt,
		Notes:       a.Notes,
	}
}

// Schedule creates an appointment for one of the trainer's Pokémon.
// POST /api/trainers/:trainerId/appointments
func (h *AppointmentHandler) Schedule(c *gin.Context) {
	trainerID, ok := paramUint(c, "trainerId")
	if !ok {
		return
	}
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	a, err := h.appointments.Schedule(c.Request.Context(), trainerID, req.PokemonID, req.Category, req.ScheduledAt, req.Notes)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, appointmentResponse(a))
}

// List returns the trainer's appointments, earliest first.
// GET /api/trainers/:trainerId/appointments
func (h *AppointmentHandler) List(c *gin.Context) {
	trainerID, ok := paramUint(c, "trainerId")
	if !ok {
		return
	}
	list, err := h.appointments.List(c.Request.Context(), trainerID)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	out := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, appointmentResponse(a))
	}
	c.JSON(http.StatusOK, out)
}
