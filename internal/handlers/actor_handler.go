package handlers

import (
	"fmt"

	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ActorHandler struct {
	service services.ActorService
	logger  *logrus.Logger
}

func NewActorHandler(service services.ActorService, logger *logrus.Logger) *ActorHandler {
	return &ActorHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllActors godoc
// @Summary List actors
// @Tags actors
// @Produce json
// @Success 200 {array} models.Actor
// @Failure 500 {object} utils.ErrorBody
// @Router /actors [get]
func (h *ActorHandler) GetAllActors(c *fiber.Ctx) error {
	actors, err := h.service.ListActors(c.UserContext())
	if err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}
	return c.JSON(actors)
}

// GetActorByID godoc
// @Summary Get actor by ID
// @Tags actors
// @Produce json
// @Param id path int true "Actor ID"
// @Success 200 {object} models.Actor
// @Failure 404 {object} utils.ErrorBody "Actor not found"
// @Router /actors/{id} [get]
func (h *ActorHandler) GetActorByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}

	actor, err := h.service.GetActor(c.UserContext(), id)
	if err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}
	return c.JSON(actor)
}

// CreateActor godoc
// @Summary Create an actor
// @Tags actors
// @Accept json
// @Produce json
// @Param actor body ActorRequest true "Actor"
// @Success 201 {object} ActorCreatedResponse
// @Failure 400 {object} utils.ErrorBody "Missing field"
// @Router /actors [post]
func (h *ActorHandler) CreateActor(c *fiber.Ctx) error {
	var req ActorRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorFromApp(c, h.logger, invalidBody())
	}

	id, err := h.service.CreateActor(c.UserContext(), req.toInput())
	if err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(ActorCreatedResponse{
		Message: "Actor added successfully",
		ActorID: id,
	})
}

// UpdateActor godoc
// @Summary Replace an actor
// @Tags actors
// @Accept json
// @Produce json
// @Param id path int true "Actor ID"
// @Param actor body ActorRequest true "Actor"
// @Success 200 {object} utils.MessageResponse
// @Failure 400 {object} utils.ErrorBody "Missing field"
// @Failure 404 {object} utils.ErrorBody "Actor not found"
// @Router /actors/{id} [put]
func (h *ActorHandler) UpdateActor(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}

	var req ActorRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorFromApp(c, h.logger, invalidBody())
	}

	if err := h.service.UpdateActor(c.UserContext(), id, req.toInput()); err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}

	return utils.MessageJSON(c, fiber.StatusOK, fmt.Sprintf("Actor %d updated successfully", id))
}

// DeleteActor godoc
// @Summary Delete an actor
// @Description Deletes the actor and its movie links
// @Tags actors
// @Produce json
// @Param id path int true "Actor ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorBody "Actor not found"
// @Router /actors/{id} [delete]
func (h *ActorHandler) DeleteActor(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}

	if err := h.service.DeleteActor(c.UserContext(), id); err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}

	return utils.MessageJSON(c, fiber.StatusOK, fmt.Sprintf("Actor %d deleted successfully", id))
}
