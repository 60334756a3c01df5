package handlers

import (
	"fmt"
	"strconv"

	"movie-catalog/internal/apperrors"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllMovies godoc
// @Summary List movies
// @Description List every movie in store order
// @Tags movies
// @Produce json
// @Success 200 {array} models.Movie
// @Failure 500 {object} utils.ErrorBody
// @Router /movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	movies, err := h.service.ListMovies(c.UserContext())
	if err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}
	return c.JSON(movies)
}

// GetMovieByID godoc
// @Summary Get movie by ID
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} models.Movie
// @Failure 400 {object} utils.ErrorBody "Invalid movie ID"
// @Failure 404 {object} utils.ErrorBody "Movie not found"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}

	movie, err := h.service.GetMovie(c.UserContext(), id)
	if err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}
	return c.JSON(movie)
}

// CreateMovie godoc
// @Summary Create a movie
// @Description Title, year and director are required; description is optional
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body MovieRequest true "Movie"
// @Success 201 {object} MovieCreatedResponse
// @Failure 400 {object} utils.ErrorBody "Missing or invalid field"
// @Failure 500 {object} utils.ErrorBody
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorFromApp(c, h.logger, invalidBody())
	}

	id, err := h.service.CreateMovie(c.UserContext(), req.toInput())
	if err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(MovieCreatedResponse{
		Message: "Movie added successfully",
		MovieID: id,
	})
}

// UpdateMovie godoc
// @Summary Replace a movie
// @Description Title, year and director are required; an omitted description keeps the stored one
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body MovieRequest true "Movie"
// @Success 200 {object} utils.MessageResponse
// @Failure 400 {object} utils.ErrorBody "Missing or invalid field"
// @Failure 404 {object} utils.ErrorBody "Movie not found"
// @Router /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}

	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorFromApp(c, h.logger, invalidBody())
	}

	if err := h.service.UpdateMovie(c.UserContext(), id, req.toInput()); err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}

	return utils.MessageJSON(c, fiber.StatusOK, fmt.Sprintf("Movie %d updated successfully", id))
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Description Deletes the movie and its actor links
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorBody "Movie not found"
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}

	if err := h.service.DeleteMovie(c.UserContext(), id); err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}

	return utils.MessageJSON(c, fiber.StatusOK, fmt.Sprintf("Movie %d deleted successfully", id))
}

// DeleteAllMovies godoc
// @Summary Delete every movie
// @Tags movies
// @Produce json
// @Success 200 {object} MoviesDeletedResponse
// @Failure 500 {object} utils.ErrorBody
// @Router /movies [delete]
func (h *MovieHandler) DeleteAllMovies(c *fiber.Ctx) error {
	deleted, err := h.service.DeleteAllMovies(c.UserContext())
	if err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}

	return c.JSON(MoviesDeletedResponse{
		Message:      "All movies deleted successfully",
		DeletedCount: deleted,
	})
}

// GetMovieActors godoc
// @Summary List the actors of a movie
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {array} models.Actor
// @Failure 404 {object} utils.ErrorBody "Movie not found"
// @Router /movies/{id}/actors [get]
func (h *MovieHandler) GetMovieActors(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}

	actors, err := h.service.GetMovieActors(c.UserContext(), id)
	if err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}
	return c.JSON(actors)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("id", "id must be a positive integer")
	}
	return uint(id), nil
}

func invalidBody() error {
	return apperrors.NewValidationError("body", "invalid request body")
}
