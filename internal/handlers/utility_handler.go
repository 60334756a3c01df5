package handlers

import (
	"errors"
	"strconv"

	"movie-catalog/internal/apperrors"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// UtilityHandler serves the arithmetic helpers and the reverse-geocoding proxy.
type UtilityHandler struct {
	geocoder services.GeocodeService
	logger   *logrus.Logger
}

func NewUtilityHandler(geocoder services.GeocodeService, logger *logrus.Logger) *UtilityHandler {
	return &UtilityHandler{
		geocoder: geocoder,
		logger:   logger,
	}
}

// Root godoc
// @Summary Greeting
// @Tags utility
// @Produce json
// @Success 200 {object} utils.MessageResponse
// @Router / [get]
func (h *UtilityHandler) Root(c *fiber.Ctx) error {
	return utils.MessageJSON(c, fiber.StatusOK, "Hello World")
}

// Sum godoc
// @Summary Add two integers
// @Tags utility
// @Produce json
// @Param x query int false "x" default(0)
// @Param y query int false "y" default(10)
// @Success 200 {integer} int
// @Failure 400 {object} utils.ErrorBody
// @Router /sum [get]
func (h *UtilityHandler) Sum(c *fiber.Ctx) error {
	return h.binary(c, 0, 10, services.Sum)
}

// Subtract godoc
// @Summary Subtract two integers
// @Tags utility
// @Produce json
// @Param x query int false "x" default(0)
// @Param y query int false "y" default(10)
// @Success 200 {integer} int
// @Failure 400 {object} utils.ErrorBody
// @Router /subtract [get]
func (h *UtilityHandler) Subtract(c *fiber.Ctx) error {
	return h.binary(c, 0, 10, services.Subtract)
}

// Multiply godoc
// @Summary Multiply two integers
// @Tags utility
// @Produce json
// @Param x query int false "x" default(1)
// @Param y query int false "y" default(1)
// @Success 200 {integer} int
// @Failure 400 {object} utils.ErrorBody
// @Router /multiply [get]
func (h *UtilityHandler) Multiply(c *fiber.Ctx) error {
	return h.binary(c, 1, 1, services.Multiply)
}

// Divide godoc
// @Summary Divide two integers
// @Description Division by zero yields the string "Error: Division by zero"
// @Tags utility
// @Produce json
// @Param x query int false "x" default(1)
// @Param y query int false "y" default(1)
// @Success 200 {number} float64
// @Failure 400 {object} utils.ErrorBody
// @Router /divide [get]
func (h *UtilityHandler) Divide(c *fiber.Ctx) error {
	x, y, err := intPair(c, 1, 1)
	if err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}

	result, err := services.Divide(x, y)
	if errors.Is(err, services.ErrDivisionByZero) {
		return c.JSON(services.DivisionByZeroMessage)
	}
	return c.JSON(result)
}

// Geocode godoc
// @Summary Reverse geocode a coordinate
// @Description Proxies the upstream reverse-geocoding service and returns its JSON unchanged
// @Tags utility
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} object
// @Failure 400 {object} utils.ErrorBody
// @Failure 502 {object} utils.ErrorBody
// @Router /geocode [get]
func (h *UtilityHandler) Geocode(c *fiber.Ctx) error {
	verr := &apperrors.ValidationError{}
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		verr.Add("lat", "lat must be a number")
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		verr.Add("lon", "lon must be a number")
	}
	if !verr.Empty() {
		return utils.ErrorFromApp(c, h.logger, verr)
	}

	result, err := h.geocoder.Reverse(c.UserContext(), lat, lon)
	if err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}

	c.Set(fiber.HeaderContentType, result.ContentType)
	return c.Status(result.StatusCode).Send(result.Body)
}

func (h *UtilityHandler) binary(c *fiber.Ctx, defX, defY int, op func(int, int) int) error {
	x, y, err := intPair(c, defX, defY)
	if err != nil {
		return utils.ErrorFromApp(c, h.logger, err)
	}
	return c.JSON(op(x, y))
}

func intPair(c *fiber.Ctx, defX, defY int) (int, int, error) {
	verr := &apperrors.ValidationError{}
	x, ok := queryInt(c, "x", defX)
	if !ok {
		verr.Add("x", "x must be an integer")
	}
	y, ok := queryInt(c, "y", defY)
	if !ok {
		verr.Add("y", "y must be an integer")
	}
	if !verr.Empty() {
		return 0, 0, verr
	}
	return x, y, nil
}

func queryInt(c *fiber.Ctx, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
