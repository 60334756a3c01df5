package handlers

import (
	"movie-catalog/internal/apperrors"
	"movie-catalog/internal/models"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ImportHandler struct {
	service services.ImportService
	logger  *logrus.Logger
}

func NewImportHandler(service services.ImportService, logger *logrus.Logger) *ImportHandler {
	return &ImportHandler{
		service: service,
		logger:  logger,
	}
}

// ImportLegacyMovies godoc
// @Summary Import movies in the legacy format
// @Description Rows carry a free-text actors list. Rows come from the body, or from the import bucket when object is given.
// @Tags import
// @Accept json
// @Produce json
// @Param object query string false "Object key in the import bucket"
// @Param rows body []models.LegacyMovie false "Legacy rows"
// @Success 200 {object} ImportResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} ImportFailedResponse "Store failure; earlier rows stay committed"
// @Failure 502 {object} utils.ErrorBody "Object storage unavailable"
// @Router /movies/import [post]
func (h *ImportHandler) ImportLegacyMovies(c *fiber.Ctx) error {
	var (
		result *models.ImportResult
		err    error
	)

	if key := c.Query("object"); key != "" {
		result, err = h.service.ImportObject(c.UserContext(), key)
	} else {
		var rows []models.LegacyMovie
		if perr := c.BodyParser(&rows); perr != nil {
			return utils.ErrorFromApp(c, h.logger, invalidBody())
		}
		result, err = h.service.ImportRows(c.UserContext(), rows)
	}
	if err != nil {
		if result != nil && result.Imported > 0 {
			return h.partialFailure(c, result, err)
		}
		return utils.ErrorFromApp(c, h.logger, err)
	}

	return c.JSON(ImportResponse{
		Message:  "Legacy import finished",
		Imported: result.Imported,
		Skipped:  result.Skipped,
		MovieIDs: result.MovieIDs,
		Errors:   result.Errors,
	})
}

// partialFailure reports an import that stopped after committing some rows,
// so the client learns which movies already exist.
func (h *ImportHandler) partialFailure(c *fiber.Ctx, result *models.ImportResult, err error) error {
	code, message := apperrors.Status(err)

	h.logger.WithError(err).WithFields(logrus.Fields{
		"imported":   result.Imported,
		"movie_ids":  result.MovieIDs,
		"request_id": utils.RequestID(c),
	}).Error("Legacy import stopped after partial commit")

	return c.Status(code).JSON(ImportFailedResponse{
		ErrorBody: utils.ErrorBody{
			Status:  utils.ErrorStatus(code),
			Code:    code,
			Message: message,
		},
		Imported: result.Imported,
		Skipped:  result.Skipped,
		MovieIDs: result.MovieIDs,
		Errors:   result.Errors,
	})
}
