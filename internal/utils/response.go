package utils

import (
	"errors"

	"movie-catalog/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ErrorBody is the envelope of every failed request.
type ErrorBody struct {
	Status  string            `json:"status" example:"error"`
	Code    int               `json:"code" example:"404"`
	Message string            `json:"message" example:"movie 1 not found"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// MessageResponse is returned by writes that carry no payload.
type MessageResponse struct {
	Message string `json:"message" example:"Movie 1 updated successfully"`
}

// ErrorStatus labels server-side failures "fail" and client errors "error".
func ErrorStatus(code int) string {
	if code >= fiber.StatusInternalServerError {
		return "fail"
	}
	return "error"
}

// ErrorResponse sends an error response
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(ErrorBody{
		Status:  ErrorStatus(code),
		Code:    code,
		Message: message,
	})
}

// ErrorFromApp translates an application error into its HTTP response.
// Server-side failures are logged with their cause; clients only see the
// generic message.
func ErrorFromApp(c *fiber.Ctx, logger *logrus.Logger, err error) error {
	code, message := apperrors.Status(err)

	if code >= fiber.StatusInternalServerError {
		logger.WithError(err).WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     code,
			"request_id": RequestID(c),
		}).Error("Request failed")
		return ErrorResponse(c, code, message)
	}

	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		return c.Status(code).JSON(ErrorBody{
			Status:  "error",
			Code:    code,
			Message: message,
			Errors:  verr.Fields,
		})
	}

	return ErrorResponse(c, code, message)
}

// MessageJSON sends {"message": message} with the given status.
func MessageJSON(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(MessageResponse{Message: message})
}

// RequestID returns the id assigned by the requestid middleware, if any.
func RequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
