package serverutils

import (
	"errors"

	"srs-intake-be/internal/pkg/logger"
	"srs-intake-be/pkg/srsclient"
	"srs-intake-be/pkg/srsform"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns handler errors into BaseResponse bodies:
// fiber errors keep their code, form validation errors become 422 and
// failures of the document generator become 502 with its status and body
// in the message.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		var validationErr *srsform.ValidationError
		var transportErr *srsclient.TransportError
		var contractErr *srsclient.ContractError

		switch {
		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		case errors.As(err, &validationErr):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(
				ErrorResponseWithData(fiber.StatusUnprocessableEntity, validationErr.Message, fiber.Map{"field": validationErr.Field}),
			)
		case errors.As(err, &transportErr):
			return ctx.Status(fiber.StatusBadGateway).JSON(
				ErrorResponseWithData(fiber.StatusBadGateway, transportErr.Error(), fiber.Map{"upstream_status": transportErr.Status}),
			)
		case errors.As(err, &contractErr):
			return ctx.Status(fiber.StatusBadGateway).JSON(ErrorResponse(fiber.StatusBadGateway, contractErr.Error()))
		}

		log.Error("HTTP", "Unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
}
