package controller

import (
	"errors"
	"net/url"
	"strings"

	"srs-intake-be/internal/pkg/serverutils"
	"srs-intake-be/internal/service"
	"srs-intake-be/pkg/srsform"

	"github.com/gofiber/fiber/v2"
)

type IFormController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	Check(ctx *fiber.Ctx) error
}

type formController struct {
	service service.ISubmissionService
}

func NewFormController(service service.ISubmissionService) IFormController {
	return &formController{service: service}
}

func (c *formController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api/form")
	h.Post("/submit", c.Submit)
	h.Post("/check", c.Check)
}

func (c *formController) Submit(ctx *fiber.Ctx) error {
	state, err := parseFormState(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Submit(ctx.UserContext(), state)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("SRS generated successfully!", res))
}

// Check runs the pipeline and the contract check without submitting.
func (c *formController) Check(ctx *fiber.Ctx) error {
	state, err := parseFormState(ctx)
	if err != nil {
		return err
	}

	payload, err := c.service.Check(state)
	if err != nil {
		var violations srsform.ContractViolations
		if errors.As(err, &violations) {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(
				serverutils.ErrorResponseWithData(fiber.StatusUnprocessableEntity, violations.Error(), violations),
			)
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Payload is valid", payload))
}

// parseFormState accepts the browser's urlencoded or multipart post, or a
// JSON FormState document.
func parseFormState(ctx *fiber.Ctx) (*srsform.FormState, error) {
	contentType := strings.ToLower(string(ctx.Request().Header.ContentType()))

	switch {
	case strings.HasPrefix(contentType, fiber.MIMEApplicationJSON):
		state := srsform.NewFormState()
		if err := ctx.BodyParser(state); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if state.Fields == nil {
			state.Fields = make(map[string]string)
		}
		if state.Groups == nil {
			state.Groups = make(map[string][]string)
		}
		return state, nil

	case strings.HasPrefix(contentType, fiber.MIMEMultipartForm):
		form, err := ctx.MultipartForm()
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid multipart form")
		}
		return srsform.FormStateFromValues(url.Values(form.Value)), nil

	case strings.HasPrefix(contentType, fiber.MIMEApplicationForm):
		values := url.Values{}
		ctx.Request().PostArgs().VisitAll(func(key, value []byte) {
			values.Add(string(key), string(value))
		})
		return srsform.FormStateFromValues(values), nil
	}

	return nil, fiber.NewError(fiber.StatusUnsupportedMediaType, "Unsupported content type")
}
