package controller

import (
	"srs-intake-be/internal/dto"
	"srs-intake-be/internal/pkg/serverutils"
	"srs-intake-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEnhanceController interface {
	RegisterRoutes(r fiber.Router)
	Enhance(ctx *fiber.Ctx) error
}

type enhanceController struct {
	service service.IEnhanceService
	path    string
}

func NewEnhanceController(service service.IEnhanceService, path string) IEnhanceController {
	if path == "" {
		path = "/enhance_section"
	}
	return &enhanceController{service: service, path: path}
}

func (c *enhanceController) RegisterRoutes(r fiber.Router) {
	r.Post(c.path, c.Enhance)
}

// Enhance answers with a bare {"content": ...} body, the shape form
// clients expect from this endpoint.
func (c *enhanceController) Enhance(ctx *fiber.Ctx) error {
	var req dto.EnhanceSectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Enhance(ctx.UserContext(), &req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}

	return ctx.JSON(res)
}
