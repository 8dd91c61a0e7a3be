package controller

import (
	"errors"

	"srs-intake-be/internal/dto"
	"srs-intake-be/internal/pkg/serverutils"
	"srs-intake-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDomainController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Panel(ctx *fiber.Ctx) error
	Select(ctx *fiber.Ctx) error
}

type domainController struct {
	service service.IDomainService
}

func NewDomainController(service service.IDomainService) IDomainController {
	return &domainController{service: service}
}

func (c *domainController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api/domains")
	h.Get("", c.GetAll)
	h.Get(":key", c.Show)
	h.Get(":key/panel", c.Panel)

	r.Post("/api/form/domain", c.Select)
}

func (c *domainController) GetAll(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get all domains", c.service.List()))
}

func (c *domainController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Get(ctx.Params("key"))
	if err != nil {
		return notFound(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get domain", res))
}

// Panel serves the rendered info panel fragment for htmx-style swaps.
func (c *domainController) Panel(ctx *fiber.Ctx) error {
	html, err := c.service.PanelHTML(ctx.Params("key"))
	if err != nil {
		return notFound(err)
	}
	ctx.Type("html", "utf-8")
	return ctx.SendString(html)
}

func (c *domainController) Select(ctx *fiber.Ctx) error {
	var req dto.SelectDomainRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success select domain", c.service.SelectDomain(&req)))
}

func notFound(err error) error {
	if errors.Is(err, service.ErrDomainNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return err
}
