package controller

import (
	"errors"

	"stratigo-site/internal/dto"
	"stratigo-site/internal/pkg/serverutils"
	"stratigo-site/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILeadController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
}

type leadController struct {
	service service.ILeadService
}

func NewLeadController(service service.ILeadService) ILeadController {
	return &leadController{service: service}
}

func (c *leadController) RegisterRoutes(r fiber.Router) {
	r.Post("/leads", c.Create)
}

func (c *leadController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateLeadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid lead payload")
	}

	meta := map[string]string{
		"ip":         ctx.IP(),
		"user_agent": ctx.Get(fiber.HeaderUserAgent),
		"referer":    ctx.Get(fiber.HeaderReferer),
	}

	res, err := c.service.Submit(ctx.UserContext(), &req, meta)
	if errors.Is(err, service.ErrInvalidLead) {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(fiber.StatusUnprocessableEntity, err.Error()))
	}
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Thanks, we will be in touch", res))
}
