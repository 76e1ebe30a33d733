package controller

import (
	"stratigo-site/internal/dto"
	"stratigo-site/internal/pkg/serverutils"
	"stratigo-site/pkg/consent"
	"stratigo-site/pkg/navigation"

	"github.com/gofiber/fiber/v2"
)

type INavigationController interface {
	RegisterRoutes(r fiber.Router)
	Navigated(ctx *fiber.Ctx) error
	TrackEvent(ctx *fiber.Ctx) error
}

type navigationController struct {
	observer *navigation.Observer
}

func NewNavigationController(observer *navigation.Observer) INavigationController {
	return &navigationController{observer: observer}
}

func (c *navigationController) RegisterRoutes(r fiber.Router) {
	r.Post("/navigations", c.Navigated)
	r.Post("/events", c.TrackEvent)
}

type trackResponse struct {
	Tracked bool `json:"tracked"`
}

// Navigated is the client router's after-each hook. It always answers 202;
// whether anything was forwarded depends on consent and sink availability.
func (c *navigationController) Navigated(ctx *fiber.Ctx) error {
	var req dto.NavigationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid navigation payload")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	gate := consent.FromRequest(ctx)
	c.observer.AfterEach(serverutils.AnalyticsContext(ctx), gate, navigation.Navigation{
		FullPath: req.Path,
		Title:    req.Title,
	})

	tracked := gate.IsGranted() && c.observer.Available()
	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Navigation received", trackResponse{Tracked: tracked}))
}

func (c *navigationController) TrackEvent(ctx *fiber.Ctx) error {
	var req dto.TrackEventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid event payload")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	gate := consent.FromRequest(ctx)
	c.observer.TrackEvent(serverutils.AnalyticsContext(ctx), gate, req.Name, req.Params)

	tracked := gate.IsGranted() && c.observer.Available()
	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Event received", trackResponse{Tracked: tracked}))
}
