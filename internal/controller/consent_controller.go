package controller

import (
	"time"

	"stratigo-site/internal/dto"
	"stratigo-site/internal/pkg/serverutils"
	"stratigo-site/pkg/consent"
	"stratigo-site/pkg/navigation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IConsentController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type consentController struct {
	observer     *navigation.Observer
	secureCookie bool
}

func NewConsentController(observer *navigation.Observer, secureCookie bool) IConsentController {
	return &consentController{observer: observer, secureCookie: secureCookie}
}

func (c *consentController) RegisterRoutes(r fiber.Router) {
	r.Get("/consent", c.Show)
	r.Post("/consent", c.Update)
}

func (c *consentController) status(decision consent.Decision) dto.ConsentResponse {
	return dto.ConsentResponse{
		Decision: string(decision),
		Tracking: decision == consent.DecisionGranted && c.observer.Available(),
	}
}

// Show reports what the server will do with this visitor's page views.
func (c *consentController) Show(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Consent status", c.status(consent.FromRequest(ctx).Decision())))
}

// Update stores the banner choice. Accepting also issues the anonymous
// visitor id; declining removes it.
func (c *consentController) Update(ctx *fiber.Ctx) error {
	var req dto.ConsentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid consent payload")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	expires := time.Now().Add(consent.CookieMaxAge)
	c.setCookie(ctx, consent.StorageKey, req.Decision, expires)

	decision := consent.DecisionDenied
	if req.Decision == consent.ValueAccepted {
		decision = consent.DecisionGranted
		if ctx.Cookies(serverutils.VisitorCookie) == "" {
			c.setCookie(ctx, serverutils.VisitorCookie, uuid.NewString(), expires)
		}
	} else {
		ctx.ClearCookie(serverutils.VisitorCookie)
	}

	return ctx.JSON(serverutils.SuccessResponse("Consent saved", c.status(decision)))
}

func (c *consentController) setCookie(ctx *fiber.Ctx, name, value string, expires time.Time) {
	ctx.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		Secure:   c.secureCookie,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
