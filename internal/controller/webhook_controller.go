package controller

import (
	"stratigo-site/internal/pkg/logger"
	"stratigo-site/internal/pkg/serverutils"
	"stratigo-site/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	Revalidate(ctx *fiber.Ctx) error
}

type webhookController struct {
	content service.IContentService
	sitemap *service.SitemapScheduler
	secret  string
	logger  logger.ILogger
}

// NewWebhookController serves the CMS publish webhook. sitemap may be nil.
func NewWebhookController(content service.IContentService, sitemap *service.SitemapScheduler, secret string, log logger.ILogger) IWebhookController {
	return &webhookController{content: content, sitemap: sitemap, secret: secret, logger: log}
}

func (c *webhookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/webhooks")
	h.Use(serverutils.WebhookJwtMiddleware(c.secret))
	h.Post("/revalidate", c.Revalidate)
}

// Revalidate drops cached content so the next request sees the published
// documents, then refreshes the sitemap file in the background.
func (c *webhookController) Revalidate(ctx *fiber.Ctx) error {
	if err := c.content.Revalidate(ctx.UserContext()); err != nil {
		return err
	}

	if c.sitemap != nil {
		go c.sitemap.Run()
	}

	c.logger.Info("WEBHOOK", "Content revalidated", map[string]interface{}{"subject": ctx.Locals("webhook_subject")})
	return ctx.JSON(serverutils.SuccessResponse[any]("Content revalidated", nil))
}
