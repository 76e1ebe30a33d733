package controller

import (
	"fmt"
	"strings"

	"stratigo-site/internal/pkg/serverutils"
	"stratigo-site/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISitemapController interface {
	RegisterRoutes(r fiber.Router)
	Sitemap(ctx *fiber.Ctx) error
	Robots(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type sitemapController struct {
	service service.ISitemapService
	siteURL string
}

func NewSitemapController(service service.ISitemapService, siteURL string) ISitemapController {
	return &sitemapController{service: service, siteURL: strings.TrimRight(siteURL, "/")}
}

func (c *sitemapController) RegisterRoutes(r fiber.Router) {
	r.Get("/sitemap.xml", c.Sitemap)
	r.Get("/robots.txt", c.Robots)
	r.Get("/healthz", c.Health)
}

func (c *sitemapController) Sitemap(ctx *fiber.Ctx) error {
	out, _, err := c.service.Generate(ctx.UserContext())
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	ctx.Type("xml", "utf-8")
	return ctx.Send(out)
}

func (c *sitemapController) Robots(ctx *fiber.Ctx) error {
	ctx.Type("txt", "utf-8")
	return ctx.SendString(fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", c.siteURL))
}

func (c *sitemapController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("ok", fiber.Map{"status": "up"}))
}
