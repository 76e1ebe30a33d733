package controller

import (
	"context"
	"errors"

	"stratigo-site/internal/pkg/logger"
	"stratigo-site/internal/pkg/serverutils"
	"stratigo-site/internal/service"
	"stratigo-site/internal/view"
	"stratigo-site/pkg/consent"
	"stratigo-site/pkg/navigation"
	"stratigo-site/pkg/seo"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const siteName = "Stratigo"

type IPageController interface {
	RegisterRoutes(r fiber.Router)
	NotFound(ctx *fiber.Ctx) error
}

type pageController struct {
	pages    service.IPageService
	renderer *view.Renderer
	seo      *seo.Synchronizer
	observer *navigation.Observer
	logger   logger.ILogger
}

func NewPageController(pages service.IPageService, renderer *view.Renderer, sync *seo.Synchronizer, observer *navigation.Observer, log logger.ILogger) IPageController {
	return &pageController{pages: pages, renderer: renderer, seo: sync, observer: observer, logger: log}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.static(c.pages.Home))
	r.Get("/tentang-kami", c.static(c.pages.About))
	r.Get("/portfolio", c.static(c.pages.Portfolio))
	r.Get("/kontak", c.static(c.pages.Contact))
	r.Get("/contact", c.static(c.pages.Contact))
	r.Get("/blog", c.static(c.pages.Blog))
	r.Get("/blog/:slug", c.BlogPost)
	r.Get("/privacy", c.static(c.pages.Privacy))
	r.Get("/case-studies", c.static(c.pages.CaseStudies))
	r.Get("/case-studies/:slug", c.CaseStudy)
	r.Get("/pricing", c.static(c.pages.Pricing))
}

func (c *pageController) static(build func(ctx context.Context) *service.Page) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		return c.render(ctx, build(ctx.UserContext()))
	}
}

func (c *pageController) BlogPost(ctx *fiber.Ctx) error {
	page, err := c.pages.BlogPost(ctx.UserContext(), ctx.Params("slug"))
	return c.renderOrNotFound(ctx, page, err)
}

func (c *pageController) CaseStudy(ctx *fiber.Ctx) error {
	page, err := c.pages.CaseStudy(ctx.UserContext(), ctx.Params("slug"))
	return c.renderOrNotFound(ctx, page, err)
}

func (c *pageController) NotFound(ctx *fiber.Ctx) error {
	return c.render(ctx, c.pages.NotFound(ctx.UserContext()))
}

func (c *pageController) renderOrNotFound(ctx *fiber.Ctx, page *service.Page, err error) error {
	if errors.Is(err, service.ErrContentNotFound) {
		return c.NotFound(ctx)
	}
	if err != nil {
		return err
	}
	return c.render(ctx, page)
}

// render builds the page document, reconciles its head, reports the completed
// navigation and writes the result.
func (c *pageController) render(ctx *fiber.Ctx, page *service.Page) error {
	gate := consent.FromRequest(ctx)
	// fiber reuses the request buffer once the handler returns and the
	// page view is forwarded after that.
	fullPath := utils.CopyString(ctx.OriginalURL())

	doc, err := c.renderer.Document(page.Template, view.Layout{
		Path:     ctx.Path(),
		Consent:  gate.Decision(),
		SiteName: siteName,
		Data:     page.Data,
	})
	if err != nil {
		return err
	}

	c.seo.Bind(doc, &page.Meta).Mount(fullPath)

	c.observer.AfterEach(serverutils.AnalyticsContext(ctx), gate, navigation.Navigation{
		FullPath: fullPath,
		Title:    doc.Title(),
	})

	ctx.Status(page.Status)
	ctx.Type("html", "utf-8")
	return doc.Render(ctx)
}
