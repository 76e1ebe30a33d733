package controller

import (
	"stratigo-site/internal/pkg/serverutils"
	"stratigo-site/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
	Hero(ctx *fiber.Ctx) error
	Posts(ctx *fiber.Ctx) error
	Post(ctx *fiber.Ctx) error
	CaseStudies(ctx *fiber.Ctx) error
	CaseStudy(ctx *fiber.Ctx) error
	Pricing(ctx *fiber.Ctx) error
	Contact(ctx *fiber.Ctx) error
}

type contentController struct {
	service service.IContentService
}

func NewContentController(service service.IContentService) IContentController {
	return &contentController{service: service}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/content")
	h.Get("/hero", c.Hero)
	h.Get("/posts", c.Posts)
	h.Get("/posts/:slug", c.Post)
	h.Get("/case-studies", c.CaseStudies)
	h.Get("/case-studies/:slug", c.CaseStudy)
	h.Get("/pricing", c.Pricing)
	h.Get("/contact", c.Contact)
}

func (c *contentController) Hero(ctx *fiber.Ctx) error {
	res, err := c.service.Hero(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get hero", res))
}

// Posts returns every active post; ?featured=true limits it to the home page selection.
func (c *contentController) Posts(ctx *fiber.Ctx) error {
	load := c.service.BlogPosts
	if ctx.QueryBool("featured") {
		load = c.service.FeaturedBlogPosts
	}
	res, err := load(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get blog posts", res))
}

func (c *contentController) Post(ctx *fiber.Ctx) error {
	res, err := c.service.BlogPost(ctx.UserContext(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get blog post", res))
}

func (c *contentController) CaseStudies(ctx *fiber.Ctx) error {
	res, err := c.service.CaseStudies(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get case studies", res))
}

func (c *contentController) CaseStudy(ctx *fiber.Ctx) error {
	res, err := c.service.CaseStudy(ctx.UserContext(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get case study", res))
}

func (c *contentController) Pricing(ctx *fiber.Ctx) error {
	res, err := c.service.PricingPackages(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get pricing packages", res))
}

func (c *contentController) Contact(ctx *fiber.Ctx) error {
	res, err := c.service.ContactPage(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get contact page", res))
}
