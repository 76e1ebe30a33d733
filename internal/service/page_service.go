package service

import (
	"context"
	"errors"
	"net/http"

	"stratigo-site/internal/entity"
	"stratigo-site/internal/pkg/logger"
	"stratigo-site/pkg/seo"
)

const siteName = "Stratigo"

// Page is everything a route needs to render: the template, the head
// metadata the SEO synchronizer applies, and the template data.
type Page struct {
	Template string
	Status   int
	Meta     seo.Metadata
	Data     map[string]interface{}
}

func newPage(template, title, description string) *Page {
	return &Page{
		Template: template,
		Status:   http.StatusOK,
		Meta: seo.Metadata{
			Title:       title,
			Description: description,
			Type:        "website",
		},
		Data: map[string]interface{}{},
	}
}

type IPageService interface {
	Home(ctx context.Context) *Page
	About(ctx context.Context) *Page
	Portfolio(ctx context.Context) *Page
	Contact(ctx context.Context) *Page
	Blog(ctx context.Context) *Page
	BlogPost(ctx context.Context, slug string) (*Page, error)
	CaseStudies(ctx context.Context) *Page
	CaseStudy(ctx context.Context, slug string) (*Page, error)
	Pricing(ctx context.Context) *Page
	Privacy(ctx context.Context) *Page
	NotFound(ctx context.Context) *Page
}

type pageService struct {
	content IContentService
	logger  logger.ILogger
}

func NewPageService(content IContentService, log logger.ILogger) IPageService {
	return &pageService{content: content, logger: log}
}

// section loads optional page content. A missing document leaves the section
// empty and an upstream failure is logged rather than failing the page.
func section[T any](s *pageService, name string, load func() (T, error)) T {
	v, err := load()
	if err != nil && !errors.Is(err, ErrContentNotFound) {
		s.logger.Warn("PAGE", "Content section unavailable", map[string]interface{}{
			"section": name,
			"error":   err.Error(),
		})
	}
	return v
}

func (s *pageService) Home(ctx context.Context) *Page {
	page := newPage("home",
		"Stratigo | Digital Agency for Brands That Want to Grow",
		"Stratigo helps businesses grow with strategy, web design, development and digital marketing.",
	)
	hero := section(s, "hero", func() (*entity.Hero, error) { return s.content.Hero(ctx) })
	if hero != nil && hero.BackgroundImage != nil && hero.BackgroundImage.URL != "" {
		page.Meta.Image = hero.BackgroundImage.URL
	}
	page.Data["Hero"] = hero
	page.Data["FeaturedPosts"] = section(s, "featured_posts", func() ([]entity.BlogPost, error) { return s.content.FeaturedBlogPosts(ctx) })
	page.Data["CaseStudies"] = section(s, "case_studies", func() ([]entity.CaseStudy, error) { return s.content.CaseStudies(ctx) })
	page.Data["CTA"] = section(s, "cta", func() (*entity.CTA, error) { return s.content.CTA(ctx) })
	return page
}

func (s *pageService) About(ctx context.Context) *Page {
	page := newPage("about",
		"Tentang Kami | Stratigo",
		"Meet the Stratigo team and the way we partner with brands.",
	)
	page.Data["CTA"] = section(s, "cta", func() (*entity.CTA, error) { return s.content.CTA(ctx) })
	return page
}

func (s *pageService) Portfolio(ctx context.Context) *Page {
	page := newPage("portfolio",
		"Portfolio | Stratigo",
		"Selected work from Stratigo across branding, web and digital campaigns.",
	)
	page.Data["CaseStudies"] = section(s, "case_studies", func() ([]entity.CaseStudy, error) { return s.content.CaseStudies(ctx) })
	return page
}

func (s *pageService) Contact(ctx context.Context) *Page {
	page := newPage("contact",
		"Contact | Stratigo",
		entity.DefaultContactSubtitle+".",
	)
	contact := section(s, "contact", func() (*entity.ContactPage, error) { return s.content.ContactPage(ctx) })
	if contact == nil {
		contact = &entity.ContactPage{}
		contact.ApplyDefaults()
	}
	if contact.Image != nil && contact.Image.URL != "" {
		page.Meta.Image = contact.Image.URL
	}
	page.Data["Contact"] = contact
	return page
}

func (s *pageService) Blog(ctx context.Context) *Page {
	page := newPage("blog",
		"Blog | Stratigo",
		"Insights on web design, development, SEO and marketing from the Stratigo team.",
	)
	page.Data["Posts"] = section(s, "posts", func() ([]entity.BlogPost, error) { return s.content.BlogPosts(ctx) })
	return page
}

func (s *pageService) BlogPost(ctx context.Context, slug string) (*Page, error) {
	post, err := s.content.BlogPost(ctx, slug)
	if err != nil {
		return nil, err
	}

	page := newPage("blog_post", post.Title+" | "+siteName+" Blog", post.Excerpt)
	page.Meta.Type = "article"
	if post.FeaturedImage != nil && post.FeaturedImage.URL != "" {
		page.Meta.Image = post.FeaturedImage.URL
	}
	page.Data["Post"] = post
	return page, nil
}

func (s *pageService) CaseStudies(ctx context.Context) *Page {
	page := newPage("case_studies",
		"Case Studies | Stratigo",
		"How Stratigo helped clients reach their goals, in detail.",
	)
	page.Data["CaseStudies"] = section(s, "case_studies", func() ([]entity.CaseStudy, error) { return s.content.CaseStudies(ctx) })
	return page
}

func (s *pageService) CaseStudy(ctx context.Context, slug string) (*Page, error) {
	study, err := s.content.CaseStudy(ctx, slug)
	if err != nil {
		return nil, err
	}

	page := newPage("case_study", study.Title+" | "+siteName+" Case Study", study.Excerpt)
	page.Meta.Type = "article"
	if study.FeaturedImage != nil && study.FeaturedImage.URL != "" {
		page.Meta.Image = study.FeaturedImage.URL
	}
	page.Data["CaseStudy"] = study
	return page, nil
}

func (s *pageService) Pricing(ctx context.Context) *Page {
	page := newPage("pricing",
		"Pricing | Stratigo",
		"Website and digital marketing packages from Stratigo.",
	)
	page.Data["Packages"] = section(s, "pricing", func() ([]entity.PricingPackage, error) { return s.content.PricingPackages(ctx) })
	return page
}

func (s *pageService) Privacy(ctx context.Context) *Page {
	return newPage("privacy",
		"Privacy Policy | Stratigo",
		"How Stratigo collects, uses and protects your data, including analytics cookies.",
	)
}

func (s *pageService) NotFound(ctx context.Context) *Page {
	page := newPage("not_found", "Page not found | Stratigo", "The page you are looking for does not exist.")
	page.Status = http.StatusNotFound
	return page
}
