package implementation

import (
	"context"
	"errors"
	"fmt"

	"stratigo-site/internal/entity"
	"stratigo-site/internal/pkg/logger"
	"stratigo-site/internal/repository/contract"
	"stratigo-site/internal/tracer"
	"stratigo-site/pkg/sanity"
	"stratigo-site/pkg/sitemap"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Fetcher is the part of the sanity client the repository relies on.
type Fetcher interface {
	Fetch(ctx context.Context, query string, params map[string]interface{}, out interface{}) error
	ImageURL(ref string) (string, error)
}

type contentRepository struct {
	client Fetcher
	logger logger.ILogger
}

func NewContentRepository(client Fetcher, log logger.ILogger) contract.ContentRepository {
	return &contentRepository{client: client, logger: log}
}

func (r *contentRepository) fetch(ctx context.Context, query string, params map[string]interface{}, out interface{}) error {
	ctx, span := tracer.Start(ctx, "sanity.fetch", attribute.Int("sanity.params", len(params)))
	defer span.End()

	err := r.client.Fetch(ctx, query, params, out)
	if errors.Is(err, sanity.ErrNotFound) {
		return contract.ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (r *contentRepository) resolveImage(img *entity.Image) {
	if !img.HasAsset() {
		return
	}
	url, err := r.client.ImageURL(img.Asset.Ref)
	if err != nil {
		r.logger.Warn("CONTENT", "Unresolvable image reference", map[string]interface{}{"ref": img.Asset.Ref, "error": err.Error()})
		return
	}
	img.URL = url
}

// keepValid drops documents that fail their schema rules. A broken document
// in the CMS must not take a whole listing down.
func keepValid[T any](r *contentRepository, kind string, docs []T) []T {
	valid := docs[:0]
	for i := range docs {
		if err := entity.Validate(&docs[i]); err != nil {
			r.logger.Warn("CONTENT", "Skipping invalid document", map[string]interface{}{"type": kind, "error": err.Error()})
			continue
		}
		valid = append(valid, docs[i])
	}
	return valid
}

func (r *contentRepository) Hero(ctx context.Context) (*entity.Hero, error) {
	var hero entity.Hero
	if err := r.fetch(ctx, sanity.HeroQuery, nil, &hero); err != nil {
		return nil, err
	}
	if err := entity.Validate(&hero); err != nil {
		return nil, fmt.Errorf("invalid hero document %s: %w", hero.ID, err)
	}
	r.resolveImage(hero.BackgroundImage)
	for i := range hero.ImageGallery {
		r.resolveImage(&hero.ImageGallery[i].Image)
	}
	return &hero, nil
}

func (r *contentRepository) CTA(ctx context.Context) (*entity.CTA, error) {
	var cta entity.CTA
	if err := r.fetch(ctx, sanity.CTAQuery, nil, &cta); err != nil {
		return nil, err
	}
	if err := entity.Validate(&cta); err != nil {
		return nil, fmt.Errorf("invalid cta document %s: %w", cta.ID, err)
	}
	r.resolveImage(cta.BackgroundImage)
	return &cta, nil
}

func (r *contentRepository) preparePosts(posts []entity.BlogPost) []entity.BlogPost {
	posts = keepValid(r, "blogPost", posts)
	for i := range posts {
		posts[i].ApplyDefaults()
		r.resolveImage(posts[i].FeaturedImage)
	}
	return posts
}

func (r *contentRepository) BlogPosts(ctx context.Context) ([]entity.BlogPost, error) {
	var posts []entity.BlogPost
	if err := r.fetch(ctx, sanity.BlogPostsQuery, nil, &posts); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return []entity.BlogPost{}, nil
		}
		return nil, err
	}
	return r.preparePosts(posts), nil
}

func (r *contentRepository) FeaturedBlogPosts(ctx context.Context, limit int) ([]entity.BlogPost, error) {
	var posts []entity.BlogPost
	if err := r.fetch(ctx, sanity.FeaturedBlogPostsQuery, map[string]interface{}{"limit": limit}, &posts); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return []entity.BlogPost{}, nil
		}
		return nil, err
	}
	return r.preparePosts(posts), nil
}

func (r *contentRepository) BlogPostBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	var post entity.BlogPost
	if err := r.fetch(ctx, sanity.BlogPostBySlugQuery, map[string]interface{}{"slug": slug}, &post); err != nil {
		return nil, err
	}
	if err := entity.Validate(&post); err != nil {
		return nil, fmt.Errorf("invalid blog post %s: %w", slug, err)
	}
	post.ApplyDefaults()
	r.resolveImage(post.FeaturedImage)
	return &post, nil
}

func (r *contentRepository) CaseStudies(ctx context.Context) ([]entity.CaseStudy, error) {
	var studies []entity.CaseStudy
	if err := r.fetch(ctx, sanity.CaseStudiesQuery, nil, &studies); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return []entity.CaseStudy{}, nil
		}
		return nil, err
	}
	studies = keepValid(r, "caseStudy", studies)
	for i := range studies {
		studies[i].ApplyDefaults()
		r.resolveImage(studies[i].Image)
	}
	return studies, nil
}

func (r *contentRepository) CaseStudyPageBySlug(ctx context.Context, slug string) (*entity.CaseStudyPage, error) {
	var page entity.CaseStudyPage
	if err := r.fetch(ctx, sanity.CaseStudyPageBySlugQuery, map[string]interface{}{"slug": slug}, &page); err != nil {
		return nil, err
	}
	if err := entity.Validate(&page); err != nil {
		return nil, fmt.Errorf("invalid case study page %s: %w", slug, err)
	}
	r.resolveImage(page.FeaturedImage)
	return &page, nil
}

func (r *contentRepository) PricingPackages(ctx context.Context) ([]entity.PricingPackage, error) {
	var packages []entity.PricingPackage
	if err := r.fetch(ctx, sanity.PricingPackagesQuery, nil, &packages); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return []entity.PricingPackage{}, nil
		}
		return nil, err
	}
	packages = keepValid(r, "pricingPackage", packages)
	for i := range packages {
		r.resolveImage(packages[i].Image)
	}
	return packages, nil
}

func (r *contentRepository) ContactPage(ctx context.Context) (*entity.ContactPage, error) {
	var page entity.ContactPage
	if err := r.fetch(ctx, sanity.ContactQuery, nil, &page); err != nil {
		return nil, err
	}
	page.ApplyDefaults()
	if err := entity.Validate(&page); err != nil {
		return nil, fmt.Errorf("invalid contact document %s: %w", page.ID, err)
	}
	r.resolveImage(page.Image)
	return &page, nil
}

func (r *contentRepository) SitemapPosts(ctx context.Context) ([]sitemap.Post, error) {
	var posts []sitemap.Post
	if err := r.fetch(ctx, sanity.SitemapPostsQuery, nil, &posts); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return []sitemap.Post{}, nil
		}
		return nil, err
	}
	return posts, nil
}
