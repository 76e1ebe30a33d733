package cache

import (
	"context"
	"errors"
	"fmt"

	"stratigo-site/internal/entity"
	"stratigo-site/internal/pkg/logger"
	"stratigo-site/internal/repository/contract"
	"stratigo-site/internal/repository/memory"
	"stratigo-site/pkg/sitemap"
)

// L2 is the optional shared cache level.
type L2 interface {
	Get(ctx context.Context, key string, out interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Purge(ctx context.Context) error
}

// ContentRepository decorates a CMS repository with read-through caching.
// Not-found answers are not cached so new documents show up immediately.
type ContentRepository struct {
	next   contract.ContentRepository
	local  *memory.ContentCache
	shared L2
	logger logger.ILogger
}

// NewContentRepository wires the cache levels; shared may be nil.
func NewContentRepository(next contract.ContentRepository, local *memory.ContentCache, shared L2, log logger.ILogger) *ContentRepository {
	return &ContentRepository{next: next, local: local, shared: shared, logger: log}
}

func readThrough[T any](ctx context.Context, r *ContentRepository, key string, load func() (T, error)) (T, error) {
	if v, ok := r.local.Get(key); ok {
		return v.(T), nil
	}

	if r.shared != nil {
		var cached T
		found, err := r.shared.Get(ctx, key, &cached)
		if err != nil {
			r.logger.Warn("CACHE", "Shared cache read failed", map[string]interface{}{"key": key, "error": err.Error()})
		} else if found {
			r.local.Set(key, cached)
			return cached, nil
		}
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	r.local.Set(key, v)
	if r.shared != nil {
		if err := r.shared.Set(ctx, key, v); err != nil {
			r.logger.Warn("CACHE", "Shared cache write failed", map[string]interface{}{"key": key, "error": err.Error()})
		}
	}
	return v, nil
}

// Purge empties both levels.
func (r *ContentRepository) Purge(ctx context.Context) error {
	r.local.Flush()
	if r.shared == nil {
		return nil
	}
	return r.shared.Purge(ctx)
}

func (r *ContentRepository) Hero(ctx context.Context) (*entity.Hero, error) {
	return readThrough(ctx, r, "hero", func() (*entity.Hero, error) { return r.next.Hero(ctx) })
}

func (r *ContentRepository) CTA(ctx context.Context) (*entity.CTA, error) {
	return readThrough(ctx, r, "cta", func() (*entity.CTA, error) { return r.next.CTA(ctx) })
}

func (r *ContentRepository) BlogPosts(ctx context.Context) ([]entity.BlogPost, error) {
	return readThrough(ctx, r, "posts", func() ([]entity.BlogPost, error) { return r.next.BlogPosts(ctx) })
}

func (r *ContentRepository) FeaturedBlogPosts(ctx context.Context, limit int) ([]entity.BlogPost, error) {
	return readThrough(ctx, r, fmt.Sprintf("posts:featured:%d", limit), func() ([]entity.BlogPost, error) {
		return r.next.FeaturedBlogPosts(ctx, limit)
	})
}

func (r *ContentRepository) BlogPostBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	return readThrough(ctx, r, "post:"+slug, func() (*entity.BlogPost, error) { return r.next.BlogPostBySlug(ctx, slug) })
}

func (r *ContentRepository) CaseStudies(ctx context.Context) ([]entity.CaseStudy, error) {
	return readThrough(ctx, r, "case-studies", func() ([]entity.CaseStudy, error) { return r.next.CaseStudies(ctx) })
}

func (r *ContentRepository) CaseStudyPageBySlug(ctx context.Context, slug string) (*entity.CaseStudyPage, error) {
	return readThrough(ctx, r, "case-study:"+slug, func() (*entity.CaseStudyPage, error) {
		return r.next.CaseStudyPageBySlug(ctx, slug)
	})
}

func (r *ContentRepository) PricingPackages(ctx context.Context) ([]entity.PricingPackage, error) {
	return readThrough(ctx, r, "pricing", func() ([]entity.PricingPackage, error) { return r.next.PricingPackages(ctx) })
}

func (r *ContentRepository) ContactPage(ctx context.Context) (*entity.ContactPage, error) {
	return readThrough(ctx, r, "contact", func() (*entity.ContactPage, error) { return r.next.ContactPage(ctx) })
}

// SitemapPosts bypasses the cache; the sitemap job wants fresh slugs.
func (r *ContentRepository) SitemapPosts(ctx context.Context) ([]sitemap.Post, error) {
	return r.next.SitemapPosts(ctx)
}

// IsNotFound is a convenience for callers holding the decorated repository.
func IsNotFound(err error) bool {
	return errors.Is(err, contract.ErrNotFound)
}
