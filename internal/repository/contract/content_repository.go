package contract

import (
	"context"
	"errors"

	"stratigo-site/internal/entity"
	"stratigo-site/pkg/sitemap"
)

var ErrNotFound = errors.New("content not found")

type ContentRepository interface {
	Hero(ctx context.Context) (*entity.Hero, error)
	CTA(ctx context.Context) (*entity.CTA, error)
	BlogPosts(ctx context.Context) ([]entity.BlogPost, error)
	FeaturedBlogPosts(ctx context.Context, limit int) ([]entity.BlogPost, error)
	BlogPostBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
	CaseStudies(ctx context.Context) ([]entity.CaseStudy, error)
	CaseStudyPageBySlug(ctx context.Context, slug string) (*entity.CaseStudyPage, error)
	PricingPackages(ctx context.Context) ([]entity.PricingPackage, error)
	ContactPage(ctx context.Context) (*entity.ContactPage, error)
	SitemapPosts(ctx context.Context) ([]sitemap.Post, error)
}
