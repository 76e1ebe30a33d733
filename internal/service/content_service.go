package service

import (
	"context"
	"errors"
	"fmt"

	"stratigo-site/internal/entity"
	"stratigo-site/internal/pkg/logger"
	"stratigo-site/internal/repository/contract"
)

var ErrContentNotFound = fmt.Errorf("service: %w", contract.ErrNotFound)

const FeaturedPostLimit = 3

// ContentPurger drops cached CMS documents after an edit in the studio.
type ContentPurger interface {
	Purge(ctx context.Context) error
}

type IContentService interface {
	Hero(ctx context.Context) (*entity.Hero, error)
	CTA(ctx context.Context) (*entity.CTA, error)
	BlogPosts(ctx context.Context) ([]entity.BlogPost, error)
	FeaturedBlogPosts(ctx context.Context) ([]entity.BlogPost, error)
	BlogPost(ctx context.Context, slug string) (*entity.BlogPost, error)
	CaseStudies(ctx context.Context) ([]entity.CaseStudy, error)
	CaseStudy(ctx context.Context, slug string) (*entity.CaseStudyPage, error)
	PricingPackages(ctx context.Context) ([]entity.PricingPackage, error)
	ContactPage(ctx context.Context) (*entity.ContactPage, error)
	Revalidate(ctx context.Context) error
}

type contentService struct {
	repo   contract.ContentRepository
	purger ContentPurger
	logger logger.ILogger
}

func NewContentService(repo contract.ContentRepository, purger ContentPurger, log logger.ILogger) IContentService {
	return &contentService{repo: repo, purger: purger, logger: log}
}

func notFound(err error) error {
	if errors.Is(err, contract.ErrNotFound) {
		return ErrContentNotFound
	}
	return err
}

func (s *contentService) Hero(ctx context.Context) (*entity.Hero, error) {
	hero, err := s.repo.Hero(ctx)
	return hero, notFound(err)
}

func (s *contentService) CTA(ctx context.Context) (*entity.CTA, error) {
	cta, err := s.repo.CTA(ctx)
	return cta, notFound(err)
}

func (s *contentService) BlogPosts(ctx context.Context) ([]entity.BlogPost, error) {
	return s.repo.BlogPosts(ctx)
}

func (s *contentService) FeaturedBlogPosts(ctx context.Context) ([]entity.BlogPost, error) {
	return s.repo.FeaturedBlogPosts(ctx, FeaturedPostLimit)
}

func (s *contentService) BlogPost(ctx context.Context, slug string) (*entity.BlogPost, error) {
	if slug == "" {
		return nil, ErrContentNotFound
	}
	post, err := s.repo.BlogPostBySlug(ctx, slug)
	return post, notFound(err)
}

func (s *contentService) CaseStudies(ctx context.Context) ([]entity.CaseStudy, error) {
	return s.repo.CaseStudies(ctx)
}

func (s *contentService) CaseStudy(ctx context.Context, slug string) (*entity.CaseStudyPage, error) {
	if slug == "" {
		return nil, ErrContentNotFound
	}
	page, err := s.repo.CaseStudyPageBySlug(ctx, slug)
	return page, notFound(err)
}

func (s *contentService) PricingPackages(ctx context.Context) ([]entity.PricingPackage, error) {
	return s.repo.PricingPackages(ctx)
}

func (s *contentService) ContactPage(ctx context.Context) (*entity.ContactPage, error) {
	page, err := s.repo.ContactPage(ctx)
	return page, notFound(err)
}

func (s *contentService) Revalidate(ctx context.Context) error {
	if s.purger == nil {
		return nil
	}
	if err := s.purger.Purge(ctx); err != nil {
		return fmt.Errorf("purge content cache: %w", err)
	}
	s.logger.Info("CONTENT", "Content cache purged", nil)
	return nil
}
