package service

import (
	"context"
	"sync"

	"stratigo-site/internal/entity"
	"stratigo-site/internal/model"
	"stratigo-site/internal/repository/contract"
	"stratigo-site/pkg/events"
	"stratigo-site/pkg/sitemap"
)

type fakeContent struct {
	hero       *entity.Hero
	cta        *entity.CTA
	posts      []entity.BlogPost
	studies    []entity.CaseStudy
	packages   []entity.PricingPackage
	contact    *entity.ContactPage
	sitemap    []sitemap.Post
	err        error
	sitemapErr error
}

func (f *fakeContent) Hero(ctx context.Context) (*entity.Hero, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.hero == nil {
		return nil, contract.ErrNotFound
	}
	return f.hero, nil
}

func (f *fakeContent) CTA(ctx context.Context) (*entity.CTA, error) {
	if f.cta == nil {
		return nil, contract.ErrNotFound
	}
	return f.cta, nil
}

func (f *fakeContent) BlogPosts(ctx context.Context) ([]entity.BlogPost, error) {
	return f.posts, f.err
}

func (f *fakeContent) FeaturedBlogPosts(ctx context.Context, limit int) ([]entity.BlogPost, error) {
	if len(f.posts) > limit {
		return f.posts[:limit], f.err
	}
	return f.posts, f.err
}

func (f *fakeContent) BlogPostBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	for i := range f.posts {
		if f.posts[i].Slug.Current == slug {
			return &f.posts[i], nil
		}
	}
	return nil, contract.ErrNotFound
}

func (f *fakeContent) CaseStudies(ctx context.Context) ([]entity.CaseStudy, error) {
	return f.studies, f.err
}

func (f *fakeContent) CaseStudyPageBySlug(ctx context.Context, slug string) (*entity.CaseStudyPage, error) {
	return nil, contract.ErrNotFound
}

func (f *fakeContent) PricingPackages(ctx context.Context) ([]entity.PricingPackage, error) {
	return f.packages, f.err
}

func (f *fakeContent) ContactPage(ctx context.Context) (*entity.ContactPage, error) {
	if f.contact == nil {
		return nil, contract.ErrNotFound
	}
	return f.contact, nil
}

func (f *fakeContent) SitemapPosts(ctx context.Context) ([]sitemap.Post, error) {
	return f.sitemap, f.sitemapErr
}

type fakePurger struct{ calls int }

func (p *fakePurger) Purge(ctx context.Context) error {
	p.calls++
	return nil
}

type fakeLeadRepo struct {
	created []*model.Lead
	err     error
}

func (r *fakeLeadRepo) Create(ctx context.Context, lead *model.Lead) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, lead)
	return nil
}

func (r *fakeLeadRepo) Recent(ctx context.Context, limit int) ([]model.Lead, error) {
	return nil, nil
}

type fakeMailer struct {
	notified []*model.Lead
	acked    []*model.Lead
	err      error
}

func (m *fakeMailer) SendLeadNotification(lead *model.Lead) error {
	m.notified = append(m.notified, lead)
	return m.err
}

func (m *fakeMailer) SendLeadAcknowledgement(lead *model.Lead) error {
	m.acked = append(m.acked, lead)
	return m.err
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *fakePublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}
