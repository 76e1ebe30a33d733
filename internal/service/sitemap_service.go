package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"stratigo-site/internal/pkg/logger"
	"stratigo-site/pkg/sitemap"

	"github.com/robfig/cron/v3"
)

// PostSource lists the blog posts that belong in the sitemap.
type PostSource interface {
	SitemapPosts(ctx context.Context) ([]sitemap.Post, error)
}

type ISitemapService interface {
	// Generate always returns a sitemap. When the post listing fails the
	// result holds the static pages only.
	Generate(ctx context.Context) ([]byte, int, error)
	WriteFile(ctx context.Context, path string) (int, error)
}

type sitemapService struct {
	posts     PostSource
	generator *sitemap.Generator
	logger    logger.ILogger
}

func NewSitemapService(posts PostSource, generator *sitemap.Generator, log logger.ILogger) ISitemapService {
	return &sitemapService{posts: posts, generator: generator, logger: log}
}

func (s *sitemapService) Generate(ctx context.Context) ([]byte, int, error) {
	var posts []sitemap.Post
	if s.posts != nil {
		fetched, err := s.posts.SitemapPosts(ctx)
		if err != nil {
			s.logger.Warn("SITEMAP", "Failed to fetch blog posts, using static pages only", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			posts = fetched
		}
	}

	out, count, err := s.generator.Generate(posts)
	if err != nil {
		return nil, 0, fmt.Errorf("generate sitemap: %w", err)
	}
	return out, count, nil
}

func (s *sitemapService) WriteFile(ctx context.Context, path string) (int, error) {
	out, count, err := s.Generate(ctx)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("create sitemap directory: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return 0, fmt.Errorf("write sitemap: %w", err)
	}
	return count, nil
}

// SitemapScheduler rewrites the static sitemap file on a cron schedule.
// Runs are serialized so the cron job and webhook refreshes never write the
// file at the same time.
type SitemapScheduler struct {
	mu      sync.Mutex
	cron    *cron.Cron
	service ISitemapService
	path    string
	logger  logger.ILogger
}

func NewSitemapScheduler(service ISitemapService, path string, log logger.ILogger) *SitemapScheduler {
	return &SitemapScheduler{
		cron:    cron.New(),
		service: service,
		path:    path,
		logger:  log,
	}
}

// Start registers the job and starts the cron loop. An empty spec disables
// the scheduler.
func (s *SitemapScheduler) Start(spec string) error {
	if spec == "" {
		s.logger.Info("SITEMAP", "Sitemap schedule disabled", nil)
		return nil
	}
	if _, err := s.cron.AddFunc(spec, s.Run); err != nil {
		return fmt.Errorf("invalid sitemap schedule %q: %w", spec, err)
	}
	s.cron.Start()
	s.logger.Info("SITEMAP", "Sitemap scheduler started", map[string]interface{}{"schedule": spec, "path": s.path})
	return nil
}

func (s *SitemapScheduler) Run() {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, err := s.service.WriteFile(context.Background(), s.path)
	if err != nil {
		s.logger.Error("SITEMAP", "Scheduled sitemap generation failed", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("SITEMAP", "Sitemap regenerated", map[string]interface{}{"urls": count, "path": s.path})
}

// Stop waits for a running job to finish.
func (s *SitemapScheduler) Stop() {
	<-s.cron.Stop().Done()
}
