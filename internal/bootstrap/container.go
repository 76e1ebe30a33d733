package bootstrap

import (
	"context"
	"log"
	"time"

	"stratigo-site/internal/config"
	"stratigo-site/internal/controller"
	"stratigo-site/internal/pkg/logger"
	"stratigo-site/internal/pkg/mailer"
	"stratigo-site/internal/repository/contract"
	"stratigo-site/internal/repository/implementation"
	"stratigo-site/internal/service"
	"stratigo-site/internal/view"
	"stratigo-site/pkg/analytics"
	pktNats "stratigo-site/pkg/nats"
	"stratigo-site/pkg/navigation"
	"stratigo-site/pkg/seo"
	"stratigo-site/pkg/sitemap"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	Logger logger.ILogger

	// Controllers
	PageController       controller.IPageController
	ContentController    controller.IContentController
	NavigationController controller.INavigationController
	ConsentController    controller.IConsentController
	LeadController       controller.ILeadController
	SitemapController    controller.ISitemapController
	WebhookController    controller.IWebhookController

	// Background Services (Exposed for main.go to run)
	AnalyticsForwarder service.IAnalyticsForwarder
	SitemapScheduler   *service.SitemapScheduler

	sitemapGenerator *sitemap.Generator
	routesFile       string
	closers          []func() error
}

// NewContainer wires the site. db may be nil, in which case leads are
// mailed and published but not stored.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	analyticsLogger := logger.NewIsolatedLogger(cfg.App.AnalyticsLogPath)
	c := &Container{Logger: sysLogger}

	// 2. Infrastructure
	var rdb *redis.Client
	if rdb = NewRedisClient(cfg.App.RedisURL, sysLogger); rdb != nil {
		c.closers = append(c.closers, rdb.Close)
	}

	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		pub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := pub.EnsureStream(ctx); err != nil {
				sysLogger.Warn("BOOTSTRAP", "NATS stream not ready", map[string]interface{}{"error": err.Error()})
			}
			cancel()
			natsPub = pub
			c.closers = append(c.closers, func() error { pub.Close(); return nil })
		}
	}

	// 3. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 256},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, pubSub.Close)

	// 4. Content
	contentRepo, err := NewContentRepository(cfg, rdb, sysLogger)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize content repository: %v", err)
	}
	contentService := service.NewContentService(contentRepo, contentRepo, sysLogger)
	pageService := service.NewPageService(contentService, sysLogger)

	// 5. Analytics
	var observerSink analytics.Sink
	downstream := newDownstreamSink(cfg.Analytics, natsPub, analyticsLogger, sysLogger)
	if downstream != nil {
		observerSink = analytics.NewBusSink(pubSub, cfg.Analytics.Topic)
		c.AnalyticsForwarder = service.NewAnalyticsForwarder(pubSub, cfg.Analytics.Topic, downstream, analyticsLogger)
	}
	observer := navigation.NewObserver(observerSink, cfg.Analytics.MeasurementID, analyticsLogger)
	sysLogger.Info("BOOTSTRAP", "Analytics configured", map[string]interface{}{
		"sink":      cfg.Analytics.Sink,
		"available": observer.Available(),
	})

	// 6. Sitemap
	pages, err := config.LoadSitemapPages(cfg.Sitemap.RoutesFile)
	if err != nil {
		sysLogger.Warn("BOOTSTRAP", "Falling back to default sitemap routes", map[string]interface{}{"error": err.Error()})
		pages = sitemap.DefaultPages
	}
	c.sitemapGenerator = sitemap.NewGenerator(cfg.App.SiteURL, pages)
	c.routesFile = cfg.Sitemap.RoutesFile
	sitemapService := service.NewSitemapService(contentRepo, c.sitemapGenerator, sysLogger)
	c.SitemapScheduler = service.NewSitemapScheduler(sitemapService, cfg.Sitemap.OutputPath, sysLogger)

	// 7. Leads
	var leadRepo contract.LeadRepository
	if db != nil {
		leadRepo = implementation.NewLeadRepository(db)
	}
	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.Email,
			cfg.SMTP.SenderName,
			cfg.SMTP.LeadRecipient,
		)
	}
	var leadPublisher analytics.EventPublisher
	if natsPub != nil {
		leadPublisher = natsPub
	}
	leadService := service.NewLeadService(leadRepo, emailService, leadPublisher, sysLogger)

	// 8. Controllers
	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("[FATAL] Failed to parse page templates: %v", err)
	}

	c.PageController = controller.NewPageController(pageService, renderer, seo.NewSynchronizer(cfg.App.SiteURL), observer, sysLogger)
	c.ContentController = controller.NewContentController(contentService)
	c.NavigationController = controller.NewNavigationController(observer)
	c.ConsentController = controller.NewConsentController(observer, cfg.IsProduction())
	c.LeadController = controller.NewLeadController(leadService)
	c.SitemapController = controller.NewSitemapController(sitemapService, cfg.App.SiteURL)
	c.WebhookController = controller.NewWebhookController(contentService, c.SitemapScheduler, cfg.Security.WebhookSecret, sysLogger)

	return c
}

// WatchSitemapRoutes hot-reloads the routes file into the sitemap generator
// until ctx is done. It is a no-op when the built-in routes are in use.
func (c *Container) WatchSitemapRoutes(ctx context.Context) error {
	if c.routesFile == "" {
		return nil
	}
	return config.WatchSitemapPages(ctx, c.routesFile, c.sitemapGenerator.SetPages, c.Logger)
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() {
	if c.SitemapScheduler != nil {
		c.SitemapScheduler.Stop()
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			c.Logger.Warn("BOOTSTRAP", "Error during shutdown", map[string]interface{}{"error": err.Error()})
		}
	}
	_ = c.Logger.Sync()
}
