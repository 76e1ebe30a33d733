package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"stratigo-site/internal/bootstrap"
	"stratigo-site/internal/config"
	"stratigo-site/internal/server"
	"stratigo-site/internal/tracer"
	"stratigo-site/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	shutdownTracer := tracer.InitTracer(tracer.SettingsFromEnv(cfg.App.Environment))
	defer shutdownTracer(context.Background())

	// 2. Initialize Database (optional, leads only)
	var gormDB *gorm.DB
	if cfg.Database.Connection != "" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection, !cfg.IsProduction())
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		gormDB = db
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Close()

	// 4. Start Background Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if container.AnalyticsForwarder != nil {
		if err := container.AnalyticsForwarder.Consume(ctx); err != nil {
			log.Printf("Background Analytics Forwarder Error: %v", err)
		}
	}
	if err := container.WatchSitemapRoutes(ctx); err != nil {
		log.Printf("Sitemap Routes Watcher Error: %v", err)
	}
	if err := container.SitemapScheduler.Start(cfg.Sitemap.Schedule); err != nil {
		log.Printf("Background Sitemap Scheduler Error: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		if err := srv.Shutdown(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
