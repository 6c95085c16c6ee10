package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Pesteves2002/tomase-website/internal/assets"
	"github.com/Pesteves2002/tomase-website/internal/config"
	"github.com/Pesteves2002/tomase-website/internal/httpserver"
	"github.com/Pesteves2002/tomase-website/internal/httpserver/deps"
	"github.com/Pesteves2002/tomase-website/internal/index"
	"github.com/Pesteves2002/tomase-website/internal/logger"
	"github.com/Pesteves2002/tomase-website/internal/scheduler"
	"github.com/Pesteves2002/tomase-website/internal/version"
)

type App struct {
	cfg      *config.Config
	logger   logger.Logger
	server   *httpserver.Server
	memIndex *index.MemoryIndex
	reloader *scheduler.LinkReloader // nil when serving the built-in links
}

// New wires the index, the optional links reloader and the HTTP server.
func New(cfg *config.Config, loggerClient logger.Logger) *App {
	memIndex := index.NewMemoryIndex()

	var reloader *scheduler.LinkReloader
	var reloadTrigger chan struct{}
	if cfg.LinksFile != "" {
		loggerClient.Info("links file configured, initializing links reloader",
			logger.String("file", cfg.LinksFile))
		reloadTrigger = make(chan struct{}, 1)
		reloader = scheduler.NewLinkReloader(
			cfg.LinksFile,
			memIndex,
			loggerClient,
			cfg.ReloadInterval,
			reloadTrigger,
		)
	} else {
		loggerClient.Info("links file not configured, serving built-in links")
		scheduler.SeedDefaults(memIndex, loggerClient)
	}

	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		TimeNow:         time.Now,
		AllowedHosts:    cfg.AllowedHosts,
		AllowedCIDRS:    cfg.AllowedCIDRS,
		TrustProxy:      cfg.TrustProxy,
		LinksFile:       cfg.LinksFile,
		MemoryIndex:     memIndex,
		Assets:          assets.New(cfg.AssetsDir),
		SiteTitle:       cfg.SiteTitle,
		InitialCount:    cfg.InitialCount,
		LoadDelay:       cfg.LoadDelay,
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
		RateLimitMax:    cfg.RateLimitMaxItems,
		ReloadTrigger:   reloadTrigger,
	}

	return &App{
		cfg:      cfg,
		logger:   loggerClient,
		server:   httpserver.New(cfg, loggerClient, d),
		memIndex: memIndex,
		reloader: reloader,
	}
}

// Run serves until ctx is done or the server fails, then shuts everything down.
func (a *App) Run(ctx context.Context) error {
	a.logger.Infof("🚀 Starting tomase-website %s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("tomase-website %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	if a.reloader != nil {
		if err := a.reloader.Start(ctx); err != nil {
			return fmt.Errorf("failed to start links reloader: %w", err)
		}
		a.logger.Info("links reloader started",
			logger.Duration("interval", a.cfg.ReloadInterval))
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.server.Start(); err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("⏳ Shutting down gracefully...")

		if a.reloader != nil {
			a.reloader.Stop()
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		if err := a.server.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("failed to stop server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	a.logger.Info("✅ tomase-website stopped cleanly")
	return nil
}

// Index exposes the link directory being served.
func (a *App) Index() *index.MemoryIndex {
	return a.memIndex
}
