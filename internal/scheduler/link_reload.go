package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Pesteves2002/tomase-website/internal/index"
	"github.com/Pesteves2002/tomase-website/internal/logger"
	"github.com/Pesteves2002/tomase-website/internal/sources/links"
)

// LinkReloader handles periodic reloading of the links file
type LinkReloader struct {
	loader        *links.Loader
	mapper        *links.Mapper
	index         *index.MemoryIndex
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	stopOnce      sync.Once
	done          chan struct{}
	manualTrigger <-chan struct{}
}

// NewLinkReloader creates a new links file reloader
func NewLinkReloader(
	linksFile string,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	manualTrigger <-chan struct{},
) *LinkReloader {
	return &LinkReloader{
		loader:        links.NewLoader(linksFile),
		mapper:        links.NewMapper(),
		index:         idx,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		done:          make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the file once, then keeps reloading it in the background until
// Stop is called or ctx is done. A failing first load aborts the start.
func (lr *LinkReloader) Start(ctx context.Context) error {
	if err := lr.Reload(ctx); err != nil {
		close(lr.done)
		return fmt.Errorf("initial reload failed: %w", err)
	}

	ticker := time.NewTicker(lr.interval)
	go func() {
		defer close(lr.done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				lr.reloadLogged(ctx)
			case <-lr.manualTrigger:
				lr.logger.Info("manual reload triggered")
				lr.reloadLogged(ctx)
			case <-lr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader and waits for its goroutine to exit
func (lr *LinkReloader) Stop() {
	lr.stopOnce.Do(func() { close(lr.stopCh) })
	<-lr.done
}

// Reload reads the links file and swaps the index content.
// On error the previous content stays in place.
func (lr *LinkReloader) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lr.logger.Info("reloading links", logger.String("file", lr.loader.Path()))

	config, err := lr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load links: %w", err)
	}

	entries, err := lr.mapper.MapLinks(config)
	if err != nil {
		return fmt.Errorf("failed to map links: %w", err)
	}

	lr.index.Update(entries, lr.mapper.MapProfile(config), lr.loader.Path())

	lr.logger.Info("loaded links",
		logger.Int("count", len(entries)))

	return nil
}

func (lr *LinkReloader) reloadLogged(ctx context.Context) {
	if err := lr.Reload(ctx); err != nil {
		lr.logger.Error("failed to reload links, keeping previous content",
			logger.Error(err))
	}
}

// SeedDefaults fills the index with the built-in links when no file is configured.
func SeedDefaults(idx *index.MemoryIndex, log logger.Logger) {
	entries := links.Defaults()
	idx.Update(entries, links.NewMapper().MapProfile(links.SiteConfig{}), SourceBuiltin)
	log.Info("using built-in links", logger.Int("count", len(entries)))
}

// SourceBuiltin marks index content that did not come from a file.
const SourceBuiltin = "builtin"
