package deps

import (
	"io/fs"
	"time"

	"github.com/Pesteves2002/tomase-website/internal/index"
	"github.com/Pesteves2002/tomase-website/internal/logger"
)

type Deps struct {
	Logger          logger.Logger
	StartTime       time.Time
	Version         string
	Commit          string
	BuildDate       string
	GoVersion       string
	TimeNow         func() time.Time   // for testing, defaults to time.Now
	AllowedHosts    []string           // Host headers allowed to access the server
	AllowedCIDRS    []string           // IPs allowed to access readyz/infra/reload endpoints
	TrustProxy      bool               // true if running behind a trusted reverse proxy (e.g., cloudflared)
	LinksFile       string             // Path to links.yaml, empty when using built-in links
	MemoryIndex     *index.MemoryIndex // Current links and profile
	Assets          fs.FS              // Icons, stylesheet and portrait
	SiteTitle       string             // Document title
	InitialCount    int                // Demo counter start value
	LoadDelay       time.Duration      // Demo loader latency
	RateLimitBurst  int                // add_todo burst per client IP
	RateLimitPerMin int                // add_todo refill per client IP per minute
	RateLimitMax    int                // Max tracked client IPs
	ReloadTrigger   chan struct{}      // Channel to trigger manual links reload (nil if built-in links)
}
