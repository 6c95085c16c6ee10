package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request deadline, must exceed LoadDelay

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	LinksFile      string        // path to links.yaml (optional, empty = built-in links)
	ReloadInterval time.Duration // interval to reload links.yaml (default: 24h)
	AssetsDir      string        // optional directory overriding embedded assets (me.jpg lives here)
	SiteTitle      string        // document <title>

	InitialCount int           // starting value of the demo counter
	LoadDelay    time.Duration // artificial latency of the demo loader

	RateLimitBurst    int // add_todo: bucket size per client IP
	RateLimitPerMin   int // add_todo: refill per client IP per minute
	RateLimitMaxItems int // max tracked client IPs before an eager sweep

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict infra endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("TOMASE_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("TOMASE_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("TOMASE_REQUEST_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("TOMASE_LOG_LEVEL", "info"),
		PrettyLog: mustBool("TOMASE_PRETTY_LOG", true),

		// Content
		LinksFile:      getenv("TOMASE_LINKS_FILE", ""), // Optional, empty = built-in links
		ReloadInterval: mustDuration("TOMASE_RELOAD_INTERVAL", 24*time.Hour),
		AssetsDir:      getenv("TOMASE_ASSETS_DIR", ""),
		SiteTitle:      getenv("TOMASE_SITE_TITLE", "Home | Tomás Esteves"),

		// Demos
		InitialCount: getenvInt("TOMASE_INITIAL_COUNT", 10),
		LoadDelay:    mustDuration("TOMASE_LOAD_DELAY", time.Second),

		RateLimitBurst:    getenvInt("TOMASE_RATE_LIMIT_BURST", 20),
		RateLimitPerMin:   getenvInt("TOMASE_RATE_LIMIT_PER_MIN", 60),
		RateLimitMaxItems: getenvInt("TOMASE_RATE_LIMIT_MAX_ENTRIES", 10000),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("TOMASE_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("TOMASE_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("TOMASE_TRUST_PROXY", false),
	}

	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("❌ FATAL: %v", err))
	}

	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", *cfg)
	}

	return cfg
}

// Validate checks settings that depend on each other.
func (c *Config) Validate() error {
	if c.ReloadInterval <= 0 {
		return fmt.Errorf("TOMASE_RELOAD_INTERVAL must be > 0, got %v", c.ReloadInterval)
	}
	if c.LoadDelay < 0 {
		return fmt.Errorf("TOMASE_LOAD_DELAY must be >= 0, got %v", c.LoadDelay)
	}
	if c.RequestTimeout <= c.LoadDelay {
		return fmt.Errorf("TOMASE_REQUEST_TIMEOUT (%v) must be longer than TOMASE_LOAD_DELAY (%v)",
			c.RequestTimeout, c.LoadDelay)
	}
	return nil
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
