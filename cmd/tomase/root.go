package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Pesteves2002/tomase-website/internal/app"
	"github.com/Pesteves2002/tomase-website/internal/config"
	"github.com/Pesteves2002/tomase-website/internal/domain"
	"github.com/Pesteves2002/tomase-website/internal/logger"
	"github.com/Pesteves2002/tomase-website/internal/sources/links"
	"github.com/Pesteves2002/tomase-website/internal/version"
)

// overrides holds the flags that take precedence over TOMASE_* variables.
type overrides struct {
	addr      string
	linksFile string
	logLevel  string
}

func (o overrides) apply(cfg *config.Config) {
	if o.addr != "" {
		cfg.ListenPort = o.addr
	}
	if o.linksFile != "" {
		cfg.LinksFile = o.linksFile
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
}

func newRootCmd() *cobra.Command {
	var o overrides

	rootCmd := &cobra.Command{
		Use:   "tomase",
		Short: "Personal website of Tomás Esteves",
		Long: `tomase serves a small personal website: a presentation, a list of
profile links and a few interactive demos.

Settings come from TOMASE_* environment variables; flags override them.
Run without a subcommand to start the server.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, o)
		},
	}

	rootCmd.PersistentFlags().StringVar(&o.linksFile, "links", "", "links.yaml to serve instead of the built-in links")
	rootCmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, o)
		},
	}
	serveCmd.Flags().StringVar(&o.addr, "addr", "", "listen address, e.g. :8080")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	linksCmd := &cobra.Command{
		Use:   "links",
		Short: "Print the link directory that would be served",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLinks(cmd, o)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}

	rootCmd.AddCommand(serveCmd, linksCmd, versionCmd)
	return rootCmd
}

func runServe(cmd *cobra.Command, o overrides) error {
	cfg := config.Load()
	o.apply(cfg)

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)
	defer func() { _ = loggerClient.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.New(cfg, loggerClient).Run(ctx)
}

func runLinks(cmd *cobra.Command, o overrides) error {
	cfg := config.Load()
	o.apply(cfg)

	entries, err := loadDirectory(cfg.LinksFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, l := range entries {
		fmt.Fprintf(out, "%-10s %-45s %s\n", l.Name(), l.URL(), l.IconPath())
	}
	return nil
}

func loadDirectory(path string) ([]domain.LinkEntry, error) {
	if path == "" {
		return links.Defaults(), nil
	}
	site, err := links.NewLoader(path).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return links.NewMapper().MapLinks(site)
}
