package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbctl/config"
	"github.com/s0up4200/tmdbctl/filter"
	"github.com/s0up4200/tmdbctl/tmdb"
)

var (
	cfgFile  string
	cfg      *config.Config
	logger   zerolog.Logger
	client   *tmdb.Client
	filters  *filter.Manager
	registry *prometheus.Registry
	metrics  *tmdb.Metrics

	// Global flags
	apiKeyFlag   string
	languageFlag string
	regionFlag   string
	outputFlag   string
	detailsFlag  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tmdbctl",
	Short: "Query The Movie Database from the command line",
	Long: `tmdbctl is a CLI for The Movie Database (TMDB) v3 API.

It looks up movies, TV shows, people, companies and collections, searches
across all of them, and lists genres, certifications, watch providers and
recent changes. Listed results can be narrowed with expr filter expressions
or presets from the config file.`,
	SilenceUsage:       true,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: reportMetrics,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Interrupts cancel in-flight requests and rate limiter waits.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml, ~/.tmdbctl/config.yaml)")
	pf.StringVar(&apiKeyFlag, "api-key", "", "TMDB API key (overrides config and TMDB_API_KEY)")
	pf.StringVarP(&languageFlag, "language", "l", "", "ISO 639-1 language, e.g. en-US")
	pf.StringVar(&regionFlag, "region", "", "ISO 3166-1 region, e.g. US")
	pf.StringVarP(&outputFlag, "output", "o", "", "output format: table or json")
	pf.BoolVar(&detailsFlag, "details", false, "show extra fields in table output")
}

// initializeApp loads configuration and builds the logger, client and filter
// presets shared by every subcommand.
func initializeApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(cfgFile,
		config.Set("api_key", apiKeyFlag),
		config.Set("language", languageFlag),
		config.Set("region", regionFlag),
		config.Set("output.format", outputFlag),
		config.Set("output.show_details", detailsFlag),
	)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client, err = newClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create TMDB client: %w", err)
	}

	filters = filter.NewManager()
	if err := filters.RegisterAll(cfg.Filter.Presets); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("client", client.String()).
		Strs("presets", filters.Names()).
		Msg("initialized")

	return nil
}

// newClient builds a TMDB client from configuration.
func newClient(cfg *config.Config, logger zerolog.Logger) (*tmdb.Client, error) {
	opts := []tmdb.Option{
		tmdb.WithBaseURL(cfg.BaseURL),
		tmdb.WithTimeout(cfg.Timeout),
		tmdb.WithLogger(logger),
		tmdb.WithUserAgent(userAgent()),
		tmdb.WithMiddleware(tmdb.LoggingMiddleware(logger)),
	}

	registry, metrics = nil, nil
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		mw, m, err := tmdb.NewMetricsMiddleware(registry)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		metrics = m
		opts = append(opts, tmdb.WithMiddleware(mw))
	}

	if cfg.RateLimit.Enabled {
		opts = append(opts, tmdb.WithRateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}

	return tmdb.NewClient(cfg.APIKey, opts...)
}

// reportMetrics logs the request totals collected during the command.
func reportMetrics(_ *cobra.Command, _ []string) error {
	if registry == nil || metrics == nil {
		return nil
	}

	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		if mf.GetName() != "tmdb_client_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			event := logger.Info()
			for _, label := range m.GetLabel() {
				event = event.Str(label.GetName(), label.GetValue())
			}
			event.Float64("requests", m.GetCounter().GetValue()).Msg("TMDB requests")
		}
	}
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(os.Stderr),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// parseID parses a numeric TMDB ID argument.
func parseID(arg, what string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID %q: must be a positive integer", what, arg)
	}
	return id, nil
}
