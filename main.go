package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"sjsage522/olxworker/config"
	"sjsage522/olxworker/internal/crawler"
	"sjsage522/olxworker/logger"
	apperrors "sjsage522/olxworker/pkg/errors"
	"sjsage522/olxworker/services/cache"
	"sjsage522/olxworker/services/output"
	"sjsage522/olxworker/services/publisher"
	"sjsage522/olxworker/services/worker"
)

var version = "dev"

var (
	targetURLs []string
	outDir     string
	formats    []string
	rulesFile  string
	interval   time.Duration
	publish    bool
	noSample   bool
)

func main() {
	// Load environment variables
	godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the command with its flags
func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:     "olxworker",
		Short:   "Extract car cover listings from OLX search pages",
		Version: version,
		Long: `olxworker fetches marketplace search pages, extracts listing records
with a cascade of increasingly heuristic strategies, saves them as CSV, JSON
and text files, and optionally publishes them to Redis streams.`,
		Example: `  # Run once against the default search page
  olxworker

  # Crawl two pages every 10 minutes and publish to Redis
  olxworker --url https://www.olx.in/items/q-car-cover --url https://www.olx.in/items/q-bike-cover \
    --interval 10m --publish

  # Write only JSON into ./out using custom selectors
  olxworker --out-dir out --formats json --rules rules.yaml`,
		Args:         cobra.NoArgs,
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringArrayVar(&targetURLs, "url", nil, "Target search page URL (can be used multiple times)")
	rootCmd.Flags().StringVar(&outDir, "out-dir", "", "Directory for result files")
	rootCmd.Flags().StringSliceVar(&formats, "formats", nil, "Output formats (csv, json, txt)")
	rootCmd.Flags().StringVar(&rulesFile, "rules", "", "YAML file overriding the extraction rules")
	rootCmd.Flags().DurationVar(&interval, "interval", 0, "Crawl interval; 0 runs a single cycle")
	rootCmd.Flags().BoolVar(&publish, "publish", false, "Publish listings to Redis streams")
	rootCmd.Flags().BoolVar(&noSample, "no-sample", false, "Keep empty results instead of substituting sample listings")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		return err
	}

	rules, err := config.LoadRules(cfg.RulesFile)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load extraction rules")
		return err
	}

	log.Info().
		Str("environment", cfg.Environment).
		Strs("targets", cfg.TargetURLs).
		Dur("crawl_interval", cfg.CrawlInterval).
		Bool("run_once", cfg.RunOnce()).
		Msg("Starting application")

	// Set up context with cancellation on shutdown signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize services
	services, err := initializeServices(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize services")
		return err
	}
	defer services.Cleanup()

	// Create crawlers
	crawlers, err := crawler.CreateCrawlers(cfg, rules, services.Cache)
	if err != nil {
		return err
	}
	if len(crawlers) == 0 {
		return apperrors.NewConfiguration("no crawlers were created", nil)
	}

	log.Info().
		Int("crawler_count", len(crawlers)).
		Msg("Created crawlers")

	w := worker.NewWorker(crawlers, services.Publisher, services.Sink, cfg.CrawlInterval)
	if err := w.Start(ctx); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("Worker exited with error")
		return err
	}

	log.Info().Msg("Shutting down gracefully...")
	return nil
}

// applyFlags overrides environment configuration with explicitly set flags
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.TargetURLs = targetURLs
	}
	if flags.Changed("out-dir") {
		cfg.OutputDir = outDir
	}
	if flags.Changed("formats") {
		cfg.OutputFormats = config.SplitList(strings.Join(formats, ","))
	}
	if flags.Changed("rules") {
		cfg.RulesFile = rulesFile
	}
	if flags.Changed("interval") {
		cfg.CrawlInterval = interval
	}
	if flags.Changed("publish") {
		cfg.PublishEnabled = publish
	}
	if flags.Changed("no-sample") {
		cfg.SampleOnEmpty = !noSample
	}
}

// Services holds all the initialized services
type Services struct {
	Cache     cache.CacheService
	Publisher publisher.Publisher
	Sink      *output.Sink
}

// Cleanup cleans up all services
func (s *Services) Cleanup() {
	if s.Publisher != nil {
		s.Publisher.Close()
	}
}

// initializeServices initializes all required services
func initializeServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	services := &Services{}

	// Initialize cache service
	if cfg.CacheEnabled {
		memcache := cache.NewMemcacheService(cfg.MemcacheAddr)
		if err := memcache.Ping(); err != nil {
			logger.Warn("Memcache at %s is unreachable: %v", cfg.MemcacheAddr, err)
		} else {
			logger.Info("Connected to Memcache at %s", cfg.MemcacheAddr)
		}
		services.Cache = memcache
	} else {
		services.Cache = cache.NewMemoryService()
	}

	// Initialize publisher
	if cfg.PublishEnabled {
		redisPublisher := publisher.NewRedisPublisher(
			cfg.RedisAddr,
			cfg.RedisDB,
			cfg.RedisStream,
			cfg.RedisStreamCount,
			cfg.RedisStreamMaxLength,
		)
		if err := redisPublisher.Ping(ctx); err != nil {
			redisPublisher.Close()
			return nil, err
		}
		services.Publisher = redisPublisher

		logger.Info("Connected to Redis at %s (DB: %d, Stream: %s)",
			cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)
	} else {
		services.Publisher = publisher.NopPublisher{}
	}

	// Initialize result files
	sink, err := output.NewSink(cfg.OutputDir, cfg.OutputBaseName, cfg.OutputFormats)
	if err != nil {
		services.Cleanup()
		return nil, err
	}
	services.Sink = sink

	return services, nil
}
