package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"savings-site/config"
	httpLayer "savings-site/http"
	"savings-site/repository"
	"savings-site/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the landing page and API server.

Configuration is read from the environment (and an optional .env file).

Examples:
  savings-site serve                 # listen on SAVINGS_ADDRESS (default :8080)
  savings-site serve --addr :3000    # override the listen address`,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (overrides SAVINGS_ADDRESS)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if serveAddr != "" {
		cfg.Server.Address = serveAddr
	}

	logger := config.InitLogger(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	subscribers, err := newSubscriberRepository(cfg.Database)
	if err != nil {
		return err
	}

	cache, closeCache, err := newCache(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer closeCache()

	waitlist := service.NewWaitlistService(subscribers, cache, newMailer(cfg.Email), service.WaitlistOptions{
		From:          cfg.Email.From,
		TeamInbox:     cfg.Email.TeamInbox,
		SubmissionTTL: cfg.Redis.TTL,
	})

	rateLimiter := httpLayer.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.RouterDeps{
		Logger:      logger,
		Estimator:   service.NewSavingsService(),
		Waitlist:    waitlist,
		Subscribers: subscribers,
		RateLimiter: rateLimiter,
	})

	return httpLayer.Serve(ctx, cfg.Server, router)
}

func newSubscriberRepository(cfg config.DatabaseConfig) (repository.SubscriberRepository, error) {
	if cfg.Type == "memory" {
		log.Warn().Msg("using in-memory subscriber store, signups are lost on restart")
		return repository.NewSubscriberRepositoryMemory(), nil
	}
	db, err := repository.InitDB(cfg)
	if err != nil {
		return nil, err
	}
	return repository.NewSubscriberRepositoryGorm(db), nil
}

func newCache(ctx context.Context, cfg config.RedisConfig) (repository.CacheRepository, func(), error) {
	if cfg.Address == "" {
		return repository.NewMemoryCache(), func() {}, nil
	}
	cache := repository.NewRedisCache(cfg.Address, cfg.Password, cfg.DB)
	if err := cache.Ping(ctx); err != nil {
		_ = cache.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Address, err)
	}
	closeCache := func() {
		if err := cache.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing redis client")
		}
	}
	return cache, closeCache, nil
}

func newMailer(cfg config.EmailConfig) service.Mailer {
	if cfg.APIKey == "" {
		log.Warn().Msg("SAVINGS_EMAIL_API_KEY not set, emails will only be logged")
		return service.LogMailer{}
	}
	return service.NewHTTPMailer(cfg.APIURL, cfg.APIKey, cfg.Timeout)
}
