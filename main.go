package main

import (
	"context"
	"os"
	"strings"

	"restaurant-backoffice/config"
	"restaurant-backoffice/db"
	"restaurant-backoffice/services"
	"restaurant-backoffice/web"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	setupLogger(cfg.Log)

	ctx := context.Background()

	// Check for migrate subcommand
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		runMigrate(ctx, cfg)
		return
	}

	var sinks []services.Sink

	if cfg.DB.Enabled {
		if err := db.Init(ctx, cfg.DB); err != nil {
			log.Fatal().Err(err).Msg("db")
		}
		defer db.Close()

		if cfg.DB.AutoMigrate {
			if err := applyMigrations(ctx); err != nil {
				log.Fatal().Err(err).Msg("migrate")
			}
		}
		sinks = append(sinks, services.AuditLog{})
	}

	if cfg.Telegram.MessageToken != "" {
		notifier, err := services.NewTelegramNotifier(cfg.Telegram.MessageToken, cfg.Telegram.AdminChatID)
		if err != nil {
			log.Warn().Err(err).Msg("telegram notifier disabled")
		} else {
			sinks = append(sinks, notifier)
		}
	}

	store := services.NewStore()
	catalog, err := services.LoadSeedCatalog()
	if err != nil {
		log.Fatal().Err(err).Msg("seed catalog")
	}
	if store.Seed(catalog) {
		menu, svcs := store.Counts()
		log.Info().Int("menu", menu).Int("services", svcs).Msg("seeded sample data")
	}

	gin.SetMode(cfg.HTTP.GinMode)
	srv, err := web.NewServer(store, sinks...)
	if err != nil {
		log.Fatal().Err(err).Msg("web")
	}

	log.Info().Str("addr", cfg.HTTP.Addr).Int("sinks", len(sinks)).Msg("back office started")
	if err := srv.Run(cfg.HTTP.Addr); err != nil {
		log.Fatal().Err(err).Msg("http")
	}
}

func setupLogger(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	log.Logger = log.With().Caller().Logger()
}

func runMigrate(ctx context.Context, cfg *config.Config) {
	if err := db.Init(ctx, cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("db")
	}
	defer db.Close()

	if err := applyMigrations(ctx); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}
}
