package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/jarvisbot/internal/config"
	"github.com/sandevgo/jarvisbot/internal/providers/llm"
	"github.com/sandevgo/jarvisbot/internal/service/activity"
	"github.com/sandevgo/jarvisbot/internal/service/brain"
	"github.com/sandevgo/jarvisbot/internal/service/command"
	"github.com/sandevgo/jarvisbot/internal/service/history"
	"github.com/sandevgo/jarvisbot/internal/service/matcher"
	"github.com/sandevgo/jarvisbot/internal/service/speech"
	"github.com/sandevgo/jarvisbot/internal/storage/qa"
	"github.com/sandevgo/jarvisbot/internal/storage/sqlite"
	"github.com/sandevgo/jarvisbot/internal/transport/cli"
	"github.com/sandevgo/jarvisbot/internal/transport/telegram"
	"github.com/sandevgo/jarvisbot/pkg/log"
	"github.com/sandevgo/jarvisbot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	speechCfg := config.NewSpeechConfig(ctx)

	// 2. Storage
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	activityRepo := sqlite.NewActivityRepo(db)
	store := qa.Load(ctx, appCfg.GetQAPath())

	// 3. Provider chain
	chain, err := llm.NewChain(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build provider chain")
	}

	// 4. Speech
	speaker := speech.NewSpeaker(ctx, speechCfg)
	queue := speech.NewQueue(speaker)
	services = append(services, queue)

	// 5. Brain
	b := brain.New(brain.Config{
		Store:       store,
		Matcher:     matcher.New(store, appCfg.MatchThreshold, appCfg.MatcherCache),
		Providers:   chain,
		History:     history.New(),
		MaxMessages: appCfg.HistoryMaxMessages,
		Queue:       queue,
		Activity:    activityRepo,
	})

	router := command.New(command.Builtins(b.ClearHistory))

	// 6. Idle monitor
	services = append(services,
		activity.NewMonitor(activityRepo, queue, appCfg.IdleWarnAfter, appCfg.IdlePollEvery))

	// 7. Transports
	transports, err := initTransports(ctx, appCfg, b, router)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func initTransports(ctx context.Context, cfg *config.AppConfig, b *brain.Brain, router *command.Router) ([]srv.Service, error) {
	var services []srv.Service

	if cfg.EnableCLI {
		rl, err := cli.NewReadLine(b, router, cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, rl)
	}

	if cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, b, router)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
