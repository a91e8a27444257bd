package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sandevgo/jarvisbot/internal/config"
	"github.com/sandevgo/jarvisbot/internal/providers/llm"
	"github.com/sandevgo/jarvisbot/internal/service/brain"
	"github.com/sandevgo/jarvisbot/internal/service/history"
	"github.com/sandevgo/jarvisbot/internal/service/matcher"
	"github.com/sandevgo/jarvisbot/internal/storage/qa"
	"github.com/sandevgo/jarvisbot/pkg/log"
	"github.com/spf13/cobra"
)

// askCmd answers one question and exits. No speech, no services, handy
// for scripts and quick checks.
var askCmd = &cobra.Command{
	Use:          "ask [question]",
	Short:        "Ask one question and print the answer",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		envPath := filepath.Join(config.GetRuntimePath(), ".env")
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				log.FromCtx(ctx).Warn().Err(err).Msg("failed to load .env file")
			}
		}

		appCfg := config.NewAppConfig(ctx)
		store := qa.Load(ctx, appCfg.GetQAPath())

		chain, err := llm.NewChain(ctx, appCfg)
		if err != nil {
			return err
		}

		b := brain.New(brain.Config{
			Store:       store,
			Matcher:     matcher.New(store, appCfg.MatchThreshold, appCfg.MatcherCache),
			Providers:   chain,
			History:     history.New(),
			MaxMessages: appCfg.HistoryMaxMessages,
		})

		res, err := b.Respond(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Println(res.Text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
