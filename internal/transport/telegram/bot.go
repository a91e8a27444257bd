package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/jarvisbot/internal/config"
	"github.com/sandevgo/jarvisbot/internal/service/brain"
	"github.com/sandevgo/jarvisbot/internal/service/command"
	"github.com/sandevgo/jarvisbot/pkg/conv"
	"github.com/sandevgo/jarvisbot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

// Bot forwards the owner's messages to the brain. Answers keep their
// markdown, rendered as Telegram HTML; speech stays on the host machine.
type Bot struct {
	bot     *tele.Bot
	cfg     *config.TelegramConfig
	brain   *brain.Brain
	router  *command.Router
	ownerID int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	b *brain.Brain,
	router *command.Router,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	tb, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:     tb,
		cfg:     cfg,
		brain:   b,
		router:  router,
		ownerID: cfg.OwnerID,
	}

	// Use context from Signal with logger
	tb.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: Only allow the owner
	tb.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	tb.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	if out, handled := b.router.Execute(ctx, c.Text()); handled {
		return c.Send(out)
	}

	res, err := b.brain.Respond(ctx, c.Text())
	if err != nil {
		logger.Error().Err(err).Msg("brain failed")
		return c.Send(fmt.Sprintf("error: %v", err))
	}

	htmlContent := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(res.Raw)))
	if htmlContent == "" {
		htmlContent = res.Text
	}
	if err := c.Send(htmlContent, tele.ModeHTML); err != nil {
		logger.Error().Err(err).Msg("failed to send telegram message")
	}
	return nil
}
