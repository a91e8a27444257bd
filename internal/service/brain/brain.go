package brain

import (
	"context"
	"errors"
	"strings"

	"github.com/sandevgo/jarvisbot/internal/core"
	"github.com/sandevgo/jarvisbot/internal/service/history"
	"github.com/sandevgo/jarvisbot/internal/service/matcher"
	"github.com/sandevgo/jarvisbot/internal/service/speech"
	"github.com/sandevgo/jarvisbot/internal/storage/qa"
	"github.com/sandevgo/jarvisbot/pkg/conv"
	"github.com/sandevgo/jarvisbot/pkg/log"
)

// ActivityRecorder notes that the assistant was used. Failures are logged,
// never fatal; answering beats bookkeeping.
type ActivityRecorder interface {
	AddEvent(ctx context.Context, kind string) error
}

// Brain answers a question through three tiers: exact hit in the local
// store, TF-IDF match against stored questions, then the provider fallback
// chain. Successful provider answers are persisted so the next identical
// question never leaves the machine.
type Brain struct {
	store     *qa.Store
	matcher   *matcher.Matcher
	providers []core.Provider
	hist      *history.History
	maxMsgs   int
	queue     *speech.Queue
	activity  ActivityRecorder
}

type Config struct {
	Store       *qa.Store
	Matcher     *matcher.Matcher
	Providers   []core.Provider
	History     *history.History
	MaxMessages int

	// Optional.
	Queue    *speech.Queue
	Activity ActivityRecorder
}

func New(cfg Config) *Brain {
	return &Brain{
		store:     cfg.Store,
		matcher:   cfg.Matcher,
		providers: cfg.Providers,
		hist:      cfg.History,
		maxMsgs:   cfg.MaxMessages,
		queue:     cfg.Queue,
		activity:  cfg.Activity,
	}
}

// Respond answers without speaking. The full response arrives at once.
func (b *Brain) Respond(ctx context.Context, input string) (core.Result, error) {
	return b.answer(ctx, input, core.Options{})
}

// RespondSpoken streams the answer sentence by sentence into the speech
// queue and blocks until everything has been spoken.
func (b *Brain) RespondSpoken(ctx context.Context, input string) (core.Result, error) {
	opts := core.Options{Stream: true}
	if b.queue != nil {
		opts.OnSentence = b.queue.Enqueue
	}
	res, err := b.answer(ctx, input, opts)
	if b.queue != nil {
		b.queue.Wait()
	}
	return res, err
}

// ClearHistory drops the conversation, persona turn included.
func (b *Brain) ClearHistory() {
	b.hist.Clear()
}

func (b *Brain) answer(ctx context.Context, input string, opts core.Options) (core.Result, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return core.Result{}, errors.New("empty input")
	}

	b.recordActivity(ctx)
	logger := log.FromCtx(ctx)

	if answer, ok := b.store.Get(input); ok {
		logger.Debug().Msg("answered from store")
		return b.localResult(input, answer, opts), nil
	}

	if match, score := b.matcher.BestMatch(ctx, input); match != nil {
		logger.Debug().Float64("score", score).Msg("answered from matcher")
		// Persist under the new phrasing so the next identical question is
		// an exact hit instead of another TF-IDF pass.
		if err := b.store.Put(input, match.Answer); err != nil {
			logger.Warn().Err(err).Msg("could not persist answer")
		}
		return b.localResult(input, match.Answer, opts), nil
	}

	var lastErr error
	for _, p := range b.providers {
		res, err := p.Generate(ctx, b.hist, input, opts)
		if err != nil {
			var cerr *core.ConfigError
			if errors.As(err, &cerr) {
				// Deployment mistake, the rest of the chain cannot fix it.
				return core.Result{}, err
			}
			logger.Warn().Err(err).Str("provider", p.Name()).Msg("provider failed, trying next")
			lastErr = err
			continue
		}

		b.hist.Append(core.RoleUser, input)
		b.hist.Append(core.RoleAssistant, res.Text)
		b.hist.Trim(b.maxMsgs)
		b.logTokenFootprint(ctx)

		if err := b.store.Put(input, res.Text); err != nil {
			logger.Warn().Err(err).Msg("could not persist answer")
		}

		logger.Info().Str("provider", p.Name()).Msg("answered")
		return res, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no providers configured")
	}
	return core.Result{}, lastErr
}

// localResult serves a stored answer with the same shape a provider call
// produces, sentences emitted included, so callers cannot tell the tiers
// apart.
func (b *Brain) localResult(input, answer string, opts core.Options) core.Result {
	sentences := conv.SegmentText(answer)
	if opts.OnSentence != nil {
		for _, s := range sentences {
			opts.OnSentence(s)
		}
	}

	b.hist.EnsureSystem(core.DefaultSystemPrompt)
	b.hist.Append(core.RoleUser, input)
	b.hist.Append(core.RoleAssistant, answer)
	b.hist.Trim(b.maxMsgs)

	return core.Result{Raw: answer, Text: answer, Sentences: sentences}
}

// logTokenFootprint reports how many tokens the trimmed history would cost
// on the next provider call. Diagnostics only; a missing encoding is not
// worth failing over.
func (b *Brain) logTokenFootprint(ctx context.Context) {
	n, err := b.hist.TokenCount()
	if err != nil {
		log.FromCtx(ctx).Debug().Err(err).Msg("could not count history tokens")
		return
	}
	log.FromCtx(ctx).Debug().Int("history_tokens", n).Msg("history trimmed")
}

func (b *Brain) recordActivity(ctx context.Context) {
	if b.activity == nil {
		return
	}
	if err := b.activity.AddEvent(ctx, "query"); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("could not record activity")
	}
}
