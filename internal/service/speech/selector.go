package speech

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sandevgo/jarvisbot/internal/config"
	"github.com/sandevgo/jarvisbot/internal/core"
	"github.com/sandevgo/jarvisbot/pkg/log"
	"github.com/sandevgo/jarvisbot/pkg/retry"
)

// NewSpeaker picks the online backend when the network probe succeeds and
// the offline one otherwise. The choice is made once at startup; a network
// that drops later surfaces as Speak errors, not a re-selection.
func NewSpeaker(ctx context.Context, cfg *config.SpeechConfig) core.Speaker {
	online := Online(ctx, cfg.ProbeURL)
	log.FromCtx(ctx).Info().Bool("online", online).Msg("selecting speech backend")

	command := cfg.OnlineCommand
	if !online {
		command = cfg.OfflineCommand
	}
	if command == "" {
		return NewConsoleSpeaker()
	}

	speaker, err := NewCommandSpeaker(command)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("bad tts command, falling back to console")
		return NewConsoleSpeaker()
	}
	return speaker
}

// Online probes the URL with retries and reports whether the network
// answered at all. Any HTTP status counts as reachable.
func Online(ctx context.Context, probeURL string) bool {
	client := &http.Client{Timeout: 5 * time.Second}

	err := retry.NewDefaultRetrier().Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, probeURL, nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("probe: %w", err)
		}
		resp.Body.Close()
		return nil
	})
	return err == nil
}
