package llm

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/sandevgo/jarvisbot/internal/core"
	"github.com/sandevgo/jarvisbot/pkg/conv"
	"github.com/sandevgo/jarvisbot/pkg/log"
)

type streamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// readStream consumes an OpenAI-style "data:" event stream, pushing every
// content delta into the segmenter. Malformed lines are logged and skipped
// so one bad chunk never kills a live response. Returns the raw
// accumulated text.
func readStream(ctx context.Context, provider string, body io.Reader, seg *conv.Segmenter) (string, error) {
	var raw strings.Builder

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		payload, found := strings.CutPrefix(line, "data:")
		if !found {
			continue
		}
		payload = strings.TrimSpace(payload)
		if payload == "[DONE]" {
			break
		}

		var chunk streamChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			perr := &core.ParseError{Provider: provider, Line: payload, Err: err}
			log.FromCtx(ctx).Debug().Err(perr).Msg("skipping malformed stream line")
			continue
		}
		for _, c := range chunk.Choices {
			if c.Delta.Content == "" {
				continue
			}
			raw.WriteString(c.Delta.Content)
			seg.Write(c.Delta.Content)
		}
	}
	if err := scanner.Err(); err != nil {
		return raw.String(), &core.TransientError{Provider: provider, Err: err}
	}

	seg.Flush()
	return raw.String(), nil
}
