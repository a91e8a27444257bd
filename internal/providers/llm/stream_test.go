package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sandevgo/jarvisbot/internal/core"
	"github.com/sandevgo/jarvisbot/internal/service/history"
	"github.com/sandevgo/jarvisbot/pkg/conv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sseBody(payloads ...string) string {
	var b strings.Builder
	for _, p := range payloads {
		b.WriteString("data: " + p + "\n\n")
	}
	b.WriteString("data: [DONE]\n")
	return b.String()
}

func deltaChunk(content string) string {
	return `{"choices":[{"delta":{"content":"` + content + `"}}]}`
}

func TestReadStreamAccumulatesAndSegments(t *testing.T) {
	body := sseBody(
		deltaChunk("Hello"),
		deltaChunk(" world."),
		deltaChunk(" How are you?"),
	)

	var emitted []string
	seg := conv.NewSegmenter(func(s string) { emitted = append(emitted, s) })

	raw, err := readStream(context.Background(), "test", strings.NewReader(body), seg)
	require.NoError(t, err)
	assert.Equal(t, "Hello world. How are you?", raw)
	assert.Equal(t, []string{"Hello world.", "How are you?"}, emitted)
}

func TestReadStreamSkipsMalformedLines(t *testing.T) {
	body := "data: {not json}\n\n" +
		"event: ping\n\n" +
		sseBody(deltaChunk("Still alive and talking."))

	seg := conv.NewSegmenter(nil)
	raw, err := readStream(context.Background(), "test", strings.NewReader(body), seg)
	require.NoError(t, err)
	assert.Equal(t, "Still alive and talking.", raw)
	assert.Equal(t, []string{"Still alive and talking."}, seg.Sentences())
}

func TestReadStreamStopsAtDone(t *testing.T) {
	body := "data: " + deltaChunk("Before the marker ends.") + "\n\n" +
		"data: [DONE]\n\n" +
		"data: " + deltaChunk(" after") + "\n"

	seg := conv.NewSegmenter(nil)
	raw, err := readStream(context.Background(), "test", strings.NewReader(body), seg)
	require.NoError(t, err)
	assert.Equal(t, "Before the marker ends.", raw)
}

func TestOpenAICompatibleGenerateStreaming(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte(sseBody(deltaChunk("Streaming works fine."))))
	}))
	defer srv.Close()

	p := NewOpenAICompatible(OpenAICompatibleConfig{
		Name:       "test",
		BaseURL:    srv.URL,
		APIKey:     "test-key",
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
		Defaults:   core.Options{Model: "test-model"},
	})

	hist := history.New()
	res, err := p.Generate(context.Background(), hist, "hello there", core.Options{Stream: true})
	require.NoError(t, err)
	assert.Equal(t, "Streaming works fine.", res.Raw)
	assert.Equal(t, []string{"Streaming works fine."}, res.Sentences)

	// The provider ensures the persona turn but leaves user/assistant
	// bookkeeping to the orchestrator.
	msgs := hist.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, core.RoleSystem, msgs[0].Role)
}

func TestOpenAICompatibleGenerateNonStreaming(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"**Plain** answer."}}]}`))
	}))
	defer srv.Close()

	p := NewOpenAICompatible(OpenAICompatibleConfig{
		Name:     "test",
		BaseURL:  srv.URL,
		Defaults: core.Options{Model: "test-model"},
	})

	res, err := p.Generate(context.Background(), history.New(), "hello", core.Options{})
	require.NoError(t, err)
	assert.Equal(t, "**Plain** answer.", res.Raw)
	assert.Equal(t, "Plain answer.", res.Text)
	assert.Empty(t, res.Sentences)
}

func TestOpenAICompatibleGenerateHTTPErrorIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewOpenAICompatible(OpenAICompatibleConfig{Name: "test", BaseURL: srv.URL})

	_, err := p.Generate(context.Background(), history.New(), "hello", core.Options{})
	require.Error(t, err)
	var terr *core.TransientError
	assert.ErrorAs(t, err, &terr)
}
