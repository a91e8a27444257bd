package core

const (
	JarvisName      = "JarvisBot"
	JarvisUserAgent = "JarvisBot-Agent/0.1"
	JarvisRepoURL   = "https://github.com/sandevgo/jarvisbot"
	JarvisVersion   = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultSystemPrompt is forced into slot 0 of the conversation on every
// provider call, overwriting whatever was there. Persona consistency wins
// over caller customization.
const DefaultSystemPrompt = "You are Jarvis, a helpful voice assistant for a programmer. " +
	"Provide concise, accurate answers to questions. You answer questions, " +
	"no matter how long, very quickly with low latency."

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Result is the transient output of one provider call. Raw is the text as
// accumulated from the wire, Text is the TTS-ready cleaned form, Sentences
// is populated only by streaming calls.
type Result struct {
	Raw       string
	Text      string
	Sentences []string
}

// Options enumerates the generation knobs a provider may honor. Adapters
// ignore knobs their wire format has no field for.
type Options struct {
	Model             string
	MaxTokens         int
	Temperature       float64
	FrequencyPenalty  float64
	PresencePenalty   float64
	RepetitionPenalty float64
	TopK              int
	Stream            bool

	// OnSentence receives cleaned sentences as the stream produces them.
	// Nil disables incremental emission; sentences are still collected
	// into Result.Sentences.
	OnSentence func(sentence string)
}
