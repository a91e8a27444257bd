package conv

import (
	"strings"
	"unicode/utf8"
)

// Sentences shorter than this after cleaning are punctuation residue or
// stray tokens, not speakable sentences.
const minSentenceLen = 5

// Segmenter accumulates streamed text deltas and emits complete sentences
// as soon as their boundary arrives, so speech synthesis can start before
// the model finishes. A boundary is a run of '.', '!' or '?' followed by
// whitespace; a terminator at the very end of the buffer waits for the
// next delta, it may be the middle of an ellipsis or a version number.
type Segmenter struct {
	buf  strings.Builder
	emit func(string)
	out  []string
}

// NewSegmenter creates a segmenter. emit may be nil; completed sentences
// are always collected and available from Sentences.
func NewSegmenter(emit func(string)) *Segmenter {
	return &Segmenter{emit: emit}
}

// Write feeds the next text delta and emits any sentences it completes.
func (s *Segmenter) Write(delta string) {
	if delta == "" {
		return
	}
	s.buf.WriteString(delta)

	text := s.buf.String()
	for {
		sentence, rest, ok := cutSentence(text)
		if !ok {
			break
		}
		s.push(sentence)
		text = rest
	}
	s.buf.Reset()
	s.buf.WriteString(text)
}

// Flush emits whatever remains in the buffer as a final sentence.
func (s *Segmenter) Flush() {
	if s.buf.Len() == 0 {
		return
	}
	s.push(s.buf.String())
	s.buf.Reset()
}

// Sentences returns everything emitted so far.
func (s *Segmenter) Sentences() []string {
	return s.out
}

func (s *Segmenter) push(raw string) {
	sentence := Clean(raw)
	if utf8.RuneCountInString(sentence) < minSentenceLen {
		return
	}
	s.out = append(s.out, sentence)
	if s.emit != nil {
		s.emit(sentence)
	}
}

func cutSentence(text string) (sentence, rest string, ok bool) {
	for i := 0; i < len(text); i++ {
		if !isTerminator(text[i]) {
			continue
		}
		j := i
		for j < len(text) && isTerminator(text[j]) {
			j++
		}
		if j >= len(text) {
			// The run may still be growing.
			return "", "", false
		}
		if isSpace(text[j]) {
			return text[:j], text[j:], true
		}
		i = j
	}
	return "", "", false
}

func isTerminator(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}

// SegmentText splits an already complete text into speakable sentences.
func SegmentText(text string) []string {
	s := NewSegmenter(nil)
	s.Write(text)
	s.Flush()
	return s.Sentences()
}
