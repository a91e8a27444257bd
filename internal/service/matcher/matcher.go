package matcher

import (
	"context"
	"math"
	"sync"

	"github.com/sandevgo/jarvisbot/internal/storage/qa"
	"github.com/sandevgo/jarvisbot/pkg/log"
	"gonum.org/v1/gonum/floats"
)

// Match is a stored question whose TF-IDF similarity to the query
// cleared the threshold.
type Match struct {
	Question string
	Answer   string
	Score    float64
}

// Matcher ranks stored questions against a query by cosine similarity
// over TF-IDF vectors. By default the index is rebuilt from the store on
// every query so fresh pairs are matchable immediately; with caching
// enabled the index is only rebuilt when the store size changes.
type Matcher struct {
	store     *qa.Store
	threshold float64
	cache     bool

	mu      sync.Mutex
	idx     *index
	idxSize int
}

type index struct {
	vocab map[string]int
	idf   []float64
	docs  []document
}

type document struct {
	question string
	answer   string
	vec      []float64
}

func New(store *qa.Store, threshold float64, cache bool) *Matcher {
	return &Matcher{store: store, threshold: threshold, cache: cache}
}

// BestMatch returns the closest stored pair and its score, or nil with
// the best score seen when nothing clears the threshold. An empty store
// or a query with no usable tokens scores zero.
func (m *Matcher) BestMatch(ctx context.Context, query string) (*Match, float64) {
	idx := m.getIndex()
	if len(idx.docs) == 0 {
		return nil, 0
	}

	qvec := idx.vectorize(tokenize(query))
	if qvec == nil {
		return nil, 0
	}

	best := -1
	bestScore := 0.0
	for i, doc := range idx.docs {
		// Vectors are L2-normalized, the dot product is the cosine.
		score := floats.Dot(qvec, doc.vec)
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	if best < 0 || bestScore < m.threshold {
		return nil, bestScore
	}

	doc := idx.docs[best]
	log.FromCtx(ctx).Debug().
		Str("question", doc.question).
		Float64("score", bestScore).
		Msg("local match")
	return &Match{Question: doc.question, Answer: doc.answer, Score: bestScore}, bestScore
}

func (m *Matcher) getIndex() *index {
	m.mu.Lock()
	defer m.mu.Unlock()

	size := m.store.Len()
	if m.cache && m.idx != nil && m.idxSize == size {
		return m.idx
	}

	m.idx = buildIndex(m.store.Snapshot())
	m.idxSize = size
	return m.idx
}

func buildIndex(pairs map[string]string) *index {
	idx := &index{vocab: make(map[string]int)}

	type tokenized struct {
		question string
		answer   string
		tokens   []string
	}
	docs := make([]tokenized, 0, len(pairs))
	df := make(map[string]int)

	for q, a := range pairs {
		tokens := tokenize(q)
		docs = append(docs, tokenized{question: q, answer: a, tokens: tokens})

		seen := make(map[string]struct{}, len(tokens))
		for _, t := range tokens {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
			if _, ok := idx.vocab[t]; !ok {
				idx.vocab[t] = len(idx.vocab)
			}
		}
	}

	// Smoothed IDF, never zero, so single-document corpora still produce
	// non-degenerate vectors.
	n := float64(len(docs))
	idx.idf = make([]float64, len(idx.vocab))
	for t, i := range idx.vocab {
		idx.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	for _, d := range docs {
		vec := idx.vectorize(d.tokens)
		if vec == nil {
			vec = make([]float64, len(idx.vocab))
		}
		idx.docs = append(idx.docs, document{question: d.question, answer: d.answer, vec: vec})
	}
	return idx
}

// vectorize builds the L2-normalized TF-IDF vector for the tokens, or
// nil when no token is in the vocabulary.
func (idx *index) vectorize(tokens []string) []float64 {
	vec := make([]float64, len(idx.vocab))
	hit := false
	for _, t := range tokens {
		if i, ok := idx.vocab[t]; ok {
			vec[i] += idx.idf[i]
			hit = true
		}
	}
	if !hit {
		return nil
	}

	if norm := floats.Norm(vec, 2); norm > 0 {
		floats.Scale(1/norm, vec)
	}
	return vec
}
