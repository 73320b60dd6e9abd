package coastify

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/semaphore"
)

// ErrNoEmbedder indicates a Config without an embedding backend.
var ErrNoEmbedder = errors.New("no embedder configured")

// Matcher scores an image against the fixed category prompts in a shared
// embedding space and converts the scores into a probability distribution.
//
// Prompt embeddings are computed exactly once at construction and are
// read-only afterwards, so Match is safe to call concurrently as long as
// the underlying Embedder is (see Config.MaxConcurrent).
type Matcher struct {
	embedder   Embedder
	prompts    PromptSet
	promptVecs [][]float32 // unit-normalized, one per Label, in Label order
	logitScale float64
	sem        *semaphore.Weighted // nil = unbounded
}

// NewMatcher validates the prompt set and embeds every prompt once.
// An error here is a configuration error: the process must not serve
// classification requests if NewMatcher fails.
func NewMatcher(ctx context.Context, cfg Config) (*Matcher, error) {
	cfg.defaults()

	if cfg.Embedder == nil {
		return nil, ErrNoEmbedder
	}
	if err := cfg.Prompts.validate(); err != nil {
		return nil, err
	}

	vecs, err := cfg.Embedder.EmbedTexts(ctx, []string(cfg.Prompts))
	if err != nil {
		return nil, fmt.Errorf("embedding prompts: %w", err)
	}
	if len(vecs) != len(cfg.Prompts) {
		return nil, fmt.Errorf("%w: embedder returned %d vectors for %d prompts",
			ErrPromptMismatch, len(vecs), len(cfg.Prompts))
	}
	for i := range vecs {
		if !normalizeL2(vecs[i]) {
			return nil, fmt.Errorf("embedding prompts: zero vector for %q", cfg.Prompts[i])
		}
	}

	m := &Matcher{
		embedder:   cfg.Embedder,
		prompts:    cfg.Prompts,
		promptVecs: vecs,
		logitScale: cfg.LogitScale,
	}
	if cfg.MaxConcurrent > 0 {
		m.sem = semaphore.NewWeighted(int64(cfg.MaxConcurrent))
	}
	return m, nil
}

// Match encodes the image, computes a cosine similarity per prompt, and
// returns the temperature-scaled softmax of the scores: one probability per
// Label, in Label order, summing to ≈1. The distribution is produced fresh
// per call and never cached.
func (m *Matcher) Match(ctx context.Context, data []byte) ([]float64, error) {
	if m.sem != nil {
		if err := m.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		defer m.sem.Release(1)
	}

	vec, err := m.embedder.EmbedImage(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("embedding image: %w", err)
	}
	if len(vec) != len(m.promptVecs[0]) {
		return nil, fmt.Errorf("dimension mismatch: image %d, prompts %d",
			len(vec), len(m.promptVecs[0]))
	}
	if !normalizeL2(vec) {
		return nil, errors.New("embedding image: zero vector")
	}

	logits := make([]float64, len(m.promptVecs))
	for i, p := range m.promptVecs {
		logits[i] = m.logitScale * float64(dot(vec, p))
	}
	return softmax(logits), nil
}

// dot is the dot product of two equal-length vectors. On unit vectors this
// is the cosine similarity.
func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// normalizeL2 scales v to unit L2 norm in place. Returns false if v is
// empty or has zero norm.
func normalizeL2(v []float32) bool {
	var sumSq float32
	for _, x := range v {
		sumSq += x * x
	}
	if sumSq == 0 {
		return false
	}
	inv := 1 / float32(math.Sqrt(float64(sumSq)))
	for i := range v {
		v[i] *= inv
	}
	return true
}

// softmax converts logits into a probability distribution. The max logit is
// subtracted first for numerical stability.
func softmax(logits []float64) []float64 {
	maxLogit := logits[0]
	for _, l := range logits[1:] {
		if l > maxLogit {
			maxLogit = l
		}
	}

	out := make([]float64, len(logits))
	var sum float64
	for i, l := range logits {
		out[i] = math.Exp(l - maxLogit)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
