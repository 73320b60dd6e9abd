// Package coastify classifies coastal/beach photographs into pollution
// categories without task-specific training. It wraps a pretrained joint
// image/text embedding model (CLIP-style) behind the Embedder interface,
// scores a photo against a fixed set of natural-language category prompts,
// and applies an asymmetric confidence policy that prefers reporting
// "no waste" over raising a low-confidence pollution alert.
//
// The package also extracts device geotags from image metadata and offers
// image quality validation and perceptual duplicate detection for the
// surrounding report-intake workflow. All per-image operations degrade
// gracefully: a corrupt or unsupported input yields a sentinel result,
// never an error.
package coastify

import (
	"context"
)

// Embedder abstracts the joint image/text embedding model. Implementations
// must return vectors from the same embedding space for both methods, and
// must be safe for concurrent use for read-only inference; backends that are
// not reentrant should be wrapped with Config.MaxConcurrent > 0.
type Embedder interface {
	// EmbedImage encodes raw image bytes into an embedding vector.
	EmbedImage(ctx context.Context, data []byte) ([]float32, error)

	// EmbedTexts encodes each text into an embedding vector, in input order.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// DefaultLogitScale matches the learned temperature of public CLIP
// checkpoints (exp(logit_scale) ≈ 100). Cosine similarities are multiplied
// by this factor before softmax normalization.
const DefaultLogitScale = 100.0

// Config holds all dependencies injected by the consumer.
type Config struct {
	Embedder Embedder // required: the embedding model backend

	// Prompts overrides the default category descriptions (DefaultPrompts).
	// Must have exactly one prompt per Label, in Label order.
	Prompts PromptSet

	// LogitScale is the similarity temperature (default: DefaultLogitScale).
	LogitScale float64

	// MaxConcurrent bounds concurrent Embedder calls. Zero means unbounded;
	// set to 1 for inference backends that are not reentrant.
	MaxConcurrent int

	// OnResult is an optional audit hook invoked for every classification
	// decision, including sentinel fallbacks.
	OnResult func(Result)
}

// defaults fills zero-value fields with sensible defaults.
func (c *Config) defaults() {
	if c.Prompts == nil {
		c.Prompts = DefaultPrompts
	}
	if c.LogitScale <= 0 {
		c.LogitScale = DefaultLogitScale
	}
}
