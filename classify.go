package coastify

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	_ "golang.org/x/image/webp"
)

// Sentinel confidences. Callers can tell the two failure modes apart by
// inspecting Result.Confidence: 0.0 means the input was not a decodable
// image, 0.5 means the image was fine but inference failed.
const (
	decodeFailureConfidence    = 0.0
	inferenceFailureConfidence = 0.5
)

// Result is the final classification returned to the caller. Label and
// Confidence are stored verbatim by the report layer; the display fields
// come from the category registry and are for client rendering only.
type Result struct {
	Label      Label
	Confidence float64
	Name       string
	Icon       string
	Color      string
}

// Classifier is the composition root: it validates the image, runs the
// embedding matcher, applies the decision policy, and enriches the outcome
// with display metadata. One Classifier is constructed at process start and
// shared by all requests; Classify is safe for concurrent use.
type Classifier struct {
	matcher  *Matcher
	onResult func(Result)
}

// New constructs a Classifier. This is where the model-backed prompt
// embeddings are computed; a non-nil error is a configuration error and
// the process must not begin serving classification requests.
func New(ctx context.Context, cfg Config) (*Classifier, error) {
	m, err := NewMatcher(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Classifier{matcher: m, onResult: cfg.OnResult}, nil
}

// Classify categorizes a coastal photo held in memory. It always returns a
// structurally valid Result and never an error:
//   - undecodable input → (other_solid_waste, 0.0)
//   - inference failure → (other_solid_waste, 0.5)
//
// The caller owns data; it is not retained past the call.
func (c *Classifier) Classify(ctx context.Context, data []byte) Result {
	if _, _, err := image.Decode(bytes.NewReader(data)); err != nil {
		slog.Debug("coastify: undecodable image", "error", err)
		return c.emit(enrich(LabelOtherSolidWaste, decodeFailureConfidence))
	}

	dist, err := c.matcher.Match(ctx, data)
	if err != nil {
		slog.Debug("coastify: inference failed", "error", err)
		return c.emit(enrich(LabelOtherSolidWaste, inferenceFailureConfidence))
	}

	label, confidence := Decide(dist)
	slog.Debug("coastify: classified", "label", label, "confidence", confidence)
	return c.emit(enrich(label, confidence))
}

// ClassifyFile is Classify for an image on disk. An unreadable path is
// treated like an undecodable image. The caller owns the file and its
// cleanup.
func (c *Classifier) ClassifyFile(ctx context.Context, path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("coastify: unreadable image file", "path", path, "error", err)
		return c.emit(enrich(LabelOtherSolidWaste, decodeFailureConfidence))
	}
	return c.Classify(ctx, data)
}

// emit runs the optional audit hook before returning the result.
func (c *Classifier) emit(r Result) Result {
	if c.onResult != nil {
		c.onResult(r)
	}
	return r
}

// enrich composes a Result from a decision and the registry entry.
func enrich(label Label, confidence float64) Result {
	info := Lookup(label)
	return Result{
		Label:      label,
		Confidence: confidence,
		Name:       info.Name,
		Icon:       info.Icon,
		Color:      info.Color,
	}
}
