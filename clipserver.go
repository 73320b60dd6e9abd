package coastify

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultClipModel is the CLIP checkpoint served by the inference sidecar.
const DefaultClipModel = "clip-vit-base-patch32"

const clipRequestTimeout = 60 * time.Second

// ClipServer is an Embedder backed by a local CLIP inference sidecar over
// HTTP. The sidecar holds the model weights in memory; one ClipServer is
// constructed at process start and shared for the process lifetime.
// Requests are independent, so ClipServer is safe for concurrent use.
type ClipServer struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewClipServer connects to the sidecar at baseURL and probes it once by
// embedding a short text, forcing the model to load. An error here means
// the model is unavailable and the process must not serve classification
// requests. Empty arguments use localhost and DefaultClipModel.
func NewClipServer(ctx context.Context, baseURL, model string) (*ClipServer, error) {
	if baseURL == "" {
		baseURL = "http://localhost:8093"
	}
	if model == "" {
		model = DefaultClipModel
	}

	s := &ClipServer{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: clipRequestTimeout},
	}

	if _, err := s.EmbedTexts(ctx, []string{"model load probe"}); err != nil {
		return nil, fmt.Errorf("clip server unavailable at %s: %w", baseURL, err)
	}
	return s, nil
}

type clipTextRequest struct {
	Model string   `json:"model"`
	Texts []string `json:"texts"`
}

type clipImageRequest struct {
	Model       string `json:"model"`
	ImageBase64 string `json:"image_base64"`
}

type clipEmbedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

// EmbedTexts encodes each text with the sidecar's text tower.
func (s *ClipServer) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := s.post(ctx, "/embed/text", clipTextRequest{Model: s.model, Texts: texts})
	if err != nil {
		return nil, err
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("clip server returned %d embeddings for %d texts",
			len(resp.Embeddings), len(texts))
	}
	return resp.Embeddings, nil
}

// EmbedImage encodes raw image bytes with the sidecar's vision tower.
func (s *ClipServer) EmbedImage(ctx context.Context, data []byte) ([]float32, error) {
	resp, err := s.post(ctx, "/embed/image", clipImageRequest{
		Model:       s.model,
		ImageBase64: base64.StdEncoding.EncodeToString(data),
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Embeddings) != 1 {
		return nil, fmt.Errorf("clip server returned %d embeddings for 1 image", len(resp.Embeddings))
	}
	return resp.Embeddings[0], nil
}

// post sends a JSON request to the sidecar and decodes the embedding
// response.
func (s *ClipServer) post(ctx context.Context, path string, payload any) (*clipEmbedResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling clip server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("clip server %s: status %d: %s", path, resp.StatusCode, bytes.TrimSpace(msg))
	}

	var out clipEmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding clip server response: %w", err)
	}
	return &out, nil
}
