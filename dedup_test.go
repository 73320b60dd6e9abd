package coastify

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

// makeGradient renders a gradient whose brightness increases along the
// given axis, so two different axes produce perceptually distinct images.
func makeGradient(w, h int, horizontal bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			var v uint8
			if horizontal {
				v = uint8(255 * x / w)
			} else {
				v = uint8(255 * y / h)
			}
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 60}); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDedupFilterCatchesReencodedCopy(t *testing.T) {
	t.Parallel()

	scene := makeGradient(320, 240, true)
	var d DedupFilter

	if d.Seen(encodePNG(t, scene)) {
		t.Fatal("first submission reported as duplicate")
	}
	// Same scene re-encoded as a lossy JPEG must still match.
	if !d.Seen(encodeJPEG(t, scene)) {
		t.Error("re-encoded copy not reported as duplicate")
	}
}

func TestDedupFilterKeepsDistinctScenes(t *testing.T) {
	t.Parallel()

	var d DedupFilter

	if d.Seen(encodePNG(t, makeGradient(320, 240, true))) {
		t.Fatal("first scene reported as duplicate")
	}
	if d.Seen(encodePNG(t, makeGradient(320, 240, false))) {
		t.Error("unrelated scene reported as duplicate")
	}
}

func TestDedupFilterAcceptsUndecodable(t *testing.T) {
	t.Parallel()

	var d DedupFilter
	if d.Seen([]byte("not an image")) {
		t.Error("undecodable input reported as duplicate, want graceful accept")
	}
	if d.Seen(nil) {
		t.Error("nil input reported as duplicate, want graceful accept")
	}
}
