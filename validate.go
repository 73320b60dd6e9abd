package coastify

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/webp"
)

// MinImageDimension is the minimum pixel size of the shorter image side
// before a report photo is flagged as suspicious.
const MinImageDimension = 100

// Validation is a pre-classification quality check on a report photo.
// Suspicious photos are still classified; ConfidencePenalty lets the report
// layer discount their stored confidence.
type Validation struct {
	Valid             bool
	Suspicious        bool
	ConfidencePenalty float64
	Warnings          []string
}

// ValidateImage checks that data decodes as a raster image of usable size.
// It never fails: undecodable input is reported as invalid and suspicious,
// not as an error.
func ValidateImage(data []byte) Validation {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Validation{
			Suspicious:        true,
			ConfidencePenalty: 0.5,
			Warnings:          []string{"undecodable image: " + err.Error()},
		}
	}

	if min(cfg.Width, cfg.Height) < MinImageDimension {
		return Validation{
			Suspicious:        true,
			ConfidencePenalty: 0.5,
			Warnings:          []string{"image too small"},
		}
	}

	return Validation{Valid: true, Warnings: []string{}}
}

// ValidateImageFile is ValidateImage for an image on disk.
func ValidateImageFile(path string) Validation {
	data, err := os.ReadFile(path)
	if err != nil {
		return Validation{
			Suspicious:        true,
			ConfidencePenalty: 0.5,
			Warnings:          []string{"unreadable file: " + err.Error()},
		}
	}
	return ValidateImage(data)
}
