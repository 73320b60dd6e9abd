package coastify

import (
	"bytes"
	"log/slog"
	"math"
	"math/big"
	"os"
	"strings"

	"github.com/bep/imagemeta"
)

// GeoCoordinate is a device-captured location recovered from an image's
// EXIF GPS block. When Present is false, Latitude and Longitude carry no
// meaning; callers treat that as "no override available", not as an error.
type GeoCoordinate struct {
	Present   bool
	Latitude  float64
	Longitude float64
}

// gpsTags are the EXIF fields the extractor reads. Every field is optional.
var gpsTags = map[string]bool{
	"GPSLatitude":     true,
	"GPSLatitudeRef":  true,
	"GPSLongitude":    true,
	"GPSLongitudeRef": true,
}

// ExtractGeo parses the EXIF GPS block from raw image bytes into signed
// decimal degrees. Degrees/minutes/seconds convert as deg + min/60 +
// sec/3600; a south latitude reference or west longitude reference negates
// the axis. Absence of the block, a malformed block, or any decode error
// all yield {Present: false}; this function never fails loudly.
func ExtractGeo(data []byte) (coord GeoCoordinate) {
	// Geotag blocks in the wild are frequently malformed; treat a parser
	// panic the same as any other unreadable block.
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("coastify: geotag parse panic", "recovered", r)
			coord = GeoCoordinate{}
		}
	}()

	if len(data) == 0 {
		return GeoCoordinate{}
	}

	var (
		lat, lon       float64
		latOK, lonOK   bool
		latRef, lonRef string
	)

	_, err := imagemeta.Decode(imagemeta.Options{
		R:       bytes.NewReader(data),
		Sources: imagemeta.EXIF,
		ShouldHandleTag: func(ti imagemeta.TagInfo) bool {
			return gpsTags[ti.Tag]
		},
		HandleTag: func(ti imagemeta.TagInfo) error {
			switch ti.Tag {
			case "GPSLatitude":
				lat, latOK = gpsDecimal(ti.Value)
			case "GPSLongitude":
				lon, lonOK = gpsDecimal(ti.Value)
			case "GPSLatitudeRef":
				latRef = refString(ti.Value)
			case "GPSLongitudeRef":
				lonRef = refString(ti.Value)
			}
			return nil
		},
	})
	if err != nil || !latOK || !lonOK {
		return GeoCoordinate{}
	}

	return GeoCoordinate{
		Present:   true,
		Latitude:  applyRef(lat, latRef, "S"),
		Longitude: applyRef(lon, lonRef, "W"),
	}
}

// ExtractGeoFile is ExtractGeo for an image on disk. An unreadable path
// yields {Present: false}.
func ExtractGeoFile(path string) GeoCoordinate {
	data, err := os.ReadFile(path)
	if err != nil {
		return GeoCoordinate{}
	}
	return ExtractGeo(data)
}

// gpsDecimal converts a GPS coordinate tag value to decimal degrees.
// Depending on the source image, the value may arrive already converted
// (float64) or as the raw degrees/minutes/seconds triple; both are handled.
func gpsDecimal(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case []float64:
		return dmsToDecimal(val)
	case []any:
		parts := make([]float64, 0, len(val))
		for _, p := range val {
			f, ok := toFloat(p)
			if !ok {
				return 0, false
			}
			parts = append(parts, f)
		}
		return dmsToDecimal(parts)
	default:
		return 0, false
	}
}

// dmsToDecimal converts a degrees/minutes/seconds triple to decimal
// degrees. A lone value is taken as already-decimal degrees.
func dmsToDecimal(parts []float64) (float64, bool) {
	switch len(parts) {
	case 1:
		return parts[0], true
	case 3:
		return parts[0] + parts[1]/60 + parts[2]/3600, true
	default:
		return 0, false
	}
}

// toFloat extracts a float from the numeric types imagemeta may produce
// for EXIF rationals.
func toFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint32:
		return float64(val), true
	case *big.Rat:
		f, _ := val.Float64()
		return f, true
	default:
		return 0, false
	}
}

// refString normalizes a hemisphere reference tag value ("N", "S", "E",
// "W", sometimes spelled out or padded) to its first letter, uppercased.
func refString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1])
}

// applyRef signs a coordinate magnitude by its hemisphere reference.
// Values are treated as magnitudes so an already-signed decimal from the
// metadata parser is not negated twice.
func applyRef(v float64, ref, negative string) float64 {
	if ref == negative {
		return -math.Abs(v)
	}
	return v
}
