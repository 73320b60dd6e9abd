package coastify

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"sync"

	"github.com/corona10/goimagehash"
	_ "golang.org/x/image/webp"
)

// dedupThreshold is the maximum Hamming distance between two dHash values
// below which photos are considered the same scene.
const dedupThreshold = 10

// DedupFilter detects re-submissions of the same pollution photo using
// perceptual hashing, so the report layer can skip duplicate reports of one
// scene. The zero value is ready to use and safe for concurrent use.
type DedupFilter struct {
	mu     sync.Mutex
	hashes []*goimagehash.ImageHash
}

// Seen reports whether data is perceptually identical to a previously
// accepted photo. A photo that cannot be decoded or hashed is accepted
// (graceful degradation). Accepted photos are remembered for future
// comparisons.
func (d *DedupFilter) Seen(data []byte) bool {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return false
	}
	return d.SeenImage(img)
}

// SeenImage is Seen for an already-decoded image.
func (d *DedupFilter) SeenImage(img image.Image) bool {
	hash, err := goimagehash.DifferenceHash(img)
	if err != nil {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, h := range d.hashes {
		dist, err := hash.Distance(h)
		if err == nil && dist < dedupThreshold {
			return true
		}
	}

	d.hashes = append(d.hashes, hash)
	return false
}
