package embedding

import (
	"math"
	"strings"
)

// DefaultDimension is the fixed length of produced vectors.
const DefaultDimension = 128

// HashedEmbedder is a deterministic bag-of-hashed-words vectorizer.
// Each lowercased whitespace-separated word is hashed into one of the
// fixed buckets and the resulting count vector is L2-normalized.
// Collisions are expected; this trades semantic quality for
// zero-dependency, offline operation.
type HashedEmbedder struct {
	dimension int
}

// NewHashedEmbedder creates an embedder with the default dimension.
func NewHashedEmbedder() *HashedEmbedder {
	return &HashedEmbedder{dimension: DefaultDimension}
}

// Name returns the identifier of this embedder implementation.
func (e *HashedEmbedder) Name() string { return "hashed-bow" }

// Dimension returns the fixed dimensionality of produced vectors.
func (e *HashedEmbedder) Dimension() int { return e.dimension }

// Embed maps text to a unit-length vector. Text with no words embeds
// to the all-zero vector rather than dividing by a zero norm, so
// downstream cosine scoring stays deterministic.
func (e *HashedEmbedder) Embed(text string) ([]float64, error) {
	vec := make([]float64, e.dimension)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		vec[e.bucket(word)]++
	}
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec, nil
}

// bucket computes a signed-overflow-safe 31x string hash and folds it
// into the bucket range.
func (e *HashedEmbedder) bucket(word string) int {
	var h int32
	for _, r := range word {
		h = h*31 + int32(r)
	}
	m := int64(h)
	if m < 0 {
		m = -m
	}
	return int(m % int64(e.dimension))
}
