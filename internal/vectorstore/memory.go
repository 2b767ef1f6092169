package vectorstore

import (
	"errors"
	"math"
	"sort"
	"sync"

	"chatbot/internal/domain"
)

// Memory is an in-memory embedding index keyed by document id, using
// brute-force cosine similarity. It is rebuilt on every engine
// initialization and read-only afterwards.
type Memory struct {
	mu        sync.RWMutex
	dimension int
	order     []string
	entries   map[string]entry
}

type entry struct {
	vector   []float64
	content  string
	keywords []string
}

// NewMemory creates an empty index.
func NewMemory() *Memory { return &Memory{} }

// Init resets the index for the given vector dimension.
func (m *Memory) Init(dimension int) error {
	if dimension <= 0 {
		return errors.New("invalid dimension")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dimension = dimension
	m.order = nil
	m.entries = make(map[string]entry)
	return nil
}

// Upsert stores one vector per document. Re-upserting an id replaces
// its entry while keeping the original insertion position, so ties in
// similarity keep resolving in knowledge-base order.
func (m *Memory) Upsert(docs []domain.Document, vectors [][]float64) error {
	if len(docs) != len(vectors) {
		return errors.New("documents and vectors length mismatch")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		return errors.New("index not initialized")
	}
	for _, v := range vectors {
		if len(v) != m.dimension {
			return errors.New("vector dimension mismatch")
		}
	}
	for i, doc := range docs {
		if _, exists := m.entries[doc.ID]; !exists {
			m.order = append(m.order, doc.ID)
		}
		m.entries[doc.ID] = entry{vector: vectors[i], content: doc.Content, keywords: doc.Keywords}
	}
	return nil
}

// Search ranks every indexed document against the query vector and
// returns the topK best, ordered by non-increasing similarity. NaN
// similarities sort last so a degenerate vector cannot perturb the
// ordering of valid entries.
func (m *Memory) Search(vector []float64, topK int) ([]domain.RetrievalResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if topK <= 0 {
		topK = 3
	}
	results := make([]domain.RetrievalResult, 0, len(m.order))
	for _, id := range m.order {
		e := m.entries[id]
		results = append(results, domain.RetrievalResult{
			ID:         id,
			Similarity: Cosine(vector, e.vector),
			Content:    e.content,
			Keywords:   e.keywords,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i].Similarity, results[j].Similarity
		if math.IsNaN(b) {
			return !math.IsNaN(a)
		}
		if math.IsNaN(a) {
			return false
		}
		return a > b
	})
	if topK > len(results) {
		topK = len(results)
	}
	return results[:topK], nil
}

// Len returns the number of indexed documents.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}

// Clear drops all entries but keeps the configured dimension.
func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.order = nil
	m.entries = make(map[string]entry)
	return nil
}

// Cosine computes cosine similarity between two vectors. Norms are
// computed independently even though indexed vectors are already
// unit-length. A zero denominator yields 0 rather than NaN.
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	den := math.Sqrt(na) * math.Sqrt(nb)
	if den == 0 {
		return 0
	}
	return dot / den
}
