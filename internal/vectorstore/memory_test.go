package vectorstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatbot/internal/domain"
)

func TestInitRejectsInvalidDimension(t *testing.T) {
	m := NewMemory()
	assert.Error(t, m.Init(0))
	assert.Error(t, m.Init(-1))
	assert.NoError(t, m.Init(4))
}

func TestUpsertValidation(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Init(2))

	err := m.Upsert([]domain.Document{{ID: "a"}}, nil)
	assert.Error(t, err, "length mismatch")

	err = m.Upsert([]domain.Document{{ID: "a"}}, [][]float64{{1, 0, 0}})
	assert.Error(t, err, "dimension mismatch")

	err = m.Upsert([]domain.Document{{ID: "a"}}, [][]float64{{1, 0}})
	assert.NoError(t, err)
	assert.Equal(t, 1, m.Len())
}

func TestSearchReturnsTopKSorted(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Init(2))
	docs := []domain.Document{
		{ID: "x", Content: "x"},
		{ID: "y", Content: "y"},
		{ID: "z", Content: "z"},
	}
	vectors := [][]float64{{1, 0}, {0, 1}, {0.7, 0.7}}
	require.NoError(t, m.Upsert(docs, vectors))

	results, err := m.Search([]float64{1, 0}, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "x", results[0].ID)
	assert.Equal(t, "z", results[1].ID)
	assert.GreaterOrEqual(t, results[0].Similarity, results[1].Similarity)

	// topK larger than the index returns everything.
	results, err = m.Search([]float64{1, 0}, 10)
	require.NoError(t, err)
	assert.Len(t, results, 3)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Similarity, results[i].Similarity)
	}
}

func TestSearchTieBreaksByInsertionOrder(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Init(2))
	docs := []domain.Document{{ID: "first"}, {ID: "second"}}
	vectors := [][]float64{{0, 1}, {0, 1}}
	require.NoError(t, m.Upsert(docs, vectors))

	results, err := m.Search([]float64{0, 1}, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "first", results[0].ID)
	assert.Equal(t, "second", results[1].ID)
}

func TestSearchZeroVectorDocumentSortsLast(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Init(2))
	docs := []domain.Document{
		{ID: "empty", Content: ""},
		{ID: "full", Content: "text"},
	}
	vectors := [][]float64{{0, 0}, {1, 0}}
	require.NoError(t, m.Upsert(docs, vectors))

	results, err := m.Search([]float64{1, 0}, 3)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "full", results[0].ID)
	assert.Equal(t, "empty", results[1].ID)
	assert.Zero(t, results[1].Similarity)
}

func TestUpsertReplacesKeepingPosition(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Init(2))
	require.NoError(t, m.Upsert(
		[]domain.Document{{ID: "a", Content: "old"}, {ID: "b", Content: "b"}},
		[][]float64{{1, 0}, {0, 1}},
	))
	require.NoError(t, m.Upsert(
		[]domain.Document{{ID: "a", Content: "new"}},
		[][]float64{{0, 1}},
	))
	assert.Equal(t, 2, m.Len())

	results, err := m.Search([]float64{0, 1}, 2)
	require.NoError(t, err)
	assert.Equal(t, "a", results[0].ID)
	assert.Equal(t, "new", results[0].Content)
}

func TestCosine(t *testing.T) {
	a := []float64{0.3, 0.4, 0.5}
	b := []float64{0.1, 0.9, 0.2}

	assert.InDelta(t, 1.0, Cosine(a, a), 1e-12, "self similarity is 1")
	assert.InDelta(t, Cosine(a, b), Cosine(b, a), 1e-12, "symmetric")
	assert.Zero(t, Cosine(a, []float64{0, 0, 0}), "zero vector yields 0, not NaN")
	assert.InDelta(t, -1.0, Cosine([]float64{1, 0}, []float64{-1, 0}), 1e-12)
}
