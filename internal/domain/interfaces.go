package domain

// Embedder converts free text into a fixed-length numeric vector.
type Embedder interface {
	Name() string
	Dimension() int
	Embed(text string) ([]float64, error)
}

// VectorIndex holds one embedding per knowledge-base document and
// supports cosine-similarity search.
type VectorIndex interface {
	Init(dimension int) error
	Upsert(docs []Document, vectors [][]float64) error
	Search(vector []float64, topK int) ([]RetrievalResult, error)
	Len() int
	Clear() error
}

// Synthesizer turns a query plus its retrieval context into the final
// user-visible response string. Responses may carry inline HTML.
type Synthesizer interface {
	Respond(query string, context []RetrievalResult, locale Locale) string
}
