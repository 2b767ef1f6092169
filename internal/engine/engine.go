package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"chatbot/internal/cv"
	"chatbot/internal/domain"
	"chatbot/internal/embedding"
	"chatbot/internal/extract"
	"chatbot/internal/knowledge"
	"chatbot/internal/respond"
	"chatbot/internal/vectorstore"
)

// Options tunes an engine instance.
type Options struct {
	// TopK is how many documents retrieval hands to the synthesizer.
	TopK int
	// WhatsAppNumber is the contact identifier the synthesizer builds
	// messaging deep links from.
	WhatsAppNumber string
}

const defaultWhatsAppNumber = "5491162502232"

// Engine is the retrieval-and-response façade. It owns the knowledge
// base, the embedding index and the loaded lifecycle flag. One engine
// serves one document snapshot; instances share nothing.
type Engine struct {
	doc      *goquery.Document
	catalog  *cv.Catalog
	extract  *extract.Extractor
	embedder domain.Embedder
	index    domain.VectorIndex
	synth    domain.Synthesizer
	log      *zap.Logger

	topK   int
	mu     sync.Mutex
	loaded bool
	locale domain.Locale
	kb     []domain.Document
}

// New creates an engine over the given page snapshot. logger must not
// be nil; pass zap.NewNop() to silence it.
func New(doc *goquery.Document, catalog *cv.Catalog, opts Options, logger *zap.Logger) *Engine {
	if opts.TopK <= 0 {
		opts.TopK = 3
	}
	if opts.WhatsAppNumber == "" {
		opts.WhatsAppNumber = defaultWhatsAppNumber
	}
	return &Engine{
		doc:      doc,
		catalog:  catalog,
		extract:  extract.New(catalog),
		embedder: embedding.NewHashedEmbedder(),
		index:    vectorstore.NewMemory(),
		synth:    respond.New(catalog, opts.WhatsAppNumber),
		log:      logger,
		topK:     opts.TopK,
		locale:   domain.LocaleEN,
	}
}

// Initialize rebuilds the knowledge base and the embedding index from
// the page snapshot. It is idempotent per call and never fails the
// caller: any extraction or indexing problem degrades to the canned
// fallback knowledge base, after which the engine is still loaded.
func (e *Engine) Initialize(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.initLocked(ctx)
	return nil
}

func (e *Engine) initLocked(ctx context.Context) {
	kb, locale := e.buildKnowledgeBase()
	if len(kb) == 0 {
		e.log.Warn("no content extracted from page, using fallback knowledge base")
		kb = knowledge.Fallback()
	}
	if err := e.indexDocuments(ctx, kb); err != nil {
		e.log.Error("indexing extracted knowledge base failed, using fallback", zap.Error(err))
		kb = knowledge.Fallback()
		if err := e.indexDocuments(ctx, kb); err != nil {
			// Fallback documents are constants; this cannot happen
			// outside of a programming error.
			e.log.Error("indexing fallback knowledge base failed", zap.Error(err))
		}
	}
	e.kb = kb
	e.locale = locale
	e.loaded = true
	e.log.Info("engine initialized",
		zap.Int("documents", len(kb)),
		zap.String("locale", string(locale)))
}

// buildKnowledgeBase runs extraction with a recover fence so a broken
// snapshot can never abort initialization.
func (e *Engine) buildKnowledgeBase() (kb []domain.Document, locale domain.Locale) {
	locale = domain.LocaleEN
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("extraction panicked", zap.Any("panic", r))
			kb = nil
		}
	}()
	if e.doc == nil {
		return nil, locale
	}
	locale = extract.DetectLocale(e.doc)
	facts := e.extract.Extract(e.doc)
	return knowledge.Build(facts), locale
}

func (e *Engine) indexDocuments(ctx context.Context, kb []domain.Document) error {
	if err := e.index.Init(e.embedder.Dimension()); err != nil {
		return err
	}
	vectors := make([][]float64, len(kb))
	for i, doc := range kb {
		if err := ctx.Err(); err != nil {
			return err
		}
		vec, err := e.embedder.Embed(doc.Content)
		if err != nil {
			return fmt.Errorf("embed document %s: %w", doc.ID, err)
		}
		vectors[i] = vec
	}
	return e.index.Upsert(kb, vectors)
}

// Loaded reports whether a prior Initialize completed.
func (e *Engine) Loaded() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loaded
}

// Locale returns the page language captured at initialization.
func (e *Engine) Locale() domain.Locale {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.locale
}

// KnowledgeBase returns the documents built by the last Initialize.
func (e *Engine) KnowledgeBase() []domain.Document {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.kb
}

// ProcessQuery retrieves the most relevant documents for query and
// synthesizes the response, initializing first if needed. It always
// returns a non-empty string; failures map to a localized error text.
func (e *Engine) ProcessQuery(ctx context.Context, query string) string {
	return e.ProcessQueryIn(ctx, query, "")
}

// ProcessQueryIn is ProcessQuery with an explicit locale override,
// used by callers that carry their own language signal. An empty
// locale uses the one captured at initialization.
func (e *Engine) ProcessQueryIn(ctx context.Context, query string, locale domain.Locale) (response string) {
	if !e.Loaded() {
		_ = e.Initialize(ctx)
	}
	if locale == "" {
		locale = e.Locale()
	}
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("query processing panicked", zap.Any("panic", r), zap.String("query", query))
			response = respond.ErrorText(locale)
		}
	}()

	relevant, err := e.findRelevant(query, e.topK)
	if err != nil {
		e.log.Error("retrieval failed", zap.Error(err), zap.String("query", query))
		return respond.ErrorText(locale)
	}
	return e.synth.Respond(query, relevant, locale)
}

// findRelevant embeds the query and ranks the indexed documents,
// returning at most topK results in non-increasing similarity order.
func (e *Engine) findRelevant(query string, topK int) ([]domain.RetrievalResult, error) {
	vec, err := e.embedder.Embed(query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	return e.index.Search(vec, topK)
}
