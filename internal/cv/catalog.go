package cv

import (
	"sync"

	"chatbot/internal/domain"
)

// ReleasesURL is the generic download location offered when no
// variant catalog is available at all.
const ReleasesURL = "https://github.com/mnofresno/mariano-portfolio/releases"

// DefaultBaseURL is where the static site serves the CV files from.
const DefaultBaseURL = "/assets/cv"

// Catalog is the publication channel for downloadable CV variants.
// An external collaborator (the badge renderer) may publish a live
// list; until that happens the catalog answers with the fixed set of
// known variants.
type Catalog struct {
	mu        sync.RWMutex
	baseURL   string
	published []domain.CVVariant
}

// NewCatalog creates a catalog that constructs download URLs under
// baseURL. An empty baseURL falls back to DefaultBaseURL.
func NewCatalog(baseURL string) *Catalog {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Catalog{baseURL: baseURL}
}

// Publish replaces the live variant list. Publishing an empty list
// reverts the catalog to its static fallback.
func (c *Catalog) Publish(variants []domain.CVVariant) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.published = variants
}

// Variants returns the published list when present, otherwise the
// static fallback of 8 known variants (2 languages x 4 categories).
func (c *Catalog) Variants() []domain.CVVariant {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.published) > 0 {
		out := make([]domain.CVVariant, len(c.published))
		copy(out, c.published)
		return out
	}
	return c.staticVariants()
}

func (c *Catalog) staticVariants() []domain.CVVariant {
	known := []domain.CVVariant{
		{Name: "General (EN)", File: "CV-en.pdf", Lang: domain.LocaleEN, Variant: "general"},
		{Name: "Development (EN)", File: "CV-en-dev.pdf", Lang: domain.LocaleEN, Variant: "dev"},
		{Name: "Tech Lead (EN)", File: "CV-en-lead.pdf", Lang: domain.LocaleEN, Variant: "lead"},
		{Name: "IoT & Electronics (EN)", File: "CV-en-iot.pdf", Lang: domain.LocaleEN, Variant: "iot"},
		{Name: "General (ES)", File: "CV-es.pdf", Lang: domain.LocaleES, Variant: "general"},
		{Name: "Desarrollo (ES)", File: "CV-es-dev.pdf", Lang: domain.LocaleES, Variant: "dev"},
		{Name: "Líder Técnico (ES)", File: "CV-es-lead.pdf", Lang: domain.LocaleES, Variant: "lead"},
		{Name: "IoT y Electrónica (ES)", File: "CV-es-iot.pdf", Lang: domain.LocaleES, Variant: "iot"},
	}
	for i := range known {
		known[i].DownloadURL = c.baseURL + "/" + known[i].File
	}
	return known
}
