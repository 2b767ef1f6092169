package respond

import (
	"fmt"
	"strings"

	"chatbot/internal/cv"
	"chatbot/internal/domain"
)

// Keyword tables for CV-request classification, both languages mixed.
// Substring matching is intentional: "desarroll" covers desarrollo,
// desarrollador and desarrolladores at once.
var (
	cvIntentKeywords = []string{
		"cv", "currículum", "curriculum", "resume", "resumé", "hoja de vida",
		"busco", "looking for", "hire", "hiring", "contratar", "contratación",
		"vacante", "vacancy", "job", "empleo", "candidato", "candidate",
		"puesto", "position",
	}
	devKeywords = []string{
		"desarroll", "developer", "development", "programador", "programmer",
		"backend", "frontend", "fullstack", "full-stack", "software",
	}
	leadKeywords = []string{
		"líder", "lider", "lead", "leader", "leadership", "management",
		"manager", "cto",
	}
	iotKeywords = []string{
		"iot", "electrónica", "electronica", "electronics", "arduino",
		"hardware", "embedded", "raspberry",
	}
	spanishMarkers = []string{
		"busco", "líder", "técnico", "tecnico", "desarrollador", "empleo",
		"contratar", "puesto", "vacante", "currículum", "español", "castellano",
	}
	englishMarkers = []string{
		"looking", "hire", "hiring", "resume", "developer", "job", "english",
	}
)

// IsCVIntent reports whether the lowercased query asks for a CV or
// describes a role being recruited for.
func IsCVIntent(q string) bool {
	return anyOf(cvIntentKeywords...)(q)
}

// ClassifyVariant maps the lowercased query to a CV category:
// "dev", "lead", "iot" or "general" when nothing more specific fits.
func ClassifyVariant(q string) string {
	switch {
	case anyOf(devKeywords...)(q):
		return "dev"
	case anyOf(leadKeywords...)(q):
		return "lead"
	case anyOf(iotKeywords...)(q):
		return "iot"
	}
	return "general"
}

// ClassifyLanguage guesses the language the CV was asked for from the
// lowercased query wording. ok is false when the query carries no
// usable marker and the caller should use the page locale.
func ClassifyLanguage(q string) (loc domain.Locale, ok bool) {
	if anyOf(spanishMarkers...)(q) {
		return domain.LocaleES, true
	}
	if anyOf(englishMarkers...)(q) {
		return domain.LocaleEN, true
	}
	return "", false
}

// cvResponse classifies the requested variant and language and
// renders the best available variant as a clickable badge.
func (s *Synthesizer) cvResponse(q, _ string, _ []domain.RetrievalResult, pageLocale domain.Locale) string {
	lang, ok := ClassifyLanguage(q)
	if !ok {
		lang = pageLocale
	}
	if s.catalog == nil {
		return fmt.Sprintf(localized(cvReleasesTexts, lang), cv.ReleasesURL)
	}
	variants := s.catalog.Variants()
	if len(variants) == 0 {
		return fmt.Sprintf(localized(cvReleasesTexts, lang), cv.ReleasesURL)
	}
	best := selectVariant(variants, ClassifyVariant(q), lang)
	return localized(cvLeadInTexts, lang) + "<br>" + renderBadge(best)
}

// selectVariant picks the best match: variant+language, then variant
// only, then language only, then the first available. The first hit
// in catalog order is canonical within each tier.
func selectVariant(variants []domain.CVVariant, wantVariant string, wantLang domain.Locale) domain.CVVariant {
	for _, v := range variants {
		if v.Variant == wantVariant && v.Lang == wantLang {
			return v
		}
	}
	for _, v := range variants {
		if v.Variant == wantVariant {
			return v
		}
	}
	for _, v := range variants {
		if v.Lang == wantLang {
			return v
		}
	}
	return variants[0]
}

// renderBadge renders a variant as the same styled anchor the badge
// section of the site uses.
func renderBadge(v domain.CVVariant) string {
	var b strings.Builder
	b.WriteString("<a href='" + v.DownloadURL + "' target='_blank' rel='noopener noreferrer' class='cv-badge'")
	b.WriteString(" style='display:inline-flex;align-items:center;gap:8px;padding:10px 16px;background:linear-gradient(135deg, #667eea 0%, #764ba2 100%);color:white;text-decoration:none;border-radius:6px;font-size:14px;font-weight:500;'>")
	b.WriteString("<i class='bi bi-file-earmark-pdf' style='font-size:18px;'></i>")
	b.WriteString("<span>" + v.Name + "</span>")
	b.WriteString("<i class='bi bi-download' style='font-size:14px;opacity:0.8;'></i>")
	b.WriteString("</a>")
	return b.String()
}
