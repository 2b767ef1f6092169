package respond

import (
	"fmt"
	"net/url"
	"strings"

	"chatbot/internal/cv"
	"chatbot/internal/domain"
	"chatbot/internal/knowledge"
)

// rule is one intent branch of the response cascade. match runs
// against the lowercased query; respond may return "" to pass the
// query on to the next rule.
type rule struct {
	name    string
	match   func(q string) bool
	respond func(q, original string, ctx []domain.RetrievalResult, loc domain.Locale) string
}

// Synthesizer builds the final response for a query. It evaluates an
// ordered list of intent rules, first match wins; unmatched queries
// fall back to a paraphrase of the top retrieved document and finally
// to a localized contact call-to-action. It never mutates the
// retrieval context.
type Synthesizer struct {
	catalog        *cv.Catalog
	whatsappNumber string
	rules          []rule
}

// New creates a synthesizer. catalog may be nil, in which case CV
// requests answer with a generic releases link.
func New(catalog *cv.Catalog, whatsappNumber string) *Synthesizer {
	s := &Synthesizer{catalog: catalog, whatsappNumber: whatsappNumber}
	s.rules = []rule{
		{
			name:  "greeting",
			match: anyOf("hola", "saludo", "hello"),
			respond: func(_, _ string, _ []domain.RetrievalResult, _ domain.Locale) string {
				return greetingText
			},
		},
		{
			name:    "who-is",
			match:   anyOf("quién es", "quien es", "sobre mariano", "who is", "about mariano"),
			respond: s.whoIs,
		},
		{
			name:  "kubernetes",
			match: anyOf("kubernetes", "k8s"),
			respond: func(_, _ string, ctx []domain.RetrievalResult, _ domain.Locale) string {
				if doc := findDoc(ctx, knowledge.DocSkills); doc != nil && strings.Contains(doc.Content, "Kubernetes") {
					return kubernetesConfirmedText
				}
				return kubernetesGenericText
			},
		},
		{
			name:    "docker",
			match:   anyOf("docker"),
			respond: fixed(dockerText),
		},
		{
			name:    "backend-languages",
			match:   anyOf("php", "python", "java", "node"),
			respond: fixed(backendText),
		},
		{
			name:    "frontend-frameworks",
			match:   anyOf("react", "vue", "angular"),
			respond: fixed(frontendText),
		},
		{
			name:    "skills",
			match:   anyOf("habilidades", "tecnologías", "tecnologias", "programación", "programacion", "skills"),
			respond: docContent(knowledge.DocSkills),
		},
		{
			name:    "services",
			match:   anyOf("servicios", "ofrece", "trabajo", "services"),
			respond: docContent(knowledge.DocServices),
		},
		{
			name:  "phone",
			match: anyOf("teléfono", "telefono", "phone"),
			respond: func(_, _ string, _ []domain.RetrievalResult, _ domain.Locale) string {
				return phoneText + s.whatsappCTA(defaultGreetingMessage)
			},
		},
		{
			name:    "email",
			match:   anyOf("email", "correo", "mail"),
			respond: fixed(emailText),
		},
		{
			name:  "contact",
			match: anyOf("contacto", "comunicarse", "contactar", "contact"),
			respond: func(_, _ string, _ []domain.RetrievalResult, _ domain.Locale) string {
				return contactHeaderText + s.whatsappCTA(defaultGreetingMessage)
			},
		},
		{
			name:    "experience",
			match:   anyOf("experiencia", "proyectos", "carrera", "experience"),
			respond: docContent(knowledge.DocExperience),
		},
		{
			name:    "cv-request",
			match:   IsCVIntent,
			respond: s.cvResponse,
		},
	}
	return s
}

// Respond runs the rule cascade for query against the retrieval
// context. See the rule list in New for the precedence order.
func (s *Synthesizer) Respond(query string, context []domain.RetrievalResult, locale domain.Locale) string {
	q := strings.ToLower(query)
	for _, r := range s.rules {
		if !r.match(q) {
			continue
		}
		if response := r.respond(q, query, context, locale); response != "" {
			return response
		}
	}
	if len(context) > 0 {
		return localized(paraphrasePrefix, locale) + context[0].Content
	}
	return fmt.Sprintf(localized(fallbackTexts, locale), query, s.whatsappCTA(query))
}

func (s *Synthesizer) whoIs(_, _ string, ctx []domain.RetrievalResult, _ domain.Locale) string {
	var parts []string
	if doc := findDoc(ctx, knowledge.DocPersonalInfo); doc != nil {
		parts = append(parts, doc.Content)
	}
	if doc := findDoc(ctx, knowledge.DocAbout); doc != nil {
		parts = append(parts, doc.Content)
	}
	return strings.Join(parts, " ")
}

// whatsappCTA renders the messaging deep link with the icon marker
// the site's stylesheet expects.
func (s *Synthesizer) whatsappCTA(message string) string {
	link := fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsappNumber, encodeURIComponent(message))
	icon := "<i class='bx bxl-whatsapp' style='font-size:20px;color:#25D366;vertical-align:middle;'></i>"
	return fmt.Sprintf("<div style='display:flex;align-items:center;gap:8px;margin-top:8px;'>%s<a href='%s' target='_blank' style='color:#25D366;font-weight:600;text-decoration:none;font-size:15px;'>WhatsApp</a></div>", icon, link)
}

// encodeURIComponent escapes like the browser function of the same
// name: spaces become %20, not +.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func anyOf(keywords ...string) func(string) bool {
	return func(q string) bool {
		for _, k := range keywords {
			if strings.Contains(q, k) {
				return true
			}
		}
		return false
	}
}

func fixed(text string) func(string, string, []domain.RetrievalResult, domain.Locale) string {
	return func(_, _ string, _ []domain.RetrievalResult, _ domain.Locale) string {
		return text
	}
}

// docContent answers with the category document verbatim when the
// retrieval context carries it, and passes otherwise.
func docContent(id string) func(string, string, []domain.RetrievalResult, domain.Locale) string {
	return func(_, _ string, ctx []domain.RetrievalResult, _ domain.Locale) string {
		if doc := findDoc(ctx, id); doc != nil {
			return doc.Content
		}
		return ""
	}
}

func findDoc(ctx []domain.RetrievalResult, id string) *domain.RetrievalResult {
	for i := range ctx {
		if ctx[i].ID == id {
			return &ctx[i]
		}
	}
	return nil
}
