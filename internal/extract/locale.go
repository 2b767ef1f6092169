package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"chatbot/internal/domain"
)

// DetectLocale resolves the page language. The lang attribute on the
// root node is the primary signal; the text of the legacy language
// switch control is consulted when that attribute is absent or
// unrecognized. Everything else defaults to English.
func DetectLocale(doc *goquery.Document) domain.Locale {
	if lang := domain.ParseLocale(doc.Find("html").First().AttrOr("lang", "")); lang != "" {
		return lang
	}
	if strings.EqualFold(strings.TrimSpace(doc.Find("#switch-lang").First().Text()), "es") {
		return domain.LocaleES
	}
	return domain.LocaleEN
}
