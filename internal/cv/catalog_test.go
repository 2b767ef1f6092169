package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatbot/internal/domain"
)

func TestStaticVariants(t *testing.T) {
	c := NewCatalog("")
	variants := c.Variants()
	require.Len(t, variants, 8)

	langs := map[domain.Locale]int{}
	categories := map[string]int{}
	for _, v := range variants {
		langs[v.Lang]++
		categories[v.Variant]++
		assert.Equal(t, DefaultBaseURL+"/"+v.File, v.DownloadURL)
	}
	assert.Equal(t, map[domain.Locale]int{domain.LocaleEN: 4, domain.LocaleES: 4}, langs)
	assert.Equal(t, map[string]int{"general": 2, "dev": 2, "lead": 2, "iot": 2}, categories)
}

func TestCustomBaseURL(t *testing.T) {
	c := NewCatalog("https://cdn.example/cv")
	assert.Equal(t, "https://cdn.example/cv/CV-en.pdf", c.Variants()[0].DownloadURL)
}

func TestPublishOverridesAndReverts(t *testing.T) {
	c := NewCatalog("")
	live := []domain.CVVariant{{Name: "Custom", File: "custom.pdf", Lang: domain.LocaleEN, Variant: "dev", DownloadURL: "/x/custom.pdf"}}

	c.Publish(live)
	got := c.Variants()
	require.Len(t, got, 1)
	assert.Equal(t, "Custom", got[0].Name)

	c.Publish(nil)
	assert.Len(t, c.Variants(), 8, "empty publication reverts to the static list")
}
