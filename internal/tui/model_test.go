package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"chatbot/internal/domain"
)

type stubEngine struct {
	locale domain.Locale
	reply  string
	asked  []string
}

func (s *stubEngine) ProcessQuery(_ context.Context, query string) string {
	s.asked = append(s.asked, query)
	return s.reply
}

func (s *stubEngine) Locale() domain.Locale { return s.locale }

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain passthrough", "hola", "hola"},
		{"br becomes newline", "línea uno<br>línea dos", "línea uno\nlínea dos"},
		{"self-closing br", "uno<br/>dos", "uno\ndos"},
		{
			"anchor keeps target",
			`escríbeme por <a href='https://wa.me/5491162502232?text=Hola' target='_blank'>WhatsApp</a>`,
			"escríbeme por WhatsApp (https://wa.me/5491162502232?text=Hola)",
		},
		{
			"other tags stripped",
			`<div style="margin-top:10px"><i class='bx bxl-whatsapp'></i> texto</div>`,
			"texto",
		},
		{"surrounding whitespace trimmed", "  hola <b>mundo</b>  ", "hola mundo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}

func TestNewUsesEngineLocale(t *testing.T) {
	es := New(&stubEngine{locale: domain.LocaleES})
	assert.Equal(t, "Escribe tu mensaje...", es.input.Placeholder)
	assert.Equal(t, "¡Hola! ¿En qué puedo ayudarte?", es.messages[0].text)

	en := New(&stubEngine{locale: domain.LocaleEN})
	assert.Equal(t, "Type your message...", en.input.Placeholder)

	unknown := New(&stubEngine{locale: domain.Locale("fr")})
	assert.Equal(t, "Type your message...", unknown.input.Placeholder, "unknown locale falls back to English UI")
}

func TestEnterSendsQueryAndFlattensReply(t *testing.T) {
	eng := &stubEngine{locale: domain.LocaleES, reply: "uno<br>dos <a href='https://x'>link</a>"}
	m := New(eng)
	m.input.SetValue("  ¿quién es Mariano?  ")

	updated, _ := m.Update(keyEnter())
	m = updated.(Model)

	assert.Equal(t, []string{"¿quién es Mariano?"}, eng.asked)
	last := m.messages[len(m.messages)-1]
	assert.False(t, last.fromUser)
	assert.Equal(t, "uno\ndos link (https://x)", last.text)
	assert.Empty(t, m.input.Value())
}

func TestEnterIgnoresBlankInput(t *testing.T) {
	eng := &stubEngine{locale: domain.LocaleES, reply: "unused"}
	m := New(eng)
	before := len(m.messages)
	m.input.SetValue("   ")

	updated, _ := m.Update(keyEnter())
	m = updated.(Model)

	assert.Empty(t, eng.asked)
	assert.Len(t, m.messages, before)
}

func keyEnter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}
