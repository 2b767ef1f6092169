package knowledge

import (
	"fmt"
	"strings"

	"chatbot/internal/domain"
)

// Document ids, one per fact category.
const (
	DocPersonalInfo = "personal_info"
	DocSkills       = "skills"
	DocServices     = "services"
	DocCVs          = "cvs"
	DocAbout        = "about"
	DocContact      = "contact"
	DocSocial       = "social"
	DocExperience   = "experience"
)

// socialOrder fixes the platform iteration order so document content
// is deterministic.
var socialOrder = []string{"linkedin", "github", "twitter", "whatsapp", "cults3d"}

// Build synthesizes one document per non-empty fact group. Groups
// with nothing to say are skipped entirely; the result may be empty
// when the bundle is.
func Build(facts domain.FactBundle) []domain.Document {
	var docs []domain.Document

	if facts.Personal.Name != "" {
		docs = append(docs, domain.Document{
			ID:       DocPersonalInfo,
			Content:  personalContent(facts.Personal),
			Keywords: []string{"personal", "información", "datos", "biografía", "perfil"},
		})
	}

	if len(facts.Skills) > 0 {
		parts := make([]string, 0, len(facts.Skills))
		for _, s := range facts.Skills {
			part := fmt.Sprintf("%s (%s)", s.Name, s.Percentage)
			if s.Details != "" {
				part += " - " + s.Details
			}
			parts = append(parts, part)
		}
		docs = append(docs, domain.Document{
			ID:       DocSkills,
			Content:  "Habilidades técnicas: " + strings.Join(parts, ", "),
			Keywords: []string{"habilidades", "tecnologías", "programación", "skills", "conocimientos"},
		})
	}

	if len(facts.Services) > 0 {
		parts := make([]string, 0, len(facts.Services))
		for _, s := range facts.Services {
			parts = append(parts, s.Title+": "+s.Description)
		}
		docs = append(docs, domain.Document{
			ID:       DocServices,
			Content:  "Servicios ofrecidos: " + strings.Join(parts, ". "),
			Keywords: []string{"servicios", "ofrecimientos", "consultoría", "desarrollo"},
		})
	}

	if len(facts.CVs) > 0 {
		lines := make([]string, 0, len(facts.CVs))
		for _, v := range facts.CVs {
			lines = append(lines, v.Name+": "+v.DownloadURL)
		}
		docs = append(docs, domain.Document{
			ID:       DocCVs,
			Content:  "Currículums disponibles: " + strings.Join(lines, ", "),
			Keywords: []string{"cv", "currículum", "curriculum", "resume", "descargar", "download"},
		})
	}

	if facts.About.MainText != "" || facts.About.Subtext != "" || facts.About.Footer != "" {
		var parts []string
		for _, t := range []string{facts.About.MainText, facts.About.Subtext, facts.About.Footer} {
			if t != "" {
				parts = append(parts, t)
			}
		}
		docs = append(docs, domain.Document{
			ID:       DocAbout,
			Content:  "Sobre Mariano: " + strings.Join(parts, " "),
			Keywords: []string{"sobre", "acerca", "descripción", "perfil", "biografía"},
		})
	}

	if !facts.Contact.IsEmpty() {
		docs = append(docs, domain.Document{
			ID:       DocContact,
			Content:  "Información de contacto: " + contactContent(facts.Contact),
			Keywords: []string{"contacto", "email", "teléfono", "dirección", "comunicación"},
		})
	}

	if len(facts.Personal.SocialLinks) > 0 {
		parts := make([]string, 0, len(facts.Personal.SocialLinks))
		for _, platform := range socialOrder {
			if url, ok := facts.Personal.SocialLinks[platform]; ok {
				parts = append(parts, platform+": "+url)
			}
		}
		docs = append(docs, domain.Document{
			ID:       DocSocial,
			Content:  "Enlaces sociales: " + strings.Join(parts, ", "),
			Keywords: []string{"redes", "sociales", "linkedin", "github", "twitter", "whatsapp"},
		})
	}

	if len(facts.Experience) > 0 {
		parts := make([]string, 0, len(facts.Experience))
		for _, exp := range facts.Experience {
			var b strings.Builder
			b.WriteString(exp.Title)
			if exp.Period != "" {
				fmt.Fprintf(&b, " (%s)", exp.Period)
			}
			if exp.Company != "" {
				b.WriteString(" en " + exp.Company)
			}
			if exp.Description != "" {
				b.WriteString(": " + exp.Description)
			}
			parts = append(parts, b.String())
		}
		docs = append(docs, domain.Document{
			ID:       DocExperience,
			Content:  "Experiencia profesional: " + strings.Join(parts, ". "),
			Keywords: []string{"experiencia", "trabajo", "carrera", "profesional", "proyectos"},
		})
	}

	return docs
}

func personalContent(p domain.PersonalInfo) string {
	title := p.Title
	if title == "" {
		title = "desarrollador"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Información personal: %s es %s.", p.Name, title)
	if p.Birthday != "" {
		fmt.Fprintf(&b, " Nació el %s.", p.Birthday)
	}
	if p.Age != "" {
		fmt.Fprintf(&b, " Tiene %s años.", p.Age)
	}
	if p.City != "" {
		fmt.Fprintf(&b, " Vive en %s.", p.City)
	}
	return b.String()
}

func contactContent(c domain.Contact) string {
	fields := []struct{ name, value string }{
		{"phone", c.Phone},
		{"email", c.Email},
		{"website", c.Website},
		{"city", c.City},
		{"freelance", c.Freelance},
	}
	var parts []string
	for _, f := range fields {
		if f.value != "" {
			parts = append(parts, f.name+": "+f.value)
		}
	}
	return strings.Join(parts, ", ")
}
