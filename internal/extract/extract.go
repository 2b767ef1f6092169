package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"chatbot/internal/cv"
	"chatbot/internal/domain"
)

// knownPlatforms maps icon class substrings to social platform names,
// in classification precedence order.
var knownPlatforms = []string{"linkedin", "github", "twitter", "whatsapp", "cults3d"}

// Extractor reads typed facts out of a parsed page snapshot. Every
// sub-extractor tolerates missing or malformed structure: an absent
// element omits the corresponding field and nothing more.
type Extractor struct {
	catalog *cv.Catalog
}

// New creates an extractor that sources CV variants from catalog.
func New(catalog *cv.Catalog) *Extractor {
	return &Extractor{catalog: catalog}
}

// Extract assembles the full fact bundle from doc.
func (e *Extractor) Extract(doc *goquery.Document) domain.FactBundle {
	return domain.FactBundle{
		Personal:   e.extractPersonal(doc),
		Skills:     e.extractSkills(doc),
		Services:   e.extractServices(doc),
		About:      e.extractAbout(doc),
		Contact:    e.extractContact(doc),
		Experience: e.extractExperience(doc),
		CVs:        e.catalog.Variants(),
	}
}

func (e *Extractor) extractPersonal(doc *goquery.Document) domain.PersonalInfo {
	info := domain.PersonalInfo{}

	info.Name = strings.TrimSpace(doc.Find("h1").First().Text())
	info.Title = strings.TrimSpace(doc.Find("#aboutSubtitle").First().Text())
	info.Age = strings.TrimSpace(doc.Find("#age-field").First().Text())
	info.Phone = strings.TrimSpace(doc.Find(`a[href*="wa.me"]`).First().Text())
	info.Email = labeledItem(doc, "E-mail")
	info.City = labeledItem(doc, "City")
	info.Birthday = labeledItem(doc, "Birthday")

	links := map[string]string{}
	doc.Find(".social-links a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		class, ok := a.Find("i").First().Attr("class")
		if !ok {
			return
		}
		for _, platform := range knownPlatforms {
			if strings.Contains(class, platform) {
				links[platform] = href
				break
			}
		}
	})
	if len(links) > 0 {
		info.SocialLinks = links
	}
	return info
}

func (e *Extractor) extractSkills(doc *goquery.Document) []domain.Skill {
	var skills []domain.Skill
	doc.Find(".skill").Each(func(_ int, card *goquery.Selection) {
		name := strings.TrimSpace(card.Find("span").First().Text())
		percentage := strings.TrimSpace(card.Find(".val").First().Text())
		if name == "" || percentage == "" {
			return
		}
		skills = append(skills, domain.Skill{
			Name:       name,
			Percentage: percentage,
			Details:    card.AttrOr("title", ""),
		})
	})
	return skills
}

func (e *Extractor) extractServices(doc *goquery.Document) []domain.Service {
	var services []domain.Service
	doc.Find(".icon-box").Each(func(_ int, card *goquery.Selection) {
		title := strings.TrimSpace(card.Find("h4 a").First().Text())
		description := strings.TrimSpace(card.Find("p").First().Text())
		if title == "" || description == "" {
			return
		}
		services = append(services, domain.Service{Title: title, Description: description})
	})
	return services
}

func (e *Extractor) extractAbout(doc *goquery.Document) domain.About {
	return domain.About{
		MainText: strings.TrimSpace(doc.Find("#aboutText").First().Text()),
		Subtext:  strings.TrimSpace(doc.Find("#aboutSubtext").First().Text()),
		Footer:   strings.TrimSpace(doc.Find("#aboutFooter").First().Text()),
	}
}

func (e *Extractor) extractContact(doc *goquery.Document) domain.Contact {
	contact := domain.Contact{}
	doc.Find("li").Each(func(_ int, li *goquery.Selection) {
		text := strings.TrimSpace(li.Text())
		switch {
		case strings.Contains(text, "Phone:"):
			contact.Phone = afterLabel(text, "Phone:")
		case strings.Contains(text, "E-mail:"):
			contact.Email = afterLabel(text, "E-mail:")
		case strings.Contains(text, "Website:"):
			contact.Website = afterLabel(text, "Website:")
		case strings.Contains(text, "City:"):
			contact.City = afterLabel(text, "City:")
		case strings.Contains(text, "Freelance:"):
			contact.Freelance = afterLabel(text, "Freelance:")
		}
	})
	return contact
}

func (e *Extractor) extractExperience(doc *goquery.Document) []domain.Experience {
	var entries []domain.Experience
	doc.Find(".resume-item").Each(func(_ int, item *goquery.Selection) {
		title := strings.TrimSpace(item.Find("h4").First().Text())
		if title == "" {
			return
		}
		exp := domain.Experience{
			Title:       title,
			Period:      strings.TrimSpace(item.Find("h5").First().Text()),
			Company:     strings.TrimSpace(item.Find("em").First().Text()),
			Description: strings.TrimSpace(item.Find("p").First().Text()),
		}
		item.Find("ul li").Each(func(_ int, li *goquery.Selection) {
			if r := strings.TrimSpace(li.Text()); r != "" {
				exp.Responsibilities = append(exp.Responsibilities, r)
			}
		})
		entries = append(entries, exp)
	})
	return entries
}

// labeledItem finds the first list item whose text carries the label
// and returns the value after the first colon, trimmed.
func labeledItem(doc *goquery.Document, label string) string {
	value := ""
	doc.Find("li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		text := li.Text()
		if !strings.Contains(text, label) {
			return true
		}
		if _, after, found := strings.Cut(text, ":"); found {
			value = strings.TrimSpace(after)
		}
		return false
	})
	return value
}

// afterLabel returns everything after the label occurrence, trimmed.
func afterLabel(text, label string) string {
	if _, after, found := strings.Cut(text, label); found {
		return strings.TrimSpace(after)
	}
	return ""
}
