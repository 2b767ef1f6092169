package domain

// Locale identifies one of the two UI languages the site publishes.
type Locale string

const (
	LocaleES Locale = "es"
	LocaleEN Locale = "en"
)

// ParseLocale normalizes a raw language tag to a supported locale.
// Unrecognized values map to the empty locale so callers can apply
// their own default.
func ParseLocale(raw string) Locale {
	switch Locale(raw) {
	case LocaleES:
		return LocaleES
	case LocaleEN:
		return LocaleEN
	}
	return ""
}

// PersonalInfo groups the identity facts read from the page header
// and the about section. Every field is optional.
type PersonalInfo struct {
	Name        string
	Title       string
	Phone       string
	Email       string
	Age         string
	City        string
	Birthday    string
	SocialLinks map[string]string
}

// Skill is one skill card: a name, a percentage string as displayed
// and an optional free-text detail taken from the card's title attribute.
type Skill struct {
	Name       string
	Percentage string
	Details    string
}

// Service is one service card with its title and description.
type Service struct {
	Title       string
	Description string
}

// About holds the three about-section text blocks in display order.
type About struct {
	MainText string
	Subtext  string
	Footer   string
}

// Contact holds the labeled contact list items.
type Contact struct {
	Phone     string
	Email     string
	Website   string
	City      string
	Freelance string
}

// IsEmpty reports whether no contact field was found.
func (c Contact) IsEmpty() bool {
	return c.Phone == "" && c.Email == "" && c.Website == "" && c.City == "" && c.Freelance == ""
}

// Experience is one resume entry with its ordered responsibilities.
type Experience struct {
	Title            string
	Period           string
	Company          string
	Description      string
	Responsibilities []string
}

// CVVariant is one downloadable CV identified by language and
// professional-focus category.
type CVVariant struct {
	Name        string
	File        string
	Lang        Locale
	Variant     string
	DownloadURL string
}

// FactBundle is everything the extractor could read from the page,
// grouped by category. Absent facts are zero values, never errors.
type FactBundle struct {
	Personal   PersonalInfo
	Skills     []Skill
	Services   []Service
	About      About
	Contact    Contact
	Experience []Experience
	CVs        []CVVariant
}

// Document is one knowledge-base entry: a synthesized text blob plus
// descriptive keyword tags. Documents are immutable once built.
type Document struct {
	ID       string
	Content  string
	Keywords []string
}

// RetrievalResult is one ranked document returned by the index.
type RetrievalResult struct {
	ID         string
	Similarity float64
	Content    string
	Keywords   []string
}
