package domain

import "strings"

// Page is one of the five top-level views of the site.
type Page string

const (
	PageHome       Page = "Home"
	PagePosters    Page = "Posters"
	PageResearch   Page = "Research"
	PageGuidelines Page = "Guidelines"
	PageContact    Page = "Contact"
)

// DefaultPage is what unknown page names resolve to.
const DefaultPage = PageHome

var pages = []Page{PageHome, PagePosters, PageResearch, PageGuidelines, PageContact}

// Pages returns the navigation order.
func Pages() []Page {
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}

// ParsePage maps a name to a Page, ignoring case. Empty and unknown names
// fall back to DefaultPage.
func ParsePage(name string) Page {
	name = strings.TrimSpace(name)
	for _, p := range pages {
		if strings.EqualFold(string(p), name) {
			return p
		}
	}
	return DefaultPage
}

// Slug is the lower-case path segment for the page.
func (p Page) Slug() string {
	return strings.ToLower(string(p))
}

// Path is the URL the page is served at.
func (p Page) Path() string {
	if p == DefaultPage {
		return "/"
	}
	return "/" + p.Slug()
}

func (p Page) String() string {
	return string(p)
}

// HasQuiz reports whether entering the page starts a quiz session.
func (p Page) HasQuiz() bool {
	return p == PageGuidelines
}

// HasCarousel reports whether the page shows the workshop slideshow.
func (p Page) HasCarousel() bool {
	return p == PageContact
}
