// Package content holds the static text and media references the site renders.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"ndmedia/internal/domain"
)

//go:embed default.yaml
var defaultDocument []byte

// Site is the text shared by every page.
type Site struct {
	Title       string `yaml:"title" json:"title"`
	Subtitle    string `yaml:"subtitle" json:"subtitle"`
	Footer      string `yaml:"footer" json:"footer"`
	HeroImage   string `yaml:"hero_image" json:"hero_image"`
	HeroTagline string `yaml:"hero_tagline" json:"hero_tagline"`
}

type Home struct {
	IntroTitle    string `yaml:"intro_title" json:"intro_title"`
	Intro         string `yaml:"intro" json:"intro"`
	TimelineTitle string `yaml:"timeline_title" json:"timeline_title"`
}

type Research struct {
	TopicsTitle string                 `yaml:"topics_title" json:"topics_title"`
	ChartTitle  string                 `yaml:"chart_title" json:"chart_title"`
	ChartSeries string                 `yaml:"chart_series" json:"chart_series"`
	Topics      []domain.ResearchTopic `yaml:"topics" json:"topics"`
	Chart       []domain.ChartDatum    `yaml:"chart" json:"chart"`
}

type Guidelines struct {
	Overview            string                    `yaml:"overview" json:"overview"`
	Conclusion          string                    `yaml:"conclusion" json:"conclusion"`
	QuizTitle           string                    `yaml:"quiz_title" json:"quiz_title"`
	QuizCompleteMessage string                    `yaml:"quiz_complete_message" json:"quiz_complete_message"`
	Chapters            []domain.GuidelineChapter `yaml:"chapters" json:"chapters"`
}

type Contact struct {
	AboutTitle     string          `yaml:"about_title" json:"about_title"`
	About          string          `yaml:"about" json:"about"`
	Email          string          `yaml:"email" json:"email"`
	WorkshopsTitle string          `yaml:"workshops_title" json:"workshops_title"`
	Workshops      string          `yaml:"workshops" json:"workshops"`
	Mentors        []domain.Person `yaml:"mentors" json:"mentors"`
	Team           []domain.Person `yaml:"team" json:"team"`
}

type WorkshopSlides struct {
	Title  string   `yaml:"title" json:"title"`
	Intro  string   `yaml:"intro" json:"intro"`
	Slides []string `yaml:"slides" json:"slides"`
}

// Content is the whole content document. It is read once at startup and
// treated as immutable afterwards.
type Content struct {
	Site           Site                       `yaml:"site" json:"site"`
	Pages          map[string]domain.PageMeta `yaml:"pages" json:"pages"`
	Home           Home                       `yaml:"home" json:"home"`
	Timeline       []domain.TimelineEvent     `yaml:"timeline" json:"timeline"`
	Posters        []domain.Poster            `yaml:"posters" json:"posters"`
	Research       Research                   `yaml:"research" json:"research"`
	Guidelines     Guidelines                 `yaml:"guidelines" json:"guidelines"`
	Quiz           []domain.QuizQuestion      `yaml:"quiz" json:"quiz"`
	Contact        Contact                    `yaml:"contact" json:"contact"`
	WorkshopSlides WorkshopSlides             `yaml:"workshop_slides" json:"workshop_slides"`
}

// Default returns the content compiled into the binary.
func Default() (*Content, error) {
	return Parse(defaultDocument)
}

// Load reads a content document from path. An empty path yields the
// compiled-in default.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a content document.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate reports every problem found in the document.
func (c *Content) Validate() error {
	var errs domain.ValidationErrors

	if strings.TrimSpace(c.Site.Title) == "" {
		errs = append(errs, domain.NewMissingFieldError("site.title"))
	}
	for key := range c.Pages {
		if _, ok := lookupPage(key); !ok {
			errs = append(errs, domain.ValidationError{
				Code:    domain.CodeInvalidFormat,
				Field:   "pages." + key,
				Message: "unknown page",
				Value:   key,
			})
		}
	}
	for _, p := range domain.Pages() {
		seen := make(map[string]bool)
		for i, s := range c.Pages[p.String()].Sections {
			field := fmt.Sprintf("pages.%s.sections[%d]", p, i)
			if s.ID == "" {
				errs = append(errs, domain.NewMissingFieldError(field+".id"))
				continue
			}
			if seen[s.ID] {
				errs = append(errs, domain.ValidationError{
					Code:    domain.CodeInvalidFormat,
					Field:   field + ".id",
					Message: "duplicate section id",
					Value:   s.ID,
				})
			}
			seen[s.ID] = true
		}
	}

	posterIDs := make(map[int]bool)
	for i, p := range c.Posters {
		if p.Title == "" {
			errs = append(errs, domain.NewMissingFieldError(fmt.Sprintf("posters[%d].title", i)))
		}
		if posterIDs[p.ID] {
			errs = append(errs, domain.ValidationError{
				Code:    domain.CodeInvalidFormat,
				Field:   fmt.Sprintf("posters[%d].id", i),
				Message: "duplicate poster id",
				Value:   p.ID,
			})
		}
		posterIDs[p.ID] = true
	}

	for i, q := range c.Quiz {
		if err := q.Validate(); err != nil {
			errs = append(errs, domain.ValidationError{
				Code:    domain.CodeValidation,
				Field:   fmt.Sprintf("quiz[%d]", i),
				Message: err.Error(),
			})
		}
	}

	for i, d := range c.Research.Chart {
		if d.Value < 0 || d.Value > 100 {
			errs = append(errs, domain.ValidationError{
				Code:    domain.CodeOutOfRange,
				Field:   fmt.Sprintf("research.chart[%d].value", i),
				Message: "must be a percentage between 0 and 100",
				Value:   d.Value,
			})
		}
	}

	for i, s := range c.WorkshopSlides.Slides {
		if strings.TrimSpace(s) == "" {
			errs = append(errs, domain.NewMissingFieldError(fmt.Sprintf("workshop_slides.slides[%d]", i)))
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func lookupPage(key string) (domain.Page, bool) {
	for _, p := range domain.Pages() {
		if p.String() == key {
			return p, true
		}
	}
	return "", false
}

// Meta returns the heading block for a page.
func (c *Content) Meta(p domain.Page) domain.PageMeta {
	return c.Pages[p.String()]
}

// Sections returns the sidebar anchors of a page, if it has any.
func (c *Content) Sections(p domain.Page) []domain.Section {
	return c.Pages[p.String()].Sections
}

// HasSidebar reports whether a page shows the section sidebar.
func (c *Content) HasSidebar(p domain.Page) bool {
	return len(c.Sections(p)) > 0
}
