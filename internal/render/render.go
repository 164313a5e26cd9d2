// Package render turns content and view state into HTML pages.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"ndmedia/internal/content"
	"ndmedia/internal/domain"
	"ndmedia/internal/dto"
)

// NavItem is one link in the header.
type NavItem struct {
	Label  string
	Path   string
	Active bool
}

// SectionItem is one sidebar entry.
type SectionItem struct {
	ID     string
	Label  string
	Active bool
}

// PageData is everything a page template reads. Shell state comes from the
// view and is passed in explicitly.
type PageData struct {
	Site     content.Site
	Page     domain.Page
	Meta     domain.PageMeta
	Nav      []NavItem
	Sections []SectionItem
	Content  *content.Content
	View     *dto.ViewResponse
	ViewID   string
	Shell    domain.ShellState
	Chart    Chart
	Year     int
}

// SectionLabel is the sidebar label of a section, or the id when unlabeled.
func (d PageData) SectionLabel(id string) string {
	for _, s := range d.Sections {
		if s.ID == id {
			return s.Label
		}
	}
	for _, s := range d.Meta.Sections {
		if s.ID == id {
			return s.Label
		}
	}
	return id
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	content *content.Content
	md      goldmark.Markdown
	pages   map[domain.Page]*template.Template

	mu      sync.RWMutex
	mdCache map[string]template.HTML
}

// New parses the page templates for c.
func New(c *content.Content) (*Renderer, error) {
	r := &Renderer{
		content: c,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		pages:   make(map[domain.Page]*template.Template),
		mdCache: make(map[string]template.HTML),
	}

	layout, err := template.New("layout").Funcs(r.funcs()).Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout template: %w", err)
	}
	if _, err := layout.New("quiz").Parse(quizTemplate); err != nil {
		return nil, fmt.Errorf("parsing quiz template: %w", err)
	}

	for page, body := range pageTemplates {
		t, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.New("content").Parse(body); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"markdown":            r.Markdown,
		"placeholder":         domain.PlaceholderLabel,
		"inc":                 func(i int) int { return i + 1 },
		"quizCompleteMessage": func() string { return r.content.Guidelines.QuizCompleteMessage },
	}
}

// Markdown renders trusted content markdown to HTML. Raw HTML in the source is dropped.
func (r *Renderer) Markdown(src string) (template.HTML, error) {
	r.mu.RLock()
	out, ok := r.mdCache[src]
	r.mu.RUnlock()
	if ok {
		return out, nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	out = template.HTML(buf.String())

	r.mu.Lock()
	r.mdCache[src] = out
	r.mu.Unlock()
	return out, nil
}

// NewPageData assembles the template input for a view.
func (r *Renderer) NewPageData(view *dto.ViewResponse, year int) PageData {
	c := r.content
	d := PageData{
		Site:    c.Site,
		Page:    view.Page,
		Meta:    c.Meta(view.Page),
		Content: c,
		View:    view,
		ViewID:  view.ID,
		Shell:   view.Shell,
		Year:    year,
	}

	for _, p := range domain.Pages() {
		d.Nav = append(d.Nav, NavItem{Label: p.String(), Path: p.Path(), Active: p == view.Page})
	}

	for _, s := range view.Tracker.Sections {
		// the quiz anchor only exists when there is a quiz to show
		if view.Page.HasQuiz() && s.ID == "quiz" && view.Quiz == nil {
			continue
		}
		d.Sections = append(d.Sections, SectionItem{
			ID:     s.ID,
			Label:  s.Label,
			Active: s.ID == view.Tracker.ActiveSectionID,
		})
	}

	if view.Page == domain.PageResearch {
		d.Chart = BuildChart(c.Research.Chart, c.Research.ChartSeries)
	}
	return d
}

// Render writes the page for d.
func (r *Renderer) Render(w io.Writer, d PageData) error {
	t, ok := r.pages[d.Page]
	if !ok {
		return domain.NewNotFoundError(fmt.Sprintf("no template for page %s", d.Page))
	}
	if err := t.ExecuteTemplate(w, "layout", d); err != nil {
		return fmt.Errorf("rendering %s: %w", strings.ToLower(d.Page.String()), err)
	}
	return nil
}

// RenderQuiz writes only the quiz fragment.
func (r *Renderer) RenderQuiz(w io.Writer, quiz dto.QuizResponse) error {
	return r.pages[domain.PageGuidelines].ExecuteTemplate(w, "quiz", quiz)
}
