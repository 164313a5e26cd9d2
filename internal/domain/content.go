package domain

import "fmt"

// Poster is one item in the poster gallery.
type Poster struct {
	ID          int    `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	ImageURL    string `yaml:"image_url" json:"image_url"`
	Description string `yaml:"description" json:"description"`
}

// TimelineEvent is a milestone on the home page.
type TimelineEvent struct {
	Year        string `yaml:"year" json:"year"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// ResearchTopic is an accordion entry on the research page. Content is markdown.
type ResearchTopic struct {
	Title   string `yaml:"title" json:"title"`
	Summary string `yaml:"summary" json:"summary"`
	Content string `yaml:"content" json:"content"`
}

// ChartDatum is one bar of the research chart.
type ChartDatum struct {
	Name  string  `yaml:"name" json:"name"`
	Value float64 `yaml:"value" json:"value"`
}

// QuizQuestion is an immutable multiple-choice question.
type QuizQuestion struct {
	ID            int      `yaml:"id" json:"id"`
	Question      string   `yaml:"question" json:"question"`
	Options       []string `yaml:"options" json:"options"`
	CorrectOption int      `yaml:"correct_option" json:"-"`
	Explanation   string   `yaml:"explanation" json:"-"`
}

// Validate checks the question invariants.
func (q QuizQuestion) Validate() error {
	if q.Question == "" {
		return NewValidationError(fmt.Sprintf("question %d: text is required", q.ID))
	}
	if len(q.Options) < 2 {
		return NewValidationError(fmt.Sprintf("question %d: at least two options are required", q.ID))
	}
	if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
		return NewValidationError(fmt.Sprintf("question %d: correct option %d is out of range", q.ID, q.CorrectOption))
	}
	return nil
}

// Section is a scroll anchor listed in the sidebar.
type Section struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
}

// GuidelineChapter is one card of the filmmaker guidelines.
type GuidelineChapter struct {
	Number      string                `yaml:"number" json:"number"`
	Title       string                `yaml:"title" json:"title"`
	Wide        bool                  `yaml:"wide" json:"wide"`
	Subsections []GuidelineSubsection `yaml:"subsections" json:"subsections"`
}

type GuidelineSubsection struct {
	Title string   `yaml:"title" json:"title,omitempty"`
	Items []string `yaml:"items" json:"items"`
}

// Person is a mentor or team member.
type Person struct {
	Name string `yaml:"name" json:"name"`
	Role string `yaml:"role" json:"role"`
}

// PageMeta is the heading block shown at the top of a page.
type PageMeta struct {
	Title    string    `yaml:"title" json:"title"`
	Subtitle string    `yaml:"subtitle" json:"subtitle"`
	Sections []Section `yaml:"sections" json:"sections"`
}
