package dto

import "ndmedia/internal/domain"

// ViewResponse is the full transient state of one page visit.
type ViewResponse struct {
	ID       string            `json:"id"`
	Page     domain.Page       `json:"page"`
	Shell    domain.ShellState `json:"shell"`
	Quiz     *QuizResponse     `json:"quiz,omitempty"`
	Carousel *CarouselResponse `json:"carousel,omitempty"`
	Tracker  TrackerResponse   `json:"tracker"`
}

// QuizOption outcomes, shown once the current question is answered.
const (
	OutcomeCorrect = "correct"
	OutcomeWrong   = "wrong"
	OutcomeNeutral = "neutral"
)

type QuizOptionResponse struct {
	Index    int    `json:"index"`
	Text     string `json:"text"`
	Selected bool   `json:"selected"`
	Outcome  string `json:"outcome,omitempty"`
}

// QuizResponse is the quiz as the visitor sees it. CorrectOption and
// Explanation are only filled in after the current question is answered.
type QuizResponse struct {
	Status         domain.QuizStatus    `json:"status"`
	CurrentIndex   int                  `json:"current_index"`
	QuestionCount  int                  `json:"question_count"`
	Progress       string               `json:"progress"`
	Question       string               `json:"question,omitempty"`
	Options        []QuizOptionResponse `json:"options,omitempty"`
	SelectedOption *int                 `json:"selected_option"`
	IsAnswered     bool                 `json:"is_answered"`
	CorrectOption  *int                 `json:"correct_option,omitempty"`
	Explanation    string               `json:"explanation,omitempty"`
	AdvanceLabel   string               `json:"advance_label,omitempty"`
	Score          int                  `json:"score"`
	IsComplete     bool                 `json:"is_complete"`
	Result         string               `json:"result,omitempty"`
}

// QuizSelectResponse reports whether a selection changed anything.
type QuizSelectResponse struct {
	Changed bool         `json:"changed"`
	Quiz    QuizResponse `json:"quiz"`
}

type CarouselResponse struct {
	CurrentIndex int      `json:"current_index"`
	Size         int      `json:"size"`
	Counter      string   `json:"counter"`
	Current      string   `json:"current"`
	Slides       []string `json:"slides"`
}

type TrackerResponse struct {
	ActiveSectionID string           `json:"active_section_id"`
	Sections        []domain.Section `json:"sections"`
}

// ScrollResponse answers a scroll notification.
type ScrollResponse struct {
	ActiveSectionID string `json:"active_section_id"`
	HeaderScrolled  bool   `json:"header_scrolled"`
}

// SectionSelectResponse tells the browser where to scroll to.
type SectionSelectResponse struct {
	ActiveSectionID string              `json:"active_section_id"`
	Target          domain.ScrollTarget `json:"target"`
}
