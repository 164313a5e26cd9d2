package service

import (
	"fmt"

	"ndmedia/internal/content"
	"ndmedia/internal/domain"
	"ndmedia/internal/dto"
)

const (
	advanceLabelNext    = "Next Question"
	advanceLabelResults = "Show Results"
)

// PresentQuiz turns a quiz session into what the visitor sees. The correct
// answer and explanation stay hidden until the current question is answered.
func PresentQuiz(q *domain.Quiz) dto.QuizResponse {
	state := q.State()
	total := q.QuestionCount()
	resp := dto.QuizResponse{
		Status:         q.Status(),
		CurrentIndex:   state.CurrentIndex,
		QuestionCount:  total,
		Progress:       fmt.Sprintf("Question %d of %d", state.CurrentIndex+1, total),
		SelectedOption: state.SelectedOption,
		IsAnswered:     state.IsAnswered,
		Score:          state.Score,
		IsComplete:     state.IsComplete,
	}
	if state.IsComplete {
		resp.Result = fmt.Sprintf("%d / %d", state.Score, total)
		return resp
	}

	current := q.Current()
	resp.Question = current.Question
	resp.Options = make([]dto.QuizOptionResponse, len(current.Options))
	for i, text := range current.Options {
		opt := dto.QuizOptionResponse{Index: i, Text: text}
		if state.SelectedOption != nil && *state.SelectedOption == i {
			opt.Selected = true
		}
		if state.IsAnswered {
			switch {
			case i == current.CorrectOption:
				opt.Outcome = dto.OutcomeCorrect
			case opt.Selected:
				opt.Outcome = dto.OutcomeWrong
			default:
				opt.Outcome = dto.OutcomeNeutral
			}
		}
		resp.Options[i] = opt
	}

	if state.IsAnswered {
		correct := current.CorrectOption
		resp.CorrectOption = &correct
		resp.Explanation = current.Explanation
		resp.AdvanceLabel = advanceLabelNext
		if q.IsLast() {
			resp.AdvanceLabel = advanceLabelResults
		}
	}
	return resp
}

// PresentCarousel describes the slideshow position.
func PresentCarousel(c *domain.Carousel, slides []string) dto.CarouselResponse {
	return dto.CarouselResponse{
		CurrentIndex: c.Current(),
		Size:         c.Size(),
		Counter:      fmt.Sprintf("%d / %d", c.Current()+1, c.Size()),
		Current:      slides[c.Current()],
		Slides:       slides,
	}
}

// viewPresenter rebuilds the rich domain objects behind a stored view.
type viewPresenter struct {
	content  *content.Content
	settings domain.TrackerSettings
}

func (p viewPresenter) quiz(v *domain.View) (*domain.Quiz, error) {
	if v.Quiz == nil {
		return nil, domain.NewFeatureUnavailableError("quiz", v.Page)
	}
	q, err := domain.RestoreQuiz(p.content.Quiz, *v.Quiz)
	if err != nil {
		return nil, domain.NewInternalError("stored quiz state is invalid", err).WithContext("view_id", v.ID)
	}
	return q, nil
}

func (p viewPresenter) carousel(v *domain.View) (*domain.Carousel, error) {
	if v.Carousel == nil {
		return nil, domain.NewFeatureUnavailableError("slideshow", v.Page)
	}
	c, err := domain.RestoreCarousel(len(p.content.WorkshopSlides.Slides), *v.Carousel)
	if err != nil {
		return nil, domain.NewInternalError("stored carousel state is invalid", err).WithContext("view_id", v.ID)
	}
	return c, nil
}

// quizSectionID is the anchor of the quiz block on quiz pages.
const quizSectionID = "quiz"

// sections lists the anchors the view's page actually shows. The quiz anchor
// is left out when the view has no quiz.
func (p viewPresenter) sections(v *domain.View) []domain.Section {
	all := p.content.Sections(v.Page)
	if !v.Page.HasQuiz() || v.Quiz != nil {
		return all
	}
	out := make([]domain.Section, 0, len(all))
	for _, s := range all {
		if s.ID != quizSectionID {
			out = append(out, s)
		}
	}
	return out
}

func (p viewPresenter) tracker(v *domain.View) *domain.SectionTracker {
	return domain.RestoreSectionTracker(p.sections(v), p.settings, v.Tracker)
}

func (p viewPresenter) present(v *domain.View) (*dto.ViewResponse, error) {
	tracker := p.tracker(v)
	resp := &dto.ViewResponse{
		ID:    v.ID,
		Page:  v.Page,
		Shell: v.Shell,
		Tracker: dto.TrackerResponse{
			ActiveSectionID: tracker.Active(),
			Sections:        tracker.Sections(),
		},
	}
	if v.Quiz != nil {
		q, err := p.quiz(v)
		if err != nil {
			return nil, err
		}
		quiz := PresentQuiz(q)
		resp.Quiz = &quiz
	}
	if v.Carousel != nil {
		c, err := p.carousel(v)
		if err != nil {
			return nil, err
		}
		carousel := PresentCarousel(c, p.content.WorkshopSlides.Slides)
		resp.Carousel = &carousel
	}
	return resp, nil
}
