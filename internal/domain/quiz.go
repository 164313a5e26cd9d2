package domain

import "fmt"

// QuizStatus is the externally visible phase of a quiz session.
type QuizStatus string

const (
	QuizAsking   QuizStatus = "asking"
	QuizAnswered QuizStatus = "answered"
	QuizComplete QuizStatus = "complete"
)

// QuizState is the serializable part of a quiz session.
type QuizState struct {
	CurrentIndex   int  `json:"current_index"`
	SelectedOption *int `json:"selected_option,omitempty"`
	IsAnswered     bool `json:"is_answered"`
	Score          int  `json:"score"`
	IsComplete     bool `json:"is_complete"`
}

// Quiz walks a fixed, ordered list of questions one at a time.
//
// Asking(i) -> Answered(i, sel) -> Asking(i+1) ... -> Complete.
// Answers are final: once a question is answered further selections are
// ignored, so the score moves by at most one per question.
type Quiz struct {
	questions []QuizQuestion
	state     QuizState
}

// NewQuiz starts a session at Asking(0).
func NewQuiz(questions []QuizQuestion) (*Quiz, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Quiz{questions: questions}, nil
}

// RestoreQuiz resumes a session from a stored state.
func RestoreQuiz(questions []QuizQuestion, state QuizState) (*Quiz, error) {
	q, err := NewQuiz(questions)
	if err != nil {
		return nil, err
	}
	if state.CurrentIndex < 0 || state.CurrentIndex >= len(questions) {
		return nil, fmt.Errorf("stored quiz index %d out of range", state.CurrentIndex)
	}
	if state.Score < 0 || state.Score > len(questions) {
		return nil, fmt.Errorf("stored quiz score %d out of range", state.Score)
	}
	if state.IsAnswered != (state.SelectedOption != nil) {
		return nil, fmt.Errorf("stored quiz selection does not match answered flag")
	}
	q.state = copyQuizState(state)
	return q, nil
}

// State returns a copy of the session state.
func (q *Quiz) State() QuizState {
	return copyQuizState(q.state)
}

func copyQuizState(s QuizState) QuizState {
	if s.SelectedOption != nil {
		sel := *s.SelectedOption
		s.SelectedOption = &sel
	}
	return s
}

func (q *Quiz) Status() QuizStatus {
	switch {
	case q.state.IsComplete:
		return QuizComplete
	case q.state.IsAnswered:
		return QuizAnswered
	default:
		return QuizAsking
	}
}

// Current is the question at the current index. After completion it is the last question.
func (q *Quiz) Current() QuizQuestion {
	return q.questions[q.state.CurrentIndex]
}

func (q *Quiz) QuestionCount() int {
	return len(q.questions)
}

// IsLast reports whether the current question is the final one.
func (q *Quiz) IsLast() bool {
	return q.state.CurrentIndex == len(q.questions)-1
}

// SelectOption answers the current question. It is a no-op unless the quiz
// is asking. An index outside the options returns ErrOptionOutOfRange and
// leaves the state untouched. The bool reports whether the state changed.
func (q *Quiz) SelectOption(option int) (bool, error) {
	if q.Status() != QuizAsking {
		return false, nil
	}
	current := q.Current()
	if option < 0 || option >= len(current.Options) {
		return false, ErrOptionOutOfRange
	}

	q.state.SelectedOption = &option
	q.state.IsAnswered = true
	if option == current.CorrectOption {
		q.state.Score++
	}
	return true, nil
}

// Advance moves past an answered question, finishing the quiz after the
// last one. It is a no-op in any other state.
func (q *Quiz) Advance() bool {
	if q.Status() != QuizAnswered {
		return false
	}
	if q.IsLast() {
		q.state.IsComplete = true
		return true
	}
	q.state.CurrentIndex++
	q.state.SelectedOption = nil
	q.state.IsAnswered = false
	return true
}

// Restart returns to Asking(0) with a zero score, from any state.
func (q *Quiz) Restart() {
	q.state = QuizState{}
}
