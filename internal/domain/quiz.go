package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Difficulty grades a quiz from easiest to hardest.
type Difficulty string

// Recognized quiz difficulties.
const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Tier returns the ordering rank of the difficulty, Beginner lowest.
// Unknown difficulties sort last.
func (d Difficulty) Tier() int {
	switch d {
	case DifficultyBeginner:
		return 1
	case DifficultyIntermediate:
		return 2
	case DifficultyAdvanced:
		return 3
	default:
		return 4
	}
}

// Valid reports whether the difficulty is one of the recognized values.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}

// Quiz-specific validation errors.
var (
	ErrQuizIDInvalid         = errors.New("quiz ID must be positive")
	ErrQuizNoQuestions       = errors.New("quiz must contain at least one question")
	ErrQuestionTooFewOptions = errors.New("question must have at least two options")
	ErrQuestionCorrectIndex  = errors.New("question correct option index out of range")
	ErrAttemptQuizIDInvalid  = errors.New("quiz attempt quiz ID must be positive")
)

// Question is a single multiple-choice question with exactly one correct option.
type Question struct {
	ID            int      `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Validate checks if the Question has valid data.
func (q *Question) Validate() error {
	if len(q.Options) < 2 {
		return ErrQuestionTooFewOptions
	}
	if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
		return ErrQuestionCorrectIndex
	}
	return nil
}

// Quiz is a static, read-only question set from the quiz bank.
type Quiz struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Difficulty  Difficulty `json:"difficulty"`
	Category    string     `json:"category"`
	Questions   []Question `json:"questions"`
}

// Validate checks if the Quiz and all its questions have valid data.
func (q *Quiz) Validate() error {
	if q.ID <= 0 {
		return ErrQuizIDInvalid
	}
	if !q.Difficulty.Valid() {
		return ErrInvalidDifficulty
	}
	if len(q.Questions) == 0 {
		return ErrQuizNoQuestions
	}
	for i := range q.Questions {
		if err := q.Questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// UnansweredIndex is the selected-answer value recorded when the user gave no
// answer for a question. It never matches a correct option.
const UnansweredIndex = -1

// AnswerRecord captures one answered (or skipped) question inside an attempt.
type AnswerRecord struct {
	QuestionID    int  `json:"question_id"`
	SelectedIndex int  `json:"selected_index"`
	Correct       bool `json:"correct"`
}

// QuizAttempt is one completed run through a quiz. Attempts are immutable
// once created and appended to the attempt log.
type QuizAttempt struct {
	ID               uuid.UUID      `json:"id"`
	QuizID           int            `json:"quiz_id"`
	Answers          []AnswerRecord `json:"answers"`
	Score            int            `json:"score"`
	TotalQuestions   int            `json:"total_questions"`
	TimeSpentSeconds int            `json:"time_spent_seconds"`
	CompletedAt      time.Time      `json:"completed_at"`
}

// Validate checks if the QuizAttempt has valid data.
func (a *QuizAttempt) Validate() error {
	if a.QuizID <= 0 {
		return ErrAttemptQuizIDInvalid
	}
	return nil
}
