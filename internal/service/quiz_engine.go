package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hifzapp/hifz-api/internal/domain"
	"github.com/hifzapp/hifz-api/internal/events"
	"github.com/hifzapp/hifz-api/internal/platform/logger"
	"github.com/hifzapp/hifz-api/internal/store"
)

// DecoratedQuiz is a quiz from the bank annotated with the user's attempt
// state: whether it was ever attempted and the best score across attempts.
type DecoratedQuiz struct {
	domain.Quiz
	Completed bool `json:"completed"`
	BestScore int  `json:"best_score"`
}

// QuizEngine serves the static quiz bank, scores attempts and folds results
// into the aggregate quiz statistics.
type QuizEngine struct {
	kv      store.KeyValue
	emitter *events.Emitter
	logger  *slog.Logger
	clock   func() time.Time

	mu       sync.Mutex
	attempts []domain.QuizAttempt
	stats    domain.QuizStats
}

// NewQuizEngine creates a QuizEngine and loads the persisted attempt log and
// stats. Load failures are logged and the engine starts empty.
func NewQuizEngine(
	ctx context.Context,
	kv store.KeyValue,
	emitter *events.Emitter,
	log *slog.Logger,
) *QuizEngine {
	if log == nil {
		log = slog.Default()
	}

	e := &QuizEngine{
		kv:      kv,
		emitter: emitter,
		logger:  log.With(slog.String("component", "quiz_engine")),
		clock:   time.Now,
	}
	e.load(ctx)
	return e
}

// ListQuizzes returns all quizzes in catalog order, decorated with the
// user's attempt state.
func (e *QuizEngine) ListQuizzes() []DecoratedQuiz {
	e.mu.Lock()
	defer e.mu.Unlock()

	result := make([]DecoratedQuiz, 0, len(quizBank))
	for _, quiz := range quizBank {
		result = append(result, e.decorateLocked(quiz))
	}
	return result
}

// GetQuiz returns the decorated quiz with the given ID.
// Returns ErrQuizNotFound if the ID is not in the bank.
func (e *QuizEngine) GetQuiz(id int) (*DecoratedQuiz, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, quiz := range quizBank {
		if quiz.ID == id {
			decorated := e.decorateLocked(quiz)
			return &decorated, nil
		}
	}
	return nil, ErrQuizNotFound
}

// QuizzesByCategory returns the decorated quizzes of one category in catalog order.
func (e *QuizEngine) QuizzesByCategory(category string) []DecoratedQuiz {
	e.mu.Lock()
	defer e.mu.Unlock()

	var result []DecoratedQuiz
	for _, quiz := range quizBank {
		if quiz.Category == category {
			result = append(result, e.decorateLocked(quiz))
		}
	}
	return result
}

// QuizzesByDifficulty returns the decorated quizzes of one difficulty in catalog order.
func (e *QuizEngine) QuizzesByDifficulty(difficulty domain.Difficulty) []DecoratedQuiz {
	e.mu.Lock()
	defer e.mu.Unlock()

	var result []DecoratedQuiz
	for _, quiz := range quizBank {
		if quiz.Difficulty == difficulty {
			result = append(result, e.decorateLocked(quiz))
		}
	}
	return result
}

// SubmitAttempt scores a completed run through the quiz. The answers slice
// is aligned index-for-index with the quiz's questions; a missing or
// negative entry counts as unanswered and is never correct. The attempt is
// appended to the log and folded into the aggregate quiz stats, then both
// are persisted.
// Returns ErrQuizNotFound if the quiz ID is not in the bank.
func (e *QuizEngine) SubmitAttempt(
	ctx context.Context,
	quizID int,
	answers []int,
	timeSpentSeconds int,
) (*domain.QuizAttempt, error) {
	log := logger.FromContextOrDefault(ctx, e.logger)

	quiz := findQuiz(quizID)
	if quiz == nil {
		log.Warn("attempt submitted for unknown quiz", "quiz_id", quizID)
		return nil, ErrQuizNotFound
	}

	attempt := scoreAttempt(quiz, answers, timeSpentSeconds, e.clock())

	e.mu.Lock()
	e.attempts = append(e.attempts, *attempt)
	e.foldAttemptLocked(quiz, attempt)
	stats := e.stats
	e.mu.Unlock()

	e.persistAttempts(ctx)
	e.persistStats(ctx)

	e.emit(ctx, events.EventQuizCompleted, attempt)
	e.emit(ctx, events.EventStatsUpdated, stats)

	return attempt, nil
}

// RecommendedQuizzes returns the quizzes with no attempt yet, ordered by
// ascending difficulty tier with catalog order breaking ties.
func (e *QuizEngine) RecommendedQuizzes() []DecoratedQuiz {
	e.mu.Lock()
	defer e.mu.Unlock()

	var result []DecoratedQuiz
	for _, quiz := range quizBank {
		if !e.completedLocked(quiz.ID) {
			result = append(result, e.decorateLocked(quiz))
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Difficulty.Tier() < result[j].Difficulty.Tier()
	})
	return result
}

// IsCompleted reports whether the quiz has at least one logged attempt.
func (e *QuizEngine) IsCompleted(quizID int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.completedLocked(quizID)
}

// BestScore returns the highest score across attempts for the quiz, 0 when
// it was never attempted.
func (e *QuizEngine) BestScore(quizID int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bestScoreLocked(quizID)
}

// Attempts returns a copy of the attempt log in submission order.
func (e *QuizEngine) Attempts() []domain.QuizAttempt {
	e.mu.Lock()
	defer e.mu.Unlock()

	attempts := make([]domain.QuizAttempt, len(e.attempts))
	copy(attempts, e.attempts)
	return attempts
}

// Stats returns a copy of the aggregate quiz statistics.
func (e *QuizEngine) Stats() domain.QuizStats {
	e.mu.Lock()
	defer e.mu.Unlock()

	stats := e.stats
	stats.CategoriesCompleted = append([]string(nil), e.stats.CategoriesCompleted...)
	return stats
}

// ResetAll wipes the attempt log and quiz stats, both in memory and in the store.
func (e *QuizEngine) ResetAll(ctx context.Context) {
	e.mu.Lock()
	e.attempts = nil
	e.stats = domain.QuizStats{}
	e.mu.Unlock()

	keys := []string{store.KeyQuizResults, store.KeyQuizStats}
	if err := e.kv.RemoveMany(ctx, keys); err != nil {
		e.logger.Error("failed to remove persisted quiz state", "error", err)
	}
}

// scoreAttempt grades the answers against the quiz. Questions beyond the end
// of the answers slice are recorded as unanswered; surplus answers are ignored.
func scoreAttempt(quiz *domain.Quiz, answers []int, timeSpentSeconds int, completedAt time.Time) *domain.QuizAttempt {
	records := make([]domain.AnswerRecord, 0, len(quiz.Questions))
	score := 0
	for i, question := range quiz.Questions {
		selected := domain.UnansweredIndex
		if i < len(answers) && answers[i] >= 0 {
			selected = answers[i]
		}
		correct := selected == question.CorrectOption
		if correct {
			score++
		}
		records = append(records, domain.AnswerRecord{
			QuestionID:    question.ID,
			SelectedIndex: selected,
			Correct:       correct,
		})
	}

	return &domain.QuizAttempt{
		ID:               uuid.New(),
		QuizID:           quiz.ID,
		Answers:          records,
		Score:            score,
		TotalQuestions:   len(quiz.Questions),
		TimeSpentSeconds: timeSpentSeconds,
		CompletedAt:      completedAt,
	}
}

// foldAttemptLocked folds one attempt into the aggregate stats using a
// running average. Callers must hold e.mu.
func (e *QuizEngine) foldAttemptLocked(quiz *domain.Quiz, attempt *domain.QuizAttempt) {
	oldCount := float64(e.stats.QuizzesCompleted)
	e.stats.QuizzesCompleted++
	newCount := float64(e.stats.QuizzesCompleted)

	e.stats.AverageScore = (e.stats.AverageScore*oldCount + float64(attempt.Score)) / newCount
	if attempt.Score > e.stats.BestScore {
		e.stats.BestScore = attempt.Score
	}
	e.stats.TotalTimeSeconds += attempt.TimeSpentSeconds
	e.stats.AddCategory(quiz.Category)
}

func (e *QuizEngine) decorateLocked(quiz domain.Quiz) DecoratedQuiz {
	return DecoratedQuiz{
		Quiz:      quiz,
		Completed: e.completedLocked(quiz.ID),
		BestScore: e.bestScoreLocked(quiz.ID),
	}
}

func (e *QuizEngine) completedLocked(quizID int) bool {
	for i := range e.attempts {
		if e.attempts[i].QuizID == quizID {
			return true
		}
	}
	return false
}

func (e *QuizEngine) bestScoreLocked(quizID int) int {
	best := 0
	for i := range e.attempts {
		if e.attempts[i].QuizID == quizID && e.attempts[i].Score > best {
			best = e.attempts[i].Score
		}
	}
	return best
}

func findQuiz(id int) *domain.Quiz {
	for i := range quizBank {
		if quizBank[i].ID == id {
			return &quizBank[i]
		}
	}
	return nil
}

func (e *QuizEngine) persistAttempts(ctx context.Context) {
	e.mu.Lock()
	payload, err := json.Marshal(e.attempts)
	e.mu.Unlock()

	if err != nil {
		e.logger.Error("failed to marshal quiz attempts", "error", err)
		return
	}
	if err := e.kv.Set(ctx, store.KeyQuizResults, string(payload)); err != nil {
		e.logger.Error("failed to persist quiz attempts", "error", err)
	}
}

func (e *QuizEngine) persistStats(ctx context.Context) {
	e.mu.Lock()
	payload, err := json.Marshal(e.stats)
	e.mu.Unlock()

	if err != nil {
		e.logger.Error("failed to marshal quiz stats", "error", err)
		return
	}
	if err := e.kv.Set(ctx, store.KeyQuizStats, string(payload)); err != nil {
		e.logger.Error("failed to persist quiz stats", "error", err)
	}
}

func (e *QuizEngine) load(ctx context.Context) {
	if value, err := e.kv.Get(ctx, store.KeyQuizResults); err == nil {
		if err := json.Unmarshal([]byte(value), &e.attempts); err != nil {
			e.logger.Error("failed to decode quiz attempts", "error", err)
			e.attempts = nil
		}
	} else if !errors.Is(err, store.ErrKeyNotFound) {
		e.logger.Error("failed to load quiz attempts", "error", err)
	}

	if value, err := e.kv.Get(ctx, store.KeyQuizStats); err == nil {
		if err := json.Unmarshal([]byte(value), &e.stats); err != nil {
			e.logger.Error("failed to decode quiz stats", "error", err)
			e.stats = domain.QuizStats{}
		}
	} else if !errors.Is(err, store.ErrKeyNotFound) {
		e.logger.Error("failed to load quiz stats", "error", err)
	}
}

func (e *QuizEngine) emit(ctx context.Context, eventType events.EventType, payload interface{}) {
	if e.emitter == nil {
		return
	}
	event, err := events.NewEvent(eventType, payload)
	if err != nil {
		e.logger.Error("failed to build event", "event_type", eventType, "error", err)
		return
	}
	_ = e.emitter.Emit(ctx, event)
}
