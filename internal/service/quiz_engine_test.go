package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hifzapp/hifz-api/internal/domain"
	"github.com/hifzapp/hifz-api/internal/store"
)

func newTestEngine(t *testing.T, kv store.KeyValue) *QuizEngine {
	t.Helper()
	engine := NewQuizEngine(context.Background(), kv, nil, nil)
	require.NotNil(t, engine)
	return engine
}

func TestQuizEngine_ListAndGet(t *testing.T) {
	engine := newTestEngine(t, store.NewMemoryStore())

	quizzes := engine.ListQuizzes()
	require.Len(t, quizzes, 3)
	assert.Equal(t, 1, quizzes[0].ID)
	assert.Equal(t, 2, quizzes[1].ID)
	assert.Equal(t, 3, quizzes[2].ID)
	for _, quiz := range quizzes {
		assert.False(t, quiz.Completed)
		assert.Zero(t, quiz.BestScore)
	}

	quiz, err := engine.GetQuiz(1)
	require.NoError(t, err)
	assert.Equal(t, "Surah Al-Fatiha Knowledge", quiz.Title)
	assert.Len(t, quiz.Questions, 3)

	_, err = engine.GetQuiz(99)
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestQuizEngine_Filters(t *testing.T) {
	engine := newTestEngine(t, store.NewMemoryStore())

	byCategory := engine.QuizzesByCategory("Prophets")
	require.Len(t, byCategory, 1)
	assert.Equal(t, 3, byCategory[0].ID)

	byDifficulty := engine.QuizzesByDifficulty(domain.DifficultyBeginner)
	require.Len(t, byDifficulty, 1)
	assert.Equal(t, 1, byDifficulty[0].ID)

	assert.Empty(t, engine.QuizzesByCategory("Unknown"))
}

func TestQuizEngine_SubmitAttempt_AllCorrect(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, store.NewMemoryStore())

	attempt, err := engine.SubmitAttempt(ctx, 1, []int{2, 0, 2}, 120)
	require.NoError(t, err)

	assert.Equal(t, 3, attempt.Score)
	assert.Equal(t, 3, attempt.TotalQuestions)
	assert.Equal(t, 120, attempt.TimeSpentSeconds)
	require.Len(t, attempt.Answers, 3)
	for _, answer := range attempt.Answers {
		assert.True(t, answer.Correct)
	}

	assert.True(t, engine.IsCompleted(1))
	assert.Equal(t, 3, engine.BestScore(1))

	stats := engine.Stats()
	assert.Equal(t, 1, stats.QuizzesCompleted)
	assert.Equal(t, 3.0, stats.AverageScore)
	assert.Equal(t, 3, stats.BestScore)
	assert.Equal(t, 120, stats.TotalTimeSeconds)
	assert.Equal(t, []string{"Surahs"}, stats.CategoriesCompleted)
}

func TestQuizEngine_SubmitAttempt_AllWrong(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, store.NewMemoryStore())

	attempt, err := engine.SubmitAttempt(ctx, 1, []int{0, 1, 0}, 60)
	require.NoError(t, err)

	assert.Equal(t, 0, attempt.Score)
	for _, answer := range attempt.Answers {
		assert.False(t, answer.Correct)
	}

	// A zero-score run still counts as an attempt.
	assert.True(t, engine.IsCompleted(1))
	assert.Equal(t, 0, engine.BestScore(1))
}

func TestQuizEngine_SubmitAttempt_ShortAndNegativeAnswers(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, store.NewMemoryStore())

	// One answer for three questions; the missing two are unanswered.
	attempt, err := engine.SubmitAttempt(ctx, 1, []int{2}, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, attempt.Score)
	assert.Equal(t, domain.UnansweredIndex, attempt.Answers[1].SelectedIndex)
	assert.Equal(t, domain.UnansweredIndex, attempt.Answers[2].SelectedIndex)

	// Negative entries normalize to unanswered; surplus entries are ignored.
	attempt, err = engine.SubmitAttempt(ctx, 2, []int{-5, 2, 1, 1}, 30)
	require.NoError(t, err)
	require.Len(t, attempt.Answers, 2)
	assert.Equal(t, domain.UnansweredIndex, attempt.Answers[0].SelectedIndex)
	assert.Equal(t, 1, attempt.Score)
}

func TestQuizEngine_SubmitAttempt_UnknownQuiz(t *testing.T) {
	engine := newTestEngine(t, store.NewMemoryStore())

	_, err := engine.SubmitAttempt(context.Background(), 42, []int{0}, 10)
	assert.ErrorIs(t, err, ErrQuizNotFound)
	assert.Empty(t, engine.Attempts())
}

func TestQuizEngine_RunningAverage(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, store.NewMemoryStore())

	_, err := engine.SubmitAttempt(ctx, 1, []int{2, 0, 2}, 100) // score 3
	require.NoError(t, err)
	_, err = engine.SubmitAttempt(ctx, 2, []int{2, 0}, 50) // score 1
	require.NoError(t, err)

	stats := engine.Stats()
	assert.Equal(t, 2, stats.QuizzesCompleted)
	assert.InDelta(t, 2.0, stats.AverageScore, 0.001)
	assert.Equal(t, 3, stats.BestScore)
	assert.Equal(t, 150, stats.TotalTimeSeconds)
	assert.ElementsMatch(t, []string{"Surahs", "Names of Allah"}, stats.CategoriesCompleted)
}

func TestQuizEngine_RecommendedQuizzes(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, store.NewMemoryStore())

	recommended := engine.RecommendedQuizzes()
	require.Len(t, recommended, 3)
	assert.Equal(t, domain.DifficultyBeginner, recommended[0].Difficulty)
	assert.Equal(t, domain.DifficultyIntermediate, recommended[1].Difficulty)
	assert.Equal(t, domain.DifficultyAdvanced, recommended[2].Difficulty)

	// Any attempt, even all-wrong, removes the quiz from recommendations.
	_, err := engine.SubmitAttempt(ctx, 2, []int{0, 0}, 10)
	require.NoError(t, err)

	recommended = engine.RecommendedQuizzes()
	require.Len(t, recommended, 2)
	assert.Equal(t, 1, recommended[0].ID)
	assert.Equal(t, 3, recommended[1].ID)
}

func TestQuizEngine_BestScoreAcrossAttempts(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, store.NewMemoryStore())

	_, err := engine.SubmitAttempt(ctx, 1, []int{2, 1, 1}, 40) // score 1
	require.NoError(t, err)
	_, err = engine.SubmitAttempt(ctx, 1, []int{2, 0, 2}, 40) // score 3
	require.NoError(t, err)
	_, err = engine.SubmitAttempt(ctx, 1, []int{0, 0, 0}, 40) // score 0
	require.NoError(t, err)

	assert.Equal(t, 3, engine.BestScore(1))

	quiz, err := engine.GetQuiz(1)
	require.NoError(t, err)
	assert.True(t, quiz.Completed)
	assert.Equal(t, 3, quiz.BestScore)
}

func TestQuizEngine_PersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	engine := newTestEngine(t, kv)

	_, err := engine.SubmitAttempt(ctx, 1, []int{2, 0, 2}, 90)
	require.NoError(t, err)

	reloaded := newTestEngine(t, kv)
	assert.True(t, reloaded.IsCompleted(1))
	assert.Equal(t, 3, reloaded.BestScore(1))
	assert.Equal(t, 1, reloaded.Stats().QuizzesCompleted)
}

func TestQuizEngine_ResetAll(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	engine := newTestEngine(t, kv)

	_, err := engine.SubmitAttempt(ctx, 1, []int{2, 0, 2}, 90)
	require.NoError(t, err)

	engine.ResetAll(ctx)
	assert.False(t, engine.IsCompleted(1))
	assert.Empty(t, engine.Attempts())
	assert.Zero(t, engine.Stats().QuizzesCompleted)
	assert.Equal(t, 0, kv.Len())
}
