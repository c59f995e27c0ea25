package domain

// MemorizationStats aggregates memorization activity across all sessions.
// TotalVersesMemorized is a lifetime counter: it grows when a verse is
// memorized for the first time and never decrements, even when the verse is
// later unmarked.
type MemorizationStats struct {
	TotalVersesMemorized int     `json:"total_verses_memorized"`
	CurrentStreak        int     `json:"current_streak"`
	LongestStreak        int     `json:"longest_streak"`
	TotalStudyMinutes    float64 `json:"total_study_minutes"`
	AverageAccuracy      float64 `json:"average_accuracy"`
	// LastStudyDay is the local calendar day (e.g. "2026-08-28") of the most
	// recent completed session. It gates the streak so that multiple sessions
	// on the same day count once.
	LastStudyDay string `json:"last_study_day,omitempty"`
}

// QuizStats aggregates quiz activity across all attempts.
type QuizStats struct {
	QuizzesCompleted    int      `json:"quizzes_completed"`
	AverageScore        float64  `json:"average_score"`
	BestScore           int      `json:"best_score"`
	TotalTimeSeconds    int      `json:"total_time_seconds"`
	CategoriesCompleted []string `json:"categories_completed"`
}

// HasCategory reports whether the category has already been recorded.
func (q *QuizStats) HasCategory(category string) bool {
	for _, c := range q.CategoriesCompleted {
		if c == category {
			return true
		}
	}
	return false
}

// AddCategory records the category if it is new.
func (q *QuizStats) AddCategory(category string) {
	if !q.HasCategory(category) {
		q.CategoriesCompleted = append(q.CategoriesCompleted, category)
	}
}

// AggregateStats is the combined per-user statistics view assembled from the
// memorization and quiz stat blobs.
type AggregateStats struct {
	MemorizationStats
	QuizStats
}
