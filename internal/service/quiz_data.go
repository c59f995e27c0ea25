package service

import "github.com/hifzapp/hifz-api/internal/domain"

// quizBank is the static, read-only quiz catalog. Order here is catalog
// order and is preserved by listing operations.
var quizBank = []domain.Quiz{
	{
		ID:          1,
		Title:       "Surah Al-Fatiha Knowledge",
		Description: "Test your understanding of the opening chapter",
		Difficulty:  domain.DifficultyBeginner,
		Category:    "Surahs",
		Questions: []domain.Question{
			{
				ID:            1,
				Text:          "How many verses are in Surah Al-Fatiha?",
				Options:       []string{"5", "6", "7", "8"},
				CorrectOption: 2,
				Explanation:   "Surah Al-Fatiha contains 7 verses and is known as the opening chapter of the Quran.",
			},
			{
				ID:            2,
				Text:          "What does \"Al-Fatiha\" mean in English?",
				Options:       []string{"The Opening", "The Beginning", "The First", "The Start"},
				CorrectOption: 0,
				Explanation:   "Al-Fatiha means \"The Opening\" and it opens the Quran.",
			},
			{
				ID:            3,
				Text:          "Which prayer position is Surah Al-Fatiha recited in?",
				Options:       []string{"Only standing", "Only sitting", "Every rakah", "Only in the first rakah"},
				CorrectOption: 2,
				Explanation:   "Surah Al-Fatiha is recited in every rakah of the prayer.",
			},
		},
	},
	{
		ID:          2,
		Title:       "Names of Allah (Asma ul-Husna)",
		Description: "Learn the 99 beautiful names of Allah",
		Difficulty:  domain.DifficultyIntermediate,
		Category:    "Names of Allah",
		Questions: []domain.Question{
			{
				ID:            4,
				Text:          "What does \"Ar-Rahman\" mean?",
				Options:       []string{"The Merciful", "The Compassionate", "The Entirely Merciful", "The Kind"},
				CorrectOption: 2,
				Explanation:   "Ar-Rahman means \"The Entirely Merciful\" and refers to Allah's mercy to all creation.",
			},
			{
				ID:            5,
				Text:          "How many beautiful names of Allah are traditionally recognized?",
				Options:       []string{"77", "88", "99", "100"},
				CorrectOption: 2,
				Explanation:   "There are 99 beautiful names of Allah (Asma ul-Husna) traditionally recognized.",
			},
		},
	},
	{
		ID:          3,
		Title:       "Prophets in the Quran",
		Description: "Stories and lessons from the prophets",
		Difficulty:  domain.DifficultyAdvanced,
		Category:    "Prophets",
		Questions: []domain.Question{
			{
				ID:            6,
				Text:          "Which prophet is mentioned most frequently in the Quran?",
				Options:       []string{"Prophet Muhammad (PBUH)", "Prophet Ibrahim (AS)", "Prophet Musa (AS)", "Prophet Isa (AS)"},
				CorrectOption: 2,
				Explanation:   "Prophet Musa (Moses) is mentioned most frequently in the Quran, appearing in many chapters.",
			},
			{
				ID:            7,
				Text:          "How many prophets are mentioned by name in the Quran?",
				Options:       []string{"20", "25", "30", "35"},
				CorrectOption: 1,
				Explanation:   "There are 25 prophets mentioned by name in the Quran.",
			},
		},
	},
}
