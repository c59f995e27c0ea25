package catalog

import "github.com/hifzapp/hifz-api/internal/domain"

// chapters is the static chapter registry. A full deployment would load all
// 114 chapters from a content database; this seeded set mirrors the bundled
// mobile content.
var chapters = []domain.Chapter{
	{ID: 1, Name: "Al-Fatiha", ArabicName: "الفاتحة", VerseCount: 7, Kind: domain.ChapterKindMeccan, RevelationOrder: 5},
	{ID: 2, Name: "Al-Baqarah", ArabicName: "البقرة", VerseCount: 286, Kind: domain.ChapterKindMedinan, RevelationOrder: 87},
	{ID: 3, Name: "Ali Imran", ArabicName: "آل عمران", VerseCount: 200, Kind: domain.ChapterKindMedinan, RevelationOrder: 89},
	{ID: 4, Name: "An-Nisa", ArabicName: "النساء", VerseCount: 176, Kind: domain.ChapterKindMedinan, RevelationOrder: 92},
	{ID: 5, Name: "Al-Maidah", ArabicName: "المائدة", VerseCount: 120, Kind: domain.ChapterKindMedinan, RevelationOrder: 112},
	{ID: 6, Name: "Al-Anam", ArabicName: "الأنعام", VerseCount: 165, Kind: domain.ChapterKindMeccan, RevelationOrder: 55},
	{ID: 7, Name: "Al-Araf", ArabicName: "الأعراف", VerseCount: 206, Kind: domain.ChapterKindMeccan, RevelationOrder: 39},
	{ID: 8, Name: "Al-Anfal", ArabicName: "الأنفال", VerseCount: 75, Kind: domain.ChapterKindMedinan, RevelationOrder: 88},
	{ID: 9, Name: "At-Tawbah", ArabicName: "التوبة", VerseCount: 129, Kind: domain.ChapterKindMedinan, RevelationOrder: 113},
	{ID: 10, Name: "Yunus", ArabicName: "يونس", VerseCount: 109, Kind: domain.ChapterKindMeccan, RevelationOrder: 51},
}

// seededVerses holds full verse bodies for Al-Fatiha. Verses of other
// chapters are synthesized on demand.
var seededVerses = []domain.Verse{
	{
		ID:              1,
		ChapterID:       1,
		Number:          1,
		Arabic:          "بِسْمِ ٱللَّهِ ٱلرَّحْمَٰنِ ٱلرَّحِيمِ",
		Translation:     "In the name of Allah, the Entirely Merciful, the Especially Merciful.",
		Transliteration: "Bismillahir-Rahmanir-Raheem",
	},
	{
		ID:              2,
		ChapterID:       1,
		Number:          2,
		Arabic:          "ٱلْحَمْدُ لِلَّهِ رَبِّ ٱلْعَٰلَمِينَ",
		Translation:     "[All] praise is [due] to Allah, Lord of the worlds -",
		Transliteration: "Alhamdu lillahi rabbil-alameen",
	},
	{
		ID:              3,
		ChapterID:       1,
		Number:          3,
		Arabic:          "ٱلرَّحْمَٰنِ ٱلرَّحِيمِ",
		Translation:     "The Entirely Merciful, the Especially Merciful,",
		Transliteration: "Ar-Rahmanir-Raheem",
	},
	{
		ID:              4,
		ChapterID:       1,
		Number:          4,
		Arabic:          "مَٰلِكِ يَوْمِ ٱلدِّينِ",
		Translation:     "Sovereign of the Day of Recompense.",
		Transliteration: "Maliki yawmid-deen",
	},
	{
		ID:              5,
		ChapterID:       1,
		Number:          5,
		Arabic:          "إِيَّاكَ نَعْبُدُ وَإِيَّاكَ نَسْتَعِينُ",
		Translation:     "It is You we worship and You we ask for help.",
		Transliteration: "Iyyaka na'budu wa iyyaka nasta'een",
	},
	{
		ID:              6,
		ChapterID:       1,
		Number:          6,
		Arabic:          "ٱهْدِنَا ٱلصِّرَٰطَ ٱلْمُسْتَقِيمَ",
		Translation:     "Guide us to the straight path -",
		Transliteration: "Ihdinassiratal-mustaqeem",
	},
	{
		ID:              7,
		ChapterID:       1,
		Number:          7,
		Arabic:          "صِرَٰطَ ٱلَّذِينَ أَنْعَمْتَ عَلَيْهِمْ غَيْرِ ٱلْمَغْضُوبِ عَلَيْهِمْ وَلَا ٱلضَّآلِّينَ",
		Translation:     "The path of those upon whom You have bestowed favor, not of those who have evoked [Your] anger or of those who are astray.",
		Transliteration: "Siratal-lazeena an'amta alayhim ghayril-maghdoobi alayhim wa lad-dalleen",
	},
}

// translations lists the available translation editions.
var translations = []domain.Translation{
	{ID: 1, Language: "English", Author: "Sahih International", Name: "Sahih International"},
	{ID: 2, Language: "Hausa", Author: "Abubakar Mahmud Gumi", Name: "Tafsir Gumi"},
	{ID: 3, Language: "Arabic", Author: "Original Text", Name: "Arabic Original"},
	{ID: 4, Language: "Italian", Author: "Hamza Roberto Piccardo", Name: "Italian Translation"},
}
