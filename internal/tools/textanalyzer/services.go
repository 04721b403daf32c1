package textanalyzer

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type Analysis struct {
	Characters              int         `json:"characters"`
	CharactersNoSpaces      int         `json:"characters_no_spaces"`
	Words                   int         `json:"words"`
	Sentences               int         `json:"sentences"`
	Paragraphs              int         `json:"paragraphs"`
	ReadingTimeMinutes      int         `json:"reading_time_minutes"`
	AverageWordsPerSentence float64     `json:"average_words_per_sentence"`
	LongestWord             string      `json:"longest_word"`
	MostCommonWords         []WordCount `json:"most_common_words"`
}

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "must": {}, "can": {}, "this": {}, "that": {},
	"these": {}, "those": {}, "i": {}, "you": {}, "he": {}, "she": {},
	"it": {}, "we": {}, "they": {}, "me": {}, "him": {}, "her": {},
	"us": {}, "them": {},
}

var (
	spaceRe     = regexp.MustCompile(`\s`)
	sentenceRe  = regexp.MustCompile(`[.!?]+`)
	paragraphRe = regexp.MustCompile(`\n\s*\n`)
	nonLetterRe = regexp.MustCompile(`[^a-zA-Z]`)
)

// Analyze computes the full metric set for a block of text. Returns nil
// for blank input.
func Analyze(text string) *Analysis {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	runes := []rune(text)
	characters := len(runes)
	charactersNoSpaces := len([]rune(spaceRe.ReplaceAllString(text, "")))

	words := strings.Fields(strings.TrimSpace(text))

	sentences := 0
	for _, s := range sentenceRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}

	paragraphs := 0
	for _, p := range paragraphRe.Split(text, -1) {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}

	// Reading time assumes 200 words per minute.
	readingTime := int(math.Ceil(float64(len(words)) / 200))

	avgWordsPerSentence := 0.0
	if sentences > 0 {
		avgWordsPerSentence = math.Round(float64(len(words))/float64(sentences)*10) / 10
	}

	longestWord := ""
	for _, w := range words {
		if len(w) > len(longestWord) {
			longestWord = w
		}
	}

	return &Analysis{
		Characters:              characters,
		CharactersNoSpaces:      charactersNoSpaces,
		Words:                   len(words),
		Sentences:               sentences,
		Paragraphs:              paragraphs,
		ReadingTimeMinutes:      readingTime,
		AverageWordsPerSentence: avgWordsPerSentence,
		LongestWord:             longestWord,
		MostCommonWords:         mostCommonWords(words, 5),
	}
}

// mostCommonWords counts lowercase, letters-only words longer than two
// characters, excluding stop words, and returns the top n by count.
func mostCommonWords(words []string, n int) []WordCount {
	counts := make(map[string]int)
	for _, w := range words {
		cleaned := nonLetterRe.ReplaceAllString(strings.ToLower(w), "")
		if len(cleaned) <= 2 {
			continue
		}
		if _, skip := stopWords[cleaned]; skip {
			continue
		}
		counts[cleaned]++
	}

	ranked := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		ranked = append(ranked, WordCount{Word: w, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
