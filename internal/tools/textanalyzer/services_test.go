package textanalyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeBlankInput(t *testing.T) {
	assert.Nil(t, Analyze(""))
	assert.Nil(t, Analyze("   \n\t  "))
}

func TestAnalyzeBasicMetrics(t *testing.T) {
	text := "Go is fast. Go is simple!\n\nGo compiles quickly."
	a := Analyze(text)
	require.NotNil(t, a)

	assert.Equal(t, len([]rune(text)), a.Characters)
	assert.Equal(t, 9, a.Words)
	assert.Equal(t, 3, a.Sentences)
	assert.Equal(t, 2, a.Paragraphs)
	assert.Equal(t, 1, a.ReadingTimeMinutes)
	assert.Equal(t, 3.0, a.AverageWordsPerSentence)
	assert.Equal(t, "compiles", a.LongestWord)
}

func TestAnalyzeCharactersNoSpaces(t *testing.T) {
	a := Analyze("a b\tc\nd")
	require.NotNil(t, a)
	assert.Equal(t, 7, a.Characters)
	assert.Equal(t, 4, a.CharactersNoSpaces)
}

func TestAnalyzeReadingTimeRoundsUp(t *testing.T) {
	a := Analyze(strings.Repeat("word ", 201))
	require.NotNil(t, a)
	assert.Equal(t, 2, a.ReadingTimeMinutes)
}

func TestAnalyzeMostCommonWords(t *testing.T) {
	a := Analyze("Apple banana apple! Banana, apple; cherry the and is it.")
	require.NotNil(t, a)

	require.GreaterOrEqual(t, len(a.MostCommonWords), 3)
	assert.Equal(t, WordCount{Word: "apple", Count: 3}, a.MostCommonWords[0])
	assert.Equal(t, WordCount{Word: "banana", Count: 2}, a.MostCommonWords[1])
	assert.Equal(t, WordCount{Word: "cherry", Count: 1}, a.MostCommonWords[2])

	for _, wc := range a.MostCommonWords {
		assert.NotContains(t, []string{"the", "and", "is", "it"}, wc.Word, "stop words are excluded")
	}
}

func TestAnalyzeMostCommonWordsCapsAtFive(t *testing.T) {
	a := Analyze("alpha bravo charlie delta echo foxtrot golf")
	require.NotNil(t, a)
	assert.Len(t, a.MostCommonWords, 5)
	// Ties break alphabetically.
	assert.Equal(t, "alpha", a.MostCommonWords[0].Word)
	assert.Equal(t, "bravo", a.MostCommonWords[1].Word)
}
