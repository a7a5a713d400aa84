package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_CollapsesWhitespace(t *testing.T) {
	input := "Senior   Software\t\tEngineer\n\nRemote"
	assert.Equal(t, "Senior Software Engineer Remote", Clean(input))
}

func TestClean_StripsUnsafeCharacters(t *testing.T) {
	input := "C++ & Go <developers> wanted! $150k"
	cleaned := Clean(input)
	assert.NotContains(t, cleaned, "<")
	assert.NotContains(t, cleaned, ">")
	assert.NotContains(t, cleaned, "&")
	assert.NotContains(t, cleaned, "!")
	// Allow-listed punctuation survives
	assert.Contains(t, cleaned, "C++")
	assert.Contains(t, cleaned, "150k")
}

func TestClean_SqueezesRepeatedPunctuation(t *testing.T) {
	assert.Equal(t, "wait. done-soon", Clean("wait....  done---soon"))
}

func TestClean_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Clean(""))
	assert.Equal(t, "", Clean("   \n\t  "))
}

func TestWordCountStats(t *testing.T) {
	text := "First sentence. Second one!\n\nNew paragraph here."
	stats := WordCountStats(text)
	assert.Equal(t, 7, stats.Words)
	assert.Equal(t, 3, stats.Sentences)
	assert.Equal(t, 2, stats.Paragraphs)
	assert.Equal(t, len(text), stats.Characters)
}

func TestWordCountStats_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, WordCountStats(""))
}
