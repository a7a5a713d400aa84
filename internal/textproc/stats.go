package textproc

import (
	"regexp"
	"strings"
)

var sentenceRe = regexp.MustCompile(`[.!?]+`)

// Stats holds simple size statistics for a text.
type Stats struct {
	Words      int `json:"words"`
	Sentences  int `json:"sentences"`
	Paragraphs int `json:"paragraphs"`
	Characters int `json:"characters"`
}

// WordCountStats computes word, sentence, paragraph, and character counts.
func WordCountStats(text string) Stats {
	if text == "" {
		return Stats{}
	}

	paragraphs := 0
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}

	return Stats{
		Words:      len(strings.Fields(text)),
		Sentences:  len(sentenceRe.FindAllString(text, -1)),
		Paragraphs: paragraphs,
		Characters: len(text),
	}
}
