// Package textproc provides text cleaning, keyword extraction, and
// similarity scoring used throughout crawling and matching.
package textproc

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	unsafeCharsRe = regexp.MustCompile(`[^\w\s.,\-()@#+%]`)
	repeatDotsRe  = regexp.MustCompile(`\.{2,}`)
	repeatDashRe  = regexp.MustCompile(`-{2,}`)
)

// Clean normalizes raw text for processing: collapses whitespace, strips
// characters outside a safe punctuation allow-list, and squeezes repeated
// punctuation. Empty input yields an empty result.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = whitespaceRe.ReplaceAllString(text, " ")
	text = unsafeCharsRe.ReplaceAllString(text, " ")
	text = repeatDotsRe.ReplaceAllString(text, ".")
	text = repeatDashRe.ReplaceAllString(text, "-")
	text = whitespaceRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
