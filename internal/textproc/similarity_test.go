package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_Identical(t *testing.T) {
	text := "python developer building kubernetes pipelines with terraform"
	assert.Equal(t, 1.0, Similarity(text, text))
}

func TestSimilarity_Symmetric(t *testing.T) {
	a := "python aws docker postgres"
	b := "python gcp kubernetes postgres"
	assert.Equal(t, Similarity(a, b), Similarity(b, a))
}

func TestSimilarity_Disjoint(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("python django flask", "welding carpentry plumbing"))
}

func TestSimilarity_EmptyEitherSide(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("", "python"))
	assert.Equal(t, 0.0, Similarity("python", ""))
	assert.Equal(t, 0.0, Similarity("", ""))
}

func TestSimilarity_PartialOverlap(t *testing.T) {
	// keyword sets: {python, aws} and {python, gcp} -> 1/3
	sim := Similarity("python aws", "python gcp")
	assert.InDelta(t, 1.0/3.0, sim, 1e-9)
}
