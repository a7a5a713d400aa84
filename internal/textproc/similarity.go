package textproc

// Similarity computes the Jaccard similarity of the two texts' top-50
// keyword sets: |A∩B| / |A∪B|. It returns 0 when either set is empty,
// is symmetric, and equals 1.0 for identical non-empty texts.
func Similarity(a, b string) float64 {
	setA := ExtractKeywords(a, DefaultMaxKeywords)
	setB := ExtractKeywords(b, DefaultMaxKeywords)
	if len(setA) == 0 || len(setB) == 0 {
		return 0.0
	}

	inA := make(map[string]bool, len(setA))
	for _, term := range setA {
		inA[term] = true
	}

	intersection := 0
	union := len(setA)
	for _, term := range setB {
		if inA[term] {
			intersection++
		} else {
			union++
		}
	}

	return float64(intersection) / float64(union)
}
