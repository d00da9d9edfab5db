package rank

import (
	"errors"
	"math"
	"strings"
)

// ErrEmptyVocabulary is returned by Fit when the corpus yields no terms.
var ErrEmptyVocabulary = errors.New("rank: empty vocabulary")

// Vectorizer maps texts into a term-frequency / inverse-document-frequency
// space fitted on a document corpus. Terms absent from the corpus
// vocabulary contribute nothing when a query is transformed.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// Fit builds the vocabulary and idf weights from the corpus. Documents
// are tokenised on whitespace. idf uses the smoothed form
// ln((1+n)/(1+df)) + 1 so that corpus-wide terms still carry weight.
func Fit(documents []string) (*Vectorizer, error) {
	vocabulary := make(map[string]int)
	documentFrequency := make(map[string]int)

	for _, document := range documents {
		seen := make(map[string]struct{})
		for _, term := range strings.Fields(document) {
			if _, ok := vocabulary[term]; !ok {
				vocabulary[term] = len(vocabulary)
			}
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				documentFrequency[term]++
			}
		}
	}

	if len(vocabulary) == 0 {
		return nil, ErrEmptyVocabulary
	}

	n := float64(len(documents))
	idf := make([]float64, len(vocabulary))
	for term, index := range vocabulary {
		idf[index] = math.Log((1+n)/float64(1+documentFrequency[term])) + 1
	}

	return &Vectorizer{vocabulary: vocabulary, idf: idf}, nil
}

// Transform projects a text into the fitted space as an l2-normalised
// tf-idf vector. Out-of-vocabulary terms are ignored.
func (v *Vectorizer) Transform(text string) []float64 {
	vector := make([]float64, len(v.vocabulary))
	for _, term := range strings.Fields(text) {
		if index, ok := v.vocabulary[term]; ok {
			vector[index] += v.idf[index]
		}
	}

	var norm float64
	for _, value := range vector {
		norm += value * value
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vector {
			vector[i] /= norm
		}
	}
	return vector
}

// cosine returns the cosine similarity of two l2-normalised vectors.
func cosine(a, b []float64) float64 {
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot
}
