package similarity

import (
	"math"
	"regexp"
	"strings"
)

// Word tokens: two or more letter/digit/underscore runes, matching the
// tokenization the report thresholds were tuned against.
var tokenRe = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// vector is a sparse, L2-normalized term-weight vector.
type vector map[string]float64

// vectorize embeds each text as a TF-IDF vector over unigrams and
// bigrams. Stop words are removed before n-gram assembly, term
// frequency is sublinear (1 + ln tf) to damp high-frequency terms, and
// IDF is smoothed: ln((1+n)/(1+df)) + 1. Rows are L2-normalized so
// cosine similarity reduces to a dot product.
func vectorize(texts []string) []vector {
	n := len(texts)
	termCounts := make([]map[string]float64, n)
	df := map[string]int{}

	for i, text := range texts {
		counts := map[string]float64{}
		for _, term := range ngrams(tokenize(text)) {
			counts[term]++
		}
		for term := range counts {
			df[term]++
		}
		termCounts[i] = counts
	}

	vectors := make([]vector, n)
	for i, counts := range termCounts {
		v := vector{}
		for term, tf := range counts {
			idf := math.Log(float64(1+n)/float64(1+df[term])) + 1
			v[term] = (1 + math.Log(tf)) * idf
		}
		normalize(v)
		vectors[i] = v
	}
	return vectors
}

func tokenize(text string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(text), -1)
	tokens := raw[:0]
	for _, t := range raw {
		if _, stop := stopWords[t]; !stop {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// ngrams returns the unigrams plus adjacent bigrams of a token stream.
func ngrams(tokens []string) []string {
	terms := make([]string, 0, 2*len(tokens))
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

func normalize(v vector) {
	sum := 0.0
	for _, w := range v {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for term, w := range v {
		v[term] = w / norm
	}
}

// cosine of two L2-normalized sparse vectors.
func cosine(a, b vector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	dot := 0.0
	for term, w := range a {
		dot += w * b[term]
	}
	return dot
}
