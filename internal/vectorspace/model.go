package vectorspace

import (
	"fmt"
	"math"
	"regexp"
	"sort"

	"github.com/stackit-labs/stackit-search/internal/core/domain"
)

// DefaultMaxFeatures caps the learned vocabulary size.
const DefaultMaxFeatures = 5000

// tokenPattern matches word tokens of at least two characters.
// Single-character tokens carry no signal and are dropped.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Model is a learned vector space: a vocabulary of unigrams and
// bigrams mapped to column indices, with a smoothed inverse document
// frequency weight per column. A model is learned wholesale with Fit
// and never patched afterwards. Fields are exported for snapshot
// serialisation only.
type Model struct {
	// Vocabulary maps a term to its column index. Bigrams are stored
	// as the two tokens joined by a single space.
	Vocabulary map[string]int

	// IDF holds the inverse document frequency weight per column.
	IDF []float64
}

// Fit learns a model from the corpus and returns it together with one
// weight vector per input text, in input order. The vocabulary is
// restricted to unigrams and bigrams over non-stop-word tokens and
// capped at maxFeatures terms, keeping the most frequent ones. Given
// the same corpus and configuration the result is deterministic.
func Fit(corpus []string, maxFeatures int) (*Model, []Vector, error) {
	if len(corpus) == 0 {
		return nil, nil, fmt.Errorf("fit: %w", domain.ErrEmptyCorpus)
	}
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}

	// Term extraction per document, plus document and corpus frequencies.
	docTerms := make([][]string, len(corpus))
	df := make(map[string]int)
	cf := make(map[string]int)
	for i, text := range corpus {
		terms := extractTerms(text)
		docTerms[i] = terms
		seen := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			cf[term]++
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}
	if len(df) == 0 {
		return nil, nil, fmt.Errorf("fit: no terms survived tokenisation: %w", domain.ErrEmptyCorpus)
	}

	// Cap the vocabulary: keep the terms with the highest corpus
	// frequency, breaking ties by term so the cut is deterministic.
	kept := make([]string, 0, len(cf))
	for term := range cf {
		kept = append(kept, term)
	}
	if len(kept) > maxFeatures {
		sort.Slice(kept, func(i, j int) bool {
			if cf[kept[i]] != cf[kept[j]] {
				return cf[kept[i]] > cf[kept[j]]
			}
			return kept[i] < kept[j]
		})
		kept = kept[:maxFeatures]
	}
	sort.Strings(kept)

	m := &Model{
		Vocabulary: make(map[string]int, len(kept)),
		IDF:        make([]float64, len(kept)),
	}
	n := float64(len(corpus))
	for i, term := range kept {
		m.Vocabulary[term] = i
		// Smoothed IDF, always positive.
		m.IDF[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	matrix := make([]Vector, len(corpus))
	for i, terms := range docTerms {
		matrix[i] = m.vectorise(terms)
	}
	return m, matrix, nil
}

// Transform projects a single text into the learned space. Terms
// absent from the vocabulary contribute zero weight; a text with no
// known terms yields a zero vector. Transforming before any Fit is an
// error.
func (m *Model) Transform(text string) (Vector, error) {
	if m == nil || len(m.Vocabulary) == 0 {
		return Vector{}, domain.ErrNotFitted
	}
	return m.vectorise(extractTerms(text)), nil
}

// Dimensions returns the vocabulary size.
func (m *Model) Dimensions() int {
	return len(m.Vocabulary)
}

// vectorise counts known terms, weights them by TF-IDF and
// L2-normalises the result into a sparse vector.
func (m *Model) vectorise(terms []string) Vector {
	counts := make(map[int]float64)
	for _, term := range terms {
		if col, ok := m.Vocabulary[term]; ok {
			counts[col]++
		}
	}
	if len(counts) == 0 {
		return Vector{}
	}

	v := Vector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for col := range counts {
		v.Indices = append(v.Indices, col)
	}
	sort.Ints(v.Indices)

	var norm float64
	for _, col := range v.Indices {
		w := counts[col] * m.IDF[col]
		v.Values = append(v.Values, w)
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for i := range v.Values {
		v.Values[i] /= norm
	}
	return v
}

// extractTerms tokenises cleaned text and expands it into unigrams and
// bigrams, excluding stop words. Bigrams are formed over the sequence
// that remains after stop-word removal.
func extractTerms(text string) []string {
	tokens := tokenPattern.FindAllString(text, -1)
	filtered := tokens[:0]
	for _, tok := range tokens {
		if isStopword(tok) {
			continue
		}
		filtered = append(filtered, tok)
	}

	terms := make([]string, 0, 2*len(filtered))
	terms = append(terms, filtered...)
	for i := 0; i+1 < len(filtered); i++ {
		terms = append(terms, filtered[i]+" "+filtered[i+1])
	}
	return terms
}
