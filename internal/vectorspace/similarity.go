package vectorspace

import "sort"

// DefaultMinSimilarity is the minimum score a corpus row must exceed
// to count as a hit.
const DefaultMinSimilarity = 0.1

// Hit is one ranked similarity result.
type Hit struct {
	// Row is the corpus row index.
	Row int

	// Score is the cosine similarity to the query.
	Score float64
}

// Similarities scores the query against every corpus row, returning
// one score per row in row order.
func Similarities(query Vector, rows []Vector) []float64 {
	scores := make([]float64, len(rows))
	for i := range rows {
		scores[i] = Cosine(query, rows[i])
	}
	return scores
}

// TopK ranks all corpus rows by similarity to the query, best first,
// with ties kept in row order, and returns at most k hits whose score
// is strictly above minScore. An empty corpus yields no hits.
func TopK(query Vector, rows []Vector, k int, minScore float64) []Hit {
	if k <= 0 || len(rows) == 0 {
		return nil
	}

	scores := Similarities(query, rows)
	hits := make([]Hit, 0, len(scores))
	for row, score := range scores {
		if score > minScore {
			hits = append(hits, Hit{Row: row, Score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	return hits
}
