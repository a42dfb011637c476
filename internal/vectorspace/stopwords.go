package vectorspace

// stopwords is the built-in English stop-word exclusion list. Terms on
// this list never enter the vocabulary and never contribute to bigrams.
var stopwords = func() map[string]struct{} {
	words := []string{
		"a", "about", "above", "after", "again", "against", "all", "am",
		"an", "and", "any", "are", "aren", "as", "at", "be", "because",
		"been", "before", "being", "below", "between", "both", "but",
		"by", "can", "cannot", "could", "couldn", "did", "didn", "do",
		"does", "doesn", "doing", "don", "down", "during", "each", "few",
		"for", "from", "further", "had", "hadn", "has", "hasn", "have",
		"haven", "having", "he", "her", "here", "hers", "herself", "him",
		"himself", "his", "how", "i", "if", "in", "into", "is", "isn",
		"it", "its", "itself", "just", "me", "more", "most", "mustn",
		"my", "myself", "no", "nor", "not", "now", "of", "off", "on",
		"once", "only", "or", "other", "ought", "our", "ours",
		"ourselves", "out", "over", "own", "same", "shan", "she",
		"should", "shouldn", "so", "some", "such", "than", "that", "the",
		"their", "theirs", "them", "themselves", "then", "there",
		"these", "they", "this", "those", "through", "to", "too",
		"under", "until", "up", "very", "was", "wasn", "we", "were",
		"weren", "what", "when", "where", "which", "while", "who",
		"whom", "why", "will", "with", "won", "would", "wouldn", "you",
		"your", "yours", "yourself", "yourselves",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()

// isStopword reports whether the token is on the exclusion list.
func isStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
