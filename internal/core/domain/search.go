package domain

// SimilarQuestion is a single similarity search hit.
type SimilarQuestion struct {
	// Document is the matched question snapshot.
	Document

	// Similarity is the cosine similarity to the query, in [0,1].
	Similarity float64 `json:"similarity"`
}

// ChatContext is the trimmed view of a search hit handed to the AI
// assistant for prompt construction. Descriptions are truncated and
// only the first answers are carried to keep prompts small.
type ChatContext struct {
	// QuestionID is the source question identifier.
	QuestionID int64 `json:"question_id"`

	// Title is the question title.
	Title string `json:"title"`

	// Description is the question body, truncated with an ellipsis
	// marker when longer than the configured limit.
	Description string `json:"description"`

	// Answers holds at most the first two answer bodies.
	Answers []string `json:"answers"`

	// Link is the forum-relative URL of the question.
	Link string `json:"link"`

	// Similarity is the cosine similarity to the query.
	Similarity float64 `json:"similarity"`
}
