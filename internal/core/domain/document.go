package domain

import "time"

// Question is a forum question as returned by the question store.
// Title and Description may carry HTML markup from the forum editor.
type Question struct {
	// ID is the forum's question identifier.
	ID int64

	// Title is the question title.
	Title string

	// Description is the question body, markup-bearing.
	Description string

	// Author is the display name of the question's author.
	Author string

	// Views is the question's view counter.
	Views int

	// CreatedAt is when the question was posted.
	CreatedAt time.Time

	// Tags are the tag names attached to the question.
	Tags []string
}

// Answer is a forum answer as returned by the question store.
type Answer struct {
	// ID is the forum's answer identifier.
	ID int64

	// QuestionID links to the question this answer belongs to.
	QuestionID int64

	// Content is the answer body, markup-bearing.
	Content string

	// Author is the display name of the answer's author.
	Author string

	// CreatedAt is when the answer was posted.
	CreatedAt time.Time
}

// Document is the indexed snapshot of one question. It is taken at
// build time and is not synchronised with live edits; a rebuild
// replaces the whole corpus.
type Document struct {
	// ID matches the source question ID.
	ID int64 `json:"id"`

	// Title is the question title.
	Title string `json:"title"`

	// Description is the question body with markup stripped.
	Description string `json:"description"`

	// Author is the display name of the question's author.
	Author string `json:"author"`

	// CreatedAt is when the question was posted.
	CreatedAt time.Time `json:"created_at"`

	// Tags are the tag names attached to the question.
	Tags []string `json:"tags"`

	// Answers holds the markup-stripped answer bodies, in posting order.
	Answers []string `json:"answers"`

	// AnswerCount is len(Answers) at snapshot time.
	AnswerCount int `json:"answer_count"`

	// Views is the question's view counter at snapshot time.
	Views int `json:"views"`
}
