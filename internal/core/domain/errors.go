package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyCorpus indicates the question store yielded no questions.
	// An index over zero documents is a build failure, not an empty
	// but valid index.
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrNotFitted indicates a vector space model was asked to
	// transform text before any vocabulary was learned.
	ErrNotFitted = errors.New("vector space model not fitted")

	// ErrSnapshotUnavailable indicates the persisted index snapshot is
	// missing, unreadable or schema-incompatible. Callers treat this as
	// "no snapshot" and rebuild; it is never fatal.
	ErrSnapshotUnavailable = errors.New("index snapshot unavailable")

	// ErrLLMUnavailable indicates the text-generation service is not
	// configured. Assistant features fall back to a canned reply.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
)
