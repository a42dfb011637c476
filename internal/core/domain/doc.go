// Package domain defines the core business entities for stackit-search.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Question: A forum question as provided by the data store
//   - Answer: A forum answer as provided by the data store
//   - Document: The indexed snapshot of a question with its answers
//   - SimilarQuestion: A search hit with its similarity score
//   - ChatContext: The trimmed view handed to the AI assistant
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
