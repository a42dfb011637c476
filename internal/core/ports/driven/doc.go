// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the retrieval engine to function:
//
//   - QuestionStore: Lists questions and answers from the forum's data store
//   - SnapshotStore: Persists the index snapshot as one atomic unit
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LLMService: Text generation. Without it, the assistant replies
//     with a canned fallback message.
//
// # Import Rules
//
//   - Can Import: domain and vectorspace packages only
//   - Cannot Import: Any adapter package
package driven
