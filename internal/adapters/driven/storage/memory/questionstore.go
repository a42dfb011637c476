// Package memory provides in-memory driven-port implementations used
// in tests and for seeding demo data.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/stackit-labs/stackit-search/internal/core/domain"
	"github.com/stackit-labs/stackit-search/internal/core/ports/driven"
)

// Ensure QuestionStore implements the interface.
var _ driven.QuestionStore = (*QuestionStore)(nil)

// QuestionStore is an in-memory implementation of driven.QuestionStore.
type QuestionStore struct {
	mu        sync.RWMutex
	questions map[int64]domain.Question
	answers   map[int64][]domain.Answer
}

// NewQuestionStore creates a new in-memory question store.
func NewQuestionStore() *QuestionStore {
	return &QuestionStore{
		questions: make(map[int64]domain.Question),
		answers:   make(map[int64][]domain.Answer),
	}
}

// PutQuestion stores or replaces a question.
func (s *QuestionStore) PutQuestion(q domain.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions[q.ID] = q
}

// PutAnswer appends an answer to its question.
func (s *QuestionStore) PutAnswer(a domain.Answer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers[a.QuestionID] = append(s.answers[a.QuestionID], a)
}

// RemoveQuestion deletes a question and its answers.
func (s *QuestionStore) RemoveQuestion(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.questions, id)
	delete(s.answers, id)
}

// ListQuestions returns all questions ordered by ID.
func (s *QuestionStore) ListQuestions(_ context.Context) ([]domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Question, 0, len(s.questions))
	for _, q := range s.questions {
		result = append(result, q)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// ListAnswers returns all answers for a question in insertion order.
func (s *QuestionStore) ListAnswers(_ context.Context, questionID int64) ([]domain.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	answers := s.answers[questionID]
	result := make([]domain.Answer, len(answers))
	copy(result, answers)
	return result, nil
}
