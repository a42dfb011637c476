package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackit-labs/stackit-search/internal/core/domain"
)

func TestQuestionStore(t *testing.T) {
	store := NewQuestionStore()

	store.PutQuestion(domain.Question{ID: 2, Title: "second"})
	store.PutQuestion(domain.Question{ID: 1, Title: "first"})
	store.PutAnswer(domain.Answer{ID: 10, QuestionID: 1, Content: "a1"})
	store.PutAnswer(domain.Answer{ID: 11, QuestionID: 1, Content: "a2"})

	questions, err := store.ListQuestions(context.Background())
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, int64(1), questions[0].ID, "questions sorted by ID")

	answers, err := store.ListAnswers(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, "a1", answers[0].Content)

	none, err := store.ListAnswers(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestQuestionStoreRemove(t *testing.T) {
	store := NewQuestionStore()
	store.PutQuestion(domain.Question{ID: 1})
	store.PutAnswer(domain.Answer{ID: 10, QuestionID: 1})

	store.RemoveQuestion(1)

	questions, err := store.ListQuestions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, questions)

	answers, err := store.ListAnswers(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, answers)
}

func TestQuestionStorePutReplaces(t *testing.T) {
	store := NewQuestionStore()
	store.PutQuestion(domain.Question{ID: 1, Title: "old"})
	store.PutQuestion(domain.Question{ID: 1, Title: "new"})

	questions, err := store.ListQuestions(context.Background())
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "new", questions[0].Title)
}
