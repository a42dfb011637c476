package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newForumDB creates a throwaway forum database with the schema the
// forum application writes.
func newForumDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "forum.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	schema := []string{
		`CREATE TABLE user (
			id INTEGER PRIMARY KEY,
			username TEXT NOT NULL
		)`,
		`CREATE TABLE question (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			user_id INTEGER NOT NULL REFERENCES user(id),
			views INTEGER DEFAULT 0,
			created_at TEXT
		)`,
		`CREATE TABLE answer (
			id INTEGER PRIMARY KEY,
			content TEXT NOT NULL,
			question_id INTEGER NOT NULL REFERENCES question(id),
			user_id INTEGER NOT NULL REFERENCES user(id),
			created_at TEXT
		)`,
		`CREATE TABLE tag (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE question_tags (
			question_id INTEGER NOT NULL REFERENCES question(id),
			tag_id INTEGER NOT NULL REFERENCES tag(id),
			PRIMARY KEY (question_id, tag_id)
		)`,
	}
	for _, stmt := range schema {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	seed := []string{
		`INSERT INTO user (id, username) VALUES (1, 'alice'), (2, 'bob')`,
		`INSERT INTO question (id, title, description, user_id, views, created_at) VALUES
			(1, 'How to sort a list', '<p>I need help sorting numbers</p>', 1, 42, '2024-03-01 10:00:00.123456'),
			(2, 'Best pizza recipe', 'Looking for pizza dough tips', 2, 7, '2024-03-02 11:30:00')`,
		`INSERT INTO answer (id, content, question_id, user_id, created_at) VALUES
			(10, '<p>Use sort()</p>', 1, 2, '2024-03-01 12:00:00'),
			(11, 'Or sorted() for a copy', 1, 2, '2024-03-01 13:00:00')`,
		`INSERT INTO tag (id, name) VALUES (1, 'python'), (2, 'sorting')`,
		`INSERT INTO question_tags (question_id, tag_id) VALUES (1, 1), (1, 2)`,
	}
	for _, stmt := range seed {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	return path
}

func TestNewStoreMissingFile(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "nope.db"))
	assert.Error(t, err)
}

func TestListQuestions(t *testing.T) {
	store, err := NewStore(newForumDB(t))
	require.NoError(t, err)
	defer store.Close()

	questions, err := store.ListQuestions(context.Background())
	require.NoError(t, err)
	require.Len(t, questions, 2)

	q := questions[0]
	assert.Equal(t, int64(1), q.ID)
	assert.Equal(t, "How to sort a list", q.Title)
	assert.Equal(t, "<p>I need help sorting numbers</p>", q.Description)
	assert.Equal(t, "alice", q.Author)
	assert.Equal(t, 42, q.Views)
	assert.Equal(t, 2024, q.CreatedAt.Year())
	assert.Equal(t, []string{"python", "sorting"}, q.Tags)

	assert.Equal(t, "bob", questions[1].Author)
	assert.Empty(t, questions[1].Tags)
}

func TestListAnswers(t *testing.T) {
	store, err := NewStore(newForumDB(t))
	require.NoError(t, err)
	defer store.Close()

	answers, err := store.ListAnswers(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, "<p>Use sort()</p>", answers[0].Content)
	assert.Equal(t, "Or sorted() for a copy", answers[1].Content)
	assert.Equal(t, "bob", answers[0].Author)

	none, err := store.ListAnswers(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name  string
		value string
		zero  bool
	}{
		{"microseconds", "2024-03-01 10:00:00.123456", false},
		{"seconds", "2024-03-01 10:00:00", false},
		{"rfc3339", "2024-03-01T10:00:00Z", false},
		{"garbage", "last tuesday", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.zero, parseTime(tt.value).IsZero())
		})
	}
}
