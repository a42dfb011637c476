// Package sqlite reads questions and answers from the forum's SQLite
// database. The forum owns this schema; the store is strictly
// read-only and tolerant of timestamp format drift between writers.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/stackit-labs/stackit-search/internal/core/domain"
	"github.com/stackit-labs/stackit-search/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.QuestionStore = (*Store)(nil)

// Store is a SQLite-backed implementation of driven.QuestionStore.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens the forum database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("forum database path: %w", domain.ErrInvalidInput)
	}
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("forum database: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)&_pragma=query_only(ON)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ListQuestions returns every question with author, tags and views,
// ordered by question ID.
func (s *Store) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT q.id, q.title, q.description, u.username, q.views, q.created_at
		FROM question q
		JOIN user u ON u.id = q.user_id
		ORDER BY q.id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying questions: %w", err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		var createdAt string
		if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.Author, &q.Views, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning question: %w", err)
		}
		q.CreatedAt = parseTime(createdAt)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating questions: %w", err)
	}

	if err := s.attachTags(ctx, questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// attachTags fills in tag names for all questions in one pass.
func (s *Store) attachTags(ctx context.Context, questions []domain.Question) error {
	if len(questions) == 0 {
		return nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT qt.question_id, t.name
		FROM question_tags qt
		JOIN tag t ON t.id = qt.tag_id
		ORDER BY qt.question_id, t.name
	`)
	if err != nil {
		return fmt.Errorf("querying tags: %w", err)
	}
	defer rows.Close()

	tagsByQuestion := make(map[int64][]string)
	for rows.Next() {
		var questionID int64
		var name string
		if err := rows.Scan(&questionID, &name); err != nil {
			return fmt.Errorf("scanning tag: %w", err)
		}
		tagsByQuestion[questionID] = append(tagsByQuestion[questionID], name)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating tags: %w", err)
	}

	for i := range questions {
		questions[i].Tags = tagsByQuestion[questions[i].ID]
	}
	return nil
}

// ListAnswers returns all answers for a question in posting order.
func (s *Store) ListAnswers(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.question_id, a.content, u.username, a.created_at
		FROM answer a
		JOIN user u ON u.id = a.user_id
		WHERE a.question_id = ?
		ORDER BY a.id
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("querying answers for question %d: %w", questionID, err)
	}
	defer rows.Close()

	var answers []domain.Answer
	for rows.Next() {
		var a domain.Answer
		var createdAt string
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.Content, &a.Author, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning answer: %w", err)
		}
		a.CreatedAt = parseTime(createdAt)
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating answers: %w", err)
	}
	return answers, nil
}

// timeLayouts covers the timestamp formats seen in forum databases:
// SQLAlchemy writes microsecond-precision strings, other writers use
// plain seconds or RFC 3339.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	time.RFC3339,
}

// parseTime parses a stored timestamp, returning the zero time when no
// layout matches. Timestamps are metadata here; a bad one must not
// fail the whole index build.
func parseTime(value string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
