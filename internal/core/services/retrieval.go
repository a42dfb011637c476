package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/stackit-labs/stackit-search/internal/core/domain"
	"github.com/stackit-labs/stackit-search/internal/core/ports/driven"
	"github.com/stackit-labs/stackit-search/internal/core/ports/driving"
	"github.com/stackit-labs/stackit-search/internal/logger"
	"github.com/stackit-labs/stackit-search/internal/normalisers/markup"
	"github.com/stackit-labs/stackit-search/internal/vectorspace"
)

// Ensure RetrievalService implements the interface.
var _ driving.RetrievalService = (*RetrievalService)(nil)

// Default tuning values, overridable via RetrievalOptions.
const (
	DefaultTopK               = 5
	DefaultMaxContext         = 3
	DefaultContextDescription = 200
	DefaultContextAnswers     = 2
)

// RetrievalOptions tunes the retrieval service.
type RetrievalOptions struct {
	// MaxFeatures caps the learned vocabulary (default 5000).
	MaxFeatures int

	// MinSimilarity is the score a hit must exceed (default 0.1).
	MinSimilarity float64

	// ContextDescriptionLimit is the rune budget for descriptions in
	// chat context items (default 200).
	ContextDescriptionLimit int

	// ContextAnswerLimit caps the answers carried per chat context
	// item (default 2).
	ContextAnswerLimit int
}

// indexState is one immutable built index. It is published via an
// atomic pointer swap so readers always see a complete, consistent
// corpus-and-matrix pair; invariant: len(corpus) == len(matrix).
type indexState struct {
	model  *vectorspace.Model
	matrix []vectorspace.Vector
	corpus []domain.Document
}

// RetrievalService builds and queries the similarity index over the
// forum's questions. Builds are serialised by a mutex and constructed
// fully off to the side; in-flight searches keep reading the previous
// state until the swap.
type RetrievalService struct {
	questions driven.QuestionStore
	snapshots driven.SnapshotStore
	opts      RetrievalOptions

	// buildMu serialises BuildIndex and snapshot loading.
	buildMu sync.Mutex
	current atomic.Pointer[indexState]
}

// NewRetrievalService creates a retrieval service. The snapshot store
// is optional (can be nil); without it the index lives only in memory.
func NewRetrievalService(
	questions driven.QuestionStore,
	snapshots driven.SnapshotStore,
	opts RetrievalOptions,
) *RetrievalService {
	if opts.MaxFeatures <= 0 {
		opts.MaxFeatures = vectorspace.DefaultMaxFeatures
	}
	if opts.MinSimilarity <= 0 {
		opts.MinSimilarity = vectorspace.DefaultMinSimilarity
	}
	if opts.ContextDescriptionLimit <= 0 {
		opts.ContextDescriptionLimit = DefaultContextDescription
	}
	if opts.ContextAnswerLimit <= 0 {
		opts.ContextAnswerLimit = DefaultContextAnswers
	}

	return &RetrievalService{
		questions: questions,
		snapshots: snapshots,
		opts:      opts,
	}
}

// BuildIndex rebuilds the whole index from the question store and
// persists the result. On any failure the previously published state
// stays untouched and remains queryable.
func (s *RetrievalService) BuildIndex(ctx context.Context) error {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()
	return s.buildLocked(ctx)
}

// buildLocked does the actual rebuild. Callers hold buildMu.
func (s *RetrievalService) buildLocked(ctx context.Context) error {
	buildID := uuid.NewString()[:8]
	logger.Section("Index Build")
	logger.Info("Build %s: fetching questions", buildID)

	questions, err := s.questions.ListQuestions(ctx)
	if err != nil {
		return fmt.Errorf("build index: list questions: %w", err)
	}
	if len(questions) == 0 {
		return fmt.Errorf("build index: %w", domain.ErrEmptyCorpus)
	}
	logger.Debug("Build %s: %d questions", buildID, len(questions))

	corpus := make([]domain.Document, 0, len(questions))
	texts := make([]string, 0, len(questions))
	for _, q := range questions {
		answers, err := s.questions.ListAnswers(ctx, q.ID)
		if err != nil {
			return fmt.Errorf("build index: list answers for question %d: %w", q.ID, err)
		}

		bodies := make([]string, len(answers))
		for i, a := range answers {
			bodies[i] = markup.StripTags(a.Content)
		}

		corpus = append(corpus, domain.Document{
			ID:          q.ID,
			Title:       q.Title,
			Description: markup.StripTags(q.Description),
			Author:      q.Author,
			CreatedAt:   q.CreatedAt,
			Tags:        q.Tags,
			Answers:     bodies,
			AnswerCount: len(bodies),
			Views:       q.Views,
		})
		// Only title and description feed the vectoriser; tags and
		// answers travel as metadata.
		texts = append(texts, markup.Clean(q.Title+" "+q.Description))
	}

	model, matrix, err := vectorspace.Fit(texts, s.opts.MaxFeatures)
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}
	logger.Debug("Build %s: vocabulary of %d terms", buildID, model.Dimensions())

	if s.snapshots != nil {
		snap := &driven.Snapshot{
			SchemaVersion: driven.SnapshotSchemaVersion,
			Model:         model,
			Matrix:        matrix,
			Corpus:        corpus,
		}
		if err := s.snapshots.Save(ctx, snap); err != nil {
			return fmt.Errorf("build index: persist snapshot: %w", err)
		}
	}

	s.current.Store(&indexState{model: model, matrix: matrix, corpus: corpus})
	logger.Info("Build %s: indexed %d questions (%d terms)", buildID, len(corpus), model.Dimensions())
	return nil
}

// Warm attempts to load the persisted snapshot so the first query does
// not pay for a build. Best effort; failures are only logged.
func (s *RetrievalService) Warm(ctx context.Context) {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()
	if s.current.Load() != nil {
		return
	}
	if err := s.loadLocked(ctx); err != nil {
		logger.Debug("Warm: no usable snapshot: %v", err)
	}
}

// loadLocked publishes the persisted snapshot if one is usable.
// Callers hold buildMu.
func (s *RetrievalService) loadLocked(ctx context.Context) error {
	if s.snapshots == nil {
		return domain.ErrSnapshotUnavailable
	}

	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return err
	}
	if snap.Model == nil || len(snap.Corpus) != len(snap.Matrix) {
		return fmt.Errorf("corpus/matrix length mismatch: %w", domain.ErrSnapshotUnavailable)
	}

	s.current.Store(&indexState{model: snap.Model, matrix: snap.Matrix, corpus: snap.Corpus})
	logger.Info("Loaded snapshot: %d questions (%d terms)", len(snap.Corpus), snap.Model.Dimensions())
	return nil
}

// ready returns the current index state, lazily trying load-then-build
// on a cold start. Returns nil when neither works.
func (s *RetrievalService) ready(ctx context.Context) *indexState {
	if st := s.current.Load(); st != nil {
		return st
	}

	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	// Another caller may have got here first.
	if st := s.current.Load(); st != nil {
		return st
	}
	if err := s.loadLocked(ctx); err != nil {
		logger.Debug("Snapshot load failed: %v", err)
		if err := s.buildLocked(ctx); err != nil {
			logger.Error("Index unavailable: %v", err)
			return nil
		}
	}
	return s.current.Load()
}

// SearchSimilar returns the questions most similar to the query, best
// first. It never fails towards the caller: with no index and no way
// to build one, the result is empty.
func (s *RetrievalService) SearchSimilar(ctx context.Context, query string, topK int) []domain.SimilarQuestion {
	st := s.ready(ctx)
	if st == nil {
		return []domain.SimilarQuestion{}
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	qv, err := st.model.Transform(markup.Clean(query))
	if err != nil {
		logger.Error("Query transform failed: %v", err)
		return []domain.SimilarQuestion{}
	}

	hits := vectorspace.TopK(qv, st.matrix, topK, s.opts.MinSimilarity)
	logger.Debug("Search %q: %d hits", query, len(hits))

	results := make([]domain.SimilarQuestion, len(hits))
	for i, hit := range hits {
		results[i] = domain.SimilarQuestion{
			Document:   st.corpus[hit.Row],
			Similarity: hit.Score,
		}
	}
	return results
}

// ContextForChat returns at most maxContext shaped context items for
// prompt construction: truncated description, first answers only and
// a forum-relative link.
func (s *RetrievalService) ContextForChat(ctx context.Context, query string, maxContext int) []domain.ChatContext {
	if maxContext <= 0 {
		maxContext = DefaultMaxContext
	}

	similar := s.SearchSimilar(ctx, query, maxContext)
	items := make([]domain.ChatContext, len(similar))
	for i, sq := range similar {
		answers := sq.Answers
		if len(answers) > s.opts.ContextAnswerLimit {
			answers = answers[:s.opts.ContextAnswerLimit]
		}
		items[i] = domain.ChatContext{
			QuestionID:  sq.ID,
			Title:       sq.Title,
			Description: truncate(sq.Description, s.opts.ContextDescriptionLimit),
			Answers:     answers,
			Link:        fmt.Sprintf("/question/%d", sq.ID),
			Similarity:  sq.Similarity,
		}
	}
	return items
}

// UpdateQuestion re-indexes after a question changed. There is no
// incremental path; the whole index is rebuilt.
func (s *RetrievalService) UpdateQuestion(ctx context.Context, questionID int64) error {
	logger.Debug("Question %d updated, rebuilding index", questionID)
	return s.BuildIndex(ctx)
}

// DeleteQuestion re-indexes after a question was removed. There is no
// incremental path; the whole index is rebuilt.
func (s *RetrievalService) DeleteQuestion(ctx context.Context, questionID int64) error {
	logger.Debug("Question %d deleted, rebuilding index", questionID)
	return s.BuildIndex(ctx)
}

// IndexedQuestions returns how many questions the current index holds.
// Zero means no index is loaded.
func (s *RetrievalService) IndexedQuestions() int {
	st := s.current.Load()
	if st == nil {
		return 0
	}
	return len(st.corpus)
}

// truncate shortens s to at most limit runes, appending an ellipsis
// marker when something was cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
