// Package memory provides a mutex-guarded in-memory catalog, used by tests
// and by the --in-memory server mode.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mvaldesr/quizline/internal/catalog"
)

// Store implements catalog.Catalog backed by a map.
type Store struct {
	mu      sync.RWMutex
	quizzes map[int64]catalog.Quiz
	nextID  int64
}

// New creates an empty in-memory catalog.
func New() *Store {
	return &Store{
		quizzes: make(map[int64]catalog.Quiz),
		nextID:  1,
	}
}

// Create validates and stores a new quiz.
func (s *Store) Create(_ context.Context, question, answer string) (*catalog.Quiz, error) {
	if err := catalog.Validate(question, answer); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	quiz := catalog.Quiz{
		ID:        s.nextID,
		Question:  question,
		Answer:    answer,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextID++
	s.quizzes[quiz.ID] = quiz

	out := quiz
	return &out, nil
}

// GetByID retrieves one quiz by id.
func (s *Store) GetByID(_ context.Context, id int64) (*catalog.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quiz, ok := s.quizzes[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	out := quiz
	return &out, nil
}

// List returns copies of all quizzes.
func (s *Store) List(_ context.Context) ([]*catalog.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quizzes := make([]*catalog.Quiz, 0, len(s.quizzes))
	for _, quiz := range s.quizzes {
		out := quiz
		quizzes = append(quizzes, &out)
	}
	return quizzes, nil
}

// Count returns the number of stored quizzes.
func (s *Store) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.quizzes)), nil
}

// DeleteByID removes one quiz.
func (s *Store) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.quizzes[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(s.quizzes, id)
	return nil
}

// Save persists edited question/answer fields. Last writer wins.
func (s *Store) Save(_ context.Context, quiz *catalog.Quiz) error {
	if err := catalog.Validate(quiz.Question, quiz.Answer); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.quizzes[quiz.ID]
	if !ok {
		return catalog.ErrNotFound
	}
	stored.Question = quiz.Question
	stored.Answer = quiz.Answer
	stored.UpdatedAt = time.Now()
	s.quizzes[quiz.ID] = stored
	return nil
}

// Close is a no-op for the in-memory catalog.
func (s *Store) Close() error {
	return nil
}

// Ensure Store implements catalog.Catalog
var _ catalog.Catalog = (*Store)(nil)
