package catalog

import (
	"context"
	"strings"
	"time"
)

// Quiz is one question/answer record.
type Quiz struct {
	ID        int64
	Question  string
	Answer    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Catalog is the store of quiz records shared by all sessions.
// Implementations must tolerate concurrent calls; conflicting edits to the
// same record resolve last-writer-wins, never a partially written record.
type Catalog interface {
	// Create validates and stores a new quiz, returning it with its assigned ID.
	Create(ctx context.Context, question, answer string) (*Quiz, error)

	// GetByID retrieves one quiz. Returns ErrNotFound when absent.
	GetByID(ctx context.Context, id int64) (*Quiz, error)

	// List returns all quizzes. Order is not significant.
	List(ctx context.Context) ([]*Quiz, error)

	// Count returns the number of stored quizzes.
	Count(ctx context.Context) (int64, error)

	// DeleteByID removes one quiz. Returns ErrNotFound when absent.
	DeleteByID(ctx context.Context, id int64) error

	// Save persists in-place edits to Question and Answer.
	// Returns ErrNotFound when the record no longer exists.
	Save(ctx context.Context, quiz *Quiz) error

	// Close releases the underlying storage.
	Close() error
}

// Validate checks a question/answer pair the way every implementation must,
// collecting one message per violated rule.
func Validate(question, answer string) error {
	var verr ValidationError
	if strings.TrimSpace(question) == "" {
		verr.Messages = append(verr.Messages, "question must not be empty")
	}
	if strings.TrimSpace(answer) == "" {
		verr.Messages = append(verr.Messages, "answer must not be empty")
	}
	if len(verr.Messages) > 0 {
		return &verr
	}
	return nil
}
