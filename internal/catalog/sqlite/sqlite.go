package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mvaldesr/quizline/internal/catalog"
)

const schema = `
CREATE TABLE IF NOT EXISTS quizzes (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	question   TEXT NOT NULL,
	answer     TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Store implements catalog.Catalog for SQLite.
type Store struct {
	db *sql.DB
}

// New opens (or creates) a SQLite catalog at dbPath and applies the schema.
func New(dbPath string) (*Store, error) {
	return NewWithSetup(dbPath, func(db *sql.DB) error {
		_, err := db.Exec(schema)
		return err
	})
}

// NewWithSetup opens a SQLite catalog and runs a setup function.
// Useful for tests to apply an alternative schema.
func NewWithSetup(dbPath string, setup func(*sql.DB) error) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite works best with a single connection; this also serializes
	// concurrent writes from independent sessions.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if setup != nil {
		if err := setup(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("setup: %w", err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create validates and inserts a new quiz.
func (s *Store) Create(ctx context.Context, question, answer string) (*catalog.Quiz, error) {
	if err := catalog.Validate(question, answer); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO quizzes (question, answer)
		VALUES (?, ?)
	`
	result, err := s.db.ExecContext(ctx, query, question, answer)
	if err != nil {
		return nil, fmt.Errorf("insert quiz: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

// GetByID retrieves one quiz by id.
func (s *Store) GetByID(ctx context.Context, id int64) (*catalog.Quiz, error) {
	query := `
		SELECT id, question, answer, created_at, updated_at
		FROM quizzes
		WHERE id = ?
	`
	var quiz catalog.Quiz
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&quiz.ID,
		&quiz.Question,
		&quiz.Answer,
		&quiz.CreatedAt,
		&quiz.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalog.ErrNotFound
		}
		return nil, fmt.Errorf("query quiz: %w", err)
	}

	return &quiz, nil
}

// List returns all quizzes ordered by id.
func (s *Store) List(ctx context.Context) ([]*catalog.Quiz, error) {
	query := `
		SELECT id, question, answer, created_at, updated_at
		FROM quizzes
		ORDER BY id ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query quizzes: %w", err)
	}
	defer rows.Close()

	var quizzes []*catalog.Quiz
	for rows.Next() {
		var quiz catalog.Quiz
		if err := rows.Scan(&quiz.ID, &quiz.Question, &quiz.Answer, &quiz.CreatedAt, &quiz.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		quizzes = append(quizzes, &quiz)
	}

	return quizzes, rows.Err()
}

// Count returns the number of stored quizzes.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quizzes`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count quizzes: %w", err)
	}
	return n, nil
}

// DeleteByID removes one quiz.
func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM quizzes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete quiz: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// Save persists edited question/answer fields. Last writer wins.
func (s *Store) Save(ctx context.Context, quiz *catalog.Quiz) error {
	if err := catalog.Validate(quiz.Question, quiz.Answer); err != nil {
		return err
	}

	query := `
		UPDATE quizzes
		SET question = ?, answer = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	result, err := s.db.ExecContext(ctx, query, quiz.Question, quiz.Answer, quiz.ID)
	if err != nil {
		return fmt.Errorf("update quiz: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// Ensure Store implements catalog.Catalog
var _ catalog.Catalog = (*Store)(nil)
