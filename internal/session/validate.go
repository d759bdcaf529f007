package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mvaldesr/quizline/internal/catalog"
)

// parseID turns a raw command argument into a usable quiz id.
// No side effects; shared by every id-taking command.
func parseID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrMissingArgument
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, raw)
	}
	return id, nil
}

// requireQuiz validates the raw id argument and fetches the record,
// mapping an absent id to the uniform "no such quiz" error.
func (s *Session) requireQuiz(ctx context.Context, raw string) (*catalog.Quiz, error) {
	id, err := parseID(raw)
	if err != nil {
		return nil, err
	}
	quiz, err := s.catalog.GetByID(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		return nil, errNoSuchID(id)
	}
	if err != nil {
		return nil, err
	}
	return quiz, nil
}
