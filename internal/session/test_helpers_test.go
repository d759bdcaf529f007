package session

import (
	"bytes"
	"context"
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mvaldesr/quizline/internal/catalog"
	"github.com/mvaldesr/quizline/internal/catalog/memory"
	"github.com/mvaldesr/quizline/internal/console"
)

// scriptInput replays a fixed list of client lines, then reports EOF as a
// disconnect would.
type scriptInput struct {
	lines []string
	i     int
}

func (r *scriptInput) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.i >= len(r.lines) {
		return "", io.EOF
	}
	line := r.lines[r.i]
	r.i++
	return strings.TrimSpace(line), nil
}

// oracleInput plays a round: after the scripted prefix it answers whichever
// question was printed last, up to budget answers, then disconnects. This
// keeps play tests independent of draw order.
type oracleInput struct {
	prefix  []string
	i       int
	out     *bytes.Buffer
	answers map[string]string
	budget  int
}

func (r *oracleInput) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.i < len(r.prefix) {
		line := r.prefix[r.i]
		r.i++
		return line, nil
	}
	if r.budget == 0 {
		return "", io.EOF
	}
	r.budget--

	text := r.out.String()
	best, answer := -1, ""
	for question, a := range r.answers {
		if idx := strings.LastIndex(text, question); idx > best {
			best, answer = idx, a
		}
	}
	if best < 0 {
		return "", io.EOF
	}
	return answer, nil
}

func newTestSession(t *testing.T, cat catalog.Catalog, in LineReader) (*Session, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	return New(Config{
		Catalog: cat,
		Input:   in,
		Printer: console.NewPrinter(&buf, false),
		Logger:  zerolog.Nop(),
		Rand:    rand.New(rand.NewPCG(7, 11)),
	}), &buf
}

func seedQuizzes(t *testing.T, pairs map[string]string) *memory.Store {
	t.Helper()

	s := memory.New()
	for q, a := range pairs {
		if _, err := s.Create(context.Background(), q, a); err != nil {
			t.Fatalf("seed quiz %q: %v", q, err)
		}
	}
	return s
}

func promptCount(buf *bytes.Buffer) int {
	return strings.Count(buf.String(), promptText)
}
