package session

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvaldesr/quizline/internal/catalog/memory"
)

func TestPlayAsksEveryQuizExactlyOnce(t *testing.T) {
	cat := seedQuizzes(t, map[string]string{
		"2+2": "4",
		"3+3": "6",
	})

	in := &oracleInput{
		prefix:  []string{"play"},
		answers: map[string]string{"2+2": "4", "3+3": "6"},
		budget:  2,
	}
	sess, buf := newTestSession(t, cat, in)
	in.out = buf

	runSession(t, sess)

	out := buf.String()
	assert.Contains(t, out, "Nothing left to ask.")
	assert.Contains(t, out, "Score: 2")
	assert.Equal(t, 1, strings.Count(out, "2+2"))
	assert.Equal(t, 1, strings.Count(out, "3+3"))
}

func TestPlayEndsOnFirstWrongAnswer(t *testing.T) {
	cat := seedQuizzes(t, map[string]string{
		"2+2": "4",
		"3+3": "6",
	})

	in := &oracleInput{
		prefix:  []string{"play"},
		answers: map[string]string{"2+2": "nope", "3+3": "nope"},
		budget:  1,
	}
	sess, buf := newTestSession(t, cat, in)
	in.out = buf

	runSession(t, sess)

	out := buf.String()
	assert.Contains(t, out, "Incorrect.")
	assert.Contains(t, out, "Score: 0")
	assert.NotContains(t, out, "Nothing left to ask.")
	// Only the first drawn question was asked.
	asked := strings.Count(out, "2+2") + strings.Count(out, "3+3")
	assert.Equal(t, 1, asked)
}

func TestPlayScoreCountsCorrectAnswersBeforeTheMiss(t *testing.T) {
	cat := seedQuizzes(t, map[string]string{
		"2+2": "4",
		"3+3": "6",
		"4+4": "8",
	})

	// Answer the first two draws right and the third wrong.
	in := &oracleInput{
		prefix:  []string{"play"},
		answers: map[string]string{"2+2": "4", "3+3": "6", "4+4": "wrong"},
		budget:  3,
	}
	sess, buf := newTestSession(t, cat, in)
	in.out = buf

	runSession(t, sess)

	out := buf.String()
	// Either the wrong one came up early or both right ones first; the
	// score line always matches the number of Correct lines.
	correct := strings.Count(out, "Correct - ")
	if !strings.Contains(out, "Incorrect.") {
		t.Fatalf("expected the round to end on the planted wrong answer:\n%s", out)
	}
	assert.Contains(t, out, "Score: "+strconv.Itoa(correct))
}

func TestPlayOnEmptyCatalogEndsImmediately(t *testing.T) {
	sess, buf := newTestSession(t, memory.New(), &scriptInput{lines: []string{"play", "quit"}})

	runSession(t, sess)

	out := buf.String()
	assert.Contains(t, out, "Nothing left to ask.")
	assert.Contains(t, out, "Score: 0")
}

func TestAnswersMatch(t *testing.T) {
	tests := []struct {
		given, stored string
		want          bool
	}{
		{"paris", "Paris", true},
		{"  Paris  ", "paris", true},
		{"4 ", "4", true},
		{"FOUR", "4", false},
		{"", "x", false},
		{"", "", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, answersMatch(tt.given, tt.stored),
			"answersMatch(%q, %q)", tt.given, tt.stored)
	}
}
