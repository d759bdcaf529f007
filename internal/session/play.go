package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/mvaldesr/quizline/internal/catalog"
	"github.com/mvaldesr/quizline/internal/console"
)

// round holds the transient play-through state: the ids not yet asked and
// the score so far. It exists only while handlePlay runs.
type round struct {
	remaining []int64
	score     int
}

// draw removes and returns one id chosen uniformly at random.
// Index-based swap-removal guarantees sampling without replacement.
func (r *round) draw(rng *rand.Rand) int64 {
	idx := rng.IntN(len(r.remaining))
	id := r.remaining[idx]
	last := len(r.remaining) - 1
	r.remaining[idx] = r.remaining[last]
	r.remaining = r.remaining[:last]
	return id
}

// handlePlay runs the game state machine to completion: snapshot the
// catalog, ask random questions until the first wrong answer or exhaustion,
// then report the score and hand control back to the prompt loop.
func handlePlay(ctx context.Context, s *Session, _ string) error {
	quizzes, err := s.catalog.List(ctx)
	if err != nil {
		return err
	}

	r := round{remaining: make([]int64, 0, len(quizzes))}
	for _, quiz := range quizzes {
		r.remaining = append(r.remaining, quiz.ID)
	}

	for len(r.remaining) > 0 {
		id := r.draw(s.rng)

		quiz, err := s.catalog.GetByID(ctx, id)
		if errors.Is(err, catalog.ErrNotFound) {
			// Deleted by another session since the snapshot; skip it.
			continue
		}
		if err != nil {
			return err
		}

		answer, err := s.prompter.Ask(ctx, fmt.Sprintf(" %s : ", quiz.Question))
		if err != nil {
			return err
		}

		if !answersMatch(answer, quiz.Answer) {
			s.printer.Tagged(console.TagRed, "Incorrect.")
			s.finishRound(r.score)
			return nil
		}

		r.score++
		s.printer.Tagged(console.TagGreen, fmt.Sprintf("Correct - %d point(s) so far.", r.score))
	}

	s.printer.Tagged(console.TagRed, "Nothing left to ask.")
	s.finishRound(r.score)
	return nil
}

// finishRound reports the final score in plain and banner form. The round's
// state is discarded by the caller returning.
func (s *Session) finishRound(score int) {
	s.printer.Linef("End of the round. Score: %d", score)
	s.printer.Banner(strconv.Itoa(score), console.TagMagenta)
}

// answersMatch compares a given answer against the stored one: equality
// after trimming and lowercasing, nothing looser.
func answersMatch(given, stored string) bool {
	return strings.ToLower(strings.TrimSpace(given)) == strings.ToLower(strings.TrimSpace(stored))
}
