package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaldesr/quizline/internal/catalog"
)

func TestCreateGetSaveDelete(t *testing.T) {
	s := New()
	ctx := context.Background()

	quiz, err := s.Create(ctx, "2+2", "4")
	require.NoError(t, err)
	assert.Equal(t, int64(1), quiz.ID)

	got, err := s.GetByID(ctx, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, "2+2", got.Question)
	assert.Equal(t, "4", got.Answer)

	got.Question = "3+3"
	got.Answer = "6"
	require.NoError(t, s.Save(ctx, got))

	saved, err := s.GetByID(ctx, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, "3+3", saved.Question)
	assert.Equal(t, "6", saved.Answer)

	require.NoError(t, s.DeleteByID(ctx, quiz.ID))
	assert.ErrorIs(t, s.DeleteByID(ctx, quiz.ID), catalog.ErrNotFound)

	_, err = s.GetByID(ctx, quiz.ID)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestValidationMirrorsSqlite(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Create(ctx, "", "answer")
	verr, ok := catalog.AsValidation(err)
	require.True(t, ok, "expected ValidationError, got %v", err)
	assert.Len(t, verr.Messages, 1)
}

func TestReturnedQuizzesDoNotAliasStoreState(t *testing.T) {
	s := New()
	ctx := context.Background()

	quiz, err := s.Create(ctx, "question", "answer")
	require.NoError(t, err)

	// Mutating a returned record without Save must not leak into the store.
	quiz.Answer = "tampered"

	got, err := s.GetByID(ctx, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, "answer", got.Answer)
}

func TestConcurrentCreates(t *testing.T) {
	s := New()
	ctx := context.Background()

	const perWorker = 25
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, err := s.Create(ctx, "question", "answer")
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4*perWorker), n)

	// Every id was assigned exactly once.
	quizzes, err := s.List(ctx)
	require.NoError(t, err)
	seen := make(map[int64]bool)
	for _, q := range quizzes {
		assert.False(t, seen[q.ID], "duplicate id %d", q.ID)
		seen[q.ID] = true
	}
}
