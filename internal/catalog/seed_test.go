package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaldesr/quizline/internal/catalog"
	"github.com/mvaldesr/quizline/internal/catalog/memory"
)

func TestSeedPopulatesEmptyCatalog(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	created, err := catalog.Seed(ctx, s, "")
	require.NoError(t, err)
	assert.Greater(t, created, 0)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(created), n)
}

func TestSeedSkipsNonEmptyCatalog(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	_, err := s.Create(ctx, "existing", "quiz")
	require.NoError(t, err)

	created, err := catalog.Seed(ctx, s, "")
	require.NoError(t, err)
	assert.Zero(t, created)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSeedFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	data := `
- question: "2+2"
  answer: "4"
- question: "Capital of France"
  answer: "Paris"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	s := memory.New()
	ctx := context.Background()

	created, err := catalog.Seed(ctx, s, path)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	quizzes, err := s.List(ctx)
	require.NoError(t, err)
	questions := make(map[string]string)
	for _, q := range quizzes {
		questions[q.Question] = q.Answer
	}
	assert.Equal(t, "4", questions["2+2"])
	assert.Equal(t, "Paris", questions["Capital of France"])
}

func TestLoadSeedFileMissing(t *testing.T) {
	_, err := catalog.LoadSeedFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
