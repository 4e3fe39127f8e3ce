package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokercoach/internal/classify"
	"github.com/lox/pokercoach/internal/lessons"
	"github.com/lox/pokercoach/internal/strategy"
)

func testLesson(id string, createdAt time.Time) lessons.Lesson {
	return lessons.Lesson{
		ID:        id,
		CreatedAt: createdAt,
		Summary:   "tighten up early",
		Adjustment: strategy.Adjustment{
			Source:       "Fold more from UTG",
			HandCategory: classify.Speculative,
			FoldDelta:    10,
			RaiseDelta:   -10,
			Active:       true,
		},
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lessons.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)

	// Empty store, no file yet
	items, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	older := testLesson("aaaa", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := testLesson("bbbb", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, s.Put(ctx, older, newer))

	items, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "bbbb", items[0].ID, "newest first")
	assert.Equal(t, classify.Speculative, items[0].HandCategory)
	assert.Equal(t, 10, items[0].FoldDelta)
}

func TestFileStoreSetActive(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "lessons.json"))
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, testLesson("aaaa", time.Now())))

	require.NoError(t, s.SetActive(ctx, "aaaa", false))

	items, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].Active)

	assert.ErrorIs(t, s.SetActive(ctx, "missing", true), ErrNotFound)
}

func TestFileStoreDelete(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "lessons.json"))
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, testLesson("aaaa", time.Now()), testLesson("bbbb", time.Now())))

	require.NoError(t, s.Delete(ctx, "aaaa"))

	items, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "bbbb", items[0].ID)

	assert.ErrorIs(t, s.Delete(ctx, "aaaa"), ErrNotFound)
}

func TestFileStoreCreatesParentDirectory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "lessons.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, testLesson("aaaa", time.Now())))

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lessons.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = s.List(context.Background())
	assert.Error(t, err)
}
