package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MoayyadShahid/MVPXiv/pkg/types"
)

func TestNew_FixtureBackend(t *testing.T) {
	repo, err := New(types.RepositoryConfig{UseFixture: true})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	bwi, err := repo.LatestBatch(context.Background())
	require.NoError(t, err)
	require.NotNil(t, bwi)
	assert.Equal(t, "2026-02-19", bwi.Batch.Date)
}

func TestNew_StoreBackend(t *testing.T) {
	repo, err := New(types.RepositoryConfig{
		DatabasePath: filepath.Join(t.TempDir(), "content.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	// Fresh database: the empty state is a value, not an error.
	bwi, err := repo.LatestBatch(context.Background())
	require.NoError(t, err)
	assert.Nil(t, bwi)

	batches, err := repo.Batches(context.Background())
	require.NoError(t, err)
	assert.Empty(t, batches)
}

// Both backends answer the same interface; tests can stand them up side
// by side because the backend choice is plain configuration, not
// ambient state.
func TestNew_BackendsSideBySide(t *testing.T) {
	fixture, err := New(types.RepositoryConfig{UseFixture: true})
	require.NoError(t, err)
	t.Cleanup(func() { fixture.Close() })

	store, err := New(types.RepositoryConfig{
		DatabasePath: filepath.Join(t.TempDir(), "content.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()

	_, err = fixture.BatchByDate(ctx, "1999-01-01")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = store.BatchByDate(ctx, "1999-01-01")
	require.ErrorIs(t, err, ErrNotFound)
}
