package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MoayyadShahid/MVPXiv/internal/repository"
	"github.com/MoayyadShahid/MVPXiv/internal/schema"
	"github.com/MoayyadShahid/MVPXiv/pkg/types"
)

func fixtureRouter(t *testing.T) http.Handler {
	t.Helper()
	repo, err := repository.New(types.RepositoryConfig{UseFixture: true})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return NewRouter(repo, zap.NewNop())
}

func doGet(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doGet(t, fixtureRouter(t), "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLatestBatch(t *testing.T) {
	rec := doGet(t, fixtureRouter(t), "/api/batches/latest")
	require.Equal(t, http.StatusOK, rec.Code)

	var body repository.BatchWithIdeas
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "2026-02-19", body.Batch.Date)
	assert.Len(t, body.Ideas, 7)
}

func TestListBatches(t *testing.T) {
	rec := doGet(t, fixtureRouter(t), "/api/batches")
	require.Equal(t, http.StatusOK, rec.Code)

	var batches []types.Batch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &batches))
	require.Len(t, batches, 3)
	assert.Equal(t, "2026-02-19", batches[0].Date)
	assert.Equal(t, "2026-02-17", batches[2].Date)
}

func TestBatchByDate(t *testing.T) {
	rec := doGet(t, fixtureRouter(t), "/api/batches/2026-02-18")
	require.Equal(t, http.StatusOK, rec.Code)

	var body repository.BatchWithIdeas
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Batch.IdeaIDs, 6)
	assert.Len(t, body.Ideas, 5)
}

func TestBatchByDateNotFound(t *testing.T) {
	rec := doGet(t, fixtureRouter(t), "/api/batches/1999-01-01")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIdeaByID(t *testing.T) {
	rec := doGet(t, fixtureRouter(t), "/api/ideas/a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d")
	require.Equal(t, http.StatusOK, rec.Code)

	var idea types.Idea
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &idea))
	assert.Equal(t, types.CategoryLucrative, idea.Category)
	assert.Equal(t, "RAGForge", idea.StartupName)
}

func TestIdeaByIDNotFound(t *testing.T) {
	rec := doGet(t, fixtureRouter(t), "/api/ideas/00000000-0000-4000-8000-000000000000")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// failingRepo returns the configured error from every operation.
type failingRepo struct {
	err error
}

func (f *failingRepo) LatestBatch(context.Context) (*repository.BatchWithIdeas, error) {
	return nil, f.err
}
func (f *failingRepo) Batches(context.Context) ([]types.Batch, error)       { return nil, f.err }
func (f *failingRepo) BatchByDate(context.Context, string) (*repository.BatchWithIdeas, error) {
	return nil, f.err
}
func (f *failingRepo) IdeaByID(context.Context, string) (*types.Idea, error) { return nil, f.err }
func (f *failingRepo) Close() error                                          { return nil }

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "validation failure is unprocessable",
			err:  &schema.ValidationError{Field: "techStack", Rule: schema.RuleCardinality},
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "backend failure is bad gateway",
			err:  &repository.BackendError{Op: "fetching batches", Err: errors.New("disk gone")},
			want: http.StatusBadGateway,
		},
		{
			name: "unknown error is internal",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(&failingRepo{err: tt.err}, zap.NewNop())
			rec := doGet(t, router, "/api/batches")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
