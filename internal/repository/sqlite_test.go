package repository

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MoayyadShahid/MVPXiv/internal/rowmap"
	"github.com/MoayyadShahid/MVPXiv/internal/schema"
	"github.com/MoayyadShahid/MVPXiv/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "content.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func jsonText(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func seedBatch(t *testing.T, s *Store, date, createdAt string) {
	t.Helper()
	_, err := s.db.Exec(
		`INSERT INTO batches (id, created_at, sources, research_themes,
			counts_backlog, counts_considerable, counts_promising, counts_lucrative)
		 VALUES (?, ?, ?, ?, 1, 0, 1, 0)`,
		date, createdAt,
		jsonText(t, []string{"cs.LG", "cs.MA"}),
		jsonText(t, []string{"theme one", "theme two", "theme three"}),
	)
	require.NoError(t, err)
}

type seedIdeaOpts struct {
	id            string
	batchDate     string
	category      string
	createdAt     string
	resumeBullets any // nil leaves the column NULL
	techStack     []string
}

func seedIdea(t *testing.T, s *Store, opts seedIdeaOpts) {
	t.Helper()

	techStack := opts.techStack
	if techStack == nil {
		techStack = []string{"PyTorch", "Qdrant", "FastAPI", "Redis", "Ray"}
	}
	var bullets any
	if opts.resumeBullets != nil {
		bullets = jsonText(t, opts.resumeBullets)
	}

	_, err := s.db.Exec(
		`INSERT INTO ideas (id, batch_date, category, startup_name, value_proposition,
			technical_core, implementation, tech_stack, resume_bullets, why_this_paper,
			paper_title, paper_url, paper_authors, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		opts.id, opts.batchDate, opts.category,
		"Startup "+opts.id[:8], "A value proposition.", "A technical core.",
		"An implementation plan.", jsonText(t, techStack), bullets,
		"Because the paper matters.",
		"A Paper Title", "https://arxiv.org/abs/2401.00001",
		jsonText(t, []string{"Jane Doe"}), opts.createdAt,
	)
	require.NoError(t, err)
}

func seedContent(t *testing.T, s *Store) {
	t.Helper()
	seedBatch(t, s, "2026-03-02", "2026-03-02T08:00:00Z")
	seedBatch(t, s, "2026-03-01", "2026-03-01T08:00:00Z")

	// Inserted out of creation order on purpose; fetches must sort.
	seedIdea(t, s, seedIdeaOpts{
		id: "b2c3d4e5-f6a7-4b8c-9d0e-1f2a3b4c5d6e", batchDate: "2026-03-02",
		category: "PROMISING", createdAt: "2026-03-02T09:00:00Z",
		resumeBullets: []string{"one", "two", "three"},
	})
	seedIdea(t, s, seedIdeaOpts{
		id: "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d", batchDate: "2026-03-02",
		category: "LUCRATIVE", createdAt: "2026-03-02T08:30:00Z",
		resumeBullets: []string{"one", "two", "three"},
	})
	seedIdea(t, s, seedIdeaOpts{
		id: "c3d4e5f6-a7b8-4c9d-0e1f-2a3b4c5d6e7f", batchDate: "2026-03-01",
		category: "BACKLOG", createdAt: "2026-03-01T08:30:00Z",
		resumeBullets: []string{"one", "two", "three"},
	})
}

func TestStore_LatestBatch(t *testing.T) {
	s := testStore(t)
	seedContent(t, s)

	bwi, err := s.LatestBatch(context.Background())
	require.NoError(t, err)
	require.NotNil(t, bwi)

	assert.Equal(t, "2026-03-02", bwi.Batch.Date)
	require.Len(t, bwi.Ideas, 2)
	assert.Equal(t, "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d", bwi.Ideas[0].ID)
	assert.Equal(t, "b2c3d4e5-f6a7-4b8c-9d0e-1f2a3b4c5d6e", bwi.Ideas[1].ID)
	assert.Equal(t, []string{
		"a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d",
		"b2c3d4e5-f6a7-4b8c-9d0e-1f2a3b4c5d6e",
	}, bwi.Batch.IdeaIDs)
}

func TestStore_LatestBatchEmptyStore(t *testing.T) {
	s := testStore(t)

	bwi, err := s.LatestBatch(context.Background())
	require.NoError(t, err)
	assert.Nil(t, bwi)
}

func TestStore_Batches(t *testing.T) {
	s := testStore(t)
	seedContent(t, s)

	batches, err := s.Batches(context.Background())
	require.NoError(t, err)
	require.Len(t, batches, 2)

	assert.Equal(t, "2026-03-02", batches[0].Date)
	assert.Equal(t, "2026-03-01", batches[1].Date)
	assert.Len(t, batches[0].IdeaIDs, 2)
	assert.Len(t, batches[1].IdeaIDs, 1)
	assert.Equal(t, types.CountsByCategory{Backlog: 1, Promising: 1}, batches[0].CountsByCategory)
}

func TestStore_BatchByDate(t *testing.T) {
	s := testStore(t)
	seedContent(t, s)

	bwi, err := s.BatchByDate(context.Background(), "2026-03-01")
	require.NoError(t, err)

	assert.Equal(t, "2026-03-01", bwi.Batch.ID)
	assert.Equal(t, []string{"theme one", "theme two", "theme three"}, bwi.Batch.ResearchThemes)
	require.Len(t, bwi.Ideas, 1)
	assert.Equal(t, types.CategoryBacklog, bwi.Ideas[0].Category)
}

func TestStore_BatchByDateNotFound(t *testing.T) {
	s := testStore(t)
	seedContent(t, s)

	_, err := s.BatchByDate(context.Background(), "1999-01-01")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStore_IdeaByID(t *testing.T) {
	s := testStore(t)
	seedContent(t, s)

	idea, err := s.IdeaByID(context.Background(), "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d")
	require.NoError(t, err)

	assert.Equal(t, types.CategoryLucrative, idea.Category)
	assert.Equal(t, [3]string{"one", "two", "three"}, idea.ResumeBullets)
	assert.Equal(t, []string{"Jane Doe"}, idea.Paper.Authors)
	// Columns left NULL map to absent, not empty.
	assert.Nil(t, idea.Paper.Abstract)
	assert.Nil(t, idea.Paper.ArxivID)
	assert.Nil(t, idea.Paper.PrimaryCategory)
}

func TestStore_IdeaByIDNotFound(t *testing.T) {
	s := testStore(t)
	seedContent(t, s)

	_, err := s.IdeaByID(context.Background(), "00000000-0000-4000-8000-000000000000")
	require.ErrorIs(t, err, ErrNotFound)
}

// A NULL resume_bullets column maps to three empty bullets.
func TestStore_NullResumeBullets(t *testing.T) {
	s := testStore(t)
	seedBatch(t, s, "2026-03-05", "2026-03-05T08:00:00Z")
	seedIdea(t, s, seedIdeaOpts{
		id: "d4e5f6a7-b8c9-4d0e-1f2a-3b4c5d6e7f8a", batchDate: "2026-03-05",
		category: "CONSIDERABLE", createdAt: "2026-03-05T08:30:00Z",
	})

	idea, err := s.IdeaByID(context.Background(), "d4e5f6a7-b8c9-4d0e-1f2a-3b4c5d6e7f8a")
	require.NoError(t, err)
	assert.Equal(t, [3]string{"", "", ""}, idea.ResumeBullets)
}

// The validating wrapper applies the strict schema to store-fetched
// records the same way it does to fixture records.
func TestStore_ValidatedRejectsCorruptRow(t *testing.T) {
	s := testStore(t)
	seedBatch(t, s, "2026-03-05", "2026-03-05T08:00:00Z")
	seedIdea(t, s, seedIdeaOpts{
		id: "e5f6a7b8-c9d0-4e1f-2a3b-4c5d6e7f8a9b", batchDate: "2026-03-05",
		category: "PROMISING", createdAt: "2026-03-05T08:30:00Z",
		resumeBullets: []string{"one", "two", "three"},
		techStack:     []string{"PyTorch", "Redis"},
	})

	repo := Validated(s)

	_, err := repo.IdeaByID(context.Background(), "e5f6a7b8-c9d0-4e1f-2a3b-4c5d6e7f8a9b")
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "techStack", verr.Field)
	assert.Equal(t, schema.RuleCardinality, verr.Rule)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestStore_ValidatedAcceptsCleanRows(t *testing.T) {
	s := testStore(t)
	seedContent(t, s)
	repo := Validated(s)
	ctx := context.Background()

	bwi, err := repo.LatestBatch(ctx)
	require.NoError(t, err)
	require.NotNil(t, bwi)

	batches, err := repo.Batches(ctx)
	require.NoError(t, err)
	assert.Len(t, batches, 2)
}

// Generic row scanning keeps TEXT as string and INTEGER as int64, the
// shapes the mapper coerces from.
func TestStore_QueryRowsShapes(t *testing.T) {
	s := testStore(t)
	seedBatch(t, s, "2026-03-02", "2026-03-02T08:00:00Z")

	row, err := s.queryOneRow(context.Background(), `SELECT * FROM batches LIMIT 1`)
	require.NoError(t, err)
	require.NotNil(t, row)

	assert.IsType(t, "", row["id"])
	assert.IsType(t, int64(0), row["counts_backlog"])

	_, err = rowmap.Batch(row, nil)
	require.NoError(t, err)
}
