// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package repository

import (
	"context"
	_ "embed"
	"fmt"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/MoayyadShahid/MVPXiv/pkg/types"
)

//go:embed fixture.yaml
var fixtureYAML []byte

// Fixture serves the embedded hand-authored dataset through the same
// four operations as the SQL store. It backs local development and
// deployments that run without a database.
type Fixture struct {
	batches []types.Batch // sorted by descending date
	ideas   map[string]types.Idea
}

// NewFixture parses the embedded dataset. Batches are sorted
// newest-first once here; the dataset never changes afterwards.
func NewFixture() (*Fixture, error) {
	var data struct {
		Batches []types.Batch `yaml:"batches"`
		Ideas   []types.Idea  `yaml:"ideas"`
	}
	if err := yaml.Unmarshal(fixtureYAML, &data); err != nil {
		return nil, fmt.Errorf("parsing fixture data: %w", err)
	}

	sort.Slice(data.Batches, func(i, j int) bool {
		return data.Batches[i].Date > data.Batches[j].Date
	})

	ideas := make(map[string]types.Idea, len(data.Ideas))
	for _, idea := range data.Ideas {
		ideas[idea.ID] = idea
	}

	return &Fixture{batches: data.Batches, ideas: ideas}, nil
}

// LatestBatch returns the batch with the greatest date and its resolved
// ideas, or (nil, nil) when the dataset is empty.
func (f *Fixture) LatestBatch(ctx context.Context) (*BatchWithIdeas, error) {
	if len(f.batches) == 0 {
		return nil, nil
	}
	batch := f.batches[0]
	return &BatchWithIdeas{Batch: batch, Ideas: f.resolveIdeas(batch)}, nil
}

// Batches returns all batches ordered by descending date.
func (f *Fixture) Batches(ctx context.Context) ([]types.Batch, error) {
	out := make([]types.Batch, len(f.batches))
	copy(out, f.batches)
	return out, nil
}

// BatchByDate returns the batch with the given date and its resolved
// ideas. A date with no batch wraps ErrNotFound.
func (f *Fixture) BatchByDate(ctx context.Context, date string) (*BatchWithIdeas, error) {
	for _, batch := range f.batches {
		if batch.Date == date {
			return &BatchWithIdeas{Batch: batch, Ideas: f.resolveIdeas(batch)}, nil
		}
	}
	return nil, fmt.Errorf("batch %s: %w", date, ErrNotFound)
}

// IdeaByID returns the idea with the given id, or wraps ErrNotFound.
func (f *Fixture) IdeaByID(ctx context.Context, id string) (*types.Idea, error) {
	idea, ok := f.ideas[id]
	if !ok {
		return nil, fmt.Errorf("idea %s: %w", id, ErrNotFound)
	}
	return &idea, nil
}

// Close is a no-op; the fixture holds no resources.
func (f *Fixture) Close() error {
	return nil
}

// resolveIdeas maps a batch's IdeaIDs to ideas, sorted by ascending
// CreatedAt. An id that does not resolve, or resolves to an idea from
// another batch, is dropped silently: a stale id must not fail the
// whole batch fetch.
func (f *Fixture) resolveIdeas(batch types.Batch) []types.Idea {
	ideas := make([]types.Idea, 0, len(batch.IdeaIDs))
	for _, id := range batch.IdeaIDs {
		idea, ok := f.ideas[id]
		if !ok || idea.BatchDate != batch.Date {
			continue
		}
		ideas = append(ideas, idea)
	}
	sort.Slice(ideas, func(i, j int) bool {
		return ideas[i].CreatedAt < ideas[j].CreatedAt
	})
	return ideas
}
