// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package repository is the content-access layer for batches and ideas.
// It exposes four read operations over two interchangeable backends: an
// embedded fixture dataset and a SQL store. The backend is chosen once,
// from configuration, when the repository is constructed; call sites
// never branch on it. Every record returned by either backend passes
// the strict schema in internal/schema before a caller sees it.
package repository

import (
	"context"
	"fmt"

	"github.com/MoayyadShahid/MVPXiv/pkg/types"
)

// BatchWithIdeas pairs a batch with its resolved ideas, ordered by
// ascending creation time.
type BatchWithIdeas struct {
	Batch types.Batch  `json:"batch" yaml:"batch"`
	Ideas []types.Idea `json:"ideas" yaml:"ideas"`
}

// Repository is the single entry point for content retrieval.
//
// LatestBatch returns (nil, nil) when the store holds no batches at
// all; that is an expected empty state, not an error. BatchByDate and
// IdeaByID report a missing key by wrapping ErrNotFound. Batches
// returns every batch newest-first, carrying idea ids but not resolved
// ideas; callers needing the ideas fetch the batch by date.
type Repository interface {
	LatestBatch(ctx context.Context) (*BatchWithIdeas, error)
	Batches(ctx context.Context) ([]types.Batch, error)
	BatchByDate(ctx context.Context, date string) (*BatchWithIdeas, error)
	IdeaByID(ctx context.Context, id string) (*types.Idea, error)
	Close() error
}

// New builds the repository selected by cfg: the fixture dataset when
// cfg.UseFixture is set, the SQLite store at cfg.DatabasePath
// otherwise. Both come wrapped in the validating layer.
func New(cfg types.RepositoryConfig) (Repository, error) {
	if cfg.UseFixture {
		f, err := NewFixture()
		if err != nil {
			return nil, fmt.Errorf("loading fixture dataset: %w", err)
		}
		return Validated(f), nil
	}

	store, err := OpenStore(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening content store: %w", err)
	}
	return Validated(store), nil
}
