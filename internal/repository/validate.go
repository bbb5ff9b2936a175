// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package repository

import (
	"context"
	"fmt"

	"github.com/MoayyadShahid/MVPXiv/internal/schema"
	"github.com/MoayyadShahid/MVPXiv/pkg/types"
)

// validated applies the strict schema to everything the inner backend
// returns. The original system only demonstrably validated its mock
// path; here both backends get the same strictness so a corrupt remote
// row can never slip past callers unnoticed.
type validated struct {
	inner Repository
}

// Validated wraps r so that every batch and idea it returns is checked
// against the strict schema. A violation surfaces as a
// *schema.ValidationError; nothing is repaired or dropped.
func Validated(r Repository) Repository {
	return &validated{inner: r}
}

func (v *validated) LatestBatch(ctx context.Context) (*BatchWithIdeas, error) {
	bwi, err := v.inner.LatestBatch(ctx)
	if err != nil || bwi == nil {
		return bwi, err
	}
	if err := validateBatchWithIdeas(bwi); err != nil {
		return nil, err
	}
	return bwi, nil
}

func (v *validated) Batches(ctx context.Context) ([]types.Batch, error) {
	batches, err := v.inner.Batches(ctx)
	if err != nil {
		return nil, err
	}
	for i := range batches {
		if err := schema.ValidateBatch(batches[i]); err != nil {
			return nil, fmt.Errorf("batch %s: %w", batches[i].ID, err)
		}
	}
	return batches, nil
}

func (v *validated) BatchByDate(ctx context.Context, date string) (*BatchWithIdeas, error) {
	bwi, err := v.inner.BatchByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if err := validateBatchWithIdeas(bwi); err != nil {
		return nil, err
	}
	return bwi, nil
}

func (v *validated) IdeaByID(ctx context.Context, id string) (*types.Idea, error) {
	idea, err := v.inner.IdeaByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := schema.ValidateIdea(*idea); err != nil {
		return nil, fmt.Errorf("idea %s: %w", id, err)
	}
	return idea, nil
}

func (v *validated) Close() error {
	return v.inner.Close()
}

func validateBatchWithIdeas(bwi *BatchWithIdeas) error {
	if err := schema.ValidateBatch(bwi.Batch); err != nil {
		return fmt.Errorf("batch %s: %w", bwi.Batch.ID, err)
	}
	for i := range bwi.Ideas {
		if err := schema.ValidateIdea(bwi.Ideas[i]); err != nil {
			return fmt.Errorf("idea %s: %w", bwi.Ideas[i].ID, err)
		}
	}
	return nil
}
