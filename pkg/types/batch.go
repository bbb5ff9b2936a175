// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CountsByCategory holds the per-category idea counts for a batch.
// The counts are supplied by the upstream generator and trusted as-is;
// they are not recomputed from the idea list and callers must not
// assume they always match len(IdeaIDs).
type CountsByCategory struct {
	Backlog      int `json:"backlog" yaml:"backlog"`
	Considerable int `json:"considerable" yaml:"considerable"`
	Promising    int `json:"promising" yaml:"promising"`
	Lucrative    int `json:"lucrative" yaml:"lucrative"`
}

// Batch is one day's generation run: a dated collection of ideas.
// ID and Date carry the same YYYY-MM-DD string; ID is the canonical key.
type Batch struct {
	// ID is the batch date, used as the primary key.
	ID string `json:"id" yaml:"id"`

	// Date duplicates ID for callers that read it as a date.
	Date string `json:"date" yaml:"date"`

	// CreatedAt is the generation timestamp (ISO 8601).
	CreatedAt string `json:"createdAt" yaml:"createdAt"`

	// Sources lists where the batch's papers came from. Entries are a
	// mix of topical tags ("cs.LG") and listing URLs; the two are only
	// told apart by a URL-prefix check at the presentation boundary.
	Sources []string `json:"sources" yaml:"sources"`

	// ResearchThemes is exactly three themes spotted in the batch.
	ResearchThemes []string `json:"researchThemes" yaml:"researchThemes"`

	// CountsByCategory is the per-category idea tally.
	CountsByCategory CountsByCategory `json:"countsByCategory" yaml:"countsByCategory"`

	// IdeaIDs lists the ids of the ideas in this batch. An id that does
	// not resolve to an idea is dropped when the batch's ideas are
	// fetched; the batch itself is still returned.
	IdeaIDs []string `json:"ideaIds" yaml:"ideaIds"`
}
