// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rowmap converts flat persisted-store rows (snake_case column
// names, lists stored as JSON text) into domain values. Mapping is
// deliberately permissive: missing optional fields fall back to
// documented defaults and never fail. Only a required field that is
// absent or of the wrong type produces an error, and that error is a
// MappingError, distinct from a schema validation failure.
package rowmap

import (
	"encoding/json"
	"fmt"

	"github.com/MoayyadShahid/MVPXiv/pkg/types"
)

// Row is one persisted record as scanned from the store: column name to
// driver value.
type Row = map[string]any

// defaultSources is used when a batch row has no sources column. The
// upstream generator always reads these two arXiv listings.
var defaultSources = []string{"cs.LG", "cs.MA"}

// MappingError reports a required row field that was absent or could
// not be coerced to its expected type. It indicates schema drift
// between the store and this code, not bad content.
type MappingError struct {
	Field string
	Want  string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping failed: row field %s missing or not a %s", e.Field, e.Want)
}

// requiredString returns the row field as a string, or a MappingError
// if it is absent, null, or not text.
func requiredString(row Row, field string) (string, error) {
	v, ok := row[field]
	if !ok || v == nil {
		return "", &MappingError{Field: field, Want: "string"}
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	}
	return "", &MappingError{Field: field, Want: "string"}
}

// optionalString returns the row field as a *string, or nil when the
// field is absent, null, or not text.
func optionalString(row Row, field string) *string {
	v, ok := row[field]
	if !ok || v == nil {
		return nil
	}
	switch s := v.(type) {
	case string:
		return &s
	case []byte:
		str := string(s)
		return &str
	}
	return nil
}

// stringList decodes the row field into a []string. It accepts a Go
// string slice, a generic slice, or JSON text (how the store persists
// lists). Anything else, including absence, yields nil.
func stringList(row Row, field string) []string {
	v, ok := row[field]
	if !ok || v == nil {
		return nil
	}
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return decodeJSONList([]byte(list))
	case []byte:
		return decodeJSONList(list)
	}
	return nil
}

func decodeJSONList(data []byte) []string {
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

// intField returns the row field as an int, defaulting to 0 when the
// field is absent or not numeric.
func intField(row Row, field string) int {
	switch n := row[field].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

// Batch maps a batches row into a domain Batch. ideaIDs is supplied by
// the caller, which knows which idea rows belong to the batch; the
// batches table itself does not store them.
func Batch(row Row, ideaIDs []string) (types.Batch, error) {
	id, err := requiredString(row, "id")
	if err != nil {
		return types.Batch{}, err
	}
	createdAt, err := requiredString(row, "created_at")
	if err != nil {
		return types.Batch{}, err
	}

	sources := stringList(row, "sources")
	if sources == nil {
		sources = defaultSources
	}
	themes := stringList(row, "research_themes")
	if themes == nil {
		themes = []string{}
	}
	if ideaIDs == nil {
		ideaIDs = []string{}
	}

	return types.Batch{
		ID:             id,
		Date:           id,
		CreatedAt:      createdAt,
		Sources:        sources,
		ResearchThemes: themes,
		CountsByCategory: types.CountsByCategory{
			Backlog:      intField(row, "counts_backlog"),
			Considerable: intField(row, "counts_considerable"),
			Promising:    intField(row, "counts_promising"),
			Lucrative:    intField(row, "counts_lucrative"),
		},
		IdeaIDs: ideaIDs,
	}, nil
}

// Idea maps an ideas row into a domain Idea. resume_bullets is coerced
// to exactly three entries: padded with empty strings when short,
// truncated when long. The strict three-bullet invariant itself is the
// schema validator's job.
func Idea(row Row) (types.Idea, error) {
	var idea types.Idea

	for field, dst := range map[string]*string{
		"id":                &idea.ID,
		"batch_date":        &idea.BatchDate,
		"startup_name":      &idea.StartupName,
		"value_proposition": &idea.ValueProposition,
		"technical_core":    &idea.TechnicalCore,
		"implementation":    &idea.Implementation,
		"why_this_paper":    &idea.WhyThisPaper,
		"created_at":        &idea.CreatedAt,
	} {
		value, err := requiredString(row, field)
		if err != nil {
			return types.Idea{}, err
		}
		*dst = value
	}

	category, err := requiredString(row, "category")
	if err != nil {
		return types.Idea{}, err
	}
	idea.Category = types.Category(category)

	techStack := stringList(row, "tech_stack")
	if techStack == nil {
		techStack = []string{}
	}
	idea.TechStack = techStack

	bullets := stringList(row, "resume_bullets")
	for i := 0; i < 3 && i < len(bullets); i++ {
		idea.ResumeBullets[i] = bullets[i]
	}

	paper, err := paperFromRow(row)
	if err != nil {
		return types.Idea{}, err
	}
	idea.Paper = paper

	return idea, nil
}

// paperFromRow assembles the owned Paper from the flattened paper_*
// columns of an ideas row.
func paperFromRow(row Row) (types.Paper, error) {
	title, err := requiredString(row, "paper_title")
	if err != nil {
		return types.Paper{}, err
	}
	paperURL, err := requiredString(row, "paper_url")
	if err != nil {
		return types.Paper{}, err
	}

	paper := types.Paper{
		Title:       title,
		URL:         paperURL,
		Authors:     stringList(row, "paper_authors"),
		Abstract:    optionalString(row, "paper_abstract"),
		ArxivID:     optionalString(row, "paper_arxiv_id"),
		PublishedAt: optionalString(row, "paper_published_at"),
	}
	if s := optionalString(row, "paper_primary_category"); s != nil {
		cat := types.ArxivCategory(*s)
		paper.PrimaryCategory = &cat
	}
	return paper, nil
}
