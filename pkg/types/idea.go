// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the domain model shared across the repository,
// CLI, and HTTP API: batches of startup ideas derived from research
// papers. The types here are pure data; all behavior lives in the
// packages that consume them.
package types

// Category is the quality tier assigned to an idea, ordered from
// least to most promising.
type Category string

const (
	CategoryBacklog      Category = "BACKLOG"
	CategoryConsiderable Category = "CONSIDERABLE"
	CategoryPromising    Category = "PROMISING"
	CategoryLucrative    Category = "LUCRATIVE"
)

// CategoryOrder lists the categories in display order.
var CategoryOrder = []Category{
	CategoryBacklog,
	CategoryConsiderable,
	CategoryPromising,
	CategoryLucrative,
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryBacklog, CategoryConsiderable, CategoryPromising, CategoryLucrative:
		return true
	}
	return false
}

// ArxivCategory identifies the arXiv listing a paper was sourced from.
type ArxivCategory string

const (
	ArxivMachineLearning ArxivCategory = "cs.LG"
	ArxivMultiagent      ArxivCategory = "cs.MA"
)

// Valid reports whether a is a known source category.
func (a ArxivCategory) Valid() bool {
	return a == ArxivMachineLearning || a == ArxivMultiagent
}

// Paper holds citation metadata for the research paper an idea is
// derived from. A Paper has no identity of its own; it is owned by
// exactly one Idea. Optional fields are pointers (or nil slices) so
// that "not present" is distinguishable from an empty value.
type Paper struct {
	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// URL is the absolute URL of the paper (e.g. an arXiv abstract page).
	URL string `json:"url" yaml:"url"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Abstract is the paper abstract.
	Abstract *string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// ArxivID is the bare arXiv identifier (e.g. "2401.12345").
	ArxivID *string `json:"arxivId,omitempty" yaml:"arxivId,omitempty"`

	// PublishedAt is the publication date (YYYY-MM-DD).
	PublishedAt *string `json:"publishedAt,omitempty" yaml:"publishedAt,omitempty"`

	// PrimaryCategory is the arXiv listing the paper came from.
	PrimaryCategory *ArxivCategory `json:"primaryCategory,omitempty" yaml:"primaryCategory,omitempty"`
}

// Idea is a single startup blueprint generated from one research paper.
// Ideas are created by the upstream generation run and never mutated;
// this system only reads them.
type Idea struct {
	// ID is the idea's UUID, globally unique and immutable.
	ID string `json:"id" yaml:"id"`

	// BatchDate references the Batch this idea belongs to (YYYY-MM-DD).
	BatchDate string `json:"batchDate" yaml:"batchDate"`

	// Category is the quality tier assigned during generation.
	Category Category `json:"category" yaml:"category"`

	// StartupName is the proposed company name.
	StartupName string `json:"startupName" yaml:"startupName"`

	// ValueProposition pitches the company in a few sentences.
	ValueProposition string `json:"valueProposition" yaml:"valueProposition"`

	// TechnicalCore describes the paper technique at the heart of the idea.
	TechnicalCore string `json:"technicalCore" yaml:"technicalCore"`

	// Implementation sketches how to build it.
	Implementation string `json:"implementation" yaml:"implementation"`

	// TechStack lists the suggested technologies (5-12 entries).
	TechStack []string `json:"techStack" yaml:"techStack"`

	// ResumeBullets is exactly three resume-ready accomplishment lines.
	ResumeBullets [3]string `json:"resumeBullets" yaml:"resumeBullets"`

	// WhyThisPaper explains why the paper is worth building on.
	WhyThisPaper string `json:"whyThisPaper" yaml:"whyThisPaper"`

	// Paper is the source paper's citation metadata.
	Paper Paper `json:"paper" yaml:"paper"`

	// CreatedAt is the generation timestamp (ISO 8601).
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
}
