// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schema validates domain records against the strict content
// contract before they reach callers. It is the only place correctness
// is enforced: the row mapper is deliberately permissive, and the
// repository facade runs every record from either backend through this
// package.
package schema

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/google/uuid"

	"github.com/MoayyadShahid/MVPXiv/pkg/types"
)

// Rule names the class of constraint a record violated.
type Rule string

const (
	// RuleRequired means a required string field was empty.
	RuleRequired Rule = "required"

	// RuleFormat means a field did not match its lexical format
	// (UUID, date, datetime, absolute URL).
	RuleFormat Rule = "format"

	// RuleCardinality means a list field had the wrong length or a
	// count was negative.
	RuleCardinality Rule = "cardinality"

	// RuleEnum means a field held a value outside its enumeration.
	RuleEnum Rule = "enum"
)

// ValidationError reports which field of a record violated which rule.
// It indicates upstream data corruption and is never silently repaired.
type ValidationError struct {
	Field  string
	Rule   Rule
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: field %s violates %s rule: %s", e.Field, e.Rule, e.Detail)
}

func violation(field string, rule Rule, format string, args ...any) error {
	return &ValidationError{Field: field, Rule: rule, Detail: fmt.Sprintf(format, args...)}
}

var (
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	datetimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T[\d:.]+Z?$`)
)

// validUUID reports whether s is a canonical 8-4-4-4-12 hex UUID.
// uuid.Parse also accepts braced and URN forms, so the length check
// pins the canonical one.
func validUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// validAbsoluteURL reports whether s parses as a URL with a scheme and host.
func validAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// ValidatePaper checks a Paper's required fields and the formats of its
// optional ones. Optional fields are only checked when present.
func ValidatePaper(p types.Paper) error {
	if p.Title == "" {
		return violation("paper.title", RuleRequired, "must not be empty")
	}
	if !validAbsoluteURL(p.URL) {
		return violation("paper.url", RuleFormat, "%q is not an absolute URL", p.URL)
	}
	if p.PublishedAt != nil && !datePattern.MatchString(*p.PublishedAt) {
		return violation("paper.publishedAt", RuleFormat, "%q is not a YYYY-MM-DD date", *p.PublishedAt)
	}
	if p.PrimaryCategory != nil && !p.PrimaryCategory.Valid() {
		return violation("paper.primaryCategory", RuleEnum, "unknown category %q", *p.PrimaryCategory)
	}
	return nil
}

// ValidateIdea checks an Idea against the strict contract: UUID id,
// dated batch reference, known category, non-empty text fields, a tech
// stack of 5-12 entries, and a valid owned Paper.
func ValidateIdea(idea types.Idea) error {
	if !validUUID(idea.ID) {
		return violation("id", RuleFormat, "%q is not a UUID", idea.ID)
	}
	if !datePattern.MatchString(idea.BatchDate) {
		return violation("batchDate", RuleFormat, "%q is not a YYYY-MM-DD date", idea.BatchDate)
	}
	if !idea.Category.Valid() {
		return violation("category", RuleEnum, "unknown category %q", idea.Category)
	}
	for field, value := range map[string]string{
		"startupName":      idea.StartupName,
		"valueProposition": idea.ValueProposition,
		"technicalCore":    idea.TechnicalCore,
		"implementation":   idea.Implementation,
		"whyThisPaper":     idea.WhyThisPaper,
	} {
		if value == "" {
			return violation(field, RuleRequired, "must not be empty")
		}
	}
	if n := len(idea.TechStack); n < 5 || n > 12 {
		return violation("techStack", RuleCardinality, "has %d entries, want 5-12", n)
	}
	if !datetimePattern.MatchString(idea.CreatedAt) {
		return violation("createdAt", RuleFormat, "%q is not an ISO 8601 datetime", idea.CreatedAt)
	}
	return ValidatePaper(idea.Paper)
}

// ValidateBatch checks a Batch: matching dated id/date keys, exactly
// three research themes, and non-negative category counts.
func ValidateBatch(b types.Batch) error {
	if !datePattern.MatchString(b.ID) {
		return violation("id", RuleFormat, "%q is not a YYYY-MM-DD date", b.ID)
	}
	if !datePattern.MatchString(b.Date) {
		return violation("date", RuleFormat, "%q is not a YYYY-MM-DD date", b.Date)
	}
	if !datetimePattern.MatchString(b.CreatedAt) {
		return violation("createdAt", RuleFormat, "%q is not an ISO 8601 datetime", b.CreatedAt)
	}
	if n := len(b.ResearchThemes); n != 3 {
		return violation("researchThemes", RuleCardinality, "has %d entries, want exactly 3", n)
	}
	for field, count := range map[string]int{
		"countsByCategory.backlog":      b.CountsByCategory.Backlog,
		"countsByCategory.considerable": b.CountsByCategory.Considerable,
		"countsByCategory.promising":    b.CountsByCategory.Promising,
		"countsByCategory.lucrative":    b.CountsByCategory.Lucrative,
	} {
		if count < 0 {
			return violation(field, RuleCardinality, "is %d, want >= 0", count)
		}
	}
	return nil
}
