// Package model defines the core data types used throughout the catalog branding pipeline.
package model

import "time"

// CatalogItem is an immutable snapshot of a storefront catalog item, fetched
// once per pipeline run from the commerce platform and read-only thereafter.
type CatalogItem struct {
	ID          string   `json:"id"`
	Handle      string   `json:"handle"`
	Title       string   `json:"title"`
	Tags        []string `json:"tags"`
	ImageCount  int      `json:"image_count"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
}

// HasTag reports whether the item carries the given tag exactly.
func (i CatalogItem) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// EligibilityVerdict is the outcome of evaluating one item against the
// branding eligibility rules. It is recomputed every run and never persisted.
type EligibilityVerdict struct {
	WillProcess bool   `json:"will_process"`
	SkipReason  string `json:"skip_reason,omitempty"`
}

// EnrichmentStatus classifies the outcome of enriching one item.
type EnrichmentStatus string

const (
	// EnrichmentSuccess indicates copy was produced for the item.
	EnrichmentSuccess EnrichmentStatus = "success"
	// EnrichmentError indicates the enrichment stage failed for the item.
	EnrichmentError EnrichmentStatus = "error"
	// EnrichmentTimeout indicates the generation deadline elapsed for the item.
	EnrichmentTimeout EnrichmentStatus = "timeout"
	// EnrichmentSkipped indicates the item did not pass eligibility.
	EnrichmentSkipped EnrichmentStatus = "skipped"
)

// Valid returns true if the EnrichmentStatus is valid.
func (s EnrichmentStatus) Valid() bool {
	return s == EnrichmentSuccess || s == EnrichmentError || s == EnrichmentTimeout ||
		s == EnrichmentSkipped
}

// EnrichmentResult records the outcome of processing one catalog item.
// Exactly one result is produced per item per run.
type EnrichmentResult struct {
	ItemID     string           `json:"item_id"`
	Handle     string           `json:"handle,omitempty"`
	Title      string           `json:"title,omitempty"`
	Status     EnrichmentStatus `json:"status"`
	DurationMS int64            `json:"duration_ms"`
	Copy       string           `json:"copy,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// RunSummary aggregates the results of one pipeline run.
type RunSummary struct {
	Total       int     `json:"total"`
	Succeeded   int     `json:"succeeded"`
	Failed      int     `json:"failed"`
	TimedOut    int     `json:"timed_out"`
	Skipped     int     `json:"skipped"`
	SuccessRate float64 `json:"success_rate"`
}

// Summarize derives a RunSummary from a run's full result list.
// The success rate is computed over attempted items (skips excluded);
// a run with nothing attempted reports a rate of zero.
func Summarize(results []EnrichmentResult) RunSummary {
	s := RunSummary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case EnrichmentSuccess:
			s.Succeeded++
		case EnrichmentTimeout:
			s.TimedOut++
		case EnrichmentSkipped:
			s.Skipped++
		case EnrichmentError:
			s.Failed++
		default:
			s.Failed++
		}
	}
	attempted := s.Total - s.Skipped
	if attempted > 0 {
		s.SuccessRate = float64(s.Succeeded) / float64(attempted)
	}
	return s
}

// PreflightReport is the response of the eligibility-only dry run.
type PreflightReport struct {
	Verdicts []PreflightVerdict `json:"verdicts"`
	Eligible int                `json:"eligible"`
	Skipped  int                `json:"skipped"`
}

// PreflightVerdict pairs an item with its eligibility verdict for reporting.
type PreflightVerdict struct {
	ItemID      string `json:"item_id"`
	Handle      string `json:"handle"`
	Title       string `json:"title"`
	WillProcess bool   `json:"will_process"`
	SkipReason  string `json:"skip_reason,omitempty"`
}

// RunRequest carries the caller-supplied parameters of a pipeline invocation.
type RunRequest struct {
	Limit int `json:"limit"`
}

const (
	// DefaultRunLimit is applied when the caller omits a limit.
	DefaultRunLimit = 20
	// MinRunLimit is the lower clamp bound for a requested batch size.
	MinRunLimit = 1
	// MaxRunLimit is the upper clamp bound for a requested batch size.
	MaxRunLimit = 50
)

// ClampLimit normalizes a requested batch size into [MinRunLimit, MaxRunLimit].
// Out-of-range values are clamped, not rejected. Callers that allow the limit
// to be omitted entirely substitute DefaultRunLimit before clamping.
func ClampLimit(limit int) int {
	if limit < MinRunLimit {
		return MinRunLimit
	}
	if limit > MaxRunLimit {
		return MaxRunLimit
	}
	return limit
}

// Run identifies one pipeline invocation.
type Run struct {
	ID        string    `json:"id"`
	Limit     int       `json:"limit"`
	StartedAt time.Time `json:"started_at"`
}
