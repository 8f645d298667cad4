package model

import "time"

// ProgressEventType discriminates the progress event union.
type ProgressEventType string

const (
	// ProgressStart opens a run's event stream. Emitted exactly once, first.
	ProgressStart ProgressEventType = "start"
	// ProgressItem reports one attempted item, in processing order.
	ProgressItem ProgressEventType = "progress"
	// ProgressComplete terminates a successful run with results and summary.
	ProgressComplete ProgressEventType = "complete"
	// ProgressError terminates a run that failed outside per-item isolation.
	ProgressError ProgressEventType = "error"
)

// Terminal reports whether the event type ends the stream.
func (t ProgressEventType) Terminal() bool {
	return t == ProgressComplete || t == ProgressError
}

// ProgressEvent is the tagged union relayed over the progress channel.
// Ordering invariant per run: one start, zero or more progress events
// (one per attempted item, in item order), then exactly one terminal event.
type ProgressEvent struct {
	Type      ProgressEventType `json:"type"`
	RunID     string            `json:"run_id,omitempty"`
	Timestamp time.Time         `json:"timestamp"`

	// Start fields
	Limit int `json:"limit,omitempty"`

	// Per-item fields
	ItemID string           `json:"item_id,omitempty"`
	Handle string           `json:"handle,omitempty"`
	Status EnrichmentStatus `json:"status,omitempty"`
	Detail string           `json:"detail,omitempty"`

	// Terminal fields
	Results []EnrichmentResult `json:"results,omitempty"`
	Summary *RunSummary        `json:"summary,omitempty"`
	Message string             `json:"message,omitempty"`
}

// StartEvent builds the stream-opening event for a run.
func StartEvent(run Run) ProgressEvent {
	return ProgressEvent{
		Type:      ProgressStart,
		RunID:     run.ID,
		Limit:     run.Limit,
		Timestamp: run.StartedAt,
	}
}

// ItemEvent builds a per-item progress event from an enrichment result.
func ItemEvent(runID string, result EnrichmentResult) ProgressEvent {
	return ProgressEvent{
		Type:      ProgressItem,
		RunID:     runID,
		ItemID:    result.ItemID,
		Handle:    result.Handle,
		Status:    result.Status,
		Detail:    itemDetail(result),
		Timestamp: time.Now(),
	}
}

func itemDetail(result EnrichmentResult) string {
	if result.Error != "" {
		return result.Error
	}
	return ""
}

// CompleteEvent builds the terminal event for a run that finished its loop.
func CompleteEvent(runID string, results []EnrichmentResult, summary RunSummary) ProgressEvent {
	return ProgressEvent{
		Type:      ProgressComplete,
		RunID:     runID,
		Results:   results,
		Summary:   &summary,
		Timestamp: time.Now(),
	}
}

// ErrorEvent builds the terminal event for a run that failed before or outside the item loop.
func ErrorEvent(runID, message string) ProgressEvent {
	return ProgressEvent{
		Type:      ProgressError,
		RunID:     runID,
		Message:   message,
		Timestamp: time.Now(),
	}
}
