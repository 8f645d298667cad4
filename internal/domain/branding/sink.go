package branding

import (
	"context"

	"github.com/curiogoods/catalog-api/internal/domain/model"
)

// EventSink receives progress events as the pipeline produces them.
// Emission is assumed non-blocking or buffered by the transport behind it;
// the pipeline never batches or delays events.
type EventSink interface {
	Emit(ctx context.Context, event model.ProgressEvent)
}

// EventSinkFunc is an adapter to allow ordinary functions to act as EventSinks.
type EventSinkFunc func(ctx context.Context, event model.ProgressEvent)

// Emit calls f(ctx, event).
func (f EventSinkFunc) Emit(ctx context.Context, event model.ProgressEvent) {
	if f == nil {
		return
	}
	f(ctx, event)
}

// DiscardSink drops every event. Useful for callers that only want the
// returned result list, such as the operator CLI in quiet mode.
var DiscardSink = EventSinkFunc(func(context.Context, model.ProgressEvent) {})
