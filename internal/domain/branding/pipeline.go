package branding

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/curiogoods/catalog-api/internal/domain/model"
	apperrors "github.com/curiogoods/catalog-api/internal/errors"
)

// Enricher runs the enrichment stage for one eligible item and returns the
// generated copy. A deadline overrun is reported as an error satisfying
// apperrors.IsTimeout so the pipeline can classify it without inspecting
// elapsed time from the outside.
type Enricher interface {
	Enrich(ctx context.Context, item model.CatalogItem) (string, error)
}

// EnricherFunc is an adapter to allow ordinary functions to act as Enrichers.
type EnricherFunc func(ctx context.Context, item model.CatalogItem) (string, error)

// Enrich calls f(ctx, item).
func (f EnricherFunc) Enrich(ctx context.Context, item model.CatalogItem) (string, error) {
	if f == nil {
		return "", nil
	}
	return f(ctx, item)
}

// PipelineOptions configure the behavior of the default pipeline implementation.
type PipelineOptions struct {
	Evaluator Evaluator
	Enricher  Enricher
	Logger    *slog.Logger
}

// Pipeline drives a bounded list of catalog items through eligibility and
// enrichment, strictly sequentially and in the order given. Sequencing is
// intentional: it bounds load on the rate-limited commerce and generation
// APIs and keeps progress-event ordering deterministic.
type Pipeline struct {
	evaluator Evaluator
	enricher  Enricher
	logger    *slog.Logger
}

// NewPipeline constructs a Pipeline from the supplied options.
func NewPipeline(opts PipelineOptions) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Pipeline{
		evaluator: opts.Evaluator,
		enricher:  opts.Enricher,
		logger:    logger,
	}
}

// RunParams supplies the per-invocation inputs for Run.
type RunParams struct {
	RunID string
	Items []model.CatalogItem
	Sink  EventSink
}

// Run processes every item and returns exactly one EnrichmentResult per item,
// in item order. Item failures are isolated: they are recorded on that item's
// result and never abort the batch. A progress event is emitted through the
// sink immediately after each item settles.
func (p *Pipeline) Run(ctx context.Context, params RunParams) []model.EnrichmentResult {
	sink := params.Sink
	if sink == nil {
		sink = DiscardSink
	}

	results := make([]model.EnrichmentResult, 0, len(params.Items))
	for _, item := range params.Items {
		result := p.processItem(ctx, item)
		results = append(results, result)
		sink.Emit(ctx, model.ItemEvent(params.RunID, result))
	}

	return results
}

func (p *Pipeline) processItem(ctx context.Context, item model.CatalogItem) model.EnrichmentResult {
	result := model.EnrichmentResult{
		ItemID: item.ID,
		Handle: item.Handle,
		Title:  item.Title,
	}

	verdict := p.evaluator.Evaluate(item)
	if !verdict.WillProcess {
		result.Status = model.EnrichmentSkipped
		result.Error = verdict.SkipReason
		return result
	}

	start := time.Now()
	copyText, err := p.enrich(ctx, item)
	result.DurationMS = time.Since(start).Milliseconds()

	switch {
	case err == nil:
		result.Status = model.EnrichmentSuccess
		result.Copy = copyText
	case apperrors.IsTimeout(err):
		result.Status = model.EnrichmentTimeout
		result.Error = err.Error()
	default:
		result.Status = model.EnrichmentError
		result.Error = err.Error()
	}

	if err != nil {
		p.logger.WarnContext(ctx, "item enrichment did not succeed",
			"item_id", item.ID,
			"status", result.Status,
			"error", err)
	}

	return result
}

// enrich invokes the enrichment stage with panic isolation so a single bad
// item can never take the whole batch down.
func (p *Pipeline) enrich(ctx context.Context, item model.CatalogItem) (copyText string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("enrichment stage panicked: %v", r)
		}
	}()

	if p.enricher == nil {
		return "", apperrors.Internal("no enricher configured")
	}

	copyText, err = p.enricher.Enrich(ctx, item)
	if err != nil {
		return "", err
	}
	if copyText == "" {
		return "", apperrors.Internal("generator returned empty copy")
	}
	return copyText, nil
}

// Preflight evaluates eligibility for every item without enriching anything.
func (p *Pipeline) Preflight(items []model.CatalogItem) model.PreflightReport {
	report := model.PreflightReport{
		Verdicts: make([]model.PreflightVerdict, 0, len(items)),
	}

	for _, item := range items {
		verdict := p.evaluator.Evaluate(item)
		report.Verdicts = append(report.Verdicts, model.PreflightVerdict{
			ItemID:      item.ID,
			Handle:      item.Handle,
			Title:       item.Title,
			WillProcess: verdict.WillProcess,
			SkipReason:  verdict.SkipReason,
		})
		if verdict.WillProcess {
			report.Eligible++
		} else {
			report.Skipped++
		}
	}

	return report
}
