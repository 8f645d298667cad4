package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/curiogoods/catalog-api/internal/domain/branding"
	"github.com/curiogoods/catalog-api/internal/domain/model"
	"github.com/curiogoods/catalog-api/internal/ports"
)

// BrandingServiceOptions groups dependencies for BrandingService.
type BrandingServiceOptions struct {
	Source   ports.ItemSource   // Required: catalog item listing
	Pipeline *branding.Pipeline // Required: per-item processing loop
	Logger   *slog.Logger       // Optional: structured logger
}

// BrandingService runs the automated catalog branding pipeline: it fetches
// the item batch once, drives it through the pipeline, and emits the run's
// start and terminal events around the pipeline's per-item events.
type BrandingService struct {
	source   ports.ItemSource
	pipeline *branding.Pipeline
	logger   *slog.Logger
}

// NewBrandingService constructs a new BrandingService.
func NewBrandingService(opts BrandingServiceOptions) *BrandingService {
	if opts.Source == nil {
		panic("ItemSource is required")
	}
	if opts.Pipeline == nil {
		panic("Pipeline is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &BrandingService{
		source:   opts.Source,
		pipeline: opts.Pipeline,
		logger:   logger,
	}
}

// RunResult is the durable output artifact of one pipeline run, held in
// memory for the duration of the request.
type RunResult struct {
	Run     model.Run
	Results []model.EnrichmentResult
	Summary model.RunSummary
}

// Run executes one pipeline invocation. The sink observes exactly one start
// event, one per-item progress event per fetched item, and one terminal event
// (complete or error), in that order. Failure to even list items is a
// run-level error: the batch is aborted and the terminal event is an error.
func (s *BrandingService) Run(ctx context.Context, req model.RunRequest, sink branding.EventSink) (*RunResult, error) {
	if sink == nil {
		sink = branding.DiscardSink
	}

	run := model.Run{
		ID:        uuid.NewString(),
		Limit:     model.ClampLimit(req.Limit),
		StartedAt: time.Now(),
	}

	s.logger.InfoContext(ctx, "branding run started", "run_id", run.ID, "limit", run.Limit)
	sink.Emit(ctx, model.StartEvent(run))

	items, err := s.source.FetchItemsNeedingEnrichment(ctx, run.Limit)
	if err != nil {
		err = fmt.Errorf("fetch catalog items: %w", err)
		s.logger.ErrorContext(ctx, "branding run aborted", "run_id", run.ID, "error", err)
		sink.Emit(ctx, model.ErrorEvent(run.ID, err.Error()))
		return nil, err
	}

	results := s.pipeline.Run(ctx, branding.RunParams{
		RunID: run.ID,
		Items: items,
		Sink:  sink,
	})
	summary := model.Summarize(results)

	sink.Emit(ctx, model.CompleteEvent(run.ID, results, summary))
	s.logger.InfoContext(ctx, "branding run complete",
		"run_id", run.ID,
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"timed_out", summary.TimedOut,
		"skipped", summary.Skipped)

	return &RunResult{Run: run, Results: results, Summary: summary}, nil
}

// Preflight evaluates eligibility for a batch without enriching anything.
func (s *BrandingService) Preflight(ctx context.Context, req model.RunRequest) (*model.PreflightReport, error) {
	limit := model.ClampLimit(req.Limit)

	items, err := s.source.FetchItemsNeedingEnrichment(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog items: %w", err)
	}

	report := s.pipeline.Preflight(items)
	return &report, nil
}
