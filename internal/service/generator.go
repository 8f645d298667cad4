// Package service contains the business logic of the branding pipeline:
// admission, copy generation, and batch orchestration.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/curiogoods/catalog-api/internal/async"
	"github.com/curiogoods/catalog-api/internal/domain/branding"
	"github.com/curiogoods/catalog-api/internal/domain/model"
	apperrors "github.com/curiogoods/catalog-api/internal/errors"
	"github.com/curiogoods/catalog-api/internal/ports"
)

// GenerationDeadline bounds a single generation call. The in-flight call is
// abandoned when it elapses, not cancelled; any late result is discarded.
const GenerationDeadline = 3000 * time.Millisecond

// CopyGeneratorOptions groups dependencies for CopyGenerator.
type CopyGeneratorOptions struct {
	Cache     ports.CopyCache     // Required: cached-copy read/write
	Generator ports.TextGenerator // Required: generation service
	Deadline  time.Duration       // Optional: defaults to GenerationDeadline
	Logger    *slog.Logger        // Optional: structured logger
}

// CopyGenerator produces short promotional copy for one item, consulting the
// cache before generating and persisting successful generations back to it.
type CopyGenerator struct {
	cache     ports.CopyCache
	generator ports.TextGenerator
	deadline  time.Duration
	logger    *slog.Logger
}

// NewCopyGenerator constructs a new CopyGenerator.
func NewCopyGenerator(opts CopyGeneratorOptions) *CopyGenerator {
	if opts.Cache == nil {
		panic("CopyCache is required")
	}
	if opts.Generator == nil {
		panic("TextGenerator is required")
	}

	deadline := opts.Deadline
	if deadline <= 0 {
		deadline = GenerationDeadline
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CopyGenerator{
		cache:     opts.Cache,
		generator: opts.Generator,
		deadline:  deadline,
		logger:    logger,
	}
}

var _ branding.Enricher = (*CopyGenerator)(nil)

// Enrich returns promotional copy for the item. The cache is checked
// unconditionally before any generation call; a present, non-empty cached
// value is authoritative and returned as-is. Deadline overruns surface as
// errors satisfying apperrors.IsTimeout.
func (g *CopyGenerator) Enrich(ctx context.Context, item model.CatalogItem) (string, error) {
	cached, err := g.cache.ReadCachedCopy(ctx, item.ID)
	if err != nil {
		// A cache read failure is not fatal to the item: fall through to
		// generation, which is what a miss would have done anyway.
		g.logger.WarnContext(ctx, "cached copy read failed", "item_id", item.ID, "error", err)
	}
	if cached != "" {
		return cached, nil
	}

	prompt := BuildPrompt(item.Title, item.Category, item.Description)

	res := async.WithDeadline(ctx, g.deadline, func(ctx context.Context) (string, error) {
		return g.generator.Generate(ctx, prompt)
	})
	switch {
	case res.TimedOut:
		return "", apperrors.Timeout(
			fmt.Sprintf("copy generation exceeded %s deadline", g.deadline))
	case res.Err != nil:
		return "", fmt.Errorf("generate copy: %w", res.Err)
	}

	text := NormalizeCopy(res.Value)
	if text == "" {
		return "", apperrors.Internal("generation returned empty copy")
	}

	// Best-effort write-back: the caller still receives the fresh copy even
	// when persisting it fails.
	if werr := g.cache.WriteCachedCopy(ctx, item.ID, text); werr != nil {
		g.logger.WarnContext(ctx, "cached copy write failed", "item_id", item.ID, "error", werr)
	}

	return text, nil
}

const (
	placeholderCategory    = "home goods"
	placeholderDescription = "a small-batch piece from an independent maker"
)

// BuildPrompt fills the fixed prompt template, substituting neutral
// placeholders for missing fields.
func BuildPrompt(title, category, description string) string {
	if strings.TrimSpace(title) == "" {
		title = "This product"
	}
	if strings.TrimSpace(category) == "" {
		category = placeholderCategory
	}
	description = strings.TrimSpace(description)
	if description == "" {
		description = placeholderDescription
	}

	return fmt.Sprintf(
		"Write one short, warm sentence of promotional copy for a storefront product card.\n"+
			"Product: %s\nCategory: %s\nDetails: %s\n"+
			"Respond with the sentence only, no quotes and no preamble.",
		title, category, description)
}

// NormalizeCopy trims surrounding whitespace and strips one layer of
// enclosing quote characters from generated text.
func NormalizeCopy(text string) string {
	text = strings.TrimSpace(text)
	if len(text) < 2 {
		return text
	}

	pairs := [][2]string{
		{`"`, `"`},
		{`'`, `'`},
		{"“", "”"}, // curly double quotes
		{"‘", "’"}, // curly single quotes
	}
	for _, p := range pairs {
		if strings.HasPrefix(text, p[0]) && strings.HasSuffix(text, p[1]) {
			return strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(text, p[0]), p[1]))
		}
	}
	return text
}
