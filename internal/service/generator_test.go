package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/curiogoods/catalog-api/internal/domain/model"
	apperrors "github.com/curiogoods/catalog-api/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCopyCache struct {
	values   map[string]string
	readErr  error
	writeErr error
	writes   map[string]string
}

func (f *fakeCopyCache) ReadCachedCopy(_ context.Context, itemID string) (string, error) {
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.values[itemID], nil
}

func (f *fakeCopyCache) WriteCachedCopy(_ context.Context, itemID, text string) error {
	if f.writes == nil {
		f.writes = map[string]string{}
	}
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes[itemID] = text
	return nil
}

type fakeGenerator struct {
	text  string
	err   error
	block chan struct{}
	calls atomic.Int64
}

func (f *fakeGenerator) Generate(_ context.Context, _ string) (string, error) {
	f.calls.Add(1)
	if f.block != nil {
		<-f.block
	}
	return f.text, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testItem() model.CatalogItem {
	return model.CatalogItem{
		ID:          "1001",
		Title:       "Walnut Bowl",
		Category:    "Kitchen",
		Description: "Hand-turned walnut serving bowl.",
	}
}

func TestCopyGenerator_CacheHitSkipsGeneration(t *testing.T) {
	gen := &fakeGenerator{text: "should not be used"}
	g := NewCopyGenerator(CopyGeneratorOptions{
		Cache:     &fakeCopyCache{values: map[string]string{"1001": "Cached copy."}},
		Generator: gen,
		Logger:    testLogger(),
	})

	text, err := g.Enrich(context.Background(), testItem())
	require.NoError(t, err)

	assert.Equal(t, "Cached copy.", text)
	assert.Zero(t, gen.calls.Load(), "generation service must not be called on a cache hit")
}

func TestCopyGenerator_GeneratesOnCacheMiss(t *testing.T) {
	cache := &fakeCopyCache{}
	g := NewCopyGenerator(CopyGeneratorOptions{
		Cache:     cache,
		Generator: &fakeGenerator{text: `"A handsome bowl."`},
		Logger:    testLogger(),
	})

	text, err := g.Enrich(context.Background(), testItem())
	require.NoError(t, err)

	assert.Equal(t, "A handsome bowl.", text)
	assert.Equal(t, "A handsome bowl.", cache.writes["1001"], "fresh copy is persisted back")
}

func TestCopyGenerator_CacheReadFailureFallsThrough(t *testing.T) {
	g := NewCopyGenerator(CopyGeneratorOptions{
		Cache:     &fakeCopyCache{readErr: errors.New("cache down")},
		Generator: &fakeGenerator{text: "Fresh copy."},
		Logger:    testLogger(),
	})

	text, err := g.Enrich(context.Background(), testItem())
	require.NoError(t, err)
	assert.Equal(t, "Fresh copy.", text)
}

func TestCopyGenerator_TimeoutIsTagged(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	g := NewCopyGenerator(CopyGeneratorOptions{
		Cache:     &fakeCopyCache{},
		Generator: &fakeGenerator{text: "late", block: block},
		Deadline:  10 * time.Millisecond,
		Logger:    testLogger(),
	})

	_, err := g.Enrich(context.Background(), testItem())
	require.Error(t, err)
	assert.True(t, apperrors.IsTimeout(err))
}

func TestCopyGenerator_GenerationErrorPropagates(t *testing.T) {
	g := NewCopyGenerator(CopyGeneratorOptions{
		Cache:     &fakeCopyCache{},
		Generator: &fakeGenerator{err: errors.New("quota exhausted")},
		Logger:    testLogger(),
	})

	_, err := g.Enrich(context.Background(), testItem())
	require.Error(t, err)
	assert.False(t, apperrors.IsTimeout(err))
	assert.Contains(t, err.Error(), "quota exhausted")
}

func TestCopyGenerator_EmptyAfterTrimIsRejected(t *testing.T) {
	cache := &fakeCopyCache{}
	g := NewCopyGenerator(CopyGeneratorOptions{
		Cache:     cache,
		Generator: &fakeGenerator{text: `""`},
		Logger:    testLogger(),
	})

	_, err := g.Enrich(context.Background(), testItem())
	require.Error(t, err)
	assert.Empty(t, cache.writes)
}

func TestCopyGenerator_WriteBackFailureDoesNotFailGeneration(t *testing.T) {
	g := NewCopyGenerator(CopyGeneratorOptions{
		Cache:     &fakeCopyCache{writeErr: errors.New("metafield write rejected")},
		Generator: &fakeGenerator{text: "Fresh copy."},
		Logger:    testLogger(),
	})

	text, err := g.Enrich(context.Background(), testItem())
	require.NoError(t, err)
	assert.Equal(t, "Fresh copy.", text)
}

func TestBuildPrompt_Placeholders(t *testing.T) {
	prompt := BuildPrompt("", "", "")

	assert.Contains(t, prompt, "This product")
	assert.Contains(t, prompt, "home goods")
	assert.Contains(t, prompt, "independent maker")
}

func TestBuildPrompt_UsesFields(t *testing.T) {
	prompt := BuildPrompt("Walnut Bowl", "Kitchen", "Hand-turned.")

	assert.Contains(t, prompt, "Walnut Bowl")
	assert.Contains(t, prompt, "Kitchen")
	assert.Contains(t, prompt, "Hand-turned.")
}

func TestNormalizeCopy(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Lovely bowl.", "Lovely bowl."},
		{"whitespace", "  Lovely bowl. \n", "Lovely bowl."},
		{"double quotes", `"Lovely bowl."`, "Lovely bowl."},
		{"single quotes", "'Lovely bowl.'", "Lovely bowl."},
		{"curly quotes", "“Lovely bowl.”", "Lovely bowl."},
		{"only one layer", `""Lovely bowl.""`, `"Lovely bowl."`},
		{"inner quotes kept", `A "lovely" bowl.`, `A "lovely" bowl.`},
		{"empty", "   ", ""},
		{"single char", `"`, `"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCopy(tt.in))
		})
	}
}
