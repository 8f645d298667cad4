package branding

import (
	"testing"

	"github.com/curiogoods/catalog-api/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestRules_Evaluate(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name       string
		item       model.CatalogItem
		willGo     bool
		skipReason string
	}{
		{
			name:       "printify origin excluded",
			item:       model.CatalogItem{Tags: []string{"source:printify"}},
			skipReason: "Printify product",
		},
		{
			name:       "apparel department excluded",
			item:       model.CatalogItem{Tags: []string{"source:faire", "dept:apparel"}},
			skipReason: "Apparel product",
		},
		{
			name:       "missing required source tag",
			item:       model.CatalogItem{Tags: []string{"dept:objects"}, ImageCount: 2},
			skipReason: "Missing required source tag",
		},
		{
			name:       "missing required department tag",
			item:       model.CatalogItem{Tags: []string{"source:faire"}, ImageCount: 2},
			skipReason: "Missing required department tag",
		},
		{
			name:       "no images",
			item:       model.CatalogItem{Tags: []string{"source:faire", "dept:objects"}},
			skipReason: "No images",
		},
		{
			name:   "eligible",
			item:   model.CatalogItem{Tags: []string{"source:faire", "dept:objects"}, ImageCount: 1},
			willGo: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := rules.Evaluate(tt.item)
			assert.Equal(t, tt.willGo, verdict.WillProcess)
			assert.Equal(t, tt.skipReason, verdict.SkipReason)
		})
	}
}

// Rule order matters: the first applicable reason wins even when several rules
// would disqualify the item.
func TestRules_Evaluate_FirstMatchWins(t *testing.T) {
	rules := DefaultRules()

	t.Run("excluded origin beats missing tags", func(t *testing.T) {
		// Also missing both required tags and has no images.
		verdict := rules.Evaluate(model.CatalogItem{Tags: []string{"source:printify"}})
		assert.False(t, verdict.WillProcess)
		assert.Equal(t, "Printify product", verdict.SkipReason)
	})

	t.Run("excluded origin beats excluded department", func(t *testing.T) {
		verdict := rules.Evaluate(model.CatalogItem{
			Tags: []string{"source:printify", "dept:apparel"},
		})
		assert.Equal(t, "Printify product", verdict.SkipReason)
	})

	t.Run("excluded department beats missing source tag", func(t *testing.T) {
		verdict := rules.Evaluate(model.CatalogItem{Tags: []string{"dept:apparel"}})
		assert.Equal(t, "Apparel product", verdict.SkipReason)
	})

	t.Run("missing source tag beats no images", func(t *testing.T) {
		verdict := rules.Evaluate(model.CatalogItem{Tags: []string{"dept:objects"}})
		assert.Equal(t, "Missing required source tag", verdict.SkipReason)
	})
}

// Items without images never process, whatever their tags say.
func TestRules_Evaluate_NoImagesRegardlessOfTags(t *testing.T) {
	rules := DefaultRules()

	verdict := rules.Evaluate(model.CatalogItem{
		Tags:       []string{"source:faire", "dept:objects"},
		ImageCount: 0,
	})

	assert.False(t, verdict.WillProcess)
	assert.Equal(t, "No images", verdict.SkipReason)
}

func TestRules_Evaluate_EmptyRuleSet(t *testing.T) {
	// With no configured rules, only the image check applies.
	verdict := Rules{}.Evaluate(model.CatalogItem{ImageCount: 3})
	assert.True(t, verdict.WillProcess)

	verdict = Rules{}.Evaluate(model.CatalogItem{})
	assert.Equal(t, "No images", verdict.SkipReason)
}
