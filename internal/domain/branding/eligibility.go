// Package branding contains the domain logic of the automated catalog
// branding pipeline: eligibility rules and the per-item enrichment loop.
package branding

import "github.com/curiogoods/catalog-api/internal/domain/model"

// TagRule pairs a disqualifying tag with the human-readable reason reported
// when an item carries it.
type TagRule struct {
	Tag    string
	Reason string
}

// Rules holds the eligibility rule set. Evaluation order is significant:
// rules are checked in the order laid out in Evaluate and the first match
// wins, so reported skip reasons are mutually exclusive.
type Rules struct {
	// ExcludedOrigins disqualify items sourced from origins the pipeline
	// must not touch (e.g. print-on-demand vendors that own their imagery).
	ExcludedOrigins []TagRule

	// ExcludedDepartments disqualify items from departments outside the
	// pipeline's target (e.g. apparel when only physical objects are shot).
	ExcludedDepartments []TagRule

	// RequiredSourceTag must be present for an item to qualify.
	RequiredSourceTag string

	// RequiredDepartmentTag must be present for an item to qualify.
	RequiredDepartmentTag string
}

// DefaultRules returns the rule set the storefront runs in production.
func DefaultRules() Rules {
	return Rules{
		ExcludedOrigins: []TagRule{
			{Tag: "source:printify", Reason: "Printify product"},
		},
		ExcludedDepartments: []TagRule{
			{Tag: "dept:apparel", Reason: "Apparel product"},
		},
		RequiredSourceTag:     "source:faire",
		RequiredDepartmentTag: "dept:objects",
	}
}

const (
	reasonMissingSourceTag     = "Missing required source tag"
	reasonMissingDepartmentTag = "Missing required department tag"
	reasonNoImages             = "No images"
)

// Evaluate decides whether an item qualifies for automated branding.
// Pure and total: no I/O, no side effects, deterministic for a given item.
func (r Rules) Evaluate(item model.CatalogItem) model.EligibilityVerdict {
	for _, rule := range r.ExcludedOrigins {
		if item.HasTag(rule.Tag) {
			return skip(rule.Reason)
		}
	}

	for _, rule := range r.ExcludedDepartments {
		if item.HasTag(rule.Tag) {
			return skip(rule.Reason)
		}
	}

	if r.RequiredSourceTag != "" && !item.HasTag(r.RequiredSourceTag) {
		return skip(reasonMissingSourceTag)
	}

	if r.RequiredDepartmentTag != "" && !item.HasTag(r.RequiredDepartmentTag) {
		return skip(reasonMissingDepartmentTag)
	}

	if item.ImageCount == 0 {
		return skip(reasonNoImages)
	}

	return model.EligibilityVerdict{WillProcess: true}
}

func skip(reason string) model.EligibilityVerdict {
	return model.EligibilityVerdict{WillProcess: false, SkipReason: reason}
}

// Evaluator decides eligibility for a single catalog item.
type Evaluator interface {
	Evaluate(item model.CatalogItem) model.EligibilityVerdict
}

// EvaluatorFunc is an adapter to allow ordinary functions to act as Evaluators.
type EvaluatorFunc func(item model.CatalogItem) model.EligibilityVerdict

// Evaluate calls f(item).
func (f EvaluatorFunc) Evaluate(item model.CatalogItem) model.EligibilityVerdict {
	if f == nil {
		return model.EligibilityVerdict{}
	}
	return f(item)
}

var _ Evaluator = Rules{}
