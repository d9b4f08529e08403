package scoring

import (
	"strings"

	"github.com/ismaelallamtaoui/eco-score/domain"
)

// ReferenceContext bundles the pre-loaded lookup tables one scoring session
// reads. It is built once by the dataset loader, before any Score call, and
// never mutated afterwards; distinct products can therefore be scored
// concurrently without coordination.
type ReferenceContext struct {
	LCAByRef        map[string]domain.LCAProfile
	SeasonRules     []domain.SeasonalityRule
	TransportByGTIN map[string][]domain.TransportLeg
	SuppliersByID   map[string]domain.Supplier
	Brackets        map[string]domain.BracketSet // keyed by lowercase category
	Month           int                          // 1-12
}

// Bracket resolves the bracket set for a category, case-folded, falling back
// to the "default" set when the category has none of its own.
func (ctx *ReferenceContext) Bracket(category string) domain.BracketSet {
	if category == "" {
		category = "General"
	}
	if b, ok := ctx.Brackets[strings.ToLower(category)]; ok {
		return b
	}
	return ctx.Brackets["default"]
}
