package repair

import (
	"github.com/goliatone/go-slidefix/pkg/layout"
	"github.com/goliatone/go-slidefix/pkg/slide"
)

// itemCap combines the hard per-kind ceiling with the soft density budget;
// the more restrictive ceiling wins.
func itemCap(kindCap int, budget *slide.DensityBudget) int {
	if budget != nil && budget.MaxItems > 0 && budget.MaxItems < kindCap {
		return budget.MaxItems
	}
	return kindCap
}

// bulletCharCap computes the per-line character cap for text bullets: the
// variant base cap, reduced to 55 once a component carries three or more
// lines, bounded above by the density budget's per-item character share,
// with an absolute floor of layout.CharFloor.
func bulletCharCap(spec layout.Spec, lineCount int, budget *slide.DensityBudget) int {
	limit := spec.BulletChars
	if lineCount >= 3 && limit > 55 {
		limit = 55
	}
	if budget != nil && budget.MaxItems > 0 && budget.MaxChars > 0 {
		if share := budget.MaxChars / budget.MaxItems; share < limit {
			limit = share
		}
	}
	if limit < layout.CharFloor {
		limit = layout.CharFloor
	}
	return limit
}
