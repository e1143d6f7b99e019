// Package layout defines the fixed set of layout variants and the capacity
// rules attached to each one. Bullet caps, character caps, component caps,
// and eviction priorities all live in a single table so the pre- and
// post-repair feasibility checks consult identical limits.
package layout

import "github.com/goliatone/go-slidefix/pkg/slide"

// Variant names a slide layout template with fixed capacity rules.
type Variant string

const (
	HeroCentered     Variant = "hero-centered"
	StandardVertical Variant = "standard-vertical"
	BentoGrid        Variant = "bento-grid"
	MetricStrip      Variant = "metric-strip"
	VisualSplit      Variant = "visual-split"
	TimelineFlow     Variant = "timeline-flow"
	FullBleedVisual  Variant = "full-bleed-visual"
)

// Fallback is the universal fallback variant. It carries no component-type
// requirement, so rerouting toward it can never oscillate.
const Fallback = StandardVertical

// GlobalBulletChars is the hard per-line character ceiling applied when text
// components are merged outside a variant-specific context.
const GlobalBulletChars = 70

// CharFloor is the absolute lower bound on any computed bullet character cap.
const CharFloor = 40

// Spec captures every capacity rule for one variant.
type Spec struct {
	// MinComponents and MaxComponents bound the component count.
	MinComponents int
	MaxComponents int

	// RequiresGrid marks grid-oriented variants, which must be paired with at
	// least one grid-capable component (metric-cards or icon-grid).
	RequiresGrid bool

	// BulletMax and BulletChars cap text-bullets components rendered in this
	// variant: list length and base per-line characters.
	BulletMax   int
	BulletChars int

	// Wide variants tolerate two text components; all others tolerate one.
	Wide bool

	// VisualZone marks variants with a dedicated zone for diagram-svg.
	VisualZone bool

	// Split variants render two side-by-side zones and need two components.
	Split bool
}

var specs = map[Variant]Spec{
	HeroCentered:     {MinComponents: 1, MaxComponents: 1, BulletMax: 3, BulletChars: 70, VisualZone: true},
	StandardVertical: {MinComponents: 1, MaxComponents: 3, BulletMax: 4, BulletChars: 60, Wide: true},
	BentoGrid:        {MinComponents: 2, MaxComponents: 3, RequiresGrid: true, BulletMax: 3, BulletChars: 45},
	MetricStrip:      {MinComponents: 2, MaxComponents: 3, RequiresGrid: true, BulletMax: 2, BulletChars: 40},
	VisualSplit:      {MinComponents: 2, MaxComponents: 2, BulletMax: 3, BulletChars: 50, Wide: true, VisualZone: true, Split: true},
	TimelineFlow:     {MinComponents: 1, MaxComponents: 2, BulletMax: 3, BulletChars: 55},
	FullBleedVisual:  {MinComponents: 1, MaxComponents: 2, BulletMax: 2, BulletChars: 65, VisualZone: true},
}

// Variants lists every known variant in a stable order.
func Variants() []Variant {
	return []Variant{
		HeroCentered,
		StandardVertical,
		BentoGrid,
		MetricStrip,
		VisualSplit,
		TimelineFlow,
		FullBleedVisual,
	}
}

// SpecFor returns the capacity rules for v, falling back to the universal
// fallback spec when v is unknown. Total by construction.
func SpecFor(v Variant) Spec {
	if spec, ok := specs[v]; ok {
		return spec
	}
	return specs[Fallback]
}

// Known reports whether v names a variant in the table.
func Known(v Variant) bool {
	_, ok := specs[v]
	return ok
}

// TextComponentMax returns how many text-bullets components the variant
// tolerates before consolidation merges them.
func (s Spec) TextComponentMax() int {
	if s.Wide {
		return 2
	}
	return 1
}

// gridEviction ranks kinds kept first when a grid-oriented variant exceeds
// its component cap; textEviction is the ranking for every other variant.
var (
	gridEviction = []slide.Kind{
		slide.KindMetricCards,
		slide.KindIconGrid,
		slide.KindChartFrame,
		slide.KindTextBullets,
		slide.KindProcessFlow,
		slide.KindDiagramSVG,
	}
	textEviction = []slide.Kind{
		slide.KindTextBullets,
		slide.KindChartFrame,
		slide.KindMetricCards,
		slide.KindProcessFlow,
		slide.KindIconGrid,
		slide.KindDiagramSVG,
	}
	// visualEviction keeps the diagram a visual-zone variant was chosen for.
	visualEviction = []slide.Kind{
		slide.KindDiagramSVG,
		slide.KindTextBullets,
		slide.KindChartFrame,
		slide.KindMetricCards,
		slide.KindProcessFlow,
		slide.KindIconGrid,
	}
)

// EvictionRank returns the priority rank of kind under the variant's eviction
// order. Lower ranks are kept first when the component cap is exceeded.
func EvictionRank(s Spec, kind slide.Kind) int {
	order := textEviction
	switch {
	case s.RequiresGrid:
		order = gridEviction
	case s.VisualZone:
		order = visualEviction
	}
	for i, k := range order {
		if k == kind {
			return i
		}
	}
	return len(order)
}

// GridCapable reports whether kind satisfies a grid-oriented variant's
// component-type requirement.
func GridCapable(kind slide.Kind) bool {
	return kind == slide.KindMetricCards || kind == slide.KindIconGrid
}
