package repair

import (
	"sort"
	"strings"

	"github.com/goliatone/go-slidefix/pkg/layout"
	"github.com/goliatone/go-slidefix/pkg/slide"
)

// normalizeVariant canonicalizes the chosen layout variant label, falling
// back to the universal fallback when the label is unknown.
func (e *Engine) normalizeVariant(s *slide.Slide, log *warningLog) layout.Variant {
	raw := strings.TrimSpace(s.Router.LayoutVariant)
	variant, resolved := layout.Normalize(raw)
	switch {
	case raw == "":
		log.add("missing layout variant; defaulted to %s", layout.Fallback)
	case !resolved:
		log.add("unknown layout variant %q replaced with %s", raw, layout.Fallback)
	case string(variant) != raw:
		log.add("layout variant %q normalized to %s", raw, variant)
	}
	return variant
}

// preFeasibility validates the chosen variant against the not-yet-repaired
// component set: grid-oriented variants need a grid-capable component, at
// least two components, and a workable density budget. The component count
// is then capped via the variant's eviction priority.
func (e *Engine) preFeasibility(s *slide.Slide, variant layout.Variant, log *warningLog) layout.Variant {
	spec := layout.SpecFor(variant)
	if spec.RequiresGrid {
		budget := s.Router.DensityBudget
		switch {
		case !hasGridComponent(s.Plan.Components):
			log.add("layout %s requires a grid-capable component; rerouted to %s", variant, layout.Fallback)
			variant = layout.Fallback
		case len(s.Plan.Components) < 2:
			log.add("layout %s needs at least 2 components; rerouted to %s", variant, layout.Fallback)
			variant = layout.Fallback
		case budget != nil && budget.MaxItems > 0 && budget.MaxItems < 2:
			log.add("density budget too tight for layout %s; rerouted to %s", variant, layout.Fallback)
			variant = layout.Fallback
		}
	}
	e.capComponents(s, variant, log)
	return variant
}

// postFeasibility re-verifies the variant against the repaired component
// set. Content repair can downgrade components, so grid and split
// requirements are rechecked; the diagram rule runs last so a later check
// cannot undo the visual zone it establishes.
func (e *Engine) postFeasibility(s *slide.Slide, variant layout.Variant, log *warningLog) layout.Variant {
	spec := layout.SpecFor(variant)
	if spec.RequiresGrid {
		switch {
		case !hasGridComponent(s.Plan.Components):
			log.add("layout %s lost its grid-capable component during repair; rerouted to %s", variant, layout.Fallback)
			variant = layout.Fallback
		case len(s.Plan.Components) < spec.MinComponents:
			log.add("layout %s fell below %d components; rerouted to %s", variant, spec.MinComponents, layout.Fallback)
			variant = layout.Fallback
		}
		spec = layout.SpecFor(variant)
	}

	if spec.Split && len(s.Plan.Components) < 2 {
		log.add("split layout %s needs 2 components; rerouted to %s", variant, layout.Fallback)
		variant = layout.Fallback
		spec = layout.SpecFor(variant)
	}

	if hasKind(s.Plan.Components, slide.KindDiagramSVG) && !spec.VisualZone {
		forced := layout.VisualSplit
		if len(s.Plan.Components) < 2 {
			forced = layout.HeroCentered
		}
		log.add("diagram component requires a visual zone; layout set to %s", forced)
		variant = forced
	}

	e.capComponents(s, variant, log)
	return variant
}

// capComponents enforces the variant's maximum component count, evicting by
// the variant's priority order while preserving insertion order among the
// survivors.
func (e *Engine) capComponents(s *slide.Slide, variant layout.Variant, log *warningLog) {
	spec := layout.SpecFor(variant)
	components := s.Plan.Components
	if len(components) <= spec.MaxComponents {
		return
	}

	indices := make([]int, len(components))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return layout.EvictionRank(spec, slide.Kind(components[indices[a]].Type)) <
			layout.EvictionRank(spec, slide.Kind(components[indices[b]].Type))
	})

	keep := indices[:spec.MaxComponents]
	sort.Ints(keep)

	kept := make([]slide.Component, 0, len(keep))
	for _, idx := range keep {
		kept = append(kept, components[idx])
	}
	dropped := len(components) - len(kept)
	s.Plan.Components = kept
	log.add("dropped %d component(s) to fit layout %s (max %d)", dropped, variant, spec.MaxComponents)
}
