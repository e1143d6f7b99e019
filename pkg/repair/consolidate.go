package repair

import (
	"strings"

	"github.com/goliatone/go-slidefix/pkg/layout"
	"github.com/goliatone/go-slidefix/pkg/slide"
)

// consolidate merges duplicate or excess text-bullets components into one.
// Triggered when the text component count exceeds the variant's tolerance or
// any two text components are exact case-insensitive duplicates. The merged
// component keeps the position of the first one.
func (e *Engine) consolidate(s *slide.Slide, variant layout.Variant, log *warningLog) {
	var textIndices []int
	for i := range s.Plan.Components {
		if slide.Kind(s.Plan.Components[i].Type) == slide.KindTextBullets {
			textIndices = append(textIndices, i)
		}
	}
	if len(textIndices) < 2 {
		return
	}

	spec := layout.SpecFor(variant)
	if len(textIndices) <= spec.TextComponentMax() && !hasDuplicateText(s.Plan.Components, textIndices) {
		return
	}

	seen := make(map[string]struct{})
	var lines []string
	title := ""
	for _, idx := range textIndices {
		c := &s.Plan.Components[idx]
		if title == "" {
			title = c.Title
		}
		for _, line := range c.Bullets {
			key := strings.ToLower(line)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			lines = append(lines, truncate(line, layout.GlobalBulletChars))
		}
	}
	if len(lines) > spec.BulletMax {
		lines = lines[:spec.BulletMax]
	}

	merged := slide.Component{
		Type:    string(slide.KindTextBullets),
		Title:   title,
		Bullets: lines,
	}

	kept := make([]slide.Component, 0, len(s.Plan.Components)-len(textIndices)+1)
	for i := range s.Plan.Components {
		if i == textIndices[0] {
			kept = append(kept, merged)
			continue
		}
		if slide.Kind(s.Plan.Components[i].Type) == slide.KindTextBullets {
			continue
		}
		kept = append(kept, s.Plan.Components[i])
	}
	s.Plan.Components = kept
	log.add("merged %d text components into one", len(textIndices))
}

func hasDuplicateText(components []slide.Component, indices []int) bool {
	seen := make(map[string]struct{}, len(indices))
	for _, idx := range indices {
		c := &components[idx]
		key := strings.ToLower(c.Title) + "\n" + strings.ToLower(strings.Join(c.Bullets, "\n"))
		if _, dup := seen[key]; dup {
			return true
		}
		seen[key] = struct{}{}
	}
	return false
}
