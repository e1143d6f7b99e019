package repair

import (
	"strings"

	"github.com/goliatone/go-slidefix/pkg/slide"
)

const maxFallbackBullets = 4

// neutralBullets holds the fixed placeholder sets used when a downgrade
// finds nothing salvageable, keyed by the kind that triggered the downgrade.
var neutralBullets = map[slide.Kind][]string{
	slide.KindMetricCards: {
		"Key figures pending final data",
		"Supporting detail in speaker notes",
	},
	slide.KindIconGrid: {
		"Highlights being finalized",
		"Supporting points to follow",
	},
	slide.KindChartFrame: {
		"Chart data not yet available",
		"Visual summary to follow",
	},
}

// fallbackBullets synthesizes bullet content for a component downgraded to
// text-bullets: salvaged body lines first, then the first two speaker notes,
// the layout-plan title, and the slide title. A leading "Slide: " prefix is
// stripped, duplicates are removed, and the slide title itself is dropped
// whenever at least one other item survives.
func (e *Engine) fallbackBullets(s *slide.Slide, c *slide.Component, trigger slide.Kind) []string {
	var candidates []string
	if c.Raw != nil {
		for _, prop := range []string{"content", "text", "body", "items", "bullets", "lines"} {
			switch v := c.Raw[prop].(type) {
			case string:
				candidates = append(candidates, v)
			case []any:
				for _, entry := range v {
					if line, ok := entry.(string); ok {
						candidates = append(candidates, line)
					}
				}
			}
		}
	}
	for i, note := range s.SpeakerNotes {
		if i >= 2 {
			break
		}
		candidates = append(candidates, note)
	}
	candidates = append(candidates, s.Plan.Title, s.Title)

	slideTitle := strings.TrimSpace(s.Title)
	seen := make(map[string]struct{}, len(candidates))
	var items []string
	for _, candidate := range candidates {
		line := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(candidate), "Slide: "))
		if line == "" {
			continue
		}
		key := strings.ToLower(line)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		items = append(items, line)
	}

	if slideTitle != "" {
		withoutTitle := items[:0:0]
		for _, item := range items {
			if !strings.EqualFold(item, slideTitle) {
				withoutTitle = append(withoutTitle, item)
			}
		}
		if len(withoutTitle) >= 1 {
			items = withoutTitle
		}
	}

	if len(items) > maxFallbackBullets {
		items = items[:maxFallbackBullets]
	}
	if len(items) > 0 {
		return items
	}

	if set, ok := neutralBullets[trigger]; ok {
		return append([]string(nil), set...)
	}
	// diagram-svg shares the visual wording.
	return append([]string(nil), neutralBullets[slide.KindChartFrame]...)
}
