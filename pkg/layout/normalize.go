package layout

import (
	"sort"
	"strings"
)

// variantSynonyms maps fuzzy variant labels emitted by layout selectors to
// table entries. Keys are lowercase with separators folded.
var variantSynonyms = map[string]Variant{
	"hero":         HeroCentered,
	"herocentred":  HeroCentered,
	"centered":     HeroCentered,
	"spotlight":    HeroCentered,
	"standard":     StandardVertical,
	"vertical":     StandardVertical,
	"stacked":      StandardVertical,
	"default":      StandardVertical,
	"classic":      StandardVertical,
	"bento":        BentoGrid,
	"grid":         BentoGrid,
	"cards":        BentoGrid,
	"dashboard":    BentoGrid,
	"metricrow":    MetricStrip,
	"statstrip":    MetricStrip,
	"kpirow":       MetricStrip,
	"split":        VisualSplit,
	"twocolumn":    VisualSplit,
	"sidebyside":   VisualSplit,
	"halfhalf":     VisualSplit,
	"timeline":     TimelineFlow,
	"roadmap":      TimelineFlow,
	"journey":      TimelineFlow,
	"fullbleed":    FullBleedVisual,
	"fullvisual":   FullBleedVisual,
	"imagefull":    FullBleedVisual,
	"visualheavy":  FullBleedVisual,
	"illustrative": FullBleedVisual,
}

// Normalize maps an arbitrary variant label onto the table. The second return
// reports whether the label resolved without falling back; callers use it to
// record a repair warning.
func Normalize(raw string) (Variant, bool) {
	trimmed := strings.TrimSpace(strings.ToLower(raw))
	if trimmed == "" {
		return Fallback, false
	}
	if Known(Variant(trimmed)) {
		return Variant(trimmed), true
	}

	folded := foldSeparators(trimmed)
	for _, v := range Variants() {
		if foldSeparators(string(v)) == folded {
			return v, true
		}
	}
	if v, ok := variantSynonyms[folded]; ok {
		return v, true
	}
	for _, v := range Variants() {
		if strings.Contains(folded, foldSeparators(string(v))) {
			return v, true
		}
	}
	for _, key := range sortedSynonymKeys() {
		if strings.Contains(folded, key) {
			return variantSynonyms[key], true
		}
	}
	return Fallback, false
}

func foldSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '-', '_', ' ', '.':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// sortedSynonymKeys keeps the substring fallback deterministic instead of
// depending on map iteration order.
func sortedSynonymKeys() []string {
	keys := make([]string, 0, len(variantSynonyms))
	for key := range variantSynonyms {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
