package repair

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-slidefix/pkg/slide"
)

// kindPriority fixes the scan order for substring fallback: first hit wins,
// so the more specific kinds come before text-bullets.
var kindPriority = []slide.Kind{
	slide.KindMetricCards,
	slide.KindChartFrame,
	slide.KindProcessFlow,
	slide.KindIconGrid,
	slide.KindDiagramSVG,
	slide.KindTextBullets,
}

// typeSynonyms groups fuzzy type labels per canonical kind, listed in the
// same priority order used for substring scanning. Keys are matched against
// the lowercased raw label with separators folded.
var typeSynonyms = []struct {
	kind slide.Kind
	keys []string
}{
	{slide.KindMetricCards, []string{
		"metriccards", "metrics", "metric", "stats", "statistics", "kpis",
		"kpi", "scorecard", "datapoints", "figures", "numbers",
	}},
	{slide.KindChartFrame, []string{
		"chartframe", "barchart", "linechart", "piechart", "chart", "graph",
		"plot", "visualization", "dataviz",
	}},
	{slide.KindProcessFlow, []string{
		"processflow", "process", "workflow", "flow", "steps", "step",
		"stages", "sequence", "roadmap", "timeline",
	}},
	{slide.KindIconGrid, []string{
		"icongrid", "featuregrid", "features", "feature", "icons", "icon",
		"capabilities", "pillars", "benefits", "grid",
	}},
	{slide.KindDiagramSVG, []string{
		"diagramsvg", "diagram", "svg", "architecture", "schematic",
		"illustration", "figure",
	}},
	{slide.KindTextBullets, []string{
		"textbullets", "bulletpoints", "bullets", "bullet", "takeaways",
		"paragraph", "text", "list", "body", "content",
	}},
}

// contentFallbackProps is the priority list of alternative properties mined
// for content when a component arrives without a type.
var contentFallbackProps = []string{
	"text", "body", "paragraph", "items", "value", "label", "description",
}

// NormalizeType maps an arbitrary type label onto a canonical kind. Total:
// unresolvable labels default to text-bullets.
func NormalizeType(raw string) slide.Kind {
	kind, _ := resolveType(raw)
	return kind
}

// resolveType runs the lookup cascade and reports whether any tier matched;
// false means the text-bullets result is the default, not a recognition.
func resolveType(raw string) (slide.Kind, bool) {
	trimmed := strings.TrimSpace(strings.ToLower(raw))
	if slide.IsCanonical(trimmed) {
		return slide.Kind(trimmed), true
	}

	folded := foldLabel(trimmed)
	for _, group := range typeSynonyms {
		for _, key := range group.keys {
			if folded == key {
				return group.kind, true
			}
		}
	}
	for _, kind := range kindPriority {
		if strings.Contains(folded, foldLabel(string(kind))) {
			return kind, true
		}
	}
	for _, group := range typeSynonyms {
		for _, key := range group.keys {
			if strings.Contains(folded, key) {
				return group.kind, true
			}
		}
	}
	return slide.KindTextBullets, false
}

func foldLabel(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '-', '_', ' ', '.', '/':
			continue
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// normalizeTypes is stage one of the cascade: rescue embedded layout plans,
// canonicalize every component type, and synthesize content for typeless
// components.
func (e *Engine) normalizeTypes(s *slide.Slide, log *warningLog) {
	for i := range s.Plan.Components {
		rescued, ok := recoverEmbeddedPlan(s.Plan.Components[i].Type)
		if !ok {
			continue
		}
		s.Plan.Components = rescued
		log.add("recovered embedded layout plan serialized into component %d type field", i+1)
		break
	}

	for i := range s.Plan.Components {
		c := &s.Plan.Components[i]
		rawType := strings.TrimSpace(c.Type)
		if rawType == "" {
			e.synthesizeTypeless(c, i+1, log)
			continue
		}
		canonical, matched := resolveType(rawType)
		if string(canonical) != rawType {
			log.add("component %d type %q normalized to %s", i+1, rawType, canonical)
		}
		c.Type = string(canonical)
		if !matched {
			e.fillUnrecognized(c, i+1, log)
		}
	}
}

// fillUnrecognized backfills a component whose type label failed every
// lookup tier and whose properties carry nothing the bullet repair could
// use. The same salvage and positional placeholder as the typeless path
// apply, so an unknown empty component never reaches the renderer blank.
func (e *Engine) fillUnrecognized(c *slide.Component, position int, log *warningLog) {
	if len(componentItems(c, slide.KindTextBullets)) > 0 {
		return
	}
	lines := salvageContent(c.Raw)
	if len(lines) == 0 {
		lines = []string{fmt.Sprintf("Content from component %d", position)}
	}
	if c.Raw == nil {
		c.Raw = map[string]any{}
	}
	c.Raw["items"] = toAnyLines(lines)
	log.add("component %d had no usable content; synthesized placeholder", position)
}

// recoverEmbeddedPlan rescues payloads where an entire layout plan was
// erroneously serialized into a type field. The raw value must carry both a
// brace-delimited object and a layout-plan marker; parse failures degrade
// silently so normal type normalization can proceed.
func recoverEmbeddedPlan(rawType string) ([]slide.Component, bool) {
	open := strings.Index(rawType, "{")
	closing := strings.LastIndex(rawType, "}")
	if open < 0 || closing <= open {
		return nil, false
	}
	if !strings.Contains(rawType, "components") && !strings.Contains(rawType, "layoutPlan") {
		return nil, false
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(rawType[open:closing+1]), &parsed); err != nil {
		return nil, false
	}
	sequence, ok := parsed["components"].([]any)
	if !ok {
		if plan, planOK := parsed["layoutPlan"].(map[string]any); planOK {
			sequence, ok = plan["components"].([]any)
		}
	}
	if !ok || len(sequence) == 0 {
		return nil, false
	}

	recovered := make([]slide.Component, 0, len(sequence))
	for _, entry := range sequence {
		switch v := entry.(type) {
		case map[string]any:
			component := slide.Component{Raw: v}
			if t, isString := v["type"].(string); isString {
				component.Type = t
			}
			if title, isString := v["title"].(string); isString {
				component.Title = title
			}
			recovered = append(recovered, component)
		case string:
			recovered = append(recovered, slide.Component{Raw: map[string]any{"text": v}})
		}
	}
	if len(recovered) == 0 {
		return nil, false
	}
	return recovered, true
}

// synthesizeTypeless fills a typeless component with whatever content its
// alternative properties hold, falling back to a positional placeholder
// line. The component becomes text-bullets.
func (e *Engine) synthesizeTypeless(c *slide.Component, position int, log *warningLog) {
	lines := salvageContent(c.Raw)
	if len(lines) == 0 && len(c.Bullets) > 0 {
		// Already-canonical component constructed in memory; nothing to do.
		c.Type = string(slide.KindTextBullets)
		return
	}
	if len(lines) == 0 {
		lines = []string{fmt.Sprintf("Content from component %d", position)}
	}
	c.Type = string(slide.KindTextBullets)
	if c.Raw == nil {
		c.Raw = map[string]any{}
	}
	c.Raw["items"] = toAnyLines(lines)
	log.add("component %d had no type; coerced to text-bullets", position)
}

func salvageContent(raw map[string]any) []string {
	if raw == nil {
		return nil
	}
	for _, prop := range contentFallbackProps {
		value, ok := raw[prop]
		if !ok {
			continue
		}
		var lines []string
		switch v := value.(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				lines = []string{v}
			}
		case []any:
			for _, entry := range v {
				if s := strings.TrimSpace(stringify(entry)); s != "" {
					lines = append(lines, s)
				}
			}
		default:
			if s := strings.TrimSpace(stringify(v)); s != "" {
				lines = []string{s}
			}
		}
		if len(lines) > 0 {
			return lines
		}
	}
	return nil
}

func toAnyLines(lines []string) []any {
	out := make([]any, len(lines))
	for i, line := range lines {
		out[i] = line
	}
	return out
}
