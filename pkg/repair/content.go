package repair

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-slidefix/pkg/layout"
	"github.com/goliatone/go-slidefix/pkg/slide"
)

// Hard per-kind ceilings. The density budget can only tighten these.
const (
	maxMetricItems = 3
	maxStepItems   = 4
	maxIconItems   = 5

	metricValueChars = 10
	metricLabelChars = 20
	stepTitleChars   = 15
	stepDescChars    = 70
	iconLabelChars   = 20
	iconDescChars    = 60
	chartLabelChars  = 18
	planTitleChars   = 70
)

// itemProps lists the accepted item property names per kind, scanned in
// order. Generators rename the list field constantly.
var itemProps = map[slide.Kind][]string{
	slide.KindMetricCards: {"items", "metrics", "cards", "stats", "data", "values"},
	slide.KindProcessFlow: {"items", "steps", "stages", "phases", "sequence"},
	slide.KindIconGrid:    {"items", "features", "icons", "cells", "entries"},
	slide.KindChartFrame:  {"items", "data", "points", "values", "series"},
	slide.KindTextBullets: {"items", "bullets", "lines", "points", "content", "text", "body"},
}

var markupProps = []string{"markup", "svg", "content", "body", "code"}

// repairContent runs the per-kind content repair over every component.
// Downgrade paths rewrite a component to text-bullets with fallback content;
// the trailing check routes those through the bullet repair so every
// surviving text component respects the variant caps.
func (e *Engine) repairContent(s *slide.Slide, variant layout.Variant, log *warningLog) {
	for i := range s.Plan.Components {
		c := &s.Plan.Components[i]
		switch slide.Kind(c.Type) {
		case slide.KindMetricCards:
			e.repairMetrics(s, c, i, log)
		case slide.KindProcessFlow:
			e.repairSteps(s, c, i, log)
		case slide.KindIconGrid:
			e.repairIcons(s, c, i, log)
		case slide.KindChartFrame:
			e.repairChart(s, c, i, log)
		case slide.KindDiagramSVG:
			e.repairDiagram(s, c, i, log)
		}
		if slide.Kind(c.Type) == slide.KindTextBullets {
			e.repairBullets(s, c, i, variant, log)
		}
	}
}

// componentItems resolves the item payload for repair: the first non-empty
// accepted raw property, or the canonical typed items for components that
// already passed through the engine.
func componentItems(c *slide.Component, kind slide.Kind) []any {
	if c.Raw != nil {
		for _, prop := range itemProps[kind] {
			if items := anySlice(c.Raw[prop]); len(items) > 0 {
				return items
			}
		}
		return nil
	}

	switch kind {
	case slide.KindMetricCards:
		out := make([]any, len(c.Metrics))
		for i, m := range c.Metrics {
			out[i] = map[string]any{"value": m.Value, "label": m.Label, "icon": m.Icon}
		}
		return out
	case slide.KindProcessFlow:
		out := make([]any, len(c.Steps))
		for i, st := range c.Steps {
			out[i] = map[string]any{"number": st.Number, "title": st.Title, "description": st.Description, "icon": st.Icon}
		}
		return out
	case slide.KindIconGrid:
		out := make([]any, len(c.Icons))
		for i, ic := range c.Icons {
			out[i] = map[string]any{"label": ic.Label, "description": ic.Description, "icon": ic.Icon}
		}
		return out
	case slide.KindChartFrame:
		out := make([]any, len(c.Points))
		for i, p := range c.Points {
			out[i] = map[string]any{"label": p.Label, "value": p.Value}
		}
		return out
	default:
		return toAnyLines(c.Bullets)
	}
}

// resetComponent clears every payload and marks the component canonical for
// the given kind. The title survives.
func resetComponent(c *slide.Component, kind slide.Kind) {
	c.Type = string(kind)
	c.Metrics = nil
	c.Steps = nil
	c.Icons = nil
	c.Points = nil
	c.Bullets = nil
	c.Markup = ""
	c.Raw = nil
}

// downgrade rewrites a component whose content could not be salvaged into a
// text-bullets component fed by the fallback synthesis. The bullet payload
// is staged as raw items so the regular bullet repair applies the variant
// caps afterwards.
func (e *Engine) downgrade(s *slide.Slide, c *slide.Component, index int, from slide.Kind, reason string, log *warningLog) {
	lines := e.fallbackBullets(s, c, from)
	title := c.Title
	resetComponent(c, slide.KindTextBullets)
	c.Title = title
	c.Raw = map[string]any{"items": toAnyLines(lines)}
	log.add("%s component %d converted to text-bullets (%s)", from, index+1, reason)
}

func (e *Engine) repairMetrics(s *slide.Slide, c *slide.Component, index int, log *warningLog) {
	items := componentItems(c, slide.KindMetricCards)
	if len(items) == 0 {
		e.downgrade(s, c, index, slide.KindMetricCards, "no metric items", log)
		return
	}

	metrics := make([]slide.MetricItem, 0, len(items))
	for i, entry := range items {
		record := coerceItem(entry, i+1, contextMetric)
		value := strings.TrimSpace(firstString(record, "value", "number", "figure", "amount"))
		label := strings.TrimSpace(firstString(record, "label", "title", "name"))
		icon := strings.TrimSpace(stringify(record["icon"]))

		if isGarbage(label) {
			log.add("metric item %d label replaced (degenerate text)", i+1)
			label = fmt.Sprintf("Metric %d", i+1)
		}
		if isPlaceholder(value) {
			value = ""
		}
		if isPlaceholder(label) {
			label = ""
		}
		if value == "" || label == "" {
			log.add("dropped metric item %d (empty or placeholder value)", i+1)
			continue
		}

		metrics = append(metrics, slide.MetricItem{
			Value: truncate(value, metricValueChars),
			Label: truncate(label, metricLabelChars),
			Icon:  e.iconFor(icon, i),
		})
	}

	if len(metrics) < 2 {
		e.downgrade(s, c, index, slide.KindMetricCards, "fewer than 2 valid metrics", log)
		return
	}

	limit := itemCap(maxMetricItems, s.Router.DensityBudget)
	if len(metrics) > limit {
		metrics = metrics[:limit]
		log.add("metric-cards component %d capped to %d items", index+1, limit)
	}

	title := c.Title
	resetComponent(c, slide.KindMetricCards)
	c.Title = title
	c.Metrics = metrics
}

func (e *Engine) repairSteps(s *slide.Slide, c *slide.Component, index int, log *warningLog) {
	items := componentItems(c, slide.KindProcessFlow)

	steps := make([]slide.StepItem, 0, len(items))
	for i, entry := range items {
		record := coerceItem(entry, i+1, contextStep)
		number, ok := intValue(record["number"])
		if !ok || number <= 0 {
			number = i + 1
		}
		title := strings.TrimSpace(firstString(record, "title", "name", "label", "step"))
		if title == "" || isGarbage(title) {
			title = fmt.Sprintf("Step %d", i+1)
		}
		description := strings.TrimSpace(firstString(record, "description", "desc", "text", "detail"))
		icon := strings.TrimSpace(stringify(record["icon"]))

		steps = append(steps, slide.StepItem{
			Number:      number,
			Title:       truncate(title, stepTitleChars),
			Description: truncate(description, stepDescChars),
			Icon:        e.iconFor(icon, i),
		})
	}

	// Short or empty step lists are tolerated; there is no downgrade path.
	limit := itemCap(maxStepItems, s.Router.DensityBudget)
	if len(steps) > limit {
		steps = steps[:limit]
		log.add("process-flow component %d capped to %d steps", index+1, limit)
	}

	title := c.Title
	resetComponent(c, slide.KindProcessFlow)
	c.Title = title
	c.Steps = steps
}

func (e *Engine) repairIcons(s *slide.Slide, c *slide.Component, index int, log *warningLog) {
	items := componentItems(c, slide.KindIconGrid)
	if len(items) == 0 {
		e.downgrade(s, c, index, slide.KindIconGrid, "no grid items", log)
		return
	}

	icons := make([]slide.IconItem, 0, len(items))
	for i, entry := range items {
		record := coerceItem(entry, i+1, contextGeneric)
		label := strings.TrimSpace(firstString(record, "label", "title", "name"))
		if isGarbage(label) {
			log.add("icon-grid item %d label replaced (degenerate text)", i+1)
			label = ""
		}
		if label == "" {
			label = fmt.Sprintf("Feature %d", i+1)
		}
		description := strings.TrimSpace(firstString(record, "description", "desc", "text"))
		icon := strings.TrimSpace(stringify(record["icon"]))

		icons = append(icons, slide.IconItem{
			Label:       truncate(label, iconLabelChars),
			Description: truncate(description, iconDescChars),
			Icon:        e.iconFor(icon, i),
		})
	}

	limit := itemCap(maxIconItems, s.Router.DensityBudget)
	if len(icons) > limit {
		icons = icons[:limit]
		log.add("icon-grid component %d capped to %d items", index+1, limit)
	}

	title := c.Title
	resetComponent(c, slide.KindIconGrid)
	c.Title = title
	c.Icons = icons
}

func (e *Engine) repairChart(s *slide.Slide, c *slide.Component, index int, log *warningLog) {
	items := componentItems(c, slide.KindChartFrame)

	points := make([]slide.ChartPoint, 0, len(items))
	for i, entry := range items {
		var record map[string]any
		switch v := entry.(type) {
		case map[string]any:
			record = v
		case string:
			if parsed, ok := parseJSONObject(v); ok {
				record = parsed
			} else {
				points = append(points, slide.ChartPoint{
					Label: truncate(strings.TrimSpace(v), chartLabelChars),
					Value: float64((i + 1) * 10),
				})
				continue
			}
		default:
			if value, ok := numericValue(v); ok {
				points = append(points, slide.ChartPoint{
					Label: fmt.Sprintf("Item %d", i+1),
					Value: value,
				})
			}
			continue
		}

		value, ok := numericValue(record["value"])
		if !ok {
			value, ok = numericValue(record["y"])
		}
		if !ok {
			log.add("dropped chart point %d (no numeric value)", i+1)
			continue
		}
		label := strings.TrimSpace(firstString(record, "label", "name", "x"))
		points = append(points, slide.ChartPoint{
			Label: truncate(label, chartLabelChars),
			Value: value,
		})
	}

	if len(points) == 0 {
		e.downgrade(s, c, index, slide.KindChartFrame, "no plottable points", log)
		return
	}

	if budget := s.Router.DensityBudget; budget != nil && budget.MaxItems > 0 && len(points) > budget.MaxItems {
		points = points[:budget.MaxItems]
		log.add("chart-frame component %d capped to %d points", index+1, budget.MaxItems)
	}

	title := c.Title
	resetComponent(c, slide.KindChartFrame)
	c.Title = title
	c.Points = points
}

func (e *Engine) repairDiagram(s *slide.Slide, c *slide.Component, index int, log *warningLog) {
	markup := c.Markup
	if c.Raw != nil {
		markup = firstString(c.Raw, markupProps...)
	}

	cleaned := e.sanitize(markup)
	if cleaned == "" {
		e.downgrade(s, c, index, slide.KindDiagramSVG, "no usable markup", log)
		return
	}
	if cleaned != strings.TrimSpace(markup) {
		log.add("diagram component %d markup sanitized", index+1)
	}

	title := c.Title
	resetComponent(c, slide.KindDiagramSVG)
	c.Title = title
	c.Markup = cleaned
}

func (e *Engine) repairBullets(s *slide.Slide, c *slide.Component, index int, variant layout.Variant, log *warningLog) {
	spec := layout.SpecFor(variant)
	budget := s.Router.DensityBudget
	items := componentItems(c, slide.KindTextBullets)

	var lines []string
	seen := make(map[string]struct{}, len(items))
	for _, entry := range items {
		line := strings.TrimSpace(stringify(entry))
		if line == "" {
			continue
		}
		if isGarbage(line) {
			line = truncate(line, 50) + "..."
			log.add("bullet line truncated in component %d (degenerate text)", index+1)
		}
		key := strings.ToLower(line)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		lines = append(lines, line)
	}

	charLimit := bulletCharCap(spec, len(lines), budget)
	truncated := false
	for i := range lines {
		if runeLen(lines[i]) > charLimit {
			lines[i] = truncate(lines[i], charLimit)
			truncated = true
		}
	}
	if truncated {
		log.add("bullet lines in component %d truncated to %d characters", index+1, charLimit)
		lines = dedupeFold(lines)
	}

	countLimit := itemCap(spec.BulletMax, budget)
	if len(lines) > countLimit {
		lines = lines[:countLimit]
		log.add("bullet list in component %d capped to %d lines", index+1, countLimit)
	}

	title := truncate(c.Title, planTitleChars)
	resetComponent(c, slide.KindTextBullets)
	c.Title = title
	c.Bullets = lines
}

// dedupeFold removes case-insensitive duplicates preserving first-seen order.
func dedupeFold(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := lines[:0]
	for _, line := range lines {
		key := strings.ToLower(line)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, line)
	}
	return out
}
