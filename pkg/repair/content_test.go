package repair

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/goliatone/go-slidefix/pkg/slide"
)

func standardSlide(components ...slide.Component) *slide.Slide {
	return &slide.Slide{
		Router: slide.RouterConfig{LayoutVariant: "standard-vertical"},
		Plan:   slide.LayoutPlan{Components: components},
	}
}

func TestRepairMetricsFromBareStrings(t *testing.T) {
	t.Parallel()

	s := standardSlide(slide.Component{
		Type: "stats",
		Raw:  map[string]any{"type": "stats", "items": []any{"42%", "Growth"}},
	})
	New().Repair(s)

	c := s.Plan.Components[0]
	if slide.Kind(c.Type) != slide.KindMetricCards {
		t.Fatalf("expected metric-cards, got %q", c.Type)
	}
	want := []slide.MetricItem{
		{Value: "42%", Label: "Metric 1", Icon: "bar-chart"},
		{Value: "Growth", Label: "Metric 2", Icon: "target"},
	}
	if diff := cmp.Diff(want, c.Metrics); diff != "" {
		t.Fatalf("metrics mismatch (-want +got):\n%s", diff)
	}
}

func TestRepairMetricsDowngradesWhenAllPlaceholders(t *testing.T) {
	t.Parallel()

	s := &slide.Slide{
		Title:  "Metrics Overview",
		Router: slide.RouterConfig{LayoutVariant: "standard-vertical"},
		Plan: slide.LayoutPlan{Components: []slide.Component{{
			Type: string(slide.KindMetricCards),
			Raw: map[string]any{
				"items": []any{
					map[string]any{"value": "N/A", "label": "Uptime"},
					map[string]any{"value": "TBD", "label": "Latency"},
				},
			},
		}}},
	}
	New().Repair(s)

	c := s.Plan.Components[0]
	if slide.Kind(c.Type) != slide.KindTextBullets {
		t.Fatalf("expected downgrade to text-bullets, got %q", c.Type)
	}
	if diff := cmp.Diff([]string{"Metrics Overview"}, c.Bullets); diff != "" {
		t.Fatalf("fallback bullets mismatch (-want +got):\n%s", diff)
	}
	if !hasWarning(s, "metric-cards component 1 converted to text-bullets (fewer than 2 valid metrics)") {
		t.Fatalf("missing downgrade warning, got %v", s.Warnings)
	}
}

func TestRepairMetricsReplacesGarbageLabel(t *testing.T) {
	t.Parallel()

	s := standardSlide(slide.Component{
		Type: string(slide.KindMetricCards),
		Raw: map[string]any{
			"items": []any{
				map[string]any{"value": "91%", "label": "go go go go go go go"},
				map[string]any{"value": "12ms", "label": "Latency"},
			},
		},
	})
	New().Repair(s)

	c := s.Plan.Components[0]
	if got := c.Metrics[0].Label; got != "Metric 1" {
		t.Fatalf("garbage label should be replaced, got %q", got)
	}
	if !hasWarning(s, "metric item 1 label replaced (degenerate text)") {
		t.Fatalf("missing garbage warning, got %v", s.Warnings)
	}
}

func TestRepairMetricsTruncatesAndKeepsKnownIcon(t *testing.T) {
	t.Parallel()

	s := standardSlide(slide.Component{
		Type: string(slide.KindMetricCards),
		Raw: map[string]any{
			"items": []any{
				map[string]any{"value": "123456789012", "label": "A very long metric label indeed", "icon": "zap"},
				map[string]any{"value": "7", "label": "Count", "icon": "dragon"},
			},
		},
	})
	New().Repair(s)

	m := s.Plan.Components[0].Metrics
	if m[0].Value != "1234567890" {
		t.Fatalf("value should truncate to 10 runes, got %q", m[0].Value)
	}
	if got := len([]rune(m[0].Label)); got != 20 {
		t.Fatalf("label should truncate to 20 runes, got %d", got)
	}
	if m[0].Icon != "zap" {
		t.Fatalf("recognised icon should survive, got %q", m[0].Icon)
	}
	if m[1].Icon != "target" {
		t.Fatalf("unknown icon should map to palette position, got %q", m[1].Icon)
	}
}

func TestRepairStepsSynthesizesNumbersAndTitles(t *testing.T) {
	t.Parallel()

	s := standardSlide(slide.Component{
		Type: string(slide.KindProcessFlow),
		Raw: map[string]any{
			"steps": []any{
				"Collect requirements from every stakeholder group",
				map[string]any{"title": "Build", "description": "Implement the plan"},
				map[string]any{"number": 9, "title": ""},
			},
		},
	})
	New().Repair(s)

	steps := s.Plan.Components[0].Steps
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	if steps[0].Number != 1 || steps[1].Number != 2 {
		t.Fatalf("missing numbers should come from position, got %d and %d", steps[0].Number, steps[1].Number)
	}
	if got := len([]rune(steps[0].Title)); got > 15 {
		t.Fatalf("step title should truncate to 15 runes, got %d", got)
	}
	if steps[0].Description == "" {
		t.Fatal("long bare-string step should keep full text as description")
	}
	if steps[2].Number != 9 {
		t.Fatalf("explicit step number should survive, got %d", steps[2].Number)
	}
	if steps[2].Title != "Step 3" {
		t.Fatalf("empty step title should be synthesized, got %q", steps[2].Title)
	}
}

func TestRepairIconsDowngradesWhenEmpty(t *testing.T) {
	t.Parallel()

	s := &slide.Slide{
		Title:  "Capabilities",
		Router: slide.RouterConfig{LayoutVariant: "standard-vertical"},
		Plan: slide.LayoutPlan{Components: []slide.Component{{
			Type: string(slide.KindIconGrid),
			Raw:  map[string]any{"items": []any{}},
		}}},
	}
	New().Repair(s)

	c := s.Plan.Components[0]
	if slide.Kind(c.Type) != slide.KindTextBullets {
		t.Fatalf("empty icon grid should downgrade, got %q", c.Type)
	}
	if !hasWarning(s, "icon-grid component 1 converted to text-bullets (no grid items)") {
		t.Fatalf("missing downgrade warning, got %v", s.Warnings)
	}
}

func TestRepairIconsSynthesizesLabels(t *testing.T) {
	t.Parallel()

	s := standardSlide(slide.Component{
		Type: string(slide.KindIconGrid),
		Raw: map[string]any{
			"features": []any{
				map[string]any{"description": "Fast ingestion"},
				map[string]any{"label": "Secure", "icon": "globe"},
			},
		},
	})
	New().Repair(s)

	icons := s.Plan.Components[0].Icons
	if icons[0].Label != "Feature 1" {
		t.Fatalf("missing label should be synthesized, got %q", icons[0].Label)
	}
	if icons[1].Icon != "globe" {
		t.Fatalf("recognised icon should survive, got %q", icons[1].Icon)
	}
}

func TestRepairChartCoercesStringsAndDropsNonNumeric(t *testing.T) {
	t.Parallel()

	s := standardSlide(slide.Component{
		Type: string(slide.KindChartFrame),
		Raw: map[string]any{
			"data": []any{
				"Q1",
				map[string]any{"label": "Q2", "value": "37.5"},
				map[string]any{"label": "Q3"},
				`{"label":"Q4","value":12}`,
			},
		},
	})
	New().Repair(s)

	points := s.Plan.Components[0].Points
	want := []slide.ChartPoint{
		{Label: "Q1", Value: 10},
		{Label: "Q2", Value: 37.5},
		{Label: "Q4", Value: 12},
	}
	if diff := cmp.Diff(want, points); diff != "" {
		t.Fatalf("chart points mismatch (-want +got):\n%s", diff)
	}
	if !hasWarning(s, "dropped chart point 3 (no numeric value)") {
		t.Fatalf("missing dropped-point warning, got %v", s.Warnings)
	}
}

func TestRepairChartDowngradesWithoutPoints(t *testing.T) {
	t.Parallel()

	s := &slide.Slide{
		Title:  "Trends",
		Router: slide.RouterConfig{LayoutVariant: "standard-vertical"},
		Plan: slide.LayoutPlan{Components: []slide.Component{{
			Type: string(slide.KindChartFrame),
			Raw:  map[string]any{"data": []any{map[string]any{"label": "no value"}}},
		}}},
	}
	New().Repair(s)

	if got := slide.Kind(s.Plan.Components[0].Type); got != slide.KindTextBullets {
		t.Fatalf("chart without plottable points should downgrade, got %q", got)
	}
}

func TestRepairDiagramSanitizesMarkup(t *testing.T) {
	t.Parallel()

	s := standardSlide(
		slide.Component{Type: string(slide.KindTextBullets), Raw: map[string]any{"items": []any{"context"}}},
		slide.Component{
			Type: string(slide.KindDiagramSVG),
			Raw:  map[string]any{"markup": `<svg><script>alert(1)</script><rect x="1" y="1"></rect></svg>`},
		},
	)
	New().Repair(s)

	var markup string
	for _, c := range s.Plan.Components {
		if slide.Kind(c.Type) == slide.KindDiagramSVG {
			markup = c.Markup
		}
	}
	if markup == "" {
		t.Fatalf("diagram should survive sanitization, components: %+v", s.Plan.Components)
	}
	if strings.Contains(markup, "<script") {
		t.Fatalf("script elements must be stripped, got %q", markup)
	}
	if !strings.Contains(markup, "<rect") {
		t.Fatalf("safe shapes must survive, got %q", markup)
	}
}

func TestRepairDiagramDowngradesProse(t *testing.T) {
	t.Parallel()

	s := &slide.Slide{
		Title:  "System Overview",
		Router: slide.RouterConfig{LayoutVariant: "standard-vertical"},
		Plan: slide.LayoutPlan{Components: []slide.Component{{
			Type: string(slide.KindDiagramSVG),
			Raw:  map[string]any{"markup": "a description instead of markup"},
		}}},
	}
	New().Repair(s)

	if got := slide.Kind(s.Plan.Components[0].Type); got != slide.KindTextBullets {
		t.Fatalf("prose markup should downgrade, got %q", got)
	}
	if !hasWarning(s, "diagram-svg component 1 converted to text-bullets (no usable markup)") {
		t.Fatalf("missing downgrade warning, got %v", s.Warnings)
	}
}

func TestRepairBulletsDedupsAndCaps(t *testing.T) {
	t.Parallel()

	s := standardSlide(slide.Component{
		Type: string(slide.KindTextBullets),
		Raw: map[string]any{
			"items": []any{
				"First point",
				"first point",
				"  ",
				"Second point",
				"Third point",
				"Fourth point",
				"Fifth point",
			},
		},
	})
	New().Repair(s)

	c := s.Plan.Components[0]
	want := []string{"First point", "Second point", "Third point", "Fourth point"}
	if diff := cmp.Diff(want, c.Bullets); diff != "" {
		t.Fatalf("bullets mismatch (-want +got):\n%s", diff)
	}
	if !hasWarning(s, "bullet list in component 1 capped to 4 lines") {
		t.Fatalf("missing cap warning, got %v", s.Warnings)
	}
}

func TestRepairBulletsHonorsDensityBudget(t *testing.T) {
	t.Parallel()

	s := &slide.Slide{
		Router: slide.RouterConfig{
			LayoutVariant: "standard-vertical",
			DensityBudget: &slide.DensityBudget{MaxItems: 2, MaxChars: 100},
		},
		Plan: slide.LayoutPlan{Components: []slide.Component{{
			Type: string(slide.KindTextBullets),
			Raw: map[string]any{
				"items": []any{
					"A perfectly ordinary bullet line that runs past fifty characters easily",
					"Short line",
					"Another line",
				},
			},
		}}},
	}
	New().Repair(s)

	c := s.Plan.Components[0]
	if len(c.Bullets) != 2 {
		t.Fatalf("budget should cap to 2 lines, got %d", len(c.Bullets))
	}
	for _, line := range c.Bullets {
		if got := len([]rune(line)); got > 50 {
			t.Fatalf("budget share should cap lines at 50 runes, got %d in %q", got, line)
		}
	}
}
