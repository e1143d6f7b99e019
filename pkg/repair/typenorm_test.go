package repair

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/goliatone/go-slidefix/pkg/slide"
)

func TestNormalizeType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want slide.Kind
	}{
		{"metric-cards", slide.KindMetricCards},
		{"  Text-Bullets ", slide.KindTextBullets},
		{"stats", slide.KindMetricCards},
		{"KPIs", slide.KindMetricCards},
		{"metricCards", slide.KindMetricCards},
		{"bar_chart", slide.KindChartFrame},
		{"dataViz", slide.KindChartFrame},
		{"workflow", slide.KindProcessFlow},
		{"timeline", slide.KindProcessFlow},
		{"feature-grid", slide.KindIconGrid},
		{"capabilities", slide.KindIconGrid},
		{"architecture", slide.KindDiagramSVG},
		{"svg", slide.KindDiagramSVG},
		{"bulletPoints", slide.KindTextBullets},
		{"fancy-metric-cards-v2", slide.KindMetricCards},
		{"mystery-widget", slide.KindTextBullets},
		{"", slide.KindTextBullets},
	}

	for _, tc := range tests {
		if got := NormalizeType(tc.raw); got != tc.want {
			t.Errorf("NormalizeType(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestRepairRecoversEmbeddedPlan(t *testing.T) {
	t.Parallel()

	s := &slide.Slide{
		Title:  "Architecture",
		Router: slide.RouterConfig{LayoutVariant: "standard-vertical"},
		Plan: slide.LayoutPlan{Components: []slide.Component{
			{Type: `{"components":[{"type":"text-bullets","items":["alpha","beta"]}]}`},
		}},
	}

	New().Repair(s)

	if len(s.Plan.Components) != 1 {
		t.Fatalf("expected 1 recovered component, got %d", len(s.Plan.Components))
	}
	c := s.Plan.Components[0]
	if slide.Kind(c.Type) != slide.KindTextBullets {
		t.Fatalf("recovered component type = %q", c.Type)
	}
	if diff := cmp.Diff([]string{"alpha", "beta"}, c.Bullets); diff != "" {
		t.Fatalf("recovered bullets mismatch (-want +got):\n%s", diff)
	}
	if !hasWarning(s, "recovered embedded layout plan serialized into component 1 type field") {
		t.Fatalf("missing recovery warning, got %v", s.Warnings)
	}
}

func TestRepairRecoversPlanNestedUnderLayoutPlanKey(t *testing.T) {
	t.Parallel()

	s := &slide.Slide{
		Router: slide.RouterConfig{LayoutVariant: "standard-vertical"},
		Plan: slide.LayoutPlan{Components: []slide.Component{
			{Type: `{"layoutPlan":{"components":[{"type":"stats","items":["90%","Coverage"]}]}}`},
		}},
	}

	New().Repair(s)

	if len(s.Plan.Components) != 1 {
		t.Fatalf("expected 1 recovered component, got %d", len(s.Plan.Components))
	}
	if slide.Kind(s.Plan.Components[0].Type) != slide.KindMetricCards {
		t.Fatalf("recovered component type = %q", s.Plan.Components[0].Type)
	}
}

func TestRepairSynthesizesTypelessComponent(t *testing.T) {
	t.Parallel()

	s := &slide.Slide{
		Title:  "Roadmap",
		Router: slide.RouterConfig{LayoutVariant: "standard-vertical"},
		Plan: slide.LayoutPlan{Components: []slide.Component{
			{Raw: map[string]any{}},
		}},
	}

	New().Repair(s)

	c := s.Plan.Components[0]
	if slide.Kind(c.Type) != slide.KindTextBullets {
		t.Fatalf("typeless component should become text-bullets, got %q", c.Type)
	}
	if diff := cmp.Diff([]string{"Content from component 1"}, c.Bullets); diff != "" {
		t.Fatalf("synthesized bullets mismatch (-want +got):\n%s", diff)
	}
	if !hasWarning(s, "component 1 had no type; coerced to text-bullets") {
		t.Fatalf("missing synthesis warning, got %v", s.Warnings)
	}
}

func TestRepairUnknownTypeWithoutContent(t *testing.T) {
	t.Parallel()

	s := &slide.Slide{
		Title:  "Mystery",
		Router: slide.RouterConfig{LayoutVariant: "standard-vertical"},
		Plan: slide.LayoutPlan{Components: []slide.Component{
			{Type: "xyz-unknown-blob", Raw: map[string]any{"type": "xyz-unknown-blob"}},
		}},
	}

	New().Repair(s)

	c := s.Plan.Components[0]
	if slide.Kind(c.Type) != slide.KindTextBullets {
		t.Fatalf("unknown type should become text-bullets, got %q", c.Type)
	}
	if diff := cmp.Diff([]string{"Content from component 1"}, c.Bullets); diff != "" {
		t.Fatalf("placeholder bullets mismatch (-want +got):\n%s", diff)
	}
	if !hasWarning(s, "component 1 had no usable content; synthesized placeholder") {
		t.Fatalf("missing placeholder warning, got %v", s.Warnings)
	}
}

func TestRepairUnknownTypeKeepsSalvageableContent(t *testing.T) {
	t.Parallel()

	s := &slide.Slide{
		Router: slide.RouterConfig{LayoutVariant: "standard-vertical"},
		Plan: slide.LayoutPlan{Components: []slide.Component{
			{Type: "mystery-widget", Raw: map[string]any{"type": "mystery-widget", "description": "What the widget does"}},
		}},
	}

	New().Repair(s)

	c := s.Plan.Components[0]
	if diff := cmp.Diff([]string{"What the widget does"}, c.Bullets); diff != "" {
		t.Fatalf("salvaged bullets mismatch (-want +got):\n%s", diff)
	}
}

func TestRepairSalvagesTypelessContent(t *testing.T) {
	t.Parallel()

	s := &slide.Slide{
		Router: slide.RouterConfig{LayoutVariant: "standard-vertical"},
		Plan: slide.LayoutPlan{Components: []slide.Component{
			{Raw: map[string]any{"text": "The quarterly numbers improved"}},
		}},
	}

	New().Repair(s)

	c := s.Plan.Components[0]
	if diff := cmp.Diff([]string{"The quarterly numbers improved"}, c.Bullets); diff != "" {
		t.Fatalf("salvaged bullets mismatch (-want +got):\n%s", diff)
	}
}
