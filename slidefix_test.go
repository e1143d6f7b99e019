package slidefix

import (
	"testing"

	"github.com/goliatone/go-slidefix/pkg/deck"
	"github.com/goliatone/go-slidefix/pkg/layout"
	"github.com/goliatone/go-slidefix/pkg/slide"
)

func TestRepairEntryPoint(t *testing.T) {
	t.Parallel()

	s := &Slide{
		Router: slide.RouterConfig{LayoutVariant: "bento"},
		Plan: slide.LayoutPlan{Components: []slide.Component{
			{Type: "stats", Raw: map[string]any{"items": []any{"42%", "Growth"}}},
		}},
	}
	Repair(s)

	if !layout.Known(layout.Variant(s.Router.LayoutVariant)) {
		t.Fatalf("repair left unknown variant %q", s.Router.LayoutVariant)
	}
	if got := slide.Kind(s.Plan.Components[0].Type); got != slide.KindMetricCards {
		t.Fatalf("repair left type %s", got)
	}
}

func TestRepairDeckNormalizesOrder(t *testing.T) {
	t.Parallel()

	d := &deck.Deck{Slides: []slide.Slide{
		{
			Order:  0,
			Router: slide.RouterConfig{LayoutVariant: "standard-vertical"},
			Plan:   slide.LayoutPlan{Components: []slide.Component{{Type: "text-bullets", Raw: map[string]any{"items": []any{"a"}}}}},
		},
		{
			Order:  7,
			Router: slide.RouterConfig{LayoutVariant: "standard-vertical"},
			Plan:   slide.LayoutPlan{Components: []slide.Component{{Type: "text-bullets", Raw: map[string]any{"items": []any{"b"}}}}},
		},
	}}
	RepairDeck(d)

	if d.Slides[0].Order != 1 {
		t.Fatalf("order should normalize to position, got %d", d.Slides[0].Order)
	}
	if d.Slides[1].Order != 7 {
		t.Fatalf("positive order should survive, got %d", d.Slides[1].Order)
	}
	found := false
	for _, w := range d.Slides[0].Warnings {
		if w == "slide order normalized to 1" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing order warning, got %v", d.Slides[0].Warnings)
	}
}

func TestRepairDeckNil(t *testing.T) {
	t.Parallel()

	if got := RepairDeck(nil); got != nil {
		t.Fatalf("nil deck should pass through, got %+v", got)
	}
}

func TestNewEngineOptions(t *testing.T) {
	t.Parallel()

	if NewEngine() == nil {
		t.Fatal("engine constructor returned nil")
	}
}
