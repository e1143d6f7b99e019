package repair

import (
	"github.com/goliatone/go-slidefix/pkg/layout"
	"github.com/goliatone/go-slidefix/pkg/slide"
)

// defaultIconPalette is the safe icon set used for deterministic round-robin
// assignment. Generators routinely emit icon names the renderer cannot
// resolve, so anything outside this set is replaced by position.
var defaultIconPalette = []string{
	"bar-chart",
	"target",
	"gauge",
	"trending-up",
	"layers",
	"zap",
	"users",
	"globe",
}

// Option customises the engine configuration.
type Option func(*Engine)

// WithIconPalette overrides the safe icon set used for round-robin icon
// assignment. Empty input is ignored.
func WithIconPalette(icons ...string) Option {
	return func(e *Engine) {
		if len(icons) == 0 {
			return
		}
		e.icons = append([]string(nil), icons...)
	}
}

// Engine repairs slide trees. It owns no state between invocations beyond
// its immutable configuration, so one Engine may repair independent slides
// concurrently.
type Engine struct {
	icons    []string
	iconSet  map[string]struct{}
	sanitize func(string) string
}

// New constructs an Engine applying any provided options.
func New(options ...Option) *Engine {
	e := &Engine{
		icons:    defaultIconPalette,
		sanitize: sanitizeSVGMarkup,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	e.iconSet = make(map[string]struct{}, len(e.icons))
	for _, icon := range e.icons {
		e.iconSet[icon] = struct{}{}
	}
	return e
}

// Repair runs the full repair cascade against s, mutating it in place and
// returning it for chaining. It never fails: every malformed shape has a
// deterministic repair or downgrade path. Repeated application with an
// unchanged density budget is idempotent.
func (e *Engine) Repair(s *slide.Slide) *slide.Slide {
	if s == nil {
		return nil
	}

	log := newWarningLog(s.Warnings)

	e.normalizeTypes(s, log)
	e.repairTopLevel(s, log)

	variant := e.normalizeVariant(s, log)
	variant = e.preFeasibility(s, variant, log)
	e.repairContent(s, variant, log)
	e.consolidate(s, variant, log)
	variant = e.postFeasibility(s, variant, log)

	s.Router.LayoutVariant = string(variant)
	s.Warnings = log.entries()
	return s
}

// iconFor keeps a recognised icon and otherwise assigns one from the palette
// by item position. Deterministic: no randomness anywhere in the engine.
func (e *Engine) iconFor(icon string, position int) string {
	if _, ok := e.iconSet[icon]; ok {
		return icon
	}
	return e.icons[position%len(e.icons)]
}

func hasKind(components []slide.Component, kind slide.Kind) bool {
	for i := range components {
		if slide.Kind(components[i].Type) == kind {
			return true
		}
	}
	return false
}

func hasGridComponent(components []slide.Component) bool {
	for i := range components {
		if layout.GridCapable(slide.Kind(components[i].Type)) {
			return true
		}
	}
	return false
}
