package slide

// Kind enumerates the canonical component kinds the layout engine can render.
type Kind string

const (
	KindTextBullets Kind = "text-bullets"
	KindMetricCards Kind = "metric-cards"
	KindProcessFlow Kind = "process-flow"
	KindIconGrid    Kind = "icon-grid"
	KindChartFrame  Kind = "chart-frame"
	KindDiagramSVG  Kind = "diagram-svg"
)

// Kinds lists every canonical kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindTextBullets,
		KindMetricCards,
		KindProcessFlow,
		KindIconGrid,
		KindChartFrame,
		KindDiagramSVG,
	}
}

// IsCanonical reports whether raw names one of the canonical kinds.
func IsCanonical(raw string) bool {
	switch Kind(raw) {
	case KindTextBullets, KindMetricCards, KindProcessFlow,
		KindIconGrid, KindChartFrame, KindDiagramSVG:
		return true
	}
	return false
}

// MetricItem is a single headline figure inside a metric-cards component.
type MetricItem struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

// StepItem is one stage of a process-flow component. Number is 1-based.
type StepItem struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// IconItem is one cell of an icon-grid component.
type IconItem struct {
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// ChartPoint is a labelled numeric datum inside a chart-frame component.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Component is a tagged variant over the canonical kinds. Exactly one of the
// kind-specific payloads is populated once a component has passed through the
// repair engine; before that, Raw holds whatever the generator delivered.
type Component struct {
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`

	Metrics []MetricItem `json:"-"`
	Steps   []StepItem   `json:"-"`
	Icons   []IconItem   `json:"-"`
	Points  []ChartPoint `json:"-"`
	Bullets []string     `json:"-"`
	Markup  string       `json:"-"`

	// Raw carries every property as delivered. The repair engine consumes it
	// and clears it; a nil Raw marks a component already in canonical form.
	Raw map[string]any `json:"-"`
}

// LayoutPlan holds the ordered component sequence for one slide.
type LayoutPlan struct {
	Title      string      `json:"title,omitempty"`
	Components []Component `json:"components"`
}

// DensityBudget is a caller-supplied soft ceiling on item count and total
// characters per component. Hard per-kind and per-variant ceilings still
// apply; whichever ceiling is more restrictive wins.
type DensityBudget struct {
	MaxItems int `json:"maxItems"`
	MaxChars int `json:"maxChars"`
}

// RouterConfig carries the layout choice made upstream of the repair engine.
type RouterConfig struct {
	LayoutVariant string         `json:"layoutVariant"`
	LayoutIntent  string         `json:"layoutIntent,omitempty"`
	DensityBudget *DensityBudget `json:"densityBudget,omitempty"`
}

// Layout actions a generator's self critique may request.
const (
	ActionKeep       = "keep"
	ActionSimplify   = "simplify"
	ActionShrinkText = "shrink_text"
	ActionAddVisuals = "add_visuals"
)

// Text density statuses a self critique may report.
const (
	DensityOptimal  = "optimal"
	DensityHigh     = "high"
	DensityOverflow = "overflow"
)

// SelfCritique is the generator's own assessment of the slide.
type SelfCritique struct {
	LayoutAction      string  `json:"layoutAction"`
	ReadabilityScore  float64 `json:"readabilityScore"`
	TextDensityStatus string  `json:"textDensityStatus"`
}

// DefaultCritique returns the well-formed critique substituted for malformed
// generator output.
func DefaultCritique() SelfCritique {
	return SelfCritique{
		LayoutAction:      ActionKeep,
		ReadabilityScore:  8,
		TextDensityStatus: DensityOptimal,
	}
}

// Slide is one presentation slide as produced by a generative pipeline and
// consumed, after repair, by a layout engine.
type Slide struct {
	Title     string `json:"title,omitempty"`
	Purpose   string `json:"purpose,omitempty"`
	Order     int    `json:"order,omitempty"`
	SlideKind string `json:"slideKind,omitempty"`

	Router RouterConfig `json:"routerConfig"`
	Plan   LayoutPlan   `json:"layoutPlan"`

	SpeakerNotes []string     `json:"speakerNotesLines,omitempty"`
	Critique     SelfCritique `json:"selfCritique"`

	// Warnings is the append-only, deduplicated repair log.
	Warnings []string `json:"warnings,omitempty"`

	// RawNotes and RawCritique preserve malformed speakerNotesLines and
	// selfCritique payloads for the repair engine. Nil once repaired.
	RawNotes    any `json:"-"`
	RawCritique any `json:"-"`
}
