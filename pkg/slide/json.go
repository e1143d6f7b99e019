package slide

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnmarshalJSON captures the full property map so the repair engine can read
// misnamed or mistyped fields. A bare string is tolerated and stored as a
// text property, matching how generators occasionally collapse a component
// into prose.
func (c *Component) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		var text string
		if strErr := json.Unmarshal(data, &text); strErr == nil {
			c.Raw = map[string]any{"text": text}
			return nil
		}
		return fmt.Errorf("slide: decode component: %w", err)
	}
	c.Raw = raw
	if t, ok := raw["type"].(string); ok {
		c.Type = t
	}
	if title, ok := raw["title"].(string); ok {
		c.Title = title
	}
	return nil
}

// MarshalJSON emits the canonical shape for repaired components and the raw
// property map for components that have not passed through repair yet.
// Encoding skips HTML escaping so diagram markup stays readable.
func (c Component) MarshalJSON() ([]byte, error) {
	if c.Raw != nil {
		return marshalNoEscape(c.Raw)
	}

	out := map[string]any{"type": c.Type}
	if c.Title != "" {
		out["title"] = c.Title
	}
	switch Kind(c.Type) {
	case KindMetricCards:
		out["items"] = emptyWhenNil(c.Metrics)
	case KindProcessFlow:
		out["items"] = emptyWhenNil(c.Steps)
	case KindIconGrid:
		out["items"] = emptyWhenNil(c.Icons)
	case KindChartFrame:
		out["items"] = emptyWhenNil(c.Points)
	case KindDiagramSVG:
		out["markup"] = c.Markup
	default:
		out["items"] = emptyWhenNil(c.Bullets)
	}
	return marshalNoEscape(out)
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func emptyWhenNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

type slideAlias struct {
	Title     string `json:"title,omitempty"`
	Purpose   string `json:"purpose,omitempty"`
	Order     int    `json:"order,omitempty"`
	SlideKind string `json:"slideKind,omitempty"`

	Router RouterConfig `json:"routerConfig"`
	Plan   LayoutPlan   `json:"layoutPlan"`

	SpeakerNotes json.RawMessage `json:"speakerNotesLines,omitempty"`
	Critique     json.RawMessage `json:"selfCritique,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

// UnmarshalJSON decodes a slide leniently: speakerNotesLines and selfCritique
// are preserved verbatim when they do not match the expected shape so the
// repair engine can rebuild them instead of the decode failing.
func (s *Slide) UnmarshalJSON(data []byte) error {
	var alias slideAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return fmt.Errorf("slide: decode slide: %w", err)
	}

	s.Title = alias.Title
	s.Purpose = alias.Purpose
	s.Order = alias.Order
	s.SlideKind = alias.SlideKind
	s.Router = alias.Router
	s.Plan = alias.Plan
	s.Warnings = alias.Warnings

	s.SpeakerNotes = nil
	s.RawNotes = nil
	if len(alias.SpeakerNotes) > 0 {
		var notes []string
		if err := json.Unmarshal(alias.SpeakerNotes, &notes); err == nil {
			s.SpeakerNotes = notes
		}
		var anyNotes any
		if err := json.Unmarshal(alias.SpeakerNotes, &anyNotes); err == nil {
			s.RawNotes = anyNotes
		}
	}

	s.Critique = SelfCritique{}
	s.RawCritique = nil
	if len(alias.Critique) > 0 {
		var critique SelfCritique
		if err := json.Unmarshal(alias.Critique, &critique); err == nil {
			s.Critique = critique
		}
		var anyCritique any
		if err := json.Unmarshal(alias.Critique, &anyCritique); err == nil {
			s.RawCritique = anyCritique
		}
	}

	return nil
}
