// Package report renders human-readable repair reports from repaired decks.
// The renderer wraps a pongo2 template so operators can swap the default
// plain-text layout for their own.
package report

import (
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-slidefix/pkg/deck"
)

const defaultTemplate = `Repair report: {{ title }}
Slides: {{ slides|length }}, repairs logged: {{ total }}
{% for s in slides %}
Slide {{ s.Index }}: {{ s.Title }} [{{ s.Variant }}, {{ s.ComponentCount }} component(s)]
{% if s.Warnings %}{% for w in s.Warnings %}  - {{ w }}
{% endfor %}{% else %}  (no repairs)
{% endif %}{% endfor %}`

// SlideSummary is the per-slide view handed to the template.
type SlideSummary struct {
	Index          int
	Title          string
	Variant        string
	ComponentCount int
	Warnings       []string
}

// Option customises the renderer before construction.
type Option func(*config)

type config struct {
	template string
}

// WithTemplate overrides the default report template. The source uses pongo2
// syntax and receives title, slides, and total in its context.
func WithTemplate(src string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(src) != "" {
			cfg.template = src
		}
	}
}

// Renderer renders repair reports.
type Renderer struct {
	tpl *pongo2.Template
}

// New constructs a Renderer, compiling the configured template.
func New(options ...Option) (*Renderer, error) {
	cfg := &config{template: defaultTemplate}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	tpl, err := pongo2.FromString(cfg.template)
	if err != nil {
		return nil, fmt.Errorf("report: compile template: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// Render produces the report for a repaired deck.
func (r *Renderer) Render(d *deck.Deck) (string, error) {
	if d == nil {
		return "", fmt.Errorf("report: deck is required")
	}

	summaries := make([]SlideSummary, 0, len(d.Slides))
	total := 0
	for i := range d.Slides {
		s := &d.Slides[i]
		title := s.Title
		if title == "" {
			title = "(untitled)"
		}
		total += len(s.Warnings)
		summaries = append(summaries, SlideSummary{
			Index:          i + 1,
			Title:          title,
			Variant:        s.Router.LayoutVariant,
			ComponentCount: len(s.Plan.Components),
			Warnings:       s.Warnings,
		})
	}

	deckTitle := d.Title
	if deckTitle == "" {
		deckTitle = "(untitled deck)"
	}

	out, err := r.tpl.Execute(pongo2.Context{
		"title":  deckTitle,
		"slides": summaries,
		"total":  total,
	})
	if err != nil {
		return "", fmt.Errorf("report: render: %w", err)
	}
	return out, nil
}
