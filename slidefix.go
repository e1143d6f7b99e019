// Package slidefix repairs presentation-slide content trees produced by
// generative pipelines. Generators emit wrong field names, wrong types,
// JSON-as-string payloads, placeholder text, and layout choices incompatible
// with their own content; the repair engine turns any such tree into a
// structurally valid, renderable slide without ever failing and without
// network or model calls.
//
// The root package re-exports the common types and offers one-call entry
// points; pkg/repair holds the engine, pkg/layout the variant capacity
// table, and pkg/deck the document loader.
package slidefix

import (
	"fmt"

	"github.com/goliatone/go-slidefix/pkg/deck"
	"github.com/goliatone/go-slidefix/pkg/repair"
	"github.com/goliatone/go-slidefix/pkg/slide"
)

// Slide re-exports the slide tree root.
type Slide = slide.Slide

// Component re-exports the tagged component variant.
type Component = slide.Component

// Deck re-exports the multi-slide document.
type Deck = deck.Deck

// Kind re-exports the canonical component kind enumeration.
type Kind = slide.Kind

// NewEngine exposes the repair engine constructor from the top-level module.
func NewEngine(options ...repair.Option) *repair.Engine {
	return repair.New(options...)
}

// Repair runs the default engine against one slide, mutating and returning
// it. Total: any component-bearing input produces a valid slide.
func Repair(s *slide.Slide) *slide.Slide {
	return repair.New().Repair(s)
}

// RepairDeck repairs every slide of a deck in document order with a single
// engine, normalizing non-positive sequence order to document position.
// Independent slides share no state, so callers needing throughput may also
// repair slides concurrently with one engine.
func RepairDeck(d *deck.Deck) *deck.Deck {
	if d == nil {
		return nil
	}
	engine := repair.New()
	for i := range d.Slides {
		s := &d.Slides[i]
		if s.Order <= 0 {
			s.Order = i + 1
			s.Warnings = append(s.Warnings, fmt.Sprintf("slide order normalized to %d", i+1))
		}
		engine.Repair(s)
	}
	return d
}
