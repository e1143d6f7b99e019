// Package deck loads and saves multi-slide documents. Documents may arrive
// as JSON or YAML; both decode through the same lax slide decoding so
// malformed generator output survives to the repair engine.
package deck

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-slidefix/pkg/slide"
)

// Deck is an ordered collection of slides plus optional document metadata.
type Deck struct {
	Title  string        `json:"title,omitempty"`
	Slides []slide.Slide `json:"slides"`
}

// EncodeJSON serializes the deck in canonical indented JSON, the format
// handed to downstream layout tooling. HTML escaping is disabled so
// diagram-svg markup survives verbatim.
func (d *Deck) EncodeJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("deck: encode: %w", err)
	}
	return buf.Bytes(), nil
}
