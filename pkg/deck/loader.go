package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-slidefix/pkg/slide"
)

// Loader reads deck documents from a Source. The zero value reads files from
// the host filesystem; WithFS supplies an fs.FS for SourceKindFS entries.
type Loader struct {
	fsys fs.FS
}

// LoaderOption customises a Loader.
type LoaderOption func(*Loader)

// WithFS supplies the filesystem consulted for SourceKindFS sources.
func WithFS(fsys fs.FS) LoaderOption {
	return func(l *Loader) {
		l.fsys = fsys
	}
}

// NewLoader constructs a Loader applying any provided options.
func NewLoader(options ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load reads and parses the document identified by src.
func (l *Loader) Load(src Source) (*Deck, error) {
	if src == nil {
		return nil, errors.New("deck: source is required")
	}

	var (
		data []byte
		err  error
	)
	switch s := src.(type) {
	case fileSource:
		data, err = os.ReadFile(s.path)
	case fsSource:
		if l.fsys == nil {
			return nil, errors.New("deck: fs source requires WithFS")
		}
		data, err = fs.ReadFile(l.fsys, s.name)
	case bytesSource:
		data = s.data
	default:
		return nil, fmt.Errorf("deck: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return nil, fmt.Errorf("deck: read %s: %w", src.Location(), err)
	}

	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("deck: parse %s: %w", src.Location(), err)
	}
	return d, nil
}

// LoadFile is shorthand for loading an on-disk document.
func LoadFile(path string) (*Deck, error) {
	return NewLoader().Load(SourceFromFile(path))
}

// Parse decodes a deck document from JSON or YAML. Accepted top-level
// shapes: a deck object, a bare slide array, or a single slide object.
func Parse(data []byte) (*Deck, error) {
	payload := data
	if !looksLikeJSON(data) {
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, err
		}
		payload = converted
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(payload, &probe); err == nil {
		if _, hasSlides := probe["slides"]; hasSlides {
			var d Deck
			if err := json.Unmarshal(payload, &d); err != nil {
				return nil, fmt.Errorf("deck: decode deck: %w", err)
			}
			return &d, nil
		}
		var single slide.Slide
		if err := json.Unmarshal(payload, &single); err != nil {
			return nil, fmt.Errorf("deck: decode slide: %w", err)
		}
		return &Deck{Title: single.Title, Slides: []slide.Slide{single}}, nil
	}

	var slides []slide.Slide
	if err := json.Unmarshal(payload, &slides); err != nil {
		return nil, fmt.Errorf("deck: unrecognized document shape: %w", err)
	}
	return &Deck{Slides: slides}, nil
}

func looksLikeJSON(data []byte) bool {
	trimmed := strings.TrimLeft(string(data), " \t\r\n")
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}

// yamlToJSON rewrites a YAML document as JSON so the lax JSON decoders on
// Slide and Component apply to both input formats.
func yamlToJSON(data []byte) ([]byte, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("deck: decode yaml: %w", err)
	}
	payload, err := json.Marshal(normalizeYAML(tree))
	if err != nil {
		return nil, fmt.Errorf("deck: convert yaml: %w", err)
	}
	return payload, nil
}

// normalizeYAML rewrites map[any]any nodes (emitted for non-string keys)
// into string-keyed maps so the tree is JSON-encodable.
func normalizeYAML(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, entry := range v {
			out[key] = normalizeYAML(entry)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, entry := range v {
			out[fmt.Sprintf("%v", key)] = normalizeYAML(entry)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, entry := range v {
			out[i] = normalizeYAML(entry)
		}
		return out
	default:
		return v
	}
}
