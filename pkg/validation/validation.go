// Package validation checks repaired slides against the structural contract
// the downstream layout engine expects. The contract is expressed as an
// embedded OpenAPI components schema and evaluated with kin-openapi, so the
// published contract document and the runtime check can never diverge.
package validation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-slidefix/pkg/slide"
)

// Issue represents one contract violation with optional location metadata.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// Result captures validation outcomes for one slide.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

var (
	contractOnce   sync.Once
	contractSchema *openapi3.Schema
	contractErr    error
)

func slideSchema() (*openapi3.Schema, error) {
	contractOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData([]byte(slideContract))
		if err != nil {
			contractErr = fmt.Errorf("validation: load contract: %w", err)
			return
		}
		ref, ok := doc.Components.Schemas["Slide"]
		if !ok || ref.Value == nil {
			contractErr = errors.New("validation: contract missing Slide schema")
			return
		}
		contractSchema = ref.Value
	})
	return contractSchema, contractErr
}

// ValidateSlide checks one slide against the repaired-slide contract. The
// slide is serialized through its canonical encoding first, so the check
// sees exactly what downstream consumers receive.
func ValidateSlide(ctx context.Context, s *slide.Slide) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if s == nil {
		return Result{}, errors.New("validation: slide is required")
	}

	schema, err := slideSchema()
	if err != nil {
		return Result{}, err
	}

	payload, err := json.Marshal(s)
	if err != nil {
		return Result{}, fmt.Errorf("validation: encode slide: %w", err)
	}
	var tree any
	if err := json.Unmarshal(payload, &tree); err != nil {
		return Result{}, fmt.Errorf("validation: decode slide: %w", err)
	}

	if err := schema.VisitJSON(tree, openapi3.MultiErrors()); err != nil {
		return Result{Valid: false, Issues: issuesFromError(err)}, nil
	}
	return Result{Valid: true}, nil
}

func issuesFromError(err error) []Issue {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		issues := make([]Issue, 0, len(multi))
		for _, entry := range multi {
			issues = append(issues, issueFromError(entry))
		}
		return issues
	}
	return []Issue{issueFromError(err)}
}

func issueFromError(err error) Issue {
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		return Issue{
			Path:    strings.Join(schemaErr.JSONPointer(), "."),
			Message: strings.TrimSpace(schemaErr.Reason),
		}
	}
	return Issue{Message: strings.TrimSpace(err.Error())}
}
