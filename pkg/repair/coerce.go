package repair

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type itemContext int

const (
	contextGeneric itemContext = iota
	contextMetric
	contextStep
)

// coerceItem turns one heterogeneous list entry into a property map. Objects
// pass through, JSON-as-string payloads are parsed, bare strings become a
// context-appropriate record, and anything else is wrapped with a positional
// label plus its stringified value. Position is 1-based.
func coerceItem(value any, position int, ctx itemContext) map[string]any {
	switch v := value.(type) {
	case map[string]any:
		return v
	case string:
		if parsed, ok := parseJSONObject(v); ok {
			return parsed
		}
		return itemFromString(v, position, ctx)
	default:
		return map[string]any{
			"label": fmt.Sprintf("Item %d", position),
			"value": stringify(value),
		}
	}
}

func itemFromString(text string, position int, ctx itemContext) map[string]any {
	switch ctx {
	case contextMetric:
		value := text
		if runeLen(text) > 20 {
			value = truncate(text, 10)
		}
		return map[string]any{
			"value": value,
			"label": fmt.Sprintf("Metric %d", position),
		}
	case contextStep:
		description := ""
		if runeLen(text) > 30 {
			description = text
		}
		return map[string]any{
			"number":      position,
			"title":       truncate(text, 30),
			"description": description,
		}
	default:
		return map[string]any{"label": truncate(text, 40)}
	}
}

// parseJSONObject reports whether text holds a JSON object and returns it.
func parseJSONObject(text string) (map[string]any, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "{") {
		return nil, false
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return nil, false
	}
	return parsed, true
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// firstString returns the first non-empty string-coercible property among
// the listed keys.
func firstString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if raw, ok := m[key]; ok {
			if s := strings.TrimSpace(stringify(raw)); s != "" {
				return s
			}
		}
	}
	return ""
}

// numericValue extracts a float from values generators deliver as numbers or
// numeric strings. The second return is false for anything non-numeric.
func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func intValue(value any) (int, bool) {
	f, ok := numericValue(value)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func runeLen(s string) int {
	return len([]rune(s))
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// anySlice normalizes a property value into a generic sequence: sequences
// pass through, a non-empty string becomes a one-element sequence, anything
// else is empty.
func anySlice(value any) []any {
	switch v := value.(type) {
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []any{v}
	default:
		return nil
	}
}
