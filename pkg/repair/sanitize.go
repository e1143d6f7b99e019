package repair

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	svgPolicyOnce sync.Once
	svgPolicy     *bluemonday.Policy
)

// sanitizeSVGMarkup strips everything but a safe SVG subset from generated
// diagram markup. Markup without an <svg> root is rejected outright.
func sanitizeSVGMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if !strings.Contains(strings.ToLower(trimmed), "<svg") {
		return ""
	}
	cleaned := strings.TrimSpace(diagramSanitizer().Sanitize(trimmed))
	if !strings.Contains(strings.ToLower(cleaned), "<svg") {
		return ""
	}
	return cleaned
}

func diagramSanitizer() *bluemonday.Policy {
	svgPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		elements := []string{
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "text", "tspan", "title", "desc", "defs", "use", "marker",
		}
		policy.AllowElements(elements...)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"role", "focusable", "class",
		).OnElements("svg")

		policy.AllowAttrs("href", "xlink:href").OnElements("use")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
				"stroke-linecap", "stroke-linejoin", "class",
			).OnElements(el)
		}

		policy.AllowAttrs(
			"x", "y", "dx", "dy", "text-anchor", "font-size", "fill", "class",
		).OnElements("text", "tspan")
		policy.AllowAttrs("id").OnElements("defs", "g", "marker")

		svgPolicy = policy
	})
	return svgPolicy
}
