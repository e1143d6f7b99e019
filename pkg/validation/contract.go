package validation

// slideContract is the repaired-slide contract as an OpenAPI document. The
// enumerations mirror pkg/slide and pkg/layout; the parity tests keep them
// honest.
const slideContract = `{
  "openapi": "3.0.3",
  "info": {
    "title": "slidefix repaired slide contract",
    "version": "1.0.0"
  },
  "paths": {},
  "components": {
    "schemas": {
      "Slide": {
        "type": "object",
        "required": ["routerConfig", "layoutPlan", "selfCritique"],
        "properties": {
          "title": {"type": "string"},
          "purpose": {"type": "string"},
          "order": {"type": "integer", "minimum": 0},
          "slideKind": {"type": "string"},
          "routerConfig": {"$ref": "#/components/schemas/RouterConfig"},
          "layoutPlan": {"$ref": "#/components/schemas/LayoutPlan"},
          "speakerNotesLines": {
            "type": "array",
            "maxItems": 5,
            "items": {"type": "string", "minLength": 1}
          },
          "selfCritique": {"$ref": "#/components/schemas/SelfCritique"},
          "warnings": {
            "type": "array",
            "uniqueItems": true,
            "items": {"type": "string"}
          }
        }
      },
      "RouterConfig": {
        "type": "object",
        "required": ["layoutVariant"],
        "properties": {
          "layoutVariant": {
            "type": "string",
            "enum": [
              "hero-centered",
              "standard-vertical",
              "bento-grid",
              "metric-strip",
              "visual-split",
              "timeline-flow",
              "full-bleed-visual"
            ]
          },
          "layoutIntent": {"type": "string"},
          "densityBudget": {
            "type": "object",
            "properties": {
              "maxItems": {"type": "integer"},
              "maxChars": {"type": "integer"}
            }
          }
        }
      },
      "LayoutPlan": {
        "type": "object",
        "required": ["components"],
        "properties": {
          "title": {"type": "string"},
          "components": {
            "type": "array",
            "items": {"$ref": "#/components/schemas/Component"}
          }
        }
      },
      "Component": {
        "type": "object",
        "required": ["type"],
        "properties": {
          "type": {
            "type": "string",
            "enum": [
              "text-bullets",
              "metric-cards",
              "process-flow",
              "icon-grid",
              "chart-frame",
              "diagram-svg"
            ]
          },
          "title": {"type": "string"},
          "items": {"type": "array"},
          "markup": {"type": "string"}
        }
      },
      "SelfCritique": {
        "type": "object",
        "required": ["layoutAction", "readabilityScore", "textDensityStatus"],
        "properties": {
          "layoutAction": {
            "type": "string",
            "enum": ["keep", "simplify", "shrink_text", "add_visuals"]
          },
          "readabilityScore": {
            "type": "number",
            "minimum": 0,
            "maximum": 10
          },
          "textDensityStatus": {
            "type": "string",
            "enum": ["optimal", "high", "overflow"]
          }
        }
      }
    }
  }
}`
