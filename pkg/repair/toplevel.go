package repair

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-slidefix/pkg/slide"
)

// repairTopLevel normalizes the slide fields outside the component list:
// the generator's self critique and the speaker notes.
func (e *Engine) repairTopLevel(s *slide.Slide, log *warningLog) {
	e.repairCritique(s, log)
	e.repairSpeakerNotes(s, log)
}

func (e *Engine) repairCritique(s *slide.Slide, log *warningLog) {
	switch raw := s.RawCritique.(type) {
	case nil:
		s.Critique = normalizeCritiqueFields(s.Critique)
	case string:
		s.Critique = slide.DefaultCritique()
		log.add("self critique delivered as text; replaced with defaults")
	case map[string]any:
		before := s.Critique
		s.Critique = critiqueFromMap(raw)
		if before != s.Critique && before != (slide.SelfCritique{}) {
			log.add("self critique fields normalized")
		}
	default:
		s.Critique = slide.DefaultCritique()
		log.add("self critique had an unexpected shape; replaced with defaults")
	}
	s.RawCritique = nil
}

func critiqueFromMap(raw map[string]any) slide.SelfCritique {
	critique := slide.SelfCritique{
		LayoutAction:      matchLayoutAction(firstString(raw, "layoutAction", "action")),
		ReadabilityScore:  8,
		TextDensityStatus: matchDensityStatus(firstString(raw, "textDensityStatus", "density", "densityStatus")),
	}
	if score, ok := numericValue(raw["readabilityScore"]); ok && score >= 0 && score <= 10 {
		critique.ReadabilityScore = score
	}
	return critique
}

func normalizeCritiqueFields(c slide.SelfCritique) slide.SelfCritique {
	c.LayoutAction = matchLayoutAction(c.LayoutAction)
	c.TextDensityStatus = matchDensityStatus(c.TextDensityStatus)
	if c.ReadabilityScore < 0 || c.ReadabilityScore > 10 {
		c.ReadabilityScore = 8
	}
	return c
}

// matchLayoutAction resolves free-text layout actions by keyword stem.
func matchLayoutAction(raw string) string {
	action := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(action, "simplif"):
		return slide.ActionSimplify
	case strings.Contains(action, "shrink"), strings.Contains(action, "reduce"):
		return slide.ActionShrinkText
	case strings.Contains(action, "visual"), strings.Contains(action, "add"):
		return slide.ActionAddVisuals
	default:
		return slide.ActionKeep
	}
}

func matchDensityStatus(raw string) string {
	status := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(status, "over"):
		return slide.DensityOverflow
	case strings.Contains(status, "high"), strings.Contains(status, "dens"):
		return slide.DensityHigh
	default:
		return slide.DensityOptimal
	}
}

const maxSpeakerNotes = 5

func (e *Engine) repairSpeakerNotes(s *slide.Slide, log *warningLog) {
	defer func() { s.RawNotes = nil }()

	var notes []string
	switch raw := s.RawNotes.(type) {
	case nil:
		notes = filterNoteLines(s.SpeakerNotes)
	case []any:
		for _, entry := range raw {
			if line, ok := entry.(string); ok {
				if trimmed := strings.TrimSpace(line); trimmed != "" {
					notes = append(notes, trimmed)
				}
			}
		}
		if len(notes) == 0 {
			log.add("speaker notes held no usable lines; synthesized from title")
		}
	default:
		log.add("speaker notes were not a sequence; synthesized from title")
	}

	if len(notes) == 0 {
		if s.SpeakerNotes == nil && s.RawNotes == nil {
			log.add("speaker notes missing; synthesized from title")
		}
		notes = []string{synthesizedNote(s.Title)}
	}
	if len(notes) > maxSpeakerNotes {
		notes = notes[:maxSpeakerNotes]
		log.add("speaker notes capped to %d lines", maxSpeakerNotes)
	}
	s.SpeakerNotes = notes
}

func filterNoteLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func synthesizedNote(title string) string {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		trimmed = "Untitled"
	}
	return fmt.Sprintf("Slide: %s", trimmed)
}
