package summary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/P-Pranath/Unora-app/internal/domain/personality"
)

// Prompt states below this confidence are noise and get dropped.
const promptMinConfidence = 0.2

// Confidence buckets control how assertively a trait is phrased.
const (
	highConfidenceLevel   = 0.6
	mediumConfidenceLevel = 0.35
)

// paragraphShape varies the opening of the summary so users with the
// same dominant dimension do not all read the same.
type paragraphShape string

const (
	shapeInternalFirst   paragraphShape = "INTERNAL_FIRST"
	shapeBehaviorFirst   paragraphShape = "BEHAVIOR_FIRST"
	shapeContextualFirst paragraphShape = "CONTEXTUAL_FIRST"
)

const observerSystemPrompt = "You are a thoughtful observer writing short, warm, third-person personality descriptions. " +
	"You never use labels, clinical terms, absolutes, or second person. " +
	"You write exactly one paragraph of 50-90 words."

const strictSystemPrompt = observerSystemPrompt +
	" Your previous attempt violated the rules. Follow every constraint exactly this time."

func shapeFor(d personality.Dimension) paragraphShape {
	switch d {
	case personality.EmotionalRegulation, personality.DecisionPace:
		return shapeInternalFirst
	case personality.ConflictPosture, personality.ConsistencyStyle:
		return shapeContextualFirst
	default:
		return shapeBehaviorFirst
	}
}

func shapeInstruction(s paragraphShape) string {
	switch s {
	case shapeInternalFirst:
		return "Open with how this person experiences things internally, then move to how that shows up around others."
	case shapeContextualFirst:
		return "Open with how this person responds to situations and circumstances, then move to what that suggests about them."
	default:
		return "Open with how this person behaves with others, then move to what drives that behavior."
	}
}

func confidenceLevel(confidence float64) string {
	switch {
	case confidence >= highConfidenceLevel:
		return "clear"
	case confidence >= mediumConfidenceLevel:
		return "emerging"
	default:
		return "tentative"
	}
}

// traitPhrase renders one dimension as a line of evidence for the
// prompt, phrased for the direction the score leans.
func traitPhrase(state personality.DimensionState) string {
	interp := interpretations[state.Dimension]
	var reading string
	switch {
	case state.Score < 0.4:
		reading = interp.low
	case state.Score > 0.6:
		reading = interp.high
	default:
		reading = "shows a balanced mix: sometimes " + shortForm(interp.low) + ", sometimes " + shortForm(interp.high)
	}
	return fmt.Sprintf("- %s (%s signal)", reading, confidenceLevel(state.Confidence))
}

// shortForm trims hedging verbs so balanced readings stay compact.
func shortForm(phrase string) string {
	for _, prefix := range []string{"tends to ", "often ", "is inclined to ", "is often ", "takes time to "} {
		if strings.HasPrefix(phrase, prefix) {
			return strings.TrimPrefix(phrase, prefix)
		}
	}
	return phrase
}

// buildPrompt assembles the user prompt: confident dimensions sorted
// descending, split into a primary trait, secondary traits, and
// background color, plus the paragraph-shape instruction derived from
// the primary dimension.
func buildPrompt(states []personality.DimensionState) string {
	usable := make([]personality.DimensionState, 0, len(states))
	for _, s := range states {
		if s.Confidence >= promptMinConfidence {
			usable = append(usable, s)
		}
	}
	sort.SliceStable(usable, func(i, j int) bool {
		return usable[i].Confidence > usable[j].Confidence
	})

	if len(usable) == 0 {
		usable = states
	}

	primary := usable[0]
	var secondary, tertiary []personality.DimensionState
	if len(usable) > 1 {
		end := min(3, len(usable))
		secondary = usable[1:end]
		tertiary = usable[end:]
	}

	var b strings.Builder
	b.WriteString("Write a personality description based on these observed tendencies.\n\n")
	b.WriteString("PRIMARY (must dominate the paragraph):\n")
	b.WriteString(traitPhrase(primary) + "\n")

	if len(secondary) > 0 {
		b.WriteString("\nSECONDARY (supporting detail):\n")
		for _, s := range secondary {
			b.WriteString(traitPhrase(s) + "\n")
		}
	}
	if len(tertiary) > 0 {
		b.WriteString("\nBACKGROUND (at most a brief mention):\n")
		for _, s := range tertiary {
			b.WriteString(traitPhrase(s) + "\n")
		}
	}

	b.WriteString("\n" + shapeInstruction(shapeFor(primary.Dimension)) + "\n")
	b.WriteString("\nRules: exactly one paragraph, 50-90 words, third person only, no labels or clinical terms, no absolutes, no mention of scores or data.")
	return b.String()
}
