// Package summary turns a user's belief state into a short third-person
// personality description for discovery cards.
//
// Output rules: one paragraph, 50-90 words, third person only, no labels
// or clinical terms, no absolutes, no mention of data or scoring. The
// LLM output is linted against these rules; a failed lint triggers one
// stricter regeneration, and any further failure falls back to a
// deterministic template built from the most confident dimensions.
package summary

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/P-Pranath/Unora-app/internal/domain/personality"
)

const (
	minWords = 50
	maxWords = 90

	// Below this average confidence the belief state says nothing useful
	// yet, so the collaborator is never called.
	minAverageConfidence = 0.15

	// Fallback template only uses dimensions at or above this confidence.
	fallbackMinConfidence = 0.3
)

// forbiddenTerms trigger regeneration when they appear in output:
// personality labels, clinical terms, data references, absolutes,
// judgments, second person, comparisons, and list formatting.
var forbiddenTerms = []string{
	"introvert", "extrovert", "ambivert",
	"type a", "type b", "personality type",
	"calm", "anxious", "avoidant", "secure", "mature", "stable",
	"diagnosis", "disorder", "therapy", "clinical",
	"neurotic", "psychotic", "attachment style",
	"test results", "assessment", "evaluation",
	"score", "rating", "percentage", "%", "data",
	"confidence", "analysis", "measured", "indicates",
	"model", "ai", "algorithm",
	"always", "never", "definitely", "certainly", "absolutely",
	"good", "bad", "better", "worse", "perfect", "ideal",
	"you are", "you tend", "you often", "you prefer", "your ",
	"more than others", "less than others", "compared to",
	"•", "1.", "2.",
}

var secondPersonRe = regexp.MustCompile(`\byou\b`)

// interpretation holds the third-person reading of a dimension's low and
// high ends.
type interpretation struct {
	low  string
	high string
}

var interpretations = map[personality.Dimension]interpretation{
	personality.EmotionalRegulation: {
		low:  "experiences emotions deeply and may need time to process them",
		high: "tends to stay grounded and processes emotions smoothly",
	},
	personality.CommunicationStyle: {
		low:  "often prefers indirect communication and reading between the lines",
		high: "tends to communicate directly and say what they mean",
	},
	personality.EmotionalAvailability: {
		low:  "takes time to open up and values their privacy",
		high: "is often emotionally open and accessible to others",
	},
	personality.ConsistencyStyle: {
		low:  "enjoys spontaneity and adapts easily to change",
		high: "values routine and predictability in their day",
	},
	personality.ConflictPosture: {
		low:  "is inclined to seek harmony and avoid confrontation",
		high: "tends to address disagreements directly when they arise",
	},
	personality.EnergyOrientation: {
		low:  "recharges through solitude and smaller gatherings",
		high: "often gains energy from social interaction",
	},
	personality.DecisionPace: {
		low:  "takes time to deliberate before making decisions",
		high: "tends to decide quickly and trust their instincts",
	},
}

// Generator produces personality summaries via an injected TextGenerator.
type Generator struct {
	ai     TextGenerator
	logger *slog.Logger
}

// NewGenerator creates a Generator. The TextGenerator is injected so
// tests can substitute a deterministic fake.
func NewGenerator(ai TextGenerator, logger *slog.Logger) *Generator {
	return &Generator{ai: ai, logger: logger}
}

// Generate returns a rule-compliant summary for the given belief state.
// It never returns an error: collaborator failures and lint failures
// both resolve to the deterministic fallback.
func (g *Generator) Generate(ctx context.Context, states []personality.DimensionState) string {
	if personality.OverallConfidence(states) < minAverageConfidence {
		return LowConfidenceSummary()
	}

	prompt := buildPrompt(states)

	text, err := g.ai.GenerateText(ctx, observerSystemPrompt, prompt)
	if err != nil {
		g.logger.Warn("summary generation failed, using fallback", "error", err)
		return FallbackSummary(states)
	}

	if reason, ok := Validate(text); !ok {
		g.logger.Warn("summary failed validation, regenerating", "reason", reason)
		return g.regenerate(ctx, states, prompt)
	}

	return text
}

// regenerate tries once more with a stricter prompt, then falls back.
func (g *Generator) regenerate(ctx context.Context, states []personality.DimensionState, prompt string) string {
	strictPrompt := prompt + "\n\nCRITICAL REMINDER: UNIQUENESS IS MANDATORY. Use THIRD PERSON ONLY. 50-90 words. The primary dimension must dominate. NO labels, NO absolutes, NO \"you\"."

	text, err := g.ai.GenerateText(ctx, strictSystemPrompt, strictPrompt)
	if err != nil {
		g.logger.Warn("summary regeneration failed, using fallback", "error", err)
		return FallbackSummary(states)
	}
	if reason, ok := Validate(text); !ok {
		g.logger.Warn("regenerated summary still invalid, using fallback", "reason", reason)
		return FallbackSummary(states)
	}
	return text
}

// Validate lints a summary against the output rules. On failure it
// returns the reason and false.
func Validate(text string) (string, bool) {
	words := countWords(text)
	if words < minWords {
		return "summary too short", false
	}
	if words > maxWords {
		return "summary too long", false
	}

	lower := strings.ToLower(text)
	for _, term := range forbiddenTerms {
		if strings.Contains(lower, term) {
			return "contains forbidden term: " + term, false
		}
	}

	paragraphs := 0
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}
	if paragraphs > 1 {
		return "contains multiple paragraphs", false
	}

	if secondPersonRe.MatchString(lower) {
		return "contains second person", false
	}

	return "", true
}

// LowConfidenceSummary is the fixed placeholder served before the belief
// state has accumulated enough evidence to say anything.
func LowConfidenceSummary() string {
	return "This person is still getting to know themselves through the platform. " +
		"As they answer more questions, a clearer picture of their natural tendencies will emerge. " +
		"Early signs suggest a thoughtful approach to connection."
}

// FallbackSummary builds a deterministic, rule-compliant summary from
// the top confident dimensions without calling the collaborator.
func FallbackSummary(states []personality.DimensionState) string {
	sorted := make([]personality.DimensionState, len(states))
	copy(sorted, states)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})

	if len(sorted) > 3 {
		sorted = sorted[:3]
	}

	var traits []string
	for _, state := range sorted {
		if state.Confidence < fallbackMinConfidence {
			continue
		}
		interp := interpretations[state.Dimension]
		switch {
		case state.Score < 0.4:
			traits = append(traits, interp.low)
		case state.Score > 0.6:
			traits = append(traits, interp.high)
		}
	}

	if len(traits) == 0 {
		return LowConfidenceSummary()
	}

	var b strings.Builder
	b.WriteString("This person " + traits[0] + ". ")
	if len(traits) > 1 {
		b.WriteString("They also " + cleanTrait(traits[1]) + ". ")
	}
	if len(traits) > 2 {
		b.WriteString("Generally, they " + cleanTrait(traits[2]) + ". ")
	}
	b.WriteString("These tendencies reflect early observations and may evolve over time.")
	return b.String()
}

// cleanTrait strips leading hedges so a trait reads naturally after
// "They also ..." and fixes "they is" into "they are".
func cleanTrait(trait string) string {
	for _, prefix := range []string{"tends to ", "often ", "is inclined to ", "is often "} {
		if strings.HasPrefix(trait, prefix) {
			trait = strings.TrimPrefix(trait, prefix)
			break
		}
	}
	if strings.HasPrefix(trait, "is ") {
		trait = "are " + strings.TrimPrefix(trait, "is ")
	}
	return trait
}

func countWords(text string) int {
	return len(strings.Fields(text))
}
