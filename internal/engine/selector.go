// Package engine picks the next scenario question for a user.
//
// Selection balances two pressures per dimension: how uncertain the
// current belief is (low confidence) and how little it has been probed
// (few prior answers). Candidate questions come from a tiered filter over
// the top-priority dimensions, and the final pick is a weighted roulette
// draw seeded per user and calendar day so repeated calls on the same day
// are reproducible.
package engine

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/P-Pranath/Unora-app/internal/domain/personality"
	"github.com/P-Pranath/Unora-app/internal/domain/questionbank"
)

const (
	// topNDimensions is the primary candidate pool: questions touching
	// one of the two most pressing dimensions.
	topNDimensions = 2

	// expandedNDimensions widens the pool on the first fallback.
	expandedNDimensions = 4

	// minCandidateWeight keeps every candidate selectable even when all
	// of its dimensions have near-zero priority.
	minCandidateWeight = 0.01
)

// Context carries everything the selector needs about one user.
// The service layer assembles it from the store.
type Context struct {
	UserID              string
	Mode                personality.Mode
	QuestionsAnswered   int
	AnsweredQuestionIDs map[string]bool
	States              []personality.DimensionState
	LastDimensionAsked  personality.Dimension // empty when nothing asked yet
	AnsweredByDimension map[personality.Dimension]int
}

// Result is the outcome of one selection. Either Question is set, or
// Complete is true with a human-readable Reason. Running out of
// questions is a terminal state, not an error.
type Result struct {
	Question *questionbank.Question
	Complete bool
	Reason   string
}

// dimensionPriority is the urgency score for one dimension.
type dimensionPriority struct {
	dimension  personality.Dimension
	priority   float64
	confidence float64
	answered   int
}

// Selector implements the priority-based question selection algorithm.
type Selector struct {
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Selector using the wall clock for daily seeding.
func New(logger *slog.Logger) *Selector {
	return NewWithClock(logger, time.Now)
}

// NewWithClock creates a Selector with an injected clock. Tests pin the
// clock to make selection fully deterministic.
func NewWithClock(logger *slog.Logger, now func() time.Time) *Selector {
	return &Selector{logger: logger, now: now}
}

// Select returns the next question for the user, or a terminal Result.
//
// Steps:
//  1. stop when the mode's question cap is reached
//  2. restrict to unanswered questions
//  3. priority per dimension: (1 - confidence) * (1 / (1 + answered))
//  4. rank dimensions, swapping ranks 1 and 2 if rank 1 was just asked
//  5. tiered candidate filter: top 2 dims, top 4 dims, anything except
//     the last-asked dimension
//  6. weighted roulette draw seeded by (user, calendar day)
func (s *Selector) Select(ctx Context) Result {
	maxQuestions := ctx.Mode.MaxQuestions()
	if ctx.QuestionsAnswered >= maxQuestions {
		reason := fmt.Sprintf("reached maximum questions for %s mode (%d)", ctx.Mode, maxQuestions)
		s.logDecision(ctx, nil, 0, 0, "", reason)
		return Result{Complete: true, Reason: reason}
	}

	var unanswered []questionbank.Question
	for _, q := range questionbank.All() {
		if !ctx.AnsweredQuestionIDs[q.ID] {
			unanswered = append(unanswered, q)
		}
	}
	if len(unanswered) == 0 {
		reason := "all questions have been answered"
		s.logDecision(ctx, nil, 0, 0, "", reason)
		return Result{Complete: true, Reason: reason}
	}

	ranked := s.rankDimensions(ctx)

	candidates, tier := buildCandidatePool(unanswered, ranked, ctx.LastDimensionAsked)
	if len(candidates) == 0 {
		reason := "no suitable questions available after all fallbacks"
		s.logDecision(ctx, ranked, 3, 0, "", reason)
		return Result{Complete: true, Reason: reason}
	}

	chosen := s.weightedPick(candidates, ranked, ctx.UserID)
	s.logDecision(ctx, ranked, tier, len(candidates), chosen.ID,
		fmt.Sprintf("selected via weighted random (fallback tier %d)", tier))

	return Result{Question: &chosen}
}

// rankDimensions computes priorities and orders dimensions from most to
// least pressing, then applies the anti-repetition swap.
func (s *Selector) rankDimensions(ctx Context) []dimensionPriority {
	ranked := make([]dimensionPriority, 0, len(ctx.States))
	for _, state := range ctx.States {
		answered := ctx.AnsweredByDimension[state.Dimension]
		confidenceFactor := 1 - state.Confidence
		explorationFactor := 1 / float64(1+answered)
		ranked = append(ranked, dimensionPriority{
			dimension:  state.Dimension,
			priority:   confidenceFactor * explorationFactor,
			confidence: state.Confidence,
			answered:   answered,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].priority > ranked[j].priority
	})

	// A single swap of ranks 1 and 2 when the top dimension was just
	// asked. Ordering adjustment only, never a hard exclusion.
	if ctx.LastDimensionAsked != "" && len(ranked) >= 2 && ranked[0].dimension == ctx.LastDimensionAsked {
		ranked[0], ranked[1] = ranked[1], ranked[0]
	}

	return ranked
}

// buildCandidatePool filters unanswered questions through the fallback
// tiers, returning the first non-empty pool and the tier that produced it.
func buildCandidatePool(unanswered []questionbank.Question, ranked []dimensionPriority, lastAsked personality.Dimension) ([]questionbank.Question, int) {
	topDims := func(n int) []personality.Dimension {
		if n > len(ranked) {
			n = len(ranked)
		}
		dims := make([]personality.Dimension, 0, n)
		for _, r := range ranked[:n] {
			dims = append(dims, r.dimension)
		}
		return dims
	}

	// Tier 0: the two most pressing dimensions.
	if pool := filterByDimensions(unanswered, topDims(topNDimensions)); len(pool) > 0 {
		return pool, 0
	}

	// Tier 1: widen to the top four.
	if pool := filterByDimensions(unanswered, topDims(expandedNDimensions)); len(pool) > 0 {
		return pool, 1
	}

	// Tier 2: anything except the dimension just asked.
	var rest []personality.Dimension
	for _, r := range ranked {
		if r.dimension != lastAsked {
			rest = append(rest, r.dimension)
		}
	}
	if pool := filterByDimensions(unanswered, rest); len(pool) > 0 {
		return pool, 2
	}

	return nil, 3
}

func filterByDimensions(questions []questionbank.Question, dims []personality.Dimension) []questionbank.Question {
	var filtered []questionbank.Question
	for _, q := range questions {
		if q.TargetsAny(dims) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// weightedPick draws one candidate. A candidate's weight is the sum of
// the priorities of the dimensions it targets (full priority map, not
// just the surviving tier), floored at minCandidateWeight.
func (s *Selector) weightedPick(candidates []questionbank.Question, ranked []dimensionPriority, userID string) questionbank.Question {
	priorityByDim := make(map[personality.Dimension]float64, len(ranked))
	for _, r := range ranked {
		priorityByDim[r.dimension] = r.priority
	}

	weights := make([]float64, len(candidates))
	total := 0.0
	for i, q := range candidates {
		w := 0.0
		for _, target := range q.DimensionTargets {
			w += priorityByDim[target]
		}
		if w < minCandidateWeight {
			w = minCandidateWeight
		}
		weights[i] = w
		total += w
	}

	rng := newSeededRand(dailySeed(userID, s.now()))
	draw := rng.next() * total

	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if draw <= cumulative {
			return candidates[i]
		}
	}
	return candidates[len(candidates)-1]
}

func (s *Selector) logDecision(ctx Context, ranked []dimensionPriority, tier, poolSize int, questionID, reason string) {
	priorities := make([]string, 0, len(ranked))
	for _, r := range ranked {
		priorities = append(priorities, fmt.Sprintf("%s=%.3f", r.dimension, r.priority))
	}
	s.logger.Debug("question selection",
		"user_id", ctx.UserID,
		"mode", ctx.Mode,
		"priorities", priorities,
		"fallback_tier", tier,
		"pool_size", poolSize,
		"question_id", questionID,
		"reason", reason,
	)
}
