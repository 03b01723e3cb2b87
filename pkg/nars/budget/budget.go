// Package budget implements the pure, total budget functions: deriving a
// derived task's (priority, durability, quality) from its parents' budgets
// and the syntactic complexity of its content.
package budget

import (
	"math"

	"github.com/cognicore/nars/pkg/nars/term"
	"github.com/cognicore/nars/pkg/nars/truth"
)

// Value is a (priority, durability, quality) triple, each in [0,1].
type Value struct {
	Priority   float64
	Durability float64
	Quality    float64
}

// Summary is the monotone scalar used to rank items in a priority bag and
// to gate admission against a threshold.
func (b Value) Summary() float64 {
	return (b.Priority + b.Durability + b.Quality) / 3
}

// AboveThreshold reports whether b's summary clears the configured
// admission threshold.
func (b Value) AboveThreshold(threshold float64) bool {
	return b.Summary() >= threshold
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func complexityFactor(content *term.Term) float64 {
	if content == nil {
		return 1
	}
	return float64(content.Size())
}

// CompoundForward derives a judgment/goal's budget from its single parent
// task's budget, a just-derived truth value, and the new content's
// complexity: priority and durability are the parent's own values divided
// by the complexity factor, quality tracks the new truth's expectation.
func CompoundForward(t truth.Value, content *term.Term, parent Value) Value {
	factor := complexityFactor(content)
	return Value{
		Priority:   clamp01(parent.Priority / factor),
		Durability: clamp01(parent.Durability / factor),
		Quality:    clamp01(t.Expectation()),
	}
}

// Forward is CompoundForward without a distinct content term driving the
// complexity factor (the new content and the current task's content
// coincide); callers pass the new content anyway since this kernel always
// has it in hand, but conceptually corresponds to Java's
// BudgetFunctions.forward(truth, memory).
func Forward(t truth.Value, content *term.Term, parent Value) Value {
	return CompoundForward(t, content, parent)
}

// CompoundBackward derives a question/quest's budget from its parent's
// budget and the candidate content's complexity, with no truth value to
// draw quality from; quality instead decays with complexity so that
// deeply nested backward-inference targets are deprioritized.
func CompoundBackward(content *term.Term, parent Value) Value {
	factor := complexityFactor(content)
	return Value{
		Priority:   clamp01(parent.Priority / factor),
		Durability: clamp01(parent.Durability / factor),
		Quality:    clamp01(1 / factor),
	}
}

// CompoundBackwardWeak is CompoundBackward with an additional discount,
// used where the structural rule table calls for a weaker backward budget
// (e.g. contraposition of a question whose conclusion is an implication).
func CompoundBackwardWeak(content *term.Term, parent Value) Value {
	b := CompoundBackward(content, parent)
	const weak = 0.5
	return Value{
		Priority:   clamp01(b.Priority * weak),
		Durability: clamp01(b.Durability * weak),
		Quality:    clamp01(b.Quality * weak),
	}
}

// Merge combines two budgets for the same key (bag.putIn's merge case):
// priority and quality take the max (the more promising view wins),
// durability averages (neither parent's patience is discarded).
func Merge(a, b Value) Value {
	priority := a.Priority
	if b.Priority > priority {
		priority = b.Priority
	}
	quality := a.Quality
	if b.Quality > quality {
		quality = b.Quality
	}
	return Value{
		Priority:   clamp01(priority),
		Durability: clamp01((a.Durability + b.Durability) / 2),
		Quality:    clamp01(quality),
	}
}

// Activate folds a newly-arrived task's budget into a concept's existing
// budget when the concept is referenced again (Memory.activateConcept).
func Activate(conceptBudget, taskBudget Value) Value {
	return Merge(conceptBudget, taskBudget)
}

// DistributeLink derives the budget a task-link/term-link carries when a
// task's content is walked to build the links connecting its concept to
// its components' concepts: priority and durability both shrink by
// sqrt(componentCount) so that a highly disjoint term doesn't flood every
// component concept with full-strength attention, quality is unchanged.
func DistributeLink(parent Value, componentCount int) Value {
	if componentCount < 1 {
		componentCount = 1
	}
	factor := math.Sqrt(float64(componentCount))
	return Value{
		Priority:   clamp01(parent.Priority / factor),
		Durability: clamp01(parent.Durability / factor),
		Quality:    parent.Quality,
	}
}

// Decay reduces durability on re-insertion into a bag (bag.putBack),
// modeling evidence going stale while queued.
func Decay(b Value, forgettingRate float64) Value {
	return Value{
		Priority:   b.Priority,
		Durability: clamp01(b.Durability * forgettingRate),
		Quality:    b.Quality,
	}
}
