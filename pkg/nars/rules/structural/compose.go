// Package structural implements the single-premise compound-term
// transformations (C8): composing and decomposing statements against
// compounds, the product/image transform, set-relation transform,
// conjunction/disjunction extraction, negation, and contraposition. Every
// rule here reads its premise from one Memory's current-task/current-belief
// scratch slots and emits through Memory.EmitSinglePremise.
package structural

import (
	"github.com/cognicore/nars/pkg/nars/budget"
	"github.com/cognicore/nars/pkg/nars/entity"
	"github.com/cognicore/nars/pkg/nars/memory"
	"github.com/cognicore/nars/pkg/nars/term"
	"github.com/cognicore/nars/pkg/nars/truth"
)

const reliance = truth.Reliance

func contains(components []*term.Term, target *term.Term) bool {
	for _, c := range components {
		if c == target {
			return true
		}
	}
	return false
}

func replaceAt(components []*term.Term, index int, value *term.Term) []*term.Term {
	out := append([]*term.Term(nil), components...)
	out[index] = value
	return out
}

// SwitchOrder reports whether the direction of inheritance should be
// revised in the conclusion: difference at index 1, or an image whose
// focused index is not its relation index.
func SwitchOrder(compound *term.Term, index int) bool {
	switch compound.Operator() {
	case term.DifferenceExt, term.DifferenceInt:
		return index == 1
	case term.ImageExt, term.ImageInt:
		return index != compound.RelationIndex()
	}
	return false
}

// ComposeTwo: {<S --> P>, S@(S*T)} |- <(S*T) --> (P*T)>.
func ComposeTwo(m *memory.Memory, compound *term.Term, index int, statement *term.Term, side int) {
	if compound == statement.Components()[side] {
		return
	}
	sub := statement.Subject()
	pred := statement.Predicate()
	components := compound.Components()
	if side == 0 && contains(components, pred) {
		return
	}
	if side == 1 && contains(components, sub) {
		return
	}

	var newSub, newPred *term.Term
	var ok bool
	if side == 0 {
		if !contains(components, sub) {
			return
		}
		newSub = compound
		newPred, ok = term.Make(compound, replaceAt(components, index, pred))
		if !ok {
			return
		}
	} else {
		if !contains(components, pred) {
			return
		}
		newSub, ok = term.Make(compound, replaceAt(components, index, sub))
		if !ok {
			return
		}
		newPred = compound
	}

	order := statement.TemporalOrder()
	var content *term.Term
	if SwitchOrder(compound, index) {
		content, ok = term.MakeStatementLike(statement, newPred, newSub, order.Reverse())
	} else {
		content, ok = term.MakeStatementLike(statement, newSub, newPred, order)
	}
	if !ok {
		return
	}

	sentence := m.CurrentTask().Sentence
	tv := truth.Deduction(*sentence.Truth, reliance)
	b := budget.CompoundForward(tv, content, m.CurrentTask().Budget)
	m.EmitSinglePremise(content, &tv, entity.Judgment, b)
}

// DecomposeTwo: {<(S*T) --> (P*T)>, S@(S*T)} |- <S --> P>.
func DecomposeTwo(m *memory.Memory, statement *term.Term, index int) {
	subj := statement.Subject()
	pred := statement.Predicate()
	if subj.Operator() != pred.Operator() || !subj.IsCompound() || !pred.IsCompound() {
		return
	}
	subComponents := subj.Components()
	predComponents := pred.Components()
	if len(subComponents) != len(predComponents) || len(subComponents) <= index {
		return
	}
	t1 := subComponents[index]
	t2 := predComponents[index]

	order := statement.TemporalOrder()
	var content *term.Term
	var ok bool
	if SwitchOrder(subj, index) {
		content, ok = term.MakeStatementLike(statement, t2, t1, order.Reverse())
	} else {
		content, ok = term.MakeStatementLike(statement, t1, t2, order)
	}
	if !ok {
		return
	}

	task := m.CurrentTask()
	sentence := task.Sentence
	var tv *truth.Value
	var b budget.Value
	if sentence.IsQuestion() || sentence.IsQuest() {
		b = budget.CompoundBackward(content, task.Budget)
	} else {
		tv = sentence.Truth
		b = budget.CompoundForward(*tv, content, task.Budget)
	}
	m.EmitSinglePremise(content, tv, sentence.Punctuation, b)
}
