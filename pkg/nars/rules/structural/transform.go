package structural

import (
	"github.com/cognicore/nars/pkg/nars/budget"
	"github.com/cognicore/nars/pkg/nars/entity"
	"github.com/cognicore/nars/pkg/nars/memory"
	"github.com/cognicore/nars/pkg/nars/term"
	"github.com/cognicore/nars/pkg/nars/truth"
)

// TransformSetRelation: {<S --> {P}>} |- <S <-> {P}>, and conversely for
// similarity, choosing direction by which side holds the singleton set.
func TransformSetRelation(m *memory.Memory, compound *term.Term, statement *term.Term, side int) {
	if len(compound.Components()) > 1 {
		return
	}
	sub := statement.Subject()
	pred := statement.Predicate()

	var content *term.Term
	var ok bool
	if statement.Copula() == term.Inheritance {
		if (compound.Operator() == term.SetExt && side == 0) || (compound.Operator() == term.SetInt && side == 1) {
			return
		}
		content, ok = term.MakeStatement(term.Similarity, sub, pred, term.OrderNone)
	} else {
		if (compound.Operator() == term.SetExt && side == 0) || (compound.Operator() == term.SetInt && side == 1) {
			content, ok = term.MakeStatement(term.Inheritance, pred, sub, term.OrderNone)
		} else {
			content, ok = term.MakeStatement(term.Inheritance, sub, pred, term.OrderNone)
		}
	}
	if !ok {
		return
	}

	task := m.CurrentTask()
	sentence := task.Sentence
	var tv *truth.Value
	var b budget.Value
	if sentence.IsJudgment() {
		tv = sentence.Truth
		b = budget.CompoundForward(*tv, content, task.Budget)
	} else {
		b = budget.CompoundBackward(content, task.Budget)
	}
	m.EmitSinglePremise(content, tv, sentence.Punctuation, b)
}

// TransformNegation: {A, A@(--, A)} |- (--, A).
func TransformNegation(m *memory.Memory, content *term.Term) {
	task := m.CurrentTask()
	sentence := task.Sentence

	if sentence.IsJudgment() || sentence.IsGoal() {
		tv := truth.Negation(*sentence.Truth)
		b := budget.CompoundForward(tv, content, task.Budget)
		m.EmitSinglePremise(content, &tv, sentence.Punctuation, b)
		return
	}
	b := budget.CompoundBackward(content, task.Budget)
	m.EmitSinglePremise(content, nil, sentence.Punctuation, b)
}

// Contraposition: <A ==> B> |- <(--B) ==> (--A)>, reversing temporal
// order. Punctuation is explicitly set per spec.md §4.7.
func Contraposition(m *memory.Memory, statement *term.Term) {
	task := m.CurrentTask()
	sentence := task.Sentence

	subj := statement.Subject()
	pred := statement.Predicate()
	negPred, ok1 := term.MakeNegation(pred)
	negSubj, ok2 := term.MakeNegation(subj)
	if !ok1 || !ok2 {
		return
	}
	content, ok := term.MakeStatementLike(statement, negPred, negSubj, statement.TemporalOrder().Reverse())
	if !ok {
		return
	}

	if sentence.IsQuestion() || sentence.IsQuest() {
		var b budget.Value
		if content.Copula() == term.Implication {
			b = budget.CompoundBackwardWeak(content, task.Budget)
		} else {
			b = budget.CompoundBackward(content, task.Budget)
		}
		m.EmitSinglePremise(content, nil, entity.Question, b)
		return
	}

	tv := *sentence.Truth
	if content.Copula() == term.Implication {
		tv = truth.Contraposition(tv)
	}
	b := budget.CompoundForward(tv, content, task.Budget)
	m.EmitSinglePremise(content, &tv, entity.Judgment, b)
}

// StructuralCompound: {(&&, A, B), A@(&&, A, B)} |- A, or answer
// (&&, A, B)? using A. Preserves the four truth sub-cases from spec.md §9
// as explicit branches rather than a paraphrase.
func StructuralCompound(m *memory.Memory, compound *term.Term, component *term.Term, compoundTask bool, index int) {
	if !component.IsConstant() {
		return
	}
	if compound.Operator() == term.Conjunction && compound.TemporalOrder() == term.OrderForward && index != 0 {
		return
	}

	var content *term.Term
	if compoundTask {
		content = component
	} else {
		content = compound
	}

	task := m.CurrentTask()
	sentence := task.Sentence
	tv := sentence.Truth

	var b budget.Value
	if sentence.IsQuestion() || sentence.IsQuest() {
		b = budget.CompoundBackward(content, task.Budget)
	} else {
		isConj := compound.Operator() == term.Conjunction
		switch {
		case sentence.IsJudgment() == (compoundTask == isConj):
			d := truth.Deduction(*tv, reliance)
			tv = &d
		case sentence.IsGoal():
			d := truth.Deduction(*tv, reliance)
			tv = &d
		default:
			v1 := truth.Negation(*tv)
			v2 := truth.Deduction(v1, reliance)
			v3 := truth.Negation(v2)
			tv = &v3
		}
		b = budget.Forward(*tv, content, task.Budget)
	}
	m.EmitSinglePremise(content, tv, sentence.Punctuation, b)
}
