package structural

import (
	"github.com/cognicore/nars/pkg/nars/budget"
	"github.com/cognicore/nars/pkg/nars/entity"
	"github.com/cognicore/nars/pkg/nars/memory"
	"github.com/cognicore/nars/pkg/nars/term"
	"github.com/cognicore/nars/pkg/nars/truth"
)

// structuralStatement is the common tail of ComposeOne/DecomposeOne: the
// current task's content must itself be a statement, and the new
// subject/predicate replace its sides.
func structuralStatement(m *memory.Memory, subject, predicate *term.Term, order term.Order, tv truth.Value) {
	task := m.CurrentTask()
	oldContent := task.Sentence.Content
	if !oldContent.IsStatement() {
		return
	}
	content, ok := term.MakeStatementLike(oldContent, subject, predicate, order)
	if !ok {
		return
	}
	b := budget.CompoundForward(tv, content, task.Budget)
	m.EmitSinglePremise(content, &tv, entity.Judgment, b)
}

// ComposeOne: {<S --> P>, P@(P|Q)} |- <S --> (P|Q)>, forward inference
// only. The per-operator table preserves the Open Question empty
// branches (IntersectionInt as subject, IntersectionExt as predicate) and
// the index-0 no-ops (DifferenceInt as subject, DifferenceExt as
// predicate) exactly as the source leaves them: no rule fires.
func ComposeOne(m *memory.Memory, compound *term.Term, index int, statement *term.Term) {
	task := m.CurrentTask()
	if !task.Sentence.IsJudgment() {
		return
	}
	component := compound.Components()[index]
	order := task.Sentence.Content.TemporalOrder()
	tv := *task.Sentence.Truth
	truthDed := truth.Deduction(tv, reliance)
	truthNDed := truth.Negation(truthDed)

	subj := statement.Subject()
	pred := statement.Predicate()

	switch {
	case component == subj:
		switch compound.Operator() {
		case term.IntersectionExt:
			structuralStatement(m, compound, pred, order, truthDed)
		case term.IntersectionInt:
			// Open question (spec.md §9): source leaves this branch empty.
		case term.DifferenceExt:
			if index == 0 {
				structuralStatement(m, compound, pred, order, truthDed)
			}
		case term.DifferenceInt:
			if index != 0 {
				structuralStatement(m, compound, pred, order, truthNDed)
			}
		}
	case component == pred:
		switch compound.Operator() {
		case term.IntersectionExt:
			// Open question (spec.md §9): source leaves this branch empty.
		case term.IntersectionInt:
			structuralStatement(m, subj, compound, order, truthDed)
		case term.DifferenceExt:
			if index != 0 {
				structuralStatement(m, subj, compound, order, truthNDed)
			}
		case term.DifferenceInt:
			if index == 0 {
				structuralStatement(m, subj, compound, order, truthDed)
			}
		}
	}
}

// DecomposeOne: {<(S|T) --> P>, S@(S|T)} |- <S --> P>.
func DecomposeOne(m *memory.Memory, compound *term.Term, index int, statement *term.Term) {
	task := m.CurrentTask()
	if task.Sentence.Truth == nil {
		return
	}
	component := compound.Components()[index]
	order := task.Sentence.Content.TemporalOrder()
	tv := *task.Sentence.Truth
	truthDed := truth.Deduction(tv, reliance)
	truthNDed := truth.Negation(truthDed)

	subj := statement.Subject()
	pred := statement.Predicate()

	switch {
	case compound == subj:
		switch compound.Operator() {
		case term.IntersectionInt:
			structuralStatement(m, component, pred, order, truthDed)
		case term.SetExt:
			if len(compound.Components()) > 1 {
				if singleton, ok := term.MakeSetExt(component); ok {
					structuralStatement(m, singleton, pred, order, truthDed)
				}
			}
		case term.DifferenceInt:
			if index == 0 {
				structuralStatement(m, component, pred, order, truthDed)
			} else {
				structuralStatement(m, component, pred, order, truthNDed)
			}
		}
	case compound == pred:
		switch compound.Operator() {
		case term.IntersectionExt:
			structuralStatement(m, subj, component, order, truthDed)
		case term.SetInt:
			if len(compound.Components()) > 1 {
				if singleton, ok := term.MakeSetInt(component); ok {
					structuralStatement(m, subj, singleton, order, truthDed)
				}
			}
		case term.DifferenceExt:
			if index == 0 {
				structuralStatement(m, subj, component, order, truthDed)
			} else {
				structuralStatement(m, subj, component, order, truthNDed)
			}
		}
	}
}
