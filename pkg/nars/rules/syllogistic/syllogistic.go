// Package syllogistic implements the two-premise NAL-1 rules: deduction,
// induction, abduction, exemplification, comparison, analogy, and
// resemblance. It is wired into memory.Memory the same way
// rules/structural is — as a ConceptFirer callback reading
// CurrentTask/CurrentBelief and emitting through EmitDoublePremise — so
// a reasoner has something to derive once both premises of a concept's
// task-link/term-link pair are in hand.
package syllogistic

import (
	"github.com/cognicore/nars/pkg/nars/budget"
	"github.com/cognicore/nars/pkg/nars/entity"
	"github.com/cognicore/nars/pkg/nars/memory"
	"github.com/cognicore/nars/pkg/nars/term"
	"github.com/cognicore/nars/pkg/nars/truth"
)

// Fire dispatches on the shared middle term between the current task's
// and belief's statements. Only Inheritance/Similarity premises are
// handled; other copulas (Implication/Equivalence) are left to a future
// temporal layer, matching spec.md's explicit scope (NAL-1 term logic).
func Fire(m *memory.Memory, c *entity.Concept, taskLink *entity.TaskLink, termLink *entity.TermLink) {
	task := m.CurrentTask()
	belief := m.CurrentBelief()
	if task == nil || belief == nil {
		return
	}
	if !task.Sentence.IsJudgment() {
		return
	}
	taskStmt := task.Sentence.Content
	beliefStmt := belief.Content
	if !taskStmt.IsStatement() || !beliefStmt.IsStatement() {
		return
	}
	if taskStmt == beliefStmt {
		return
	}

	switch {
	case taskStmt.Copula() == term.Inheritance && beliefStmt.Copula() == term.Inheritance:
		fireInheritancePair(m, task, belief, taskStmt, beliefStmt)
	case taskStmt.Copula() == term.Inheritance && beliefStmt.Copula() == term.Similarity:
		fireAnalogy(m, task, belief, taskStmt, beliefStmt)
	case taskStmt.Copula() == term.Similarity && beliefStmt.Copula() == term.Inheritance:
		fireAnalogy(m, task, belief, beliefStmt, taskStmt)
	case taskStmt.Copula() == term.Similarity && beliefStmt.Copula() == term.Similarity:
		fireResemblance(m, task, belief, taskStmt, beliefStmt)
	}
}

func fireInheritancePair(m *memory.Memory, task *entity.Task, belief *entity.Sentence, taskStmt, beliefStmt *term.Term) {
	taskSub, taskPred := taskStmt.Subject(), taskStmt.Predicate()
	beliefSub, beliefPred := beliefStmt.Subject(), beliefStmt.Predicate()
	taskTV, beliefTV := *task.Sentence.Truth, *belief.Truth

	switch {
	case taskPred == beliefSub:
		// <S-->M>,<M-->P> |- <S-->P>
		emitInheritance(m, task, taskSub, beliefPred, truth.Deduction2(taskTV, beliefTV))
	case taskSub == beliefSub:
		// <M-->P>,<M-->S> |- <S-->P> and, in parallel, <S<->P>.
		emitInheritance(m, task, beliefPred, taskPred, truth.Induction(taskTV, beliefTV))
		emitSimilarity(m, task, beliefPred, taskPred, truth.Comparison(taskTV, beliefTV))
	case taskPred == beliefPred:
		// <P-->M>,<S-->M> |- <S-->P>
		emitInheritance(m, task, beliefSub, taskSub, truth.Abduction(taskTV, beliefTV))
	case taskSub == beliefPred:
		// <P-->M>,<M-->S> |- <S-->P>
		emitInheritance(m, task, taskPred, beliefSub, truth.Exemplification(beliefTV, taskTV))
	}
}

// fireAnalogy handles one Inheritance premise (inh) and one Similarity
// premise (sim) sharing a middle term: <S-->M>,<M<->P> |- <S-->P>.
func fireAnalogy(m *memory.Memory, task *entity.Task, belief *entity.Sentence, inh, sim *term.Term) {
	inhSub, inhPred := inh.Subject(), inh.Predicate()
	simSub, simPred := sim.Subject(), sim.Predicate()

	var inhTV, simTV truth.Value
	if inh == task.Sentence.Content {
		inhTV, simTV = *task.Sentence.Truth, *belief.Truth
	} else {
		inhTV, simTV = *belief.Truth, *task.Sentence.Truth
	}

	switch {
	case inhPred == simSub:
		emitInheritance(m, task, inhSub, simPred, truth.Analogy(inhTV, simTV))
	case inhPred == simPred:
		emitInheritance(m, task, inhSub, simSub, truth.Analogy(inhTV, simTV))
	}
}

func fireResemblance(m *memory.Memory, task *entity.Task, belief *entity.Sentence, taskStmt, beliefStmt *term.Term) {
	taskSub, taskPred := taskStmt.Subject(), taskStmt.Predicate()
	beliefSub, beliefPred := beliefStmt.Subject(), beliefStmt.Predicate()
	taskTV, beliefTV := *task.Sentence.Truth, *belief.Truth

	switch {
	case taskSub == beliefSub:
		emitSimilarity(m, task, taskPred, beliefPred, truth.Resemblance(taskTV, beliefTV))
	case taskSub == beliefPred:
		emitSimilarity(m, task, taskPred, beliefSub, truth.Resemblance(taskTV, beliefTV))
	case taskPred == beliefSub:
		emitSimilarity(m, task, taskSub, beliefPred, truth.Resemblance(taskTV, beliefTV))
	case taskPred == beliefPred:
		emitSimilarity(m, task, taskSub, beliefSub, truth.Resemblance(taskTV, beliefTV))
	}
}

func emitInheritance(m *memory.Memory, task *entity.Task, subj, pred *term.Term, tv truth.Value) {
	content, ok := term.MakeStatement(term.Inheritance, subj, pred, term.OrderNone)
	if !ok {
		return
	}
	emit(m, task, content, tv)
}

func emitSimilarity(m *memory.Memory, task *entity.Task, a, b *term.Term, tv truth.Value) {
	content, ok := term.MakeStatement(term.Similarity, a, b, term.OrderNone)
	if !ok {
		return
	}
	emit(m, task, content, tv)
}

func emit(m *memory.Memory, task *entity.Task, content *term.Term, tv truth.Value) {
	b := budget.CompoundForward(tv, content, task.Budget)
	m.EmitDoublePremise(content, &tv, entity.Judgment, b)
}
