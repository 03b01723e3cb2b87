package structural

import (
	"github.com/cognicore/nars/pkg/nars/budget"
	"github.com/cognicore/nars/pkg/nars/memory"
	"github.com/cognicore/nars/pkg/nars/term"
	"github.com/cognicore/nars/pkg/nars/truth"
)

// TransformProductImage implements the product/image equivalence:
//
//	{<(*,S,M) --> P>, S@(*,S,M)} |- <S --> (/,P,_,M)>
//	{<S --> (/,P,_,M)>, P@(/,P,_,M)} |- <(*,S,M) --> P>
//	{<S --> (/,P,_,M)>, M@(/,P,_,M)} |- <M --> (/,P,S,_)>
//
// inh is the inheritance statement being transformed; oldContent is the
// task's full content (inh itself, or inh nested inside an outer
// statement/conjunction at the path indices). When inh is the whole
// content, every position of whichever side is a compound is transformed
// at once (transformSubjectPI/transformPredicatePI); spec.md's own
// testable scenario for this rule (§8 scenario 3) only exercises that
// top-level case, so the nested-indices path below covers the direct
// statement/conjunction embeddings the source handles and no deeper.
func TransformProductImage(m *memory.Memory, inh *term.Term, oldContent *term.Term, indices []int) {
	subject := inh.Subject()
	predicate := inh.Predicate()

	if inh == oldContent {
		if subject.IsCompound() {
			transformSubjectPI(m, subject, predicate)
		}
		if predicate.IsCompound() {
			transformPredicatePI(m, subject, predicate)
		}
		return
	}

	index := indices[len(indices)-1]
	side := indices[len(indices)-2]
	comp := inh.Components()[side]

	var newSubject, newPredicate *term.Term
	var ok bool
	switch {
	case comp.Operator() == term.Product && side == 0:
		newSubject = comp.Components()[index]
		newPredicate, ok = term.MakeImage(term.ImageExt, inh.Predicate(), comp.Components(), index)
	case comp.Operator() == term.Product && side == 1:
		newSubject, ok = term.MakeImage(term.ImageInt, inh.Subject(), comp.Components(), index)
		newPredicate = comp.Components()[index]
	case comp.Operator() == term.ImageExt && side == 1:
		if index == comp.RelationIndex() {
			newSubject, ok = term.ProductFromImage(comp, inh.Subject())
			newPredicate = comp.Components()[index]
		} else {
			newSubject = comp.Components()[index]
			newPredicate, ok = term.MakeImageShifted(comp, inh.Subject(), index)
		}
	case comp.Operator() == term.ImageInt && side == 0:
		if index == comp.RelationIndex() {
			newSubject = comp.Components()[index]
			newPredicate, ok = term.ProductFromImage(comp, inh.Predicate())
		} else {
			newSubject, ok = term.MakeImageShifted(comp, inh.Predicate(), index)
			newPredicate = comp.Components()[index]
		}
	default:
		return
	}
	if !ok || newSubject == nil || newPredicate == nil {
		return
	}

	newInh, ok := term.MakeStatement(term.Inheritance, newSubject, newPredicate, term.OrderNone)
	if !ok {
		return
	}

	content := rebuildOuter(oldContent, indices, newInh)
	if content == nil {
		return
	}

	task := m.CurrentTask()
	sentence := task.Sentence
	var tv *truth.Value
	var b budget.Value
	if sentence.IsQuestion() {
		b = budget.CompoundBackward(content, task.Budget)
	} else {
		tv = sentence.Truth
		b = budget.CompoundForward(*tv, content, task.Budget)
	}
	m.EmitSinglePremise(content, tv, sentence.Punctuation, b)
}

// rebuildOuter substitutes newInh back into oldContent at the path
// recorded by indices[:len-2] (the two trailing entries address the
// compound/side/index already consumed to build newInh).
func rebuildOuter(oldContent *term.Term, indices []int, newInh *term.Term) *term.Term {
	if len(indices) == 2 {
		return newInh
	}
	if oldContent.IsStatement() && indices[0] == 1 {
		content, ok := term.MakeStatementLike(oldContent, oldContent.Subject(), newInh, oldContent.TemporalOrder())
		if !ok {
			return nil
		}
		return content
	}
	condition := oldContent.Components()[0]
	if (oldContent.Copula() == term.Implication || oldContent.Copula() == term.Equivalence) && condition.Operator() == term.Conjunction {
		replaced := append([]*term.Term(nil), condition.Components()...)
		replaced[indices[1]] = newInh
		newCond, ok := term.Make(condition, replaced)
		if !ok {
			return nil
		}
		content, ok := term.MakeStatementLike(oldContent, newCond, oldContent.Predicate(), oldContent.TemporalOrder())
		if !ok {
			return nil
		}
		return content
	}
	components := append([]*term.Term(nil), oldContent.Components()...)
	components[indices[0]] = newInh
	switch {
	case oldContent.Operator() == term.Conjunction:
		content, ok := term.Make(oldContent, components)
		if !ok {
			return nil
		}
		return content
	case oldContent.Copula() == term.Implication || oldContent.Copula() == term.Equivalence:
		content, ok := term.MakeStatementLike(oldContent, components[0], components[1], oldContent.TemporalOrder())
		if !ok {
			return nil
		}
		return content
	}
	return nil
}

// transformSubjectPI fans out over every position of a compound subject.
func transformSubjectPI(m *memory.Memory, subject, predicate *term.Term) {
	task := m.CurrentTask()
	tv := task.Sentence.Truth

	switch subject.Operator() {
	case term.Product:
		for i := range subject.Components() {
			newSubj := subject.Components()[i]
			newPred, ok := term.MakeImage(term.ImageExt, predicate, subject.Components(), i)
			if !ok {
				continue
			}
			emitTransformedInheritance(m, newSubj, newPred, tv)
		}
	case term.ImageInt:
		relationIndex := subject.RelationIndex()
		for i := range subject.Components() {
			var newSubj, newPred *term.Term
			var ok bool
			if i == relationIndex {
				newSubj = subject.Components()[relationIndex]
				newPred, ok = term.ProductFromImage(subject, predicate)
			} else {
				newSubj, ok = term.MakeImageShifted(subject, predicate, i)
				newPred = subject.Components()[i]
			}
			if !ok {
				continue
			}
			emitTransformedInheritance(m, newSubj, newPred, tv)
		}
	}
}

// transformPredicatePI fans out over every position of a compound predicate.
func transformPredicatePI(m *memory.Memory, subject, predicate *term.Term) {
	task := m.CurrentTask()
	tv := task.Sentence.Truth

	switch predicate.Operator() {
	case term.Product:
		for i := range predicate.Components() {
			newSubj, ok := term.MakeImage(term.ImageInt, subject, predicate.Components(), i)
			if !ok {
				continue
			}
			newPred := predicate.Components()[i]
			emitTransformedInheritance(m, newSubj, newPred, tv)
		}
	case term.ImageExt:
		relationIndex := predicate.RelationIndex()
		for i := range predicate.Components() {
			var newSubj, newPred *term.Term
			var ok bool
			if i == relationIndex {
				newSubj, ok = term.ProductFromImage(predicate, subject)
				newPred = predicate.Components()[relationIndex]
			} else {
				newSubj = predicate.Components()[i]
				newPred, ok = term.MakeImageShifted(predicate, subject, i)
			}
			if !ok {
				continue
			}
			emitTransformedInheritance(m, newSubj, newPred, tv)
		}
	}
}

func emitTransformedInheritance(m *memory.Memory, subj, pred *term.Term, tv *truth.Value) {
	inheritance, ok := term.MakeStatement(term.Inheritance, subj, pred, term.OrderNone)
	if !ok {
		return
	}
	task := m.CurrentTask()
	var b budget.Value
	if tv == nil {
		b = budget.CompoundBackward(inheritance, task.Budget)
	} else {
		b = budget.CompoundForward(*tv, inheritance, task.Budget)
	}
	m.EmitSinglePremise(inheritance, tv, task.Sentence.Punctuation, b)
}
