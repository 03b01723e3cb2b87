package structural

import (
	"github.com/cognicore/nars/pkg/nars/entity"
	"github.com/cognicore/nars/pkg/nars/memory"
	"github.com/cognicore/nars/pkg/nars/term"
)

// Dispatch is the structural-rule entry point a composed ConceptFirer calls
// on every firing, both on the direct-processing path (nil links) and on
// processConcept's task-link/term-link path, whether or not a syllogistic
// rule also ran on the same pair. It routes on the current
// task's content shape and, where a term-link is present, on the link's
// type and target, trying every structurally plausible rule for that shape
// and relying on each rule's own internal guards to no-op when the shapes
// don't actually line up — the same defensive style compose.go and
// composeone.go already use internally (component == subj/pred checks,
// operator switches with empty branches).
func Dispatch(m *memory.Memory, c *entity.Concept, taskLink *entity.TaskLink, termLink *entity.TermLink) {
	task := m.CurrentTask()
	if task == nil {
		return
	}
	content := task.Sentence.Content

	dispatchSinglePremise(m, content)

	if termLink == nil || termLink.Target == nil {
		return
	}
	dispatchLinked(m, content, termLink)
}

// dispatchSinglePremise covers the rules that only need the task's own
// content: negation, contraposition over an implication, and the
// product/image transform over an inheritance statement (a no-op unless
// one side is a Product/ImageExt/ImageInt compound).
func dispatchSinglePremise(m *memory.Memory, content *term.Term) {
	if content.IsCompound() && content.Operator() == term.Negation {
		TransformNegation(m, content)
	}
	if !content.IsStatement() {
		return
	}
	switch content.Copula() {
	case term.Implication:
		Contraposition(m, content)
	case term.Inheritance:
		TransformProductImage(m, content, content, nil)
		dispatchSetRelation(m, content)
	}
}

// dispatchSetRelation fires TransformSetRelation for whichever side of an
// inheritance/similarity statement is a singleton SetExt/SetInt, a no-op
// for any statement with no singleton side.
func dispatchSetRelation(m *memory.Memory, statement *term.Term) {
	if isSingletonSet(statement.Subject()) {
		TransformSetRelation(m, statement.Subject(), statement, 0)
	}
	if isSingletonSet(statement.Predicate()) {
		TransformSetRelation(m, statement.Predicate(), statement, 1)
	}
}

func isSingletonSet(t *term.Term) bool {
	if !t.IsCompound() {
		return false
	}
	if t.Operator() != term.SetExt && t.Operator() != term.SetInt {
		return false
	}
	return len(t.Components()) == 1
}

// dispatchLinked covers the rules that need a second piece of structural
// context beyond the task's own content: the term-link's target (the
// related compound or component) and index (its position within whichever
// side is a compound). Every branch is attempted whenever the coarse shape
// allows it; the rule itself decides whether the specific index/side
// actually composes or decomposes anything.
func dispatchLinked(m *memory.Memory, content *term.Term, link *entity.TermLink) {
	idx := 0
	if len(link.Index) > 0 {
		idx = link.Index[len(link.Index)-1]
	}
	target := link.Target

	if target.IsCompound() && (target.Operator() == term.Conjunction || target.Operator() == term.Disjunction) {
		StructuralCompound(m, target, content, false, idx)
	}
	if content.IsCompound() && (content.Operator() == term.Conjunction || content.Operator() == term.Disjunction) {
		StructuralCompound(m, content, target, true, idx)
	}

	if !content.IsStatement() {
		return
	}
	if target.IsCompound() && idx < len(target.Components()) {
		ComposeOne(m, target, idx, content)
		DecomposeOne(m, target, idx, content)
		ComposeTwo(m, target, idx, content, 0)
		ComposeTwo(m, target, idx, content, 1)
	}
	if subj := content.Subject(); subj.IsCompound() && subj.Operator() == target.Operator() {
		DecomposeTwo(m, content, idx)
	}
}
