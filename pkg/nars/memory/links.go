package memory

import (
	"github.com/cognicore/nars/pkg/nars/budget"
	"github.com/cognicore/nars/pkg/nars/entity"
	"github.com/cognicore/nars/pkg/nars/term"
)

// buildLinks files t under c (a task-link keyed by the task itself) and,
// for every immediate component of c's term, inserts a term-link from c
// to the component's concept, the mirror term-link back, and a copy of
// the task-link into the component concept. This is what lets
// processConcept later pair a task filed under one concept against the
// belief of a structurally related concept (spec.md §4.5 step 4):
// without it, a concept's task-link/term-link bags never hold anything
// beyond LinkSelf, and two-premise inference never has a second premise
// to pair against.
func (m *Memory) buildLinks(t *entity.Task, c *entity.Concept) {
	selfKey := "task:" + t.String()
	c.TaskLinks.PutIn(entity.NewTaskLink(selfKey, t, t.Budget))

	if !c.Term.IsCompound() && !c.Term.IsStatement() {
		return
	}
	components := c.Term.Components()
	linkBudget := budget.DistributeLink(t.Budget, len(components))

	for idx, comp := range components {
		if comp == term.Placeholder {
			continue
		}
		compConcept := m.getOrCreateConcept(comp, linkBudget)

		fwdKey := "link:" + c.Term.String() + "->" + comp.String()
		c.TermLinks.PutIn(entity.NewTermLink(fwdKey, comp, componentLinkType(c.Term), []int{idx}, linkBudget))

		backKey := "link:" + comp.String() + "->" + c.Term.String()
		compConcept.TermLinks.PutIn(entity.NewTermLink(backKey, c.Term, compoundLinkType(c.Term), []int{idx}, linkBudget))

		compConcept.TaskLinks.PutIn(entity.NewTaskLink(selfKey, t, linkBudget))
	}
}

// componentLinkType and compoundLinkType classify a term-link by whether
// the owning term is a statement (subject/predicate) or an ordinary
// compound (set/product/image/junction); the Condition variants belong to
// temporal implication premises and are left unused until that layer
// exists, matching rules/syllogistic's same explicit scope note.
func componentLinkType(owner *term.Term) entity.LinkType {
	if owner.IsStatement() {
		return entity.LinkComponentStatement
	}
	return entity.LinkComponent
}

func compoundLinkType(owner *term.Term) entity.LinkType {
	if owner.IsStatement() {
		return entity.LinkCompoundStatement
	}
	return entity.LinkCompound
}
