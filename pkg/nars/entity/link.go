package entity

import (
	"github.com/cognicore/nars/pkg/nars/budget"
	"github.com/cognicore/nars/pkg/nars/term"
)

// LinkType records how a term-link's target relates to its owning
// concept's term: as a component, a compound containing it, or the
// relation/subject/predicate of a statement.
type LinkType int

const (
	LinkSelf LinkType = iota
	LinkComponent
	LinkCompound
	LinkComponentStatement
	LinkCompoundStatement
	LinkComponentCondition
	LinkCompoundCondition
)

// TaskLink associates a task with the concept it is filed under, so the
// concept's task-link bag can hand it to a firing cycle without walking
// every task in Memory.
type TaskLink struct {
	Key    string
	Task   *Task
	Budget budget.Value
}

// NewTaskLink builds a task-link keyed by the task's own identity; two
// task-links for the same task must collide in the bag so repeated
// reference merges budgets rather than duplicating entries.
func NewTaskLink(key string, t *Task, b budget.Value) *TaskLink {
	return &TaskLink{Key: key, Task: t, Budget: b}
}

// BudgetValue satisfies bag.Item.
func (l *TaskLink) BudgetValue() budget.Value { return l.Budget }

// BagKey satisfies bag.Item.
func (l *TaskLink) BagKey() string { return l.Key }

// SetBudget satisfies bag.Item.
func (l *TaskLink) SetBudget(b budget.Value) { l.Budget = b }

// TermLink connects a concept to a related term, carrying the structural
// relationship (LinkType) and, for compound links, the index within the
// compound where the concept's term occurs.
type TermLink struct {
	Key    string
	Target *term.Term
	Type   LinkType
	Index  []int
	Budget budget.Value
}

// NewTermLink builds a term-link from a concept's term to target.
func NewTermLink(key string, target *term.Term, kind LinkType, index []int, b budget.Value) *TermLink {
	return &TermLink{Key: key, Target: target, Type: kind, Index: index, Budget: b}
}

// BudgetValue satisfies bag.Item.
func (l *TermLink) BudgetValue() budget.Value { return l.Budget }

// BagKey satisfies bag.Item.
func (l *TermLink) BagKey() string { return l.Key }

// SetBudget satisfies bag.Item.
func (l *TermLink) SetBudget(b budget.Value) { l.Budget = b }
