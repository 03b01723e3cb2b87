package entity

import (
	"github.com/cognicore/nars/pkg/nars/budget"
	"github.com/cognicore/nars/pkg/nars/term"
)

// Task pairs a sentence with a budget and the parent references that let
// the admission gate reconstruct a derivation's chain and detect cycles.
// A Task is input iff Parent is nil.
type Task struct {
	Sentence     Sentence
	Budget       budget.Value
	Parent       *Task
	ParentBelief *Sentence
	BestSolution *Sentence
}

// NewInputTask builds a task with no parent: an externally supplied
// judgment, goal, question, or quest.
func NewInputTask(s Sentence, b budget.Value) *Task {
	return &Task{Sentence: s, Budget: b}
}

// NewDerivedTask builds a task derived from parent, optionally against a
// parent belief (nil for single-premise derivations that used none).
func NewDerivedTask(s Sentence, b budget.Value, parent *Task, parentBelief *Sentence) *Task {
	return &Task{Sentence: s, Budget: b, Parent: parent, ParentBelief: parentBelief}
}

// IsInput reports whether this task has no parent.
func (t *Task) IsInput() bool {
	return t.Parent == nil
}

// ParentContent returns the parent task's content, or nil if this task is
// input.
func (t *Task) ParentContent() *term.Term {
	if t.Parent == nil {
		return nil
	}
	return t.Parent.Sentence.Content
}

// GrandparentContent returns the content of this task's grandparent task
// (parent's parent), or nil if fewer than two ancestors exist. The
// single-premise admission check uses ParentContent, not this.
func (t *Task) GrandparentContent() *term.Term {
	if t.Parent == nil || t.Parent.Parent == nil {
		return nil
	}
	return t.Parent.Parent.Sentence.Content
}

// String renders the task's sentence for logging.
func (t *Task) String() string {
	return t.Sentence.String()
}

// BagKey satisfies bag.Item: tasks of the same punctuation over the same
// content are the same scheduling entry.
func (t *Task) BagKey() string {
	return t.Sentence.Punctuation.String() + t.Sentence.Content.String()
}

// BudgetValue satisfies bag.Item.
func (t *Task) BudgetValue() budget.Value { return t.Budget }

// SetBudget satisfies bag.Item.
func (t *Task) SetBudget(b budget.Value) { t.Budget = b }
