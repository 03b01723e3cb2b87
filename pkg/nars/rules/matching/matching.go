// Package matching implements revision (combining two judgments over the
// same content) and question/quest answering (matching an open question
// against a concept's best belief). Named in SPEC_FULL.md as an external
// collaborator alongside rules/syllogistic: both feed memory.Memory
// through its admission gate rather than being part of the gate itself.
package matching

import (
	"github.com/cognicore/nars/pkg/nars/budget"
	"github.com/cognicore/nars/pkg/nars/config"
	"github.com/cognicore/nars/pkg/nars/entity"
	"github.com/cognicore/nars/pkg/nars/memory"
	"github.com/cognicore/nars/pkg/nars/truth"
)

// TrySolution ranks belief as a candidate answer to question: it must
// carry truth (a judgment or goal, never another question), and its
// expectation must both clear cfg.NovelTaskExpectation-independent
// admission threshold and improve on question's current best solution.
// Returns the unchanged belief and true when it is accepted as the new
// best solution.
func TrySolution(question entity.Sentence, belief entity.Sentence, current *entity.Sentence, cfg config.Parameters) (entity.Sentence, bool) {
	if belief.Truth == nil {
		return entity.Sentence{}, false
	}
	if belief.Expectation() < cfg.AdmissionThreshold {
		return entity.Sentence{}, false
	}
	if current != nil && current.Expectation() >= belief.Expectation() {
		return entity.Sentence{}, false
	}
	return belief, true
}

// FireDirect is installed as the nil-link branch of the composed
// ConceptFirer (direct/immediate processing, spec.md §4.5 step 2): it
// revises the just-admitted judgment against the concept's existing best
// belief when they share content, and answers any open questions/quests
// the concept is holding against its (possibly just-revised) best belief.
func FireDirect(m *memory.Memory, c *entity.Concept) {
	task := m.CurrentTask()
	if task == nil {
		return
	}

	if task.Sentence.IsJudgment() {
		// PriorBestBelief, not c.BestBelief: AddBelief already folded the
		// current task's own judgment into the concept's ranked belief
		// list before FireDirect ran, so by now BestBelief may well be
		// the task's own content — revising against that would compare
		// the task against itself and always reject on stamp overlap.
		if existing := m.PriorBestBelief(); existing != nil && existing.Content == task.Sentence.Content {
			reviseAgainst(m, task, *existing)
		}
	}

	best := c.BestBelief()
	if best == nil {
		return
	}
	for _, q := range c.Questions {
		answerQuestion(m, q, *best)
	}
}

func reviseAgainst(m *memory.Memory, task *entity.Task, existing entity.Sentence) {
	tv := truth.Revision(*task.Sentence.Truth, *existing.Truth)
	b := budget.CompoundForward(tv, task.Sentence.Content, task.Budget)
	m.EmitRevision(task.Sentence.Content, tv, b, existing)
}

func answerQuestion(m *memory.Memory, question *entity.Task, belief entity.Sentence) {
	if question.Sentence.Content != belief.Content {
		return
	}
	accepted, ok := TrySolution(question.Sentence, belief, question.BestSolution, m.ConfigSnapshot())
	if !ok {
		return
	}
	question.BestSolution = &accepted
	m.Answer(question, accepted)
}
