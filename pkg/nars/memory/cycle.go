package memory

import (
	"github.com/cognicore/nars/pkg/nars/budget"
	"github.com/cognicore/nars/pkg/nars/entity"
	"github.com/cognicore/nars/pkg/nars/stamp"
	"github.com/cognicore/nars/pkg/nars/term"
	"github.com/cognicore/nars/pkg/nars/truth"
)

// ConceptFirer invokes a concept's rule-firing routine once it has been
// selected by processConcept. Wiring structural/syllogistic rules into
// firing is the driver's job (those packages import memory, not the
// reverse), so Memory only calls through this hook; a Memory with no
// firer installed still runs a complete, well-defined cycle that simply
// never derives anything past admission of input and novel tasks.
type ConceptFirer func(m *Memory, c *entity.Concept, taskLink *entity.TaskLink, termLink *entity.TermLink)

// TemporalInductor is invoked with two time-bound event tasks when step 5
// of the cycle identifies a pair to relate. Like ConceptFirer, this rule
// belongs to the syllogistic layer and is injected rather than imported.
type TemporalInductor func(m *Memory, newEvent, lastEvent *entity.Task, merged stamp.Stamp)

// SetConceptFirer installs the per-concept firing routine.
func (m *Memory) SetConceptFirer(f ConceptFirer) {
	m.fireConcept = f
}

// SetTemporalInductor installs the temporal induction rule.
func (m *Memory) SetTemporalInductor(f TemporalInductor) {
	m.temporalInductor = f
}

// Cycle executes exactly one reasoning cycle (spec.md §4.5). A no-op
// when the working flag is false.
func (m *Memory) Cycle() {
	if !m.working {
		return
	}
	m.recorder.OnCycleStart(m.clock)

	newEvent := m.processNewTasks()
	produced := newEvent != nil

	if !produced {
		if t, ok := m.novelTasks.TakeOut(); ok {
			m.immediateProcess(t)
			produced = true
		}
	}

	if !produced {
		m.processConcept()
	}

	if newEvent != nil && m.lastEvent != nil {
		if merged, ok := stamp.Make(m.stampGen, newEvent.Sentence.Stamp, m.lastEvent.Sentence.Stamp, m.clock, m.params.MaxEvidentialBaseLen); ok {
			if m.temporalInductor != nil {
				m.temporalInductor(m, newEvent, m.lastEvent, merged)
			}
		}
	}
	if newEvent != nil {
		m.lastEvent = newEvent
	}

	if m.stepsQueued > 0 {
		m.stepsQueued--
	}
	m.clock++
	m.recorder.OnCycleEnd(m.clock)
}

// processNewTasks drains exactly as many tasks as were queued at the
// start of the call (tasks enqueued during the drain remain for the next
// cycle). It returns the best-ranked time-bound judgment seen, if any,
// as the candidate "new event" for temporal induction.
func (m *Memory) processNewTasks() *entity.Task {
	n := len(m.inputQueue)
	if n == 0 {
		return nil
	}
	drained := m.inputQueue[:n]
	m.inputQueue = m.inputQueue[n:]

	var newEvent *entity.Task
	for _, t := range drained {
		_, hasConcept := m.concepts.Peek(t.Sentence.Content.String())
		switch {
		case t.IsInput() || hasConcept:
			m.immediateProcess(t)
			if t.Sentence.IsJudgment() && !t.Sentence.Eternal() {
				if newEvent == nil || t.Sentence.Expectation() > newEvent.Sentence.Expectation() {
					newEvent = t
				}
			}
		case t.Sentence.IsJudgment() && t.Sentence.Expectation() > m.params.NovelTaskExpectation:
			m.novelTasks.PutIn(t)
		default:
			m.recorder.OnTaskRemove(t.String(), neglectedReason)
		}
	}
	return newEvent
}

// immediateProcess sets current task and term, looks up or creates the
// concept for the task's content, activates it, and invokes its
// direct-processing routine (matching an existing belief/question/goal,
// which belongs to the matching package and is reached via fireConcept
// with a nil term-link/task-link pair signaling "direct").
func (m *Memory) immediateProcess(t *entity.Task) {
	m.currentTask = t
	m.currentBelief = nil

	c := m.getOrCreateConcept(t.Sentence.Content, t.Budget)
	if existing, ok := m.concepts.PickOut(c.BagKey()); ok {
		existing.Budget = budget.Activate(existing.Budget, t.Budget)
		c = existing
	}
	m.concepts.PutBack(c, m.params.ForgettingRate)
	m.currentConcept = c

	m.priorBestBelief = nil
	switch t.Sentence.Punctuation {
	case entity.Judgment:
		// Snapshot the pre-insertion best belief before AddBelief folds
		// the new judgment in: a new judgment with equal-or-higher
		// confidence sorts to the front of the ranked belief list, so
		// reading BestBelief after insertion could hand FireDirect the
		// task's own just-inserted copy as its revision partner. Copy by
		// value — insertRanked shifts Concept.Beliefs' backing array in
		// place, so a pointer taken before the call can end up aliasing
		// the very slot the new judgment gets written into.
		if best := c.BestBelief(); best != nil {
			snapshot := *best
			m.priorBestBelief = &snapshot
		}
		c.AddBelief(t.Sentence, m.params.MaxBeliefs)
	case entity.Goal:
		c.AddGoal(t.Sentence, m.params.MaxGoals)
	case entity.Question, entity.Quest:
		c.AddQuestion(t, m.params.MaxQuestions)
	}
	m.buildLinks(t, c)

	if m.fireConcept != nil {
		m.fireConcept(m, c, nil, nil)
	}
}

// processConcept picks a concept via the concepts bag's priority-weighted
// next-policy, sets it as current, selects a task-link and term-link, and
// invokes the firing routine.
func (m *Memory) processConcept() {
	c, ok := m.concepts.TakeOut()
	if !ok {
		return
	}
	m.currentConcept = c
	defer m.concepts.PutBack(c, m.params.ForgettingRate)

	taskLink, hasTaskLink := c.TaskLinks.TakeOut()
	var termLink *entity.TermLink
	if hasTaskLink {
		m.currentTaskLink = taskLink
		m.currentTask = taskLink.Task
		if tl, ok := c.TermLinks.TakeOut(); ok {
			termLink = tl
			m.currentTermLink = tl
		}
		defer c.TaskLinks.PutBack(taskLink, m.params.ForgettingRate)
		if termLink != nil {
			defer c.TermLinks.PutBack(termLink, m.params.ForgettingRate)
		}
	}

	if b, ok := m.bestBeliefFor(c, termLink); ok {
		m.currentBelief = &b
	} else {
		m.currentBelief = nil
	}

	if m.fireConcept != nil {
		m.fireConcept(m, c, taskLink, termLink)
	}
}

// bestBeliefFor selects the second premise for a processConcept cycle. A
// nil link means the task-link had no paired term-link (an exhausted
// term-link bag), so the only candidate second premise is c's own best
// belief; otherwise the term-link points at a structurally related
// concept, and its best belief is the candidate (spec.md §4.5 step 4:
// pairing a task against a belief from a different concept is exactly
// how the syllogistic rules get two distinct premises to combine).
func (m *Memory) bestBeliefFor(c *entity.Concept, link *entity.TermLink) (entity.Sentence, bool) {
	if link == nil {
		if best := c.BestBelief(); best != nil {
			return *best, true
		}
		return entity.Sentence{}, false
	}
	target, ok := m.concepts.Peek(link.Target.String())
	if !ok {
		return entity.Sentence{}, false
	}
	if best := target.BestBelief(); best != nil {
		return *best, true
	}
	return entity.Sentence{}, false
}

// EmitSinglePremise is the emission point every structural rule calls
// through. It applies the circular-structural-inference guard (skip if
// content equals the derived task's grandparent content — one hop up
// from the current task, since the current task is the derived task's
// parent), selects the stamp source per spec.md §4.6, and runs the
// result through the admission gate.
func (m *Memory) EmitSinglePremise(content *term.Term, tv *truth.Value, punct entity.Punctuation, b budget.Value) bool {
	if m.currentTask == nil {
		return false
	}
	if gp := m.currentTask.ParentContent(); gp != nil && gp == content {
		return false
	}

	var base stamp.Stamp
	if m.currentTask.Sentence.IsJudgment() || m.currentBelief == nil {
		base = m.currentTask.Sentence.Stamp
	} else {
		base = m.currentBelief.Stamp
	}
	derived := stamp.Derive(m.stampGen, base, m.clock, m.params.MaxDerivationChainLen)

	var sentence entity.Sentence
	switch punct {
	case entity.Judgment:
		sentence = entity.NewJudgment(content, *tv, derived)
	case entity.Goal:
		sentence = entity.NewGoal(content, *tv, derived)
	case entity.Question:
		sentence = entity.NewQuestion(content, derived)
	case entity.Quest:
		sentence = entity.NewQuest(content, derived)
	}

	newTask := entity.NewDerivedTask(sentence, b, m.currentTask, m.currentBelief)
	return m.AdmitDerived(newTask)
}
