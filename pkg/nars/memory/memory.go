// Package memory implements the attention/scheduling loop (C6) and the
// derivation admission gate (C7): the two tightly coupled subsystems that
// keep the reasoner from diverging, exploding, or reasoning cyclically.
package memory

import (
	"github.com/cognicore/nars/pkg/nars/bag"
	"github.com/cognicore/nars/pkg/nars/budget"
	"github.com/cognicore/nars/pkg/nars/config"
	"github.com/cognicore/nars/pkg/nars/entity"
	"github.com/cognicore/nars/pkg/nars/operator"
	"github.com/cognicore/nars/pkg/nars/record"
	"github.com/cognicore/nars/pkg/nars/stamp"
	"github.com/cognicore/nars/pkg/nars/term"
)

// Memory is the process-wide reasoning state owned by exactly one driver
// at a time. It exclusively owns its bags, the input queue, the clock,
// and the current-cycle scratch slots.
type Memory struct {
	params config.Parameters

	concepts   *bag.Bag[*entity.Concept]
	novelTasks *bag.Bag[*entity.Task]
	inputQueue []*entity.Task

	clock        int64
	stampSerial  int64
	stampGen     *stamp.Generator
	operators    *operator.Registry
	stepsQueued  int
	working      bool
	rng          *bag.XORShift

	lastEvent *entity.Task

	currentTask     *entity.Task
	currentBelief   *entity.Sentence
	priorBestBelief *entity.Sentence
	currentTermLink *entity.TermLink
	currentTaskLink *entity.TaskLink
	currentConcept  *entity.Concept
	newStamp        stamp.Stamp

	recorder record.Recorder
	output   record.Output

	fireConcept      ConceptFirer
	temporalInductor TemporalInductor
}

// New builds a Memory from params, with a null recorder and no output
// sink installed.
func New(params config.Parameters) *Memory {
	m := &Memory{
		params:    params,
		operators: operator.NewRegistry(),
		recorder:  record.Null{},
		output:    func(string) {},
	}
	m.initState()
	return m
}

func (m *Memory) initState() {
	m.rng = bag.NewXORShift(m.params.RandomSeed)
	m.concepts = bag.New[*entity.Concept](m.params.ConceptBagCapacity, m.params.ConceptBagLevels, m.rng)
	m.novelTasks = bag.New[*entity.Task](m.params.NovelBagCapacity, m.params.NovelBagLevels, m.rng)
	m.inputQueue = nil
	m.clock = 0
	m.stampSerial = 0
	m.stampGen = stamp.NewGenerator()
	m.stepsQueued = 0
	m.working = true
	m.lastEvent = nil
	m.currentTask = nil
	m.currentBelief = nil
	m.priorBestBelief = nil
	m.currentTermLink = nil
	m.currentTaskLink = nil
	m.currentConcept = nil
	m.newStamp = stamp.Stamp{}
}

// Reset clears all bags, queues, and scratch slots, resets the clock to
// 0, and re-seeds the RNG, exactly as Memory.reset in the driver
// contract requires.
func (m *Memory) Reset() {
	m.initState()
}

// InputTask enqueues an externally constructed task, rejected silently
// if below the admission threshold.
func (m *Memory) InputTask(t *entity.Task) {
	m.admit(t, inputReason)
}

// StepLater requests n additional cycles; the driver reads and acts on
// this advisory counter.
func (m *Memory) StepLater(n int) {
	m.stepsQueued += n
}

// StepsQueued reports the advisory counter set by StepLater.
func (m *Memory) StepsQueued() int {
	return m.stepsQueued
}

// SetWorking pauses or resumes cycle execution at the next cycle boundary.
func (m *Memory) SetWorking(b bool) {
	m.working = b
}

// IsWorking reports the working flag.
func (m *Memory) IsWorking() bool {
	return m.working
}

// AddOperator registers op under its own name.
func (m *Memory) AddOperator(op operator.Operator) {
	m.operators.Add(op)
}

// GetOperator looks up a registered operator by name.
func (m *Memory) GetOperator(name string) (operator.Operator, bool) {
	return m.operators.Get(name)
}

// IsRegisteredOperator reports whether name has a registered operator.
func (m *Memory) IsRegisteredOperator(name string) bool {
	return m.operators.IsRegistered(name)
}

// GetTime returns the current clock value.
func (m *Memory) GetTime() int64 {
	return m.clock
}

// NewStampSerial allocates and returns the next stamp serial id.
func (m *Memory) NewStampSerial() int64 {
	m.stampSerial++
	return m.stampSerial
}

// NewInputStamp builds the stamp for an externally supplied sentence,
// using this Memory's own serial counter, clock, and trace-id generator
// so a driver (cmd/nar, the narsese parser's caller) never needs to
// reach into stamp.Generator/serial bookkeeping itself.
func (m *Memory) NewInputStamp(occurrence int64) stamp.Stamp {
	return stamp.NewInput(m.stampGen, m.NewStampSerial(), m.clock, occurrence)
}

// SetRecorder installs r as the cycle/admission event sink.
func (m *Memory) SetRecorder(r record.Recorder) {
	if r == nil {
		r = record.Null{}
	}
	m.recorder = r
}

// SetOutput installs o as the emitted-task sink.
func (m *Memory) SetOutput(o record.Output) {
	if o == nil {
		o = func(string) {}
	}
	m.output = o
}

// CurrentTask returns the task set as current by the most recent
// immediateProcess/processConcept invocation. Structural and syllogistic
// rules read this to find their premise.
func (m *Memory) CurrentTask() *entity.Task {
	return m.currentTask
}

// CurrentBelief returns the belief matched against the current task, if
// any.
func (m *Memory) CurrentBelief() *entity.Sentence {
	return m.currentBelief
}

// PriorBestBelief returns the concept's best belief as it stood
// immediately before the current task was folded into AddBelief, or nil
// if there was none. rules/matching.FireDirect uses this rather than
// re-reading Concept.BestBelief after insertion, since the just-admitted
// judgment may itself have become the new best belief (equal-or-higher
// confidence sorts to the front) — revising the current task against
// that would compare it against itself.
func (m *Memory) PriorBestBelief() *entity.Sentence {
	return m.priorBestBelief
}

// ConceptFor returns the concept keyed by content, if one exists.
func (m *Memory) ConceptFor(content *term.Term) (*entity.Concept, bool) {
	return m.concepts.Peek(content.String())
}

func (m *Memory) conceptConfig() entity.ConceptConfig {
	return entity.ConceptConfig{
		TaskLinkCapacity: m.params.TaskLinkCapacity,
		TaskLinkLevels:   m.params.TaskLinkLevels,
		TermLinkCapacity: m.params.TermLinkCapacity,
		TermLinkLevels:   m.params.TermLinkLevels,
		MaxBeliefs:       m.params.MaxBeliefs,
		MaxQuestions:     m.params.MaxQuestions,
		MaxGoals:         m.params.MaxGoals,
	}
}

// ConfigSnapshot returns the engine parameters in effect, for rule
// packages (rules/matching) that need a threshold or limit not exposed
// through a narrower accessor.
func (m *Memory) ConfigSnapshot() config.Parameters {
	return m.params
}

// Answer delivers belief as the solution to question: it is emitted
// through the same output sink as a newly admitted task (spec.md §6's
// "emitted task" stream), without re-entering the admission gate, since
// an answer is a pointer to an existing belief rather than a new task.
func (m *Memory) Answer(question *entity.Task, belief entity.Sentence) {
	m.recorder.Append("Answer: " + question.String() + " => " + belief.String())
	m.output(belief.String())
}

// getOrCreateConcept returns the concept keyed by content, creating and
// inserting a fresh one (with the given initial budget) if none exists.
func (m *Memory) getOrCreateConcept(content *term.Term, initial budget.Value) *entity.Concept {
	if c, ok := m.concepts.Peek(content.String()); ok {
		return c
	}
	c := entity.NewConcept(content, initial, m.conceptConfig(), m.rng)
	m.concepts.PutIn(c)
	m.recorder.OnConceptNew(content.String())
	return c
}
