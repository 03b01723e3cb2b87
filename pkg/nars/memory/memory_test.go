package memory

import (
	"testing"

	"github.com/cognicore/nars/pkg/nars/budget"
	"github.com/cognicore/nars/pkg/nars/config"
	"github.com/cognicore/nars/pkg/nars/entity"
	"github.com/cognicore/nars/pkg/nars/stamp"
	"github.com/cognicore/nars/pkg/nars/term"
	"github.com/cognicore/nars/pkg/nars/truth"
)

func testMemory() *Memory {
	p := config.Default()
	p.AdmissionThreshold = 0.1
	return New(p)
}

func judgmentTask(content *term.Term, freq, conf, priority float64) *entity.Task {
	s := entity.NewJudgment(content, truth.Value{Frequency: freq, Confidence: conf}, stamp.Stamp{Base: []int64{1}})
	return entity.NewInputTask(s, budget.Value{Priority: priority, Durability: priority, Quality: priority})
}

func TestInputTaskBelowThresholdIsRejected(t *testing.T) {
	m := testMemory()
	bird := term.Atom("bird")
	low := judgmentTask(bird, 1, 0.9, 0.01)
	m.InputTask(low)
	if len(m.inputQueue) != 0 {
		t.Fatalf("expected low-budget input to be rejected, queue has %d", len(m.inputQueue))
	}
}

func TestInputTaskZeroConfidenceIsRejected(t *testing.T) {
	m := testMemory()
	bird := term.Atom("bird")
	zero := judgmentTask(bird, 1, 0, 0.9)
	m.InputTask(zero)
	if len(m.inputQueue) != 0 {
		t.Fatalf("expected zero-confidence input to be rejected")
	}
}

func TestInputTaskAdmittedEntersQueue(t *testing.T) {
	m := testMemory()
	bird := term.Atom("bird")
	tsk := judgmentTask(bird, 1, 0.9, 0.9)
	m.InputTask(tsk)
	if len(m.inputQueue) != 1 {
		t.Fatalf("expected admitted task to enter the new-task queue, got %d", len(m.inputQueue))
	}
}

func TestCycleCreatesConceptForAdmittedTask(t *testing.T) {
	m := testMemory()
	bird := term.Atom("bird")
	tsk := judgmentTask(bird, 1, 0.9, 0.9)
	m.InputTask(tsk)
	m.Cycle()
	if _, ok := m.ConceptFor(bird); !ok {
		t.Fatal("expected a concept for bird after one cycle")
	}
	if m.GetTime() != 1 {
		t.Fatalf("expected clock to advance to 1, got %d", m.GetTime())
	}
}

func TestResetClearsStateAndClock(t *testing.T) {
	m := testMemory()
	bird := term.Atom("bird")
	m.InputTask(judgmentTask(bird, 1, 0.9, 0.9))
	m.Cycle()
	m.Cycle()
	m.Reset()
	if m.GetTime() != 0 {
		t.Fatalf("expected clock reset to 0, got %d", m.GetTime())
	}
	if _, ok := m.ConceptFor(bird); ok {
		t.Fatal("expected concepts cleared after reset")
	}
}

func TestNCyclesWithNoInputLeavesClockAtN(t *testing.T) {
	m := testMemory()
	for i := 0; i < 5; i++ {
		m.Cycle()
	}
	if m.GetTime() != 5 {
		t.Fatalf("expected clock=5 after 5 no-input cycles, got %d", m.GetTime())
	}
	if m.concepts.Len() != 0 || m.novelTasks.Len() != 0 {
		t.Fatal("expected both bags empty with no input")
	}
}

func TestWorkingFalsePausesCycles(t *testing.T) {
	m := testMemory()
	m.SetWorking(false)
	m.Cycle()
	if m.GetTime() != 0 {
		t.Fatalf("expected clock to stay at 0 while not working, got %d", m.GetTime())
	}
}
