package structural

import (
	"strings"
	"testing"

	"github.com/cognicore/nars/pkg/nars/config"
	"github.com/cognicore/nars/pkg/nars/entity"
	"github.com/cognicore/nars/pkg/nars/memory"
	"github.com/cognicore/nars/pkg/nars/stamp"
	"github.com/cognicore/nars/pkg/nars/term"
	"github.com/cognicore/nars/pkg/nars/truth"
)

func newTestMemory(firer memory.ConceptFirer) *memory.Memory {
	p := config.Default()
	p.AdmissionThreshold = 0.01
	m := memory.New(p)
	m.SetConceptFirer(firer)
	return m
}

func collectOutputs(m *memory.Memory) *[]string {
	out := []string{}
	m.SetOutput(func(s string) { out = append(out, s) })
	return &out
}

func TestContrapositionOfQuestion(t *testing.T) {
	a := term.Atom("a")
	b := term.Atom("b")
	implication, ok := term.MakeStatement(term.Implication, a, b, term.OrderNone)
	if !ok {
		t.Fatal("expected implication to construct")
	}

	var fired bool
	m := newTestMemory(func(mm *memory.Memory, c *entity.Concept, tl *entity.TaskLink, term2 *entity.TermLink) {
		if fired {
			return
		}
		fired = true
		Contraposition(mm, mm.CurrentTask().Sentence.Content)
	})
	out := collectOutputs(m)

	question := entity.NewQuestion(implication, stamp.Stamp{Base: []int64{1}})
	task := entity.NewInputTask(question, taskBudget())
	m.InputTask(task)
	m.Cycle()

	found := false
	for _, s := range *out {
		if strings.Contains(s, "(--, b)") && strings.Contains(s, "(--, a)") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected contraposed question in output, got %v", *out)
	}
}

func TestTransformNegationOnJudgment(t *testing.T) {
	a := term.Atom("a")
	negA, ok := term.MakeNegation(a)
	if !ok {
		t.Fatal("expected negation to construct")
	}

	var fired bool
	m := newTestMemory(func(mm *memory.Memory, c *entity.Concept, tl *entity.TaskLink, term2 *entity.TermLink) {
		if fired {
			return
		}
		fired = true
		TransformNegation(mm, negA)
	})
	out := collectOutputs(m)

	tv := truth.Value{Frequency: 0.8, Confidence: 0.9}
	judgment := entity.NewJudgment(a, tv, stamp.Stamp{Base: []int64{1}})
	task := entity.NewInputTask(judgment, taskBudget())
	m.InputTask(task)
	m.Cycle()

	if len(*out) == 0 {
		t.Fatal("expected negation to emit a task")
	}
}

func TestSwitchOrderForDifferenceIndexOne(t *testing.T) {
	m := term.Atom("m")
	s := term.Atom("s")
	diff, ok := term.MakeCompound(term.DifferenceExt, term.OrderNone, []*term.Term{m, s})
	if !ok {
		t.Fatal("expected difference to construct")
	}
	if !SwitchOrder(diff, 1) {
		t.Fatal("expected switchOrder true at index 1 for difference-ext")
	}
	if SwitchOrder(diff, 0) {
		t.Fatal("expected switchOrder false at index 0 for difference-ext")
	}
}
