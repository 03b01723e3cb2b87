package syllogistic

import (
	"strings"
	"testing"

	"github.com/cognicore/nars/pkg/nars/budget"
	"github.com/cognicore/nars/pkg/nars/config"
	"github.com/cognicore/nars/pkg/nars/entity"
	"github.com/cognicore/nars/pkg/nars/memory"
	"github.com/cognicore/nars/pkg/nars/stamp"
	"github.com/cognicore/nars/pkg/nars/term"
	"github.com/cognicore/nars/pkg/nars/truth"
)

func taskBudget() budget.Value {
	return budget.Value{Priority: 0.9, Durability: 0.9, Quality: 0.9}
}

func inputJudgment(m *memory.Memory, serial int64, sub, pred *term.Term, tv truth.Value) {
	content, ok := term.MakeStatement(term.Inheritance, sub, pred, term.OrderNone)
	if !ok {
		panic("expected statement to construct")
	}
	judgment := entity.NewJudgment(content, tv, stamp.Stamp{Base: []int64{serial}})
	m.InputTask(entity.NewInputTask(judgment, taskBudget()))
}

// newSyllogisticMemory wires Fire under the exact condition processConcept
// signals a paired second premise is available: a non-nil task-link and a
// resolved current belief. Direct/immediate processing (nil links, no
// belief yet) is left untouched since revision/answering is matching's job,
// not this package's.
func newSyllogisticMemory() (*memory.Memory, *[]string) {
	p := config.Default()
	p.AdmissionThreshold = 0.01
	m := memory.New(p)
	m.SetConceptFirer(func(mm *memory.Memory, c *entity.Concept, tl *entity.TaskLink, term2 *entity.TermLink) {
		if tl == nil || mm.CurrentBelief() == nil {
			return
		}
		Fire(mm, c, tl, term2)
	})
	out := []string{}
	m.SetOutput(func(s string) { out = append(out, s) })
	return m, &out
}

// TestDeductionChainDerivesTransitiveInheritance inputs <bird-->animal>.
// and <animal-->being>., sharing the middle term "animal", and expects
// some pairing of task/belief across the two statements' shared-atom
// concept to eventually derive a statement joining "bird" and "being" —
// deduction if bird-->animal is the task, exemplification (reversed) if
// animal-->being is the task, depending on which processConcept happens
// to pick as task vs. belief. Either is an acceptable, sound NAL-1
// conclusion, so the test only checks that some such line appears.
func TestDeductionChainDerivesTransitiveInheritance(t *testing.T) {
	bird := term.Atom("bird")
	animal := term.Atom("animal")
	being := term.Atom("being")

	m, out := newSyllogisticMemory()
	inputJudgment(m, 1, bird, animal, truth.Value{Frequency: 0.9, Confidence: 0.9})
	inputJudgment(m, 2, animal, being, truth.Value{Frequency: 0.8, Confidence: 0.9})

	for i := 0; i < 30; i++ {
		m.Cycle()
	}

	found := false
	for _, s := range *out {
		if strings.Contains(s, "bird") && strings.Contains(s, "being") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a bird/being conclusion in output, got %v", *out)
	}
}

func TestFireIgnoresNonJudgmentTask(t *testing.T) {
	bird := term.Atom("bird")
	animal := term.Atom("animal")

	content, ok := term.MakeStatement(term.Inheritance, bird, animal, term.OrderNone)
	if !ok {
		t.Fatal("expected statement to construct")
	}
	question := entity.NewQuestion(content, stamp.Stamp{Base: []int64{1}})
	task := entity.NewInputTask(question, taskBudget())

	m, out := newSyllogisticMemory()
	m.InputTask(task)
	for i := 0; i < 5; i++ {
		m.Cycle()
	}
	for _, s := range *out {
		if strings.Contains(s, "%") {
			t.Fatalf("question-only input should not derive a judgment, got %v", *out)
		}
	}
}
