package memory

import (
	"github.com/cognicore/nars/pkg/nars/budget"
	"github.com/cognicore/nars/pkg/nars/entity"
	"github.com/cognicore/nars/pkg/nars/stamp"
	"github.com/cognicore/nars/pkg/nars/term"
	"github.com/cognicore/nars/pkg/nars/truth"
)

// EmitDoublePremise is the two-premise analogue of EmitSinglePremise: the
// syllogistic rules package calls through here once per conclusion, with
// both CurrentTask and CurrentBelief populated by processConcept. The
// conclusion's stamp merges both premises' evidential bases via
// stamp.Make; a merge that rejects on evidence overlap means the two
// premises already share an ancestor, so no new derivation is admitted.
func (m *Memory) EmitDoublePremise(content *term.Term, tv *truth.Value, punct entity.Punctuation, b budget.Value) bool {
	if m.currentTask == nil || m.currentBelief == nil {
		return false
	}
	merged, ok := stamp.Make(m.stampGen, m.currentTask.Sentence.Stamp, m.currentBelief.Stamp, m.clock, m.params.MaxEvidentialBaseLen)
	if !ok {
		return false
	}

	var sentence entity.Sentence
	switch punct {
	case entity.Judgment:
		sentence = entity.NewJudgment(content, *tv, merged)
	case entity.Goal:
		sentence = entity.NewGoal(content, *tv, merged)
	case entity.Question:
		sentence = entity.NewQuestion(content, merged)
	case entity.Quest:
		sentence = entity.NewQuest(content, merged)
	}

	newTask := entity.NewDerivedTask(sentence, b, m.currentTask, m.currentBelief)
	return m.AdmitDerived(newTask)
}

// EmitRevision is rules/matching's entry point for combining two judgments
// over the same content. Unlike EmitDoublePremise, the revision partner is
// not read from m.currentBelief — matching.FireDirect runs in the direct
// processing path (immediateProcess), which never populates currentBelief
// (that slot only holds the term-link-matched belief processConcept finds
// for two-premise inference) — so the caller passes the partner sentence
// explicitly. The conclusion's content is the shared content itself, not a
// newly built statement, and the result goes through AdmitRevised rather
// than AdmitDerived so the admission gate's evidence-overlap check
// (spec.md §4.6 step 5, §8 scenario 6) applies.
func (m *Memory) EmitRevision(content *term.Term, tv truth.Value, b budget.Value, partner entity.Sentence) bool {
	if m.currentTask == nil {
		return false
	}
	merged, ok := stamp.Make(m.stampGen, m.currentTask.Sentence.Stamp, partner.Stamp, m.clock, m.params.MaxEvidentialBaseLen)
	if !ok {
		return false
	}
	sentence := entity.NewJudgment(content, tv, merged)
	newTask := entity.NewDerivedTask(sentence, b, m.currentTask, &partner)
	return m.AdmitRevised(newTask)
}
