package memory

import (
	"github.com/cognicore/nars/pkg/nars/entity"
	"github.com/cognicore/nars/pkg/nars/stamp"
	"github.com/cognicore/nars/pkg/nars/term"
)

const (
	inputReason     = "Input"
	neglectedReason = "Neglected"
	cyclicReason    = "Cyclic Reasoning"
	overlapReason   = "Overlapping Evidence"
	emittedReason   = "Emitted"
	revisionReason  = "Revision"
)

// admit is the only place tasks are admitted into the new-task FIFO
// (spec.md §4.6). isRevision selects the evidence-overlap check; the
// cycle check and the derivation-chain update only apply to derived
// tasks (reason != inputReason), since an externally supplied task has
// no current-belief/current-task scratch state to draw a chain from.
func (m *Memory) admit(t *entity.Task, reason string) bool {
	if !t.Budget.AboveThreshold(m.params.AdmissionThreshold) {
		m.recorder.OnTaskRemove(t.String(), neglectedReason)
		return false
	}
	if t.Sentence.Truth != nil && t.Sentence.Truth.Confidence == 0 {
		m.recorder.OnTaskRemove(t.String(), neglectedReason)
		return false
	}

	if reason != inputReason {
		s := t.Sentence.Stamp
		if m.currentBelief != nil && m.currentBelief.IsJudgment() {
			s.AddToChain(m.currentBelief.Content, m.params.MaxDerivationChainLen)
		}
		if m.currentTask != nil && m.currentTask.Sentence.IsJudgment() {
			s.AddToChain(m.currentTask.Sentence.Content, m.params.MaxDerivationChainLen)
		}
		t.Sentence.Stamp = s

		if reason == revisionReason {
			if stamp.HasDuplicateEvidence(t.Sentence.Stamp) {
				m.recorder.OnTaskRemove(t.String(), overlapReason)
				return false
			}
		} else if t.Sentence.IsJudgment() {
			negated, negOK := term.MakeNegation(t.Sentence.Content)
			doubleNegated, dOK := term.DoubleNegationPartner(t.Sentence.Content)
			parentContent := t.ParentContent()
			for _, c := range s.Chain {
				if c != t.Sentence.Content {
					continue
				}
				if negOK && parentContent == negated {
					continue
				}
				if dOK && parentContent == doubleNegated {
					continue
				}
				m.recorder.OnTaskRemove(t.String(), cyclicReason)
				return false
			}
		}
	}

	if t.Budget.Summary() >= m.params.NoiseLevel {
		m.output(t.String())
	}
	m.recorder.OnTaskAdd(t.String(), emittedReason)
	m.inputQueue = append(m.inputQueue, t)
	return true
}

// AdmitDerived runs a non-revision derived task through the gate.
func (m *Memory) AdmitDerived(t *entity.Task) bool {
	return m.admit(t, "Derived")
}

// AdmitRevised runs a revision-produced task through the gate, enabling
// the evidence-overlap check in place of the cycle check.
func (m *Memory) AdmitRevised(t *entity.Task) bool {
	return m.admit(t, revisionReason)
}
