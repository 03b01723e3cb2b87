// Package entity implements the Sentence/Task/Concept/Link model: the
// units a concept indexes and a task carries as it moves through the
// attention loop and the admission gate.
package entity

import (
	"github.com/cognicore/nars/pkg/nars/stamp"
	"github.com/cognicore/nars/pkg/nars/term"
	"github.com/cognicore/nars/pkg/nars/truth"
)

// Punctuation distinguishes the four sentence kinds.
type Punctuation int

const (
	Judgment Punctuation = iota
	Goal
	Question
	Quest
)

func (p Punctuation) String() string {
	switch p {
	case Judgment:
		return "."
	case Goal:
		return "!"
	case Question:
		return "?"
	case Quest:
		return "@"
	default:
		return "?"
	}
}

// HasTruth reports whether this punctuation carries a truth value.
func (p Punctuation) HasTruth() bool {
	return p == Judgment || p == Goal
}

// Sentence is immutable once constructed: content, punctuation, an
// optional truth value (present for judgments and goals, absent for
// questions and quests), and a stamp.
type Sentence struct {
	Content     *term.Term
	Punctuation Punctuation
	Truth       *truth.Value
	Stamp       stamp.Stamp
}

// NewJudgment builds a judgment sentence. Panics if content is nil, since
// a sentence with no content cannot exist in this kernel.
func NewJudgment(content *term.Term, tv truth.Value, s stamp.Stamp) Sentence {
	requireContent(content)
	return Sentence{Content: content, Punctuation: Judgment, Truth: &tv, Stamp: s}
}

// NewGoal builds a goal sentence.
func NewGoal(content *term.Term, tv truth.Value, s stamp.Stamp) Sentence {
	requireContent(content)
	return Sentence{Content: content, Punctuation: Goal, Truth: &tv, Stamp: s}
}

// NewQuestion builds a truth-free question sentence.
func NewQuestion(content *term.Term, s stamp.Stamp) Sentence {
	requireContent(content)
	return Sentence{Content: content, Punctuation: Question, Stamp: s}
}

// NewQuest builds a truth-free quest sentence.
func NewQuest(content *term.Term, s stamp.Stamp) Sentence {
	requireContent(content)
	return Sentence{Content: content, Punctuation: Quest, Stamp: s}
}

func requireContent(content *term.Term) {
	if content == nil {
		panic("entity: sentence content must not be nil")
	}
}

// IsJudgment, IsGoal, IsQuestion, IsQuest report the sentence's punctuation.
func (s Sentence) IsJudgment() bool { return s.Punctuation == Judgment }
func (s Sentence) IsGoal() bool     { return s.Punctuation == Goal }
func (s Sentence) IsQuestion() bool { return s.Punctuation == Question }
func (s Sentence) IsQuest() bool    { return s.Punctuation == Quest }

// Expectation returns the sentence's truth expectation, or 0.5 (maximum
// uncertainty) if the sentence carries no truth value.
func (s Sentence) Expectation() float64 {
	if s.Truth == nil {
		return 0.5
	}
	return s.Truth.Expectation()
}

// Eternal reports whether the sentence's stamp carries no occurrence time.
func (s Sentence) Eternal() bool {
	return s.Stamp.Occurrence == stamp.Eternal
}

// String renders the sentence in Narsese-like surface form for logging.
func (s Sentence) String() string {
	out := s.Content.String() + s.Punctuation.String()
	if s.Truth != nil {
		out += " " + truthString(*s.Truth)
	}
	return out
}

func truthString(t truth.Value) string {
	return "%" + trimFloat(t.Frequency) + ";" + trimFloat(t.Confidence) + "%"
}

func trimFloat(f float64) string {
	// two-decimal display precision matches surface Narsese conventions;
	// full precision is retained on the struct itself.
	i := int(f*100 + 0.5)
	if i < 0 {
		i = 0
	}
	if i > 100 {
		i = 100
	}
	whole := i / 100
	frac := i % 100
	digits := "0123456789"
	fracStr := string([]byte{digits[frac/10], digits[frac%10]})
	return string(rune('0'+whole)) + "." + fracStr
}
