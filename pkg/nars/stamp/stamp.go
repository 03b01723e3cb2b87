// Package stamp implements a task's provenance: its evidential base,
// derivation chain, and occurrence time.
package stamp

import (
	"crypto/rand"

	"github.com/cognicore/nars/pkg/nars/term"
	"github.com/oklog/ulid/v2"
)

// Eternal marks a judgment that holds regardless of occurrence time.
const Eternal int64 = -1 << 62

// Stamp bundles the evidence a task rests on with its derivation history.
// TraceID is a display-only identifier (never consulted for overlap or
// cycle checks) so recorder/audit output can name a specific derivation
// without the evidential base itself growing unbounded integers used for
// anything but equality.
type Stamp struct {
	Base       []int64
	Chain      []*term.Term
	Created    int64
	Occurrence int64
	TraceID    string
}

// Generator issues monotonically increasing trace IDs for one Memory
// instance. It is not part of the evidential base; it exists purely so
// recorder/audit messages can name a stamp.
type Generator struct {
	entropy *ulid.MonotonicEntropy
}

// NewGenerator creates a fresh, independent ID source.
func NewGenerator() *Generator {
	return &Generator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *Generator) next() string {
	if g == nil {
		return ""
	}
	id, err := ulid.New(ulid.Now(), g.entropy)
	if err != nil {
		return ""
	}
	return id.String()
}

// NewInput builds the stamp for an externally-supplied task: a
// single-element evidential base seeded by a fresh stamp serial.
func NewInput(gen *Generator, serial int64, now int64, occurrence int64) Stamp {
	return Stamp{
		Base:       []int64{serial},
		Created:    now,
		Occurrence: occurrence,
		TraceID:    gen.next(),
	}
}

// Derive copies a parent stamp for single-premise derivation, keeping the
// evidential base and chain but bumping the creation time.
func Derive(gen *Generator, parent Stamp, now int64, maxChainLen int) Stamp {
	return Stamp{
		Base:       append([]int64(nil), parent.Base...),
		Chain:      boundedCopy(parent.Chain, maxChainLen),
		Created:    now,
		Occurrence: parent.Occurrence,
		TraceID:    gen.next(),
	}
}

// Overlap reports whether two stamps share any evidential-base id.
func Overlap(a, b Stamp) bool {
	seen := make(map[int64]bool, len(a.Base))
	for _, id := range a.Base {
		seen[id] = true
	}
	for _, id := range b.Base {
		if seen[id] {
			return true
		}
	}
	return false
}

// Make merges two evidential bases by interleaving, truncating to
// maxBaseLen. Returns (Stamp{}, false) if a and b overlap.
func Make(gen *Generator, a, b Stamp, now int64, maxBaseLen int) (Stamp, bool) {
	if Overlap(a, b) {
		return Stamp{}, false
	}
	merged := interleave(a.Base, b.Base, maxBaseLen)
	occurrence := a.Occurrence
	if occurrence == Eternal {
		occurrence = b.Occurrence
	}
	return Stamp{
		Base:       merged,
		Created:    now,
		Occurrence: occurrence,
		TraceID:    gen.next(),
	}, true
}

func interleave(a, b []int64, maxLen int) []int64 {
	out := make([]int64, 0, min(len(a)+len(b), maxLen))
	i, j := 0, 0
	for (i < len(a) || j < len(b)) && len(out) < maxLen {
		if i < len(a) {
			out = append(out, a[i])
			i++
			if len(out) >= maxLen {
				break
			}
		}
		if j < len(b) {
			out = append(out, b[j])
			j++
		}
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// AddToChain appends t to the chain, first removing any existing instance
// so re-adding a term moves it to the end (spec.md §4.3). The chain is
// truncated from the front if it would exceed maxLen.
func (s *Stamp) AddToChain(t *term.Term, maxLen int) {
	out := make([]*term.Term, 0, len(s.Chain)+1)
	for _, c := range s.Chain {
		if c == t {
			continue
		}
		out = append(out, c)
	}
	out = append(out, t)
	if len(out) > maxLen {
		out = out[len(out)-maxLen:]
	}
	s.Chain = out
}

// Contains reports whether t is present anywhere in the chain.
func (s *Stamp) Contains(t *term.Term) bool {
	for _, c := range s.Chain {
		if c == t {
			return true
		}
	}
	return false
}

// HasDuplicateEvidence reports whether any id appears more than once in
// the evidential base, independent of how the stamp was constructed. The
// admission gate's revision path (spec.md §4.6 step 5) checks this
// directly on the candidate task's final stamp rather than relying solely
// on Make's pairwise overlap check, since a revision's stamp need not be
// produced by Make.
func HasDuplicateEvidence(s Stamp) bool {
	seen := make(map[int64]bool, len(s.Base))
	for _, id := range s.Base {
		if seen[id] {
			return true
		}
		seen[id] = true
	}
	return false
}

func boundedCopy(chain []*term.Term, maxLen int) []*term.Term {
	if len(chain) <= maxLen {
		return append([]*term.Term(nil), chain...)
	}
	return append([]*term.Term(nil), chain[len(chain)-maxLen:]...)
}
