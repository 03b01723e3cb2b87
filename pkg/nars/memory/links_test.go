package memory

import (
	"testing"

	"github.com/cognicore/nars/pkg/nars/term"
)

func TestBuildLinksCreatesComponentConceptsAndBackLinks(t *testing.T) {
	m := testMemory()
	bird := term.Atom("bird")
	animal := term.Atom("animal")
	tsk := judgmentTask(mustStatement(t, bird, animal), 1, 0.9, 0.9)
	m.InputTask(tsk)
	m.Cycle()

	if _, ok := m.ConceptFor(bird); !ok {
		t.Fatal("expected buildLinks to create a concept for the subject atom")
	}
	if _, ok := m.ConceptFor(animal); !ok {
		t.Fatal("expected buildLinks to create a concept for the predicate atom")
	}

	stmtConcept, ok := m.ConceptFor(tsk.Sentence.Content)
	if !ok {
		t.Fatal("expected a concept for the statement itself")
	}
	if stmtConcept.TermLinks.Len() == 0 {
		t.Fatal("expected the statement concept to carry term-links to its components")
	}

	birdConcept, _ := m.ConceptFor(bird)
	if birdConcept.TaskLinks.Len() == 0 {
		t.Fatal("expected the component concept to receive a copy of the statement's task-link")
	}
	if birdConcept.TermLinks.Len() == 0 {
		t.Fatal("expected the component concept to carry a back-link to the statement")
	}
}

func mustStatement(t *testing.T, sub, pred *term.Term) *term.Term {
	t.Helper()
	content, ok := term.MakeStatement(term.Inheritance, sub, pred, term.OrderNone)
	if !ok {
		t.Fatal("expected statement to construct")
	}
	return content
}
