package narsese

import (
	"testing"

	"github.com/cognicore/nars/pkg/nars/entity"
	"github.com/cognicore/nars/pkg/nars/term"
)

func TestParseInheritanceJudgmentWithTruth(t *testing.T) {
	p, err := Parse("<bird --> animal>. %0.9;0.8%")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Punctuation != entity.Judgment {
		t.Fatalf("expected judgment, got %v", p.Punctuation)
	}
	if !p.HasTruth || p.Truth.Frequency != 0.9 || p.Truth.Confidence != 0.8 {
		t.Fatalf("unexpected truth: %+v", p.Truth)
	}
	want, ok := term.MakeStatement(term.Inheritance, term.Atom("bird"), term.Atom("animal"), term.OrderNone)
	if !ok || p.Content != want {
		t.Fatalf("unexpected content: %v", p.Content)
	}
}

func TestParseQuestionDefaultsNoTruth(t *testing.T) {
	p, err := Parse("<tweety --> bird>?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Punctuation != entity.Question || p.HasTruth {
		t.Fatalf("expected truth-free question, got %+v", p)
	}
}

func TestParseProductAndImage(t *testing.T) {
	p, err := Parse("<(*, tom, mary) --> uncle>. %1.0;0.9%")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Content.Subject().Operator() != term.Product {
		t.Fatalf("expected product subject, got %v", p.Content.Subject())
	}

	p2, err := Parse("<tom --> (/, uncle, _, mary)>.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p2.Content.Predicate().Operator() != term.ImageExt {
		t.Fatalf("expected image-ext predicate, got %v", p2.Content.Predicate())
	}
}

func TestParseSetAndNegation(t *testing.T) {
	p, err := Parse("<robin --> {Tweety}>.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Content.Predicate().Operator() != term.SetExt {
		t.Fatalf("expected set-ext predicate, got %v", p.Content.Predicate())
	}

	p2, err := Parse("(--, raining).")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p2.Content.Operator() != term.Negation {
		t.Fatalf("expected negation, got %v", p2.Content)
	}
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	if _, err := Parse("<a --> b>. junk"); err == nil {
		t.Fatal("expected trailing-input error")
	}
}
