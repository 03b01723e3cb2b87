package term

import "testing"

func TestAtomInterning(t *testing.T) {
	a := Atom("bird")
	b := Atom("bird")
	if a != b {
		t.Fatalf("expected interned atoms to share identity")
	}
}

func TestStatementEquality(t *testing.T) {
	bird := Atom("bird")
	animal := Atom("animal")
	s1, ok := MakeStatement(Inheritance, bird, animal, OrderNone)
	if !ok {
		t.Fatal("expected ok")
	}
	s2, ok := MakeStatement(Inheritance, bird, animal, OrderNone)
	if !ok {
		t.Fatal("expected ok")
	}
	if s1 != s2 {
		t.Fatalf("expected structurally identical statements to share identity")
	}
	if s1.String() != "<bird --> animal>" {
		t.Fatalf("unexpected string form: %s", s1.String())
	}
}

func TestSimilaritySelfDegenerate(t *testing.T) {
	bird := Atom("bird")
	if _, ok := MakeStatement(Similarity, bird, bird, OrderNone); ok {
		t.Fatalf("expected <bird <-> bird> to be degenerate")
	}
}

func TestSetExtCanonicalizesOrderAndDuplicates(t *testing.T) {
	a, b := Atom("b"), Atom("a")
	s1, ok := MakeSetExt(a, b)
	if !ok {
		t.Fatal("expected ok")
	}
	s2, ok := MakeSetExt(b, a, b)
	if !ok {
		t.Fatal("expected ok")
	}
	if s1 != s2 {
		t.Fatalf("expected order/dup-insensitive canonicalization, got %s vs %s", s1, s2)
	}
}

func TestIntersectionCollapsesToSingleDistinctChild(t *testing.T) {
	a := Atom("a")
	r, ok := MakeCompound(IntersectionExt, OrderNone, []*Term{a, a})
	if !ok {
		t.Fatal("expected ok")
	}
	if r != a {
		t.Fatalf("expected identity collapse to %s, got %s", a, r)
	}
}

func TestDifferenceSelfIsDegenerate(t *testing.T) {
	a := Atom("a")
	if _, ok := MakeCompound(DifferenceExt, OrderNone, []*Term{a, a}); ok {
		t.Fatalf("expected (a - a) to be degenerate")
	}
}

func TestImageRoundTrip(t *testing.T) {
	tom, mary, uncle := Atom("tom"), Atom("mary"), Atom("uncle")
	product, ok := makeProduct([]*Term{tom, mary})
	if !ok {
		t.Fatal("expected product ok")
	}

	// <(*, tom, mary) --> uncle> transformed at position 0 (tom) becomes
	// <tom --> (/, uncle, _, mary)>.
	_, args, _ := ImageParts(mustImage(t, uncle, []*Term{tom, mary}, 0))
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}

	img, ok := MakeImage(ImageExt, uncle, []*Term{tom, mary}, 0)
	if !ok {
		t.Fatal("expected image ok")
	}
	if img.String() != "(/, uncle, _, mary)" {
		t.Fatalf("unexpected image string: %s", img.String())
	}

	back, ok := ProductFromImage(img, tom)
	if !ok {
		t.Fatal("expected product round-trip ok")
	}
	if back != product {
		t.Fatalf("expected round trip to recover original product, got %s", back)
	}
}

func mustImage(t *testing.T, relation *Term, args []*Term, idx int) *Term {
	img, ok := MakeImage(ImageExt, relation, args, idx)
	if !ok {
		t.Fatalf("expected image construction to succeed")
	}
	return img
}

func TestNegationDoesNotSelfCollapse(t *testing.T) {
	a := Atom("a")
	n1, ok := MakeNegation(a)
	if !ok {
		t.Fatal("expected ok")
	}
	n2, ok := MakeNegation(n1)
	if !ok {
		t.Fatal("expected ok")
	}
	if n2 == a {
		t.Fatalf("double negation must not collapse to the original term")
	}
	partner, ok := DoubleNegationPartner(a)
	if !ok {
		t.Fatal("expected ok")
	}
	if partner != n2 {
		t.Fatalf("expected DoubleNegationPartner to equal Negate(Negate(a))")
	}
}

func TestConjunctionFlattensAndSorts(t *testing.T) {
	a, b, c := Atom("a"), Atom("b"), Atom("c")
	inner, ok := MakeCompound(Conjunction, OrderNone, []*Term{b, c})
	if !ok {
		t.Fatal("expected ok")
	}
	flat, ok := MakeCompound(Conjunction, OrderNone, []*Term{a, inner})
	if !ok {
		t.Fatal("expected ok")
	}
	direct, ok := MakeCompound(Conjunction, OrderNone, []*Term{a, b, c})
	if !ok {
		t.Fatal("expected ok")
	}
	if flat != direct {
		t.Fatalf("expected associative flattening to produce the same term: %s vs %s", flat, direct)
	}
}

func TestSize(t *testing.T) {
	a, b := Atom("a"), Atom("b")
	s, ok := MakeStatement(Inheritance, a, b, OrderNone)
	if !ok {
		t.Fatal("expected ok")
	}
	if s.Size() != 3 {
		t.Fatalf("expected size 3 (statement + 2 atoms), got %d", s.Size())
	}
}
