package term

// MakeStatement builds a statement with the given copula, order and sides.
// Returns (nil, false) for the degenerate case subject.Equal(predicate)
// under Similarity/Equivalence (symmetric copulas collapse to nothing
// useful when both sides are the same term).
func MakeStatement(copula Copula, subject, predicate *Term, order Order) (*Term, bool) {
	if subject == nil || predicate == nil {
		return nil, false
	}
	if (copula == Similarity || copula == Equivalence) && subject == predicate {
		return nil, false
	}
	key := buildStatementKey(copula, order, subject, predicate)
	t := &Term{
		kind:       kindStatement,
		copula:     copula,
		order:      order,
		components: []*Term{subject, predicate},
		key:        key,
	}
	return intern(t)
}

// MakeStatementLike rebuilds a statement with the same copula as template
// but new sides/order. Mirrors Java's Statement.make(statement, sub, pred,
// order, memory) used throughout the structural rules.
func MakeStatementLike(template *Term, subject, predicate *Term, order Order) (*Term, bool) {
	if !template.IsStatement() {
		return nil, false
	}
	return MakeStatement(template.copula, subject, predicate, order)
}

// MakeCompound is the general compound constructor: it canonicalizes
// (sorts commutative operands, dedupes set operands, flattens associative
// operators one level, collapses identity forms) and hash-conses the
// result. Returns (nil, false) for a degenerate/forbidden form.
func MakeCompound(op Operator, order Order, components []*Term) (*Term, bool) {
	switch op {
	case SetExt, SetInt:
		return makeSet(op, components)
	case IntersectionExt, IntersectionInt:
		return makeIntersection(op, components)
	case DifferenceExt, DifferenceInt:
		return makeDifference(op, components)
	case Product:
		return makeProduct(components)
	case ImageExt, ImageInt:
		return makeImageFromComponents(op, order, components)
	case Conjunction, Disjunction:
		return makeJunction(op, order, components)
	case Negation:
		return makeNegation(components)
	}
	return nil, false
}

// Make rebuilds a compound of the same operator (and, for images, the same
// relation index / for statements-as-compounds the same order) as template
// with newComponents as children. This is the Go analogue of Java's
// make(template, newComponents, memory) used pervasively by compose/
// decompose structural rules.
func Make(template *Term, newComponents []*Term) (*Term, bool) {
	if template.IsStatement() {
		if len(newComponents) != 2 {
			return nil, false
		}
		return MakeStatementLike(template, newComponents[0], newComponents[1], template.order)
	}
	if !template.IsCompound() {
		return nil, false
	}
	if template.op == ImageExt || template.op == ImageInt {
		relation, _, placeholderIndex := ImageParts(template)
		args := make([]*Term, 0, len(newComponents)-1)
		for i, c := range newComponents {
			if i == 0 {
				continue
			}
			args = append(args, c)
		}
		if len(newComponents) > 0 {
			relation = newComponents[0]
		}
		return MakeImage(template.op, relation, args, placeholderIndex)
	}
	return MakeCompound(template.op, template.order, newComponents)
}

func makeSet(op Operator, components []*Term) (*Term, bool) {
	if len(components) == 0 {
		return nil, false
	}
	uniq := sortedUnique(components)
	key := buildCompoundKey(op, OrderNone, uniq)
	t := &Term{kind: kindCompound, op: op, components: uniq, key: key}
	return intern(t)
}

// MakeSetExt and MakeSetInt are thin, named wrappers kept for call-site
// readability in the structural rules (mirrors SetExt.make/SetInt.make).
func MakeSetExt(components ...*Term) (*Term, bool) { return makeSet(SetExt, components) }
func MakeSetInt(components ...*Term) (*Term, bool) { return makeSet(SetInt, components) }

func makeIntersection(op Operator, components []*Term) (*Term, bool) {
	if len(components) == 0 {
		return nil, false
	}
	flat := flattenAssociative(op, components)
	uniq := sortedUnique(flat)
	if len(uniq) == 1 {
		// Identity collapse: an intersection of one distinct term is that term.
		return uniq[0], true
	}
	key := buildCompoundKey(op, OrderNone, uniq)
	t := &Term{kind: kindCompound, op: op, components: uniq, key: key}
	return intern(t)
}

func makeDifference(op Operator, components []*Term) (*Term, bool) {
	if len(components) != 2 {
		return nil, false
	}
	if components[0] == components[1] {
		return nil, false // M - M is degenerate
	}
	key := buildCompoundKey(op, OrderNone, components)
	t := &Term{kind: kindCompound, op: op, components: components, key: key}
	return intern(t)
}

func makeProduct(components []*Term) (*Term, bool) {
	if len(components) == 0 {
		return nil, false
	}
	key := buildCompoundKey(Product, OrderNone, components)
	t := &Term{kind: kindCompound, op: Product, components: components, key: key}
	return intern(t)
}

// makeImageFromComponents reconstructs an image term whose Components
// already has the placeholder in place (used by the generic MakeCompound
// dispatch and by Make(template, ...) for non-relation-changing rebuilds).
func makeImageFromComponents(op Operator, order Order, components []*Term) (*Term, bool) {
	if len(components) < 2 {
		return nil, false
	}
	placeholderIndex := -1
	for i, c := range components {
		if c == Placeholder {
			placeholderIndex = i
			break
		}
	}
	if placeholderIndex < 1 {
		return nil, false
	}
	key := buildCompoundKey(op, order, components)
	t := &Term{kind: kindCompound, op: op, relationIndex: placeholderIndex, components: components, key: key}
	return intern(t)
}

// MakeImage builds an image whose relation is `relation`, whose remaining
// arguments are `args` (the product's components with the extracted one
// omitted from direct storage but marked via placeholderIndex), and whose
// placeholder sits at position placeholderIndex within args (0-based).
// The resulting term's Components are [relation, args[0], ..., args[n-1]]
// with args[placeholderIndex] replaced by Placeholder, and RelationIndex
// equals placeholderIndex+1 (the placeholder's position within Components).
func MakeImage(op Operator, relation *Term, args []*Term, placeholderIndex int) (*Term, bool) {
	if relation == nil || placeholderIndex < 0 || placeholderIndex >= len(args) {
		return nil, false
	}
	components := make([]*Term, len(args)+1)
	components[0] = relation
	for i, a := range args {
		if i == placeholderIndex {
			components[i+1] = Placeholder
		} else {
			components[i+1] = a
		}
	}
	return makeImageFromComponents(op, OrderNone, components)
}

// ImageParts decomposes an image term back into its relation, its argument
// list (with the placeholder's slot present as Placeholder), and the
// placeholder's 0-based index within that argument list.
func ImageParts(img *Term) (relation *Term, args []*Term, placeholderIndex int) {
	relation = img.components[0]
	args = make([]*Term, len(img.components)-1)
	copy(args, img.components[1:])
	placeholderIndex = img.relationIndex - 1
	return relation, args, placeholderIndex
}

// ProductFromImage rebuilds the product an image was derived from,
// substituting value for the placeholder slot.
func ProductFromImage(img *Term, value *Term) (*Term, bool) {
	if img.op != ImageExt && img.op != ImageInt {
		return nil, false
	}
	_, args, idx := ImageParts(img)
	out := make([]*Term, len(args))
	copy(out, args)
	out[idx] = value
	return makeProduct(out)
}

// MakeImageShifted rebuilds img with the same relation but its placeholder
// moved to newIndex: the slot that previously held the placeholder is
// filled with value, and the slot at newIndex becomes the new placeholder
// (its prior value is discarded). Mirrors Java's ImageExt.make(image,
// value, index, memory) / ImageInt's equivalent used by the product/image
// transform when re-indexing through an existing image rather than a
// product.
func MakeImageShifted(img *Term, value *Term, newIndex int) (*Term, bool) {
	if img.op != ImageExt && img.op != ImageInt {
		return nil, false
	}
	relation, args, oldIdx := ImageParts(img)
	if newIndex < 0 || newIndex >= len(args) {
		return nil, false
	}
	shifted := append([]*Term(nil), args...)
	shifted[oldIdx] = value
	return MakeImage(img.op, relation, shifted, newIndex)
}

func makeJunction(op Operator, order Order, components []*Term) (*Term, bool) {
	if len(components) == 0 {
		return nil, false
	}
	flat := flattenAssociative(op, components)
	var final []*Term
	if order == OrderNone {
		final = sortedUnique(flat)
	} else {
		final = flat
	}
	if len(final) == 1 {
		return final[0], true
	}
	if len(final) == 0 {
		return nil, false
	}
	key := buildCompoundKey(op, order, final)
	t := &Term{kind: kindCompound, op: op, order: order, components: final, key: key}
	return intern(t)
}

func makeNegation(components []*Term) (*Term, bool) {
	if len(components) != 1 || components[0] == nil {
		return nil, false
	}
	key := buildCompoundKey(Negation, OrderNone, components)
	t := &Term{kind: kindCompound, op: Negation, components: components, key: key}
	return intern(t)
}

// MakeNegation negates a term. Negation is not self-collapsing at the term
// level: Negate(Negate(A)) is a distinct term from A. The derivation-chain
// cycle check (memory package) relies on this to tell "literal negation"
// apart from "double-negation partner" as two different escape clauses.
func MakeNegation(t *Term) (*Term, bool) { return makeNegation([]*Term{t}) }

// DoubleNegationPartner returns Negate(Negate(t)), used by the cycle-check
// exception in the derivation admission gate.
func DoubleNegationPartner(t *Term) (*Term, bool) {
	n, ok := MakeNegation(t)
	if !ok {
		return nil, false
	}
	return MakeNegation(n)
}
