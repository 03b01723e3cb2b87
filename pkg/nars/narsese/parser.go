// Package narsese implements a recursive-descent parser for the ASCII
// Narsese surface syntax implied by the term package's own printed form
// (<S --> P>, (*, a, b), (/, P, _, b), {A}, truth tags; no budget tags): the
// surface language a driver reads input sentences in, the inverse of
// term.Term.String()/entity.Sentence.String().
package narsese

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cognicore/nars/pkg/nars/entity"
	"github.com/cognicore/nars/pkg/nars/term"
	"github.com/cognicore/nars/pkg/nars/truth"
)

// Parsed is one parsed input line: enough to build an entity.Sentence
// once the caller supplies a stamp (the driver owns the stamp generator
// and serial counter, not this package).
type Parsed struct {
	Content     *term.Term
	Punctuation entity.Punctuation
	Truth       truth.Value
	HasTruth    bool
}

// ParseError reports a malformed input line with the offending text.
type ParseError struct {
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("narsese: %s: %q", e.Msg, e.Input)
}

// defaultTruth is assumed for a judgment/goal line that omits "%f;c%",
// matching the "tabula rasa" convention most Narsese tooling uses for
// bare assertions.
var defaultTruth = truth.Value{Frequency: 1, Confidence: 0.9}

// Parse turns one line of surface Narsese into its content, punctuation,
// and (if present) truth value. The caller is responsible for wrapping
// the result in a stamp and a Task (entity.NewInputTask) before handing
// it to memory.Memory.InputTask, since stamp construction needs the
// driver's own Memory-scoped serial counter and clock.
func Parse(line string) (Parsed, error) {
	p := &parser{src: strings.TrimSpace(line)}
	content, err := p.parseTerm()
	if err != nil {
		return Parsed{}, err
	}
	p.skipSpace()
	punct, err := p.parsePunctuation()
	if err != nil {
		return Parsed{}, err
	}
	p.skipSpace()
	tv, hasTV := p.parseTruth()
	p.skipSpace()
	if p.pos != len(p.src) {
		return Parsed{}, &ParseError{Input: line, Msg: "trailing input"}
	}

	if punct.HasTruth() && !hasTV {
		tv = defaultTruth
		hasTV = true
	}
	return Parsed{Content: content, Punctuation: punct, Truth: tv, HasTruth: hasTV}, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) expect(b byte) error {
	if p.peek() != b {
		return &ParseError{Input: p.src, Msg: fmt.Sprintf("expected %q at position %d", b, p.pos)}
	}
	p.pos++
	return nil
}

func (p *parser) parsePunctuation() (entity.Punctuation, error) {
	switch p.peek() {
	case '.':
		p.pos++
		return entity.Judgment, nil
	case '!':
		p.pos++
		return entity.Goal, nil
	case '?':
		p.pos++
		return entity.Question, nil
	case '@':
		p.pos++
		return entity.Quest, nil
	}
	return 0, &ParseError{Input: p.src, Msg: "missing punctuation"}
}

// parseTruth reads "%f;c%", tolerating an omitted confidence ("%f%").
func (p *parser) parseTruth() (truth.Value, bool) {
	if p.peek() != '%' {
		return truth.Value{}, false
	}
	start := p.pos
	p.pos++
	body := p.readUntil('%')
	if p.peek() != '%' {
		p.pos = start
		return truth.Value{}, false
	}
	p.pos++
	parts := strings.Split(body, ";")
	f, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		p.pos = start
		return truth.Value{}, false
	}
	c := 0.9
	if len(parts) > 1 {
		if parsed, err := strconv.ParseFloat(parts[1], 64); err == nil {
			c = parsed
		}
	}
	return truth.Value{Frequency: f, Confidence: c}, true
}

func (p *parser) readUntil(stop byte) string {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != stop {
		p.pos++
	}
	return p.src[start:p.pos]
}

// parseTerm dispatches on the next rune: '<' starts a statement, '(' a
// parenthesized compound, '{'/'[' a set, anything else a bare atom name.
func (p *parser) parseTerm() (*term.Term, error) {
	p.skipSpace()
	switch p.peek() {
	case '<':
		return p.parseStatement()
	case '(':
		return p.parseParenCompound()
	case '{':
		return p.parseSet('{', '}', term.SetExt)
	case '[':
		return p.parseSet('[', ']', term.SetInt)
	default:
		return p.parseAtom()
	}
}

func (p *parser) parseAtom() (*term.Term, error) {
	start := p.pos
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', ',', ')', '>', '}', ']', '.', '!', '?', '@', '%':
			goto done
		}
		p.pos++
	}
done:
	if p.pos == start {
		return nil, &ParseError{Input: p.src, Msg: "expected atom"}
	}
	name := p.src[start:p.pos]
	if name == "_" {
		return term.Placeholder, nil
	}
	return term.Atom(name), nil
}

// parseStatement reads "<subject copula predicate>".
func (p *parser) parseStatement() (*term.Term, error) {
	if err := p.expect('<'); err != nil {
		return nil, err
	}
	sub, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	copula, order, err := p.parseCopula()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	pred, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if err := p.expect('>'); err != nil {
		return nil, err
	}
	content, ok := term.MakeStatement(copula, sub, pred, order)
	if !ok {
		return nil, &ParseError{Input: p.src, Msg: "degenerate statement"}
	}
	return content, nil
}

func (p *parser) parseCopula() (term.Copula, term.Order, error) {
	rest := p.src[p.pos:]
	table := []struct {
		sym    string
		copula term.Copula
		order  term.Order
	}{
		{"-->", term.Inheritance, term.OrderNone},
		{"<->", term.Similarity, term.OrderNone},
		{"==>", term.Implication, term.OrderNone},
		{"=/>", term.Implication, term.OrderForward},
		{"=|>", term.Implication, term.OrderConcurrent},
		{"=\\>", term.Implication, term.OrderBackward},
		{"<=>", term.Equivalence, term.OrderNone},
		{"</>", term.Equivalence, term.OrderForward},
		{"<|>", term.Equivalence, term.OrderConcurrent},
	}
	for _, e := range table {
		if strings.HasPrefix(rest, e.sym) {
			p.pos += len(e.sym)
			return e.copula, e.order, nil
		}
	}
	return 0, 0, &ParseError{Input: p.src, Msg: "unknown copula"}
}

// parseParenCompound reads "(op, a, b, ...)", where op is one of the
// connective symbols; image terms carry a leading "/" or "\" immediately
// followed by the relation and then the argument list with "_" marking
// the placeholder.
func (p *parser) parseParenCompound() (*term.Term, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	p.skipSpace()
	op, isImage, err := p.parseOperatorSymbol()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if err := p.expect(','); err != nil {
		return nil, err
	}
	var args []*term.Term
	for {
		p.skipSpace()
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, t)
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
			continue
		}
		break
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}

	if isImage {
		placeholderIndex := -1
		for i, a := range args[1:] {
			if a == term.Placeholder {
				placeholderIndex = i
				break
			}
		}
		if placeholderIndex < 0 {
			return nil, &ParseError{Input: p.src, Msg: "image missing placeholder"}
		}
		content, ok := term.MakeImage(op, args[0], args[1:], placeholderIndex)
		if !ok {
			return nil, &ParseError{Input: p.src, Msg: "degenerate image"}
		}
		return content, nil
	}

	if op == term.Negation {
		content, ok := term.MakeCompound(op, term.OrderNone, args)
		if !ok {
			return nil, &ParseError{Input: p.src, Msg: "degenerate negation"}
		}
		return content, nil
	}

	content, ok := term.MakeCompound(op, term.OrderNone, args)
	if !ok {
		return nil, &ParseError{Input: p.src, Msg: "degenerate compound"}
	}
	return content, nil
}

func (p *parser) parseOperatorSymbol() (term.Operator, bool, error) {
	rest := p.src[p.pos:]
	table := []struct {
		sym     string
		op      term.Operator
		isImage bool
	}{
		{"&&", term.Conjunction, false},
		{"||", term.Disjunction, false},
		{"--", term.Negation, false},
		{"*", term.Product, false},
		{"/", term.ImageExt, true},
		{`\`, term.ImageInt, true},
		{"&", term.IntersectionExt, false},
		{"|", term.IntersectionInt, false},
		{"-", term.DifferenceExt, false},
		{"~", term.DifferenceInt, false},
	}
	for _, e := range table {
		if strings.HasPrefix(rest, e.sym) {
			p.pos += len(e.sym)
			return e.op, e.isImage, nil
		}
	}
	return 0, false, &ParseError{Input: p.src, Msg: "unknown compound operator"}
}

func (p *parser) parseSet(open, close byte, op term.Operator) (*term.Term, error) {
	if err := p.expect(open); err != nil {
		return nil, err
	}
	var args []*term.Term
	for {
		p.skipSpace()
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, t)
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
			continue
		}
		break
	}
	if err := p.expect(close); err != nil {
		return nil, err
	}
	content, ok := term.MakeCompound(op, term.OrderNone, args)
	if !ok {
		return nil, &ParseError{Input: p.src, Msg: "degenerate set"}
	}
	return content, nil
}
