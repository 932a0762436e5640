package egret

// Parser builds an AST from a scanner's finished token stream. It pulls
// tokens through the scanner's read cursor and never touches the raw
// pattern text.
type Parser struct {
	s *Scanner
}

func NewParser(s *Scanner) *Parser {
	return &Parser{s: s}
}

func (p *Parser) Parse() (Node, error) {
	if p.s.TokenCount() == 0 {
		return &Concat{}, nil
	}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.s.Type() != TokenEOF {
		return nil, malformedf("unexpected %s after end of expression", p.s.TypeString())
	}
	return node, nil
}

// parseExpr handles alternation: concat | concat
func (p *Parser) parseExpr() (Node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}

	if p.s.Type() == TokenAlternation {
		p.s.Advance()
		right, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		// flatten nested alternates
		if alt, ok := right.(*Alternate); ok {
			return &Alternate{Nodes: append([]Node{left}, alt.Nodes...)}, nil
		}
		return &Alternate{Nodes: []Node{left, right}}, nil
	}
	return left, nil
}

// parseConcat chains factors for as long as the scanner reports an
// implicit concatenation point.
func (p *Parser) parseConcat() (Node, error) {
	node, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	nodes := []Node{node}
	for p.s.IsConcat() {
		n, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return &Concat{Nodes: nodes}, nil
}

// parseFactor handles a quantified atom.
func (p *Parser) parseFactor() (Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	switch p.s.Type() {
	case TokenStar:
		p.s.Advance()
		return &Quantifier{Body: atom, Min: 0, Max: NoUpperBound}, nil
	case TokenPlus:
		p.s.Advance()
		return &Quantifier{Body: atom, Min: 1, Max: NoUpperBound}, nil
	case TokenQuestion:
		p.s.Advance()
		return &Quantifier{Body: atom, Min: 0, Max: 1}, nil
	case TokenRepeat:
		q := &Quantifier{Body: atom, Min: p.s.RepeatLower(), Max: p.s.RepeatUpper()}
		p.s.Advance()
		return q, nil
	}
	return atom, nil
}

func (p *Parser) parseAtom() (Node, error) {
	switch p.s.Type() {
	case TokenCharacter:
		n := &Literal{Char: p.s.Character()}
		p.s.Advance()
		return n, nil
	case TokenCharClass:
		n := &CharClass{Class: p.s.Character()}
		p.s.Advance()
		return n, nil
	case TokenCaret:
		p.s.Advance()
		return &Assertion{Kind: AssertCaret}, nil
	case TokenDollar:
		p.s.Advance()
		return &Assertion{Kind: AssertDollar}, nil
	case TokenWordBoundary:
		p.s.Advance()
		return &Assertion{Kind: AssertWordBoundary}, nil
	case TokenLParen:
		return p.parseGroup()
	case TokenLBracket:
		return p.parseSet()
	case TokenEOF:
		return nil, malformedf("unexpected end of expression")
	default:
		return nil, malformedf("unexpected %s token", p.s.TypeString())
	}
}

func (p *Parser) parseGroup() (Node, error) {
	p.s.Advance() // (

	kind := GroupCapture
	switch p.s.Type() {
	case TokenNoGroupExt:
		kind = GroupNonCapture
		p.s.Advance()
	case TokenNamedGroupExt:
		kind = GroupNamed
		p.s.Advance()
	case TokenIgnoredExt:
		kind = GroupIgnored
		p.s.Advance()
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.s.Type() != TokenRParen {
		return nil, malformedf("missing ) in group")
	}
	p.s.Advance()
	return &Group{Body: body, Kind: kind}, nil
}

func (p *Parser) parseSet() (Node, error) {
	p.s.Advance() // [

	set := &CharSet{}
	for p.s.Type() != TokenRBracket {
		switch p.s.Type() {

		case TokenEOF:
			return nil, malformedf("unterminated character set")

		case TokenCharacter:
			ok, err := p.s.IsCharRange()
			if err != nil {
				return nil, err
			}
			if ok {
				lo := p.s.Character()
				p.s.Advance()
				p.s.Advance() // hyphen
				hi := p.s.Character()
				p.s.Advance()
				set.Ranges = append(set.Ranges, ByteRange{Lo: lo, Hi: hi})
			} else {
				set.Items = append(set.Items, p.s.Character())
				p.s.Advance()
			}

		case TokenCharClass:
			// a class bordering a hyphen is a fatal range error
			if _, err := p.s.IsCharRange(); err != nil {
				return nil, err
			}
			set.Classes = append(set.Classes, p.s.Character())
			p.s.Advance()

		case TokenHyphen:
			// no range operand on the left, matches itself
			set.Items = append(set.Items, '-')
			p.s.Advance()

		case TokenCaret, TokenDollar:
			// the dialect has no negated sets; anchors never belong here
			return nil, unsupportedf("anchor inside character set")

		case TokenWordBoundary:
			// \B in a set was already flagged with a warning; drop it
			p.s.Advance()

		default:
			return nil, malformedf("unexpected %s in character set", p.s.TypeString())
		}
	}
	p.s.Advance() // ]

	if len(set.Items) == 0 && len(set.Ranges) == 0 && len(set.Classes) == 0 {
		return nil, malformedf("empty character set")
	}
	return set, nil
}
