package egret

import (
	"fmt"
	"strings"
)

// Scanner tokenizes a pattern in a single left-to-right pass, then serves
// the finished token stream to the parser through a forward-only read
// cursor. Tokenization either completes fully or fails with a *RegexError;
// there is no partial token stream.
type Scanner struct {
	input    string
	pos      int // scan cursor, byte index into input
	tokens   []Token
	warnings []string
	index    int // read cursor into tokens
}

// NewScanner tokenizes pattern and returns the scanner holding the token
// stream. Advisory warnings accumulate on the scanner and are available
// via Warnings.
func NewScanner(pattern string) (*Scanner, error) {
	s := &Scanner{input: pattern}
	if err := s.scan(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scanner) scan() error {
	inSet := false
	for s.pos < len(s.input) {
		var tok Token
		c := s.input[s.pos]
		switch c {

		case '\\':
			t, err := s.scanEscape(inSet)
			if err != nil {
				return err
			}
			tok = t

		case '[':
			// a second [ while already in a set matches itself
			if inSet {
				tok = charToken(c)
			} else {
				tok = Token{Type: TokenLBracket}
				inSet = true
			}

		case ']':
			if inSet && s.lastType() == TokenLBracket {
				// first in set matches itself
				tok = charToken(c)
			} else if inSet {
				tok = Token{Type: TokenRBracket}
				inSet = false
			} else {
				tok = charToken(c)
			}

		case '-':
			switch {
			case inSet && s.lastType() == TokenLBracket:
				// first in set matches itself
				tok = charToken(c)
			case inSet && s.pos+1 < len(s.input) && s.input[s.pos+1] == ']':
				// last in set matches itself
				tok = charToken(c)
			case inSet:
				tok = Token{Type: TokenHyphen}
			default:
				tok = charToken(c)
			}

		case '|':
			if inSet {
				tok = charToken(c)
			} else {
				tok = Token{Type: TokenAlternation}
			}

		case '*':
			if inSet {
				tok = charToken(c)
			} else {
				tok = Token{Type: TokenStar}
				s.skipLazy()
			}

		case '+':
			if inSet {
				tok = charToken(c)
			} else {
				tok = Token{Type: TokenPlus}
				s.skipLazy()
			}

		case '?':
			if s.lastType() == TokenLParen {
				t, err := s.scanExtension()
				if err != nil {
					return err
				}
				tok = t
			} else if inSet {
				tok = charToken(c)
			} else {
				tok = Token{Type: TokenQuestion}
				s.skipLazy()
			}

		case '(':
			if inSet {
				tok = charToken(c)
			} else {
				tok = Token{Type: TokenLParen}
			}

		case ')':
			if inSet {
				tok = charToken(c)
			} else {
				tok = Token{Type: TokenRParen}
			}

		case '.':
			if inSet {
				tok = charToken(c)
			} else {
				tok = Token{Type: TokenCharClass, Char: c}
			}

		case '{':
			if inSet {
				tok = charToken(c)
			} else {
				t, err := s.scanRepeat()
				if err != nil {
					return err
				}
				tok = t
				if tok.Type != TokenCharacter {
					s.skipLazy()
				}
			}

		case '^':
			tok = Token{Type: TokenCaret}

		case '$':
			tok = Token{Type: TokenDollar}

		default:
			tok = charToken(c)
		}

		s.tokens = append(s.tokens, tok)
		s.pos++
	}
	return nil
}

// next advances the scan cursor and returns the byte there. The pattern
// ending where another byte is required is fatal.
func (s *Scanner) next() (byte, error) {
	s.pos++
	if s.pos >= len(s.input) {
		return 0, malformedf("input ended prematurely")
	}
	return s.input[s.pos], nil
}

// skipLazy consumes a trailing ? after a quantifier. Lazy and greedy
// quantifiers produce the same token.
func (s *Scanner) skipLazy() {
	if s.pos+1 < len(s.input) && s.input[s.pos+1] == '?' {
		s.pos++
	}
}

func (s *Scanner) lastType() TokenType {
	if len(s.tokens) == 0 {
		return TokenEOF
	}
	return s.tokens[len(s.tokens)-1].Type
}

func (s *Scanner) warn(msg string) {
	s.warnings = append(s.warnings, msg)
}

// scanEscape resolves the character after a backslash.
func (s *Scanner) scanEscape(inSet bool) (Token, error) {
	c, err := s.next()
	if err != nil {
		return Token{}, err
	}
	switch c {
	case 'd', 'D', 'w', 'W', 's', 'S':
		return Token{Type: TokenCharClass, Char: c}, nil

	// \A only differs from ^ in multi-line mode, which is not supported
	case 'A':
		return Token{Type: TokenCaret}, nil
	// same for \Z and $
	case 'Z':
		return Token{Type: TokenDollar}, nil

	// \b is backspace inside a set, word boundary otherwise
	case 'b':
		if inSet {
			return Token{}, unsupportedf(`contains unsupported character \b`)
		}
		s.warn(`regex contains ignored \b`)
		return Token{Type: TokenWordBoundary}, nil

	case 'B':
		s.warn(`regex contains ignored \B`)
		return Token{Type: TokenWordBoundary}, nil

	case 'a', 'f', 'n', 'r', 't', 'v', 'p':
		return Token{}, unsupportedf(`contains unsupported character \%c`, c)

	case '\\', '\'', '"':
		return charToken(c), nil

	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return s.scanOctal(c)

	case 'x':
		return s.scanHex(2)
	case 'u':
		return s.scanHex(4)
	case 'U':
		return s.scanHex(8)

	// everything else matches itself: \( \$ \. etc
	default:
		return charToken(c), nil
	}
}

// scanOctal decodes a two or three digit octal escape. The first digit has
// already been consumed. A digit with no valid successor is either \0 or a
// backreference, both unsupported.
func (s *Scanner) scanOctal(first byte) (Token, error) {
	var second byte
	oneDigit := false
	if s.pos+1 >= len(s.input) {
		oneDigit = true
	} else {
		second = s.input[s.pos+1]
		if second < '0' || second > '7' {
			oneDigit = true
		}
	}
	if oneDigit {
		if first == '0' {
			return Token{}, unsupportedf(`contains unsupported character \0`)
		}
		return Token{}, unsupportedf(`contains unsupported backreference \%c`, first)
	}

	var value int
	if s.pos+2 < len(s.input) && s.input[s.pos+2] >= '0' && s.input[s.pos+2] <= '7' {
		third := s.input[s.pos+2]
		value = int(first-'0')*64 + int(second-'0')*8 + int(third-'0')
		s.pos += 2
	} else {
		value = int(first-'0')*8 + int(second-'0')
		s.pos++
	}

	if value < 32 || value > 126 {
		return Token{}, unsupportedf("contains unsupported octal value %d", value)
	}
	return charToken(byte(value)), nil
}

// scanHex decodes \xhh, \uhhhh, and \Uhhhhhhhh escapes. Only ASCII
// codepoints are supported, so every digit before the final two must be
// zero.
func (s *Scanner) scanHex(digits int) (Token, error) {
	for i := 2; i < digits; i++ {
		d, err := s.next()
		if err != nil {
			return Token{}, err
		}
		if d != '0' {
			return Token{}, unsupportedf("unsupported %d-digit hex number", digits)
		}
	}

	hi, err := s.next()
	if err != nil {
		return Token{}, err
	}
	lo, err := s.next()
	if err != nil {
		return Token{}, err
	}

	h, ok := hexVal(hi)
	if !ok {
		return Token{}, malformedf("invalid hex digit %c", hi)
	}
	l, ok := hexVal(lo)
	if !ok {
		return Token{}, malformedf("invalid hex digit %c", lo)
	}

	value := h*16 + l
	if value < 32 || value > 126 {
		return Token{}, unsupportedf("contains unsupported hex value %d", value)
	}
	return charToken(byte(value)), nil
}

func hexVal(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	}
	return 0, false
}

// scanExtension resolves (?...) group modifiers. The cursor sits on the ?.
func (s *Scanner) scanExtension() (Token, error) {
	ext, err := s.next()
	if err != nil {
		return Token{}, err
	}
	switch ext {

	case ':':
		return Token{Type: TokenNoGroupExt}, nil

	case 'P':
		c, err := s.next()
		if err != nil {
			return Token{}, err
		}
		if c == '=' {
			return Token{}, unsupportedf("unsupported named backreference (?P=")
		}
		if c != '<' {
			return Token{}, malformedf("improperly specified named group, expected < after (?P")
		}
		for c != '>' {
			c, err = s.next()
			if err != nil {
				return Token{}, err
			}
		}
		return Token{Type: TokenNamedGroupExt}, nil

	case '#', '=', '!':
		s.warn(fmt.Sprintf("regex contains ignored extension ?%c", ext))
		return Token{Type: TokenIgnoredExt}, nil

	case '<':
		c, err := s.next()
		if err != nil {
			return Token{}, err
		}
		if c == '=' || c == '!' {
			s.warn(fmt.Sprintf("regex contains ignored extension ?<%c", c))
			return Token{Type: TokenIgnoredExt}, nil
		}
		return Token{}, unsupportedf("unsupported extension ?<%c", c)

	default:
		return Token{}, unsupportedf("unsupported extension ?%c", ext)
	}
}

// maxRepeatBound caps {n,m} bounds; anything larger is rejected before
// the accumulator can overflow.
const maxRepeatBound = 1 << 20

// scanRepeat resolves a {...} quantifier. The grammar is strict: {n},
// {n,}, {,m}, or {n,m} with bare digit runs and nothing else. Any
// deviation rewinds the cursor to the { and returns it as a literal; the
// rest of the clause is then rescanned as ordinary characters.
func (s *Scanner) scanRepeat() (Token, error) {
	entry := s.pos

	lower := 0
	hasLower := false
	c, err := s.next()
	if err != nil {
		return Token{}, err
	}
	for c >= '0' && c <= '9' {
		lower = lower*10 + int(c-'0')
		if lower > maxRepeatBound {
			return Token{}, quantifierf("repeat bound exceeds %d", maxRepeatBound)
		}
		hasLower = true
		c, err = s.next()
		if err != nil {
			return Token{}, err
		}
	}

	switch c {
	case ',':
		// lower bound complete, fall through to the upper bound
	case '}':
		if !hasLower {
			// {} matches itself
			s.pos = entry
			return charToken('{'), nil
		}
		if lower == 0 {
			return Token{}, quantifierf("pointless repeat quantifier {0}")
		}
		return Token{Type: TokenRepeat, RepeatLower: lower, RepeatUpper: lower}, nil
	default:
		s.pos = entry
		return charToken('{'), nil
	}

	upper := 0
	hasUpper := false
	c, err = s.next()
	if err != nil {
		return Token{}, err
	}
	for c >= '0' && c <= '9' {
		upper = upper*10 + int(c-'0')
		if upper > maxRepeatBound {
			return Token{}, quantifierf("repeat bound exceeds %d", maxRepeatBound)
		}
		hasUpper = true
		c, err = s.next()
		if err != nil {
			return Token{}, err
		}
	}

	if c != '}' {
		s.pos = entry
		return charToken('{'), nil
	}
	if !hasLower && !hasUpper {
		// {,} matches itself
		s.pos = entry
		return charToken('{'), nil
	}
	if !hasUpper {
		return Token{Type: TokenRepeat, RepeatLower: lower, RepeatUpper: NoUpperBound}, nil
	}
	if lower > upper {
		return Token{}, quantifierf("lower bound %d is greater than upper bound %d", lower, upper)
	}
	if upper == 0 {
		return Token{}, quantifierf("pointless repeat quantifier {0,0}")
	}
	return Token{Type: TokenRepeat, RepeatLower: lower, RepeatUpper: upper}, nil
}

// --- read cursor ---

// Type returns the kind of the token at the read cursor, or TokenEOF once
// the stream is exhausted.
func (s *Scanner) Type() TokenType {
	if s.index < len(s.tokens) {
		return s.tokens[s.index].Type
	}
	return TokenEOF
}

func (s *Scanner) TypeString() string {
	return s.Type().String()
}

// Character returns the byte payload of the token at the read cursor.
// Calling it on a token that carries no byte is a defect in the caller
// and panics with an internal-error diagnostic.
func (s *Scanner) Character() byte {
	t := s.Type()
	if t != TokenCharacter && t != TokenCharClass {
		panic(&RegexError{Kind: ErrInternal, Detail: "character requested on " + t.String() + " token"})
	}
	return s.tokens[s.index].Char
}

// RepeatLower returns the lower bound of the repeat token at the read
// cursor. Panics on any other token kind.
func (s *Scanner) RepeatLower() int {
	if s.Type() != TokenRepeat {
		panic(&RegexError{Kind: ErrInternal, Detail: "repeat bound requested on " + s.TypeString() + " token"})
	}
	return s.tokens[s.index].RepeatLower
}

// RepeatUpper returns the upper bound of the repeat token at the read
// cursor, NoUpperBound if open-ended. Panics on any other token kind.
func (s *Scanner) RepeatUpper() int {
	if s.Type() != TokenRepeat {
		panic(&RegexError{Kind: ErrInternal, Detail: "repeat bound requested on " + s.TypeString() + " token"})
	}
	return s.tokens[s.index].RepeatUpper
}

// Advance moves the read cursor one token forward.
func (s *Scanner) Advance() {
	s.index++
}

// IsConcat reports whether an implicit concatenation operator belongs
// between the token before the read cursor and the token at it: the
// previous token must be able to end an operand and the next must not be
// an operator continuation.
func (s *Scanner) IsConcat() bool {
	if s.index == 0 || s.index >= len(s.tokens) {
		return false
	}
	prev := s.tokens[s.index-1].Type
	next := s.tokens[s.index].Type

	validPrev := prev == TokenStar ||
		prev == TokenPlus ||
		prev == TokenQuestion ||
		prev == TokenRepeat ||
		prev == TokenRParen ||
		prev == TokenCharacter ||
		prev == TokenCaret ||
		prev == TokenDollar ||
		prev == TokenWordBoundary ||
		prev == TokenCharClass ||
		prev == TokenRBracket

	invalidNext := next == TokenAlternation ||
		next == TokenStar ||
		next == TokenPlus ||
		next == TokenQuestion ||
		next == TokenRepeat ||
		next == TokenRParen ||
		next == TokenRBracket

	return validPrev && !invalidNext
}

// IsCharRange reports whether the three tokens from the read cursor form
// CHARACTER, HYPHEN, CHARACTER. Inverted bounds are fatal, as is a range
// with a character class on either side.
func (s *Scanner) IsCharRange() (bool, error) {
	if s.index+2 >= len(s.tokens) {
		return false, nil
	}
	if s.tokens[s.index+1].Type != TokenHyphen {
		return false, nil
	}
	lo, hi := s.tokens[s.index], s.tokens[s.index+2]
	switch {
	case lo.Type == TokenCharacter && hi.Type == TokenCharacter:
		if lo.Char > hi.Char {
			return false, rangef("improperly formed range %c-%c", lo.Char, hi.Char)
		}
		return true, nil
	case (lo.Type == TokenCharacter || lo.Type == TokenCharClass) &&
		(hi.Type == TokenCharacter || hi.Type == TokenCharClass):
		return false, rangef("improperly constructed range using char class")
	}
	return false, nil
}

// --- reporting ---

// Warnings returns the advisory warnings recorded during the scan, in
// input order.
func (s *Scanner) Warnings() []string {
	return s.warnings
}

// Tokens returns the finished token stream.
func (s *Scanner) Tokens() []Token {
	return s.tokens
}

func (s *Scanner) TokenCount() int {
	return len(s.tokens)
}

// String renders the token stream one token per line, for debug output.
func (s *Scanner) String() string {
	var b strings.Builder
	for _, t := range s.tokens {
		b.WriteString(t.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// AddStats reports scan totals to the stats collector.
func (s *Scanner) AddStats(st *Stats) {
	st.Add("SCANNER", "Tokens", len(s.tokens))
}
