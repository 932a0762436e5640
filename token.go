package egret

import "fmt"

type TokenType int

const (
	TokenEOF           TokenType = iota
	TokenCharacter               // Literal byte
	TokenCharClass               // \d \D \w \W \s \S or .
	TokenAlternation             // |
	TokenStar                    // * (greedy or lazy)
	TokenPlus                    // + (greedy or lazy)
	TokenQuestion                // ? (greedy or lazy)
	TokenRepeat                  // {n} {n,} {,m} {n,m}
	TokenLParen                  // (
	TokenRParen                  // )
	TokenLBracket                // [ starting a set
	TokenRBracket                // ] closing a set
	TokenCaret                   // ^ or \A
	TokenDollar                  // $ or \Z
	TokenWordBoundary            // \b or \B (ignored downstream)
	TokenHyphen                  // - between range bounds inside a set
	TokenNoGroupExt              // (?:
	TokenNamedGroupExt           // (?P<name>
	TokenIgnoredExt              // (?# (?= (?! (?<= (?<!
)

// NoUpperBound is the RepeatUpper value of a repeat token with no upper
// bound, e.g. {3,}.
const NoUpperBound = -1

type Token struct {
	Type        TokenType
	Char        byte // for TokenCharacter and TokenCharClass
	RepeatLower int  // for TokenRepeat
	RepeatUpper int  // for TokenRepeat; NoUpperBound if open-ended
}

func charToken(c byte) Token {
	return Token{Type: TokenCharacter, Char: c}
}

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenCharacter:
		return "CHARACTER"
	case TokenCharClass:
		return "CHAR_CLASS"
	case TokenAlternation:
		return "ALTERNATION"
	case TokenStar:
		return "STAR"
	case TokenPlus:
		return "PLUS"
	case TokenQuestion:
		return "QUESTION"
	case TokenRepeat:
		return "REPEAT"
	case TokenLParen:
		return "LEFT_PAREN"
	case TokenRParen:
		return "RIGHT_PAREN"
	case TokenLBracket:
		return "LEFT_BRACKET"
	case TokenRBracket:
		return "RIGHT_BRACKET"
	case TokenCaret:
		return "CARET"
	case TokenDollar:
		return "DOLLAR"
	case TokenWordBoundary:
		return "WORD_BOUNDARY"
	case TokenHyphen:
		return "HYPHEN"
	case TokenNoGroupExt:
		return "NO_GROUP_EXT"
	case TokenNamedGroupExt:
		return "NAMED_GROUP_EXT"
	case TokenIgnoredExt:
		return "IGNORED_EXT"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

func (t Token) String() string {
	switch t.Type {
	case TokenCharacter, TokenCharClass:
		return fmt.Sprintf("%s:%c", t.Type, t.Char)
	case TokenRepeat:
		if t.RepeatUpper == NoUpperBound {
			return fmt.Sprintf("%s:%d,", t.Type, t.RepeatLower)
		}
		return fmt.Sprintf("%s:%d,%d", t.Type, t.RepeatLower, t.RepeatUpper)
	default:
		return t.Type.String()
	}
}
