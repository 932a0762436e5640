package egret

// NodeType identifies the type of AST node.
type NodeType int

const (
	NodeLiteral NodeType = iota
	NodeCharClass
	NodeCharSet
	NodeConcat
	NodeAlternate
	NodeQuantifier
	NodeGroup
	NodeAssertion
)

// Node is the base interface for AST nodes.
type Node interface {
	Type() NodeType
}

// Literal matches a single byte.
type Literal struct {
	Char byte
}

func (n *Literal) Type() NodeType { return NodeLiteral }

// CharClass matches a family of bytes selected by its class letter:
// 'd', 'D', 'w', 'W', 's', 'S', or '.' for any character.
type CharClass struct {
	Class byte
}

func (n *CharClass) Type() NodeType { return NodeCharClass }

// ByteRange is an inclusive range of bytes inside a set.
type ByteRange struct {
	Lo, Hi byte
}

// CharSet matches any one of its items, ranges, or embedded classes.
type CharSet struct {
	Items   []byte
	Ranges  []ByteRange
	Classes []byte // class letters, as in CharClass
}

func (n *CharSet) Type() NodeType { return NodeCharSet }

// Concat matches a sequence of nodes.
type Concat struct {
	Nodes []Node
}

func (n *Concat) Type() NodeType { return NodeConcat }

// Alternate matches one of several branches.
type Alternate struct {
	Nodes []Node
}

func (n *Alternate) Type() NodeType { return NodeAlternate }

// Quantifier matches a node repeated Min..Max times.
type Quantifier struct {
	Body Node
	Min  int
	Max  int // NoUpperBound for open-ended repeats
}

func (n *Quantifier) Type() NodeType { return NodeQuantifier }

// GroupKind records which group syntax introduced a group. The dialect
// does not track capture indexes; the kinds differ only in whether the
// body contributes to generated strings.
type GroupKind int

const (
	GroupCapture    GroupKind = iota // (...)
	GroupNonCapture                  // (?:...)
	GroupNamed                       // (?P<name>...)
	GroupIgnored                     // (?#...) (?=...) (?!...) (?<=...) (?<!...)
)

type Group struct {
	Body Node
	Kind GroupKind
}

func (n *Group) Type() NodeType { return NodeGroup }

// AssertionType distinguishes zero-width assertions.
type AssertionType int

const (
	AssertCaret        AssertionType = iota // ^ and \A
	AssertDollar                            // $ and \Z
	AssertWordBoundary                      // \b and \B, ignored downstream
)

type Assertion struct {
	Kind AssertionType
}

func (n *Assertion) Type() NodeType { return NodeAssertion }

// countNodes reports the number of nodes in the tree rooted at n.
func countNodes(n Node) int {
	switch t := n.(type) {
	case *Concat:
		count := 1
		for _, c := range t.Nodes {
			count += countNodes(c)
		}
		return count
	case *Alternate:
		count := 1
		for _, c := range t.Nodes {
			count += countNodes(c)
		}
		return count
	case *Quantifier:
		return 1 + countNodes(t.Body)
	case *Group:
		return 1 + countNodes(t.Body)
	default:
		return 1
	}
}
