// Package egret turns patterns written in a constrained regex dialect
// into test strings the pattern accepts. A pattern is tokenized in one
// pass, parsed into an AST, compiled into an instruction graph, and
// traversed to produce strings. The dialect is ASCII-only and
// single-line; backreferences, Unicode property escapes, and matching
// flags are rejected rather than interpreted.
package egret

import "fmt"

// Regexp is a compiled pattern ready for test-string generation.
type Regexp struct {
	expr    string
	scanner *Scanner
	root    Node
	prog    *Prog
}

func Compile(expr string) (*Regexp, error) {
	scanner, err := NewScanner(expr)
	if err != nil {
		return nil, err
	}
	root, err := NewParser(scanner).Parse()
	if err != nil {
		return nil, err
	}
	prog := NewBuilder().Build(root)
	return &Regexp{
		expr:    expr,
		scanner: scanner,
		root:    root,
		prog:    prog,
	}, nil
}

func MustCompile(expr string) *Regexp {
	re, err := Compile(expr)
	if err != nil {
		panic(fmt.Sprintf("egret: Compile(%q): %v", expr, err))
	}
	return re
}

// String returns the source text used to compile the pattern.
func (re *Regexp) String() string {
	return re.expr
}

// Warnings returns the advisory warnings recorded while scanning the
// pattern, in input order.
func (re *Regexp) Warnings() []string {
	return re.scanner.Warnings()
}

// TokenCount returns the number of tokens the pattern scanned into.
func (re *Regexp) TokenCount() int {
	return re.scanner.TokenCount()
}

// DumpTokens renders the pattern's token stream one token per line.
func (re *Regexp) DumpTokens() string {
	return re.scanner.String()
}

// GenTestStrings produces up to limit distinct strings the pattern
// accepts. A non-positive limit selects a default.
func (re *Regexp) GenTestStrings(limit int) []string {
	return NewGenerator(re.prog, limit).Generate()
}

// AddStats reports pipeline totals to the stats collector.
func (re *Regexp) AddStats(st *Stats) {
	re.scanner.AddStats(st)
	st.Add("PARSER", "Nodes", countNodes(re.root))
	st.Add("NFA", "Insts", len(re.prog.Insts))
}
