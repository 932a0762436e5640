package egret

import (
	"errors"
	"reflect"
	"testing"
)

func mustParse(t *testing.T, pattern string) Node {
	t.Helper()
	s := mustScan(t, pattern)
	node, err := NewParser(s).Parse()
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", pattern, err)
	}
	return node
}

func parseKind(t *testing.T, pattern string) ErrorKind {
	t.Helper()
	s, err := NewScanner(pattern)
	if err == nil {
		_, err = NewParser(s).Parse()
	}
	if err == nil {
		t.Fatalf("Parse(%q) should fail", pattern)
	}
	var re *RegexError
	if !errors.As(err, &re) {
		t.Fatalf("Parse(%q): error %v is not a *RegexError", pattern, err)
	}
	return re.Kind
}

func TestParseLiteralConcat(t *testing.T) {
	node := mustParse(t, "abc")
	want := &Concat{Nodes: []Node{
		&Literal{Char: 'a'},
		&Literal{Char: 'b'},
		&Literal{Char: 'c'},
	}}
	if !reflect.DeepEqual(node, want) {
		t.Errorf("Parse(abc) = %#v; want %#v", node, want)
	}
}

func TestParseSingleAtom(t *testing.T) {
	if node := mustParse(t, "a"); !reflect.DeepEqual(node, &Literal{Char: 'a'}) {
		t.Errorf("Parse(a) = %#v", node)
	}
	if node := mustParse(t, `\d`); !reflect.DeepEqual(node, &CharClass{Class: 'd'}) {
		t.Errorf(`Parse(\d) = %#v`, node)
	}
	if node := mustParse(t, "."); !reflect.DeepEqual(node, &CharClass{Class: '.'}) {
		t.Errorf("Parse(.) = %#v", node)
	}
}

func TestParseAlternate(t *testing.T) {
	node := mustParse(t, "a|b|c")
	alt, ok := node.(*Alternate)
	if !ok {
		t.Fatalf("Parse(a|b|c) = %#v; want *Alternate", node)
	}
	// nested alternates flatten into one node
	if len(alt.Nodes) != 3 {
		t.Fatalf("Parse(a|b|c) branches = %d; want 3", len(alt.Nodes))
	}
	for i, char := range []byte{'a', 'b', 'c'} {
		if !reflect.DeepEqual(alt.Nodes[i], &Literal{Char: char}) {
			t.Errorf("branch %d = %#v; want Literal %c", i, alt.Nodes[i], char)
		}
	}
}

func TestParseQuantifiers(t *testing.T) {
	tests := []struct {
		pattern string
		min     int
		max     int
	}{
		{"a*", 0, NoUpperBound},
		{"a+", 1, NoUpperBound},
		{"a?", 0, 1},
		{"a{2,5}", 2, 5},
		{"a{3}", 3, 3},
		{"a{3,}", 3, NoUpperBound},
		{"a{,4}", 0, 4},
	}
	for _, tc := range tests {
		node := mustParse(t, tc.pattern)
		q, ok := node.(*Quantifier)
		if !ok {
			t.Errorf("Parse(%q) = %#v; want *Quantifier", tc.pattern, node)
			continue
		}
		if q.Min != tc.min || q.Max != tc.max {
			t.Errorf("Parse(%q) bounds = %d,%d; want %d,%d", tc.pattern, q.Min, q.Max, tc.min, tc.max)
		}
		if !reflect.DeepEqual(q.Body, &Literal{Char: 'a'}) {
			t.Errorf("Parse(%q) body = %#v", tc.pattern, q.Body)
		}
	}
}

func TestParseGroups(t *testing.T) {
	tests := []struct {
		pattern string
		kind    GroupKind
	}{
		{"(a)", GroupCapture},
		{"(?:a)", GroupNonCapture},
		{"(?P<x>a)", GroupNamed},
		{"(?=a)", GroupIgnored},
		{"(?<!a)", GroupIgnored},
	}
	for _, tc := range tests {
		node := mustParse(t, tc.pattern)
		g, ok := node.(*Group)
		if !ok {
			t.Errorf("Parse(%q) = %#v; want *Group", tc.pattern, node)
			continue
		}
		if g.Kind != tc.kind {
			t.Errorf("Parse(%q) kind = %v; want %v", tc.pattern, g.Kind, tc.kind)
		}
		if !reflect.DeepEqual(g.Body, &Literal{Char: 'a'}) {
			t.Errorf("Parse(%q) body = %#v", tc.pattern, g.Body)
		}
	}
}

func TestParseAssertions(t *testing.T) {
	node := mustParse(t, "^a$")
	want := &Concat{Nodes: []Node{
		&Assertion{Kind: AssertCaret},
		&Literal{Char: 'a'},
		&Assertion{Kind: AssertDollar},
	}}
	if !reflect.DeepEqual(node, want) {
		t.Errorf("Parse(^a$) = %#v; want %#v", node, want)
	}

	node = mustParse(t, `\bfoo`)
	con, ok := node.(*Concat)
	if !ok || !reflect.DeepEqual(con.Nodes[0], &Assertion{Kind: AssertWordBoundary}) {
		t.Errorf(`Parse(\bfoo) = %#v; want word boundary then foo`, node)
	}
}

func TestParseSet(t *testing.T) {
	node := mustParse(t, "[a-z0_]")
	want := &CharSet{
		Items:  []byte{'0', '_'},
		Ranges: []ByteRange{{Lo: 'a', Hi: 'z'}},
	}
	if !reflect.DeepEqual(node, want) {
		t.Errorf("Parse([a-z0_]) = %#v; want %#v", node, want)
	}

	node = mustParse(t, `[\dx]`)
	want = &CharSet{
		Items:   []byte{'x'},
		Classes: []byte{'d'},
	}
	if !reflect.DeepEqual(node, want) {
		t.Errorf(`Parse([\dx]) = %#v; want %#v`, node, want)
	}

	// a hyphen with no left-hand range operand matches itself
	node = mustParse(t, "[a-b-c]")
	want = &CharSet{
		Items:  []byte{'-', 'c'},
		Ranges: []ByteRange{{Lo: 'a', Hi: 'b'}},
	}
	if !reflect.DeepEqual(node, want) {
		t.Errorf("Parse([a-b-c]) = %#v; want %#v", node, want)
	}
}

func TestParseEmptyPattern(t *testing.T) {
	node := mustParse(t, "")
	if !reflect.DeepEqual(node, &Concat{}) {
		t.Errorf("Parse(\"\") = %#v; want empty Concat", node)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		pattern string
		kind    ErrorKind
	}{
		{"(a", ErrMalformed},       // unclosed group
		{"a)", ErrMalformed},       // unmatched close
		{"*a", ErrMalformed},       // quantifier without target
		{"a**", ErrMalformed},      // doubled quantifier
		{"a|", ErrMalformed},       // dangling alternation
		{"[a", ErrMalformed},       // unterminated set
		{"[z-a]", ErrInvalidRange}, // inverted range
		{`[a-\d]`, ErrInvalidRange},
		{"[^a]", ErrUnsupported}, // no negated sets in this dialect
		{"[a$]", ErrUnsupported},
	}
	for _, tc := range tests {
		if kind := parseKind(t, tc.pattern); kind != tc.kind {
			t.Errorf("Parse(%q) error kind = %v; want %v", tc.pattern, kind, tc.kind)
		}
	}
}
