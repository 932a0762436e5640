package egret

import "fmt"

// OpCode identifies an automaton instruction.
type OpCode int

const (
	OpMatch OpCode = iota // accept; a complete string has been produced
	OpByte                // produce a specific byte
	OpClass               // produce a byte drawn from a character class
	OpSet                 // produce a byte drawn from a character set
	OpJmp                 // jump to Out
	OpSplit               // branch: try Out, also Out1
)

type Inst struct {
	Op    OpCode
	Val   byte     // for OpByte
	Class byte     // for OpClass, the class letter
	Set   *CharSet // for OpSet
	Out   int      // jump target 1 (primary)
	Out1  int      // jump target 2 (alternative for Split)
}

// Prog is a pattern compiled into an instruction graph. Execution starts
// at instruction Start; instructions without an explicit jump fall
// through to the next index.
type Prog struct {
	Insts []Inst
	Start int
}

func (i Inst) String() string {
	switch i.Op {
	case OpMatch:
		return "match"
	case OpByte:
		return fmt.Sprintf("byte %q", i.Val)
	case OpClass:
		return fmt.Sprintf("class \\%c", i.Class)
	case OpSet:
		return fmt.Sprintf("set %d items %d ranges", len(i.Set.Items), len(i.Set.Ranges))
	case OpJmp:
		return fmt.Sprintf("jmp %d", i.Out)
	case OpSplit:
		return fmt.Sprintf("split %d, %d", i.Out, i.Out1)
	default:
		return fmt.Sprintf("op(%d)", int(i.Op))
	}
}

// Builder compiles an AST into a Prog.
type Builder struct {
	insts []Inst
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Build(node Node) *Prog {
	b.insts = nil
	b.buildNode(node)
	b.emit(Inst{Op: OpMatch})
	return &Prog{Insts: b.insts, Start: 0}
}

func (b *Builder) emit(i Inst) int {
	b.insts = append(b.insts, i)
	return len(b.insts) - 1
}

func (b *Builder) buildNode(node Node) {
	switch n := node.(type) {
	case *Literal:
		b.emit(Inst{Op: OpByte, Val: n.Char})

	case *CharClass:
		b.emit(Inst{Op: OpClass, Class: n.Class})

	case *CharSet:
		b.emit(Inst{Op: OpSet, Set: n})

	case *Assertion:
		// zero-width; contributes no bytes

	case *Group:
		// ignored extensions constrain matching engines, not the
		// strings this automaton produces
		if n.Kind == GroupIgnored {
			return
		}
		b.buildNode(n.Body)

	case *Concat:
		for _, c := range n.Nodes {
			b.buildNode(c)
		}

	case *Alternate:
		b.buildAlternate(n.Nodes)

	case *Quantifier:
		b.buildQuantifier(n)
	}
}

func (b *Builder) buildAlternate(nodes []Node) {
	if len(nodes) == 0 {
		return
	}
	if len(nodes) == 1 {
		b.buildNode(nodes[0])
		return
	}

	splitIdx := b.emit(Inst{Op: OpSplit})
	b.insts[splitIdx].Out = len(b.insts)
	b.buildNode(nodes[0])

	jmpIdx := b.emit(Inst{Op: OpJmp})

	b.insts[splitIdx].Out1 = len(b.insts)
	b.buildAlternate(nodes[1:])

	b.insts[jmpIdx].Out = len(b.insts)
}

// buildQuantifier unrolls {n,m} into n mandatory copies followed by m-n
// optional ones; open-ended repeats get a split loop after the mandatory
// copies.
func (b *Builder) buildQuantifier(q *Quantifier) {
	for i := 0; i < q.Min; i++ {
		b.buildNode(q.Body)
	}

	if q.Max == NoUpperBound {
		split := b.emit(Inst{Op: OpSplit})
		b.insts[split].Out = len(b.insts)
		b.buildNode(q.Body)
		b.emit(Inst{Op: OpJmp, Out: split})
		b.insts[split].Out1 = len(b.insts)
		return
	}

	var splits []int
	for i := q.Min; i < q.Max; i++ {
		split := b.emit(Inst{Op: OpSplit})
		b.insts[split].Out = len(b.insts)
		splits = append(splits, split)
		b.buildNode(q.Body)
	}
	end := len(b.insts)
	for _, idx := range splits {
		b.insts[idx].Out1 = end
	}
}
