package egret

// Generator walks a compiled Prog depth-first and collects strings the
// pattern accepts. Every split explores both arms; a split is re-entered
// at most maxLoopPasses times along one path, which bounds loop
// unrolling for open-ended repeats.
type Generator struct {
	prog  *Prog
	limit int
	seen  map[string]struct{}
	out   []string
}

const (
	defaultGenLimit = 64
	maxLoopPasses   = 2
	maxGenLength    = 4096
)

// NewGenerator prepares a generator producing at most limit strings.
// A non-positive limit selects a default.
func NewGenerator(prog *Prog, limit int) *Generator {
	if limit <= 0 {
		limit = defaultGenLimit
	}
	return &Generator{
		prog:  prog,
		limit: limit,
		seen:  make(map[string]struct{}),
	}
}

// Generate runs the traversal and returns the deduplicated strings in
// discovery order. Exhausting the limit truncates the result, it never
// fails.
func (g *Generator) Generate() []string {
	g.walk(g.prog.Start, nil, make(map[int]int))
	return g.out
}

func (g *Generator) walk(pc int, prefix []byte, loops map[int]int) {
	for {
		if len(g.out) >= g.limit || len(prefix) > maxGenLength {
			return
		}
		inst := g.prog.Insts[pc]

		switch inst.Op {
		case OpMatch:
			g.add(string(prefix))
			return

		case OpByte:
			prefix = append(prefix, inst.Val)
			pc++

		case OpClass:
			prefix = append(prefix, classByte(inst.Class))
			pc++

		case OpSet:
			prefix = append(prefix, setByte(inst.Set))
			pc++

		case OpJmp:
			pc = inst.Out

		case OpSplit:
			if loops[pc] < maxLoopPasses {
				forked := make(map[int]int, len(loops))
				for k, v := range loops {
					forked[k] = v
				}
				forked[pc]++
				g.walk(inst.Out, append([]byte(nil), prefix...), forked)
			}
			pc = inst.Out1

		default:
			return
		}
	}
}

func (g *Generator) add(s string) {
	if _, ok := g.seen[s]; ok {
		return
	}
	g.seen[s] = struct{}{}
	g.out = append(g.out, s)
}

// classByte picks the representative byte produced for a class letter.
func classByte(class byte) byte {
	switch class {
	case 'd':
		return '0'
	case 'D':
		return 'a'
	case 'w':
		return 'a'
	case 'W':
		return '!'
	case 's':
		return ' '
	case 'S':
		return 'a'
	case '.':
		return 'a'
	default:
		return '?'
	}
}

// setByte picks the representative byte produced for a character set.
func setByte(set *CharSet) byte {
	if len(set.Items) > 0 {
		return set.Items[0]
	}
	if len(set.Ranges) > 0 {
		return set.Ranges[0].Lo
	}
	if len(set.Classes) > 0 {
		return classByte(set.Classes[0])
	}
	return '?'
}
