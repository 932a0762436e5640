package egret

import (
	"fmt"
	"strings"
)

// Stats accumulates named counters grouped by pipeline phase, reported
// once after a run. Entries keep first-insertion order.
type Stats struct {
	entries []StatEntry
	index   map[string]int
}

type StatEntry struct {
	Group string
	Name  string
	Value int
}

func NewStats() *Stats {
	return &Stats{index: make(map[string]int)}
}

// Add increments the counter identified by group and name by n, creating
// it on first use.
func (st *Stats) Add(group, name string, n int) {
	key := group + "." + name
	if i, ok := st.index[key]; ok {
		st.entries[i].Value += n
		return
	}
	st.index[key] = len(st.entries)
	st.entries = append(st.entries, StatEntry{Group: group, Name: name, Value: n})
}

// Get returns the current value of a counter and whether it exists.
func (st *Stats) Get(group, name string) (int, bool) {
	i, ok := st.index[group+"."+name]
	if !ok {
		return 0, false
	}
	return st.entries[i].Value, true
}

// Entries returns the counters in insertion order.
func (st *Stats) Entries() []StatEntry {
	return st.entries
}

func (st *Stats) String() string {
	var b strings.Builder
	for _, e := range st.entries {
		fmt.Fprintf(&b, "%s\t%s\t%d\n", e.Group, e.Name, e.Value)
	}
	return b.String()
}
