package egret

import (
	"strings"
	"testing"
)

func TestStatsAccumulate(t *testing.T) {
	st := NewStats()
	st.Add("SCANNER", "Tokens", 5)
	st.Add("SCANNER", "Tokens", 3)
	st.Add("PARSER", "Nodes", 2)

	if n, ok := st.Get("SCANNER", "Tokens"); !ok || n != 8 {
		t.Errorf("SCANNER Tokens = %d, %v; want 8", n, ok)
	}
	if _, ok := st.Get("SCANNER", "Missing"); ok {
		t.Error("Get on an unknown counter should report absence")
	}

	entries := st.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries() = %v; want 2 counters", entries)
	}
	// insertion order is preserved
	if entries[0].Name != "Tokens" || entries[1].Name != "Nodes" {
		t.Errorf("entry order = %v", entries)
	}
}

func TestStatsString(t *testing.T) {
	st := NewStats()
	st.Add("SCANNER", "Tokens", 4)
	if !strings.Contains(st.String(), "SCANNER\tTokens\t4") {
		t.Errorf("String() = %q", st.String())
	}
}
