package menunav

import "testing"

// groupAt builds a one-element group for panel p centred on (x, y).
func groupAt(t *testing.T, p Panel, x, y float64) *ContentGroup {
	t.Helper()
	g, ok := BuildGroup(p, []Element{elem("e", x, y)}, DefaultSettings())
	if !ok {
		t.Fatal("BuildGroup failed")
	}
	return g
}

func TestRegistryAddCapacity(t *testing.T) {
	r := NewRegistry(2)
	p1, p2, p3 := NewElementPanel("1"), NewElementPanel("2"), NewElementPanel("3")
	if !r.Add(groupAt(t, p1, 0, 0)) || !r.Add(groupAt(t, p2, 0, 10)) {
		t.Fatal("Add within capacity failed")
	}
	if r.Add(groupAt(t, p3, 0, 20)) {
		t.Error("Add beyond capacity should fail")
	}
	if r.Len() != 2 || r.Cap() != 2 {
		t.Errorf("Len/Cap = %d/%d, want 2/2", r.Len(), r.Cap())
	}
	if r.Contains(p3) {
		t.Error("rejected panel should not be registered")
	}
}

func TestRegistryDuplicatePanel(t *testing.T) {
	r := NewRegistry(0)
	p := NewElementPanel("p")
	r.Add(groupAt(t, p, 0, 0))
	if r.Add(groupAt(t, p, 5, 5)) {
		t.Error("second group for the same panel should be rejected")
	}
	if r.Cap() != DefaultMaxGroups {
		t.Errorf("Cap = %d, want default %d", r.Cap(), DefaultMaxGroups)
	}
}

func TestRegistryReplaceRemove(t *testing.T) {
	r := NewRegistry(4)
	p1, p2, p3 := NewElementPanel("1"), NewElementPanel("2"), NewElementPanel("3")
	g1, g2, g3 := groupAt(t, p1, 0, 0), groupAt(t, p2, 0, 10), groupAt(t, p3, 0, 20)
	r.Add(g1)
	r.Add(g2)
	r.Add(g3)

	g2b := groupAt(t, p2, 1, 10)
	if old := r.Replace(g2b); old != g2 {
		t.Errorf("Replace returned %p, want %p", old, g2)
	}
	if r.At(1) != g2b {
		t.Error("Replace should keep the position")
	}
	if r.Replace(groupAt(t, NewElementPanel("x"), 0, 0)) != nil {
		t.Error("Replace for an unknown panel should return nil")
	}

	if got := r.Remove(p1); got != g1 {
		t.Error("Remove returned the wrong group")
	}
	if r.Len() != 2 || r.At(0) != g2b || r.At(1) != g3 {
		t.Error("Remove should keep activation order")
	}
	if r.Remove(p1) != nil {
		t.Error("second Remove should return nil")
	}

	r.Clear()
	if r.Len() != 0 || r.At(0) != nil {
		t.Error("Clear left groups behind")
	}
}

func TestRegistryFind(t *testing.T) {
	r := NewRegistry(4)
	pa, pb := NewElementPanel("a"), NewElementPanel("b")
	ga, _ := BuildGroup(pa, []Element{elem("x", 0, 0), elem("dup", 1, 0)}, DefaultSettings())
	gb, _ := BuildGroup(pb, []Element{elem("dup", 0, 10), elem("y", 0, 5)}, DefaultSettings())
	r.Add(ga)
	r.Add(gb)

	g, row, col, ok := r.Find("dup")
	if !ok || g != ga || row != 0 || col != 1 {
		t.Errorf("Find(dup) = %p,%d,%d,%v; want first group", g, row, col, ok)
	}
	g, row, col, ok = r.Find("y")
	if !ok || g != gb || row != 1 || col != 0 {
		t.Errorf("Find(y) = %p,%d,%d,%v", g, row, col, ok)
	}
	if _, _, _, ok := r.Find("none"); ok {
		t.Error("Find(none) should fail")
	}
}

func TestRegistryAdjacent(t *testing.T) {
	r := NewRegistry(0)
	center := groupAt(t, NewElementPanel("c"), 0, 0)
	near := groupAt(t, NewElementPanel("near"), 0, 10)
	far := groupAt(t, NewElementPanel("far"), 0, 30)
	below := groupAt(t, NewElementPanel("below"), 0, -10)
	right := groupAt(t, NewElementPanel("right"), 10, 0)
	rightFar := groupAt(t, NewElementPanel("rightFar"), 25, 0)
	for _, g := range []*ContentGroup{center, far, near, below, rightFar, right} {
		r.Add(g)
	}

	tests := []struct {
		dir  Direction
		want *ContentGroup
	}{
		{Up, near},
		{Down, below},
		{Right, right},
		{Left, nil},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := r.Adjacent(center, tt.dir); got != tt.want {
				t.Errorf("Adjacent(%v) = %p, want %p", tt.dir, got, tt.want)
			}
		})
	}

	if got := r.Adjacent(rightFar, Left); got != right {
		t.Errorf("Adjacent(rightFar, Left) = %p, want right", got)
	}
}

func TestRegistryAdjacentSingle(t *testing.T) {
	r := NewRegistry(0)
	g := groupAt(t, NewElementPanel("only"), 0, 0)
	r.Add(g)
	for _, d := range []Direction{Up, Down, Left, Right} {
		if r.Adjacent(g, d) != nil {
			t.Errorf("Adjacent(%v) with one group should be nil", d)
		}
	}
}
