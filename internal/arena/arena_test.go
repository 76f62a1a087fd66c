package arena_test

import (
	"testing"

	"exptree/internal/arena"
)

func TestAllocIsDistinct(t *testing.T) {
	a := arena.New[int](4)
	seen := make(map[*int]bool)
	for i := 0; i < 20; i++ {
		p := a.Alloc()
		if seen[p] {
			t.Fatalf("Alloc returned a duplicate pointer at i=%d", i)
		}
		seen[p] = true
		*p = i
	}
	if a.Allocated() != 20 {
		t.Fatalf("Allocated() = %d, want 20", a.Allocated())
	}
}

func TestAllocSpansSlabs(t *testing.T) {
	a := arena.New[int](2)
	vals := make([]*int, 5)
	for i := range vals {
		vals[i] = a.Alloc()
		*vals[i] = i
	}
	for i, p := range vals {
		if *p != i {
			t.Fatalf("value at slot %d was clobbered: got %d", i, *p)
		}
	}
}

func TestResetClearsAccounting(t *testing.T) {
	a := arena.New[int](4)
	for i := 0; i < 10; i++ {
		a.Alloc()
	}
	a.Reset()
	if a.Allocated() != 0 {
		t.Fatalf("Allocated() after Reset = %d, want 0", a.Allocated())
	}
	p := a.Alloc()
	if *p != 0 {
		t.Fatalf("Alloc after Reset returned non-zero value %d", *p)
	}
}

func TestZeroValueArenaIsUsable(t *testing.T) {
	var a arena.Arena[struct{ X int }]
	p := a.Alloc()
	p.X = 42
	if a.Allocated() != 1 {
		t.Fatalf("Allocated() = %d, want 1", a.Allocated())
	}
}
