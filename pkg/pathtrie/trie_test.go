package pathtrie

import "testing"

func TestPutGetExactMatch(t *testing.T) {
	tr := New[int]()
	tr.Put("/bench/seed=1/n=100", 1)
	tr.Put("/bench/seed=2/n=100", 2)
	tr.Put("/bench/seed=1/n=200", 3)

	cases := []struct {
		path string
		want int
		ok   bool
	}{
		{"/bench/seed=1/n=100", 1, true},
		{"/bench/seed=2/n=100", 2, true},
		{"/bench/seed=1/n=200", 3, true},
		{"/bench/seed=1/n=999", 0, false},
		{"/missing", 0, false},
	}
	for _, c := range cases {
		got, ok := tr.Get(c.path)
		if ok != c.ok || (ok && got != c.want) {
			t.Fatalf("Get(%q) = (%d,%v), want (%d,%v)", c.path, got, ok, c.want, c.ok)
		}
	}
}

func TestPutOverwritesExistingPath(t *testing.T) {
	tr := New[string]()
	tr.Put("/a/b", "first")
	tr.Put("/a/b", "second")
	got, ok := tr.Get("/a/b")
	if !ok || got != "second" {
		t.Fatalf("Get(/a/b) = (%q,%v), want (second,true)", got, ok)
	}
}

func TestPrefixSplittingPreservesSiblings(t *testing.T) {
	tr := New[int]()
	tr.Put("/team/alpha", 1)
	tr.Put("/team/alphabet", 2)
	tr.Put("/team/beta", 3)

	for path, want := range map[string]int{"/team/alpha": 1, "/team/alphabet": 2, "/team/beta": 3} {
		got, ok := tr.Get(path)
		if !ok || got != want {
			t.Fatalf("Get(%q) = (%d,%v), want (%d,true)", path, got, ok, want)
		}
	}
}

func TestPrefixCount(t *testing.T) {
	tr := New[int]()
	for i, p := range []string{
		"/bench/seed=1/n=100",
		"/bench/seed=1/n=200",
		"/bench/seed=1/n=300",
		"/bench/seed=2/n=100",
	} {
		tr.Put(p, i)
	}
	if got := tr.PrefixCount("/bench/seed=1/"); got != 3 {
		t.Fatalf("PrefixCount(seed=1) = %d, want 3", got)
	}
	if got := tr.PrefixCount("/bench/"); got != 4 {
		t.Fatalf("PrefixCount(/bench/) = %d, want 4", got)
	}
	if got := tr.PrefixCount("/missing"); got != 0 {
		t.Fatalf("PrefixCount(/missing) = %d, want 0", got)
	}
}

func TestEmptyTrie(t *testing.T) {
	tr := New[int]()
	if _, ok := tr.Get("/anything"); ok {
		t.Fatal("Get on empty trie should report absence")
	}
	if got := tr.PrefixCount("/anything"); got != 0 {
		t.Fatalf("PrefixCount on empty trie = %d, want 0", got)
	}
}
