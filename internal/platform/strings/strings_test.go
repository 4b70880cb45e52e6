package strings

import "testing"

func TestIfEmpty(t *testing.T) {
	t.Parallel()

	// non-empty slice should be returned as-is
	in := []int{1, 2, 3}
	def := []int{9}
	got := IfEmpty(in, def)
	if len(got) != 3 || got[0] != 1 {
		t.Fatalf("IfEmpty returned wrong slice: %#v", got)
	}

	// empty slice should fall back to default
	var empty []string
	def2 := []string{"x"}
	got2 := IfEmpty(empty, def2)
	if len(got2) != 1 || got2[0] != "x" {
		t.Fatalf("IfEmpty did not return default: %#v", got2)
	}
}

func TestMustString(t *testing.T) {
	t.Parallel()

	if got := MustString("ok", "field"); got != "ok" {
		t.Fatalf("MustString returned %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("MustString should panic on blank input")
		}
	}()
	_ = MustString("   ", "field")
}

func TestMustPrefix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"classify", "/classify"},
		{"/classify", "/classify"},
		{"  /classify/  ", "/classify"},
		{"a/b", "/a/b"},
	}
	for _, c := range cases {
		if got := MustPrefix(c.in); got != c.want {
			t.Errorf("MustPrefix(%q)=%q want %q", c.in, got, c.want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("MustPrefix should panic on empty path")
		}
	}()
	_ = MustPrefix("  / ")
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"shorter than limit", "abc", 10, "abc"},
		{"exact limit", "abc", 3, "abc"},
		{"cut ascii", "abcdef", 4, "abcd"},
		{"zero", "abc", 0, ""},
		{"negative", "abc", -1, ""},
		{"no mid-rune split", "aéb", 2, "a"},
		{"multibyte kept whole", "aéb", 3, "aé"},
	}
	for _, c := range cases {
		if got := Truncate(c.in, c.n); got != c.want {
			t.Errorf("%s: Truncate(%q,%d)=%q want %q", c.name, c.in, c.n, got, c.want)
		}
	}
}
