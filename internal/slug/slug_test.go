package slug

import "testing"

func TestMake(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello, World!!", "hello-world"},
		{"  Multi   Space--Title ", "multi-space-title"},
		{"already-a-slug", "already-a-slug"},
		{"Göland & Friends", "gland-friends"},
		{"UPPER lower 123", "upper-lower-123"},
		{"---", "-"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Make(c.title); got != c.want {
			t.Errorf("Make(%q) = %q, want %q", c.title, got, c.want)
		}
	}
}

func TestMakeCollision(t *testing.T) {
	// titles that differ only in punctuation/casing must collide
	a := Make("Hello, World!!")
	b := Make("hello world")
	if a != b {
		t.Fatalf("expected %q and %q to collide", a, b)
	}
}
