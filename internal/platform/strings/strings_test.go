package strings

import "testing"

func TestIfEmpty(t *testing.T) {
	t.Parallel()

	// a populated header list is kept as-is
	headers := []string{"Accept", "Content-Type"}
	fallback := []string{"*"}
	if got := IfEmpty(headers, fallback); len(got) != 2 || got[0] != "Accept" {
		t.Fatalf("IfEmpty returned wrong slice: %#v", got)
	}

	// an empty list falls back to the default
	var none []string
	if got := IfEmpty(none, fallback); len(got) != 1 || got[0] != "*" {
		t.Fatalf("IfEmpty did not return default: %#v", got)
	}
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"/accounts/":   "/accounts",
		" meta  ":      "/meta",
		"//accounts//": "/accounts",
		"/":            "", // should panic
		"":             "", // should panic
	}
	for in, want := range cases {
		if want == "" {
			func() {
				defer func() {
					if recover() == nil {
						t.Fatalf("want panic for %q", in)
					}
				}()
				_ = MustPrefix(in)
			}()
			continue
		}
		if got := MustPrefix(in); got != want {
			t.Fatalf("in %q want %q got %q", in, want, got)
		}
	}
}

func TestMustString(t *testing.T) {
	if got := MustString("explore", "module name"); got != "explore" {
		t.Fatalf("MustString = %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("want panic for blank name")
		}
	}()
	_ = MustString("   ", "module name")
}
