package raw

import "testing"

func TestGet(t *testing.T) {
	c := New().Prefix("LOG_")
	t.Setenv("LOG_LEVEL", "  debug ")
	if got := c.Get("LEVEL", "info"); got != "debug" {
		t.Fatalf("Get = %q", got)
	}
	if got := c.Get("FORMAT", "console"); got != "console" {
		t.Fatalf("Get default = %q", got)
	}
}

func TestGetBool(t *testing.T) {
	c := New().Prefix("B_")
	cases := map[string]bool{"1": true, "TRUE": true, "yes": true, "on": true, "0": false, "nope": false}
	for v, want := range cases {
		t.Setenv("B_X", v)
		if got := c.GetBool("X", !want); got != want {
			t.Fatalf("GetBool(%q) = %v", v, got)
		}
	}
	if !c.GetBool("UNSET", true) {
		t.Fatalf("default expected")
	}
}

func TestGetInt(t *testing.T) {
	c := New().Prefix("I_")
	cases := map[string]int{"42": 42, " 7 ": 7, "-3": 5, "x1": 5, "": 5}
	for v, want := range cases {
		t.Setenv("I_N", v)
		if got := c.GetInt("N", 5); got != want {
			t.Fatalf("GetInt(%q) = %d, want %d", v, got, want)
		}
	}
}
