package config

import (
	"reflect"
	"testing"
	"time"

	kit "listingseo/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	api := New().Prefix("CORE_")
	if got := api.Key("PORT"); got != "CORE_PORT" {
		t.Fatalf("Key() = %q", got)
	}
	if got := api.Prefix("API_").Key("PORT"); got != "CORE_API_PORT" {
		t.Fatalf("nested Key() = %q", got)
	}
}

func TestEnvIsRead(t *testing.T) {
	t.Setenv("CORE_API_NAME", "  listingseo ")
	if got := New().Prefix("CORE_API_").MustString("NAME"); got != "listingseo" {
		t.Fatalf("MustString = %q", got)
	}
	var zero Conf
	if got := zero.MayString("CORE_API_NAME", "x"); got != "listingseo" {
		t.Fatalf("zero Conf should read the environment, got %q", got)
	}
}

func TestMust(t *testing.T) {
	c := FromMap(map[string]string{"S_WORKERS": " 8 ", "S_BAD": "x"}).Prefix("S_")
	if got := c.MustInt("WORKERS"); got != 8 {
		t.Fatalf("MustInt = %d", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
	kit.MustPanic(t, func() { _ = c.MustInt("MISSING") })
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
}

func TestMay(t *testing.T) {
	c := FromMap(map[string]string{
		"N":      "12",
		"N_BAD":  "twelve",
		"B":      "true",
		"B_BAD":  "sure",
		"D":      "250ms",
		"D_BAD":  "soon",
		"CSV":    " a, ,b ,",
		"CSV_NO": " , ",
	})

	if c.MayString("MISSING", "def") != "def" {
		t.Fatalf("MayString default")
	}
	if c.MayInt("N", 1) != 12 || c.MayInt("N_BAD", 1) != 1 || c.MayInt("MISSING", 3) != 3 {
		t.Fatalf("MayInt")
	}
	if !c.MayBool("B", false) || c.MayBool("B_BAD", false) || !c.MayBool("MISSING", true) {
		t.Fatalf("MayBool")
	}
	if c.MayDuration("D", time.Second) != 250*time.Millisecond || c.MayDuration("D_BAD", time.Second) != time.Second {
		t.Fatalf("MayDuration")
	}
	if got := c.MayCSV("CSV", nil); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("MayCSV = %v", got)
	}
	if got := c.MayCSV("CSV_NO", []string{"*"}); !reflect.DeepEqual(got, []string{"*"}) {
		t.Fatalf("MayCSV blank = %v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := FromMap(map[string]string{"LOCALE": "EN", "BAD": "de"})
	if got := c.MayEnum("LOCALE", "sv", "sv", "en"); got != "en" {
		t.Fatalf("MayEnum = %q", got)
	}
	if got := c.MayEnum("MISSING", "sv", "sv", "en"); got != "sv" {
		t.Fatalf("MayEnum default = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "sv", "sv", "en") })
}

func TestMayAddr(t *testing.T) {
	c := FromMap(map[string]string{"BARE": "8080", "HOST": "127.0.0.1:9000", "BAD": "99999", "WORD": ":http"})
	cases := map[string]string{"BARE": ":8080", "HOST": "127.0.0.1:9000", "MISSING": ":4000"}
	for k, want := range cases {
		if got := c.MayAddr(k, ":4000"); got != want {
			t.Fatalf("MayAddr(%s) = %q, want %q", k, got, want)
		}
	}
	kit.MustPanic(t, func() { _ = c.MayAddr("BAD", ":4000") })
	kit.MustPanic(t, func() { _ = c.MayAddr("WORD", ":4000") })
}
