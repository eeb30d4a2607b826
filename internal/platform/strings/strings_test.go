package strings

import (
	"testing"

	kit "github-activity/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	def := []string{"GET"}
	if got := IfEmpty(nil, def); len(got) != 1 || got[0] != "GET" {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	if got := IfEmpty([]string{"POST"}, def); got[0] != "POST" {
		t.Fatalf("IfEmpty kept = %v", got)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString("activity", "module name"); got != "activity" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { MustString(" \t", "module name") })
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"activity":    "/activity",
		"/meta/":      "/meta",
		"  /a/b/  ":   "/a/b",
		"//activity/": "/activity",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	kit.MustPanic(t, func() { MustPrefix(" / ") })
	kit.MustPanic(t, func() { MustPrefix("") })
}
