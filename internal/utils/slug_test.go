package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World! 2024", "hello-world-2024"},
		{"Writing middleware in Go", "writing-middleware-in-go"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"MANY---hyphens___here", "many-hyphens-here"},
		{"CamelCaseTitle", "camelcasetitle"},
		{"42", "42"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	titles := []string{"Hello, World! 2024", "Go 1.23 release notes", "a--b--c"}
	for _, title := range titles {
		once := Slugify(title)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q -> %q", title, once, twice)
		}
	}
}
