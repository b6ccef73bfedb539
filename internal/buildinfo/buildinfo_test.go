package buildinfo

import "testing"

func TestShortPrefersVersion(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "dev", "unknown"
	if got := Short(); got != "dev" {
		t.Fatalf("Short() = %q, want dev", got)
	}
	Commit = "abc123"
	if got := Short(); got != "abc123" {
		t.Fatalf("Short() = %q, want commit", got)
	}
	Version = "v1.2.0"
	if got := Short(); got != "v1.2.0" {
		t.Fatalf("Short() = %q, want version", got)
	}
}

func TestLong(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v1", "abc", "2026-01-02"
	if got, want := Long(), "v1 (abc, 2026-01-02)"; got != want {
		t.Fatalf("Long() = %q, want %q", got, want)
	}
}
