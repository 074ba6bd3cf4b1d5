package version

import (
	"strings"
	"testing"
)

func saveAndRestore(t *testing.T) {
	t.Helper()
	origVersion, origCommit, origBuildTime := Version, GitCommit, BuildTime
	t.Cleanup(func() {
		Version, GitCommit, BuildTime = origVersion, origCommit, origBuildTime
	})
}

func TestGetDefaults(t *testing.T) {
	saveAndRestore(t)
	Version, GitCommit, BuildTime = "dev", "", ""

	info := Get()
	if info.Version != "dev" {
		t.Errorf("Version = %q, want %q", info.Version, "dev")
	}
	if info.GoVersion == "" {
		t.Error("GoVersion should be populated from build info")
	}
}

func TestGetLdflagsWin(t *testing.T) {
	saveAndRestore(t)
	Version, GitCommit, BuildTime = "1.2.0", "3f1c2ab", "2026-01-02T15:04:05Z"

	info := Get()
	if info.Version != "1.2.0" {
		t.Errorf("Version = %q, want %q", info.Version, "1.2.0")
	}
	if info.GitCommit != "3f1c2ab" {
		t.Errorf("GitCommit = %q, want %q", info.GitCommit, "3f1c2ab")
	}
	if info.BuildTime != "2026-01-02T15:04:05Z" {
		t.Errorf("BuildTime = %q, want %q", info.BuildTime, "2026-01-02T15:04:05Z")
	}
}

func TestShort(t *testing.T) {
	saveAndRestore(t)
	Version, GitCommit, BuildTime = "1.2.0", "3f1c2ab", ""

	got := Short()
	if !strings.HasPrefix(got, "1.2.0-3f1c2ab") {
		t.Errorf("Short() = %q, want prefix %q", got, "1.2.0-3f1c2ab")
	}
}

func TestShorten(t *testing.T) {
	if got := shorten("0123456789abcdef"); got != "0123456" {
		t.Errorf("shorten() = %q, want %q", got, "0123456")
	}
	if got := shorten("abc"); got != "abc" {
		t.Errorf("shorten() = %q, want %q", got, "abc")
	}
}
