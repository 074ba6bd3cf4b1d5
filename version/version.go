package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

var (
	// These variables are set at build time using -ldflags.
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info represents version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	IsDirty   bool   `json:"is_dirty,omitempty"`
}

// Get returns version information, preferring ldflags values and falling
// back to the VCS metadata embedded by the toolchain.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = buildInfo.GoVersion

	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = shorten(setting.Value)
			}
		case "vcs.modified":
			info.IsDirty = setting.Value == "true"
		case "vcs.time":
			if info.BuildTime == "" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					info.BuildTime = t.Format(time.RFC3339)
				}
			}
		}
	}

	return info
}

// Short returns a one-line version string such as "dev-3f1c2ab" or
// "1.2.0-3f1c2ab-dirty".
func Short() string {
	info := Get()
	s := info.Version
	if info.GitCommit != "" {
		s = fmt.Sprintf("%s-%s", s, info.GitCommit)
	}
	if info.IsDirty {
		s += "-dirty"
	}
	return s
}

func shorten(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
