package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Version and Commit are stamped by the release build:
//
//	go build -ldflags="-X github.com/muurk/textterm/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/textterm/internal/version.Commit=abc123"
//
// Unstamped builds fall back to the VCS settings recorded by the toolchain.
var (
	Version = ""
	Commit  = ""
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fromVCS(info.Settings)
	}
	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102-150405")
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromVCS fills whichever of Version and Commit were not stamped.
func fromVCS(settings []debug.BuildSetting) {
	vcs := make(map[string]string, len(settings))
	for _, s := range settings {
		vcs[s.Key] = s.Value
	}

	if rev := vcs["vcs.revision"]; Commit == "" && rev != "" {
		if len(rev) > 7 {
			rev = rev[:7]
		}
		if vcs["vcs.modified"] == "true" {
			rev += "-dirty"
		}
		Commit = rev
	}
	if Version == "" {
		if t, err := time.Parse(time.RFC3339, vcs["vcs.time"]); err == nil {
			Version = "dev-" + t.Format("20060102")
		}
	}
}

// Full returns the version including the commit.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// About is the text of the About box and "textterm version".
func About() string {
	return fmt.Sprintf("textterm %s\nA text terminal for interactive console programs.", Full())
}
