package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFull(t *testing.T) {
	if Version == "" || Commit == "" {
		t.Fatal("init should populate Version and Commit")
	}
	if got := Full(); !strings.Contains(got, Version) || !strings.Contains(got, Commit) {
		t.Errorf("Full() = %q, want version and commit", got)
	}
}

func TestAbout(t *testing.T) {
	if got := About(); !strings.HasPrefix(got, "textterm "+Full()+"\n") {
		t.Errorf("About() = %q", got)
	}
}

func TestFromVCS(t *testing.T) {
	savedVersion, savedCommit := Version, Commit
	defer func() { Version, Commit = savedVersion, savedCommit }()

	tests := []struct {
		name        string
		version     string
		commit      string
		settings    []debug.BuildSetting
		wantVersion string
		wantCommit  string
	}{
		{
			name: "clean checkout",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
			},
			wantVersion: "dev-20260304",
			wantCommit:  "0123456",
		},
		{
			name: "dirty tree",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.modified", Value: "true"},
			},
			wantCommit: "abc-dirty",
		},
		{
			name:        "stamped values win",
			version:     "v1.0.0",
			commit:      "feed",
			settings:    []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789"}},
			wantVersion: "v1.0.0",
			wantCommit:  "feed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit = tt.version, tt.commit
			fromVCS(tt.settings)
			if Version != tt.wantVersion || Commit != tt.wantCommit {
				t.Errorf("fromVCS() = %q, %q; want %q, %q", Version, Commit, tt.wantVersion, tt.wantCommit)
			}
		})
	}
}
