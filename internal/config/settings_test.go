package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/muurk/textterm/internal/design"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "textterm") {
		t.Errorf("GetConfigDir() = %v, should contain 'textterm'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if os.Getenv("XDG_CONFIG_HOME") == "" && !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigDirHonorsXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if got != filepath.Join(dir, "textterm") {
		t.Errorf("GetConfigDir() = %v, want %v", got, filepath.Join(dir, "textterm"))
	}
}

func TestGetConfigPathAndLogPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}

	logPath, err := DefaultLogPath()
	if err != nil {
		t.Fatalf("DefaultLogPath() error = %v", err)
	}
	if filepath.Dir(logPath) != filepath.Dir(configPath) {
		t.Errorf("DefaultLogPath() = %v, want it next to %v", logPath, configPath)
	}
}

func TestNewSettings(t *testing.T) {
	s := NewSettings()

	if s.Version != CurrentVersion {
		t.Errorf("NewSettings().Version = %v, want %v", s.Version, CurrentVersion)
	}
	if s.Design == nil || *s.Design != design.Default() {
		t.Error("NewSettings().Design should be the default design")
	}
	if s.Preferences == nil || !s.Preferences.AltScreen {
		t.Error("NewSettings().Preferences.AltScreen should be true by default")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.CurrentDesign() != design.Default() {
		t.Errorf("CurrentDesign() = %+v, want default", s.CurrentDesign())
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	s := NewSettings()
	s.SetDesign(design.Default().WithErrorColor("#aa0000").WithFont(design.Font{Family: "Mono", Size: 14, Bold: true}))
	s.Preferences.Title = "Calculator"

	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# textterm configuration file") {
		t.Error("saved file should start with the header comment")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	d := loaded.CurrentDesign()
	if d.ErrorColor != "#aa0000" {
		t.Errorf("loaded ErrorColor = %v, want #aa0000", d.ErrorColor)
	}
	if d.Font.Size != 14 || !d.Font.Bold || d.Font.Family != "Mono" {
		t.Errorf("loaded Font = %+v", d.Font)
	}
	if loaded.Preferences.Title != "Calculator" {
		t.Errorf("loaded Title = %v, want Calculator", loaded.Preferences.Title)
	}
}

func TestLoadPartialDesign(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `version: 1
design:
  text_color: "#ffffff"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	d := s.CurrentDesign()
	if d.TextColor != "#ffffff" {
		t.Errorf("TextColor = %v, want #ffffff", d.TextColor)
	}
	if d.BackColor != design.DefaultBackColor {
		t.Errorf("BackColor = %v, want default", d.BackColor)
	}
	if s.Preferences == nil {
		t.Error("Preferences should be filled with defaults")
	}
}

func TestLoadWithoutVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `design:
  warning_color: "#ffaa00"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Version != CurrentVersion {
		t.Errorf("Version = %d, want %d", s.Version, CurrentVersion)
	}
	if d := s.CurrentDesign(); d.WarningColor != "#ffaa00" {
		t.Errorf("WarningColor = %v, want #ffaa00", d.WarningColor)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := map[string]string{
		"wrong version": "version: 2\n",
		"bad yaml":      "version: [\n",
		"bad color":     "version: 1\ndesign:\n  error_color: red\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestResetDesign(t *testing.T) {
	s := NewSettings()
	s.SetDesign(design.Default().WithBackColor("#000000"))
	s.ResetDesign()

	if s.CurrentDesign() != design.Default() {
		t.Error("ResetDesign() should restore the default design")
	}

	s.Design = nil
	if s.CurrentDesign() != design.Default() {
		t.Error("CurrentDesign() with nil design should be the default")
	}
}

func BenchmarkGetConfigDir(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GetConfigDir()
	}
}
