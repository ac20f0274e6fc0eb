package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, data string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	path := filepath.Join(home, "hexcard", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestTypesIgnoresBrokenFonts(t *testing.T) {
	writeConfig(t, `[fonts.title]
path = "/does/not/exist.ttf"
`)

	if _, err := setup(typesCmd); err == nil {
		t.Fatalf("expected setup to fail on the missing font")
	}
	if err := typesCmd.RunE(typesCmd, nil); err != nil {
		t.Fatalf("types: %v", err)
	}
}

func TestTypesRejectsBadPalette(t *testing.T) {
	writeConfig(t, `[palette]
snow = "not-a-color"
`)

	if err := typesCmd.RunE(typesCmd, nil); err == nil {
		t.Fatalf("expected an error for the bad palette entry")
	}
}

func TestExecuteRunsSubcommand(t *testing.T) {
	writeConfig(t, "")
	RootCmd.SetArgs([]string{"types"})
	t.Cleanup(func() { RootCmd.SetArgs(nil) })

	if err := Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}
