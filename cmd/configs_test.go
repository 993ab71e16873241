package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kubie/internal/settings"
)

// mockHome points the locator at an empty temp home so the test host's
// real settings and kubeconfigs cannot leak in.
func mockHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	original := userHomeDir
	userHomeDir = func() (string, error) { return home, nil }
	t.Cleanup(func() { userHomeDir = original })
	t.Setenv(settings.EnvKubeconfig, "")
	t.Setenv(settings.EnvXDGConfigHome, "")
	return home
}

func TestConfigsCommandPlainOutput(t *testing.T) {
	mockHome(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "cluster.yaml")
	if err := os.WriteFile(configPath, []byte("apiVersion: v1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(settings.EnvKubeconfig, configPath)

	configsCmd := newConfigsCmd()
	var buf bytes.Buffer
	configsCmd.SetOut(&buf)
	configsCmd.SetArgs([]string{"--plain"})

	if err := configsCmd.Execute(); err != nil {
		t.Fatalf("Error executing configs command: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 || lines[0] != configPath {
		t.Errorf("Expected single line %q, got %q", configPath, buf.String())
	}
}

func TestConfigsCommandEmptySet(t *testing.T) {
	mockHome(t)

	configsCmd := newConfigsCmd()
	var buf bytes.Buffer
	configsCmd.SetOut(&buf)
	configsCmd.SetArgs([]string{"--plain"})

	if err := configsCmd.Execute(); err != nil {
		t.Fatalf("Error executing configs command: %v", err)
	}

	if strings.TrimSpace(buf.String()) != "" {
		t.Errorf("Expected no output for empty set, got %q", buf.String())
	}
}

func TestRenderConfigsTable(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "cluster.yaml")
	if err := os.WriteFile(configPath, []byte("apiVersion: v1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := renderConfigsTable([]string{configPath, filepath.Join(dir, "gone.yaml")})

	if !strings.Contains(out, "PATH") {
		t.Errorf("Expected header in table output, got %q", out)
	}
	if !strings.Contains(out, configPath) {
		t.Errorf("Expected path in table output, got %q", out)
	}
	if !strings.Contains(out, "-") {
		t.Errorf("Expected placeholder for missing file, got %q", out)
	}
}
