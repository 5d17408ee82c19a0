package config_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/adrg/xdg"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-markup/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := config.Config{OutDir: "dist", ClassPrefix: "c", ClassLength: 6}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "markup.toml", "out_dir = \"public\"\nclass_prefix = \"m-\"\nverbosity = 1\n")
	t.Setenv("MARKUP_CLASS_LENGTH", "10")
	t.Setenv("MARKUP_OUT_DIR", "site")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := config.Config{OutDir: "site", ClassPrefix: "m-", ClassLength: 10, Verbosity: 1}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	name, err := cfg.ClassNamer().ClassName()
	if err != nil {
		t.Fatalf("class name: %v", err)
	}
	if !regexp.MustCompile(`^m-[0-9a-z]{10}$`).MatchString(name) {
		t.Fatalf("unexpected class name %q", name)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "markup.yaml", "context: site.toml\nclass_length: 8\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Context != "site.toml" || cfg.ClassLength != 8 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name string
		path string
	}{
		{"unsupported extension", writeFile(t, dir, "markup.ini", "x=1")},
		{"missing file", filepath.Join(dir, "absent.toml")},
		{"invalid length", writeFile(t, dir, "bad.toml", "class_length = 0\n")},
		{"empty out dir", writeFile(t, dir, "empty.toml", "out_dir = \" \"\n")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := config.Load(tc.path); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	if got := config.Discover(dir); got != "" {
		t.Fatalf("expected no file, got %q", got)
	}

	writeFile(t, dir, "markup.yml", "verbosity: 2\n")
	toml := writeFile(t, dir, ".markup.toml", "verbosity = 1\n")
	if got := config.Discover(dir); got != toml {
		t.Fatalf("expected %q, got %q", toml, got)
	}
}

func TestDiscoverAll_FallsBackToUserDir(t *testing.T) {
	home := t.TempDir()
	// registered first so it runs after Setenv restores the variable
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", home)
	xdg.Reload()

	if err := os.MkdirAll(filepath.Join(home, "markup"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	user := writeFile(t, filepath.Join(home, "markup"), "markup.toml", "verbosity = 3\n")

	project := t.TempDir()
	if got := config.DiscoverAll(project); got != user {
		t.Fatalf("expected user config %q, got %q", user, got)
	}

	local := writeFile(t, project, "markup.toml", "verbosity = 1\n")
	if got := config.DiscoverAll(project); got != local {
		t.Fatalf("project config should win, got %q", got)
	}
}
