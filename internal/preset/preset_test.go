package preset

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/hackolade/plugin-migrate/internal/manifest"
)

func TestDefault(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	if len(p.DevDependencies) != 9 {
		t.Errorf("DevDependencies len = %d, want 9", len(p.DevDependencies))
	}
	found := false
	for _, dep := range p.DevDependencies {
		if dep == "lint-staged@14.0.1" {
			found = true
		}
	}
	if !found {
		t.Error("lint-staged should be pinned to 14.0.1")
	}
}

func TestAuxiliary(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	aux := p.Auxiliary()

	tests := []struct {
		name  string
		pairs manifest.Pairs
		want  string
	}{
		{"lint-staged", aux.LintStaged, `{"*.{js,json}":"prettier --write"}`},
		{"git hooks", aux.GitHooks, `{"pre-commit":"npx lint-staged","pre-push":"npx eslint ."}`},
		{"scripts", aux.Scripts, `{"lint":"eslint . --max-warnings=0","package":"node esbuild.package.js"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.pairs.MarshalJSON()
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCommands(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	install := p.InstallCommand("/repo")
	if install.Dir != "/repo" {
		t.Errorf("Dir = %q, want /repo", install.Dir)
	}
	wantPrefix := "npm i -D --save-exact esbuild esbuild-plugin-clean"
	if got := install.String(); !strings.HasPrefix(got, wantPrefix) {
		t.Errorf("install command = %q, want prefix %q", got, wantPrefix)
	}
	if !strings.HasSuffix(install.String(), "@hackolade/hck-esbuild-plugins-pack") {
		t.Errorf("install command = %q", install.String())
	}

	// Building the install command must not grow the shared preset slices.
	again := p.InstallCommand("/repo")
	if len(again.Args) != len(install.Args) {
		t.Errorf("install args changed between calls: %d vs %d", len(again.Args), len(install.Args))
	}

	if got := p.GitHooksCommand("").String(); got != "npx simple-git-hooks" {
		t.Errorf("git hooks command = %q", got)
	}
	if got := p.FormatCommand("").Args; len(got) != 3 || got[1] != "./**/*.{js,json}" {
		t.Errorf("format args = %v", got)
	}
	if got := p.LintCommand("").String(); got != "npm run lint" {
		t.Errorf("lint command = %q", got)
	}
}

func TestParse_EmptyCommand(t *testing.T) {
	_, err := Parse([]byte("commands:\n  install: [npm, i]\n"))
	if err == nil {
		t.Fatal("expected error for preset without all commands, got nil")
	}
}

func TestRequiredConfigs(t *testing.T) {
	configs := RequiredConfigs()
	for _, name := range []string{".eslintrc", ".eslintignore", ".prettierrc", ".prettierignore", "esbuild.package.js", "buildConstants.js"} {
		if _, err := fs.Stat(configs, name); err != nil {
			t.Errorf("required config %s missing: %v", name, err)
		}
	}
}
