//go:build integration

package integration_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds the paths of an isolated migration run.
type testEnv struct {
	RepoDir string // plugin repository under migration
	BinDir  string // stub npm/npx placed first on PATH
	LogFile string // every stub invocation, one per line
}

// setupTestEnv creates a plugin repository and stub npm/npx binaries that
// record their argv instead of touching the network.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub binaries are shell scripts")
	}

	env := &testEnv{
		RepoDir: t.TempDir(),
		BinDir:  t.TempDir(),
	}
	env.LogFile = filepath.Join(env.BinDir, "calls.log")

	for _, name := range []string{"npm", "npx"} {
		script := "#!/bin/sh\n" +
			"echo \"" + name + " $*\" >> \"" + env.LogFile + "\"\n" +
			"case \"$STUB_FAIL\" in *\"" + name + " $1\"*) exit 1;; esac\n"
		writeFile(t, filepath.Join(env.BinDir, name), script, 0755)
	}
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("NO_COLOR", "1")

	writeFile(t, filepath.Join(env.RepoDir, "package.json"), `{
    "name": "test-plugin",
    "version": "0.2.9",
    "author": "hackolade",
    "dependencies": {
        "lodash": "4.17.21"
    }
}`, 0644)
	writeFile(t, filepath.Join(env.RepoDir, "forward_engineering", "package.json"), `{
    "name": "fe",
    "dependencies": {
        "lodash": "^4.17.20",
        "ajv": "~8.12.0"
    }
}`, 0644)
	writeFile(t, filepath.Join(env.RepoDir, "reverse_engineering", "package.json"), `{
    "name": "re",
    "dependencies": {
        "lodash": "4.17.21",
        "pg": "^8.11.3"
    }
}`, 0644)
	writeFile(t, filepath.Join(env.RepoDir, "forward_engineering", "node_modules", "ajv", "index.js"), "", 0644)
	writeFile(t, filepath.Join(env.RepoDir, "reverse_engineering", "package-lock.json"), "{}", 0644)

	return env
}

// calls returns the recorded stub invocations.
func (e *testEnv) calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(e.LogFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading stub log: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func writeFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readJSON(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	var v map[string]any
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
	return v
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be removed, stat error = %v", path, err)
	}
}
