package preset

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"go.yaml.in/yaml/v3"

	"github.com/hackolade/plugin-migrate/internal/command"
	"github.com/hackolade/plugin-migrate/internal/manifest"
)

//go:embed preset.yaml
var rawPreset []byte

//go:embed all:required_configs
var requiredConfigsFS embed.FS

const requiredConfigsDir = "required_configs"

var (
	once       sync.Once
	defaults   *Preset
	defaultErr error
)

// Entry is one ordered key/value line of a manifest tooling block.
type Entry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Commands holds the argv of each external tool invocation.
type Commands struct {
	Install  []string `yaml:"install"`
	GitHooks []string `yaml:"git_hooks"`
	Format   []string `yaml:"format"`
	Lint     []string `yaml:"lint"`
}

// Preset is the standard tooling definition applied to a plugin repository.
type Preset struct {
	DevDependencies []string `yaml:"dev_dependencies"`
	LintStaged      []Entry  `yaml:"lint_staged"`
	GitHooks        []Entry  `yaml:"git_hooks"`
	Scripts         []Entry  `yaml:"scripts"`
	Commands        Commands `yaml:"commands"`
}

// Default returns the embedded preset. It is parsed once; callers must not
// modify the returned value.
func Default() (*Preset, error) {
	once.Do(func() {
		defaults, defaultErr = Parse(rawPreset)
	})
	return defaults, defaultErr
}

// Parse decodes a preset from YAML and checks that every command is set.
func Parse(data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing preset: %w", err)
	}

	required := map[string][]string{
		"install":   p.Commands.Install,
		"git_hooks": p.Commands.GitHooks,
		"format":    p.Commands.Format,
		"lint":      p.Commands.Lint,
	}
	for name, argv := range required {
		if len(argv) == 0 {
			return nil, fmt.Errorf("preset command %q is empty", name)
		}
	}
	return &p, nil
}

// Auxiliary returns the manifest tooling blocks of the preset.
func (p *Preset) Auxiliary() manifest.AuxiliaryConfig {
	return manifest.AuxiliaryConfig{
		LintStaged: toPairs(p.LintStaged),
		GitHooks:   toPairs(p.GitHooks),
		Scripts:    toPairs(p.Scripts),
	}
}

// InstallCommand installs the development dependencies with exact versions.
func (p *Preset) InstallCommand(dir string) command.Command {
	argv := append(append([]string{}, p.Commands.Install...), p.DevDependencies...)
	return newCommand(argv, dir)
}

// GitHooksCommand registers the git hooks declared in the manifest.
func (p *Preset) GitHooksCommand(dir string) command.Command {
	return newCommand(p.Commands.GitHooks, dir)
}

// FormatCommand formats the repository's JS and JSON files.
func (p *Preset) FormatCommand(dir string) command.Command {
	return newCommand(p.Commands.Format, dir)
}

// LintCommand runs the repository linter.
func (p *Preset) LintCommand(dir string) command.Command {
	return newCommand(p.Commands.Lint, dir)
}

// RequiredConfigs returns the configuration files copied into every plugin
// repository, rooted at the repository root.
func RequiredConfigs() fs.FS {
	sub, err := fs.Sub(requiredConfigsFS, requiredConfigsDir)
	if err != nil {
		// The directory is embedded at build time.
		panic(err)
	}
	return sub
}

func newCommand(argv []string, dir string) command.Command {
	return command.Command{
		Name: argv[0],
		Args: append([]string{}, argv[1:]...),
		Dir:  dir,
	}
}

func toPairs(entries []Entry) manifest.Pairs {
	pairs := make(manifest.Pairs, len(entries))
	for i, e := range entries {
		pairs[i] = manifest.Pair{Key: e.Key, Value: e.Value}
	}
	return pairs
}
