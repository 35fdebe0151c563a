package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultMainBranch is used when no config file names a main branch.
const DefaultMainBranch = "master"

// RepoFileName is the per-repository config file, looked up at the repo root.
const RepoFileName = ".gitpro.yaml"

// globalFileName is the config file inside Dir().
const globalFileName = "config.yaml"

// Config holds gitpro settings. The main branch used to be a hard-coded
// constant; it is now resolved per invocation from config files and flags.
type Config struct {
	MainBranch string `yaml:"main_branch"`
}

// Load resolves the effective configuration for a repository rooted at
// repoRoot. Precedence, lowest to highest: built-in default, global
// config.yaml in Dir(), .gitpro.yaml at the repo root. Missing files are
// not errors; malformed files are.
func Load(repoRoot string) (Config, error) {
	cfg := Config{MainBranch: DefaultMainBranch}

	if dir := Dir(); dir != "" {
		if err := mergeFile(&cfg, filepath.Join(dir, globalFileName)); err != nil {
			return Config{}, err
		}
	}

	if repoRoot != "" {
		if err := mergeFile(&cfg, filepath.Join(repoRoot, RepoFileName)); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// mergeFile overlays settings from path onto cfg. A missing file is a no-op.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from config resolution
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	if file.MainBranch != "" {
		cfg.MainBranch = file.MainBranch
	}
	return nil
}
