package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/octopus-money/octopus/internal/config"
	"github.com/octopus-money/octopus/internal/model"
	"github.com/octopus-money/octopus/internal/rules"
	"github.com/octopus-money/octopus/internal/snapshot"
)

// configFile is the marker file of an octopus data directory.
const configFile = "octopus.yaml"

// rulesFile is the starter rules file written by init.
const rulesFile = "rules.toml"

// env bundles everything a command needs from a data directory.
type env struct {
	cfg   *config.Config
	snap  model.Snapshot
	table []rules.Rule
}

// loadEnv reads config, snapshot, and the effective rule table from a data
// directory. User rules, when configured and present, go ahead of the
// built-in table so they win matching ties.
func loadEnv(dataDir string) (env, error) {
	cfg, err := config.Load(filepath.Join(dataDir, configFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return env{}, fmt.Errorf("%s is not an octopus data directory (run octopus init first)", dataDir)
		}
		return env{}, err
	}

	snap, err := snapshot.Load(dataDir)
	if err != nil {
		return env{}, err
	}

	table, err := loadRules(dataDir, cfg)
	if err != nil {
		return env{}, err
	}

	return env{cfg: cfg, snap: snap, table: table}, nil
}

// loadRules merges the configured user rules file, if any, over the
// built-in table. A configured-but-missing file is fine: init writes a
// commented-out starter that users may have deleted.
func loadRules(dataDir string, cfg *config.Config) ([]rules.Rule, error) {
	table := rules.Default()
	if cfg.Rules.Path == "" {
		return table, nil
	}

	path := cfg.Rules.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(dataDir, path)
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return table, nil
		}
		return nil, fmt.Errorf("checking rules file: %w", err)
	}

	user, err := rules.Load(path)
	if err != nil {
		return nil, err
	}
	return rules.Merge(user, table), nil
}
