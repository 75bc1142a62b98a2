// Package config loads engine tunables from an optional TOML file, falling
// back to hardcoded defaults when the file is absent. A file that exists
// but cannot be read or decoded is reported as an error, returned together
// with the defaults so the caller always has something usable.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultSearchDepth is the fixed search depth used when no config file
// overrides it.
const DefaultSearchDepth = 6

// Config holds the engine-level settings a host may want to tune without
// recompiling: search depth and the move-ordering weights the engine's
// move ordering reads.
type Config struct {
	SearchDepth  int
	MoveOrdering MoveOrderingConfig
}

// MoveOrderingConfig holds the constants used to prioritize moves before
// a fixed-depth search explores them.
type MoveOrderingConfig struct {
	CaptureBaseScore   int
	PromotionBaseScore int
}

// file is the on-disk TOML shape, kept distinct from Config so the file
// format can evolve independently of the in-memory representation.
type file struct {
	Search struct {
		Depth int `toml:"depth"`
	} `toml:"search"`
	Ordering struct {
		CaptureBase   int `toml:"capture_base"`
		PromotionBase int `toml:"promotion_base"`
	} `toml:"ordering"`
}

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		SearchDepth: DefaultSearchDepth,
		MoveOrdering: MoveOrderingConfig{
			CaptureBaseScore:   1_000_000,
			PromotionBaseScore: 300,
		},
	}
}

// Load reads path as a TOML config file and overlays it on Default. A
// missing file is not an error — it returns Default() unchanged, matching
// a fresh install with no config written yet. A present-but-malformed
// file is reported, since the user clearly meant to configure something
// and got it wrong.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if f.Search.Depth > 0 {
		cfg.SearchDepth = f.Search.Depth
	}
	if f.Ordering.CaptureBase > 0 {
		cfg.MoveOrdering.CaptureBaseScore = f.Ordering.CaptureBase
	}
	if f.Ordering.PromotionBase > 0 {
		cfg.MoveOrdering.PromotionBaseScore = f.Ordering.PromotionBase
	}

	return cfg, nil
}
