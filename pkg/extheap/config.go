package extheap

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// FileConfig is the data-expressible subset of Options: B, Path, and
// Recover. Codec and the ordering function are Go values, not data — they
// are always supplied by the caller in code, never inferred from a file.
type FileConfig struct {
	Path    string `json:"path"`
	B       int    `json:"b"`
	Recover bool   `json:"recover,omitempty"`
}

// LoadOptions reads a JSON-with-comments config file (e.g. a checked-in
// .heap.jsonc) and returns its B/Path/Recover fields. This is optional
// sugar around hand-writing those as constants; it never becomes an
// implicit configuration path — Open always takes an explicit Options, and
// a caller using LoadOptions still builds Options{...} from the result
// themselves, supplying Codec and the comparator directly.
func LoadOptions(path string) (FileConfig, error) {
	var cfg FileConfig

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("extheap: read config %s: %w", path, err)
	}

	std, err := hujson.Standardize(raw)
	if err != nil {
		return cfg, fmt.Errorf("extheap: parse config %s: %w", path, err)
	}

	if err := json.Unmarshal(std, &cfg); err != nil {
		return cfg, fmt.Errorf("extheap: decode config %s: %w", path, err)
	}

	if cfg.B <= 0 {
		return cfg, fmt.Errorf("extheap: config %s: \"b\" must be > 0", path)
	}

	return cfg, nil
}
