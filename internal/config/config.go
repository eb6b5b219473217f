package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/aretw0/quill/pkg/core"
)

// Config is the runtime configuration of the quill command.
// Values come from an optional config file, then the environment (and .env).
type Config struct {
	File     string `yaml:"file" json:"file" toml:"file" env:"QUILL_FILE" env-default:"notes.json" env-description:"path of the notes store"`
	LogLevel string `yaml:"log_level" json:"log_level" toml:"log_level" env:"QUILL_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	Pretty   bool   `yaml:"pretty" json:"pretty" toml:"pretty" env:"QUILL_PRETTY" env-default:"false" env-description:"colored human-readable logs"`
	IDPolicy string `yaml:"id_policy" json:"id_policy" toml:"id_policy" env:"QUILL_ID_POLICY" env-default:"next" env-description:"next (max+1) or count (len+1)"`
	Perm     string `yaml:"perm" json:"perm" toml:"perm" env:"QUILL_PERM" env-default:"0644" env-description:"octal file mode of the store"`
	Strict   bool   `yaml:"strict" json:"strict" toml:"strict" env:"QUILL_STRICT" env-default:"false" env-description:"reject unknown fields in the store"`
}

// Policy returns the parsed ID policy. Parse has already validated it.
func (c Config) Policy() core.IDPolicy {
	p, _ := core.ParseIDPolicy(c.IDPolicy)
	return p
}

// FileMode returns the parsed store permissions. Parse has already validated it.
func (c Config) FileMode() os.FileMode {
	mode, _ := parsePerm(c.Perm)
	return mode
}

func (c Config) validate() error {
	if c.File == "" {
		return fmt.Errorf("file cannot be empty")
	}
	if _, ok := core.ParseIDPolicy(c.IDPolicy); !ok {
		return fmt.Errorf("unknown id policy %q", c.IDPolicy)
	}
	if _, err := parsePerm(c.Perm); err != nil {
		return err
	}
	return nil
}

func parsePerm(s string) (os.FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil || v > 0o777 {
		return 0, fmt.Errorf("invalid perm %q: want octal like 0644", s)
	}
	return os.FileMode(v), nil
}
