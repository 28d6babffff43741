package config

import (
	"fmt"
	"os"
	"time"

	"github.com/xhit/go-str2duration/v2"
	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that decodes from strings such as "90s",
// "1m30s" or "1d" in strategy files.
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := str2duration.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("refresh time %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalYAML() (any, error) { return d.String(), nil }

// Load reads a YAML strategy file on top of the defaults and the supplied
// options, then validates the result.
func Load(path string, opts ...Option) (*StrategyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read strategy file: %w", err)
	}
	return Parse(data, opts...)
}

// Parse is Load for an in-memory document.
func Parse(data []byte, opts ...Option) (*StrategyConfig, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		_ = c.Teardown()
		return nil, fmt.Errorf("failed to parse strategy file: %w", err)
	}
	if err := c.Validate(); err != nil {
		_ = c.Teardown()
		return nil, err
	}
	return c, nil
}
