package config

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mpyw/capturelint/internal/tracker"
)

// Policy is the YAML form of tracker.AncestorPolicy.
type Policy tracker.AncestorPolicy

var (
	_ encoding.TextUnmarshaler = (*Policy)(nil)
	_ encoding.TextMarshaler   = Policy(0)
)

func (p Policy) String() string {
	return tracker.AncestorPolicy(p).String()
}

func (p *Policy) UnmarshalText(b []byte) error {
	switch string(b) {
	case "mark":
		*p = Policy(tracker.MarkAncestor)
		return nil
	case "detect":
		*p = Policy(tracker.DetectAncestor)
		return nil
	default:
		return fmt.Errorf("unknown ancestor policy %q", b)
	}
}

func (p Policy) MarshalText() ([]byte, error) {
	switch tracker.AncestorPolicy(p) {
	case tracker.MarkAncestor, tracker.DetectAncestor:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("cannot marshal invalid Policy(%d)", int(p))
	}
}

// Config holds analyzer settings.
type Config struct {
	MaxCaptures    int      `yaml:"max_captures"`
	ReportOuter    bool     `yaml:"report_outer"`
	ReportPlan     bool     `yaml:"report_plan"`
	VerifySSA      bool     `yaml:"verify_ssa"`
	AncestorPolicy Policy   `yaml:"ancestor_policy"`
	Exclude        []string `yaml:"exclude"`
}

// ErrNegativeMaxCaptures is returned for a negative capture limit.
var ErrNegativeMaxCaptures = errors.New("max_captures must not be negative")

// Load reads a config file. An empty path yields the zero Config.
func Load(filename string) (*Config, error) {
	cfg := &Config{}
	if filename == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filename, err)
	}

	return cfg, nil
}

// Parse decodes YAML data into cfg and validates the result.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return cfg.Validate()
}

// Validate checks value ranges and exclude patterns.
func (c *Config) Validate() error {
	if c.MaxCaptures < 0 {
		return ErrNegativeMaxCaptures
	}
	for _, pattern := range c.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
	}

	return nil
}

// Overrides holds settings given on the command line. A nil field was not
// given and leaves the file value alone.
type Overrides struct {
	MaxCaptures    *int
	ReportOuter    *bool
	ReportPlan     *bool
	VerifySSA      *bool
	AncestorPolicy *Policy
	Exclude        []string
}

// Merge applies o on top of c. Exclude patterns accumulate.
func (c *Config) Merge(o Overrides) {
	if o.MaxCaptures != nil {
		c.MaxCaptures = *o.MaxCaptures
	}
	if o.ReportOuter != nil {
		c.ReportOuter = *o.ReportOuter
	}
	if o.ReportPlan != nil {
		c.ReportPlan = *o.ReportPlan
	}
	if o.VerifySSA != nil {
		c.VerifySSA = *o.VerifySSA
	}
	if o.AncestorPolicy != nil {
		c.AncestorPolicy = *o.AncestorPolicy
	}
	c.Exclude = append(c.Exclude, o.Exclude...)
}

// Excluded reports whether a file's base name matches an exclude pattern.
func (c *Config) Excluded(filename string) bool {
	base := filepath.Base(filename)
	for _, pattern := range c.Exclude {
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}

	return false
}
