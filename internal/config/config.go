// Package config loads minic.toml / minic.yaml. Files only override the
// keys they set; everything else keeps the defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"minic/internal/astfmt"
	"minic/internal/hashmap"
	"minic/internal/sema"
	"minic/internal/symbols"
	"minic/internal/trace"
)

// Config is the effective configuration.
type Config struct {
	Scope  ScopeConfig  `toml:"scope" yaml:"scope"`
	Output OutputConfig `toml:"output" yaml:"output"`
	Check  CheckConfig  `toml:"check" yaml:"check"`
	Trace  TraceConfig  `toml:"trace" yaml:"trace"`

	// Path is the file the values came from, empty for defaults.
	Path string `toml:"-" yaml:"-"`
}

type ScopeConfig struct {
	Buckets int `toml:"buckets" yaml:"buckets"` // бакетов на scope
	Stack   int `toml:"stack" yaml:"stack"`     // начальная ёмкость стека scope
}

type OutputConfig struct {
	Color  string `toml:"color" yaml:"color"` // auto|on|off
	Export string `toml:"export" yaml:"export"`
}

type CheckConfig struct {
	Jobs       int   `toml:"jobs" yaml:"jobs"` // 0 = GOMAXPROCS
	ShiftLimit int32 `toml:"shift_limit" yaml:"shift_limit"`
}

type TraceConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Mode   string `toml:"mode" yaml:"mode"`
	Format string `toml:"format" yaml:"format"`
	Output string `toml:"output" yaml:"output"`
	Ring   int    `toml:"ring" yaml:"ring"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Scope:  ScopeConfig{Buckets: hashmap.DefaultSize, Stack: symbols.DefaultStackCap},
		Output: OutputConfig{Color: "auto", Export: "edges"},
		Check:  CheckConfig{ShiftLimit: sema.DefaultShiftLimit},
		Trace:  TraceConfig{Level: "off", Mode: "stream", Format: "auto", Output: "-", Ring: 4096},
	}
}

// Load reads path on top of the defaults. The format follows the
// extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = decodeTOML(data, &cfg)
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	default:
		return cfg, fmt.Errorf("%s: unsupported config format (want .toml, .yaml or .yml)", path)
	}
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Scope.Buckets < 1 {
		errs = append(errs, fmt.Errorf("scope.buckets must be positive, got %d", c.Scope.Buckets))
	}
	if c.Scope.Stack < 1 {
		errs = append(errs, fmt.Errorf("scope.stack must be positive, got %d", c.Scope.Stack))
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		errs = append(errs, fmt.Errorf("output.color must be auto, on or off, got %q", c.Output.Color))
	}
	if _, err := astfmt.ParseFormat(c.Output.Export); err != nil {
		errs = append(errs, fmt.Errorf("output.export: %w", err))
	}
	if c.Check.Jobs < 0 {
		errs = append(errs, fmt.Errorf("check.jobs must not be negative, got %d", c.Check.Jobs))
	}
	if c.Check.ShiftLimit < 0 {
		errs = append(errs, fmt.Errorf("check.shift_limit must not be negative, got %d", c.Check.ShiftLimit))
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		errs = append(errs, fmt.Errorf("trace.level: %w", err))
	}
	if _, err := trace.ParseMode(c.Trace.Mode); err != nil {
		errs = append(errs, fmt.Errorf("trace.mode: %w", err))
	}
	if _, err := trace.ParseFormat(c.Trace.Format); err != nil {
		errs = append(errs, fmt.Errorf("trace.format: %w", err))
	}
	return errors.Join(errs...)
}

// SemaOptions maps the scope and check sections onto checker options.
func (c Config) SemaOptions(tracer trace.Tracer) sema.Options {
	return sema.Options{
		Scopes:     symbols.Options{Buckets: c.Scope.Buckets, StackCap: c.Scope.Stack, Tracer: tracer},
		ShiftLimit: c.Check.ShiftLimit,
		Tracer:     tracer,
	}
}

// TraceConfig builds the tracer configuration.
func (c Config) TraceConfig() (trace.Config, error) {
	level, err := trace.ParseLevel(c.Trace.Level)
	if err != nil {
		return trace.Config{}, err
	}
	mode, err := trace.ParseMode(c.Trace.Mode)
	if err != nil {
		return trace.Config{}, err
	}
	format, err := trace.ParseFormat(c.Trace.Format)
	if err != nil {
		return trace.Config{}, err
	}
	return trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: c.Trace.Output,
		RingSize:   c.Trace.Ring,
	}, nil
}
