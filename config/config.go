// Package config describes a set of named sockets in a TOML or YAML file
// and opens them on one context.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/funkygao/zmq"
)

var (
	ErrUnknownFormat = errors.New("unknown config format")
	ErrNoSockets     = errors.New("no sockets configured")
	ErrLegacyOption  = errors.New("option removed in libzmq 3")
)

// Config is the top level of a topology file.
type Config struct {
	IOThreads int            `toml:"io_threads" yaml:"io_threads"`
	Log       LogConfig      `toml:"log" yaml:"log"`
	Sockets   []SocketConfig `toml:"socket" yaml:"socket"`
}

type LogConfig struct {
	Level       string `toml:"level" yaml:"level"`
	Development bool   `toml:"development" yaml:"development"`
}

// SocketConfig is one named socket.  Options are keyed by option name,
// e.g. "linger" or "identity", and applied before any bind or connect.
type SocketConfig struct {
	Name    string         `toml:"name" yaml:"name"`
	Kind    string         `toml:"kind" yaml:"kind"`
	Bind    []string       `toml:"bind" yaml:"bind"`
	Connect []string       `toml:"connect" yaml:"connect"`
	Options map[string]any `toml:"options" yaml:"options"`
}

// Default is the configuration every file is decoded on top of.
func Default() *Config {
	return &Config{
		IOThreads: 1,
		Log:       LogConfig{Level: "info"},
	}
}

// Load reads path as TOML (.toml) or YAML (.yaml, .yml) and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err = toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("load config %s: %w", path, ErrUnknownFormat)
	}

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks what can be checked without libzmq: kinds, option names
// and value types, and that every endpoint has a transport scheme.
func (this *Config) Validate() error {
	if this.IOThreads < 0 {
		return fmt.Errorf("io_threads %d: must not be negative", this.IOThreads)
	}
	if len(this.Sockets) == 0 {
		return ErrNoSockets
	}

	names := make(map[string]bool, len(this.Sockets))
	for i := range this.Sockets {
		sc := &this.Sockets[i]
		if sc.Name == "" {
			return fmt.Errorf("socket #%d: missing name", i)
		}
		if names[sc.Name] {
			return fmt.Errorf("socket %s: duplicate name", sc.Name)
		}
		names[sc.Name] = true

		if _, err := sc.SocketKind(); err != nil {
			return err
		}
		for _, ep := range append(append([]string(nil), sc.Bind...), sc.Connect...) {
			if _, _, err := zmq.SplitEndpoint(ep); err != nil {
				return fmt.Errorf("socket %s: %q: %w", sc.Name, ep, err)
			}
		}
		for name, value := range sc.Options {
			o, ok := zmq.OptionByName(name)
			if !ok {
				return fmt.Errorf("socket %s: unknown option %q", sc.Name, name)
			}
			if o.Legacy() {
				return fmt.Errorf("socket %s: option %q: %w", sc.Name, name, ErrLegacyOption)
			}
			if _, err := convertOption(o, value); err != nil {
				return fmt.Errorf("socket %s: option %s: %w", sc.Name, name, err)
			}
		}
	}
	return nil
}

// SocketKind resolves the kind name, ignoring case.
func (this *SocketConfig) SocketKind() (zmq.SocketKind, error) {
	kind, ok := zmq.SocketKindByName(strings.ToUpper(strings.TrimSpace(this.Kind)))
	if !ok {
		return 0, fmt.Errorf("socket %s: unknown kind %q", this.Name, this.Kind)
	}
	return kind, nil
}

// Only returns a copy of cfg holding just the named sockets, so one process
// can open its own end of a shared topology file.
func (this *Config) Only(names ...string) (*Config, error) {
	sub := *this
	sub.Sockets = nil
	for _, name := range names {
		found := false
		for _, sc := range this.Sockets {
			if sc.Name == name {
				sub.Sockets = append(sub.Sockets, sc)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("no socket named %q", name)
		}
	}
	return &sub, nil
}
