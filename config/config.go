// Package config loads goparse settings from .goparse.toml or
// .goparse.yaml files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileNames lists the file names Find looks for, in order.
var FileNames = []string{".goparse.toml", ".goparse.yaml", ".goparse.yml"}

var ErrUnsupportedFormat = errors.New("unsupported config format")

type Config struct {
	Format    string `toml:"format" yaml:"format"`
	Positions bool   `toml:"positions" yaml:"positions"`
	Color     bool   `toml:"color" yaml:"color"`
	Rule      string `toml:"rule" yaml:"rule"`
	Log       Log    `toml:"log" yaml:"log"`
	LSP       LSP    `toml:"lsp" yaml:"lsp"`
}

type Log struct {
	Verbosity int    `toml:"verbosity" yaml:"verbosity"`
	File      string `toml:"file" yaml:"file"`
}

// LSP configures the language server. Address is used by the tcp and
// websocket transports.
type LSP struct {
	Name      string `toml:"name" yaml:"name"`
	Transport string `toml:"transport" yaml:"transport"`
	Address   string `toml:"address" yaml:"address"`
}

const (
	TransportStdio     = "stdio"
	TransportTCP       = "tcp"
	TransportWebSocket = "websocket"
)

func Default() *Config {
	return &Config{
		Format: "tree",
		Rule:   "SourceFile",
		LSP: LSP{
			Name:      "goparse",
			Transport: TransportStdio,
			Address:   "127.0.0.1:4389",
		},
	}
}

// Load reads the file at path over the defaults. The format is chosen by
// the file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find walks from dir up to the filesystem root and returns the first
// config file it sees. It returns "" when there is none.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("find config: %w", err)
	}
	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (c *Config) Validate() error {
	switch c.Format {
	case "tree", "json":
	default:
		return fmt.Errorf("invalid format %q (want tree or json)", c.Format)
	}
	switch c.LSP.Transport {
	case TransportStdio:
	case TransportTCP, TransportWebSocket:
		if c.LSP.Address == "" {
			return fmt.Errorf("lsp transport %s needs an address", c.LSP.Transport)
		}
	default:
		return fmt.Errorf("invalid lsp transport %q", c.LSP.Transport)
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("invalid log verbosity %d", c.Log.Verbosity)
	}
	return nil
}
