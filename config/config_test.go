package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: ".goparse.toml",
			content: `format = "json"
positions = true
rule = "Expression"

[log]
verbosity = 2

[lsp]
transport = "tcp"
address = ":9000"
`,
		},
		{
			name: "yaml",
			file: ".goparse.yaml",
			content: `format: json
positions: true
rule: Expression
log:
  verbosity: 2
lsp:
  transport: tcp
  address: ":9000"
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Format != "json" || !cfg.Positions || cfg.Rule != "Expression" {
				t.Errorf("top-level fields = %+v", cfg)
			}
			if cfg.Log.Verbosity != 2 {
				t.Errorf("Log.Verbosity = %d, want 2", cfg.Log.Verbosity)
			}
			if cfg.LSP.Transport != TransportTCP || cfg.LSP.Address != ":9000" {
				t.Errorf("LSP = %+v", cfg.LSP)
			}
			if cfg.LSP.Name != "goparse" {
				t.Errorf("LSP.Name = %q, want default goparse", cfg.LSP.Name)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing", filepath.Join(dir, "nope.toml"), "read config"},
		{"syntax", writeFile(t, dir, "bad.toml", "format = \n"), "parse"},
		{"invalid format", writeFile(t, dir, "fmt.yaml", "format: xml\n"), "invalid format"},
		{"invalid transport", writeFile(t, dir, "tr.toml", "[lsp]\ntransport = \"pipe\"\n"), "invalid lsp transport"},
		{"missing address", writeFile(t, dir, "addr.toml", "[lsp]\ntransport = \"websocket\"\naddress = \"\"\n"), "needs an address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load succeeded")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}

	_, err := Load(writeFile(t, dir, "cfg.json", "{}"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	want := writeFile(t, root, ".goparse.yml", "format: tree\n")
	got, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got != want {
		t.Errorf("Find = %q, want %q", got, want)
	}

	closer := writeFile(t, filepath.Join(root, "a"), ".goparse.toml", "format = \"tree\"\n")
	if got, _ := Find(nested); got != closer {
		t.Errorf("Find = %q, want the closer file %q", got, closer)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}
