package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/goparse/config"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

// globals are the persistent flags shared by every command.
type globals struct {
	configPath string
	verbose    int
	cfg        *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:          "goparse",
		Short:        "An error-tolerant Go parser producing concrete syntax trees",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.load()
		},
	}
	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "config file (default: nearest .goparse.toml or .goparse.yaml)")
	rootCmd.PersistentFlags().CountVarP(&g.verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newParseCmd(g))
	rootCmd.AddCommand(newTokensCmd(g))
	rootCmd.AddCommand(newCheckCmd(g))
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newLSPCmd(g))

	return rootCmd
}

// load reads the configuration and sets up logging.
func (g *globals) load() error {
	path := g.configPath
	if path == "" {
		found, err := config.Find(".")
		if err != nil {
			return err
		}
		path = found
	}

	g.cfg = config.Default()
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		g.cfg = cfg
	}

	verbosity := g.cfg.Log.Verbosity
	if g.verbose > 0 {
		verbosity = g.verbose
	}
	commonlog.Initialize(verbosity, g.cfg.Log.File)
	commonlog.GetLogger("goparse").Debugf("config: %q", path)
	return nil
}

// readSource reads a file, or standard input for "-".
func readSource(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return data, nil
}
