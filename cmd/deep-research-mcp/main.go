// deep-research-mcp: an MCP server for structured deep research.
//
// The server exposes one tool (start_deep_research), one prompt
// (deep-research), and two resources (research://notes,
// research://data). The research methodology itself is a prompt asset;
// the consuming agent does the actual searching and synthesis.
//
// Usage:
//
//	deep-research-mcp serve      # Start MCP server (stdio transport)
//	deep-research-mcp history    # List archived research sessions
//	deep-research-mcp version    # Print version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mvaldez/deep-research-mcp/internal/config"
)

var (
	cfgFile string
	verbose bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "deep-research-mcp",
	Short: "MCP server exposing a deep research methodology prompt",
	Long: `deep-research-mcp serves a multi-phase research methodology over the
Model Context Protocol. An AI host calls start_deep_research with a
research question, receives the methodology prompt, and carries out the
research itself; the server tracks the question and process notes and
exposes them as resources.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}

		// Logs go to stderr: stdout belongs to the stdio transport.
		zapCfg := zap.NewProductionConfig()
		zapCfg.OutputPaths = []string{"stderr"}
		level, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zapCfg.Level = zap.NewAtomicLevelAt(level)

		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./deep-research.yaml or ~/.config/deep-research/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
