package main

import (
	"os"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/config"
	"github.com/averycrespi/calc-mcp/internal/logging"
	"github.com/averycrespi/calc-mcp/internal/repl"
	"github.com/averycrespi/calc-mcp/internal/server"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/spf13/cobra"
)

type options struct {
	configPath  string
	logLevel    string
	maxSessions int
	undoDepth   int
}

// loadConfig reads the config file and applies flags the user set explicitly
func (o *options) loadConfig(cmd *cobra.Command) (*types.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("max-sessions") {
		cfg.MaxSessions = o.maxSessions
	}
	if flags.Changed("undo-depth") {
		cfg.UndoDepth = o.undoDepth
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if _, err := logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           project.Name,
		Short:         "Calculator engine served over MCP or an interactive shell",
		Version:       project.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().IntVar(&opts.undoDepth, "undo-depth", calculator.DefaultUndoDepth, "Number of states each session can undo")

	root.AddCommand(newServeCmd(opts), newReplCmd(opts))
	return root
}

func newServeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve calculator sessions as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			s := server.NewCalcServer(cfg, os.Stdin, os.Stdout)
			return s.Serve(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&opts.maxSessions, "max-sessions", 64, "Maximum number of open sessions (0 for no limit)")
	return cmd
}

func newReplCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Run an interactive calculator in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			engine := calculator.NewEngine(calculator.WithUndoDepth(cfg.UndoDepth))
			err = repl.New(engine, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
			if err != nil && cmd.Context().Err() != nil {
				return nil
			}
			return err
		},
	}
}
