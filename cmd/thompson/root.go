package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"thompson/internal/config"
	"thompson/internal/expr"
	"thompson/internal/logging"
	"thompson/nfa"
)

// app is the state shared by the subcommands once flags are parsed.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

func NewRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), logger: logging.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "thompson",
		Short:         "Build and test Thompson NFAs from combinator expressions",
		Long:          `thompson composes automata with char, epsilon, concat, or, rep, plus and optional, then tests strings against them or exports the graph.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "YAML config file (default "+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newMatchCmd(a),
		newGraphCmd(a),
		newShellCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	required := path != ""
	if !required {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(cmd.ErrOrStderr(), level)
	a.logger.Debug("config loaded", "path", path, "required", required)
	return nil
}

// source returns the expression text: the --file contents when the flag is
// set, otherwise the first positional argument. The remaining arguments are
// returned as rest.
func source(cmd *cobra.Command, args []string) (src string, rest []string, err error) {
	file, _ := cmd.Flags().GetString("file")
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read expression: %w", err)
		}
		return string(data), args, nil
	}
	if len(args) == 0 {
		return "", nil, fmt.Errorf("an expression argument or --file is required")
	}
	return args[0], args[1:], nil
}

func (a *app) build(src string) (*nfa.Fragment, error) {
	ctx := expr.NewContext(expr.NewEnvironment(), a.logger)
	frag, err := expr.Compile(strings.TrimSpace(src), ctx)
	if err != nil {
		return nil, err
	}
	st := frag.Stats()
	a.logger.Debug("built automaton", "states", st.States, "edges", st.Edges, "epsilon_edges", st.EpsilonEdges)
	return frag, nil
}
