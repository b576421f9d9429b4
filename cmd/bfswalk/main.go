package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joshharrison/bfswalk/internal/bfs"
	"github.com/joshharrison/bfswalk/internal/graph"
	"github.com/joshharrison/bfswalk/internal/input"
	"github.com/joshharrison/bfswalk/internal/render"
	"github.com/joshharrison/bfswalk/internal/ui"
	"github.com/spf13/cobra"
)

var (
	flagStart    int
	flagGraph    string
	flagFormat   string
	flagNoColor  bool
	flagLogLevel string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bfswalk",
		Short: "Breadth-first traversal of a small directed graph",
		Long: `bfswalk prompts for a start node, walks the graph breadth-first and prints
the nodes in the order they were visited.

The built-in graph has five nodes: 0->{1,2}, 1->{3}, 2->{3,4}, 3->{4}.
Use --graph to load a different one from a YAML or JSON file.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagNoColor {
				ui.SetColor(false)
			}
			return setupLogging(cmd.ErrOrStderr(), flagLogLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := render.CheckFormat(flagFormat); err != nil {
				return err
			}

			g, err := loadGraph()
			if err != nil {
				return err
			}

			start := flagStart
			if !cmd.Flags().Changed("start") {
				prompt := input.Prompt
				if flagGraph != "" {
					prompt = input.PromptFor(g.NodeCount())
				}
				fmt.Fprint(cmd.OutOrStdout(), prompt)

				start, err = input.ReadStart(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			slog.Debug("starting traversal", "start", start, "nodes", g.NodeCount(), "edges", g.EdgeCount())
			res, err := bfs.Traverse(g, start)
			if err != nil {
				return err
			}
			slog.Debug("traversal complete", "visited", len(res.Order), "levels", len(res.Levels()))

			return render.Write(cmd.OutOrStdout(), flagFormat, g, res)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&flagGraph, "graph", "", "Graph file (.yaml, .yml or .json); default is the built-in graph")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.Flags().IntVar(&flagStart, "start", 0, "Start node (skips the prompt)")
	rootCmd.Flags().StringVar(&flagFormat, "format", render.FormatPlain, "Output format (plain, levels, json, dot)")

	rootCmd.AddCommand(pathCmd())
	rootCmd.AddCommand(vizCmd())

	return rootCmd
}

func pathCmd() *cobra.Command {
	var flagFrom, flagTo int

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print a shortest path between two nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph()
			if err != nil {
				return err
			}

			res, err := bfs.Traverse(g, flagFrom)
			if err != nil {
				return err
			}

			path, err := res.PathTo(flagTo)
			if err != nil {
				return err
			}
			slog.Debug("path found", "from", flagFrom, "to", flagTo, "hops", len(path)-1)

			return render.Path(cmd.OutOrStdout(), path)
		},
	}

	cmd.Flags().IntVar(&flagFrom, "from", 0, "Start node")
	cmd.Flags().IntVar(&flagTo, "to", 0, "Target node")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	return cmd
}

func vizCmd() *cobra.Command {
	var flagVizFormat string

	cmd := &cobra.Command{
		Use:   "viz",
		Short: "Print the graph as an ASCII listing or Graphviz DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph()
			if err != nil {
				return err
			}

			switch flagVizFormat {
			case "ascii":
				return render.ASCII(cmd.OutOrStdout(), g)
			case render.FormatDOT:
				return render.DOT(cmd.OutOrStdout(), g, nil)
			default:
				return fmt.Errorf("unknown viz format %q (want ascii or dot)", flagVizFormat)
			}
		},
	}

	cmd.Flags().StringVar(&flagVizFormat, "format", "ascii", "Output format (ascii, dot)")

	return cmd
}

// loadGraph returns the graph named by --graph, or the built-in graph.
func loadGraph() (*graph.Graph, error) {
	if flagGraph == "" {
		return graph.Default(), nil
	}

	g, err := graph.Load(flagGraph)
	if err != nil {
		return nil, err
	}
	slog.Info("loaded graph", "path", flagGraph, "nodes", g.NodeCount(), "edges", g.EdgeCount())
	return g, nil
}

func setupLogging(w io.Writer, level string) error {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", level)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}
