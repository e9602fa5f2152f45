package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"thompson/nfa"
)

func newGraphCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph <expr>",
		Short: "Export the automaton as Graphviz DOT or Mermaid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				a.cfg.Graph.Format, _ = cmd.Flags().GetString("format")
			}
			if cmd.Flags().Changed("output") {
				a.cfg.Graph.Output, _ = cmd.Flags().GetString("output")
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			png, _ := cmd.Flags().GetBool("png")
			return a.runGraph(cmd, args, png)
		},
	}
	cmd.Flags().StringP("file", "f", "", "Read the expression from a file")
	cmd.Flags().String("format", "dot", "Output format: dot or mermaid")
	cmd.Flags().StringP("output", "o", "-", "Output file, - for stdout")
	cmd.Flags().Bool("png", false, "Render PNG via dot -Tpng (needs --output)")
	return cmd
}

func (a *app) runGraph(cmd *cobra.Command, args []string, png bool) error {
	src, _, err := source(cmd, args)
	if err != nil {
		return err
	}
	frag, err := a.build(src)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch a.cfg.Graph.Format {
	case "mermaid":
		buf.WriteString(nfa.GenerateMermaid(frag))
	default:
		if err := nfa.ExportDOT(&buf, frag); err != nil {
			return err
		}
	}

	out := a.cfg.Graph.Output
	if png {
		if a.cfg.Graph.Format != "dot" || out == "-" {
			return fmt.Errorf("--png needs the dot format and an --output file")
		}
		c := exec.CommandContext(cmd.Context(), "dot", "-Tpng", "-o", out)
		c.Stdin = bytes.NewReader(buf.Bytes())
		c.Stderr = cmd.ErrOrStderr()
		if err := c.Run(); err != nil {
			return fmt.Errorf("dot failed: %w", err)
		}
		a.logger.Info("PNG written", "path", out)
		return nil
	}

	if out == "-" {
		_, err := io.Copy(cmd.OutOrStdout(), &buf)
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", out, err)
	}
	if _, err := io.Copy(f, &buf); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write %s: %w", out, err)
	}
	a.logger.Info("graph written", "path", out, "format", a.cfg.Graph.Format)
	return nil
}
