package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var ErrRejected = errors.New("input rejected")

func newMatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <expr> [input...]",
		Short: "Test inputs against an automaton",
		Long:  `Builds the automaton described by <expr> and reports, for every input, whether the whole string is accepted. Without inputs, each line of stdin is tested.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("strict") {
				a.cfg.Match.Strict, _ = cmd.Flags().GetBool("strict")
			}
			if cmd.Flags().Changed("stats") {
				a.cfg.Match.ShowStats, _ = cmd.Flags().GetBool("stats")
			}
			return a.runMatch(cmd, args)
		},
	}
	cmd.Flags().StringP("file", "f", "", "Read the expression from a file; all arguments are inputs")
	cmd.Flags().Bool("strict", false, "Exit with an error if any input is rejected")
	cmd.Flags().Bool("stats", false, "Print state and edge counts")
	return cmd
}

func (a *app) runMatch(cmd *cobra.Command, args []string) error {
	src, inputs, err := source(cmd, args)
	if err != nil {
		return err
	}
	frag, err := a.build(src)
	if err != nil {
		return err
	}

	if len(inputs) == 0 {
		sc := bufio.NewScanner(cmd.InOrStdin())
		for sc.Scan() {
			inputs = append(inputs, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	var data [][]string
	rejected := 0
	for _, in := range inputs {
		ok := frag.Test(in)
		if !ok {
			rejected++
		}
		a.logger.Debug("tested input", "input", in, "accepted", ok)
		data = append(data, []string{strconv.Quote(in), strconv.FormatBool(ok)})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"INPUT", "MATCH"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	if a.cfg.Match.ShowStats {
		st := frag.Stats()
		fmt.Fprintf(cmd.OutOrStdout(), "states: %d, edges: %d (epsilon: %d), alphabet: %q\n",
			st.States, st.Edges, st.EpsilonEdges, frag.Alphabet())
	}

	if a.cfg.Match.Strict && rejected > 0 {
		return fmt.Errorf("%w: %d of %d", ErrRejected, rejected, len(inputs))
	}
	return nil
}
