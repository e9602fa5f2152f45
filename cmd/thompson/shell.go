package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactively build automata and test strings",
		Long:  `Prompts for an expression, then for text to test against it. An empty expression line ends the session.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShell(cmd)
		},
	}
}

func (a *app) runShell(cmd *cobra.Command) error {
	rdr := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	readLine := func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		line, err := rdr.ReadString('\n')
		if err != nil && line == "" {
			return "", false
		}
		return strings.TrimRight(line, "\r\n"), true
	}

	for {
		src, ok := readLine("expr> ")
		if !ok || strings.TrimSpace(src) == "" {
			fmt.Fprintln(out)
			return nil
		}
		frag, err := a.build(src)
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}
		text, ok := readLine("text> ")
		if !ok {
			fmt.Fprintln(out)
			return nil
		}
		fmt.Fprintln(out, frag.Test(text))
	}
}
