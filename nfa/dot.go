package nfa

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func edgeLabel(symbol string) string {
	if symbol == Epsilon {
		return "ε"
	}
	return symbol
}

// numbering assigns q0, q1, ... to the reachable states in traversal order.
func numbering(states []*State) map[*State]int {
	idx := make(map[*State]int, len(states))
	for i, s := range states {
		idx[s] = i
	}
	return idx
}

// ExportDOT writes a Graphviz digraph of f to w.
func ExportDOT(w io.Writer, f *Fragment) error {
	bw := bufio.NewWriter(w)
	states := f.States()
	idx := numbering(states)

	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	for _, s := range states {
		shape := "circle"
		if s.Accepting {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    q%d [shape=%s];\n", idx[s], shape)
	}
	for _, s := range states {
		for _, sym := range s.symbols {
			for _, to := range s.transitions[sym] {
				fmt.Fprintf(bw, "    q%d -> q%d [label=\"%s\"];\n",
					idx[s], idx[to], labelEscaper.Replace(edgeLabel(sym)))
			}
		}
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> q%d;\n", idx[f.Entry])
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
