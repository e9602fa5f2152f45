package nfa

import (
	"fmt"
	"strings"
)

var mermaidEscaper = strings.NewReplacer(`"`, "#quot;")

// GenerateMermaid renders f as a Mermaid flowchart. Accepting states are
// double circles, epsilon edges are dotted.
func GenerateMermaid(f *Fragment) string {
	states := f.States()
	idx := numbering(states)

	var sb strings.Builder
	sb.WriteString("graph LR\n")
	for _, s := range states {
		opener, closer := "((", "))"
		if s.Accepting {
			opener, closer = "(((", ")))"
		}
		fmt.Fprintf(&sb, "    q%d%s\"q%d\"%s\n", idx[s], opener, idx[s], closer)
	}
	for _, s := range states {
		for _, sym := range s.symbols {
			for _, to := range s.transitions[sym] {
				if sym == Epsilon {
					fmt.Fprintf(&sb, "    q%d -. \"ε\" .-> q%d\n", idx[s], idx[to])
					continue
				}
				fmt.Fprintf(&sb, "    q%d -- \"%s\" --> q%d\n", idx[s], mermaidEscaper.Replace(sym), idx[to])
			}
		}
	}
	fmt.Fprintf(&sb, "    classDef entry stroke-width:3px;\n    class q%d entry;\n", idx[f.Entry])
	return sb.String()
}
