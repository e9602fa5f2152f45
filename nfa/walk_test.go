package nfa

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatesOrder(t *testing.T) {
	a, b := Char("a"), Char("b")
	f := Or(a, b)

	assert.Equal(t, []*State{f.Entry, a.Entry, b.Entry, a.Exit, b.Exit, f.Exit}, f.States())
}

func TestStatesWithCycle(t *testing.T) {
	a := Char("a")
	f := Rep(a)
	assert.Equal(t, []*State{a.Entry, a.Exit}, f.States())
}

func TestAlphabet(t *testing.T) {
	f := Concat(Char("b"), Rep(Or(Char("a"), Char("b"))), Empty())
	assert.Equal(t, []string{"b", "a"}, f.Alphabet())
}

func TestStats(t *testing.T) {
	tests := []struct {
		name string
		frag *Fragment
		want Stats
	}{
		{"char", Char("a"), Stats{States: 2, Accepting: 1, Edges: 1}},
		{"concat", Concat(Char("a"), Char("b")), Stats{States: 4, Accepting: 1, Edges: 3, EpsilonEdges: 1}},
		{"or", Or(Char("a"), Char("b")), Stats{States: 6, Accepting: 1, Edges: 6, EpsilonEdges: 4}},
		{"rep", Rep(Char("a")), Stats{States: 2, Accepting: 1, Edges: 3, EpsilonEdges: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.frag.Stats())
		})
	}
}

func TestExportDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportDOT(&buf, QuestionRep(Char(`"`))))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "digraph G {\n    rankdir=LR;\n"))
	assert.Contains(t, out, "q0 [shape=circle];")
	assert.Contains(t, out, "q1 [shape=doublecircle];")
	assert.Contains(t, out, `q0 -> q1 [label="\""];`)
	assert.Contains(t, out, `q0 -> q1 [label="ε"];`)
	assert.Contains(t, out, "_start -> q0;")
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestGenerateMermaid(t *testing.T) {
	out := GenerateMermaid(Concat(Char("a"), Char("b")))

	for _, want := range []string{
		"graph LR\n",
		`q0(("q0"))`,
		`q3((("q3")))`,
		`q0 -- "a" --> q1`,
		`q1 -. "ε" .-> q2`,
		`q2 -- "b" --> q3`,
		"class q0 entry;",
	} {
		assert.Contains(t, out, want)
	}
}
