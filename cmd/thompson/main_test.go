package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMatchArgs(t *testing.T) {
	out, err := run(t, "", "match", `rep(or(char("a"), char("b")))`, "bb", "c", "")
	require.NoError(t, err)

	assert.Contains(t, out, "INPUT")
	assert.Regexp(t, `"bb"\s+true`, out)
	assert.Regexp(t, `"c"\s+false`, out)
	assert.Regexp(t, `""\s+true`, out)
}

func TestMatchStdin(t *testing.T) {
	out, err := run(t, "a\naa\n", "match", `plus(char("a"))`, "--stats")
	require.NoError(t, err)

	assert.Regexp(t, `"a"\s+true`, out)
	assert.Regexp(t, `"aa"\s+true`, out)
	assert.Contains(t, out, "states: 2, edges: 2 (epsilon: 1)")
}

func TestMatchStrict(t *testing.T) {
	_, err := run(t, "", "match", "--strict", `char("a")`, "a", "b")
	assert.ErrorIs(t, err, ErrRejected)

	_, err = run(t, "", "match", "--strict", `char("a")`, "a")
	assert.NoError(t, err)
}

func TestMatchFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ab.expr")
	require.NoError(t, os.WriteFile(path, []byte("let a = char(\"a\");\nconcat(a, char(\"b\"))\n"), 0o644))

	out, err := run(t, "", "match", "-f", path, "ab", "ba")
	require.NoError(t, err)
	assert.Regexp(t, `"ab"\s+true`, out)
	assert.Regexp(t, `"ba"\s+false`, out)
}

func TestMatchBadExpression(t *testing.T) {
	_, err := run(t, "", "match", `concat()`, "a")
	assert.Error(t, err)

	_, err = run(t, "", "match")
	assert.Error(t, err)
}

func TestGraphFormats(t *testing.T) {
	out, err := run(t, "", "graph", `char("a")`)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph G {"))
	assert.Contains(t, out, `q0 -> q1 [label="a"];`)

	out, err = run(t, "", "graph", "--format", "mermaid", `char("a")`)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph LR"))

	_, err = run(t, "", "graph", "--format", "svg", `char("a")`)
	assert.Error(t, err)
}

func TestGraphToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.dot")
	_, err := run(t, "", "graph", "-o", path, `optional(char("x"))`)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `label="ε"`)
}

func TestGraphUnwritableOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "g.dot")
	_, err := run(t, "", "graph", "-o", path, `char("a")`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot create")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graph:\n  format: mermaid\n"), 0o644))

	out, err := run(t, "", "--config", path, "graph", `char("a")`)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph LR"))

	_, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "version")
	assert.Error(t, err)
}

func TestShell(t *testing.T) {
	out, err := run(t, "char(\"a\")\na\nconcat()\nrep(char(\"b\"))\nbbc\n\n", "shell")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "true"))
	assert.Equal(t, 1, strings.Count(out, "false"))
	assert.Contains(t, out, "error:")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "thompson version "+Version+"\n", out)
}
