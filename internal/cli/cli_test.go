package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/ericlevine/gs1parse"
	"github.com/ericlevine/gs1parse/ai"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	cmd := NewRootCommand()
	var out, errb bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetIn(strings.NewReader(stdin))
	args = append([]string{"--env-file", "", "--log-level", "error"}, args...)
	code := run(context.Background(), cmd, args)
	return result{code: code, stdout: out.String(), stderr: errb.String()}
}

func TestParseArgs(t *testing.T) {
	r := execute(t, "", "parse", "0109506000134352[FNC1]10ABC123[FNC1]17251231")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "GTIN")
	assert.Contains(t, r.stdout, "09506000134352")
	assert.Contains(t, r.stdout, "ABC123")
	assert.Contains(t, r.stdout, "2025-12-31")
}

func TestParseVerboseJSON(t *testing.T) {
	r := execute(t, "", "parse", "--verbose", "--json", "10A|10B")
	require.Equal(t, 0, r.code, r.stderr)

	var res gs1parse.Result
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &res))
	require.Len(t, res.Elements, 2)
	assert.Equal(t, "A", res.Elements[0].Value)
	assert.Equal(t, "B", res.Elements[1].Value)
}

func TestParseVerboseTable(t *testing.T) {
	r := execute(t, "", "parse", "--verbose", "0109506000134352", "0109506000134353")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "CHECK")
	assert.Contains(t, r.stdout, "ok")
	assert.Contains(t, r.stdout, "FAIL")
}

func TestParseStdin(t *testing.T) {
	r := execute(t, "0109506000134352\r\n\n21SERIAL42\n", "parse", "--json")
	require.Equal(t, 0, r.code, r.stderr)

	lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"GTIN":"09506000134352"}`, lines[0])
	assert.JSONEq(t, `{"SERIAL":"SERIAL42"}`, lines[1])
}

func TestParseStdinCharset(t *testing.T) {
	latin1, err := charmap.ISO8859_1.NewEncoder().String("10CAFÉ\n")
	require.NoError(t, err)
	r := execute(t, latin1, "parse", "--json", "--charset", "ISO-8859-1")
	require.Equal(t, 0, r.code, r.stderr)
	assert.JSONEq(t, `{"BATCH/LOT":"CAFÉ"}`, strings.TrimSpace(r.stdout))
}

func TestParseNoElements(t *testing.T) {
	r := execute(t, "", "parse", "0109506000134352", "hello")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stdout, "GTIN")
	assert.Contains(t, r.stderr, `"hello": no elements found`)
}

func TestParseCustomTable(t *testing.T) {
	p := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
"01":
  name: ITEM
  length: 14
`), 0o644))

	r := execute(t, "", "--table", p, "parse", "--json", "0109506000134352")
	require.Equal(t, 0, r.code, r.stderr)
	assert.JSONEq(t, `{"ITEM":"09506000134352"}`, strings.TrimSpace(r.stdout))
}

func TestParseMissingTableFallsBack(t *testing.T) {
	r := execute(t, "", "--table", filepath.Join(t.TempDir(), "none.json"), "parse", "--json", "10LOT")
	require.Equal(t, 0, r.code, r.stderr)
	assert.JSONEq(t, `{"BATCH/LOT":"LOT"}`, strings.TrimSpace(r.stdout))
}

func TestAICommand(t *testing.T) {
	r := execute(t, "", "ai", "01", "3103")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "GTIN")
	assert.Contains(t, r.stdout, "NET WEIGHT (kg)")

	r = execute(t, "", "ai", "01", "9999")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stdout, "GTIN")
	assert.Contains(t, r.stderr, "9999: unknown application identifier")
}

func TestAIListJSON(t *testing.T) {
	r := execute(t, "", "ai", "--json")
	require.Equal(t, 0, r.code, r.stderr)

	var rows []aiRow
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &rows))
	assert.Len(t, rows, ai.Builtin().Len())
}

func TestInfoCommand(t *testing.T) {
	r := execute(t, "", "info")
	require.Equal(t, 0, r.code, r.stderr)

	var info gs1parse.Capabilities
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &info))
	assert.Equal(t, gs1parse.Version, info.Version)
	assert.Equal(t, "builtin", info.Registry)
}

func TestVersionCommand(t *testing.T) {
	r := execute(t, "", "version")
	require.Equal(t, 0, r.code)
	assert.True(t, strings.HasPrefix(r.stdout, "gs1parse "+gs1parse.Version), r.stdout)
}

func TestUnknownCommand(t *testing.T) {
	r := execute(t, "", "frobnicate")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "Error:")
}

func TestInvalidConfig(t *testing.T) {
	p := filepath.Join(t.TempDir(), "gs1parse.yaml")
	require.NoError(t, os.WriteFile(p, []byte("log:\n  format: xml\n"), 0o644))

	r := execute(t, "", "--config", p, "info")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "config")
}
