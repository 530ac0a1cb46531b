package ai

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinLookup(t *testing.T) {
	r := Builtin()
	tests := []struct {
		code   string
		name   string
		length int
		fixed  bool
	}{
		{"00", "SSCC", 18, true},
		{"01", "GTIN", 14, true},
		{"10", "BATCH/LOT", 20, false},
		{"17", "EXPIRY", 6, true},
		{"21", "SERIAL", 20, false},
		{"402", "GSIN", 17, true},
		{"7003", "EXPIRY TIME", 10, true},
		{"7035", "PROCESSOR # 5", 30, false},
		{"8200", "PRODUCT URL", 70, false},
	}
	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			d, ok := r.Lookup(tc.code)
			require.True(t, ok)
			assert.Equal(t, tc.code, d.Code)
			assert.Equal(t, tc.name, d.Name)
			assert.Equal(t, tc.length, d.MaxLength)
			assert.Equal(t, tc.fixed, d.Fixed)
			assert.False(t, d.HasDecimals)
		})
	}

	_, ok := r.Lookup("31")
	assert.False(t, ok, "31 is only a template prefix")
	_, ok = r.Lookup("3102")
	assert.False(t, ok, "concrete decimal codes come from templates")
	assert.Equal(t, "builtin", r.Source())
}

func TestLookupTemplate(t *testing.T) {
	r := Builtin()
	for _, prefix := range []string{"310", "316", "320", "337", "340", "357", "360", "369", "390", "395"} {
		d, ok := r.LookupTemplate(prefix)
		require.True(t, ok, prefix)
		assert.True(t, d.Template(), prefix)
	}
	for _, prefix := range []string{"317", "338", "370", "396", "703", "31", "3100"} {
		_, ok := r.LookupTemplate(prefix)
		assert.False(t, ok, prefix)
	}
}

func TestInstantiate(t *testing.T) {
	tmpl, ok := Builtin().LookupTemplate("310")
	require.True(t, ok)

	d := tmpl.Instantiate('3')
	assert.Equal(t, "3103", d.Code)
	assert.Equal(t, "NET WEIGHT (kg)", d.Name)
	assert.True(t, d.Fixed)
	assert.Equal(t, 6, d.MaxLength)
	assert.True(t, d.HasDecimals)
	assert.Equal(t, 3, d.Decimals)
	assert.False(t, d.Template())
	assert.Equal(t, "310y", tmpl.Code, "template is not modified")
}

func TestResolve(t *testing.T) {
	r := Builtin()

	d, ok := r.Resolve("01")
	require.True(t, ok)
	assert.Equal(t, "GTIN", d.Name)

	d, ok = r.Resolve("3103")
	require.True(t, ok)
	assert.Equal(t, "3103", d.Code)
	assert.Equal(t, 3, d.Decimals)

	d, ok = r.Resolve("310y")
	require.True(t, ok)
	assert.True(t, d.Template())

	for _, code := range []string{"", "99999", "3170", "310x", "0"} {
		_, ok := r.Resolve(code)
		assert.False(t, ok, code)
	}
}

func TestNewRejectsInvalidDefinitions(t *testing.T) {
	tests := []struct {
		name string
		defs []Definition
	}{
		{"short code", []Definition{{Code: "1", Name: "X", MaxLength: 1}}},
		{"long code", []Definition{{Code: "12345", Name: "X", MaxLength: 1}}},
		{"letters", []Definition{{Code: "0A", Name: "X", MaxLength: 1}}},
		{"misplaced placeholder", []Definition{{Code: "31y", Name: "X", MaxLength: 1}}},
		{"empty name", []Definition{{Code: "01", Name: " ", MaxLength: 14}}},
		{"zero length", []Definition{{Code: "01", Name: "GTIN"}}},
		{"bad decimals", []Definition{{Code: "310y", Name: "W", MaxLength: 6, HasDecimals: true, Decimals: 12}}},
		{"duplicate", []Definition{
			{Code: "01", Name: "GTIN", MaxLength: 14},
			{Code: "01", Name: "GTIN again", MaxLength: 14},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New("test", tc.defs)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDefinition))
		})
	}
}

func TestCodesSorted(t *testing.T) {
	r, err := New("test", []Definition{
		{Code: "21", Name: "SERIAL", MaxLength: 20},
		{Code: "01", Name: "GTIN", MaxLength: 14, Fixed: true},
		{Code: "10", Name: "BATCH", MaxLength: 20},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"01", "10", "21"}, r.Codes())
	assert.Equal(t, 3, r.Len())
}

func TestDigest(t *testing.T) {
	defs := []Definition{
		{Code: "01", Name: "GTIN", MaxLength: 14, Fixed: true},
		{Code: "99", Name: "OLD", MaxLength: 30},
	}
	a, err := New("table.json", defs)
	require.NoError(t, err)
	b, err := New("elsewhere.yaml", []Definition{defs[1], defs[0]})
	require.NoError(t, err)
	assert.Len(t, a.Digest(), 64)
	assert.Equal(t, a.Digest(), b.Digest(), "order and source do not matter")

	defs[1].Name = "NEW"
	c, err := New("table.json", defs)
	require.NoError(t, err)
	assert.NotEqual(t, a.Digest(), c.Digest())
	assert.NotEqual(t, Builtin().Digest(), Fallback().Digest())
}

func TestNilRegistry(t *testing.T) {
	var r *Registry
	_, ok := r.Lookup("01")
	assert.False(t, ok)
	assert.Zero(t, r.Len())
	assert.Nil(t, r.Codes())
	assert.Empty(t, r.Digest())
}

func TestFallback(t *testing.T) {
	r := Fallback()
	assert.Equal(t, []string{"01", "10", "21", "90"}, r.Codes())
	assert.Equal(t, "fallback", r.Source())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadFileJSON(t *testing.T) {
	p := writeFile(t, t.TempDir(), "ai.json", `{
		"01": {"name": "GTIN", "length": 14, "fixed_length": true},
		"10": {"name": "BATCH", "length": 20, "fixed_length": false},
		"3103": {"name": "WEIGHT", "length": 6, "decimal_position": 3},
		"310y": {"name": "NET WEIGHT", "length": 6}
	}`)
	r, err := LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, p, r.Source())

	d, ok := r.Lookup("10")
	require.True(t, ok)
	assert.False(t, d.Fixed)

	d, ok = r.Lookup("3103")
	require.True(t, ok)
	assert.True(t, d.Fixed, "fixed_length defaults to true")
	assert.True(t, d.HasDecimals)
	assert.Equal(t, 3, d.Decimals)

	_, ok = r.LookupTemplate("310")
	assert.True(t, ok)
}

func TestLoadFileYAML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "ai.yaml", `
"01":
  name: GTIN
  length: 14
"21":
  name: SERIAL
  length: 20
  fixed_length: false
`)
	r, err := LoadFile(p)
	require.NoError(t, err)
	d, ok := r.Lookup("21")
	require.True(t, ok)
	assert.Equal(t, "SERIAL", d.Name)
	assert.False(t, d.Fixed)
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadFile(filepath.Join(dir, "missing.json"))
	assert.True(t, errors.Is(err, ErrTableUnavailable))

	_, err = LoadFile(writeFile(t, dir, "bad.json", "{not json"))
	assert.True(t, errors.Is(err, ErrTableUnavailable))

	_, err = LoadFile(writeFile(t, dir, "empty.json", "{}"))
	assert.True(t, errors.Is(err, ErrTableUnavailable))

	_, err = LoadFile(writeFile(t, dir, "invalid.json", `{"AB": {"name": "X", "length": 1}}`))
	assert.True(t, errors.Is(err, ErrInvalidDefinition))
}

func TestOpen(t *testing.T) {
	r, err := Open("")
	require.NoError(t, err)
	assert.Same(t, Builtin(), r)

	r, err = Open(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTableUnavailable))
	require.NotNil(t, r)
	assert.Equal(t, "fallback", r.Source())
	for _, code := range []string{"01", "10", "21"} {
		_, ok := r.Lookup(code)
		assert.True(t, ok, code)
	}
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "ai.json", `{"01": {"name": "GTIN", "length": 14}}`)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Registry, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, p, func(r *Registry) { changes <- r }, nil)
	}()

	// Give the watcher time to register before touching the file.
	time.Sleep(100 * time.Millisecond)
	writeFile(t, dir, "ai.json", `{"01": {"name": "GTIN", "length": 14}, "21": {"name": "SERIAL", "length": 20, "fixed_length": false}}`)

	select {
	case r := <-changes:
		_, ok := r.Lookup("21")
		assert.True(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
