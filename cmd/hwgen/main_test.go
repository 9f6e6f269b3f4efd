package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/hwgen/hwtest"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	chdir(t, t.TempDir())
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	for _, d := range designs {
		assert.Contains(t, out, d.name)
	}
}

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "rtl")
	out, err := run(t, "generate", "-o", dir, "--top", "chip", "-j", "2")
	require.NoError(t, err)

	for _, d := range designs {
		p := filepath.Join(dir, d.name+".v")
		assert.Contains(t, out, "ok "+d.name+" -> "+p)
		b, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, "chip", hwtest.Modules(string(b))[0], d.name)
	}
}

func TestGenerate_selected(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "generate", "-o", dir, "counter")
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "counter.v", entries[0].Name())
}

func TestGenerate_unknown(t *testing.T) {
	_, err := run(t, "generate", "-o", t.TempDir(), "nope")
	assert.EqualError(t, err, `unknown design "nope"`)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check")
	require.NoError(t, err)
	for _, d := range designs {
		assert.Contains(t, out, "ok "+d.name+"\n")
	}
}

func TestBadConfig(t *testing.T) {
	_, err := run(t, "list", "--log-level", "loud")
	assert.Error(t, err)
}
