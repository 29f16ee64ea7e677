// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlump/lumping"
)

const toyModel = `name: toy
variables: [x1, x2, x3]
equations:
  x1: x2^2 + 4*x2*x3 + 4*x3^2
  x2: 4*x3 - 2*x1
  x3: x1 + x2
constraints: ["{x1}"]
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	env := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(env, nil, 0o600))
	cmd.SetArgs(append([]string{"--env-file", env}, args...))
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func modelFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "toy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(toyModel), 0o600))

	return path
}

func TestReduce_Text(t *testing.T) {
	out, err := run(t, "reduce", modelFile(t))
	require.NoError(t, err)
	assert.Equal(t, "# toy: 3 -> 2 variables (1 passes)\ny1' = y2^2    # y1 = x1\ny2' = 2*y2    # y2 = x2 + 2*x3\n", out)
}

func TestReduce_FlagsAndMetrics(t *testing.T) {
	prom := filepath.Join(t.TempDir(), "lvlump.prom")
	out, err := run(t, "reduce", "-o", "json", "--workers", "2", "-c", "x2 + 2*x3", "--metrics-file", prom, modelFile(t))
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "toy_lumped"`)
	assert.Contains(t, out, `"y1": "2*y1"`)

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), "lvlump_passes_total 1")
}

func TestReduce_Errors(t *testing.T) {
	_, err := run(t, "reduce", "--max-passes", "1", modelFile(t))
	assert.ErrorIs(t, err, lumping.ErrNoConvergence)

	_, err = run(t, "reduce", "-o", "xml", modelFile(t))
	assert.Error(t, err)

	_, err = run(t, "reduce")
	assert.Error(t, err)
}

// TestReduce_InvalidPrefix reports a bad --prefix as an error.
func TestReduce_InvalidPrefix(t *testing.T) {
	for _, prefix := range []string{"1y", ""} {
		var err error
		require.NotPanics(t, func() { _, err = run(t, "reduce", "--prefix", prefix, modelFile(t)) }, prefix)
		assert.ErrorIs(t, err, lumping.ErrInvalidPrefix, prefix)
	}

	out, err := run(t, "reduce", "--prefix", "z", modelFile(t))
	require.NoError(t, err)
	assert.Contains(t, out, "z1' = z2^2")
}

func TestInspect(t *testing.T) {
	out, err := run(t, "inspect", modelFile(t))
	require.NoError(t, err)
	assert.Contains(t, out, "variables:   3 (x1, x2, x3)")
	assert.Contains(t, out, "jacobian:    3 monomials")
	assert.Contains(t, out, "  x2' = -2*x1 + 4*x3\n")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "lvlump version dev\n", out)
}
