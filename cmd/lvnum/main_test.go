package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/katalvlaran/lvnum/internal/job"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.Execute()

	return out.String(), err
}

func decodeReport(t *testing.T, s string) job.Report {
	t.Helper()
	var rep job.Report
	require.NoError(t, sonic.UnmarshalString(s, &rep))

	return rep
}

func TestDerivateCommand(t *testing.T) {
	out, err := runCLI(t, "derivate",
		"--x", "0.78,0.79,0.8,0.81,0.82", "--fn", "cos(x)",
		"--position", "2", "--order", "1", "--h", "0.01", "--accuracy", "4")
	require.NoError(t, err)

	rep := decodeReport(t, out)
	require.Len(t, rep.Outcomes, 1)
	assert.Equal(t, "float64", rep.Backend)
	assert.InDelta(t, -0.717356108, rep.Outcomes[0].Float, 1e-7)
}

func TestIntegrateCommand(t *testing.T) {
	out, err := runCLI(t, "integrate", "--backend", "bigfloat", "--precision", "200",
		"--fn", "2 + sin(2*sqrt(x))", "--a", "1", "--b", "6", "--m", "5", "--method", "simpson")
	require.NoError(t, err)

	rep := decodeReport(t, out)
	assert.Equal(t, "bigfloat", rep.Backend)
	assert.InDelta(t, 8.18301550, rep.Outcomes[0].Float, 1e-7)
}

func TestIntegrateCommand_TaskFailure(t *testing.T) {
	out, err := runCLI(t, "integrate", "--fn", "x", "--m", "4", "--method", "simpson")
	assert.ErrorIs(t, err, errTasksFailed)

	rep := decodeReport(t, out)
	assert.Contains(t, rep.Outcomes[0].Error, "odd number of subintervals")
}

func TestRunCommand(t *testing.T) {
	out, err := runCLI(t, "run", "../../internal/job/testdata/jobs.toml",
		"--backend", "decimal", "--output", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "backend: decimal")
	assert.Contains(t, out, "bumpy-simpson")
	assert.Contains(t, out, "cos-first")
}

func TestRootCommand_InvalidFlags(t *testing.T) {
	_, err := runCLI(t, "integrate", "--fn", "x", "--backend", "float16")
	assert.Error(t, err)

	_, err = runCLI(t, "integrate", "--fn", "x", "--output", "xml")
	assert.ErrorIs(t, err, job.ErrUnsupportedFormat)

	_, err = runCLI(t, "run", "missing.yaml")
	assert.Error(t, err)

	_, err = runCLI(t, "derivate", "--x", "1,2")
	assert.Error(t, err, "--h is required")
}
