package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testScenario = `
transform_origin = [200, 200]

[[ops]]
op = "set_zoom"
value = [2]
`

func writeScenario(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(testScenario), 0o644))
	return path
}

func TestRun(t *testing.T) {
	path := writeScenario(t)

	var buf bytes.Buffer
	require.NoError(t, run(&buf, path, "coefficients"))
	require.Equal(t, "2 0 0 2 -200 -200\n", buf.String())

	buf.Reset()
	require.NoError(t, run(&buf, path, "css"))
	require.Equal(t, "matrix(2,0,0,2,-200,-200)\n", buf.String())

	buf.Reset()
	require.NoError(t, run(&buf, path, "json"))

	var doc struct {
		Matrix    [6]float64 `json:"matrix"`
		Transform struct {
			ScaleX float64 `json:"scaleX"`
		} `json:"transform"`
	}

	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, [6]float64{2, 0, 0, 2, -200, -200}, doc.Matrix)
	require.Equal(t, 2.0, doc.Transform.ScaleX)
}

func TestRun_Errors(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, run(&buf, writeScenario(t), "yaml"))
	require.Error(t, run(&buf, filepath.Join(t.TempDir(), "missing.toml"), "css"))
}

func runMain(t *testing.T, args ...string) int {
	oldArgs, oldFlags := os.Args, flag.CommandLine
	t.Cleanup(func() {
		os.Args, flag.CommandLine = oldArgs, oldFlags
	})

	os.Args = append([]string{"viewbox"}, args...)
	flag.CommandLine = flag.NewFlagSet("viewbox", flag.ContinueOnError)

	return realMain()
}

func TestRealMain_WritesProfileOnError(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	code := runMain(t, "-profile", "cpu", filepath.Join(dir, "missing.toml"))
	require.Equal(t, 1, code)

	// the profile is flushed even though the scenario failed
	require.FileExists(t, filepath.Join(dir, "cpu.pprof"))
}

func TestRealMain_Usage(t *testing.T) {
	require.Equal(t, 2, runMain(t))
	require.Equal(t, 0, runMain(t, "-format", "css", writeScenario(t)))
}
