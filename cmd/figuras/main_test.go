package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alucardeht/figuras/internal/config"
	"github.com/alucardeht/figuras/internal/tools"
	"github.com/alucardeht/figuras/pkg/protocol"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetGlobals(t *testing.T) {
	t.Helper()
	for _, k := range []string{"FIGURAS_LOG_LEVEL", "FIGURAS_LOG_FORMAT", "FIGURAS_LOCALE", "FIGURAS_STRICT"} {
		t.Setenv(k, "")
	}
	configPath, verbose, showDetails, locale, strict = "", false, false, "", false
	toolFilter = "*"
	cfg = config.DefaultConfig()
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetGlobals(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestReportDefaultSamples(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)

	want := "El área del rectángulo es: 50\n" +
		"El área del triángulo es: 14\n" +
		"El área del círculo es: 28.27431\n"
	assert.Equal(t, want, out)
}

func TestReportFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figuras.yaml")
	data := "samples:\n  rectangle:\n    width: 2\n    height: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	out, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "El área del rectángulo es: 6\n")
	assert.Contains(t, out, "El área del triángulo es: 14\n")
}

func TestReportStrictRejectsNegativeSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figuras.yaml")
	require.NoError(t, os.WriteFile(path, []byte("samples:\n  circle:\n    radius: -1\n"), 0644))

	out, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "El área del círculo es: 3.14159\n")

	_, err = execute(t, "--config", path, "--strict")
	assert.Error(t, err)
}

func TestReportDetails(t *testing.T) {
	resetGlobals(t)
	cfg.Output.Details = true

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, runReport(cmd, nil))
	assert.Contains(t, out.String(), "  Rectángulo de base 10 y altura 5\n")
	assert.Contains(t, out.String(), "  detalles: radius=3\n")
}

func TestToolsCommand(t *testing.T) {
	out, err := execute(t, "tools", "--filter", "shape_is_*")
	require.NoError(t, err)

	var defs []protocol.ToolDefinition
	require.NoError(t, json.Unmarshal([]byte(out), &defs))
	require.Len(t, defs, 1)
	assert.Equal(t, "shape_is_large_area", defs[0].Name)
	assert.True(t, defs[0].Annotations["readOnlyHint"])
}

func TestCallCommand(t *testing.T) {
	out, err := execute(t, "call", "shape_is_large_area",
		`{"shape":"rectangle","dimensions":{"width":10,"height":5},"threshold":40}`)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"tool": "shape_is_large_area",
		"result": {"shape": "rectangle", "area": 50, "threshold": 40, "large": true}
	}`, out)
}

func TestCallCommandErrors(t *testing.T) {
	out, err := execute(t, "call", "shape_area", `{"shape":"shape","dimensions":{}}`)
	require.Error(t, err)

	var result protocol.CallResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.NotNil(t, result.Error)
	assert.Equal(t, tools.CodeInvalidParams, result.Error.Code)

	out, err = execute(t, "call", "nope")
	require.Error(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, tools.CodeToolNotFound, result.Error.Code)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figuras.yaml")

	_, err := execute(t, "config", "init", path)
	require.NoError(t, err)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), loaded)

	_, err = execute(t, "config", "init", path)
	assert.Error(t, err, "existing file is not overwritten")
}

func TestCallCommandNonFiniteArea(t *testing.T) {
	out, err := execute(t, "call", "shape_area", `{"shape":"circle","dimensions":{"radius":1e200}}`)
	require.Error(t, err)

	var result protocol.CallResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "shape_area", result.Tool)
	assert.Nil(t, result.Result)
	require.NotNil(t, result.Error)
	assert.Equal(t, tools.CodeExecutionError, result.Error.Code)
	assert.Contains(t, result.Error.Message, "not finite")
}
