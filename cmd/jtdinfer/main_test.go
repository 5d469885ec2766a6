package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jtdinfer/jtdinfer"
	applog "go.jacobcolvin.com/jtdinfer/log"
	"go.jacobcolvin.com/jtdinfer/stringtest"
)

func TestRunInfersSchemaFromNDJSONFile(t *testing.T) {
	t.Parallel()

	ndjson := stringtest.JoinLF(
		`{"foo":true,"bar":"xxx"}`,
		`{"foo":false,"bar":null,"baz":5}`,
	)

	path := filepath.Join(t.TempDir(), "examples.json")
	require.NoError(t, os.WriteFile(path, []byte(ndjson), 0o600))

	cfg := jtdinfer.NewConfig()
	cfg.RegisterFlags(pflag.NewFlagSet("test", pflag.ContinueOnError))
	logCfg := applog.NewConfig()
	logCfg.RegisterFlags(pflag.NewFlagSet("test", pflag.ContinueOnError))

	var stdout bytes.Buffer

	require.NoError(t, run(cfg, logCfg, []string{path}, &stdout))

	want := stringtest.JoinLF(
		`{`,
		`  "properties": {`,
		`    "bar": {`,
		`      "nullable": true,`,
		`      "type": "string"`,
		`    },`,
		`    "foo": {`,
		`      "type": "boolean"`,
		`    }`,
		`  },`,
		`  "optionalProperties": {`,
		`    "baz": {`,
		`      "type": "uint8"`,
		`    }`,
		`  }`,
		`}`,
	) + "\n"

	assert.JSONEq(t, want, stdout.String())
}

func TestRunSkipsMalformedFileAndContinues(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"a":1}`), 0o600))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"a":`), 0o600))

	cfg := jtdinfer.NewConfig()
	cfg.RegisterFlags(pflag.NewFlagSet("test", pflag.ContinueOnError))
	logCfg := applog.NewConfig()
	logCfg.RegisterFlags(pflag.NewFlagSet("test", pflag.ContinueOnError))

	var stdout bytes.Buffer

	err := run(cfg, logCfg, []string{good, bad}, &stdout)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), `"a"`)
}

func TestRunReportsMissingFile(t *testing.T) {
	t.Parallel()

	cfg := jtdinfer.NewConfig()
	cfg.RegisterFlags(pflag.NewFlagSet("test", pflag.ContinueOnError))
	logCfg := applog.NewConfig()
	logCfg.RegisterFlags(pflag.NewFlagSet("test", pflag.ContinueOnError))

	var stdout bytes.Buffer

	err := run(cfg, logCfg, []string{filepath.Join(t.TempDir(), "missing.json")}, &stdout)
	require.Error(t, err)
	assert.ErrorIs(t, err, jtdinfer.ErrReadInput)
}
