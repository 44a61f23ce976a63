package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores the package-level flag state between subtests.
func resetFlags() {
	indentSize = 4
	outputPath = ""
	levelName = "default"
	loadConfPath = ""
	baseConfPath = ""
	dumpConfPath = ""
}

func TestRunGenerate(t *testing.T) {
	t.Run("batch to stdout", func(t *testing.T) {
		resetFlags()
		levelName = "batch"

		var out bytes.Buffer
		require.NoError(t, runGenerate(strings.NewReader(""), &out))

		s := out.String()
		assert.Contains(t, s, "==== [ ↓ SCRIPT TEMPLATE START ↓ ] ====")
		assert.Contains(t, s, "#! /usr/bin/env bash")
		assert.Contains(t, s, "parse_command() {")
		assert.Contains(t, s, "exit 0")
		assert.NotContains(t, s, "UTILS START")
	})

	t.Run("batch level alias", func(t *testing.T) {
		resetFlags()
		levelName = "b"

		var out bytes.Buffer
		require.NoError(t, runGenerate(strings.NewReader(""), &out))
		assert.Contains(t, out.String(), "SCRIPT TEMPLATE START")
	})

	t.Run("invalid level", func(t *testing.T) {
		resetFlags()
		levelName = "extreme"

		err := runGenerate(strings.NewReader(""), &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --level")
	})

	t.Run("output file is created executable", func(t *testing.T) {
		resetFlags()
		levelName = "batch"
		outputPath = filepath.Join(t.TempDir(), "run.sh")

		require.NoError(t, runGenerate(strings.NewReader(""), &bytes.Buffer{}))

		info, err := os.Stat(outputPath)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&0100)

		data, err := os.ReadFile(outputPath)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "#! /usr/bin/env bash\n"))
	})

	t.Run("loaded config forces batch and is authoritative", func(t *testing.T) {
		resetFlags()
		levelName = "full" // would block on questions if not overridden
		loadConfPath = `{"main": true, "logging_utils": false}`

		var out bytes.Buffer
		require.NoError(t, runGenerate(strings.NewReader(""), &out))

		s := out.String()
		assert.Contains(t, s, "main \"$@\"")
		assert.NotContains(t, s, "_f_log")
	})

	t.Run("externalized utils produce a companion file", func(t *testing.T) {
		resetFlags()
		dir := t.TempDir()
		levelName = "batch"
		outputPath = filepath.Join(dir, "run.sh")
		loadConfPath = `{"utils": 1}`

		require.NoError(t, runGenerate(strings.NewReader(""), &bytes.Buffer{}))

		data, err := os.ReadFile(filepath.Join(dir, "common.sh"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "_f_log() {")
		assert.True(t, strings.HasPrefix(string(data), "#! /usr/bin/env bash\n"))

		script, err := os.ReadFile(outputPath)
		require.NoError(t, err)
		assert.Contains(t, string(script), `. "${BASEDIR:?}/common.sh" || exit`)
	})

	t.Run("dump config to stdout", func(t *testing.T) {
		resetFlags()
		levelName = "batch"
		dumpConfPath = "-"

		var out bytes.Buffer
		require.NoError(t, runGenerate(strings.NewReader(""), &out))

		s := out.String()
		assert.Contains(t, s, "==== [ ↓ CONFIG START ↓ ] ====")
		assert.Contains(t, s, `"use_env": true`)
	})

	t.Run("unknown config key fails before any questions", func(t *testing.T) {
		resetFlags()
		loadConfPath = `{"bogus": true}`

		err := runGenerate(strings.NewReader(""), &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bogus")
		assert.Contains(t, err.Error(), "use_env")
	})
}
