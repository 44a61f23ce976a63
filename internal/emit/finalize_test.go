package emit

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "#! /usr/bin/env bash"

func TestFlush(t *testing.T) {
	t.Run("file is overwritten with trailing newline", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.sh")
		require.NoError(t, os.WriteFile(path, []byte("old content"), 0644))

		w := NewWriter(4, path, "script template", true)
		w.Line("a")
		w.Line("b")
		require.NoError(t, w.Flush(&bytes.Buffer{}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "a\nb\n", string(data))
	})

	t.Run("main artifact is owner-executable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.sh")
		w := NewWriter(4, path, "script template", true)
		w.Line("a")
		require.NoError(t, w.Flush(&bytes.Buffer{}))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&0100, "owner-execute bit should be set")
	})

	t.Run("utility artifact is not made executable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "common.sh")
		w := NewWriter(4, path, "utils", false)
		w.Line("a")
		require.NoError(t, w.Flush(&bytes.Buffer{}))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Zero(t, info.Mode()&0111, "no execute bits expected")
	})

	t.Run("stdout output is framed by labeled banners", func(t *testing.T) {
		var out bytes.Buffer
		w := NewWriter(4, "", "script template", true)
		w.Line("hello")
		require.NoError(t, w.Flush(&out))

		s := out.String()
		assert.Contains(t, s, "==== [ ↓ SCRIPT TEMPLATE START ↓ ] ====")
		assert.Contains(t, s, "hello")
		assert.Contains(t, s, "==== [ ↑  SCRIPT TEMPLATE END  ↑ ] ====")
	})

	t.Run("devnull destination writes nothing", func(t *testing.T) {
		var out bytes.Buffer
		w := NewWriter(4, os.DevNull, "script template", true)
		w.Line("hello")
		require.NoError(t, w.Flush(&out))
		assert.Empty(t, out.String())
	})
}

func TestFinalize(t *testing.T) {
	t.Run("nil utility writer only drains main", func(t *testing.T) {
		var out bytes.Buffer
		main := NewWriter(4, "", "script template", true)
		main.Line("script")

		require.NoError(t, Finalize(main, nil, header, &out))
		assert.Contains(t, out.String(), "script")
		assert.NotContains(t, out.String(), "UTILS")
	})

	t.Run("empty utility writer is skipped", func(t *testing.T) {
		var out bytes.Buffer
		main := NewWriter(4, "", "script template", true)
		main.Line("script")
		utils := NewWriter(4, "", "utils", false)

		require.NoError(t, Finalize(main, utils, header, &out))
		assert.NotContains(t, out.String(), "UTILS")
	})

	t.Run("utility output gets header and trimmed blanks", func(t *testing.T) {
		dir := t.TempDir()
		main := NewWriter(4, filepath.Join(dir, "run.sh"), "script template", true)
		main.Line("script")
		utils := NewWriter(4, filepath.Join(dir, "common.sh"), "utils", false)
		utils.Line("helper() { :; }")
		utils.Blank()
		utils.Blank()

		require.NoError(t, Finalize(main, utils, header, &bytes.Buffer{}))

		data, err := os.ReadFile(filepath.Join(dir, "common.sh"))
		require.NoError(t, err)
		assert.Equal(t, header+"\n\nhelper() { :; }\n", string(data))
	})

	t.Run("utility blurb goes to stdout when main does", func(t *testing.T) {
		var out bytes.Buffer
		main := NewWriter(4, "", "script template", true)
		main.Line("script")
		utils := NewWriter(4, "", "utils", false)
		utils.Line("helper() { :; }")

		require.NoError(t, Finalize(main, utils, header, &out))

		s := out.String()
		assert.Contains(t, s, "==== [ ↓ UTILS START ↓ ] ====")
		assert.Contains(t, s, "helper() { :; }")
		// Main artifact comes first.
		assert.Less(t,
			strings.Index(s, "SCRIPT TEMPLATE START"),
			strings.Index(s, "UTILS START"))
	})
}
