package emit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0644))
}

func TestUtilsPath(t *testing.T) {
	t.Run("stdout main artifact yields no file", func(t *testing.T) {
		assert.Equal(t, "", UtilsPath("", false))
		assert.Equal(t, "", UtilsPath("", true))
	})

	t.Run("devnull main artifact dooms utils too", func(t *testing.T) {
		assert.Equal(t, os.DevNull, UtilsPath(os.DevNull, false))
	})

	t.Run("default candidate next to the script", func(t *testing.T) {
		dir := t.TempDir()
		got := UtilsPath(filepath.Join(dir, "run.sh"), false)
		assert.Equal(t, filepath.Join(dir, "common.sh"), got)
	})

	t.Run("overwrite ignores an existing file", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "common.sh"))

		got := UtilsPath(filepath.Join(dir, "run.sh"), true)
		assert.Equal(t, filepath.Join(dir, "common.sh"), got)
	})

	t.Run("suffix probing picks the first free name", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "common.sh"))

		got := UtilsPath(filepath.Join(dir, "run.sh"), false)
		assert.Equal(t, filepath.Join(dir, "common-2.sh"), got)
	})

	t.Run("existing numbered collision is skipped", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "common.sh"))
		touch(t, filepath.Join(dir, "common-2.sh"))

		got := UtilsPath(filepath.Join(dir, "run.sh"), false)
		assert.Equal(t, filepath.Join(dir, "common-3.sh"), got)
	})
}
