package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterLine(t *testing.T) {
	t.Run("indentation follows depth and width", func(t *testing.T) {
		w := NewWriter(4, "", "script template", true)
		w.Line("a")
		w.Indent(1)
		w.Line("b")
		w.Indent(2)
		w.Line("c")
		w.Unindent(3)
		w.Line("d")

		assert.Equal(t, []string{"a", "    b", "            c", "d"}, w.Lines())
	})

	t.Run("blank input never carries indentation", func(t *testing.T) {
		w := NewWriter(4, "", "script template", true)
		w.Indent(2)
		w.Line("")
		w.Line("   ")
		w.Blank()

		assert.Equal(t, []string{"", "", ""}, w.Lines())
	})

	t.Run("custom width", func(t *testing.T) {
		w := NewWriter(2, "", "script template", true)
		w.Indent(1)
		w.Line("x")
		assert.Equal(t, []string{"  x"}, w.Lines())
	})
}

func TestWriterBlock(t *testing.T) {
	t.Run("rescales 4-space units to configured width", func(t *testing.T) {
		// Two nested 4-space levels rendered at width 2 must come out as
		// 2 and 4 spaces, never 4 and 8.
		w := NewWriter(2, "", "script template", true)
		w.Block("if x\n    then_a\n        then_b\nfi", false)

		assert.Equal(t, []string{"if x", "  then_a", "    then_b", "fi"}, w.Lines())
	})

	t.Run("depth offsets the whole block", func(t *testing.T) {
		w := NewWriter(2, "", "script template", true)
		w.Indent(1)
		w.Block("a\n    b", false)

		assert.Equal(t, []string{"  a", "    b"}, w.Lines())
	})

	t.Run("dedents to minimum common margin", func(t *testing.T) {
		w := NewWriter(4, "", "script template", true)
		w.Block("    a\n        b\n    c", false)

		assert.Equal(t, []string{"a", "    b", "c"}, w.Lines())
	})

	t.Run("keepIndentation preserves authored margin", func(t *testing.T) {
		w := NewWriter(4, "", "script template", true)
		w.Block("        arm)\n            body", true)

		// 8 spaces = 2 units, 12 spaces = 3 units, still at width 4.
		assert.Equal(t, []string{"        arm)", "            body"}, w.Lines())
	})

	t.Run("keepIndentation rescales to the configured width too", func(t *testing.T) {
		w := NewWriter(2, "", "script template", true)
		w.Block("        arm)\n            body", true)

		assert.Equal(t, []string{"    arm)", "      body"}, w.Lines())
	})

	t.Run("blank lines inside blocks stay empty", func(t *testing.T) {
		w := NewWriter(4, "", "script template", true)
		w.Indent(1)
		w.Block("a\n\nb", false)

		assert.Equal(t, []string{"    a", "", "    b"}, w.Lines())
	})
}

func TestWriterPrependAndTrim(t *testing.T) {
	w := NewWriter(4, "", "utils", false)
	w.Line("content")
	w.Blank()
	w.Blank()

	w.TrimTrailingBlanks()
	require.Equal(t, []string{"content"}, w.Lines())

	w.Prepend("#! /usr/bin/env bash", "")
	assert.Equal(t, []string{"#! /usr/bin/env bash", "", "content"}, w.Lines())
}

func TestWriterEmpty(t *testing.T) {
	w := NewWriter(4, "", "utils", false)
	assert.True(t, w.Empty())
	w.Blank()
	assert.False(t, w.Empty())
}
