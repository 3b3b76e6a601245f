package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonwalk/internal/world"
)

// stubSource serves a fixed picture; '?' and rows past the end are absent.
type stubSource []string

func (s stubSource) Get(x, y int) (world.Tile, bool) {
	if y < 0 || y >= len(s) || x < 0 || x >= len(s[y]) || s[y][x] == '?' {
		return 0, false
	}
	return world.Tile(s[y][x]), true
}

func TestWriteText(t *testing.T) {
	src := stubSource{
		"###",
		"#.#",
		"#?#",
	}

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, src, 4, 4))

	assert.Equal(t, "### \n#.# \n# # \n    \n", buf.String())
}

func TestWriteTextFreshGrid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, world.NewGrid(3, 2), 3, 2))
	assert.Equal(t, "###\n###\n", buf.String())
}

func TestWriteTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, world.NewGrid(0, 0), 0, 0))
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteTextPropagatesWriteError(t *testing.T) {
	err := WriteText(failingWriter{}, world.NewGrid(2, 2), 2, 2)
	assert.EqualError(t, err, "disk full")
}
