package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
mode: morph
seed: 99
terrain:
  speed: 0.08
  octaves: 4
  fog_color: "#c0d8ff"
morph:
  easing: smooth
`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "morph", doc.Mode)
	assert.True(t, doc.HasSeed)
	assert.Equal(t, int64(99), doc.Seed)
	assert.Equal(t, map[string]string{"speed": "0.08", "octaves": "4", "fog_color": "#c0d8ff"}, doc.Options["terrain"])
	assert.Equal(t, "smooth", doc.Options["morph"]["easing"])
}

func TestParseRejectsBadShapes(t *testing.T) {
	_, err := Parse([]byte("terrain: 3\n"))
	assert.Error(t, err)
	_, err = Parse([]byte("terrain:\n  speed: [1, 2]\n"))
	assert.Error(t, err)
	_, err = Parse([]byte("seed: soon\n"))
	assert.Error(t, err)
	_, err = Parse([]byte("mode: [a]\n"))
	assert.Error(t, err)
}

func TestForMergesOverrides(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)
	opts := doc.For("terrain", map[string]string{"speed": "0.2", "segments": "50"})
	assert.Equal(t, "0.2", opts["speed"])
	assert.Equal(t, "50", opts["segments"])
	assert.Equal(t, "4", opts["octaves"])
	assert.Equal(t, "0.08", doc.Options["terrain"]["speed"])
	assert.Empty(t, doc.For("unknown", nil))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scape.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "morph", doc.Mode)

	t.Setenv(EnvVar, path)
	doc, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(99), doc.Seed)

	t.Setenv(EnvVar, "")
	doc, err = Load("")
	require.NoError(t, err)
	assert.Empty(t, doc.Mode)
	assert.NotNil(t, doc.Options)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
