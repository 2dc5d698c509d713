package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGatherAllMidiPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mid", "a.MIDI", "notes.txt", "sub/c.mid"} {
		path := filepath.Join(dir, name)
		assert.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		assert.NoError(t, os.WriteFile(path, nil, 0644))
	}

	paths, err := GatherAllMidiPaths(dir, 0)
	assert.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.MIDI"),
		filepath.Join(dir, "b.mid"),
		filepath.Join(dir, "sub/c.mid"),
	}, paths)

	paths, err = GatherAllMidiPaths(dir, 1)
	assert.NoError(t, err)
	assert.Len(t, paths, 1)

	_, err = GatherAllMidiPaths(filepath.Join(dir, "missing"), 0)
	assert.Error(t, err)
}

func TestNumbers(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2, Min(2, 3))
	assert.Equal(0.5, Min(1.5, 0.5))
	assert.Equal(3.0, Max(1.0, 3.0, 2.0))
	assert.Equal(0, Max[int]())
	assert.Equal(1.75, Sum([]float64{1, 0.5, 0.25}))
	assert.Equal(uint32(6), Sum([]uint32{1, 2, 3}))
	assert.Equal([]string{"a", "b"}, GetKeys(map[string]int{"b": 1, "a": 2}))
}
