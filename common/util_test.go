//go:build unit
// +build unit

package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadSettingsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "setting.toml")
	assert.Nil(t, os.WriteFile(path, []byte("[experiment]\nt1 = 1e-5\n"), 0o644))

	s, err := ReadSettingsFile(path)
	assert.Nil(t, err)
	assert.Equal(t, "[experiment]\nt1 = 1e-5\n", s)

	_, err = ReadSettingsFile(filepath.Join(dir, "missing.toml"))
	assert.NotNil(t, err)
}

func TestIsDirWritable(t *testing.T) {
	dir := t.TempDir()
	assert.Nil(t, IsDirWritable(dir))

	missing := filepath.Join(dir, "missing")
	assert.EqualError(t, IsDirWritable(missing), "directory does not exist: "+missing)

	file := filepath.Join(dir, "file")
	assert.Nil(t, os.WriteFile(file, nil, 0o644))
	assert.EqualError(t, IsDirWritable(file), file+" is not a directory")
}

func TestOpenOutput(t *testing.T) {
	w, err := OpenOutput(StdoutPath)
	assert.Nil(t, err)
	assert.Nil(t, w.Close())

	path := filepath.Join(t.TempDir(), "report.json")
	w, err = OpenOutput(path)
	assert.Nil(t, err)
	_, err = w.Write([]byte("{}"))
	assert.Nil(t, err)
	assert.Nil(t, w.Close())
	got, err := ReadFile(path)
	assert.Nil(t, err)
	assert.Equal(t, "{}", got)

	_, err = OpenOutput(filepath.Join(t.TempDir(), "missing", "report.json"))
	assert.NotNil(t, err)
}
