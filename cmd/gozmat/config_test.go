package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(Te *testing.T, content string) string {
	Te.Helper()
	name := filepath.Join(Te.TempDir(), "gozmat.yaml")
	require.NoError(Te, os.WriteFile(name, []byte(content), 0o644))
	return name
}

func TestDefaultConfig(Te *testing.T) {
	c, err := loadConfig(&Options{})
	require.NoError(Te, err)
	assert.Equal(Te, "text", c.Format)
	assert.GreaterOrEqual(Te, c.Workers, 1)
	assert.Equal(Te, "info", c.Log.Level)
	assert.Equal(Te, 0, c.Bins)
	assert.Empty(Te, c.quadruples)
}

func TestConfigFile(Te *testing.T) {
	name := writeConfig(Te, `
format: json
degrees: true
workers: 3
log:
  level: debug
  format: json
plot: /tmp/plots/
out_of_plane:
  - "0,1,2,3"
  - "3 2 1 0"
`)
	c, err := loadConfig(&Options{Config: name})
	require.NoError(Te, err)
	assert.Equal(Te, "json", c.Format)
	assert.True(Te, c.Degrees)
	assert.Equal(Te, 3, c.Workers)
	assert.Equal(Te, "debug", c.Log.Level)
	assert.Equal(Te, "json", c.Log.Format)
	assert.Equal(Te, defaultPlotBins, c.Bins)
	assert.Equal(Te, [][4]int{{0, 1, 2, 3}, {3, 2, 1, 0}}, c.quadruples)

	//flags override the file.
	c, err = loadConfig(&Options{Config: name, Format: "text", Workers: 1, Bins: 4, OutOfPlane: []string{"4,3,2,1"}})
	require.NoError(Te, err)
	assert.Equal(Te, "text", c.Format)
	assert.Equal(Te, 1, c.Workers)
	assert.Equal(Te, 4, c.Bins)
	assert.Equal(Te, [][4]int{{4, 3, 2, 1}}, c.quadruples)
	assert.True(Te, c.Degrees)
}

func TestConfigErrors(Te *testing.T) {
	for _, content := range []string{
		"format: xml\n",
		"bins: -2\n",
		"log:\n  level: loud\n",
		"log:\n  format: xml\n",
		"out_of_plane: [\"0,1,2\"]\n",
		"unknown_key: 3\n",
		"workers: [1\n",
	} {
		_, err := loadConfig(&Options{Config: writeConfig(Te, content)})
		assert.Error(Te, err, content)
	}
	_, err := loadConfig(&Options{Config: filepath.Join(Te.TempDir(), "missing.yaml")})
	assert.Error(Te, err)
}

func TestLogLevel(Te *testing.T) {
	for _, v := range []string{"trace", "DEBUG", "info", "Warning", "error"} {
		_, err := logLevelFromString(v)
		assert.NoError(Te, err, v)
	}
	_, err := logLevelFromString("verbose")
	assert.ErrorIs(Te, err, errLogLevelNotRecognized)
}
