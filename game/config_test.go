package game

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "gameconfig")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	file := filepath.Join(dir, "game.yaml")
	require.NoError(t, ioutil.WriteFile(file, []byte(content), 0644))
	return file
}

func TestParseConfig(t *testing.T) {
	file := writeConfigFile(t, "startingBalance: 500\nminBet: 5\n")

	config, err := ParseConfig(file)
	require.NoError(t, err)
	assert.Equal(t, 500, config.StartingBalance)
	assert.Equal(t, 5, config.MinBet)
}

func TestParseConfigDefaults(t *testing.T) {
	file := writeConfigFile(t, "minBet: 2\n")

	config, err := ParseConfig(file)
	require.NoError(t, err)
	assert.Equal(t, 1000, config.StartingBalance)
	assert.Equal(t, 2, config.MinBet)
}

func TestParseConfigMissingFile(t *testing.T) {
	_, err := ParseConfig("does-not-exist.yaml")
	require.Error(t, err)
}

func TestParseConfigRejectsNonPositiveValues(t *testing.T) {
	file := writeConfigFile(t, "startingBalance: 0\n")
	_, err := ParseConfig(file)
	require.Error(t, err)

	file = writeConfigFile(t, "minBet: -1\n")
	_, err = ParseConfig(file)
	require.Error(t, err)
}
