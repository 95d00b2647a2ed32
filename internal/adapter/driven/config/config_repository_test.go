package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFileTOML(t *testing.T) {
	tomlContent := `input_file = "records.csv"
filter = "overused"
sort = "overage"
interactive = true
report_name = "review"
report_type = ["csv", "pdf"]
dir = "/tmp/reports"
`
	path := writeTempFile(t, "config.toml", tomlContent)

	repo := NewConfigRepository()
	config, err := repo.LoadConfigFile(path)

	require.NoError(t, err)
	assert.Equal(t, "records.csv", config.InputFile)
	assert.Equal(t, "overused", config.Filter)
	assert.Equal(t, "overage", config.Sort)
	assert.True(t, config.Interactive)
	assert.Equal(t, "review", config.ReportName)
	assert.Equal(t, []string{"csv", "pdf"}, config.ReportType)
	assert.Equal(t, "/tmp/reports", config.Dir)
}

func TestLoadConfigFileYAML(t *testing.T) {
	yamlContent := `input_file: records.json
filter: all
sort: authorized
report_type:
  - json
`
	path := writeTempFile(t, "config.yaml", yamlContent)

	repo := NewConfigRepository()
	config, err := repo.LoadConfigFile(path)

	require.NoError(t, err)
	assert.Equal(t, "records.json", config.InputFile)
	assert.Equal(t, "authorized", config.Sort)
	assert.Equal(t, []string{"json"}, config.ReportType)
}

func TestLoadConfigFileJSON(t *testing.T) {
	jsonContent := `{"input_file":"records.csv","filter":"overused"}`
	path := writeTempFile(t, "config.json", jsonContent)

	repo := NewConfigRepository()
	config, err := repo.LoadConfigFile(path)

	require.NoError(t, err)
	assert.Equal(t, "records.csv", config.InputFile)
	assert.Equal(t, "overused", config.Filter)
}

func TestLoadConfigFileUnsupportedFormat(t *testing.T) {
	path := writeTempFile(t, "config.ini", "[section]")

	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(path)

	assert.ErrorContains(t, err, "unsupported config file format")
}

func TestLoadConfigFileDirectory(t *testing.T) {
	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(t.TempDir())

	assert.ErrorContains(t, err, "is a directory")
}
