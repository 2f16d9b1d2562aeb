package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInitConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
addr: 0.0.0.0:9090
db:
  uri: mongodb://db.internal:27017
  database: treense-staging
`)

	conf, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", conf.Addr)
	assert.Equal(t, "mongodb://db.internal:27017", conf.DB.URI)
	assert.Equal(t, "treense-staging", conf.DB.Database)
	// Unset fields keep their defaults.
	assert.Equal(t, "treeRecords", conf.DB.Collection)
	assert.Equal(t, 10, conf.DB.MaxPoolSize)
	assert.Equal(t, 5, conf.DB.ConnectTimeout)
}

func TestInitConfigMissingFile(t *testing.T) {
	_, err := InitConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestInitConfigMalformedYAML(t *testing.T) {
	path := writeConfig(t, "addr: [unclosed")
	_, err := InitConfig(path)
	assert.Error(t, err)
}

func TestDefaultConfigArchivalDisabled(t *testing.T) {
	conf := DefaultConfig()
	assert.Empty(t, conf.S3.Endpoint)
}
