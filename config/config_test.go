package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "supermanager", cfg.Database.Name)
	assert.Equal(t, "", cfg.Redis.Addr)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	content := "SERVER_PORT=9090\nDATABASE_DRIVER=Postgres\nCORS_ORIGINS=http://a.example, http://b.example\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("RUBRIC_CACHE_TTL", "30s")
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port, "environment overrides file")
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
}
