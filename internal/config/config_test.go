package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, int64(25), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, "auto", cfg.Extract.Mode)
	assert.False(t, cfg.Extract.MergeContactIntoCompany)
	assert.Equal(t, "premarker", cfg.Extract.RemarkFallback)
	assert.Equal(t, 3.0, cfg.Extract.RowTolerance)
	assert.Equal(t, 0.3, cfg.Extract.WordGapFactor)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TOURXLS_SERVER_PORT", ":9090")
	t.Setenv("TOURXLS_EXTRACT_MODE", "lines")
	t.Setenv("TOURXLS_EXTRACT_MERGE_CONTACT_INTO_COMPANY", "true")
	t.Setenv("TOURXLS_UPLOAD_MAX_FILE_SIZE_MB", "5")
	t.Setenv("TOURXLS_CORS_ALLOWED_ORIGINS", "https://tours.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "lines", cfg.Extract.Mode)
	assert.True(t, cfg.Extract.MergeContactIntoCompany)
	assert.Equal(t, int64(5), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, []string{"https://tours.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "7000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Port)
}

func TestLoad_ExplicitPortWinsOverPlatformPort(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("TOURXLS_SERVER_PORT", ":9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
}
