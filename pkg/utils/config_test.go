package utils

import (
	"os"
	"path/filepath"
	"testing"

	"secure-it/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile_Defaults(t *testing.T) {
	cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, 72, cfg.Auth.SessionTTLHours)
	assert.Equal(t, entity.RoleBasic, cfg.Auth.DefaultRole)
	assert.Equal(t, entity.RoleBasic, cfg.Auth.DefaultProviderRole)
	assert.Equal(t, 12, cfg.Auth.BcryptRounds)
	assert.Empty(t, cfg.Auth.RoleCodes)
	assert.Empty(t, cfg.CORS.AllowedOrigins)
	assert.Equal(t, entity.SiteModeEcommerce, cfg.Site.DefaultMode)
}

func TestLoadConfigFile_FromFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "DB_DRIVER=mysql\n" +
		"AUTH_SESSION_TTL_HOURS=0\n" +
		"AUTH_DEFAULT_ROLE=loyalty_customer\n" +
		"AUTH_ROLE_CODE_ADMIN=\" letmein \"\n" +
		"BCRYPT_ROUNDS=40\n" +
		"CORS_ORIGIN=\"https://zyvrix.com, https://www.zyvrix.com\"\n" +
		"SITE_DEFAULT_MODE=basic\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("AUTH_DEFAULT_PROVIDER_ROLE", "staff")

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, 1, cfg.Auth.SessionTTLHours)
	assert.Equal(t, entity.RoleLoyalty, cfg.Auth.DefaultRole)
	assert.Equal(t, entity.RoleStaff, cfg.Auth.DefaultProviderRole)
	assert.Equal(t, entity.RoleCodes{entity.RoleAdmin: "letmein"}, cfg.Auth.RoleCodes)
	assert.Equal(t, MaxBcryptCost, cfg.Auth.BcryptRounds)
	assert.Equal(t, []string{"https://zyvrix.com", "https://www.zyvrix.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, entity.SiteModeBasic, cfg.Site.DefaultMode)
}
