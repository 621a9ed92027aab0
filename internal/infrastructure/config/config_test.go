package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL())
	assert.Equal(t, 86400, cfg.CookieMaxAgeSeconds)
	assert.Equal(t, 10*time.Minute, cfg.GetPasswordResetTokenExpiry())
	assert.False(t, cfg.ElevateReaders)
	assert.Equal(t, []string{"*"}, cfg.Origins())
	assert.False(t, cfg.HasSuperAdminSeed())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL_HOURS", "48")
	t.Setenv("ELEVATE_READERS", "true")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("SUPERADMIN_EMAIL", "root@quill.test")
	t.Setenv("SUPERADMIN_PASSWORD", "secret1")
	t.Setenv("SUPERADMIN_MOBILE", "09123456789")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 48*time.Hour, cfg.TokenTTL())
	assert.True(t, cfg.ElevateReaders)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Origins())
	require.True(t, cfg.HasSuperAdminSeed())
	assert.Equal(t, "root@quill.test", cfg.SuperAdminSeed().Email)
	assert.Equal(t, "superAdmin", cfg.SuperAdminSeed().UserName)
}

func TestValidate_ProductionRequiresStrongSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	_, err = LoadConfig()
	assert.NoError(t, err)
}

func TestValidate_RejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("TOKEN_TTL_HOURS", "0")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "TOKEN_TTL_HOURS")
}
