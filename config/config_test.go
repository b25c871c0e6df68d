package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DSN", "DB_HOST", "REDIS_ADDR", "BPMN_TARGET_SCORE", "BPMN_MAX_ITERATIONS", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 85.0, cfg.Compliance.TargetScore)
	assert.Equal(t, 5, cfg.Compliance.MaxIterations)
	assert.Equal(t, time.Hour, cfg.Redis.TTL)
	assert.False(t, cfg.Database.Enabled())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("BPMN_TARGET_SCORE", "95.5")
	t.Setenv("BPMN_MAX_ITERATIONS", "abc")
	t.Setenv("REPORT_CACHE_TTL", "5m")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, 95.5, cfg.Compliance.TargetScore)
	assert.Equal(t, 5, cfg.Compliance.MaxIterations)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:     ServerConfig{Port: "8080", RateLimitRPS: 1, RateLimitBurst: 1},
			Compliance: ComplianceConfig{TargetScore: 85, MaxIterations: 5},
		}
	}
	assert.NoError(t, valid().Validate())

	c := valid()
	c.Server.Port = ""
	assert.Error(t, c.Validate())

	c = valid()
	c.Compliance.TargetScore = 101
	assert.Error(t, c.Validate())

	c = valid()
	c.Compliance.MaxIterations = 0
	assert.Error(t, c.Validate())

	c = valid()
	c.Server.RateLimitBurst = 0
	assert.Error(t, c.Validate())
}
