package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildDatabaseURL(t *testing.T) {
	cfg := &Config{
		DatabaseUser:     "tm",
		DatabasePassword: "secret",
		DatabaseHost:     "db",
		DatabasePort:     "5433",
		DatabaseName:     "tasks",
		DatabaseSSLMode:  "disable",
	}

	assert.Equal(t, "postgres://tm:secret@db:5433/tasks?sslmode=disable", buildDatabaseURL(cfg))
}

func TestValidate(t *testing.T) {
	t.Run("default secret rejected in production", func(t *testing.T) {
		cfg := &Config{Environment: "production", JWTSecret: defaultJWTSecret, DatabaseName: "tasks"}
		err := validate(cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET must be set in production")
	})

	t.Run("default secret allowed in development", func(t *testing.T) {
		cfg := &Config{Environment: "development", JWTSecret: defaultJWTSecret, DatabaseName: "tasks"}
		assert.NoError(t, validate(cfg))
	})

	t.Run("empty secret rejected", func(t *testing.T) {
		cfg := &Config{Environment: "development", DatabaseName: "tasks"}
		assert.Error(t, validate(cfg))
	})

	t.Run("negative timeouts rejected", func(t *testing.T) {
		cfg := &Config{JWTSecret: "s", DatabaseName: "tasks", HTTPReadTimeoutSec: -1}
		assert.Error(t, validate(cfg))
	})
}

func TestTimeouts(t *testing.T) {
	cfg := &Config{HTTPReadTimeoutSec: 15, HTTPWriteTimeoutSec: 30}
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout())
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout())
}

func TestEnvironmentHelpers(t *testing.T) {
	assert.True(t, (&Config{Environment: "development"}).IsDevelopment())
	assert.True(t, (&Config{Environment: "production"}).IsProduction())
	assert.False(t, (&Config{Environment: "test"}).IsProduction())
}
