package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Standalone scripts read configs/config.yaml with yaml.Unmarshal instead
// of viper, so every underscored key must decode through the yaml tags too.
func TestConfig_YAMLDecodesUnderscoredKeys(t *testing.T) {
	raw := []byte(`
server:
  port: "9090"
  mode: release

storage:
  backend: json
  data_dir: /var/lib/plp

database:
  driver: mysql
  dbname: learning
  parsetime: true

cors:
  allowed_origins:
    - http://localhost:3000

rate_limit:
  max_requests: 50
  window_minutes: 2

tracing:
  enabled: true
  collector_endpoint: http://jaeger:14268/api/traces
`)

	var cfg Config
	require.NoError(t, yaml.Unmarshal(raw, &cfg))

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/var/lib/plp", cfg.Storage.DataDir)
	assert.Equal(t, "learning", cfg.Database.DBName)
	assert.True(t, cfg.Database.ParseTime)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 50, cfg.RateLimit.MaxRequests)
	assert.Equal(t, 2, cfg.RateLimit.WindowMinutes)
	assert.Equal(t, "http://jaeger:14268/api/traces", cfg.Tracing.CollectorEndpoint)
}
