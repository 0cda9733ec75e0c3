package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "8000", cfg.HTTP.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "ecommerce_store", cfg.Database.Name)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "", cfg.Database.Password)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "log level override",
			envVars: map[string]string{
				"LOG_LEVEL": "2",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, 2, cfg.LogLevel)
			},
		},
		{
			name: "http config override",
			envVars: map[string]string{
				"HTTP_PORT": "9090",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "9090", cfg.HTTP.Port)
			},
		},
		{
			name: "database config override",
			envVars: map[string]string{
				"DB_HOST":     "db.internal",
				"DB_PORT":     "15432",
				"DB_NAME":     "store",
				"DB_USER":     "store",
				"DB_PASSWORD": "secret",
				"DB_SSLMODE":  "require",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "db.internal", cfg.Database.Host)
				assert.Equal(t, "15432", cfg.Database.Port)
				assert.Equal(t, "store", cfg.Database.Name)
				assert.Equal(t, "store", cfg.Database.User)
				assert.Equal(t, "secret", cfg.Database.Password)
				assert.Equal(t, "require", cfg.Database.SSLMode)
			},
		},
		{
			name: "cors config override",
			envVars: map[string]string{
				"CORS_ALLOWED_ORIGINS": "https://shop.example.com,https://admin.example.com",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)

			tt.expected(cfg)
		})
	}
}

func TestDatabase_DSN(t *testing.T) {
	d := Database{
		Host:     "localhost",
		Port:     "5432",
		Name:     "ecommerce_store",
		User:     "postgres",
		Password: "pw",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://postgres:pw@localhost:5432/ecommerce_store?sslmode=disable", d.DSN())
}
