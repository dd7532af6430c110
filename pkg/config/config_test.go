package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martin-jeremy/linkedin-sql-nosql/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "shop-analytics", cfg.App.Name)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "data/shop.db", cfg.Store.SQLitePath)
	assert.Equal(t, "data/shop.json", cfg.Store.DocumentPath)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 100, cfg.Bench.Runs)
}

func TestLoad_EnvVarsTienenPrioridad(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("BENCH_RUNS", "7")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 7, cfg.Bench.Runs)
}

func TestLoad_EnteroMalformadoUsaElValorPorDefecto(t *testing.T) {
	t.Setenv("HTTP_PORT", "abc")
	t.Setenv("BENCH_RUNS", "12x")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port, "un puerto ilegible no debe convertirse en 0")
	assert.Equal(t, 100, cfg.Bench.Runs)
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Setenv("STORE_DRIVER", "oracle")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := config.PostgresConfig{
		Host:     "db.example.com",
		Port:     5433,
		User:     "shop",
		Password: "p@ss:word",
		DBName:   "analytics",
		SSLMode:  "require",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.example.com:5433")
	assert.Contains(t, dsn, "/analytics")
	assert.Contains(t, dsn, "sslmode=require")
	assert.NotContains(t, dsn, "p@ss:word", "la contraseña debe ir con URL encoding")
}

func TestPostgresConfig_DatabaseURLGana(t *testing.T) {
	cfg := config.PostgresConfig{
		DatabaseURL: "postgresql://u:p@h:5432/db",
		Host:        "ignored",
	}
	assert.Equal(t, "postgresql://u:p@h:5432/db", cfg.ConnectionString())
}
