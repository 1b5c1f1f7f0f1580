package config

import (
	"fmt"
	"time"

	"github.com/revault/coordinatord/dbconn"
)

type CoordinatorConfig struct {
	LogLevel   string            `mapstructure:"logLevel"`
	LogFormat  string            `mapstructure:"logFormat"`
	Prometheus *PrometheusConfig `mapstructure:"prometheus"`
	Tracing    *TracingConfig    `mapstructure:"tracing"`
	Db         *DbConfig         `mapstructure:"db"`
}

type PrometheusConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Addr     string `mapstructure:"addr"`
}

func (p *PrometheusConfig) IsEnabled() bool {
	return p != nil && p.Endpoint != "" && p.Addr != ""
}

type TracingConfig struct {
	Enabled    bool              `mapstructure:"enabled"`
	DialAddr   string            `mapstructure:"dialAddr"`
	Sample     int               `mapstructure:"sample"`
	Attributes map[string]string `mapstructure:"attributes"`
}

func (t *TracingConfig) IsEnabled() bool {
	return t != nil && t.Enabled
}

type DbConfig struct {
	// Mode is one of postgres, pgx or sqlite.
	Mode                string          `mapstructure:"mode"`
	Postgres            *PostgresConfig `mapstructure:"postgres"`
	Sqlite              *SqliteConfig   `mapstructure:"sqlite"`
	HealthCheckInterval time.Duration   `mapstructure:"healthCheckInterval"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SslMode  string `mapstructure:"sslMode"`
}

type SqliteConfig struct {
	Path string `mapstructure:"path"`
}

// ConnectionParams builds the database descriptor selected by Mode.
func (d *DbConfig) ConnectionParams() (dbconn.DBConnectionParams, error) {
	if d == nil {
		return dbconn.DBConnectionParams{}, fmt.Errorf("db config missing")
	}

	switch d.Mode {
	case dbconn.SchemePostgres, dbconn.SchemePgx:
		if d.Postgres == nil {
			return dbconn.DBConnectionParams{}, fmt.Errorf("db mode %s requires postgres config", d.Mode)
		}
		p := d.Postgres
		params := dbconn.New(p.Host, p.Port, p.User, p.Password, p.Name, d.Mode, p.SslMode)
		return params, params.Validate()
	case dbconn.SchemeSQLite:
		if d.Sqlite == nil {
			return dbconn.DBConnectionParams{}, fmt.Errorf("db mode %s requires sqlite config", d.Mode)
		}
		params := dbconn.NewSQLite(d.Sqlite.Path)
		return params, params.Validate()
	}

	return dbconn.DBConnectionParams{}, fmt.Errorf("%w: %s", dbconn.ErrUnknownScheme, d.Mode)
}
