package config

import "time"

func getDefaultCoordinatorConfig() *CoordinatorConfig {
	return &CoordinatorConfig{
		LogLevel:   "INFO",
		LogFormat:  "text",
		Prometheus: getDefaultPrometheusConfig(),
		Tracing:    getDefaultTracingConfig(),
		Db:         getDefaultDbConfig(),
	}
}

func getDefaultPrometheusConfig() *PrometheusConfig {
	return &PrometheusConfig{
		Endpoint: "", // prometheus endpoint disabled by default
		Addr:     ":2112",
	}
}

func getDefaultTracingConfig() *TracingConfig {
	return &TracingConfig{
		Enabled:  false,
		DialAddr: "http://localhost:4317",
		Sample:   100,
	}
}

func getDefaultDbConfig() *DbConfig {
	return &DbConfig{
		Mode: "postgres",
		Postgres: &PostgresConfig{
			Host:     "localhost",
			Port:     5432,
			Name:     "coordinator",
			User:     "revault",
			Password: "revault",
			SslMode:  "disable",
		},
		Sqlite: &SqliteConfig{
			Path: "coordinator.db",
		},
		HealthCheckInterval: 30 * time.Second,
	}
}
