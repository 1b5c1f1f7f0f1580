package testutils

import (
	"fmt"
	"strconv"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/revault/coordinatord/dbconn"
)

const (
	dbName     = "coordinator_test"
	dbUsername = "revault"
	dbPassword = "revault"
)

// RunPostgresql starts a throwaway PostgreSQL container bound to port on the host. scheme
// selects the driver (postgres or pgx) of the returned connection params.
func RunPostgresql(pool *dockertest.Pool, port, scheme string) (*dockertest.Resource, dbconn.DBConnectionParams, error) {
	opts := dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15.4",
		Env: []string{
			fmt.Sprintf("POSTGRES_PASSWORD=%s", dbPassword),
			fmt.Sprintf("POSTGRES_USER=%s", dbUsername),
			fmt.Sprintf("POSTGRES_DB=%s", dbName),
			"listen_addresses = '*'",
		},
		ExposedPorts: []string{"5432"},
		PortBindings: map[docker.Port][]docker.PortBinding{
			"5432": {
				{HostIP: "0.0.0.0", HostPort: port},
			},
		},
	}

	resource, err := pool.RunWithOptions(&opts, func(config *docker.HostConfig) {
		// set AutoRemove to true so that stopped container goes away by itself
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
		config.Tmpfs = map[string]string{
			"/var/lib/postgresql/data": "",
		}
	})
	if err != nil {
		return nil, dbconn.DBConnectionParams{}, fmt.Errorf("failed to create resource: %v", err)
	}

	hostPort, err := strconv.Atoi(resource.GetPort("5432/tcp"))
	if err != nil {
		_ = pool.Purge(resource)
		return nil, dbconn.DBConnectionParams{}, fmt.Errorf("failed to get host port: %v", err)
	}

	params := dbconn.New("localhost", hostPort, dbUsername, dbPassword, dbName, scheme, "disable")

	return resource, params, nil
}
