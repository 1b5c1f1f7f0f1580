package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/revault/coordinatord/internal/coordinator/store"
)

var ErrSchemaVersionMismatch = errors.New("unexpected schema version")

// Bootstrap creates the schema if needed and checks that the database carries the
// version this build writes.
func Bootstrap(ctx context.Context, s store.CoordinatorStore, expectedVersion int, logger *slog.Logger) (int, error) {
	if err := s.BootstrapSchema(ctx); err != nil {
		return 0, err
	}

	version, err := s.SchemaVersion(ctx)
	if err != nil {
		return 0, err
	}

	if version != expectedVersion {
		return version, errors.Join(ErrSchemaVersionMismatch, fmt.Errorf("expected %d, found %d", expectedVersion, version))
	}

	logger.Info("Schema ready", slog.Int("version", version))

	return version, nil
}
