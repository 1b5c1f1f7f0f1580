package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/revault/coordinatord/internal/coordinator/store"
	"github.com/revault/coordinatord/pkg/tracing"
)

const SchemaVersion = 1

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS version (
		version INTEGER UNIQUE NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS signatures (
		id        BIGSERIAL PRIMARY KEY
		,txid      BYTEA NOT NULL
		,pubkey    BYTEA NOT NULL
		,signature BYTEA UNIQUE NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS ix_signatures_txid ON signatures (txid);`,
	`CREATE TABLE IF NOT EXISTS spend_txs (
		txid    BYTEA UNIQUE NOT NULL
		,raw_tx BYTEA UNIQUE NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS spend_outpoints (
		deposit_txid  BYTEA NOT NULL
		,deposit_vout INTEGER NOT NULL
		,spend_txid   BYTEA NOT NULL REFERENCES spend_txs (txid)
		,UNIQUE (deposit_txid, deposit_vout)
	);`,
	`CREATE INDEX IF NOT EXISTS ix_spend_outpoints_spend_txid ON spend_outpoints (spend_txid);`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS version (
		version INTEGER UNIQUE NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS signatures (
		id        INTEGER PRIMARY KEY AUTOINCREMENT
		,txid      BLOB NOT NULL
		,pubkey    BLOB NOT NULL
		,signature BLOB UNIQUE NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS ix_signatures_txid ON signatures (txid);`,
	`CREATE TABLE IF NOT EXISTS spend_txs (
		txid    BLOB UNIQUE NOT NULL
		,raw_tx BLOB UNIQUE NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS spend_outpoints (
		deposit_txid  BLOB NOT NULL
		,deposit_vout INTEGER NOT NULL
		,spend_txid   BLOB NOT NULL REFERENCES spend_txs (txid)
		,UNIQUE (deposit_txid, deposit_vout)
	);`,
	`CREATE INDEX IF NOT EXISTS ix_spend_outpoints_spend_txid ON spend_outpoints (spend_txid);`,
}

// BootstrapSchema creates any missing table and records the schema version. It is safe
// to call on every start and never modifies existing rows.
func (s *Store) BootstrapSchema(ctx context.Context) (err error) {
	start := s.now()
	ctx, span := tracing.StartTracing(ctx, "BootstrapSchema", s.tracingEnabled, s.tracingAttributes...)
	defer func() {
		s.observe("bootstrap_schema", start, err)
		tracing.EndTracing(span, err)
	}()

	sess, err := s.openSession(ctx)
	if err != nil {
		return errors.Join(store.ErrFailedToBootstrapSchema, err)
	}
	defer sess.Close()

	statements := sqliteSchema
	if s.isPostgres() {
		statements = postgresSchema
	}

	for _, q := range statements {
		if _, err = sess.conn.ExecContext(ctx, q); err != nil {
			return errors.Join(store.ErrFailedToBootstrapSchema, err)
		}
	}

	const qVersion = `INSERT INTO version (version) VALUES ($1) ON CONFLICT DO NOTHING`

	if _, err = sess.conn.ExecContext(ctx, qVersion, SchemaVersion); err != nil {
		return errors.Join(store.ErrFailedToBootstrapSchema, fmt.Errorf("failed to record schema version: %w", err))
	}

	sess.logger.Debug("Schema bootstrapped", slog.Int("version", SchemaVersion))

	return nil
}

// SchemaVersion returns the highest recorded schema version, 0 if none is recorded.
func (s *Store) SchemaVersion(ctx context.Context) (version int, err error) {
	start := s.now()
	ctx, span := tracing.StartTracing(ctx, "SchemaVersion", s.tracingEnabled, s.tracingAttributes...)
	defer func() {
		s.observe("schema_version", start, err)
		tracing.EndTracing(span, err)
	}()

	sess, err := s.openSession(ctx)
	if err != nil {
		return 0, errors.Join(store.ErrFailedToGetSchemaVersion, err)
	}
	defer sess.Close()

	var v sql.NullInt64
	if err = sess.conn.QueryRowContext(ctx, `SELECT MAX(version) FROM version`).Scan(&v); err != nil {
		return 0, errors.Join(store.ErrFailedToGetSchemaVersion, err)
	}

	return int(v.Int64), nil
}
