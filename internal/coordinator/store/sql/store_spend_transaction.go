package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ccoveille/go-safecast"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel/attribute"

	"github.com/btcsuite/btcd/wire"

	"github.com/revault/coordinatord/dbconn"
	"github.com/revault/coordinatord/internal/coordinator/store"
	"github.com/revault/coordinatord/pkg/tracing"
)

// StoreSpendTransaction stores tx and points every outpoint at it in a single database
// transaction. Storing an already known tx is a no-op; an outpoint already claimed by
// another spend transaction is moved to tx.
func (s *Store) StoreSpendTransaction(ctx context.Context, outpoints []store.Outpoint, tx *wire.MsgTx) (err error) {
	start := s.now()
	ctx, span := tracing.StartTracing(ctx, "StoreSpendTransaction", s.tracingEnabled, append(s.tracingAttributes, attribute.Int("outpoints", len(outpoints)))...)
	defer func() {
		s.observe("store_spend_transaction", start, err)
		tracing.EndTracing(span, err)
	}()

	if tx == nil {
		return errors.Join(store.ErrFailedToStoreSpendTransaction, store.ErrNilTransaction)
	}

	depositTxIDs, depositVouts, err := outpointColumns(outpoints)
	if err != nil {
		return errors.Join(store.ErrFailedToStoreSpendTransaction, err)
	}

	rawTx, err := store.SerializeTx(tx)
	if err != nil {
		return errors.Join(store.ErrFailedToStoreSpendTransaction, err)
	}
	spendTxID := store.SpendTxID(tx)

	sess, err := s.openSession(ctx)
	if err != nil {
		return errors.Join(store.ErrFailedToStoreSpendTransaction, err)
	}
	defer sess.Close()

	dbTx, err := sess.conn.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Join(store.ErrFailedToStoreSpendTransaction, err)
	}
	defer func() {
		if err != nil {
			if rErr := dbTx.Rollback(); rErr != nil && !errors.Is(rErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("failed to rollback: %v", rErr))
			}
		}
	}()

	const qInsertTx = `INSERT INTO spend_txs (txid, raw_tx) VALUES ($1, $2) ON CONFLICT DO NOTHING`

	if _, err = dbTx.ExecContext(ctx, qInsertTx, spendTxID.CloneBytes(), rawTx); err != nil {
		return errors.Join(store.ErrFailedToStoreSpendTransaction, fmt.Errorf("failed to insert spend transaction: %w", err))
	}

	if len(depositTxIDs) > 0 {
		if s.isPostgres() {
			err = s.upsertOutpointsBulk(ctx, dbTx, depositTxIDs, depositVouts, spendTxID.CloneBytes())
		} else {
			err = upsertOutpoints(ctx, dbTx, depositTxIDs, depositVouts, spendTxID.CloneBytes())
		}
		if err != nil {
			return errors.Join(store.ErrFailedToStoreSpendTransaction, err)
		}
	}

	if err = dbTx.Commit(); err != nil {
		return errors.Join(store.ErrFailedToStoreSpendTransaction, err)
	}

	sess.logger.Debug("Spend transaction stored", slog.String("txid", spendTxID.String()), slog.Int("outpoints", len(depositTxIDs)))

	return nil
}

const qUpsertOutpoint = `
	INSERT INTO spend_outpoints (deposit_txid, deposit_vout, spend_txid)
	VALUES ($1, $2, $3)
	ON CONFLICT (deposit_txid, deposit_vout) DO UPDATE SET spend_txid = EXCLUDED.spend_txid
`

const qUpsertOutpointsBulk = `
	INSERT INTO spend_outpoints (deposit_txid, deposit_vout, spend_txid)
	SELECT o.deposit_txid, o.deposit_vout, $3::BYTEA
	FROM UNNEST($1::BYTEA[], $2::INTEGER[]) AS o(deposit_txid, deposit_vout)
	ON CONFLICT (deposit_txid, deposit_vout) DO UPDATE SET spend_txid = EXCLUDED.spend_txid
`

func (s *Store) upsertOutpointsBulk(ctx context.Context, dbTx *sqlx.Tx, txIDs [][]byte, vouts []int32, spendTxID []byte) error {
	_, err := dbTx.ExecContext(ctx, qUpsertOutpointsBulk, s.arrayArg(txIDs), s.arrayArg(vouts), spendTxID)
	if err != nil {
		return fmt.Errorf("failed to upsert spend outpoints: %w", err)
	}

	return nil
}

func upsertOutpoints(ctx context.Context, dbTx *sqlx.Tx, txIDs [][]byte, vouts []int32, spendTxID []byte) error {
	stmt, err := dbTx.PreparexContext(ctx, qUpsertOutpoint)
	if err != nil {
		return fmt.Errorf("failed to prepare spend outpoint upsert: %w", err)
	}
	defer stmt.Close()

	for i := range txIDs {
		if _, err = stmt.ExecContext(ctx, txIDs[i], vouts[i], spendTxID); err != nil {
			return fmt.Errorf("failed to upsert spend outpoint: %w", err)
		}
	}

	return nil
}

// arrayArg adapts a slice for an array parameter. lib/pq needs a pq.Array wrapper, pgx
// encodes slices natively.
func (s *Store) arrayArg(v any) any {
	if s.params.Scheme() == dbconn.SchemePostgres {
		return pq.Array(v)
	}

	return v
}

// outpointColumns converts outpoints into column values, dropping repeated outpoints.
func outpointColumns(outpoints []store.Outpoint) ([][]byte, []int32, error) {
	seen := make(map[store.Outpoint]struct{}, len(outpoints))
	txIDs := make([][]byte, 0, len(outpoints))
	vouts := make([]int32, 0, len(outpoints))

	for _, o := range outpoints {
		if _, found := seen[o]; found {
			continue
		}
		seen[o] = struct{}{}

		vout, err := safecast.ToInt32(o.Vout)
		if err != nil {
			return nil, nil, errors.Join(store.ErrInvalidOutpoint, fmt.Errorf("outpoint %s: %w", o, err))
		}

		txIDs = append(txIDs, o.TxID.CloneBytes())
		vouts = append(vouts, vout)
	}

	return txIDs, vouts, nil
}
