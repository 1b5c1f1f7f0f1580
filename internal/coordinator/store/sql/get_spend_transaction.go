package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ccoveille/go-safecast"
	"go.opentelemetry.io/otel/attribute"

	"github.com/btcsuite/btcd/wire"

	"github.com/revault/coordinatord/internal/coordinator/store"
	"github.com/revault/coordinatord/pkg/tracing"
)

// GetSpendTransaction returns the spend transaction claiming outpoint, or nil if the
// outpoint has never been claimed.
func (s *Store) GetSpendTransaction(ctx context.Context, outpoint store.Outpoint) (tx *wire.MsgTx, err error) {
	start := s.now()
	ctx, span := tracing.StartTracing(ctx, "GetSpendTransaction", s.tracingEnabled, append(s.tracingAttributes, attribute.String("outpoint", outpoint.String()))...)
	defer func() {
		s.observe("get_spend_transaction", start, err)
		tracing.EndTracing(span, err)
	}()

	vout, err := safecast.ToInt32(outpoint.Vout)
	if err != nil {
		return nil, errors.Join(store.ErrFailedToGetSpendTransaction, store.ErrInvalidOutpoint, err)
	}

	sess, err := s.openSession(ctx)
	if err != nil {
		return nil, errors.Join(store.ErrFailedToGetSpendTransaction, err)
	}
	defer sess.Close()

	const q = `
		SELECT t.raw_tx
		FROM spend_txs AS t
		INNER JOIN spend_outpoints AS o ON t.txid = o.spend_txid
		WHERE o.deposit_txid = $1 AND o.deposit_vout = $2
		LIMIT 1
	`

	var raw []byte
	err = sess.conn.QueryRowContext(ctx, q, outpoint.TxID.CloneBytes(), vout).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Join(store.ErrFailedToGetSpendTransaction, err)
	}

	tx, err = store.DeserializeTx(raw)
	if err != nil {
		sess.logger.Error("Stored spend transaction could not be decoded", slog.String("outpoint", outpoint.String()), slog.String("err", err.Error()))
		return nil, errors.Join(store.ErrInvalidRecord, fmt.Errorf("spend transaction: %w", err))
	}

	return tx, nil
}
