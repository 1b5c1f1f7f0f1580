package sql

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/bsv-blockchain/go-sdk/chainhash"
	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"go.opentelemetry.io/otel/attribute"

	"github.com/revault/coordinatord/internal/coordinator/store"
	"github.com/revault/coordinatord/pkg/tracing"
)

// StoreSignature records the signature of pubKey for txID. The exact signature bytes may be
// stored only once; any attempt to store them again fails with store.ErrDuplicate, also when
// two callers race on the same signature.
func (s *Store) StoreSignature(ctx context.Context, txID chainhash.Hash, pubKey *ec.PublicKey, sig *ec.Signature) (err error) {
	start := s.now()
	ctx, span := tracing.StartTracing(ctx, "StoreSignature", s.tracingEnabled, append(s.tracingAttributes, attribute.String("txid", txID.String()))...)
	defer func() {
		s.observe("store_signature", start, err)
		tracing.EndTracing(span, err)
	}()

	if pubKey == nil || sig == nil {
		return errors.Join(store.ErrFailedToStoreSignature, store.ErrNilSignature)
	}

	sess, err := s.openSession(ctx)
	if err != nil {
		return errors.Join(store.ErrFailedToStoreSignature, err)
	}
	defer sess.Close()

	sigBytes := sig.Serialize()

	const qExists = `SELECT 1 FROM signatures WHERE signature = $1`

	var found int
	err = sess.conn.QueryRowContext(ctx, qExists, sigBytes).Scan(&found)
	switch {
	case err == nil:
		return store.ErrDuplicate
	case !errors.Is(err, sql.ErrNoRows):
		return errors.Join(store.ErrFailedToStoreSignature, err)
	}

	const qInsert = `INSERT INTO signatures (txid, pubkey, signature) VALUES ($1, $2, $3)`

	_, err = sess.conn.ExecContext(ctx, qInsert, txID.CloneBytes(), pubKey.Compressed(), sigBytes)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.Join(store.ErrDuplicate, err)
		}
		return errors.Join(store.ErrFailedToStoreSignature, err)
	}

	sess.logger.Debug("Signature stored", slog.String("txid", txID.String()))

	return nil
}
