package sql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bsv-blockchain/go-sdk/chainhash"
	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"go.opentelemetry.io/otel/attribute"

	"github.com/revault/coordinatord/internal/coordinator/store"
	"github.com/revault/coordinatord/pkg/tracing"
)

type signatureRow struct {
	PubKey    []byte `db:"pubkey"`
	Signature []byte `db:"signature"`
}

// GetSignatures returns every signature stored for txID, one per public key.
func (s *Store) GetSignatures(ctx context.Context, txID chainhash.Hash) (sigs store.Signatures, err error) {
	start := s.now()
	ctx, span := tracing.StartTracing(ctx, "GetSignatures", s.tracingEnabled, append(s.tracingAttributes, attribute.String("txid", txID.String()))...)
	defer func() {
		s.observe("get_signatures", start, err)
		tracing.EndTracing(span, err)
	}()

	sess, err := s.openSession(ctx)
	if err != nil {
		return nil, errors.Join(store.ErrFailedToGetSignatures, err)
	}
	defer sess.Close()

	const q = `
		SELECT
		 pubkey
		,signature
		FROM signatures
		WHERE txid = $1
		ORDER BY id
	`

	var rows []signatureRow
	if err = sess.conn.SelectContext(ctx, &rows, q, txID.CloneBytes()); err != nil {
		return nil, errors.Join(store.ErrFailedToGetSignatures, err)
	}

	entries := make([]store.PubKeySignature, 0, len(rows))
	for _, r := range rows {
		pubKey, err := ec.ParsePubKey(r.PubKey)
		if err != nil {
			sess.logger.Error("Stored public key is not a valid compressed point", slog.String("txid", txID.String()), slog.String("err", err.Error()))
			return nil, errors.Join(store.ErrInvalidRecord, fmt.Errorf("public key: %w", err))
		}

		sig, err := ec.ParseDERSignature(r.Signature)
		if err != nil {
			sess.logger.Error("Stored signature is not DER encoded", slog.String("txid", txID.String()), slog.String("err", err.Error()))
			return nil, errors.Join(store.ErrInvalidRecord, fmt.Errorf("signature: %w", err))
		}

		entries = append(entries, store.PubKeySignature{PubKey: pubKey, Signature: sig})
	}

	return store.NewSignatures(entries), nil
}
