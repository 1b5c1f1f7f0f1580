package sql

import (
	"context"
	"math"
	"testing"

	"github.com/bsv-blockchain/go-sdk/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revault/coordinatord/internal/coordinator/store"
)

func TestStoreSpendTransaction(t *testing.T) {
	ctx := context.Background()
	deposit := "1a8fda8c35b8fc30885e88d6eb0214e2b3a74c96c82c386cb463905446011fdf"

	t.Run("store and fetch for every outpoint", func(t *testing.T) {
		// given
		sut, _ := newTestStore(t)
		tx := spendTx(t, spendTxHex1)
		outpoints := []store.Outpoint{outpoint(t, deposit+":0"), outpoint(t, deposit+":1")}

		// when
		err := sut.StoreSpendTransaction(ctx, outpoints, tx)

		// then
		require.NoError(t, err)
		for _, o := range outpoints {
			actual, err := sut.GetSpendTransaction(ctx, o)
			require.NoError(t, err)
			require.NotNil(t, actual)
			if diff := cmp.Diff(rawBytes(t, tx), rawBytes(t, actual)); diff != "" {
				t.Errorf("spend transaction for %s mismatch (-want +got):\n%s", o, diff)
			}
		}
	})

	t.Run("witness transaction", func(t *testing.T) {
		// given
		sut, db := newTestStore(t)
		tx := spendTx(t, witnessSpendTxHex)
		o := outpoint(t, deposit+":0")

		// when
		err := sut.StoreSpendTransaction(ctx, []store.Outpoint{o}, tx)

		// then
		require.NoError(t, err)

		var storedID []byte
		require.NoError(t, db.Get(&storedID, `SELECT txid FROM spend_txs`))
		assert.Equal(t, witnessSpendTxID, txIDFromBytes(t, storedID).String())

		actual, err := sut.GetSpendTransaction(ctx, o)
		require.NoError(t, err)
		require.NotNil(t, actual)
		require.Len(t, actual.TxIn, 1)
		assert.Len(t, actual.TxIn[0].Witness, 3)

		actualHex, err := store.TxHex(actual)
		require.NoError(t, err)
		assert.Equal(t, witnessSpendTxHex, actualHex)
	})

	t.Run("storing the same transaction again is a no-op", func(t *testing.T) {
		// given
		sut, db := newTestStore(t)
		tx := spendTx(t, spendTxHex1)
		outpoints := []store.Outpoint{outpoint(t, deposit+":0")}
		require.NoError(t, sut.StoreSpendTransaction(ctx, outpoints, tx))

		// when
		err := sut.StoreSpendTransaction(ctx, outpoints, tx)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, countRows(t, db, "spend_txs"))
		assert.Equal(t, 1, countRows(t, db, "spend_outpoints"))
	})

	t.Run("repeated outpoints in one call", func(t *testing.T) {
		// given
		sut, db := newTestStore(t)
		o := outpoint(t, deposit+":2")

		// when
		err := sut.StoreSpendTransaction(ctx, []store.Outpoint{o, o}, spendTx(t, spendTxHex1))

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, countRows(t, db, "spend_outpoints"))
	})

	t.Run("outpoint claimed by a newer transaction", func(t *testing.T) {
		// given
		sut, db := newTestStore(t)
		first, second := spendTx(t, spendTxHex1), spendTx(t, spendTxHex2)
		shared := outpoint(t, deposit+":0")
		kept := outpoint(t, deposit+":1")
		require.NoError(t, sut.StoreSpendTransaction(ctx, []store.Outpoint{shared, kept}, first))

		// when
		err := sut.StoreSpendTransaction(ctx, []store.Outpoint{shared}, second)

		// then
		require.NoError(t, err)
		assert.Equal(t, 2, countRows(t, db, "spend_txs"))
		assert.Equal(t, 2, countRows(t, db, "spend_outpoints"))

		actual, err := sut.GetSpendTransaction(ctx, shared)
		require.NoError(t, err)
		assert.Equal(t, store.SpendTxID(second), store.SpendTxID(actual))

		actual, err = sut.GetSpendTransaction(ctx, kept)
		require.NoError(t, err)
		assert.Equal(t, store.SpendTxID(first), store.SpendTxID(actual))
	})

	t.Run("no outpoints", func(t *testing.T) {
		// given
		sut, db := newTestStore(t)

		// when
		err := sut.StoreSpendTransaction(ctx, nil, spendTx(t, spendTxHex1))

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, countRows(t, db, "spend_txs"))
		assert.Equal(t, 0, countRows(t, db, "spend_outpoints"))
	})

	t.Run("nil transaction", func(t *testing.T) {
		// given
		sut, db := newTestStore(t)

		// when
		err := sut.StoreSpendTransaction(ctx, []store.Outpoint{outpoint(t, deposit+":0")}, nil)

		// then
		require.ErrorIs(t, err, store.ErrNilTransaction)
		assert.Equal(t, 0, countRows(t, db, "spend_txs"))
	})

	t.Run("vout out of range leaves nothing behind", func(t *testing.T) {
		// given
		sut, db := newTestStore(t)
		valid := outpoint(t, deposit+":0")
		tooLarge := store.Outpoint{TxID: valid.TxID, Vout: math.MaxInt32 + 1}

		// when
		err := sut.StoreSpendTransaction(ctx, []store.Outpoint{valid, tooLarge}, spendTx(t, spendTxHex1))

		// then
		require.ErrorIs(t, err, store.ErrInvalidOutpoint)
		assert.Equal(t, 0, countRows(t, db, "spend_txs"))
		assert.Equal(t, 0, countRows(t, db, "spend_outpoints"))
	})

	t.Run("failure after the transaction insert rolls back", func(t *testing.T) {
		// given
		sut, db := newTestStore(t)
		_, err := db.Exec(`DROP TABLE spend_outpoints`)
		require.NoError(t, err)

		// when
		err = sut.StoreSpendTransaction(ctx, []store.Outpoint{outpoint(t, deposit+":0")}, spendTx(t, spendTxHex1))

		// then
		require.ErrorIs(t, err, store.ErrFailedToStoreSpendTransaction)
		assert.ErrorContains(t, err, "spend outpoint")
		assert.Equal(t, 0, countRows(t, db, "spend_txs"))
	})

	t.Run("backend unreachable", func(t *testing.T) {
		// when
		err := unreachableStore(t).StoreSpendTransaction(ctx, []store.Outpoint{outpoint(t, deposit+":0")}, spendTx(t, spendTxHex1))

		// then
		require.ErrorIs(t, err, store.ErrFailedToStoreSpendTransaction)
	})
}

func TestGetSpendTransaction(t *testing.T) {
	ctx := context.Background()
	deposit := "1a8fda8c35b8fc30885e88d6eb0214e2b3a74c96c82c386cb463905446011fdf"

	t.Run("unknown outpoint", func(t *testing.T) {
		// given
		sut, _ := newTestStore(t)
		require.NoError(t, sut.StoreSpendTransaction(ctx, []store.Outpoint{outpoint(t, deposit+":0")}, spendTx(t, spendTxHex1)))

		// when
		actual, err := sut.GetSpendTransaction(ctx, outpoint(t, deposit+":7"))

		// then
		require.NoError(t, err)
		assert.Nil(t, actual)
	})

	t.Run("vout out of range", func(t *testing.T) {
		// given
		sut, _ := newTestStore(t)
		o := outpoint(t, deposit+":0")
		o.Vout = math.MaxUint32

		// when
		_, err := sut.GetSpendTransaction(ctx, o)

		// then
		require.ErrorIs(t, err, store.ErrInvalidOutpoint)
	})

	t.Run("malformed stored transaction", func(t *testing.T) {
		// given
		sut, db := newTestStore(t)
		o := outpoint(t, deposit+":0")
		spendTxID := []byte("0123456789abcdef0123456789abcdef")
		_, err := db.Exec(`INSERT INTO spend_txs (txid, raw_tx) VALUES ($1, $2)`, spendTxID, []byte{0xde, 0xad})
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO spend_outpoints (deposit_txid, deposit_vout, spend_txid) VALUES ($1, $2, $3)`, o.TxID.CloneBytes(), 0, spendTxID)
		require.NoError(t, err)

		// when
		_, err = sut.GetSpendTransaction(ctx, o)

		// then
		require.ErrorIs(t, err, store.ErrInvalidRecord)
	})

	t.Run("backend unreachable", func(t *testing.T) {
		// when
		_, err := unreachableStore(t).GetSpendTransaction(ctx, outpoint(t, deposit+":0"))

		// then
		require.ErrorIs(t, err, store.ErrFailedToGetSpendTransaction)
	})
}

func rawBytes(t *testing.T, tx *wire.MsgTx) []byte {
	t.Helper()

	raw, err := store.SerializeTx(tx)
	require.NoError(t, err)

	return raw
}

func txIDFromBytes(t *testing.T, b []byte) chainhash.Hash {
	t.Helper()

	h, err := chainhash.NewHash(b)
	require.NoError(t, err)

	return *h
}
