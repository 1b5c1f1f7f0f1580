package store

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/wire"

	"github.com/bsv-blockchain/go-sdk/chainhash"
)

var ErrInvalidTransaction = errors.New("invalid transaction")

// SpendTxID returns the witness-stripped id of tx.
func SpendTxID(tx *wire.MsgTx) chainhash.Hash {
	return chainhash.Hash(tx.TxHash())
}

// SerializeTx encodes tx in consensus format, with witness data when tx carries any.
func SerializeTx(tx *wire.MsgTx) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(tx.SerializeSize())

	if err := tx.Serialize(&buf); err != nil {
		return nil, errors.Join(ErrInvalidTransaction, err)
	}

	return buf.Bytes(), nil
}

// DeserializeTx decodes a consensus encoded transaction. Trailing bytes are rejected.
func DeserializeTx(raw []byte) (*wire.MsgTx, error) {
	r := bytes.NewReader(raw)
	tx := wire.NewMsgTx(wire.TxVersion)

	if err := tx.Deserialize(r); err != nil {
		return nil, errors.Join(ErrInvalidTransaction, err)
	}
	if r.Len() != 0 {
		return nil, errors.Join(ErrInvalidTransaction, fmt.Errorf("%d trailing bytes", r.Len()))
	}

	return tx, nil
}

func NewTxFromHex(s string) (*wire.MsgTx, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Join(ErrInvalidTransaction, err)
	}

	return DeserializeTx(raw)
}

func TxHex(tx *wire.MsgTx) (string, error) {
	raw, err := SerializeTx(tx)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(raw), nil
}
