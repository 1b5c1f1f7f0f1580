package store

import (
	"context"
	"errors"

	"github.com/bsv-blockchain/go-sdk/chainhash"
	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/btcsuite/btcd/wire"
)

var (
	ErrDuplicate       = errors.New("trying to insert a duplicated entry")
	ErrInvalidRecord   = errors.New("stored record could not be decoded")
	ErrInvalidOutpoint = errors.New("invalid outpoint")
	ErrNilTransaction  = errors.New("transaction is nil")
	ErrNilSignature    = errors.New("public key or signature is nil")

	ErrFailedToOpenDB                = errors.New("failed to open database")
	ErrUnableToGetSQLConnection      = errors.New("unable to get or create sql connection")
	ErrFailedToBootstrapSchema       = errors.New("failed to bootstrap schema")
	ErrFailedToGetSchemaVersion      = errors.New("failed to get schema version")
	ErrFailedToStoreSignature        = errors.New("failed to store signature")
	ErrFailedToGetSignatures         = errors.New("failed to get signatures")
	ErrFailedToStoreSpendTransaction = errors.New("failed to store spend transaction")
	ErrFailedToGetSpendTransaction   = errors.New("failed to get spend transaction")
)

// CoordinatorStore persists the co-signing artifacts of the vault coordinator.
// Every call acquires its own session to the backing store.
type CoordinatorStore interface {
	BootstrapSchema(ctx context.Context) error
	SchemaVersion(ctx context.Context) (int, error)

	StoreSignature(ctx context.Context, txID chainhash.Hash, pubKey *ec.PublicKey, sig *ec.Signature) error
	GetSignatures(ctx context.Context, txID chainhash.Hash) (Signatures, error)

	// StoreSpendTransaction records tx and claims all outpoints for it atomically.
	StoreSpendTransaction(ctx context.Context, outpoints []Outpoint, tx *wire.MsgTx) error
	// GetSpendTransaction returns nil without error when no spend transaction claims the outpoint.
	GetSpendTransaction(ctx context.Context, outpoint Outpoint) (*wire.MsgTx, error)

	Ping(ctx context.Context) error
}
