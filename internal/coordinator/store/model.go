package store

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bsv-blockchain/go-sdk/chainhash"
	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
)

// Outpoint references one output of a prior transaction, e.g. a vault deposit.
type Outpoint struct {
	TxID chainhash.Hash
	Vout uint32
}

func (o Outpoint) String() string {
	return fmt.Sprintf("%s:%d", o.TxID.String(), o.Vout)
}

// NewOutpointFromString parses the "txid:vout" notation.
func NewOutpointFromString(s string) (Outpoint, error) {
	txidStr, voutStr, found := strings.Cut(s, ":")
	if !found {
		return Outpoint{}, errors.Join(ErrInvalidOutpoint, fmt.Errorf("missing vout in %q", s))
	}

	txID, err := chainhash.NewHashFromHex(txidStr)
	if err != nil {
		return Outpoint{}, errors.Join(ErrInvalidOutpoint, err)
	}

	vout, err := strconv.ParseUint(voutStr, 10, 32)
	if err != nil {
		return Outpoint{}, errors.Join(ErrInvalidOutpoint, err)
	}

	return Outpoint{TxID: *txID, Vout: uint32(vout)}, nil
}

type PubKeySignature struct {
	PubKey    *ec.PublicKey
	Signature *ec.Signature
}

// Signatures holds at most one signature per public key, ordered by the compressed
// encoding of the key.
type Signatures []PubKeySignature

// NewSignatures builds the collection from entries in insertion order. A later entry for
// the same public key replaces an earlier one.
func NewSignatures(entries []PubKeySignature) Signatures {
	byKey := make(map[string]int, len(entries))
	sigs := make(Signatures, 0, len(entries))

	for _, e := range entries {
		key := string(e.PubKey.Compressed())
		if i, found := byKey[key]; found {
			sigs[i] = e
			continue
		}
		byKey[key] = len(sigs)
		sigs = append(sigs, e)
	}

	sort.Slice(sigs, func(i, j int) bool {
		return bytes.Compare(sigs[i].PubKey.Compressed(), sigs[j].PubKey.Compressed()) < 0
	})

	return sigs
}

// Get returns the signature stored for pubKey, if any.
func (s Signatures) Get(pubKey *ec.PublicKey) (*ec.Signature, bool) {
	key := pubKey.Compressed()
	i := sort.Search(len(s), func(i int) bool {
		return bytes.Compare(s[i].PubKey.Compressed(), key) >= 0
	})
	if i < len(s) && bytes.Equal(s[i].PubKey.Compressed(), key) {
		return s[i].Signature, true
	}

	return nil, false
}

func (s Signatures) Len() int {
	return len(s)
}

func (s Signatures) PubKeys() []*ec.PublicKey {
	keys := make([]*ec.PublicKey, len(s))
	for i, e := range s {
		keys[i] = e.PubKey
	}

	return keys
}
