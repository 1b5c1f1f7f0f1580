package store

import (
	"bytes"
	"testing"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutpointFromString(t *testing.T) {
	testCases := []struct {
		name  string
		input string

		expectedVout uint32
		expectedErr  error
	}{
		{
			name:         "valid",
			input:        "1a8fda8c35b8fc30885e88d6eb0214e2b3a74c96c82c386cb463905446011fdf:3",
			expectedVout: 3,
		},
		{
			name:        "missing vout",
			input:       "1a8fda8c35b8fc30885e88d6eb0214e2b3a74c96c82c386cb463905446011fdf",
			expectedErr: ErrInvalidOutpoint,
		},
		{
			name:        "invalid txid",
			input:       "not-a-txid:0",
			expectedErr: ErrInvalidOutpoint,
		},
		{
			name:        "vout overflow",
			input:       "1a8fda8c35b8fc30885e88d6eb0214e2b3a74c96c82c386cb463905446011fdf:4294967296",
			expectedErr: ErrInvalidOutpoint,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			outpoint, err := NewOutpointFromString(tc.input)

			// then
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedVout, outpoint.Vout)
			assert.Equal(t, tc.input, outpoint.String())
		})
	}
}

func TestNewSignatures(t *testing.T) {
	newEntry := func(t *testing.T, priv *ec.PrivateKey, msg string) PubKeySignature {
		t.Helper()

		hash := bytes.Repeat([]byte(msg), 32)[:32]
		sig, err := priv.Sign(hash)
		require.NoError(t, err)

		return PubKeySignature{PubKey: priv.PubKey(), Signature: sig}
	}

	privA, err := ec.NewPrivateKey()
	require.NoError(t, err)
	privB, err := ec.NewPrivateKey()
	require.NoError(t, err)
	privC, err := ec.NewPrivateKey()
	require.NoError(t, err)

	t.Run("sorted by compressed public key", func(t *testing.T) {
		// when
		sigs := NewSignatures([]PubKeySignature{
			newEntry(t, privC, "c"),
			newEntry(t, privA, "a"),
			newEntry(t, privB, "b"),
		})

		// then
		require.Equal(t, 3, sigs.Len())
		for i := 1; i < sigs.Len(); i++ {
			assert.Negative(t, bytes.Compare(sigs[i-1].PubKey.Compressed(), sigs[i].PubKey.Compressed()))
		}
		assert.Len(t, sigs.PubKeys(), 3)
	})

	t.Run("last entry for a public key wins", func(t *testing.T) {
		// given
		first := newEntry(t, privA, "1")
		second := newEntry(t, privA, "2")

		// when
		sigs := NewSignatures([]PubKeySignature{first, newEntry(t, privB, "b"), second})

		// then
		require.Equal(t, 2, sigs.Len())
		sig, found := sigs.Get(privA.PubKey())
		require.True(t, found)
		assert.Equal(t, second.Signature.Serialize(), sig.Serialize())
	})

	t.Run("unknown public key", func(t *testing.T) {
		// given
		sigs := NewSignatures([]PubKeySignature{newEntry(t, privA, "a")})

		// when
		_, found := sigs.Get(privB.PubKey())

		// then
		assert.False(t, found)
	})
}
