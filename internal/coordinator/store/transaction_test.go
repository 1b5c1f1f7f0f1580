package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	witnessTxHex = "02000000000101df1f0146549063b46c382cc8964ca7b3e21402ebd6885e8830fcb8358cda8f1a0000000000fdffffff01b882010000000000220020108dd7e00dfb91ad52677e7c2492c0f9075d26b7dc482920d602f9fa98f46382030047000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f202122232425262728292a2b2c2d2e2f303132333435363738393a3b3c3d3e3f4041424344454605515152525300000000"
	witnessTxID  = "f06b8631e70813b8bd99100cae3dd7c90316fa6e46f77f8565edbf5c1fcc2be7"
	legacyTxHex  = "01000000010000000000000000000000000000000000000000000000000000000000000000ffffffff1a0386c40b2f7461616c2e636f6d2f00cf47ad9c7af83836000000ffffffff0117564425000000001976a914522cf9e7626d9bd8729e5a1398ece40dad1b6a2f88ac00000000"
)

func TestNewTxFromHex(t *testing.T) {
	testCases := []struct {
		name  string
		input string

		expectedErr error
	}{
		{
			name:  "witness transaction",
			input: witnessTxHex,
		},
		{
			name:  "legacy transaction",
			input: legacyTxHex,
		},
		{
			name:        "not hex",
			input:       "zz",
			expectedErr: ErrInvalidTransaction,
		},
		{
			name:        "truncated",
			input:       witnessTxHex[:40],
			expectedErr: ErrInvalidTransaction,
		},
		{
			name:        "trailing bytes",
			input:       legacyTxHex + "00",
			expectedErr: ErrInvalidTransaction,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			tx, err := NewTxFromHex(tc.input)

			// then
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)

			actual, err := TxHex(tx)
			require.NoError(t, err)
			assert.Equal(t, tc.input, actual)
		})
	}
}

func TestSpendTxID(t *testing.T) {
	// given
	tx, err := NewTxFromHex(witnessTxHex)
	require.NoError(t, err)

	// then
	require.Len(t, tx.TxIn, 1)
	assert.Len(t, tx.TxIn[0].Witness, 3)
	assert.Equal(t, witnessTxID, SpendTxID(tx).String())
}
