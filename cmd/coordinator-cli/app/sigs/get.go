package sigs

import (
	"encoding/hex"
	"fmt"

	"github.com/bsv-blockchain/go-sdk/chainhash"
	"github.com/spf13/cobra"

	"github.com/revault/coordinatord/cmd/coordinator-cli/helper"
)

var getCmd = &cobra.Command{
	Use:   "get <txid>",
	Short: "Print all signatures stored for a transaction, one per public key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		txID, err := chainhash.NewHashFromHex(args[0])
		if err != nil {
			return fmt.Errorf("invalid txid: %w", err)
		}

		s, _, err := helper.NewStore()
		if err != nil {
			return err
		}

		sigs, err := s.GetSignatures(cmd.Context(), *txID)
		if err != nil {
			return err
		}

		for _, e := range sigs {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", hex.EncodeToString(e.PubKey.Compressed()), hex.EncodeToString(e.Signature.Serialize()))
		}

		return nil
	},
}
