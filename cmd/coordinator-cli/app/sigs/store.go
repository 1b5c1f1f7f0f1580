package sigs

import (
	"errors"
	"fmt"
	"log"

	"github.com/bsv-blockchain/go-sdk/chainhash"
	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/revault/coordinatord/cmd/coordinator-cli/helper"
	"github.com/revault/coordinatord/internal/coordinator/store"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Store the signature of a public key for a transaction",
	RunE: func(cmd *cobra.Command, _ []string) error {
		txIDStr, err := helper.GetString("sigs.txid")
		if err != nil {
			return err
		}
		txID, err := chainhash.NewHashFromHex(txIDStr)
		if err != nil {
			return fmt.Errorf("invalid txid: %w", err)
		}

		pubKeyBytes, err := helper.DecodeHex("sigs.pubkey")
		if err != nil {
			return err
		}
		pubKey, err := ec.ParsePubKey(pubKeyBytes)
		if err != nil {
			return fmt.Errorf("invalid public key: %w", err)
		}

		sigBytes, err := helper.DecodeHex("sigs.sig")
		if err != nil {
			return err
		}
		sig, err := ec.ParseDERSignature(sigBytes)
		if err != nil {
			return fmt.Errorf("invalid signature: %w", err)
		}

		s, _, err := helper.NewStore()
		if err != nil {
			return err
		}

		err = s.StoreSignature(cmd.Context(), *txID, pubKey, sig)
		if errors.Is(err, store.ErrDuplicate) {
			return errors.New("signature already stored")
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "stored")

		return nil
	},
}

func init() {
	var err error

	storeCmd.Flags().String("txid", "", "Transaction id the signature is for")
	err = viper.BindPFlag("sigs.txid", storeCmd.Flags().Lookup("txid"))
	if err != nil {
		log.Fatal(err)
	}

	storeCmd.Flags().String("pubkey", "", "Compressed public key, hex")
	err = viper.BindPFlag("sigs.pubkey", storeCmd.Flags().Lookup("pubkey"))
	if err != nil {
		log.Fatal(err)
	}

	storeCmd.Flags().String("sig", "", "DER encoded signature, hex")
	err = viper.BindPFlag("sigs.sig", storeCmd.Flags().Lookup("sig"))
	if err != nil {
		log.Fatal(err)
	}
}
