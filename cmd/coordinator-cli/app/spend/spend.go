package spend

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/revault/coordinatord/cmd/coordinator-cli/helper"
	"github.com/revault/coordinatord/internal/coordinator/store"
)

var Cmd = &cobra.Command{
	Use:   "spend",
	Short: "Store and fetch spend transactions of vault deposits",
}

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Store a spend transaction for the given deposit outpoints",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rawTx, err := helper.GetString("spend.tx")
		if err != nil {
			return err
		}
		tx, err := store.NewTxFromHex(rawTx)
		if err != nil {
			return err
		}

		outpointStrs, err := helper.GetStringSlice("spend.outpoint")
		if err != nil {
			return err
		}
		outpoints := make([]store.Outpoint, 0, len(outpointStrs))
		for _, o := range outpointStrs {
			outpoint, err := store.NewOutpointFromString(o)
			if err != nil {
				return err
			}
			outpoints = append(outpoints, outpoint)
		}

		s, _, err := helper.NewStore()
		if err != nil {
			return err
		}

		if err = s.StoreSpendTransaction(cmd.Context(), outpoints, tx); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), store.SpendTxID(tx).String())

		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <txid:vout>",
	Short: "Print the spend transaction claiming a deposit outpoint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outpoint, err := store.NewOutpointFromString(args[0])
		if err != nil {
			return err
		}

		s, _, err := helper.NewStore()
		if err != nil {
			return err
		}

		tx, err := s.GetSpendTransaction(cmd.Context(), outpoint)
		if err != nil {
			return err
		}
		if tx == nil {
			return fmt.Errorf("no spend transaction for %s", outpoint)
		}

		rawTx, err := store.TxHex(tx)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), rawTx)

		return nil
	},
}

func init() {
	var err error

	storeCmd.Flags().String("tx", "", "Raw spend transaction, hex")
	err = viper.BindPFlag("spend.tx", storeCmd.Flags().Lookup("tx"))
	if err != nil {
		log.Fatal(err)
	}

	storeCmd.Flags().StringSlice("outpoint", []string{}, "Deposit outpoint txid:vout spent by the transaction, repeatable")
	err = viper.BindPFlag("spend.outpoint", storeCmd.Flags().Lookup("outpoint"))
	if err != nil {
		log.Fatal(err)
	}

	Cmd.AddCommand(storeCmd)
	Cmd.AddCommand(getCmd)
}
