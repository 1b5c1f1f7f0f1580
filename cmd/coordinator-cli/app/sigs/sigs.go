package sigs

import (
	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "sigs",
	Short: "Store and fetch revocation transaction signatures",
}

func init() {
	Cmd.AddCommand(storeCmd)
	Cmd.AddCommand(getCmd)
}
