package bootstrap

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/revault/coordinatord/cmd/coordinator-cli/helper"
	"github.com/revault/coordinatord/internal/coordinator"
	coordinatorsql "github.com/revault/coordinatord/internal/coordinator/store/sql"
)

var Cmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Create the coordinator schema if missing and print its version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, logger, err := helper.NewStore()
		if err != nil {
			return err
		}

		version, err := coordinator.Bootstrap(cmd.Context(), s, coordinatorsql.SchemaVersion, logger)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)

		return nil
	},
}
