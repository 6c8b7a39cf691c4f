package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNoDatabase = errors.New("command needs a database, unset SKIP_DB")

func initMigrateCommands(rootCmd *cobra.Command, env *environment) {
	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := env.load(); err != nil {
				return err
			}
			if env.cfg.Features.SkipDBEnabled() {
				return errNoDatabase
			}

			storage, err := env.openStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStorage(storage, env.log)

			fmt.Fprintf(cmd.OutOrStdout(), "Schema is up to date (%s)\n", env.cfg.Database.Type)
			return nil
		},
	}
	rootCmd.AddCommand(migrateCmd)
}
