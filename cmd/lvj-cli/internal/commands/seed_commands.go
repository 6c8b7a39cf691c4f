package commands

import (
	"fmt"

	"github.com/Khaledaun/LVJAPP/internal/infrastructure/seed"

	"github.com/spf13/cobra"
)

func initSeedCommands(rootCmd *cobra.Command, env *environment) {
	var seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Load a fixture into the database",
		Long: `seed inserts the users, service types, partner roles and cases of a fixture.
Rows that already exist are skipped, so the command can be run repeatedly.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fixture, _ := cmd.Flags().GetString("fixture")
			file, _ := cmd.Flags().GetString("file")

			var (
				fx  *seed.Fixtures
				err error
			)
			if file != "" {
				fx, err = seed.LoadFile(file)
			} else {
				fx, err = seed.Load(fixture)
			}
			if err != nil {
				return err
			}

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

			summary, err := seed.Apply(cmd.Context(), storage.Repos, fx, env.log)
			if err != nil {
				return fmt.Errorf("failed to apply fixture: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), summary.String())
			return nil
		},
	}
	seedCmd.Flags().StringP("fixture", "", seed.FixtureSeed, "Embedded fixture to load (dev or seed)")
	seedCmd.Flags().StringP("file", "", "", "Path to a fixture YAML file; overrides --fixture")
	rootCmd.AddCommand(seedCmd)
}
