package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func initServiceTypeCommands(rootCmd *cobra.Command, env *environment) {
	var serviceTypesCmd = &cobra.Command{
		Use:   "service-types",
		Short: "Inspect the service type catalog",
	}

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List service types ordered by title",
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, storage, err := env.services(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStorage(storage, env.log)

			list, err := services.ServiceTypes.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tDESCRIPTION")
			for _, st := range list {
				desc := ""
				if st.Description != nil {
					desc = *st.Description
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", st.ID, st.Title, desc)
			}
			return w.Flush()
		},
	}
	serviceTypesCmd.AddCommand(listCmd)

	rootCmd.AddCommand(serviceTypesCmd)
}
