package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"leadscout/internal/secrets"
)

func authCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "auth",
		Short: "Manage the API key stored in the OS keychain",
	}

	set := &cobra.Command{
		Use:   "set <api-key>",
		Short: "Store the API key in the OS keychain",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := secrets.StoreAPIKey(args[0]); err != nil {
				return err
			}
			fmt.Println("API key stored in keychain.")
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Remove the API key from the OS keychain",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if err := secrets.ClearAPIKey(); err != nil {
				return err
			}
			fmt.Println("API key removed from keychain.")
			return nil
		},
	}

	c.AddCommand(set, clear)
	return c
}
