package main

import (
	"fmt"

	"smart-hospital-display/pkg/utils"

	"github.com/spf13/cobra"
)

var hashKeyCmd = &cobra.Command{
	Use:   "hash-key <staff-key>",
	Short: "Print the bcrypt hash to use as STAFF_API_KEY_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := utils.HashAPIKey(args[0])
		if err != nil {
			return fmt.Errorf("failed to hash key: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashKeyCmd)
}
