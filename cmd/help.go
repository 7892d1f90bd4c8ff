package cmd

import (
	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: L("Help for agenda"),
	Long:  L("Help for agenda"),
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Root().Help()
	},
}
