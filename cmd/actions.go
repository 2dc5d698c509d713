package cmd

import (
	"fmt"

	"github.com/jsphweid/midi2hltas/action"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(actionsCmd)
}

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "Lists action names",
	Long: `Lists the action names accepted by --actions and the config file.
slot takes a number (slot:2), emit and emit-dynamic take sound,channel,volume,from.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range action.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}
