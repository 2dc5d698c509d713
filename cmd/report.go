package cmd

import (
	"github.com/jsphweid/midi2hltas/convert"
	"github.com/spf13/cobra"
)

var reportOpts convertFlags

func init() {
	reportOpts.register(reportCmd.Flags())
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <file.mid>",
	Short: "Creates a report",
	Long:  `Runs a conversion without writing the script and reports what it would contain.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := reportOpts.options(cmd.Flags())
		if err != nil {
			return err
		}
		res, err := convert.File(args[0], opts)
		if err != nil {
			return err
		}
		res.Summary.Print(cmd.OutOrStdout())
		return nil
	},
}
