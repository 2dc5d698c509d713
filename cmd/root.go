package cmd

import (
	"log"
	"os"

	"github.com/jsphweid/midi2hltas/constants"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logger     = log.New(os.Stderr, "", log.Ldate|log.Ltime)
)

var rootCmd = &cobra.Command{
	Use:   "midi2hltas",
	Short: "Turns midi files into HLTAS scripts",
	Long: `Turns midi files into HLTAS scripts. Every track re-triggers its action once per
oscillation period of the note it plays, so the script "sings" the song in game.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", constants.GetConfigPath(), "JSON config file (defaults to $MIDI2HLTAS_CONFIG)")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
