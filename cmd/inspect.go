package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/jsphweid/midi2hltas/midi"
	"github.com/jsphweid/midi2hltas/model"
	"github.com/jsphweid/midi2hltas/util"
	"github.com/spf13/cobra"
)

var (
	dump    bool
	verbose bool
)

func init() {
	inspectCmd.Flags().BoolVar(&dump, "dump", false, "dump the parsed score")
	inspectCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "list every event")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects a midi file",
	Long:  `Prints the tracks of a midi file the way the converter sees them.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := midi.ReadScore(args[0])
		if err != nil {
			return err
		}
		if dump {
			spew.Fdump(cmd.OutOrStdout(), score)
			return nil
		}
		inspect(cmd, score)
		return nil
	},
}

func inspect(cmd *cobra.Command, score model.Score) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "resolution: %v\n", score.Resolution)
	for i, track := range score.Tracks {
		fmt.Fprintf(out, "Track %d: %d events, %d ticks\n", i, len(track), model.TrackTicks(track))

		kinds := make(map[string]int)
		for _, evt := range track {
			kinds[evt.Kind.String()]++
		}
		for _, kind := range util.GetKeys(kinds) {
			fmt.Fprintf(out, "  %v: %v\n", kind, kinds[kind])
		}

		if !verbose {
			continue
		}
		for j, evt := range track {
			switch evt.Kind {
			case model.NoteEvent:
				fmt.Fprintf(out, "  %d: +%d note %d vel %d\n", j, evt.Delta, evt.Pitch, evt.Velocity)
			case model.TempoEvent:
				fmt.Fprintf(out, "  %d: +%d tempo %d\n", j, evt.Delta, evt.Tempo)
			default:
				fmt.Fprintf(out, "  %d: +%d %v\n", j, evt.Delta, evt.Kind)
			}
		}
	}
}
