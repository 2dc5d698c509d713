package cmd

import (
	"os"

	"github.com/jsphweid/midi2hltas/convert"
	"github.com/jsphweid/midi2hltas/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	convertOpts convertFlags
	outPath     string
	toStdout    bool
)

func init() {
	convertOpts.register(convertCmd.Flags())
	convertCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: next to the midi file with a .hltas extension)")
	convertCmd.Flags().BoolVar(&toStdout, "stdout", false, "write the script to stdout")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <file.mid|dir>",
	Short: "Converts midi files to HLTAS scripts",
	Long: `Converts a midi file, or every midi file under a directory, to an HLTAS script.
The action table must have exactly one entry per track.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := convertOpts.options(cmd.Flags())
		if err != nil {
			return err
		}

		info, err := os.Stat(args[0])
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return convertOne(cmd, args[0], outPath, opts)
		}

		if outPath != "" || toStdout {
			return errors.New("--out and --stdout only work with a single file")
		}
		paths, err := util.GatherAllMidiPaths(args[0], 0)
		if err != nil {
			return err
		}
		for i, path := range paths {
			logger.Printf("Processing %v of %v midi files", i+1, len(paths))
			if err := convertOne(cmd, path, "", opts); err != nil {
				// one bad file should not stop the batch
				logger.Printf("Skipping %v because: %v", path, err)
			}
		}
		return nil
	},
}

func convertOne(cmd *cobra.Command, path string, out string, opts convert.Options) error {
	res, err := convert.File(path, opts)
	if err != nil {
		return errors.Wrap(err, path)
	}
	if toStdout {
		_, err = cmd.OutOrStdout().Write(res.Script)
		return err
	}
	if out == "" {
		out = convert.OutputPath(path)
	}
	if err := os.WriteFile(out, res.Script, 0o644); err != nil {
		return errors.Wrap(err, "writing script")
	}
	logger.Printf("Wrote %v records to %v", res.Summary.Records, out)
	return nil
}
