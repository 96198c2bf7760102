package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/position"
	"github.com/jsphweid/fretdex/voicing"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

var exportDir string

func init() {
	exportCmd.Flags().StringVar(&exportDir, "dir", "out", "directory the .mid files land in")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes a chord or scale position as a MIDI file",
	Long: `Writes a chord or scale position as a MIDI file:
  export chord C maj7
  export position A minor-pentatonic 1`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 3 {
			panic("Need: chord <root> <quality> or position <root> <scale> <number>")
		}
		switch args[0] {
		case "chord":
			exportChord(args[1], args[2])
		case "position":
			if len(args) != 4 {
				panic("Need: position <root> <scale> <number>")
			}
			exportPosition(args[1], args[2], args[3])
		default:
			panic("Unknown subject: " + args[0])
		}
	},
}

func exportChord(rootArg, qualityArg string) {
	root, q := parseChordArgs(rootArg, qualityArg)
	t := currentTuning()
	vs := voicing.Generate(root, q, t, model.FilterAll)
	if len(vs) == 0 {
		panic("No voicings for " + rootArg + qualityArg)
	}
	writeSMF(midi.VoicingSMF(vs[0], t))
}

func exportPosition(rootArg, scaleArg, numberArg string) {
	root, ok := note.ParseClass(rootArg)
	if !ok {
		panic("Bad root: " + rootArg)
	}
	st, ok := model.ParseScaleType(scaleArg)
	if !ok {
		panic("Bad scale: " + scaleArg)
	}
	number, err := strconv.Atoi(numberArg)
	if err != nil {
		panic(err)
	}

	t := currentTuning()
	ps := position.Generate(root, st, t)
	if number < 1 || number > len(ps) {
		panic("Position out of range: " + numberArg)
	}
	writeSMF(midi.PositionSMF(ps[number-1], t))
}

func writeSMF(s *smf.SMF) {
	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		panic("Could not create output dir: " + err.Error())
	}
	path, err := midi.WriteFile(s, exportDir)
	if err != nil {
		panic("Could not write MIDI file: " + err.Error())
	}
	fmt.Println(path)
}
