package cmd

import (
	"fmt"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/position"
	"github.com/spf13/cobra"
)

var (
	fullFretboard bool
	posMaxFret    int
)

func init() {
	positionsCmd.Flags().BoolVar(&fullFretboard, "full", false, "light up the whole neck instead of boxes")
	positionsCmd.Flags().IntVar(&posMaxFret, "max-fret", 0, "cap for --full, 0 for the default")
	rootCmd.AddCommand(positionsCmd)
}

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "Generates scale fingering positions",
	Long:  `Generates scale fingering positions, e.g. positions A minor-pentatonic`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need a root and a scale, e.g. A minor-pentatonic")
		}
		positions(args[0], args[1])
	},
}

func positions(rootArg, scaleArg string) {
	root, ok := note.ParseClass(rootArg)
	if !ok {
		panic("Bad root: " + rootArg)
	}
	st, ok := model.ParseScaleType(scaleArg)
	if !ok {
		panic("Bad scale: " + scaleArg)
	}
	t := currentTuning()

	if fullFretboard {
		for _, n := range position.FullFretboard(root, st, t, posMaxFret) {
			fmt.Printf("string %v fret %v: %v (%v)\n", n.String, n.Fret, n.Note, n.Interval)
		}
		return
	}

	for _, p := range position.Generate(root, st, t) {
		fmt.Printf("position %v (frets %v-%v)\n", p.Number, p.StartFret, p.EndFret)
		for _, n := range p.Notes {
			fmt.Printf("  string %v fret %v: %v (%v)\n", n.String, n.Fret, n.Note, n.Interval)
		}
	}
}
