package cmd

import (
	"strings"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fretdex",
	Short: "Guitar fretboard harmony engine",
	Long:  `Identifies chords, scales and keys from frettings and generates voicings and scale positions.`,
}

var tuningName string

func init() {
	rootCmd.PersistentFlags().StringVar(&tuningName, "tuning", "standard",
		"preset name or six comma separated pitches, low string first")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func currentTuning() tuning.Tuning {
	if t, ok := tuning.ByName(tuningName); ok {
		return t
	}
	t, ok := tuning.Parse(strings.Split(tuningName, ","))
	if !ok {
		panic("Unknown tuning: " + tuningName)
	}
	return t
}

func parseFretsArg(arg string) [model.NumStrings]int {
	frets, ok := tuning.ParseFrets(arg)
	if !ok {
		panic("Bad frets (want something like x,3,2,0,1,0): " + arg)
	}
	return frets
}

func parseChordArgs(rootArg, qualityArg string) (note.Class, model.Quality) {
	root, ok := note.ParseClass(rootArg)
	if !ok {
		panic("Bad root: " + rootArg)
	}
	q, ok := model.ParseQuality(qualityArg)
	if !ok {
		panic("Bad quality: " + qualityArg)
	}
	return root, q
}
