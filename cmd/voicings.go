package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/voicing"
	"github.com/spf13/cobra"
)

var voicingFilter string

func init() {
	voicingsCmd.Flags().StringVar(&voicingFilter, "filter", "all", "all, triads, shells or full")
	rootCmd.AddCommand(voicingsCmd)
}

var voicingsCmd = &cobra.Command{
	Use:   "voicings",
	Short: "Generates voicings for a chord",
	Long:  `Generates voicings for a chord, e.g. voicings C maj7`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 || len(args) > 2 {
			panic("Need a root and optional quality, e.g. C maj7")
		}
		quality := ""
		if len(args) == 2 {
			quality = args[1]
		}
		voicings(args[0], quality)
	},
}

func voicings(rootArg, qualityArg string) {
	root, q := parseChordArgs(rootArg, qualityArg)
	filter, ok := model.ParseVoicingFilter(voicingFilter)
	if !ok {
		panic("Bad filter: " + voicingFilter)
	}

	for _, v := range voicing.Generate(root, q, currentTuning(), filter) {
		line := fretsString(v.Frets)
		if v.IsInversion {
			line += "  /" + v.Bass
		}
		fmt.Println(line)
	}
}

func fretsString(frets [model.NumStrings]int) string {
	parts := make([]string, 0, model.NumStrings)
	for _, f := range frets {
		if f == model.MutedFret {
			parts = append(parts, "x")
			continue
		}
		parts = append(parts, strconv.Itoa(f))
	}
	return strings.Join(parts, ",")
}
