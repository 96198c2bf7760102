package cmd

import (
	"fmt"

	"github.com/jsphweid/fretdex/scale"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scalesCmd)
}

var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "Ranks scales containing a fretting",
	Long:  `Ranks scales containing a fretting`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 frets arg...")
		}
		scales(args[0])
	},
}

func scales(fretsArg string) {
	t := currentTuning()
	set := tuning.NotesAt(t, parseFretsArg(fretsArg))
	for _, s := range scale.Identify(set) {
		fmt.Printf("%v score=%v coverage=%v%%\n", s.Name(), s.Score, s.Coverage)
	}
}
