package cmd

import (
	"fmt"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify",
	Short: "Names the chord a fretting plays",
	Long:  `Names the chord a fretting plays`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 frets arg...")
		}
		identify(args[0])
	},
}

func identify(fretsArg string) {
	t := currentTuning()
	set := tuning.NotesAt(t, parseFretsArg(fretsArg))
	id := chord.Identify(set)
	if id == nil {
		fmt.Println("not enough notes")
		return
	}
	name := id.Name
	if id.IsSlashChord {
		name += "/" + id.Bass
	}
	fmt.Println(name)
	for _, alt := range id.Alternates {
		fmt.Printf("  also: %v\n", alt)
	}
}
