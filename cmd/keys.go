package cmd

import (
	"fmt"

	"github.com/jsphweid/fretdex/key"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/spf13/cobra"
)

var keyHint string

func init() {
	keysCmd.Flags().StringVar(&keyHint, "hint", "", "chord root that tips the ranking, e.g. G")
	rootCmd.AddCommand(keysCmd)
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Ranks keys a fretting fits in",
	Long:  `Ranks keys a fretting fits in`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 frets arg...")
		}
		keys(args[0])
	},
}

func keys(fretsArg string) {
	t := currentTuning()
	set := tuning.NotesAt(t, parseFretsArg(fretsArg))

	hint := note.NoClass
	if keyHint != "" {
		c, ok := note.ParseClass(keyHint)
		if !ok {
			panic("Bad hint: " + keyHint)
		}
		hint = c
	}

	for _, k := range key.Identify(set, hint) {
		fmt.Printf("%v (%v)\n", k.Display, k.Reason)
	}
}
