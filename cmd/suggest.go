package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(suggestCmd)
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Ranks chord candidates for a fretting",
	Long:  `Ranks chord candidates for a fretting, including partial shapes`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 frets arg...")
		}
		suggest(args[0])
	},
}

func suggest(fretsArg string) {
	t := currentTuning()
	set := tuning.NotesAt(t, parseFretsArg(fretsArg))
	for _, s := range chord.Suggest(set) {
		line := fmt.Sprintf("%v (%v) score=%v", s.Name(), s.Voicing, s.Score)
		if len(s.Missing) > 0 {
			line += " missing=" + strings.Join(s.Missing, ",")
		}
		fmt.Println(line)
	}
}
