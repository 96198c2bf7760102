package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tuningsCmd)
}

var tuningsCmd = &cobra.Command{
	Use:   "tunings",
	Short: "Lists the built-in tuning presets",
	Long:  `Lists the built-in tuning presets`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range tuning.Presets() {
			names := make([]string, 0, len(t.Open))
			for _, p := range t.Open {
				if p == note.Undetermined {
					names = append(names, "?")
					continue
				}
				names = append(names, p.Name())
			}
			fmt.Printf("%v: %v\n", t.Name, strings.Join(names, " "))
		}
	},
}
