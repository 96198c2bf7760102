package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(liveCmd)
}

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Identifies chords from a live MIDI input",
	Long:  `Identifies chords from a live MIDI input`,
	Run: func(cmd *cobra.Command, args []string) {
		live()
	},
}

// playedSet converts held MIDI keys to a note set. The lowest held key
// is the bass.
func playedSet(onNotes map[uint8]bool) model.PlayedNoteSet {
	keys := make([]int, 0, len(onNotes))
	for k := range onNotes {
		keys = append(keys, int(k))
	}
	sort.Ints(keys)

	set := model.PlayedNoteSet{Bass: note.NoClass}
	for _, k := range keys {
		c := note.Pitch(k).Class()
		if set.Bass == note.NoClass {
			set.Bass = c
		}
		if !set.Contains(c) {
			set.Classes = append(set.Classes, c)
		}
	}
	return set
}

func live() {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(0)
	if err != nil {
		fmt.Println("no MIDI input port")
		return
	}

	onNotes := make(map[uint8]bool)
	// held keys settle over a few ms as the player lands the chord
	debounced := debounce.New(80 * time.Millisecond)
	report := func(set model.PlayedNoteSet) func() {
		return func() {
			if id := chord.Identify(set); id != nil {
				fmt.Println(id.Name)
			}
		}
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			onNotes[key] = true
			debounced(report(playedSet(onNotes)))
		case msg.GetNoteEnd(&ch, &key):
			delete(onNotes, key)
			debounced(report(playedSet(onNotes)))
		default:
			// ignore
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	stop()
}
