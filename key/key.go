package key

import (
	"sort"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/util"
)

func diatonic(root note.Class, m model.Mode, c note.Class) bool {
	return util.Contains(m.Intervals(), c.Interval(root))
}

type scored struct {
	s     model.KeySuggestion
	score int
}

// Identify ranks the 24 major and minor keys whose scales contain
// every played pitch class. A single note says nothing about key, so
// fewer than two distinct classes yield nothing. Keys whose tonic
// matches the bass rank first; an optional chord-root hint
// (note.NoClass to skip) favors keys containing it.
func Identify(set model.PlayedNoteSet, hint note.Class) []model.KeySuggestion {
	if len(set.Classes) < 2 {
		return nil
	}

	var cands []scored
	for root := note.Class(0); root < 12; root++ {
		for _, m := range []model.Mode{model.ModeMajor, model.ModeMinor} {
			all := true
			for _, c := range set.Classes {
				if !diatonic(root, m, c) {
					all = false
					break
				}
			}
			if !all {
				continue
			}

			score := 0
			reason := "all notes diatonic"
			if set.Bass == root {
				score += constants.KeyBassTonicBonus
				reason = "bass is the tonic"
			}
			if hint != note.NoClass && diatonic(root, m, hint) {
				score += constants.KeyHintBonus
				if hint == root {
					score += constants.KeyHintBonus
					reason = "chord root is the tonic"
				}
			}

			cands = append(cands, scored{
				s: model.KeySuggestion{
					Root:    root,
					Mode:    m,
					Display: root.Name() + " " + m.Name(),
					Reason:  reason,
				},
				score: score,
			})
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].score > cands[j].score
	})

	out := make([]model.KeySuggestion, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.s)
	}
	return out
}
