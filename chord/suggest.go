package chord

import (
	"sort"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
)

// Suggest ranks every (root x quality) combination against the played
// notes and returns the best few, classified by voicing shape. Scoring
// rewards covered chord tones and a bass matching the candidate root,
// and penalizes tones the candidate cannot explain. Ties fall back to
// the fixed quality-complexity order, then the root.
func Suggest(set model.PlayedNoteSet) []model.ChordSuggestion {
	if len(set.Classes) < 2 {
		return nil
	}

	var out []model.ChordSuggestion
	for root := note.Class(0); root < 12; root++ {
		offs := offsets(root, set.Classes)
		for _, q := range model.Qualities() {
			vt := Classify(root, q, set.Classes)

			ivs := q.Intervals()
			var covered [12]bool
			for _, iv := range ivs {
				covered[iv] = true
			}
			var present, missing []string
			presentCount, extraCount := 0, 0
			for _, off := range offs {
				if covered[off] {
					present = append(present, note.DegreeLabel(off))
					presentCount++
				} else {
					extraCount++
				}
			}
			for _, iv := range ivs {
				found := false
				for _, off := range offs {
					if off == iv {
						found = true
						break
					}
				}
				if !found {
					missing = append(missing, note.DegreeLabel(iv))
				}
			}

			// a shape with no recognized form still ranks when it is
			// one stray tone away from a real chord
			if vt == model.VoicingUnknown && !(presentCount >= 2 && extraCount == 1) {
				continue
			}

			score := presentCount * constants.ChordToneWeight
			if set.Bass == root {
				score += constants.ChordBassRootBonus
			}
			score -= extraCount * constants.ChordExtraPenalty

			out = append(out, model.ChordSuggestion{
				Root:    root,
				Quality: q,
				Voicing: vt,
				Score:   score,
				Present: present,
				Missing: missing,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Quality != out[j].Quality {
			return out[i].Quality < out[j].Quality
		}
		return out[i].Root < out[j].Root
	})

	if len(out) > constants.MaxChordSuggestions {
		out = out[:constants.MaxChordSuggestions]
	}
	return out
}
