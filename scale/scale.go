package scale

import (
	"math"
	"sort"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/util"
)

// contains reports whether the pitch class belongs to the scale built
// on root.
func contains(root note.Class, t model.ScaleType, c note.Class) bool {
	return util.Contains(t.Intervals(), c.Interval(root))
}

// Identify ranks every root against every scale type. A candidate must
// explain at least two played notes and may tolerate at most one
// chromatic passing tone. Coverage is the share of the scale's tones
// actually played, as a rounded percentage.
func Identify(set model.PlayedNoteSet) []model.ScaleSuggestion {
	if len(set.Classes) == 0 {
		return nil
	}

	var out []model.ScaleSuggestion
	for root := note.Class(0); root < 12; root++ {
		for _, t := range model.ScaleTypes() {
			var matched, extra []string
			for _, c := range set.Classes {
				if contains(root, t, c) {
					matched = append(matched, c.Name())
				} else {
					extra = append(extra, c.Name())
				}
			}
			if len(matched) < 2 || len(extra) > 1 {
				continue
			}

			size := len(t.Intervals())
			coverage := int(math.Round(float64(len(matched)) / float64(size) * 100))

			score := constants.ScaleBaseClean
			if len(extra) > 0 {
				score = constants.ScaleBaseDirty
			}
			score -= len(extra) * constants.ScaleExtraPenalty
			score += len(matched) * constants.ScaleMatchBonus
			if set.Bass == root {
				score += constants.ScaleBassRootBonus
			}
			if t.Pentatonic() && coverage >= constants.PentatonicCoverageCutoff {
				score += constants.ScalePentatonicBonus
			}

			out = append(out, model.ScaleSuggestion{
				Root:     root,
				Type:     t,
				Score:    score,
				Coverage: coverage,
				Matched:  matched,
				Extra:    extra,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > constants.MaxScaleSuggestions {
		out = out[:constants.MaxScaleSuggestions]
	}
	return out
}
