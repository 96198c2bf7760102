package voicing

import (
	"sort"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/jsphweid/fretdex/util"
)

// SolverGenerator enumerates fret assignments that sound exactly the
// requested tone set within a hand span. Tones overrides the chord's
// interval set when non-nil (the triads filter uses this).
type SolverGenerator struct {
	MaxFret int
	Tones   []int
}

func (g SolverGenerator) Generate(root note.Class, q model.Quality, t tuning.Tuning) []model.Voicing {
	maxFret := g.MaxFret
	if maxFret <= 0 || maxFret > constants.MaxFret {
		maxFret = constants.MaxFret
	}
	tones := g.Tones
	if tones == nil {
		tones = q.Intervals()
	}

	var want [12]bool
	wantCount := 0
	for _, iv := range tones {
		c := root.Add(iv)
		if !want[c] {
			want[c] = true
			wantCount++
		}
	}

	// per-string candidate frets that sound a chord tone
	var options [model.NumStrings][]int
	for s := 0; s < model.NumStrings; s++ {
		for f := 0; f <= maxFret; f++ {
			c, ok := t.ClassAt(s, f)
			if !ok {
				break
			}
			if want[c] {
				options[s] = append(options[s], f)
			}
		}
	}

	var out []model.Voicing
	var frets [model.NumStrings]int

	var walk func(s, minFretted, maxFretted, soundCount int)
	walk = func(s, minFretted, maxFretted, soundCount int) {
		if s == model.NumStrings {
			if soundCount < constants.MinSoundingStrings {
				return
			}
			var have [12]bool
			haveCount := 0
			for i, f := range frets {
				if f == model.MutedFret {
					continue
				}
				c, _ := t.ClassAt(i, f)
				if !have[c] {
					have[c] = true
					haveCount++
				}
			}
			if haveCount != wantCount {
				return
			}
			if v, ok := build(frets, root, q, t, tones); ok {
				out = append(out, v)
			}
			return
		}

		frets[s] = model.MutedFret
		walk(s+1, minFretted, maxFretted, soundCount)

		for _, f := range options[s] {
			lo, hi := minFretted, maxFretted
			if f > 0 {
				if lo == -1 {
					lo = f
				} else {
					lo = util.Min(lo, f)
				}
				hi = util.Max(hi, f)
				if hi-lo > constants.HandSpan-1 {
					continue
				}
			}
			frets[s] = f
			walk(s+1, lo, hi, soundCount+1)
		}
		frets[s] = model.MutedFret
	}
	walk(0, -1, 0, 0)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].LowestFret != out[j].LowestFret {
			return out[i].LowestFret < out[j].LowestFret
		}
		return out[i].Span() < out[j].Span()
	})

	if len(out) > constants.MaxVoicings {
		out = out[:constants.MaxVoicings]
	}
	return out
}
