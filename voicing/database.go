package voicing

import (
	"github.com/jsphweid/fretdex/db"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/tuning"
)

// DatabaseGenerator adapts curated standard-tuning shapes to the
// requested tuning. Each fretted string moves by the semitone delta
// between the standard open pitch and the target open pitch, so the
// absolute pitch is preserved. A string pushed off the fretboard is
// muted, never clamped; a shape that thereby stops identifying the
// chord is discarded entirely.
type DatabaseGenerator struct{}

func (g DatabaseGenerator) Generate(root note.Class, q model.Quality, t tuning.Tuning) []model.Voicing {
	var out []model.Voicing
	for _, p := range db.Lookup(root, q) {
		var frets [model.NumStrings]int
		for s, f := range p.Frets {
			if f == model.MutedFret {
				frets[s] = model.MutedFret
				continue
			}
			nf, ok := tuning.TransposeFret(f, tuning.Standard.Open[s], t.Open[s])
			if !ok {
				frets[s] = model.MutedFret
				continue
			}
			frets[s] = nf
		}
		if v, ok := build(frets, root, q, t, nil); ok {
			out = append(out, v)
		}
	}
	return out
}
