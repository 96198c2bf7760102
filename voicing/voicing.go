// Package voicing turns a target chord into playable fret shapes. Two
// generators implement the same interface: one adapts the curated
// standard-tuning database to the requested tuning, the other solves
// for shapes from scratch. Generate picks between them per the filter
// and falls back to the solver when the database has nothing.
package voicing

import (
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/tuning"
)

// Generator produces voicings for a chord under a tuning.
type Generator interface {
	Generate(root note.Class, q model.Quality, t tuning.Tuning) []model.Voicing
}

// Generate is the strategy entry point. Triad-filtered requests go to
// the solver restricted to the bare triad tones; everything else tries
// the database first and solves only when the database, after the
// shape-family filter, yields nothing.
func Generate(root note.Class, q model.Quality, t tuning.Tuning, f model.VoicingFilter) []model.Voicing {
	if f == model.FilterTriads {
		solver := SolverGenerator{MaxFret: constants.GetMaxFret(), Tones: triadTones(q)}
		return solver.Generate(root, q, t)
	}

	var gen Generator = DatabaseGenerator{}
	out := narrow(gen.Generate(root, q, t), root, q, f)
	if len(out) == 0 {
		solver := SolverGenerator{MaxFret: constants.GetMaxFret()}
		out = narrow(solver.Generate(root, q, t), root, q, f)
	}
	if len(out) > constants.MaxVoicings {
		out = out[:constants.MaxVoicings]
	}
	return out
}

// narrow applies the shape-family filter. It runs per tier so a
// database tier the filter empties still falls through to the solver.
func narrow(vs []model.Voicing, root note.Class, q model.Quality, f model.VoicingFilter) []model.Voicing {
	switch f {
	case model.FilterShells:
		return keep(vs, root, q, isShell)
	case model.FilterFull:
		return keep(vs, root, q, func(vt model.VoicingType) bool { return vt == model.VoicingFull })
	}
	return vs
}

// keep filters voicings by the shape family they form against the
// requested chord.
func keep(vs []model.Voicing, root note.Class, q model.Quality, pred func(model.VoicingType) bool) []model.Voicing {
	var out []model.Voicing
	for _, v := range vs {
		var classes []note.Class
		for _, n := range v.Notes {
			c, ok := note.ParseClass(n)
			if !ok {
				continue
			}
			dup := false
			for _, e := range classes {
				if e == c {
					dup = true
					break
				}
			}
			if !dup {
				classes = append(classes, c)
			}
		}
		if pred(chord.Classify(root, q, classes)) {
			out = append(out, v)
		}
	}
	return out
}

func isShell(vt model.VoicingType) bool {
	return vt == model.VoicingShellMajor || vt == model.VoicingShellMinor || vt == model.VoicingShellDominant
}

// triadTones strips a quality down to root, third (or suspension) and
// fifth so the triads filter never emits sevenths.
func triadTones(q model.Quality) []int {
	ivs := q.Intervals()
	if len(ivs) <= 3 {
		return ivs
	}
	pick := func(candidates ...int) (int, bool) {
		for _, c := range candidates {
			for _, iv := range ivs {
				if iv == c {
					return c, true
				}
			}
		}
		return 0, false
	}

	out := []int{0}
	if third, ok := pick(4, 3, 2, 5); ok {
		out = append(out, third)
	}
	if fifth, ok := pick(7, 6, 8); ok {
		out = append(out, fifth)
	}
	return out
}

// build assembles a Voicing from a frets array, or fails when the
// sounding tones no longer identify the chord. Validation runs against
// tones, the effective set the generator asked for (nil means the
// quality's own intervals), so a triads request is not held to the
// seventh it deliberately dropped.
func build(frets [model.NumStrings]int, root note.Class, q model.Quality, t tuning.Tuning, tones []int) (model.Voicing, bool) {
	if tones == nil {
		tones = q.Intervals()
	}
	v := model.Voicing{Frets: frets, LowestFret: -1}

	var sounding [12]bool
	bass := note.NoClass
	for s, f := range frets {
		if f == model.MutedFret {
			continue
		}
		c, ok := t.ClassAt(s, f)
		if !ok {
			v.Frets[s] = model.MutedFret
			continue
		}
		if bass == note.NoClass {
			bass = c
		}
		sounding[c] = true
		v.Notes = append(v.Notes, c.Name())
		if v.LowestFret == -1 || f < v.LowestFret {
			v.LowestFret = f
		}
		if f > v.HighestFret {
			v.HighestFret = f
		}
	}
	if bass == note.NoClass {
		return v, false
	}

	for _, iv := range requiredTones(tones) {
		if !sounding[root.Add(iv)] {
			return v, false
		}
	}

	v.Bass = bass.Name()
	v.IsInversion = bass != root
	return v, true
}

// requiredTones is the minimal subset of tones a voicing must keep to
// still be the chord. A perfect fifth is omittable in anything bigger
// than a power chord; altered fifths and sevenths are not.
func requiredTones(tones []int) []int {
	if len(tones) <= 2 {
		return tones
	}
	var out []int
	for _, iv := range tones {
		if iv == 7 {
			continue
		}
		out = append(out, iv)
	}
	return out
}
