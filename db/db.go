// Package db is the curated chord-shape database. Shapes are stored
// for standard tuning only; the voicing generator adapts them to other
// tunings by per-string transposition. The table is read-only.
package db

import (
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
)

// Position is one curated fretting in standard tuning. Frets runs low
// string to high with model.MutedFret for silent strings. BaseFret and
// Barres describe how the shape is diagrammed, not how it sounds.
type Position struct {
	Frets    [model.NumStrings]int
	BaseFret int
	Barres   []int
}

// form is a movable shape anchored to the pitch its template sounds at
// the nut. Materializing a form for a root slides every fretted string
// up by the root delta and barres the open strings.
type form struct {
	anchor note.Class
	frets  [model.NumStrings]int
}

const x = model.MutedFret

// Movable forms per quality, ordered by how far down the neck the
// resulting shape tends to land. The anchors are the classic open
// chords of the CAGED system.
var forms = map[model.Quality][]form{
	model.Major: {
		{anchor: 4, frets: [6]int{0, 2, 2, 1, 0, 0}},  // E form
		{anchor: 9, frets: [6]int{x, 0, 2, 2, 2, 0}},  // A form
	},
	model.Minor: {
		{anchor: 4, frets: [6]int{0, 2, 2, 0, 0, 0}},  // Em form
		{anchor: 9, frets: [6]int{x, 0, 2, 2, 1, 0}},  // Am form
	},
	model.Dominant7: {
		{anchor: 4, frets: [6]int{0, 2, 0, 1, 0, 0}},  // E7 form
		{anchor: 9, frets: [6]int{x, 0, 2, 0, 2, 0}},  // A7 form
		{anchor: 4, frets: [6]int{0, x, 0, 1, x, x}},  // shell, root on 6th
		{anchor: 9, frets: [6]int{x, 0, x, 0, 2, x}},  // shell, root on 5th
	},
	model.Major7: {
		{anchor: 9, frets: [6]int{x, 0, 2, 1, 2, 0}},  // Amaj7 form
		{anchor: 4, frets: [6]int{0, x, 1, 1, x, x}},  // shell, root on 6th
		{anchor: 9, frets: [6]int{x, 0, x, 1, 2, x}},  // shell, root on 5th
	},
	model.Minor7: {
		{anchor: 4, frets: [6]int{0, 2, 0, 0, 0, 0}},  // Em7 form
		{anchor: 9, frets: [6]int{x, 0, 2, 0, 1, 0}},  // Am7 form
		{anchor: 4, frets: [6]int{0, x, 0, 0, x, x}},  // shell, root on 6th
		{anchor: 9, frets: [6]int{x, 0, x, 0, 1, x}},  // shell, root on 5th
	},
	model.Diminished: {
		{anchor: 9, frets: [6]int{x, 0, 1, 2, 1, x}},  // Adim form
	},
	model.Augmented: {
		{anchor: 9, frets: [6]int{x, 0, 3, 2, 2, 1}},  // Aaug form
	},
	model.Sus2: {
		{anchor: 9, frets: [6]int{x, 0, 2, 2, 0, 0}},  // Asus2 form
	},
	model.Sus4: {
		{anchor: 4, frets: [6]int{0, 2, 2, 2, 0, 0}},  // Esus4 form
		{anchor: 9, frets: [6]int{x, 0, 2, 2, 3, 0}},  // Asus4 form
	},
	model.Power5: {
		{anchor: 4, frets: [6]int{0, 2, 2, x, x, x}},  // E5 form
		{anchor: 9, frets: [6]int{x, 0, 2, 2, x, x}},  // A5 form
	},
	model.Major6: {
		{anchor: 9, frets: [6]int{x, 0, 2, 2, 2, 2}},  // A6 form
	},
	model.Minor6: {
		{anchor: 9, frets: [6]int{x, 0, 2, 2, 1, 2}},  // Am6 form
	},
	model.Minor7b5: {
		{anchor: 9, frets: [6]int{x, 0, 1, 0, 1, x}},  // Am7b5 form
	},
	model.Diminished7: {
		{anchor: 9, frets: [6]int{x, 0, 1, 2, 1, 2}},  // Adim7 form
	},
}

// Hand-voiced open shapes that the movable forms cannot produce.
var openShapes = map[note.Class]map[model.Quality][]Position{
	0: { // C
		model.Major:  {{Frets: [6]int{x, 3, 2, 0, 1, 0}}},
		model.Major7: {{Frets: [6]int{x, 3, 2, 0, 0, 0}}},
		model.Add9:   {{Frets: [6]int{x, 3, 2, 0, 3, 0}}},
	},
	2: { // D
		model.Major:     {{Frets: [6]int{x, x, 0, 2, 3, 2}}},
		model.Minor:     {{Frets: [6]int{x, x, 0, 2, 3, 1}}},
		model.Dominant7: {{Frets: [6]int{x, x, 0, 2, 1, 2}}},
		model.Major7:    {{Frets: [6]int{x, x, 0, 2, 2, 2}}},
		model.Minor7:    {{Frets: [6]int{x, x, 0, 2, 1, 1}}},
		model.Sus2:      {{Frets: [6]int{x, x, 0, 2, 3, 0}}},
		model.Sus4:      {{Frets: [6]int{x, x, 0, 2, 3, 3}}},
	},
	7: { // G
		model.Major:     {{Frets: [6]int{3, 2, 0, 0, 0, 3}}},
		model.Dominant7: {{Frets: [6]int{3, 2, 0, 0, 0, 1}}},
	},
}

// Lookup returns the curated standard-tuning positions for a chord:
// any hand-voiced open shapes first, then the movable forms slid to
// the root. The result is empty for qualities with no curated shape
// (the solver covers those).
func Lookup(root note.Class, q model.Quality) []Position {
	var out []Position
	if byQuality, ok := openShapes[root]; ok {
		out = append(out, byQuality[q]...)
	}
	for _, f := range forms[q] {
		out = append(out, materialize(f, root))
	}
	return out
}

func materialize(f form, root note.Class) Position {
	delta := root.Interval(f.anchor)
	var p Position
	for i, fr := range f.frets {
		if fr == x {
			p.Frets[i] = x
			continue
		}
		p.Frets[i] = fr + delta
	}
	p.BaseFret = delta
	if delta > 0 {
		p.Barres = []int{delta}
	}
	return p
}
