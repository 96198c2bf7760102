package key

import (
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
)

// ChordRef is one diatonic (root, quality) pair in a key context. The
// downstream chord browser filters its palette to these.
type ChordRef struct {
	Root    note.Class    `json:"root"`
	Quality model.Quality `json:"quality"`
}

var majorDegreeQualities = []model.Quality{
	model.Major, model.Minor, model.Minor, model.Major,
	model.Major, model.Minor, model.Diminished,
}

var minorDegreeQualities = []model.Quality{
	model.Minor, model.Diminished, model.Major, model.Minor,
	model.Minor, model.Major, model.Major,
}

// DiatonicChords lists the triads built on each scale degree of the
// key. Minor keys additionally include the major dominant (V), the
// borrowed chord every cadence leans on.
func DiatonicChords(root note.Class, m model.Mode) []ChordRef {
	ivs := m.Intervals()
	qualities := majorDegreeQualities
	if m == model.ModeMinor {
		qualities = minorDegreeQualities
	}

	var out []ChordRef
	for i, iv := range ivs {
		out = append(out, ChordRef{Root: root.Add(iv), Quality: qualities[i]})
	}
	if m == model.ModeMinor {
		out = append(out, ChordRef{Root: root.Add(7), Quality: model.Major})
	}
	return out
}

// Allows reports whether a chord fits the key context, honoring the
// dominant carve-out.
func Allows(root note.Class, m model.Mode, chordRoot note.Class, q model.Quality) bool {
	for _, ref := range DiatonicChords(root, m) {
		if ref.Root == chordRoot && ref.Quality == q {
			return true
		}
	}
	return false
}
