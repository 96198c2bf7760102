package chord

import (
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/util"
)

// offsets reduces played classes to their unique semitone offsets from
// a candidate root, sorted ascending by first appearance order being
// irrelevant here.
func offsets(root note.Class, classes []note.Class) []int {
	var seen [12]bool
	var out []int
	for _, c := range classes {
		iv := c.Interval(root)
		if !seen[iv] {
			seen[iv] = true
			out = append(out, iv)
		}
	}
	return out
}

func sameSet(a, b []int) bool {
	return len(a) == len(b) && subset(a, b)
}

func subset(sub, super []int) bool {
	for _, v := range sub {
		if !util.Contains(super, v) {
			return false
		}
	}
	return true
}

var (
	shellMajor    = []int{0, 4, 11}
	shellMinor    = []int{0, 3, 10}
	shellDominant = []int{0, 4, 10}
)

// Classify names the shape the played classes form against a candidate
// (root, quality): a bare triad, a shell (root, third and seventh with
// the fifth omitted), a full four-plus-tone chord, a partial subset, or
// no reasonable fit at all.
func Classify(root note.Class, q model.Quality, classes []note.Class) model.VoicingType {
	offs := offsets(root, classes)
	ivs := q.Intervals()

	switch q {
	case model.Major, model.Minor, model.Diminished, model.Augmented:
		if len(offs) == 3 && sameSet(offs, ivs) {
			return model.VoicingTriad
		}
	case model.Major7:
		if len(offs) == 3 && sameSet(offs, shellMajor) {
			return model.VoicingShellMajor
		}
	case model.Minor7:
		if len(offs) == 3 && sameSet(offs, shellMinor) {
			return model.VoicingShellMinor
		}
	case model.Dominant7:
		if len(offs) == 3 && sameSet(offs, shellDominant) {
			return model.VoicingShellDominant
		}
	}

	if subset(offs, ivs) {
		if len(offs) >= 4 {
			return model.VoicingFull
		}
		if len(offs) >= 2 {
			return model.VoicingPartial
		}
	}
	return model.VoicingUnknown
}
