package tuning

import (
	"strconv"
	"strings"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
)

// Tuning holds the six open-string pitches, low string first. An entry
// that failed to parse is note.Undetermined; every computation treats
// that string as muted rather than failing.
type Tuning struct {
	Name string
	Open [model.NumStrings]note.Pitch
}

// New parses six pitch names (low to high) into a tuning. Malformed
// entries degrade to undetermined strings.
func New(name string, names [model.NumStrings]string) Tuning {
	var t Tuning
	t.Name = name
	for i, n := range names {
		t.Open[i] = note.ParsePitch(n)
	}
	return t
}

// Parse builds a tuning from an arbitrary name list. It fails only on
// the wrong count; bad entries still degrade per string.
func Parse(names []string) (Tuning, bool) {
	if len(names) != model.NumStrings {
		return Tuning{}, false
	}
	var fixed [model.NumStrings]string
	copy(fixed[:], names)
	return New("custom", fixed), true
}

// PitchAt returns the absolute pitch sounding at (string, fret), or
// false when the string is undetermined or the position out of range.
func (t Tuning) PitchAt(str, fret int) (note.Pitch, bool) {
	if str < 0 || str >= model.NumStrings || fret < 0 || fret > constants.MaxFret {
		return note.Undetermined, false
	}
	open := t.Open[str]
	if open == note.Undetermined {
		return note.Undetermined, false
	}
	return open + note.Pitch(fret), true
}

// ClassAt is PitchAt with the octave stripped.
func (t Tuning) ClassAt(str, fret int) (note.Class, bool) {
	p, ok := t.PitchAt(str, fret)
	if !ok {
		return note.NoClass, false
	}
	return p.Class(), true
}

// TransposeFret maps a fret from one open-string pitch to another so
// the absolute pitch is preserved. It fails when either pitch is
// undetermined or the result falls off the fretboard; the caller mutes
// the string in that case instead of clamping.
func TransposeFret(oldFret int, oldOpen, newOpen note.Pitch) (int, bool) {
	if oldOpen == note.Undetermined || newOpen == note.Undetermined {
		return 0, false
	}
	newFret := oldFret + int(oldOpen) - int(newOpen)
	if newFret < 0 || newFret > constants.MaxFret {
		return 0, false
	}
	return newFret, true
}

// NotesAt derives the played note set from a frets array (MutedFret
// entries silent). Classes keep first-sounding-string order, low
// string first; the bass is the lowest-indexed sounding string.
func NotesAt(t Tuning, frets [model.NumStrings]int) model.PlayedNoteSet {
	set := model.PlayedNoteSet{Bass: note.NoClass}
	for s, f := range frets {
		if f == model.MutedFret {
			continue
		}
		c, ok := t.ClassAt(s, f)
		if !ok {
			continue
		}
		if set.Bass == note.NoClass {
			set.Bass = c
		}
		if !set.Contains(c) {
			set.Classes = append(set.Classes, c)
		}
	}
	return set
}

// ParseFrets reads a comma-separated frets string like "x,3,2,0,1,0"
// (low string first, "x" or "-" for muted).
func ParseFrets(s string) ([model.NumStrings]int, bool) {
	var frets [model.NumStrings]int
	parts := strings.Split(s, ",")
	if len(parts) != model.NumStrings {
		return frets, false
	}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "x" || p == "X" || p == "-" {
			frets[i] = model.MutedFret
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > constants.MaxFret {
			return frets, false
		}
		frets[i] = n
	}
	return frets, true
}
