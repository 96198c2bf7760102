package note

import (
	"fmt"
	"strconv"
)

// Class is a pitch class 0-11 where C=0. Comparisons throughout the
// engine happen on Class values, never on spellings, so enharmonic
// names (Db vs C#) collapse at parse time.
type Class int

const NoClass Class = -1

var classNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var letterOffsets = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

func (c Class) Name() string {
	if c < 0 || c > 11 {
		return "?"
	}
	return classNames[c]
}

func (c Class) Add(semitones int) Class {
	return Class(((int(c)+semitones)%12 + 12) % 12)
}

// Interval returns the semitone distance from root up to c, mod 12.
func (c Class) Interval(root Class) int {
	return ((int(c)-int(root))%12 + 12) % 12
}

func (c Class) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.Name())), nil
}

// ParseClass resolves a note name like "C", "F#", "Bb" or "ebb" to a
// pitch class. Any number of trailing accidentals is honored.
func ParseClass(s string) (Class, bool) {
	if len(s) == 0 {
		return NoClass, false
	}
	letter := s[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	off, ok := letterOffsets[letter]
	if !ok {
		return NoClass, false
	}
	for _, r := range s[1:] {
		switch r {
		case '#':
			off++
		case 'b', 'B':
			off--
		default:
			return NoClass, false
		}
	}
	return Class((off%12 + 12) % 12), true
}

// Pitch is an absolute pitch as a MIDI note number (C4 = 60).
// Undetermined marks a pitch that could not be resolved; callers treat
// the position it came from as muted.
type Pitch int

const Undetermined Pitch = -1

func (p Pitch) Class() Class {
	if p < 0 {
		return NoClass
	}
	return Class(int(p) % 12)
}

func (p Pitch) Octave() int {
	return int(p)/12 - 1
}

func (p Pitch) Name() string {
	if p < 0 {
		return "?"
	}
	return fmt.Sprintf("%v%v", p.Class().Name(), p.Octave())
}

// NewPitch builds a pitch from a class and an octave (C4 = 60).
func NewPitch(c Class, octave int) Pitch {
	if c < 0 {
		return Undetermined
	}
	return Pitch((octave+1)*12 + int(c))
}

// ParsePitch resolves names like "E2", "A#3" or "Db4". Anything that
// does not resolve yields Undetermined rather than an error.
func ParsePitch(s string) Pitch {
	if len(s) < 2 {
		return Undetermined
	}
	i := len(s)
	for i > 0 && (s[i-1] == '-' || (s[i-1] >= '0' && s[i-1] <= '9')) {
		i--
	}
	if i == 0 || i == len(s) {
		return Undetermined
	}
	octave, err := strconv.Atoi(s[i:])
	if err != nil {
		return Undetermined
	}
	c, ok := ParseClass(s[:i])
	if !ok {
		return Undetermined
	}
	return NewPitch(c, octave)
}

var degreeLabels = [12]string{"R", "b2", "2", "b3", "3", "4", "b5", "5", "#5", "6", "b7", "7"}

// DegreeLabel names a semitone offset from a root as a scale degree
// (R, b3, 5, b7, ...). Suggestion output always reports intervals this
// way, never as raw semitone counts.
func DegreeLabel(semitones int) string {
	return degreeLabels[((semitones%12)+12)%12]
}
