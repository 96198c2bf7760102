package model

import "strconv"

// Quality is a closed enumeration of chord qualities. The declaration
// order doubles as the complexity order used to break ranking ties:
// a lower value wins against an equal-scored higher one.
type Quality int

const (
	Major Quality = iota
	Minor
	Dominant7
	Major7
	Minor7
	Diminished
	Augmented
	Sus2
	Sus4
	Power5
	Major6
	Minor6
	Add9
	Minor7b5
	Diminished7
	numQualities
)

// Qualities returns every chord quality in complexity order.
func Qualities() []Quality {
	qs := make([]Quality, 0, numQualities)
	for q := Major; q < numQualities; q++ {
		qs = append(qs, q)
	}
	return qs
}

// Intervals returns the defining semitone offsets from the root.
func (q Quality) Intervals() []int {
	switch q {
	case Major:
		return []int{0, 4, 7}
	case Minor:
		return []int{0, 3, 7}
	case Dominant7:
		return []int{0, 4, 7, 10}
	case Major7:
		return []int{0, 4, 7, 11}
	case Minor7:
		return []int{0, 3, 7, 10}
	case Diminished:
		return []int{0, 3, 6}
	case Augmented:
		return []int{0, 4, 8}
	case Sus2:
		return []int{0, 2, 7}
	case Sus4:
		return []int{0, 5, 7}
	case Power5:
		return []int{0, 7}
	case Major6:
		return []int{0, 4, 7, 9}
	case Minor6:
		return []int{0, 3, 7, 9}
	case Add9:
		return []int{0, 2, 4, 7}
	case Minor7b5:
		return []int{0, 3, 6, 10}
	case Diminished7:
		return []int{0, 3, 6, 9}
	}
	return nil
}

// Suffix is the chord-symbol suffix appended to a root name.
func (q Quality) Suffix() string {
	switch q {
	case Major:
		return ""
	case Minor:
		return "m"
	case Dominant7:
		return "7"
	case Major7:
		return "maj7"
	case Minor7:
		return "m7"
	case Diminished:
		return "dim"
	case Augmented:
		return "aug"
	case Sus2:
		return "sus2"
	case Sus4:
		return "sus4"
	case Power5:
		return "5"
	case Major6:
		return "6"
	case Minor6:
		return "m6"
	case Add9:
		return "add9"
	case Minor7b5:
		return "m7b5"
	case Diminished7:
		return "dim7"
	}
	return "?"
}

// ParseQuality resolves a chord-symbol suffix back to a quality.
func ParseQuality(suffix string) (Quality, bool) {
	for q := Major; q < numQualities; q++ {
		if q.Suffix() == suffix {
			return q, true
		}
	}
	// common aliases
	switch suffix {
	case "maj", "M":
		return Major, true
	case "min", "-":
		return Minor, true
	case "dom7":
		return Dominant7, true
	case "min7":
		return Minor7, true
	}
	return Major, false
}

func (q Quality) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(q.Suffix())), nil
}

// VoicingType classifies the shape a set of played notes forms against
// a candidate chord.
type VoicingType int

const (
	VoicingUnknown VoicingType = iota
	VoicingPartial
	VoicingTriad
	VoicingShellMajor
	VoicingShellMinor
	VoicingShellDominant
	VoicingFull
)

func (v VoicingType) String() string {
	switch v {
	case VoicingTriad:
		return "triad"
	case VoicingShellMajor:
		return "shell-major"
	case VoicingShellMinor:
		return "shell-minor"
	case VoicingShellDominant:
		return "shell-dominant"
	case VoicingFull:
		return "full"
	case VoicingPartial:
		return "partial"
	}
	return "unknown"
}

func (v VoicingType) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(v.String())), nil
}

// VoicingFilter narrows what the voicing generator emits.
type VoicingFilter int

const (
	FilterAll VoicingFilter = iota
	FilterTriads
	FilterShells
	FilterFull
)

func ParseVoicingFilter(s string) (VoicingFilter, bool) {
	switch s {
	case "", "all":
		return FilterAll, true
	case "triads":
		return FilterTriads, true
	case "shells":
		return FilterShells, true
	case "full":
		return FilterFull, true
	}
	return FilterAll, false
}
