package model

import "strconv"

// ScaleType is a closed enumeration of the supported scales.
type ScaleType int

const (
	ScaleMajor ScaleType = iota
	ScaleMinor
	ScaleMajorPentatonic
	ScaleMinorPentatonic
	ScaleBlues
	numScaleTypes
)

// ScaleTypes returns every scale type in declaration order.
func ScaleTypes() []ScaleType {
	ts := make([]ScaleType, 0, numScaleTypes)
	for t := ScaleMajor; t < numScaleTypes; t++ {
		ts = append(ts, t)
	}
	return ts
}

// Intervals returns the scale's semitone offsets from the root, in
// ascending order.
func (t ScaleType) Intervals() []int {
	switch t {
	case ScaleMajor:
		return []int{0, 2, 4, 5, 7, 9, 11}
	case ScaleMinor:
		return []int{0, 2, 3, 5, 7, 8, 10}
	case ScaleMajorPentatonic:
		return []int{0, 2, 4, 7, 9}
	case ScaleMinorPentatonic:
		return []int{0, 3, 5, 7, 10}
	case ScaleBlues:
		return []int{0, 3, 5, 6, 7, 10}
	}
	return nil
}

func (t ScaleType) Name() string {
	switch t {
	case ScaleMajor:
		return "major"
	case ScaleMinor:
		return "minor"
	case ScaleMajorPentatonic:
		return "major-pentatonic"
	case ScaleMinorPentatonic:
		return "minor-pentatonic"
	case ScaleBlues:
		return "blues"
	}
	return "?"
}

// Pentatonic reports whether the scale is a pentatonic or blues box
// scale, which earns a small ranking bonus at decent coverage.
func (t ScaleType) Pentatonic() bool {
	return t == ScaleMajorPentatonic || t == ScaleMinorPentatonic || t == ScaleBlues
}

func ParseScaleType(s string) (ScaleType, bool) {
	for t := ScaleMajor; t < numScaleTypes; t++ {
		if t.Name() == s {
			return t, true
		}
	}
	switch s {
	case "pentatonic", "pent-minor":
		return ScaleMinorPentatonic, true
	case "pent-major":
		return ScaleMajorPentatonic, true
	}
	return ScaleMajor, false
}

func (t ScaleType) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.Name())), nil
}

// Mode distinguishes major and minor keys.
type Mode int

const (
	ModeMajor Mode = iota
	ModeMinor
)

func (m Mode) Name() string {
	if m == ModeMinor {
		return "minor"
	}
	return "major"
}

// Intervals returns the key's 7-note diatonic scale.
func (m Mode) Intervals() []int {
	if m == ModeMinor {
		return ScaleMinor.Intervals()
	}
	return ScaleMajor.Intervals()
}

func (m Mode) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.Name())), nil
}
