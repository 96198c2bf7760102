package model

import "github.com/jsphweid/fretdex/note"

// MutedFret marks a string that does not sound in a frets array.
const MutedFret = -1

// NumStrings is fixed: the engine only models six-string instruments.
const NumStrings = 6

// FretPosition is one finger placement. Fret MutedFret means the
// string is explicitly muted.
type FretPosition struct {
	String int `json:"string"`
	Fret   int `json:"fret"`
}

// PlayedNoteSet is the harmonic content of a set of fret positions:
// the distinct pitch classes in first-sounding-string order (lowest
// string first) and the bass class of the lowest sounding string.
// Bass is note.NoClass when nothing sounds.
type PlayedNoteSet struct {
	Classes []note.Class `json:"classes"`
	Bass    note.Class   `json:"bass"`
}

func (s PlayedNoteSet) HasBass() bool {
	return s.Bass != note.NoClass
}

// Contains reports whether the pitch class is among the played notes.
func (s PlayedNoteSet) Contains(c note.Class) bool {
	for _, pc := range s.Classes {
		if pc == c {
			return true
		}
	}
	return false
}

// ChordSuggestion is one ranked candidate from the suggestion ranker.
// Present and Missing carry scale-degree labels (R, b3, 5, ...).
type ChordSuggestion struct {
	Root    note.Class  `json:"root"`
	Quality Quality     `json:"quality"`
	Voicing VoicingType `json:"voicingType"`
	Score   int         `json:"score"`
	Present []string    `json:"presentIntervals"`
	Missing []string    `json:"missingIntervals"`
}

// Name is the chord symbol, e.g. "C#m7".
func (s ChordSuggestion) Name() string {
	return s.Root.Name() + s.Quality.Suffix()
}

// ScaleSuggestion is one ranked candidate from the scale identifier.
type ScaleSuggestion struct {
	Root     note.Class `json:"root"`
	Type     ScaleType  `json:"type"`
	Score    int        `json:"score"`
	Coverage int        `json:"coverage"`
	Matched  []string   `json:"matchedNotes"`
	Extra    []string   `json:"extraNotes"`
}

func (s ScaleSuggestion) Name() string {
	return s.Root.Name() + " " + s.Type.Name()
}

// KeySuggestion is one ranked candidate from the key identifier.
type KeySuggestion struct {
	Root    note.Class `json:"root"`
	Mode    Mode       `json:"type"`
	Display string     `json:"display"`
	Reason  string     `json:"reason"`
}

// Voicing is a concrete fret-per-string assignment realizing a chord.
// Frets runs low string to high; MutedFret entries do not sound.
type Voicing struct {
	Frets       [NumStrings]int `json:"frets"`
	LowestFret  int             `json:"lowestFret"`
	HighestFret int             `json:"highestFret"`
	Notes       []string        `json:"noteNames"`
	Bass        string          `json:"bassNote"`
	IsInversion bool            `json:"isInversion"`
}

// Span is the fret spread of the voicing's fretted notes.
func (v Voicing) Span() int {
	return v.HighestFret - v.LowestFret
}

// HighlightedNote is one scale tone placed on the fretboard, labeled
// with its degree and an interval-family color tag.
type HighlightedNote struct {
	String   int    `json:"string"`
	Fret     int    `json:"fret"`
	Note     string `json:"note"`
	Interval string `json:"interval"`
	IsRoot   bool   `json:"isRoot"`
	Color    string `json:"color"`
}

// ScalePosition is one hand-span fingering box of a scale.
type ScalePosition struct {
	Number    int               `json:"number"`
	StartFret int               `json:"startFret"`
	EndFret   int               `json:"endFret"`
	Notes     []HighlightedNote `json:"notes"`
}
