package key

import (
	"testing"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/stretchr/testify/assert"
)

func set(bass string, names ...string) model.PlayedNoteSet {
	s := model.PlayedNoteSet{Bass: note.NoClass}
	for _, n := range names {
		c, _ := note.ParseClass(n)
		s.Classes = append(s.Classes, c)
	}
	if bass != "" {
		s.Bass, _ = note.ParseClass(bass)
	}
	return s
}

func mustClass(name string) note.Class {
	c, _ := note.ParseClass(name)
	return c
}

func displays(got []model.KeySuggestion) []string {
	var out []string
	for _, k := range got {
		out = append(out, k.Display)
	}
	return out
}

func TestIdentifyBassTonicFirst(t *testing.T) {
	assert := assert.New(t)

	got := Identify(set("C", "C", "E", "G"), note.NoClass)
	assert.NotEmpty(got)
	assert.Equal("C major", got[0].Display)
	assert.Equal("bass is the tonic", got[0].Reason)

	// relative minor shows up too, just lower
	assert.Contains(displays(got), "A minor")
}

func TestIdentifyAllDiatonic(t *testing.T) {
	assert := assert.New(t)

	// F# is not in C major
	got := Identify(set("", "C", "E", "F#"), note.NoClass)
	assert.NotContains(displays(got), "C major")
	assert.Contains(displays(got), "G major")
}

func TestIdentifyHint(t *testing.T) {
	assert := assert.New(t)

	// ambiguous notes; the hint tips the ranking toward its key
	with := Identify(set("", "D", "G"), mustClass("G"))
	assert.NotEmpty(with)
	assert.Equal("G", with[0].Root.Name())
}

func TestIdentifyEmpty(t *testing.T) {
	assert := assert.New(t)
	assert.Empty(Identify(model.PlayedNoteSet{Bass: note.NoClass}, note.NoClass))
}

func TestIdentifySingleNote(t *testing.T) {
	assert := assert.New(t)

	// one pitch class fits a dozen keys equally well, so it ranks none
	assert.Empty(Identify(set("C", "C"), note.NoClass))
	assert.Empty(Identify(set("C", "C"), mustClass("C")))
}

func TestDiatonicChordsMajor(t *testing.T) {
	assert := assert.New(t)

	refs := DiatonicChords(mustClass("C"), model.ModeMajor)
	assert.Len(refs, 7)
	assert.Equal(ChordRef{mustClass("C"), model.Major}, refs[0])
	assert.Equal(ChordRef{mustClass("D"), model.Minor}, refs[1])
	assert.Equal(ChordRef{mustClass("G"), model.Major}, refs[4])
	assert.Equal(ChordRef{mustClass("B"), model.Diminished}, refs[6])
}

func TestDominantCarveOutInMinor(t *testing.T) {
	assert := assert.New(t)

	a := mustClass("A")
	e := mustClass("E")

	// natural minor has Em on the fifth degree, but the major V is
	// allowed as a borrowed dominant
	assert.True(Allows(a, model.ModeMinor, e, model.Minor))
	assert.True(Allows(a, model.ModeMinor, e, model.Major))

	// the dominant is diatonic in major anyway
	assert.True(Allows(mustClass("C"), model.ModeMajor, mustClass("G"), model.Major))

	assert.False(Allows(a, model.ModeMinor, mustClass("A#"), model.Major))
}
