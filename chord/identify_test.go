package chord

import (
	"testing"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/stretchr/testify/assert"
)

func classes(names ...string) []note.Class {
	var out []note.Class
	for _, n := range names {
		c, _ := note.ParseClass(n)
		out = append(out, c)
	}
	return out
}

func set(bass string, names ...string) model.PlayedNoteSet {
	s := model.PlayedNoteSet{Classes: classes(names...), Bass: note.NoClass}
	if bass != "" {
		s.Bass, _ = note.ParseClass(bass)
	}
	return s
}

func TestIdentifyCMajor(t *testing.T) {
	assert := assert.New(t)

	id := Identify(set("", "C", "E", "G"))
	assert.NotNil(id)
	assert.Equal("C", id.Name)
	assert.True(id.Matched)
	assert.False(id.IsSlashChord)
}

func TestIdentifySlashChord(t *testing.T) {
	assert := assert.New(t)

	id := Identify(set("E", "E", "C", "G"))
	assert.NotNil(id)
	assert.Equal("C", id.Name)
	assert.Equal("E", id.Bass)
	assert.True(id.IsSlashChord)
}

func TestIdentifySeventhChords(t *testing.T) {
	assert := assert.New(t)

	id := Identify(set("G", "G", "B", "D", "F"))
	assert.NotNil(id)
	assert.Equal("G7", id.Name)

	id = Identify(set("A", "A", "C", "E", "G"))
	assert.NotNil(id)
	assert.Equal("Am7", id.Name)

	id = Identify(set("F", "F", "A", "C", "E"))
	assert.NotNil(id)
	assert.Equal("Fmaj7", id.Name)
}

func TestIdentifyAlternates(t *testing.T) {
	assert := assert.New(t)

	id := Identify(set("C", "C", "E", "G"))
	assert.NotNil(id)
	assert.Equal("C", id.Name)
	assert.NotEmpty(id.Alternates)
	assert.LessOrEqual(len(id.Alternates), 3)
	assert.NotContains(id.Alternates, "C")
}

func TestIdentifyNeedsTwoNotes(t *testing.T) {
	assert := assert.New(t)

	assert.Nil(Identify(set("C", "C")))
	assert.Nil(Identify(model.PlayedNoteSet{Bass: note.NoClass}))
}

func TestIdentifyFallbackName(t *testing.T) {
	assert := assert.New(t)

	// a semitone cluster fits nothing in the catalog
	id := Identify(set("C", "C", "C#"))
	assert.NotNil(id)
	assert.False(id.Matched)
	assert.Equal("C-C#", id.Name)
	assert.Empty(id.Alternates)
}

func TestIdentifyPowerChord(t *testing.T) {
	assert := assert.New(t)

	id := Identify(set("E", "E", "B"))
	assert.NotNil(id)
	assert.Equal("E5", id.Name)
}
