package scale

import (
	"math"
	"reflect"
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

func find(got []model.ScaleSuggestion, name string) *model.ScaleSuggestion {
	for i := range got {
		if got[i].Name() == name {
			return &got[i]
		}
	}
	return nil
}

func TestIdentifyMinorPentatonic(t *testing.T) {
	assert := assert.New(t)

	got := Identify(set("A", "A", "C", "D", "E", "G"))
	assert.NotEmpty(got)

	s := find(got, "A minor-pentatonic")
	assert.NotNil(s)
	assert.Equal(100, s.Coverage)
	assert.Empty(s.Extra)
	assert.Len(s.Matched, 5)

	// the full pentatonic with matching bass should win the ranking
	assert.Equal("A minor-pentatonic", got[0].Name())
}

func TestIdentifyToleratesOnePassingTone(t *testing.T) {
	assert := assert.New(t)

	// C major scale notes plus one chromatic tone
	got := Identify(set("C", "C", "D", "E", "F#", "G"))
	s := find(got, "C major")
	assert.NotNil(s)
	assert.Equal([]string{"F#"}, s.Extra)

	for _, sg := range got {
		assert.LessOrEqual(len(sg.Extra), 1)
	}
}

func TestIdentifyRejectsTwoExtras(t *testing.T) {
	assert := assert.New(t)

	got := Identify(set("C", "C", "C#", "F#", "G"))
	assert.Nil(find(got, "C major-pentatonic"))
}

func TestIdentifyEnharmonicInput(t *testing.T) {
	assert := assert.New(t)

	// flats normalize to the same pitch classes as sharps
	flat := Identify(set("A", "A", "C", "D", "Eb", "E", "G"))
	sharp := Identify(set("A", "A", "C", "D", "D#", "E", "G"))
	assert.True(reflect.DeepEqual(flat, sharp))

	s := find(flat, "A blues")
	assert.NotNil(s)
	assert.Equal(100, s.Coverage)
}

func TestCoverageFormula(t *testing.T) {
	assert := assert.New(t)

	got := Identify(set("C", "C", "D", "E"))
	for _, s := range got {
		size := len(s.Type.Intervals())
		want := int(math.Round(float64(len(s.Matched)) / float64(size) * 100))
		assert.Equal(want, s.Coverage, s.Name())
	}
}

func TestIdentifyScoreFormula(t *testing.T) {
	assert := assert.New(t)

	// A minor pentatonic, all five notes, bass on the root:
	// 50 (clean) + 5*10 (matched) + 30 (bass) + 5 (pentatonic) = 135
	got := Identify(set("A", "A", "C", "D", "E", "G"))
	s := find(got, "A minor-pentatonic")
	assert.NotNil(s)
	assert.Equal(135, s.Score)
}

func TestIdentifyStableAndCapped(t *testing.T) {
	assert := assert.New(t)

	in := set("E", "E", "G", "A")
	first := Identify(in)
	assert.LessOrEqual(len(first), 8)
	for i := 0; i < 5; i++ {
		assert.True(reflect.DeepEqual(first, Identify(in)))
	}
}

func TestIdentifyEmptyInput(t *testing.T) {
	assert := assert.New(t)
	assert.Empty(Identify(model.PlayedNoteSet{Bass: note.NoClass}))
}
