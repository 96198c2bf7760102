package chord

import (
	"reflect"
	"testing"

	"github.com/jsphweid/fretdex/model"
	"github.com/stretchr/testify/assert"
)

func top(suggestions []model.ChordSuggestion) model.ChordSuggestion {
	return suggestions[0]
}

func TestSuggestTriadHasNoMissingIntervals(t *testing.T) {
	assert := assert.New(t)

	for _, tc := range []struct {
		notes []string
		name  string
	}{
		{[]string{"C", "E", "G"}, "C"},
		{[]string{"A", "C", "E"}, "Am"},
		{[]string{"B", "D", "F"}, "Bdim"},
		{[]string{"C", "E", "G#"}, "Caug"},
	} {
		got := Suggest(set(tc.notes[0], tc.notes...))
		assert.NotEmpty(got, tc.name)
		best := top(got)
		assert.Equal(tc.name, best.Name())
		assert.Equal(model.VoicingTriad, best.Voicing)
		assert.Empty(best.Missing, tc.name)
	}
}

func TestSuggestShellVoicings(t *testing.T) {
	assert := assert.New(t)

	// R-3-7 with no fifth
	got := Suggest(set("C", "C", "E", "B"))
	assert.NotEmpty(got)
	best := top(got)
	assert.Equal("Cmaj7", best.Name())
	assert.Equal(model.VoicingShellMajor, best.Voicing)
	assert.Equal([]string{"5"}, best.Missing)

	got = Suggest(set("G", "G", "B", "F"))
	best = top(got)
	assert.Equal("G7", best.Name())
	assert.Equal(model.VoicingShellDominant, best.Voicing)

	got = Suggest(set("D", "D", "F", "C"))
	best = top(got)
	assert.Equal("Dm7", best.Name())
	assert.Equal(model.VoicingShellMinor, best.Voicing)
}

func TestSuggestFullSeventh(t *testing.T) {
	assert := assert.New(t)

	got := Suggest(set("G", "G", "B", "D", "F"))
	assert.NotEmpty(got)
	best := top(got)
	assert.Equal("G7", best.Name())
	assert.Equal(model.VoicingFull, best.Voicing)
	assert.Empty(best.Missing)
	assert.Equal([]string{"R", "3", "5", "b7"}, best.Present)
}

func TestSuggestRootPositionBonus(t *testing.T) {
	assert := assert.New(t)

	rootPos := Suggest(set("C", "C", "E", "G"))
	inverted := Suggest(set("E", "C", "E", "G"))
	assert.Greater(top(rootPos).Score, top(inverted).Score)
}

func TestSuggestTieBreakByComplexity(t *testing.T) {
	assert := assert.New(t)

	// C-G fits C major, C minor, Csus2, Csus4 equally (missing one
	// tone each); the simpler quality must come first among them.
	got := Suggest(set("C", "C", "G"))
	assert.NotEmpty(got)
	var qs []model.Quality
	for _, s := range got {
		if s.Root.Name() == "C" && len(s.Missing) == 1 {
			qs = append(qs, s.Quality)
		}
	}
	for i := 1; i < len(qs); i++ {
		assert.Less(int(qs[i-1]), int(qs[i]))
	}
}

func TestSuggestCapsResults(t *testing.T) {
	assert := assert.New(t)

	got := Suggest(set("C", "C", "E", "G"))
	assert.LessOrEqual(len(got), 8)
}

func TestSuggestDeterministic(t *testing.T) {
	assert := assert.New(t)

	in := set("A", "A", "C", "E", "G")
	first := Suggest(in)
	for i := 0; i < 5; i++ {
		assert.True(reflect.DeepEqual(first, Suggest(in)))
	}
}

func TestSuggestNeedsTwoNotes(t *testing.T) {
	assert := assert.New(t)
	assert.Empty(Suggest(set("C", "C")))
}

func TestClassifyPartial(t *testing.T) {
	assert := assert.New(t)

	// R-3 only: a subset of the major triad with no recognized shape
	vt := Classify(0, model.Major, classes("C", "E"))
	assert.Equal(model.VoicingPartial, vt)

	vt = Classify(0, model.Major, classes("C", "C#"))
	assert.Equal(model.VoicingUnknown, vt)
}
