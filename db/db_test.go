package db

import (
	"testing"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/stretchr/testify/assert"
)

func mustClass(t *testing.T, name string) note.Class {
	c, ok := note.ParseClass(name)
	if !ok {
		t.Fatalf("bad class %v", name)
	}
	return c
}

func TestLookupOpenAMajor(t *testing.T) {
	assert := assert.New(t)

	got := Lookup(mustClass(t, "A"), model.Major)
	assert.NotEmpty(got)

	found := false
	for _, p := range got {
		if p.Frets == [6]int{x, 0, 2, 2, 2, 0} {
			found = true
		}
	}
	assert.True(found, "open A major shape missing")
}

func TestMaterializedFormSoundsTheChord(t *testing.T) {
	assert := assert.New(t)

	for _, rootName := range []string{"C", "C#", "F", "G#", "B"} {
		root := mustClass(t, rootName)
		for _, q := range []model.Quality{model.Major, model.Minor, model.Dominant7, model.Minor7} {
			for _, p := range Lookup(root, q) {
				want := map[note.Class]bool{}
				for _, iv := range q.Intervals() {
					want[root.Add(iv)] = true
				}
				for s, f := range p.Frets {
					if f == x {
						continue
					}
					c, ok := tuning.Standard.ClassAt(s, f)
					assert.True(ok)
					assert.True(want[c], "%v%v string %v sounds %v", rootName, q.Suffix(), s, c.Name())
				}
			}
		}
	}
}

func TestLookupBarreMetadata(t *testing.T) {
	assert := assert.New(t)

	// F major comes from movable forms only; both carry a barre
	got := Lookup(mustClass(t, "F"), model.Major)
	assert.NotEmpty(got)
	for _, p := range got {
		assert.Greater(p.BaseFret, 0)
		assert.Equal([]int{p.BaseFret}, p.Barres)
	}
}

func TestLookupUncuratedQualityEmptyForSomeRoots(t *testing.T) {
	assert := assert.New(t)

	// add9 only has a hand-voiced C shape
	assert.NotEmpty(Lookup(mustClass(t, "C"), model.Add9))
	assert.Empty(Lookup(mustClass(t, "E"), model.Add9))
}
