package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClassEnharmonics(t *testing.T) {
	assert := assert.New(t)

	cases := map[string]Class{
		"C":  0,
		"c":  0,
		"C#": 1,
		"Db": 1,
		"db": 1,
		"E":  4,
		"Fb": 4,
		"E#": 5,
		"Bb": 10,
		"A#": 10,
		"Cb": 11,
		"B#": 0,
	}
	for name, want := range cases {
		got, ok := ParseClass(name)
		assert.True(ok, name)
		assert.Equal(want, got, name)
	}

	_, ok := ParseClass("H")
	assert.False(ok)
	_, ok = ParseClass("")
	assert.False(ok)
	_, ok = ParseClass("C%")
	assert.False(ok)
}

func TestPitchArithmetic(t *testing.T) {
	assert := assert.New(t)

	e2 := ParsePitch("E2")
	assert.Equal(Pitch(40), e2)
	assert.Equal(Class(4), e2.Class())
	assert.Equal(2, e2.Octave())
	assert.Equal("E2", e2.Name())

	assert.Equal(Pitch(60), NewPitch(0, 4))
	assert.Equal(Undetermined, ParsePitch("X9"))
	assert.Equal(Undetermined, ParsePitch("E"))
	assert.Equal(Undetermined, ParsePitch(""))
}

func TestClassInterval(t *testing.T) {
	assert := assert.New(t)

	c, _ := ParseClass("C")
	e, _ := ParseClass("E")
	a, _ := ParseClass("A")
	assert.Equal(4, e.Interval(c))
	assert.Equal(8, c.Interval(e))
	assert.Equal(3, c.Interval(a))
	assert.Equal(0, c.Interval(c))
}

func TestDegreeLabel(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("R", DegreeLabel(0))
	assert.Equal("b3", DegreeLabel(3))
	assert.Equal("5", DegreeLabel(7))
	assert.Equal("b7", DegreeLabel(10))
	assert.Equal("R", DegreeLabel(12))
	assert.Equal("b7", DegreeLabel(-2))
}
