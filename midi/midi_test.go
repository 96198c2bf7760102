package midi

import (
	"os"
	"strings"
	"testing"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/position"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"
)

func writeAndStat(t *testing.T, s *smf.SMF) int64 {
	path, err := WriteFile(s, t.TempDir())
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".mid"))
	info, err := os.Stat(path)
	assert.NoError(t, err)
	return info.Size()
}

func TestVoicingSMF(t *testing.T) {
	assert := assert.New(t)

	v := model.Voicing{Frets: [6]int{model.MutedFret, 3, 2, 0, 1, 0}}
	s := VoicingSMF(v, tuning.Standard)
	assert.NotNil(s)
	assert.Greater(writeAndStat(t, s), int64(0))
}

func TestPositionSMF(t *testing.T) {
	assert := assert.New(t)

	root, ok := note.ParseClass("A")
	assert.True(ok)
	positions := position.Generate(root, model.ScaleMinorPentatonic, tuning.Standard)
	assert.NotEmpty(positions)

	s := PositionSMF(positions[0], tuning.Standard)
	assert.NotNil(s)
	assert.Greater(writeAndStat(t, s), int64(0))
}
