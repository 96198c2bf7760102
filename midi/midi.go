// Package midi renders voicings and scale positions as Standard MIDI
// Files so they can be auditioned in any sequencer.
package midi

import (
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/tuning"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const velocity = 100

var clock = smf.MetricTicks(960)

// VoicingSMF strums a voicing low string first, then lets the chord
// ring for a bar. Muted and undetermined strings stay silent.
func VoicingSMF(v model.Voicing, t tuning.Tuning) *smf.SMF {
	var pitches []note.Pitch
	for s, f := range v.Frets {
		if f == model.MutedFret {
			continue
		}
		p, ok := t.PitchAt(s, f)
		if !ok {
			continue
		}
		pitches = append(pitches, p)
	}

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	strumGap := clock.Ticks16th() / 2
	for i, p := range pitches {
		var delta uint32
		if i > 0 {
			delta = strumGap
		}
		tr.Add(delta, gomidi.NoteOn(0, uint8(p), velocity))
	}
	for i, p := range pitches {
		var delta uint32
		if i == 0 {
			delta = clock.Ticks4th() * 4
		}
		tr.Add(delta, gomidi.NoteOff(0, uint8(p)))
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = clock
	s.Add(tr)
	return s
}

// PositionSMF runs a scale position ascending, one eighth per note.
func PositionSMF(pos model.ScalePosition, t tuning.Tuning) *smf.SMF {
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	for _, n := range pos.Notes {
		p, ok := t.PitchAt(n.String, n.Fret)
		if !ok {
			continue
		}
		tr.Add(0, gomidi.NoteOn(0, uint8(p), velocity))
		tr.Add(clock.Ticks8th(), gomidi.NoteOff(0, uint8(p)))
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = clock
	s.Add(tr)
	return s
}

// WriteFile stores the SMF under dir with a fresh unique name and
// returns the path.
func WriteFile(s *smf.SMF, dir string) (string, error) {
	path := filepath.Join(dir, uuid.New().String()+".mid")
	if err := s.WriteFile(path); err != nil {
		return "", err
	}
	return path, nil
}
