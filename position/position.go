// Package position generates hand-span fingering boxes for scales:
// three-notes-per-string positions for 7-note scales, two-per-string
// boxes for pentatonics, and pentatonic boxes with the inserted blue
// note for the blues scale.
package position

import (
	"sort"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/tuning"
)

// Generate returns the ordered position list for a scale: exactly 7
// positions for diatonic scales, 5 for pentatonics and blues.
func Generate(root note.Class, st model.ScaleType, t tuning.Tuning) []model.ScalePosition {
	switch st {
	case model.ScaleMajor, model.ScaleMinor:
		return sevenNote(root, st.Intervals(), t)
	case model.ScaleMajorPentatonic, model.ScaleMinorPentatonic:
		return fiveNote(root, st.Intervals(), t)
	case model.ScaleBlues:
		return blues(root, t)
	}
	return nil
}

// FullFretboard bypasses positions and lights up every scale tone up
// to maxFret.
func FullFretboard(root note.Class, st model.ScaleType, t tuning.Tuning, maxFret int) []model.HighlightedNote {
	if maxFret <= 0 || maxFret > constants.MaxFret {
		maxFret = constants.GetMaxFret()
	}
	inScale := map[note.Class]int{}
	for _, iv := range st.Intervals() {
		inScale[root.Add(iv)] = iv
	}

	var out []model.HighlightedNote
	for s := 0; s < model.NumStrings; s++ {
		for f := 0; f <= maxFret; f++ {
			c, ok := t.ClassAt(s, f)
			if !ok {
				break
			}
			iv, hit := inScale[c]
			if !hit {
				continue
			}
			out = append(out, highlight(s, f, c, iv))
		}
	}
	return out
}

func highlight(s, f int, c note.Class, interval int) model.HighlightedNote {
	return model.HighlightedNote{
		String:   s,
		Fret:     f,
		Note:     c.Name(),
		Interval: note.DegreeLabel(interval),
		IsRoot:   interval == 0,
		Color:    Color(interval),
	}
}

// lowestFretFor finds the smallest fret at or above from sounding the
// class on the string.
func lowestFretFor(t tuning.Tuning, s int, c note.Class, from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	for f := from; f <= constants.MaxFret; f++ {
		got, ok := t.ClassAt(s, f)
		if !ok {
			return 0, false
		}
		if got == c {
			return f, true
		}
	}
	return 0, false
}

// Anchor band for the first diatonic position. Shapes anchored here
// sit where a hand naturally rests.
const (
	bandLo = 1
	bandHi = 5
)

// anchorDegree picks which scale degree position 1 starts on: the
// degree whose lowest occurrence on the low string lands in (or
// nearest to) the band, with a nudge toward the root when it is close.
func anchorDegree(root note.Class, degrees []int, t tuning.Tuning) int {
	bestIdx := 0
	bestScore := -1 << 30
	for i, iv := range degrees {
		f, ok := lowestFretFor(t, 0, root.Add(iv), 0)
		if !ok {
			continue
		}
		score := 0
		if f < bandLo {
			score -= bandLo - f
		}
		if f > bandHi {
			score -= f - bandHi
		}
		if iv == 0 && f <= bandHi+2 {
			score += 2
		}
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	return bestIdx
}

// sevenNote builds the seven 3NPS positions. Each string takes three
// consecutive scale degrees; the next string's search start derives
// from the previous string's last fret plus the semitone gap to the
// next degree, minus the interval between the two strings, keeping the
// shape contiguous.
func sevenNote(root note.Class, degrees []int, t tuning.Tuning) []model.ScalePosition {
	n := len(degrees)
	startIdx := anchorDegree(root, degrees, t)

	var out []model.ScalePosition
	prevAnchor := 0
	for k := 0; k < n; k++ {
		di := (startIdx + k) % n
		anchor, ok := lowestFretFor(t, 0, root.Add(degrees[di]), prevAnchor)
		if !ok {
			anchor = prevAnchor
		}
		out = append(out, buildSeven(root, degrees, t, k+1, di, anchor))
		prevAnchor = anchor + 1
	}
	return out
}

func buildSeven(root note.Class, degrees []int, t tuning.Tuning, number, degIdx, startFret int) model.ScalePosition {
	n := len(degrees)
	pos := model.ScalePosition{Number: number, StartFret: -1}
	di := degIdx
	searchFrom := startFret

	for s := 0; s < model.NumStrings; s++ {
		if t.Open[s] == note.Undetermined {
			continue
		}
		lastFret := -1
		for i := 0; i < 3; i++ {
			c := root.Add(degrees[di])
			f, ok := lowestFretFor(t, s, c, searchFrom)
			if !ok {
				break
			}
			pos.Notes = append(pos.Notes, highlight(s, f, c, degrees[di]))
			lastFret = f
			di = (di + 1) % n
			searchFrom = f + 1
		}
		if lastFret == -1 {
			continue
		}
		if s+1 < model.NumStrings && t.Open[s+1] != note.Undetermined {
			gap := root.Add(degrees[di]).Interval(root.Add(degrees[(di+n-1)%n]))
			inter := int(t.Open[s+1]) - int(t.Open[s])
			searchFrom = lastFret + gap - inter
		}
	}

	finishSpan(&pos)
	return pos
}

// fiveNote builds the five pentatonic boxes: each position anchors its
// starting degree on the low string and every string contributes the
// two scale tones at or immediately above the anchor fret.
func fiveNote(root note.Class, degrees []int, t tuning.Tuning) []model.ScalePosition {
	var out []model.ScalePosition
	from := 0
	for k := 0; k < len(degrees); k++ {
		anchor, ok := lowestFretFor(t, 0, root.Add(degrees[k]), from)
		if !ok {
			anchor = from
		}
		out = append(out, buildFive(root, degrees, t, k+1, anchor))
		from = anchor + 1
	}
	return out
}

func buildFive(root note.Class, degrees []int, t tuning.Tuning, number, anchor int) model.ScalePosition {
	inScale := map[note.Class]int{}
	for _, iv := range degrees {
		inScale[root.Add(iv)] = iv
	}

	pos := model.ScalePosition{Number: number, StartFret: -1}
	for s := 0; s < model.NumStrings; s++ {
		if t.Open[s] == note.Undetermined {
			continue
		}
		count := 0
		for f := anchor; f <= constants.MaxFret && count < 2; f++ {
			c, ok := t.ClassAt(s, f)
			if !ok {
				break
			}
			iv, hit := inScale[c]
			if !hit {
				continue
			}
			pos.Notes = append(pos.Notes, highlight(s, f, c, iv))
			count++
		}
	}

	finishSpan(&pos)
	return pos
}

// blues generates the minor-pentatonic boxes and inserts the flat-5
// blue note wherever it falls inside a box without widening it, at
// most once per absolute pitch.
func blues(root note.Class, t tuning.Tuning) []model.ScalePosition {
	positions := fiveNote(root, model.ScaleMinorPentatonic.Intervals(), t)
	blue := root.Add(6)

	for i := range positions {
		pos := &positions[i]
		if pos.StartFret < 0 {
			continue
		}
		inserted := map[note.Pitch]bool{}
		for s := 0; s < model.NumStrings; s++ {
			f, ok := lowestFretFor(t, s, blue, pos.StartFret)
			if !ok || f > pos.EndFret {
				continue
			}
			p, _ := t.PitchAt(s, f)
			if inserted[p] {
				continue
			}
			inserted[p] = true
			pos.Notes = append(pos.Notes, highlight(s, f, blue, 6))
		}
		sort.SliceStable(pos.Notes, func(a, b int) bool {
			if pos.Notes[a].String != pos.Notes[b].String {
				return pos.Notes[a].String < pos.Notes[b].String
			}
			return pos.Notes[a].Fret < pos.Notes[b].Fret
		})
	}
	return positions
}

func finishSpan(pos *model.ScalePosition) {
	for _, n := range pos.Notes {
		if pos.StartFret == -1 || n.Fret < pos.StartFret {
			pos.StartFret = n.Fret
		}
		if n.Fret > pos.EndFret {
			pos.EndFret = n.Fret
		}
	}
	if pos.StartFret == -1 {
		pos.StartFret = 0
	}
}
