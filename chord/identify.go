package chord

import (
	"sort"
	"strings"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
)

// Identification is the primary answer for a played note set, plus the
// closest alternative symbols.
type Identification struct {
	Name         string       `json:"name"`
	Alternates   []string     `json:"alternates"`
	Bass         string       `json:"bassNote"`
	IsSlashChord bool         `json:"isSlashChord"`
	Root         note.Class   `json:"root"`
	Quality      model.Quality `json:"quality"`
	// Matched is false when no catalog entry fit and Name is just the
	// joined note list.
	Matched bool `json:"matched"`
}

type candidate struct {
	root    note.Class
	quality model.Quality
	missing int
	score   int
}

// Identify names a played note set. It needs at least two distinct
// pitch classes and returns nil below that, never an error. When no
// catalog entry is consistent with the input the literal note list
// serves as the identity.
func Identify(set model.PlayedNoteSet) *Identification {
	if len(set.Classes) < 2 {
		return nil
	}

	var cands []candidate
	for _, root := range set.Classes {
		for _, q := range model.Qualities() {
			ivs := q.Intervals()
			offs := offsets(root, set.Classes)
			if !subset(offs, ivs) {
				continue
			}
			missing := len(ivs) - len(offs)
			if missing > 1 {
				continue
			}
			score := 3*len(offs) - 2*missing
			if set.Bass == root {
				score++
			}
			cands = append(cands, candidate{root, q, missing, score})
		}
	}

	id := &Identification{}
	if set.HasBass() {
		id.Bass = set.Bass.Name()
	}

	if len(cands) == 0 {
		var names []string
		for _, c := range set.Classes {
			names = append(names, c.Name())
		}
		id.Name = strings.Join(names, "-")
		id.Root = note.NoClass
		return id
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].score != cands[j].score {
			return cands[i].score > cands[j].score
		}
		return cands[i].quality < cands[j].quality
	})

	best := cands[0]
	id.Name = best.root.Name() + best.quality.Suffix()
	id.Root = best.root
	id.Quality = best.quality
	id.Matched = true
	id.IsSlashChord = set.HasBass() && set.Bass != best.root

	for _, c := range cands[1:] {
		if len(id.Alternates) >= constants.MaxAlternateNames {
			break
		}
		id.Alternates = append(id.Alternates, c.root.Name()+c.quality.Suffix())
	}
	return id
}
