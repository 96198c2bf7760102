package tuning

// Standard is E standard, the reference tuning of the curated voicing
// database.
var Standard = New("standard", [6]string{"E2", "A2", "D3", "G3", "B3", "E4"})

var presets = []Tuning{
	Standard,
	New("drop-d", [6]string{"D2", "A2", "D3", "G3", "B3", "E4"}),
	New("dadgad", [6]string{"D2", "A2", "D3", "G3", "A3", "D4"}),
	New("open-g", [6]string{"D2", "G2", "D3", "G3", "B3", "D4"}),
	New("open-d", [6]string{"D2", "A2", "D3", "F#3", "A3", "D4"}),
	New("eb-standard", [6]string{"Eb2", "Ab2", "Db3", "Gb3", "Bb3", "Eb4"}),
	New("d-standard", [6]string{"D2", "G2", "C3", "F3", "A3", "D4"}),
	New("c-standard", [6]string{"C2", "F2", "A#2", "D#3", "G3", "C4"}),
}

// Presets returns the built-in tuning table.
func Presets() []Tuning {
	out := make([]Tuning, len(presets))
	copy(out, presets)
	return out
}

// ByName looks up a preset tuning.
func ByName(name string) (Tuning, bool) {
	for _, t := range presets {
		if t.Name == name {
			return t, true
		}
	}
	return Tuning{}, false
}
