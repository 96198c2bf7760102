package constants

import (
	"os"
	"strconv"
)

// GetServeAddr returns the HTTP listen address for the serve command.
func GetServeAddr() string {
	addr := os.Getenv("FRETDEX_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// GetMaxFret returns the highest fret considered by generators.
func GetMaxFret() int {
	if v := os.Getenv("FRETDEX_MAX_FRET"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= MaxFret {
			return n
		}
	}
	return MaxFret
}

const (
	// MaxFret is the physical upper bound of the modeled fretboard.
	MaxFret = 24

	// HandSpan is the widest fret window playable without shifting.
	HandSpan = 4

	MaxChordSuggestions = 8
	MaxScaleSuggestions = 8
	MaxAlternateNames   = 3
	MaxVoicings         = 40

	// MinSoundingStrings is the fewest strings a solver voicing may use.
	MinSoundingStrings = 3
)

// Ranking weights. The values are empirical; they are vars rather than
// consts so a caller can recalibrate without forking the engine.
var (
	// scale identification
	ScaleBaseClean           = 50
	ScaleBaseDirty           = 30
	ScaleExtraPenalty        = 10
	ScaleMatchBonus          = 10
	ScaleBassRootBonus       = 30
	ScalePentatonicBonus     = 5
	PentatonicCoverageCutoff = 40

	// chord suggestion ranking
	ChordToneWeight    = 10
	ChordBassRootBonus = 15
	ChordExtraPenalty  = 8

	// key identification
	KeyBassTonicBonus = 20
	KeyHintBonus      = 10
)
