package model

// AnalyzeRequestBody is the request shape shared by the identify,
// suggestions, scales and keys endpoints. Frets entries are "x" for a
// muted string or a fret number; Tuning is six pitch names low to high
// and defaults to standard when omitted.
type AnalyzeRequestBody struct {
	Frets  []string `json:"frets"`
	Tuning []string `json:"tuning"`
	Hint   string   `json:"hint"`
}

// GenerateRequestBody is the request shape for the voicings endpoint.
type GenerateRequestBody struct {
	Root    string   `json:"root"`
	Quality string   `json:"quality"`
	Tuning  []string `json:"tuning"`
	Filter  string   `json:"filter"`
}

// PositionsRequestBody is the request shape for the positions endpoint.
type PositionsRequestBody struct {
	Root    string   `json:"root"`
	Scale   string   `json:"scale"`
	Tuning  []string `json:"tuning"`
	Full    bool     `json:"full"`
	MaxFret int      `json:"maxFret"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
