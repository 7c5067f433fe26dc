package model

type ChordSummary struct {
	Name      string   `json:"name"`
	Diagram   string   `json:"diagram"`
	Fingering string   `json:"fingering"`
	Notes     []string `json:"notes"`
	Degrees   []string `json:"degrees"`
}

type NotationResponse struct {
	Input string `json:"input"`
	Latex string `json:"latex"`
}

type ErrorResponse struct {
	Error       string   `json:"detail"`
	Suggestions []string `json:"suggestions,omitempty"`
}
