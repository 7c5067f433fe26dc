package model

// Card is the content of one flashcard. Front and Back are HTML fragments
// that may embed LaTeX inline math; Media lists image files the fields refer
// to by name.
type Card struct {
	ID    string   `json:"id"`
	Deck  string   `json:"deck"`
	Front string   `json:"front"`
	Back  string   `json:"back"`
	Media []string `json:"media,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}
