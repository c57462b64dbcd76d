package models

// Paper is one cleaned paper-metadata record. Records are created once by
// the loader and never mutated afterwards; filtering always copies.
type Paper struct {
	Title          string `json:"title"`
	Authors        string `json:"authors,omitempty"`
	Journal        string `json:"journal,omitempty"`
	Year           int    `json:"year"`
	TitleWordCount int    `json:"title_word_count"`
}
