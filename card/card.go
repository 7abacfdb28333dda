// Package card defines the normalized card record produced by the tabular
// parser, the recognized color keys and the card palette.
package card

// Record is one card of a deck: the question printed on the front face, the
// answer printed on the back face and an optional color overriding the deck
// default for this card only.
type Record struct {
	Question string   `json:"question"`
	Back     string   `json:"back"`
	Color    ColorKey `json:"color,omitempty"`
}

// Blank is the record used to fill deck slots that have no input row.
var Blank = Record{}

// IsBlank reports whether the record carries no text at all.
func (r Record) IsBlank() bool {
	return r.Question == "" && r.Back == ""
}
