// Package deck assembles parsed card records into a deck of exactly Size
// cards, the number that fits on one printed sheet.
package deck

import "github.com/lvillar/cardsheet/card"

// Size is the number of cards on a sheet.
const Size = 10

// Deck is a fixed-length sequence of cards in placement order.
type Deck [Size]card.Record

// Summary describes how the input records were placed.
type Summary struct {
	Parsed  int // records given to Assemble
	Used    int // records placed in the deck
	Dropped int // records beyond Size
	Blank   int // slots filled with card.Blank
}

// Assemble places records first-come-first-placed. Missing slots hold
// card.Blank; records past Size are dropped.
func Assemble(records []card.Record) (Deck, Summary) {
	var d Deck
	n := copy(d[:], records)
	for i := n; i < Size; i++ {
		d[i] = card.Blank
	}
	return d, Summary{
		Parsed:  len(records),
		Used:    n,
		Dropped: len(records) - n,
		Blank:   Size - n,
	}
}

// Records returns the deck as a slice.
func (d *Deck) Records() []card.Record {
	return d[:]
}
