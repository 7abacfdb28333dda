package sheet

import (
	"github.com/lvillar/cardsheet/card"
	"github.com/lvillar/cardsheet/layout"
	"github.com/lvillar/cardsheet/render"
)

// Face is one side of a card.
type Face int

const (
	FaceFront Face = iota
	FaceBack
)

func (f Face) String() string {
	if f == FaceBack {
		return "back"
	}
	return "front"
}

// Status is the outcome of drawing one face.
type Status int

const (
	// StatusOK means the face was drawn as planned.
	StatusOK Status = iota
	// StatusDegraded means a step failed and the face fell back to a
	// simpler layout.
	StatusDegraded
)

func (s Status) String() string {
	if s == StatusDegraded {
		return "degraded"
	}
	return "ok"
}

// CardResult records what was drawn for one face of one slot.
type CardResult struct {
	Slot    int
	Face    Face
	Cell    layout.CellAddress
	Color   card.ColorKey
	Status  Status
	Ops     []render.Op
	Warning string
	// Err is the failure that degraded the face.
	Err       error
	Truncated bool
	// Blank is set for slots padded with an empty record.
	Blank bool
}

// Report aggregates the per-face results of a build.
type Report struct {
	DefaultColor card.ColorKey
	Cards        []CardResult
	// Warnings holds non-fatal problems that are not tied to a single face,
	// such as temp files that could not be removed.
	Warnings []string
}

// Degraded returns the faces that fell back to a simpler layout.
func (r *Report) Degraded() []CardResult {
	var out []CardResult
	for _, c := range r.Cards {
		if c.Status == StatusDegraded {
			out = append(out, c)
		}
	}
	return out
}

// Truncated returns the faces whose text did not fit.
func (r *Report) Truncated() []CardResult {
	var out []CardResult
	for _, c := range r.Cards {
		if c.Truncated {
			out = append(out, c)
		}
	}
	return out
}

// Face returns the result for one face of slot.
func (r *Report) Face(slot int, face Face) (CardResult, bool) {
	for _, c := range r.Cards {
		if c.Slot == slot && c.Face == face {
			return c, true
		}
	}
	return CardResult{}, false
}
