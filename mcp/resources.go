package mcp

import (
	"encoding/json"

	"github.com/lvillar/cardsheet/card"
	"github.com/lvillar/cardsheet/deck"
	"github.com/lvillar/cardsheet/layout"
	"github.com/lvillar/cardsheet/sheet"
	"github.com/lvillar/cardsheet/textfit"
)

// RegisterDefaultResources adds the static card resources to the server.
// Resources use the cards:// scheme.
func RegisterDefaultResources(s *Server) {
	s.AddResource(Resource{
		URI:         "cards://palette",
		Name:        "Card Palette",
		Description: "The card colors, their hex values and whether front text on them is white or black.",
		MIMEType:    "application/json",
		Handler:     handlePaletteResource,
	})

	s.AddResource(Resource{
		URI:         "cards://layout",
		Name:        "Sheet Layout",
		Description: "Page size, grid and cell geometry of a card sheet, in PDF points with a bottom-left origin.",
		MIMEType:    "application/json",
		Handler:     handleLayoutResource,
	})
}

func handlePaletteResource(uri string) ([]ResourceContent, error) {
	type entry struct {
		Name      string  `json:"name"`
		Hex       string  `json:"hex"`
		Luminance float64 `json:"luminance"`
		Text      string  `json:"text"`
		Default   bool    `json:"default,omitempty"`
	}

	entries := make([]entry, 0, len(card.ColorKeys))
	for _, k := range card.ColorKeys {
		text := "black"
		if textfit.IsDark(k.Color()) {
			text = "white"
		}
		entries = append(entries, entry{
			Name:      string(k),
			Hex:       k.Hex(),
			Luminance: textfit.Luminance(k.Color()),
			Text:      text,
			Default:   k == card.DefaultColor,
		})
	}
	return jsonContent(uri, map[string]interface{}{"colors": entries})
}

func handleLayoutResource(uri string) ([]ResourceContent, error) {
	g := layout.Default()
	cells := make([]map[string]interface{}, 0, deck.Size)
	d := layout.NewDuplex(g, layout.FlipVertical)
	for slot := 0; slot < deck.Size; slot++ {
		front := d.Front(slot)
		cells = append(cells, map[string]interface{}{
			"card":  slot + 1,
			"front": front.String(),
			"back":  d.Back(slot).String(),
			"rect":  g.Cell(front),
		})
	}

	info := map[string]interface{}{
		"page":       map[string]float64{"width": g.PageW, "height": g.PageH},
		"columns":    g.Cols,
		"rows":       g.Rows,
		"cellWidth":  g.CellW,
		"cellHeight": g.CellH,
		"margin":     g.X0,
		"gap":        g.Gap,
		"spacing":    sheet.Spacing,
		"padding":    textfit.Padding,
		"cells":      cells,
	}
	return jsonContent(uri, info)
}

func jsonContent(uri string, v interface{}) ([]ResourceContent, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return []ResourceContent{{
		URI:      uri,
		MIMEType: "application/json",
		Text:     string(jsonBytes),
	}}, nil
}
