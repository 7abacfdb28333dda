package mcp

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lvillar/cardsheet"
	"github.com/lvillar/cardsheet/card"
	"github.com/lvillar/cardsheet/layout"
	"github.com/lvillar/cardsheet/pageops"
	"github.com/lvillar/cardsheet/sheet"
	"github.com/lvillar/cardsheet/tabular"
	"github.com/lvillar/cardsheet/textfit"
)

// RegisterDefaultTools adds the card tools to the server. base options (for
// example from the user's config file) apply to every generate_cards call
// before the call's own arguments.
func RegisterDefaultTools(s *Server, base ...cardsheet.Option) {
	s.AddTool(generateCardsTool(base))
	s.AddTool(parseCardsTool())
	s.AddTool(mergeSheetsTool())
}

var contentProperties = map[string]interface{}{
	"content": map[string]interface{}{
		"type":        "string",
		"description": "Tabular text (CSV, TSV, semicolon, pipe or space separated). Either content or path is required.",
	},
	"path": map[string]interface{}{
		"type":        "string",
		"description": "Path to a tabular file to read instead of content",
	},
	"filename": map[string]interface{}{
		"type":        "string",
		"description": "Name used to guess the deck color (bleu, rouge, rose, vert, jaune). Defaults to the base name of path.",
	},
}

func generateCardsTool(base []cardsheet.Option) Tool {
	props := map[string]interface{}{
		"imagePath": map[string]interface{}{
			"type":        "string",
			"description": "Optional image drawn on every front face",
		},
		"color": map[string]interface{}{
			"type":        "string",
			"enum":        card.ColorKeys,
			"description": "Deck color, overriding the file name guess",
		},
		"flip": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"vertical", "horizontal"},
			"description": "Duplex flip: vertical mirrors columns, horizontal mirrors rows",
		},
		"overflow": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"clamp", "shrink"},
			"description": "What to do with text taller than its card",
		},
		"outputPath": map[string]interface{}{
			"type":        "string",
			"description": "Optional file path to save the PDF. If omitted, returns base64.",
		},
	}
	for k, v := range contentProperties {
		props[k] = v
	}

	return Tool{
		Name:        "generate_cards",
		Description: "Generate a printable two-page duplex PDF of 10 question/answer cards from tabular text. Page 1 holds the colored fronts, page 2 the answers mirrored for double-sided printing. Returns a JSON report and the PDF as base64 or its saved path.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": props,
		},
		Handler: func(args map[string]interface{}) (ToolResult, error) {
			return handleGenerateCards(args, base)
		},
	}
}

func handleGenerateCards(args map[string]interface{}, base []cardsheet.Option) (ToolResult, error) {
	content, filename, err := loadContent(args)
	if err != nil {
		return ToolResult{}, err
	}

	opts := append([]cardsheet.Option{}, base...)
	if c := stringArg(args, "color"); c != "" {
		key, ok := card.ParseColorKey(c)
		if !ok {
			return ToolResult{}, fmt.Errorf("unknown color %q", c)
		}
		opts = append(opts, cardsheet.WithDefaultColor(key))
	}
	if f := stringArg(args, "flip"); f != "" {
		axis, err := layout.ParseFlipAxis(f)
		if err != nil {
			return ToolResult{}, err
		}
		opts = append(opts, cardsheet.WithFlipAxis(axis))
	}
	if o := stringArg(args, "overflow"); o != "" {
		policy, err := textfit.ParseOverflow(o)
		if err != nil {
			return ToolResult{}, err
		}
		opts = append(opts, cardsheet.WithOverflow(policy))
	}

	in := cardsheet.Input{Content: content, Filename: filename}
	if imagePath := stringArg(args, "imagePath"); imagePath != "" {
		f, err := os.Open(imagePath)
		if err != nil {
			return ToolResult{}, fmt.Errorf("opening image: %w", err)
		}
		defer f.Close()
		in.Image = f
	}

	var buf bytes.Buffer
	rep, err := cardsheet.New(opts...).Generate(&buf, in)
	if err != nil {
		return ToolResult{}, fmt.Errorf("generating cards: %w", err)
	}
	summary, _ := json.MarshalIndent(Summarize(rep), "", "  ")

	if outputPath := stringArg(args, "outputPath"); outputPath != "" {
		if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
			return ToolResult{}, fmt.Errorf("writing file: %w", err)
		}
		return ToolResult{
			Content: []ContentBlock{
				{Type: "text", Text: fmt.Sprintf("Card sheet created successfully: %s (%d bytes)", outputPath, buf.Len())},
				{Type: "text", Text: string(summary)},
			},
		}, nil
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return ToolResult{
		Content: []ContentBlock{
			{Type: "text", Text: string(summary)},
			{Type: "text", Text: fmt.Sprintf("Card sheet created successfully (%d bytes). Base64 data:\n%s", buf.Len(), encoded)},
		},
	}, nil
}

// ReportSummary is the JSON form of a generation report.
type ReportSummary struct {
	Pages     int         `json:"pages"`
	Cards     int         `json:"cards"`
	Dropped   int         `json:"dropped"`
	Blank     int         `json:"blank"`
	Delimiter string      `json:"delimiter"`
	Header    bool        `json:"header"`
	Color     string      `json:"color"`
	Image     bool        `json:"image"`
	Degraded  []FaceIssue `json:"degraded,omitempty"`
	Truncated []FaceIssue `json:"truncated,omitempty"`
	Warnings  []string    `json:"warnings,omitempty"`
}

// FaceIssue points at one face of one card.
type FaceIssue struct {
	Card    int    `json:"card"` // 1-based
	Face    string `json:"face"`
	Warning string `json:"warning,omitempty"`
}

// Summarize flattens rep for JSON output.
func Summarize(rep *cardsheet.Report) ReportSummary {
	s := ReportSummary{
		Pages:     rep.Pages,
		Cards:     rep.Deck.Used,
		Dropped:   rep.Deck.Dropped,
		Blank:     rep.Deck.Blank,
		Delimiter: rep.Dialect.Name(),
		Header:    rep.Header,
		Color:     string(rep.DefaultColor),
		Image:     rep.ImageUsed,
		Warnings:  rep.Warnings,
	}
	for _, c := range rep.Degraded() {
		s.Degraded = append(s.Degraded, issue(c))
	}
	for _, c := range rep.Truncated() {
		s.Truncated = append(s.Truncated, issue(c))
	}
	return s
}

func issue(c sheet.CardResult) FaceIssue {
	return FaceIssue{Card: c.Slot + 1, Face: c.Face.String(), Warning: c.Warning}
}

func parseCardsTool() Tool {
	return Tool{
		Name:        "parse_cards",
		Description: "Parse tabular text into card records without rendering. Returns the detected delimiter, whether a header row was found, and the question, answer and color of each record.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": contentProperties,
		},
		Handler: handleParseCards,
	}
}

func handleParseCards(args map[string]interface{}) (ToolResult, error) {
	content, _, err := loadContent(args)
	if err != nil {
		return ToolResult{}, err
	}

	res := tabular.ParseResult(content)
	info := map[string]interface{}{
		"delimiter": res.Dialect.Name(),
		"sniffed":   res.Dialect.Sniffed,
		"header":    res.Header,
		"count":     len(res.Records),
		"records":   res.Records,
	}
	if res.Err != nil {
		info["error"] = res.Err.Error()
	}
	if res.Records == nil {
		info["records"] = []card.Record{}
	}

	jsonBytes, _ := json.MarshalIndent(info, "", "  ")
	return textResult("%s", jsonBytes), nil
}

func mergeSheetsTool() Tool {
	return Tool{
		Name:        "merge_sheets",
		Description: "Merge several generated card sheet PDFs into one print run, keeping page order.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"paths": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "PDF files to merge, in order",
				},
				"outputPath": map[string]interface{}{
					"type":        "string",
					"description": "Optional file path to save the merged PDF. If omitted, returns base64.",
				},
			},
			"required": []string{"paths"},
		},
		Handler: handleMergeSheets,
	}
}

func handleMergeSheets(args map[string]interface{}) (ToolResult, error) {
	raw, ok := args["paths"].([]interface{})
	if !ok || len(raw) == 0 {
		return ToolResult{}, fmt.Errorf("missing 'paths' argument")
	}
	paths := make([]string, 0, len(raw))
	for _, p := range raw {
		str, ok := p.(string)
		if !ok {
			return ToolResult{}, fmt.Errorf("'paths' must contain strings")
		}
		paths = append(paths, str)
	}

	if outputPath := stringArg(args, "outputPath"); outputPath != "" {
		if err := pageops.MergeFiles(outputPath, paths...); err != nil {
			return ToolResult{}, err
		}
		n, err := pageops.PageCount(outputPath)
		if err != nil {
			return ToolResult{}, err
		}
		return textResult("Merged %d sheets into %s (%d pages)", len(paths), outputPath, n), nil
	}

	var buf bytes.Buffer
	if err := pageops.Merge(&buf, paths...); err != nil {
		return ToolResult{}, err
	}
	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return textResult("Merged %d sheets (%d bytes). Base64 data:\n%s", len(paths), buf.Len(), encoded), nil
}

func stringArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

// loadContent returns the tabular text of a call, from "content" or read
// from "path", and the file name to guess the color from.
func loadContent(args map[string]interface{}) (content, filename string, err error) {
	filename = stringArg(args, "filename")
	if c, ok := args["content"].(string); ok && c != "" {
		return c, filename, nil
	}
	path := stringArg(args, "path")
	if path == "" {
		return "", "", fmt.Errorf("missing 'content' or 'path' argument")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}
	if filename == "" {
		filename = path
	}
	return string(data), filename, nil
}
