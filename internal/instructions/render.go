package instructions

import (
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/glamour"
)

// PlainText strips display markup, keeping the line breaks inserted before
// numbered steps.
func PlainText(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("parsing instructions: %w", err)
	}
	doc.Find("br").ReplaceWithHtml("\n")
	return strings.TrimSpace(doc.Find("body").Text()), nil
}

// TerminalRenderer renders display markup for a terminal: markup is first
// converted to markdown, then styled by glamour.
type TerminalRenderer struct {
	converter *md.Converter
	term      *glamour.TermRenderer
}

// NewTerminalRenderer builds a renderer. style is "auto", or a glamour
// standard style name such as "dark", "light" or "notty". width is the
// word-wrap column.
func NewTerminalRenderer(style string, width int) (*TerminalRenderer, error) {
	styleOpt := glamour.WithAutoStyle()
	if style != "" && style != "auto" {
		styleOpt = glamour.WithStylePath(style)
	}

	term, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("creating terminal renderer: %w", err)
	}

	return &TerminalRenderer{
		converter: md.NewConverter("", true, nil),
		term:      term,
	}, nil
}

// Markdown converts display markup to markdown.
func (r *TerminalRenderer) Markdown(markup string) (string, error) {
	out, err := r.converter.ConvertString(markup)
	if err != nil {
		return "", fmt.Errorf("converting instructions: %w", err)
	}
	return out, nil
}

// Render converts display markup to styled terminal text.
func (r *TerminalRenderer) Render(markup string) (string, error) {
	markdown, err := r.Markdown(markup)
	if err != nil {
		return "", err
	}
	out, err := r.term.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering instructions: %w", err)
	}
	return out, nil
}

// Plain renders display markup as plain text. It satisfies the same
// Render contract as TerminalRenderer.
type Plain struct{}

// Render implements the renderer contract with PlainText.
func (Plain) Render(markup string) (string, error) { return PlainText(markup) }
