// Package instructions turns the lightweight markup of recipe instructions
// into display markup, and display markup into plain or terminal text.
package instructions

import "regexp"

// Stage is a single substitution over the whole text.
type Stage struct {
	Name        string
	pattern     *regexp.Regexp
	replacement string
}

// NewStage compiles a stage. The replacement uses regexp.Expand syntax.
func NewStage(name, pattern, replacement string) Stage {
	return Stage{Name: name, pattern: regexp.MustCompile(pattern), replacement: replacement}
}

// Apply runs the stage over text.
func (s Stage) Apply(text string) string {
	return s.pattern.ReplaceAllString(text, s.replacement)
}

// Pipeline is an ordered list of stages. Each stage sees the output of the
// one before it, markup included.
type Pipeline []Stage

// Apply runs every stage in order.
func (p Pipeline) Apply(text string) string {
	for _, s := range p {
		text = s.Apply(text)
	}
	return text
}

// Default is the instruction pipeline used by the browser:
// section headers in 【】, then numbered steps, then bullet glyphs.
//
// The numbered-step stage also matches the "1.1rem" inside the header
// markup. That output is kept as is.
var Default = Pipeline{
	NewStage("headers", `【(.+?)】`,
		`<strong style="color: var(--text-primary); font-size: 1.1rem;">【${1}】</strong>`),
	NewStage("steps", `(\d+)\.`, `<br><strong>${1}.</strong>`),
	NewStage("bullets", `•`, `<span style="color: #667eea;">•</span>`),
}

// Format applies the default pipeline.
func Format(text string) string {
	return Default.Apply(text)
}
