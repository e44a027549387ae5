package display

import (
	"strings"

	"github.com/hammamikhairi/recipebrowser/internal/domain"
	"github.com/hammamikhairi/recipebrowser/internal/instructions"
	"github.com/hammamikhairi/recipebrowser/internal/logger"
)

// Compile-time interface check.
var _ domain.Renderer = (*screen)(nil)

// InstructionRenderer turns formatted instruction markup into text for
// the terminal. *instructions.TerminalRenderer and instructions.Plain
// both satisfy it.
type InstructionRenderer interface {
	Render(markup string) (string, error)
}

// screen is what the engine draws into. The Bubble Tea model holds a
// pointer to it and reads it in View; both run on the event loop
// goroutine.
type screen struct {
	text InstructionRenderer
	log  *logger.Logger

	list      domain.ListView
	hasDetail bool
	detail    []string
	scroll    int
}

func newScreen(text InstructionRenderer, log *logger.Logger) *screen {
	if text == nil {
		text = instructions.Plain{}
	}
	return &screen{text: text, log: log}
}

func (s *screen) RenderList(v domain.ListView) {
	s.list = v
}

func (s *screen) RenderDetail(d domain.Detail) {
	body, err := DetailText(d, s.text)
	if err != nil {
		s.log.Warn("rendering recipe %d: %v", d.Recipe.ID, err)
	}
	s.detail = strings.Split(strings.TrimRight(body, "\n"), "\n")
	s.hasDetail = true
}

func (s *screen) ResetScroll() {
	s.scroll = 0
}

// scrollBy moves the detail viewport, keeping at least one line visible.
func (s *screen) scrollBy(n int) {
	s.scroll += n
	if last := len(s.detail) - 1; s.scroll > last {
		s.scroll = last
	}
	if s.scroll < 0 {
		s.scroll = 0
	}
}

// detailLines returns at most height lines starting at the scroll offset.
func (s *screen) detailLines(height int) []string {
	if !s.hasDetail || height <= 0 {
		return nil
	}
	end := s.scroll + height
	if end > len(s.detail) {
		end = len(s.detail)
	}
	return s.detail[s.scroll:end]
}

// DetailText lays out a recipe detail: title, tag badges, image reference
// and the rendered instructions. If the instruction renderer fails, the
// plain-text form is used and the error is returned alongside it.
func DetailText(d domain.Detail, text InstructionRenderer) (string, error) {
	var b strings.Builder

	b.WriteString(titleStyle.Render(strings.TrimSpace(d.Recipe.Icon + " " + d.Recipe.Name)))
	b.WriteByte('\n')

	if len(d.Badges) > 0 {
		parts := make([]string, 0, len(d.Badges))
		for _, bd := range d.Badges {
			parts = append(parts, badge(bd.Label(), bd.Class))
		}
		b.WriteString(strings.Join(parts, " "))
		b.WriteByte('\n')
	}

	if d.Recipe.Image != "" {
		b.WriteString(secondaryStyle.Render("🖼  " + d.Recipe.Image))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	body, err := text.Render(d.Instructions)
	if err != nil {
		plain, plainErr := instructions.PlainText(d.Instructions)
		if plainErr != nil {
			plain = d.Instructions
		}
		body = primaryStyle.Render(plain)
	}
	b.WriteString(body)
	return b.String(), err
}
