package display

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

//go:embed banner.txt
var bannerRaw string

// RenderBanner returns the banner art horizontally centred in width
// columns. A width of zero or less uses the terminal width. To change the
// banner just replace banner.txt.
func RenderBanner(width int) string {
	if width <= 0 {
		width = termWidth()
	}

	lines := strings.Split(strings.TrimRight(bannerRaw, "\n"), "\n")

	maxW := 0
	for _, l := range lines {
		if w := lipgloss.Width(l); w > maxW {
			maxW = w
		}
	}

	pad := ""
	if width > maxW {
		pad = strings.Repeat(" ", (width-maxW)/2)
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(pad)
		b.WriteString(BannerStyle.Render(l))
		b.WriteByte('\n')
	}
	return b.String()
}

// termWidth returns the current terminal column count, or 80 as fallback.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
