// Package command turns a typed command line into a browser action.
package command

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hammamikhairi/recipebrowser/internal/domain"
	"github.com/hammamikhairi/recipebrowser/internal/logger"
)

// Prefix marks a line as a command rather than search text.
const Prefix = ":"

// Parser matches input against keyword patterns. Anything that does not
// start with Prefix, or is only digits, is treated as search text.
type Parser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex  *regexp.Regexp
	action domain.ActionType
}

var (
	digits     = regexp.MustCompile(`^\d+$`)
	tagCommand = regexp.MustCompile(`(?i)^(?:tag|t)\s+(\S+)\s+(\S+)$`)
	showByID   = regexp.MustCompile(`(?i)^(?:show|open|s)\s+(\d+)$`)
)

// NewParser creates a keyword-based command parser.
func NewParser(log *logger.Logger) *Parser {
	p := &Parser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(clear|reset|c)$`), domain.ActionClear},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.ActionHelp},
		{regexp.MustCompile(`(?i)^(quit|exit|q)$`), domain.ActionQuit},
	}
	return p
}

// Parse converts a line of input into an action. It never fails: input it
// cannot classify comes back as ActionUnknown with the raw text as Payload.
func (p *Parser) Parse(input string) domain.Action {
	trimmed := strings.TrimSpace(input)

	// Bare number selects a recipe.
	if digits.MatchString(trimmed) {
		if id, err := strconv.Atoi(trimmed); err == nil {
			return domain.Action{Type: domain.ActionSelect, ID: id}
		}
	}

	if !strings.HasPrefix(trimmed, Prefix) {
		// The raw input is kept; the filter does its own trimming.
		return domain.Action{Type: domain.ActionSearch, Query: input}
	}

	body := strings.TrimSpace(strings.TrimPrefix(trimmed, Prefix))
	p.log.Debug("parsing command: %q", body)

	for _, rule := range p.patterns {
		if rule.regex.MatchString(body) {
			p.log.Debug("matched action: %s", rule.action)
			return domain.Action{Type: rule.action}
		}
	}

	if m := tagCommand.FindStringSubmatch(body); m != nil {
		c, ok := domain.CategoryFromString(strings.ToLower(m[1]))
		if !ok {
			p.log.Debug("unknown category %q", m[1])
			return domain.Action{Type: domain.ActionUnknown, Payload: trimmed}
		}
		return domain.Action{Type: domain.ActionToggleTag, Category: c, Value: domain.TagValue(m[2])}
	}

	if m := showByID.FindStringSubmatch(body); m != nil {
		id, err := strconv.Atoi(m[1])
		if err == nil {
			return domain.Action{Type: domain.ActionSelect, ID: id}
		}
	}

	p.log.Debug("no match, returning unknown action")
	return domain.Action{Type: domain.ActionUnknown, Payload: trimmed}
}

// Help lists the commands understood by Parse.
func Help() []string {
	return []string{
		":tag <category> <value>  toggle a tag filter (taste, meal, time, ingredient)",
		":clear                   clear filters and search",
		":show <id> or <id>       open a recipe",
		":help                    show this list",
		":quit                    leave the browser",
		"anything else            search by name or tag",
	}
}
