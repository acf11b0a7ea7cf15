package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wgomg/wikifactcheck/internal/analysis"
	"github.com/wgomg/wikifactcheck/internal/text"
)

type Styles struct {
	High    lipgloss.Style
	Partial lipgloss.Style
	Low     lipgloss.Style
	Muted   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		High:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Partial: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Low:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Muted:   lipgloss.NewStyle().Faint(true),
	}
}

func (s Styles) forTier(tier Tier) lipgloss.Style {
	switch tier {
	case TierHigh:
		return s.High
	case TierPartial:
		return s.Partial
	default:
		return s.Low
	}
}

// Colorize renders the article with each word styled by its support tier.
// Punctuation and spaces pass through unstyled, so the visible text is the
// article unchanged.
func Colorize(articleText string, scores analysis.WordScores, styles Styles, high, partial float64) string {
	tokens := text.Tokenize(articleText)

	var b strings.Builder
	b.Grow(len(articleText))

	for _, tok := range Project(tokens, scores) {
		if tok.Class != text.ClassWord {
			b.WriteString(tok.Text)
			continue
		}

		b.WriteString(styles.forTier(ResolveTier(tok, high, partial)).Render(tok.Text))
	}

	return b.String()
}

func Legend(styles Styles) string {
	return strings.Join([]string{
		"Legend:",
		styles.High.Render("high support"),
		styles.Partial.Render("partial support"),
		styles.Low.Render("low/no support"),
	}, "  ")
}
