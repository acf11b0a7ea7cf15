package render

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wgomg/wikifactcheck/internal/analysis"
)

const sourcePanelWidth = 32

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	windowTitle = "WikiFactCheck"
)

type sourceItem string

func (i sourceItem) Title() string       { return string(i) }
func (i sourceItem) Description() string { return "" }
func (i sourceItem) FilterValue() string { return string(i) }

// Window is the interactive article view: a source picker on the left and
// the article on the right, re-colored live from the selected source's
// scores.
type Window struct {
	articleText string
	result      analysis.Result
	styles      Styles
	high        float64
	partial     float64

	sources  list.Model
	viewport viewport.Model
	selected string
	ready    bool
}

func NewWindow(articleText string, result analysis.Result, styles Styles, high, partial float64) Window {
	names := make([]string, 0, len(result))
	for name := range result {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]list.Item, 0, len(names))
	for _, name := range names {
		items = append(items, sourceItem(name))
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	sources := list.New(items, delegate, sourcePanelWidth, 10)
	sources.Title = "Sources"
	sources.SetShowStatusBar(false)
	sources.SetFilteringEnabled(false)
	sources.SetShowHelp(false)

	selected := ""
	if len(names) > 0 {
		selected = names[0]
	}

	return Window{
		articleText: articleText,
		result:      result,
		styles:      styles,
		high:        high,
		partial:     partial,
		sources:     sources,
		selected:    selected,
	}
}

func (w Window) Init() tea.Cmd {
	return nil
}

func (w Window) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		contentWidth := msg.Width - sourcePanelWidth - 8
		if contentWidth < 20 {
			contentWidth = 20
		}
		contentHeight := msg.Height - 6
		if contentHeight < 5 {
			contentHeight = 5
		}

		w.sources.SetSize(sourcePanelWidth, contentHeight)

		if !w.ready {
			w.viewport = viewport.New(contentWidth, contentHeight)
			w.ready = true
		} else {
			w.viewport.Width = contentWidth
			w.viewport.Height = contentHeight
		}
		w.refresh()

		return w, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return w, tea.Quit

		case "up", "down", "j", "k":
			var cmd tea.Cmd
			w.sources, cmd = w.sources.Update(msg)
			cmds = append(cmds, cmd)

			if item, ok := w.sources.SelectedItem().(sourceItem); ok && string(item) != w.selected {
				w.selected = string(item)
				w.refresh()
			}

			return w, tea.Batch(cmds...)
		}
	}

	var cmd tea.Cmd
	w.viewport, cmd = w.viewport.Update(msg)

	return w, cmd
}

// refresh re-projects the article through the selected source's scores.
// Occurrence counters restart with every projection, so switching sources
// keeps word alignment intact.
func (w *Window) refresh() {
	if !w.ready {
		return
	}

	scores, ok := w.result[w.selected]
	if !ok {
		scores = analysis.WordScores{}
	}

	colored := Colorize(w.articleText, scores, w.styles, w.high, w.partial)
	w.viewport.SetContent(lipgloss.NewStyle().Width(w.viewport.Width).Render(colored))
	w.viewport.GotoTop()
}

func (w Window) View() string {
	if !w.ready {
		return "loading..."
	}

	header := titleStyle.Render(fmt.Sprintf("%s - %s", windowTitle, w.selected))

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		panelStyle.Render(w.sources.View()),
		panelStyle.Render(w.viewport.View()),
	)

	footer := lipgloss.JoinHorizontal(
		lipgloss.Top,
		Legend(w.styles),
		helpStyle.Render("  ↑/↓ source · pgup/pgdn scroll · q quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Selected reports which source's scores the article is rendered from.
func (w Window) Selected() string {
	return w.selected
}

// RunWindow blocks until the user closes the view.
func RunWindow(articleText string, result analysis.Result, styles Styles, high, partial float64) error {
	program := tea.NewProgram(
		NewWindow(articleText, result, styles, high, partial),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
