package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/cratescout/pkg/integrations/github"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// MatchListModel - Interactive search result selection
// =============================================================================

// MatchListModel is the bubbletea model for picking one search result.
type MatchListModel struct {
	Matches  []github.RepositoryMatch
	Cursor   int
	Selected *github.RepositoryMatch
	Height   int
	Offset   int
}

// NewMatchListModel creates a new match list model.
func NewMatchListModel(matches []github.RepositoryMatch) MatchListModel {
	return MatchListModel{
		Matches: matches,
		Height:  15,
	}
}

func (m MatchListModel) Init() tea.Cmd {
	return nil
}

func (m MatchListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Matches)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Matches) == 0 {
				return m, tea.Quit
			}
			match := m.Matches[m.Cursor]
			m.Selected = &match
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m MatchListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Open Repository"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ open  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Matches))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Matches[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		name := r.FullName
		if name == "" {
			name = r.URL
		}
		desc := r.Description
		if desc == "" {
			desc = "—"
		}
		rows = append(rows, []string{cursor, fmt.Sprint(i), name, truncate(desc, 60)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Repository", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col == 3 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Matches))))

	return b.String()
}

// truncate shortens s to n runes for the picker. The plain table never
// truncates; the picker has to fit the terminal.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// pickAndOpen lets the user choose one match and opens it in the browser.
func (c *CLI) pickAndOpen(res *github.SearchResult) error {
	p := tea.NewProgram(NewMatchListModel(res.Matches))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	fm, ok := finalModel.(MatchListModel)
	if !ok || fm.Selected == nil {
		printDetail(c.Out, "No selection made")
		return nil
	}

	printKeyValue(c.Out, "Opening", StyleLink.Render(fm.Selected.URL))
	if err := openBrowser(fm.Selected.URL); err != nil {
		printWarning(c.Out, "Could not open browser: %v", err)
		printDetail(c.Out, "Copy the URL above and paste it in your browser")
	}
	return nil
}
