// Package statsui provides the Bubble Tea candidate browser.
package statsui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/autoalias/internal/aliasfile"
	"github.com/verte-zerg/autoalias/internal/config"
	"github.com/verte-zerg/autoalias/internal/report"
)

const (
	tabCandidates = iota
	tabAliases
	tabIgnored
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// Model implements the Bubble Tea candidate browser.
type Model struct {
	tabs      []string
	activeTab int
	tables    []table.Model
	empty     []string

	width  int
	height int
}

// NewModel builds the browser from the loaded documents.
func NewModel(candidates []report.Candidate, aliases []aliasfile.Alias, ignore config.IgnoreList) *Model {
	m := &Model{
		tabs: []string{"Candidates", "Aliases", "Ignored"},
		empty: []string{
			"No statistics yet",
			"No aliases created yet",
			"Nothing ignored",
		},
	}
	m.tables = []table.Model{
		buildTable(candidateColumns(), candidateRows(candidates)),
		buildTable(aliasColumns(), aliasRows(aliases)),
		buildTable(ignoreColumns(), ignoreRows(ignore)),
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l", "tab":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "g", "home":
			m.tables[m.activeTab].GotoTop()
			return m, nil
		case "G", "end":
			m.tables[m.activeTab].GotoBottom()
			return m, nil
		default:
			var cmd tea.Cmd
			m.tables[m.activeTab], cmd = m.tables[m.activeTab].Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.renderTabs()
	body := m.renderBody()
	footer := headerStyle.Render("Nav: left/right  Scroll: up/down  Top/Bottom: g/G  Quit: q")
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderBody() string {
	if m.tableEmpty(m.activeTab) {
		return emptyStyle.Render(m.empty[m.activeTab])
	}
	return m.tables[m.activeTab].View()
}

func (m *Model) tableEmpty(tab int) bool {
	return len(m.tables[tab].Rows()) == 0
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.tables[m.activeTab].Blur()
	m.activeTab = next
	m.tables[m.activeTab].Focus()
}

func (m *Model) updateLayout() {
	navHeight := lipgloss.Height(activeNavStyle.Render("X"))
	bodyHeight := m.height - navHeight - 1
	if bodyHeight < 2 {
		bodyHeight = 2
	}
	for i := range m.tables {
		m.tables[i].SetWidth(m.width)
		m.tables[i].SetHeight(bodyHeight - 1)
	}
}

func buildTable(columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	t.SetStyles(styles)
	return t
}

func candidateColumns() []table.Column {
	return []table.Column{
		{Title: "Wrong", Width: 16},
		{Title: "Correct", Width: 20},
		{Title: "Count", Width: 6},
		{Title: "State", Width: 10},
	}
}

func candidateRows(candidates []report.Candidate) []table.Row {
	rows := make([]table.Row, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, table.Row{
			c.Wrong,
			c.Correct,
			fmt.Sprintf("%d", c.Count),
			c.State.String(),
		})
	}
	return rows
}

func aliasColumns() []table.Column {
	return []table.Column{
		{Title: "Alias", Width: 16},
		{Title: "Command", Width: 40},
	}
}

func aliasRows(aliases []aliasfile.Alias) []table.Row {
	rows := make([]table.Row, 0, len(aliases))
	for _, alias := range aliases {
		rows = append(rows, table.Row{alias.Name, alias.Command})
	}
	return rows
}

func ignoreColumns() []table.Column {
	return []table.Column{
		{Title: "Kind", Width: 10},
		{Title: "Item", Width: 30},
	}
}

func ignoreRows(ignore config.IgnoreList) []table.Row {
	rows := make([]table.Row, 0, len(ignore.IgnoreAliases)+len(ignore.IgnoreCommands))
	for _, name := range ignore.IgnoreAliases {
		rows = append(rows, table.Row{"alias", name})
	}
	for _, command := range ignore.IgnoreCommands {
		rows = append(rows, table.Row{"command", command})
	}
	return rows
}
