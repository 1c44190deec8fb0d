package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/bisko/internal/engine"
)

// ViewState is the screen the sector browser shows.
type ViewState int

const (
	// ViewStateSectors lists every sector with its totals.
	ViewStateSectors ViewState = iota
	// ViewStateDetail lists the items of the selected sector.
	ViewStateDetail
	// ViewStateQuitting is set once the user asked to leave.
	ViewStateQuitting
)

const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEnter = "enter"
	keyEsc   = "esc"

	sectorColumnWidth = 18
	itemColumnWidth   = 34
	valueColumnWidth  = 18
	chromeHeight      = 16
	minTableHeight    = 5
)

// SectorModel is the Bubble Tea model for browsing a balance sector by
// sector.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type SectorModel struct {
	state     ViewState
	res       *engine.Result
	sectors   []engine.Row
	selected  string
	precision int

	table  table.Model
	width  int
	height int
}

// NewSectorModel builds a browser positioned on the sector list.
func NewSectorModel(res *engine.Result, precision int) SectorModel {
	m := SectorModel{
		state:     ViewStateSectors,
		res:       res,
		precision: precision,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	if res != nil {
		m.sectors = SectorSummaries(res.Bisko)
	}
	m.rebuildTable()
	return m
}

// State reports the current screen.
func (m SectorModel) State() ViewState { return m.state }

// Selected is the sector shown in the detail view.
func (m SectorModel) Selected() string { return m.selected }

// Init implements tea.Model.
func (m SectorModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m SectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.rebuildTable()
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEsc:
		if m.state == ViewStateDetail {
			m.state = ViewStateSectors
			m.selected = ""
			m.rebuildTable()
			return m, nil
		}
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEnter:
		if m.state == ViewStateSectors {
			cursor := m.table.Cursor()
			if cursor >= 0 && cursor < len(m.sectors) {
				m.selected = m.sectors[cursor].Sector
				m.state = ViewStateDetail
				m.rebuildTable()
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(keyMsg)
	return m, cmd
}

// View implements tea.Model.
func (m SectorModel) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}
	if m.res == nil || m.res.Bisko == nil {
		return InfoStyle.Render("No results to display.")
	}

	var help string
	var title string
	switch m.state {
	case ViewStateDetail:
		title = HeaderStyle.Render(strings.ToUpper(m.selected))
		help = "↑/↓ move • esc back • q quit"
	default:
		title = HeaderStyle.Render("SECTORS")
		help = "↑/↓ move • enter open • q quit"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderSummary(m.res, m.width, m.precision),
		title,
		m.table.View(),
		SubtleStyle.Render(help),
	)
}

func (m *SectorModel) rebuildTable() {
	height := m.height - chromeHeight
	if height < minTableHeight {
		height = minTableHeight
	}

	var columns []table.Column
	var rows []table.Row
	if m.state == ViewStateDetail && m.res != nil {
		columns = []table.Column{
			{Title: "Item", Width: itemColumnWidth},
			{Title: "Energy", Width: valueColumnWidth},
			{Title: "CO2e cb", Width: valueColumnWidth},
			{Title: "CO2e pb", Width: valueColumnWidth},
		}
		for _, row := range engine.SectorRows(m.res.Bisko, m.selected) {
			rows = append(rows, m.valueRow(row.Item, row))
		}
	} else {
		columns = []table.Column{
			{Title: "Sector", Width: sectorColumnWidth},
			{Title: "Energy", Width: valueColumnWidth},
			{Title: "CO2e cb", Width: valueColumnWidth},
			{Title: "CO2e pb", Width: valueColumnWidth},
		}
		for _, row := range m.sectors {
			rows = append(rows, m.valueRow(row.Sector, row))
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)
	m.table = t
}

func (m *SectorModel) valueRow(label string, row engine.Row) table.Row {
	return table.Row{
		label,
		optional(row.Energy, m.precision),
		optional(row.CO2eCb, m.precision),
		engine.FormatFloat(row.CO2ePb, m.precision),
	}
}

func optional(v *float64, precision int) string {
	if v == nil {
		return "-"
	}
	return engine.FormatFloat(*v, precision)
}

// Run starts the interactive browser and blocks until the user quits.
func Run(res *engine.Result, precision int, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(NewSectorModel(res, precision), opts...).Run()
	return err
}
