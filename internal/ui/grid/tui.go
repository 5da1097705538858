package grid

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taisazevedo9/gridview/internal/dataview"
	"github.com/taisazevedo9/gridview/internal/fetch"
	"github.com/taisazevedo9/gridview/internal/source"
	"github.com/taisazevedo9/gridview/internal/ui/styles"
	"github.com/taisazevedo9/gridview/internal/util"
)

// ═══════════════════════════════════════════════════════════════════════════
// Constants
// ═══════════════════════════════════════════════════════════════════════════

const (
	defaultColWidth = 24
	minColWidth     = 3
)

// Grid mode
type gridMode int

const (
	gridModeNormal gridMode = iota
	gridModeGoto
)

// Exit mode - what to do after quitting the TUI
type exitMode int

const (
	exitNormal exitMode = iota
	exitJSON
	exitPlain
)

// ═══════════════════════════════════════════════════════════════════════════
// Model
// ═══════════════════════════════════════════════════════════════════════════

type gridModel struct {
	view *dataview.View[dataview.Row]
	ctrl *fetch.Controller[source.Result] // nil for static data

	snap      dataview.Table
	colWidths []int
	cursor    int // selected row on the current page
	colCursor int // selected column
	width     int
	height    int
	ready     bool
	mode      gridMode
	gotoInput textinput.Model
	exitMode  exitMode

	// Refetch state
	loading   bool
	errText   string
	spin      spinner.Model
	fetchedAt time.Time
	prevBody  []string // last body lines, for the change-count flash

	// Status message (flash notification, e.g. after yank or refetch)
	statusMsg   string
	statusUntil time.Time
}

// ═══════════════════════════════════════════════════════════════════════════
// Key Bindings
// ═══════════════════════════════════════════════════════════════════════════

type gridKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Sort        key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding
	FirstPage   key.Binding
	LastPage    key.Binding
	GotoPage    key.Binding
	Refresh     key.Binding
	YankCell    key.Binding
	YankRow     key.Binding
	ExportJSON  key.Binding
	ExportPlain key.Binding
	Quit        key.Binding
}

var gridKeys = gridKeyMap{
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev column")),
	Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next column")),
	Sort:        key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "cycle sort")),
	PrevPage:    key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev page")),
	NextPage:    key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next page")),
	FirstPage:   key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first page")),
	LastPage:    key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last page")),
	GotoPage:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to page")),
	Refresh:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	YankCell:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy cell")),
	YankRow:     key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "copy row")),
	ExportJSON:  key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "print as JSON")),
	ExportPlain: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "print table")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

// ═══════════════════════════════════════════════════════════════════════════
// Entry Point
// ═══════════════════════════════════════════════════════════════════════════

// RunGridTUI launches the interactive grid over an already-populated view.
// ctrl may be nil for static data; when set, `r` triggers a refetch and page
// changes in remote mode round-trip through the controller. Blocks until the
// user quits. If the user requests an export (J/P), the data is printed to
// stdout after the TUI exits.
func RunGridTUI(view *dataview.View[dataview.Row], ctrl *fetch.Controller[source.Result]) error {
	ti := textinput.New()
	ti.Placeholder = "page"
	ti.CharLimit = 6
	ti.Width = 8

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Accent)

	m := gridModel{
		view:      view,
		ctrl:      ctrl,
		gotoInput: ti,
		spin:      sp,
		fetchedAt: time.Now(),
	}
	m.refresh()
	m.prevBody = bodyLines(m.snap)

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := finalModel.(gridModel); ok {
		switch fm.exitMode {
		case exitJSON:
			return PrintJSON(view.Rows())
		case exitPlain:
			PrintPlain(fm.snap)
		}
	}

	return nil
}

// refresh re-runs the render pipeline and recomputes column widths.
func (m *gridModel) refresh() {
	m.snap = m.view.Snapshot()

	m.colWidths = make([]int, len(m.snap.Headers))
	for i, h := range m.snap.Headers {
		w := len([]rune(headerLabel(h)))
		if w < minColWidth {
			w = minColWidth
		}
		m.colWidths[i] = w
	}
	for _, row := range m.snap.Body {
		for i, val := range row {
			if i < len(m.colWidths) && len([]rune(val)) > m.colWidths[i] {
				m.colWidths[i] = len([]rune(val))
			}
		}
	}
	for i, w := range m.colWidths {
		if w > defaultColWidth {
			m.colWidths[i] = defaultColWidth
		}
	}

	if m.cursor >= len(m.snap.Body) {
		m.cursor = len(m.snap.Body) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.colCursor >= len(m.snap.Headers) && len(m.snap.Headers) > 0 {
		m.colCursor = len(m.snap.Headers) - 1
	}
}

func headerLabel(h dataview.HeaderCell) string {
	if h.Indicator != "" {
		return h.Label + " " + h.Indicator
	}
	return h.Label
}

// bodyLines flattens a snapshot body for change detection across refetches.
func bodyLines(t dataview.Table) []string {
	lines := make([]string, 0, len(t.Body))
	for _, row := range t.Body {
		lines = append(lines, strings.Join(row, "\t"))
	}
	return lines
}

// ═══════════════════════════════════════════════════════════════════════════
// Messages / Commands
// ═══════════════════════════════════════════════════════════════════════════

type fetchDoneMsg struct {
	state fetch.State[source.Result]
}

type statusClearMsg struct{}

const statusDuration = 2 * time.Second

// fetchCmd runs one controller refetch off the UI loop and reports the
// resulting state. The previous page stays on screen until it arrives.
func (m gridModel) fetchCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctrl.Refetch(context.Background())
		return fetchDoneMsg{state: ctrl.State()}
	}
}

// startFetch flips the loading flag and kicks off the spinner plus the fetch.
func (m *gridModel) startFetch() tea.Cmd {
	if m.ctrl == nil || m.loading {
		return nil
	}
	m.loading = true
	m.prevBody = bodyLines(m.snap)
	return tea.Batch(m.spin.Tick, m.fetchCmd())
}

// setStatus sets a temporary status message that auto-clears.
func (m *gridModel) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusUntil = time.Now().Add(statusDuration)
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

// ═══════════════════════════════════════════════════════════════════════════
// Bubble Tea Interface
// ═══════════════════════════════════════════════════════════════════════════

func (m gridModel) Init() tea.Cmd {
	return nil
}

func (m gridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case fetchDoneMsg:
		return m.applyFetch(msg.state)

	case statusClearMsg:
		if !m.statusUntil.IsZero() && time.Now().After(m.statusUntil) {
			m.statusMsg = ""
			m.statusUntil = time.Time{}
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode == gridModeGoto {
			return m.updateGoto(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

// applyFetch folds a finished controller fetch into the view. On error the
// stale page stays visible with an error banner on top.
func (m gridModel) applyFetch(st fetch.State[source.Result]) (tea.Model, tea.Cmd) {
	m.loading = false
	m.errText = st.Err
	if st.Err != "" {
		return m, m.setStatus("refresh failed")
	}

	res := st.Data
	if res.Paged {
		m.view.SetRemote(res.Page, res.TotalPages)
	}
	m.view.SetRows(res.Rows)
	m.refresh()
	m.fetchedAt = time.Now()

	changed := ChangedLines(m.prevBody, bodyLines(m.snap))

	if changed == 0 {
		return m, m.setStatus("Up to date")
	}
	return m, m.setStatus(fmt.Sprintf("%d rows changed", changed))
}

func (m gridModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, gridKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, gridKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, gridKeys.Down):
		if m.cursor < len(m.snap.Body)-1 {
			m.cursor++
		}

	case key.Matches(msg, gridKeys.Left):
		if m.colCursor > 0 {
			m.colCursor--
		}

	case key.Matches(msg, gridKeys.Right):
		if m.colCursor < len(m.snap.Headers)-1 {
			m.colCursor++
		}

	case key.Matches(msg, gridKeys.Sort):
		if m.colCursor < len(m.snap.Headers) {
			m.view.CycleSort(m.snap.Headers[m.colCursor].Key)
			m.refresh()
		}

	case key.Matches(msg, gridKeys.PrevPage):
		return m.changePage(m.view.Page() - 1)

	case key.Matches(msg, gridKeys.NextPage):
		return m.changePage(m.view.Page() + 1)

	case key.Matches(msg, gridKeys.FirstPage):
		return m.changePage(1)

	case key.Matches(msg, gridKeys.LastPage):
		return m.changePage(m.view.TotalPages())

	case key.Matches(msg, gridKeys.GotoPage):
		if m.view.TotalPages() > 1 {
			m.mode = gridModeGoto
			m.gotoInput.SetValue("")
			m.gotoInput.Focus()
			return m, textinput.Blink
		}

	case key.Matches(msg, gridKeys.Refresh):
		return m, m.startFetch()

	case key.Matches(msg, gridKeys.YankCell):
		return m, m.yankCell()

	case key.Matches(msg, gridKeys.YankRow):
		return m, m.yankRow()

	case key.Matches(msg, gridKeys.ExportJSON):
		m.exitMode = exitJSON
		return m, tea.Quit

	case key.Matches(msg, gridKeys.ExportPlain):
		m.exitMode = exitPlain
		return m, tea.Quit
	}

	return m, nil
}

// changePage requests a one-based page. Local views flip immediately; remote
// views forward the request to the page owner and refetch.
func (m gridModel) changePage(page int) (tea.Model, tea.Cmd) {
	m.view.SetPage(page)
	if m.view.Remote() {
		return m, m.startFetch()
	}
	m.cursor = 0
	m.refresh()
	return m, nil
}

func (m gridModel) updateGoto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = gridModeNormal
		m.gotoInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.mode = gridModeNormal
		m.gotoInput.Blur()
		page, err := strconv.Atoi(strings.TrimSpace(m.gotoInput.Value()))
		if err != nil {
			return m, m.setStatus("not a page number")
		}
		return m.changePage(page)
	}

	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return m, cmd
}

// ═══════════════════════════════════════════════════════════════════════════
// Clipboard (yank)
// ═══════════════════════════════════════════════════════════════════════════

func (m *gridModel) yankCell() tea.Cmd {
	if m.cursor >= len(m.snap.Body) {
		return nil
	}
	row := m.snap.Body[m.cursor]
	var val string
	if m.colCursor < len(row) {
		val = row[m.colCursor]
	}
	if err := clipboard.WriteAll(val); err != nil {
		return m.setStatus(fmt.Sprintf("clipboard error: %s", err))
	}
	display := val
	if len(display) > 40 {
		display = display[:37] + "..."
	}
	return m.setStatus(fmt.Sprintf("Copied: %s", display))
}

func (m *gridModel) yankRow() tea.Cmd {
	if m.cursor >= len(m.snap.Body) {
		return nil
	}
	row := m.snap.Body[m.cursor]
	if err := clipboard.WriteAll(strings.Join(row, "\t")); err != nil {
		return m.setStatus(fmt.Sprintf("clipboard error: %s", err))
	}
	return m.setStatus(fmt.Sprintf("Copied row (%d columns)", len(row)))
}

// ═══════════════════════════════════════════════════════════════════════════
// View
// ═══════════════════════════════════════════════════════════════════════════

func (m gridModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var sb strings.Builder

	title := m.snap.Title
	if title == "" {
		title = "Results"
	}
	sb.WriteString(styles.Title(fmt.Sprintf("%s: %d rows, %d columns", title, m.view.RowCount(), len(m.snap.Headers))))
	if m.loading {
		sb.WriteString("  " + m.spin.View() + styles.MutedMsg("refreshing"))
	}
	sb.WriteString("\n")

	if m.errText != "" {
		sb.WriteString(styles.ErrorMsg(m.errText))
		sb.WriteString(styles.StaleStyle.Render("  (showing last good data)"))
		sb.WriteString("\n")
	} else {
		sb.WriteString("\n")
	}

	sb.WriteString(m.renderGrid())

	sb.WriteString("\n")
	sb.WriteString(m.renderPageBar())
	sb.WriteString("\n")
	sb.WriteString(m.renderFooter())

	return sb.String()
}

func (m gridModel) renderGrid() string {
	var sb strings.Builder

	if len(m.snap.Headers) == 0 {
		return "No columns\n"
	}

	for i, h := range m.snap.Headers {
		cell := PadOrTruncate(headerLabel(h), m.colWidths[i])
		sb.WriteString(styles.Header(cell, i == m.colCursor || h.Indicator != ""))
		sb.WriteString("  ")
	}
	sb.WriteString("\n")

	for i := range m.snap.Headers {
		sep := strings.Repeat("─", m.colWidths[i])
		if i == m.colCursor {
			sb.WriteString(styles.ActivePageStyle.Render(sep))
		} else {
			sb.WriteString(styles.MutedMsg(sep))
		}
		sb.WriteString("  ")
	}
	sb.WriteString("\n")

	if m.snap.Placeholder != "" {
		sb.WriteString(styles.MutedMsg(m.snap.Placeholder))
		sb.WriteString("\n")
		return sb.String()
	}

	for rowIdx, row := range m.snap.Body {
		selected := rowIdx == m.cursor
		for i := range m.snap.Headers {
			var val string
			if i < len(row) {
				val = row[i]
			}
			cell := PadOrTruncate(val, m.colWidths[i])
			if selected {
				sb.WriteString(styles.SelectedStyle.Render(cell))
			} else {
				sb.WriteString(cell)
			}
			sb.WriteString("  ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderPageBar draws prev/next plus one button per page, matching the
// snapshot's pagination contract: nothing when controls are hidden.
func (m gridModel) renderPageBar() string {
	var sb strings.Builder

	if bar := m.snap.Pagination; bar != nil {
		if bar.HasPrev {
			sb.WriteString(styles.PageBarStyle.Render("‹ prev"))
		} else {
			sb.WriteString(styles.MutedMsg("      "))
		}
		sb.WriteString("  ")
		for _, p := range bar.Pages {
			label := strconv.Itoa(p)
			if p == bar.Current {
				sb.WriteString(styles.ActivePageStyle.Render("[" + label + "]"))
			} else {
				sb.WriteString(styles.PageBarStyle.Render(" " + label + " "))
			}
		}
		sb.WriteString("  ")
		if bar.HasNext {
			sb.WriteString(styles.PageBarStyle.Render("next ›"))
		}
		sb.WriteString("   ")
	}
	if m.snap.Summary != "" {
		sb.WriteString(styles.MutedMsg(m.snap.Summary))
	}

	return sb.String()
}

func (m gridModel) renderFooter() string {
	if m.mode == gridModeGoto {
		return fmt.Sprintf("go to page: %s  %s", m.gotoInput.View(), styles.MutedMsg("enter confirm  esc cancel"))
	}

	if m.statusMsg != "" && time.Now().Before(m.statusUntil) {
		return styles.SuccessMsg(m.statusMsg)
	}

	help := "↑↓←→ nav  enter sort  [ ] page  g goto  y copy"
	if m.ctrl != nil {
		help += "  r refresh"
	}
	help += "  J json  P table  q quit"

	info := "refreshed " + util.RelativeTimeShort(m.fetchedAt)
	if m.ctrl != nil {
		if id := m.ctrl.LastRequest(); id != "" {
			info += " · req " + id
		}
	}
	return styles.MutedMsg(help) + "\n" + styles.MutedMsg(info)
}
