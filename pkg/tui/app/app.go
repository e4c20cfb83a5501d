// Package app hosts the Bubble Tea model for the scrolling calendar. It
// owns the week window for the lifetime of the view, feeds scroll geometry
// to the proximity detector, and keeps the visual position stable when
// weeks are prepended.
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/scrollcal/pkg/config"
	"tableflip.dev/scrollcal/pkg/scroll"
	"tableflip.dev/scrollcal/pkg/timeutil"
	"tableflip.dev/scrollcal/pkg/tui/grid"
	"tableflip.dev/scrollcal/pkg/tui/theme"
	"tableflip.dev/scrollcal/pkg/week"
)

type mode int

const (
	modeNormal mode = iota
	modeCommand
)

// chrome rows outside the scrolling region: weekday header plus status bar.
const chromeLines = 2

// Model contains the calendar UI state.
type Model struct {
	window   *week.Window
	detector *scroll.Detector
	renderer *grid.Renderer
	th       theme.Theme
	cfg      config.Config
	now      time.Time

	mode  mode
	input textinput.Model

	termWidth  int
	termHeight int

	// offset is the first visible line of the rendered content.
	offset int
	// cached render of the current window, kept in sync by refresh.
	lines []string
	// heights[i] is the rendered height of window week i; lineOffsets is
	// its prefix sum.
	heights     []int
	lineOffsets []int

	status string
}

// New builds the calendar model seeded around now.
func New(cfg config.Config, now time.Time) (*Model, error) {
	window, err := week.NewWindow(now, cfg.WindowOptions())
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Placeholder = "goto 2006-01-02"
	ti.CharLimit = 64
	ti.Prompt = ""

	th := theme.Default()
	m := &Model{
		window:   window,
		detector: scroll.NewDetector(cfg.Margin),
		renderer: grid.NewRenderer(th.Grid, now),
		th:       th,
		cfg:      cfg,
		now:      now,
		input:    ti,
		status:   "j/k scroll, t today, : commands, q quit",
	}
	m.refresh()
	m.centerOn(now)
	return m, nil
}

// Run launches the Bubble Tea program.
func Run(cfg config.Config) error {
	m, err := New(cfg, time.Now())
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		first := m.termHeight == 0
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		if first {
			// Centering at construction used a placeholder height.
			m.centerOn(m.now)
		}
		m.clampOffset()
		m.checkSentinels()

	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelUp:
			m.scrollBy(-3)
		case tea.MouseWheelDown:
			m.scrollBy(3)
		}

	case tea.KeyPressMsg:
		switch m.mode {
		case modeCommand:
			switch msg.String() {
			case "enter":
				m.runCommand(strings.TrimSpace(m.input.Value()), &cmds)
				m.leaveCommandMode()
			case "esc":
				m.leaveCommandMode()
				m.status = "Command cancelled"
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeNormal:
			switch msg.String() {
			case "j", "down":
				m.scrollBy(1)
			case "k", "up":
				m.scrollBy(-1)
			case "ctrl+d":
				m.scrollBy(m.viewHeight() / 2)
			case "ctrl+u":
				m.scrollBy(-m.viewHeight() / 2)
			case "pgdown":
				m.scrollBy(m.viewHeight())
			case "pgup":
				m.scrollBy(-m.viewHeight())
			case "t":
				m.gotoDate(m.now)
				m.status = "Recentered on today"
			case ":":
				m.mode = modeCommand
				m.input.Reset()
				if cmd := m.input.Focus(); cmd != nil {
					cmds = append(cmds, cmd)
				}
				cmds = append(cmds, textinput.Blink)
			case "q", "ctrl+c":
				cmds = append(cmds, tea.Quit)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) leaveCommandMode() {
	m.mode = modeNormal
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) runCommand(input string, cmds *[]tea.Cmd) {
	if input == "" {
		return
	}
	fields := strings.Fields(input)
	switch fields[0] {
	case "q", "quit", "exit":
		*cmds = append(*cmds, tea.Quit)
	case "today":
		m.gotoDate(m.now)
		m.status = "Recentered on today"
	case "goto":
		if len(fields) < 2 {
			m.status = "Usage: goto 2006-01-02"
			return
		}
		target, err := timeutil.ParseDate(strings.Join(fields[1:], " "), m.now)
		if err != nil {
			m.status = err.Error()
			return
		}
		m.gotoDate(target)
		m.status = fmt.Sprintf("Jumped to %s", target.Format(timeutil.LayoutISO))
	case "help":
		m.status = "Commands: goto <date>, today, quit"
	default:
		m.status = fmt.Sprintf("Unknown command: %s", fields[0])
	}
}

// refresh re-renders the window into the line cache and recomputes the
// per-week height table.
func (m *Model) refresh() {
	m.lines, m.heights = m.renderer.ContentLines(m.window.Weeks())
	m.lineOffsets = make([]int, len(m.heights))
	sum := 0
	for i, h := range m.heights {
		m.lineOffsets[i] = sum
		sum += h
	}
}

func (m *Model) contentHeight() int {
	return len(m.lines)
}

func (m *Model) viewHeight() int {
	h := m.termHeight - chromeLines
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) maxOffset() int {
	max := m.contentHeight() - m.viewHeight()
	if max < 0 {
		return 0
	}
	return max
}

func (m *Model) clampOffset() {
	if m.offset < 0 {
		m.offset = 0
	}
	if max := m.maxOffset(); m.offset > max {
		m.offset = max
	}
}

func (m *Model) scrollBy(delta int) {
	m.offset += delta
	m.clampOffset()
	m.checkSentinels()
}

// checkSentinels feeds the current geometry to the detector and extends
// the window toward any edge that fired. Both sentinels can fire on the
// same observation; each extension reads the window state the previous
// one committed.
func (m *Model) checkSentinels() {
	if m.termHeight == 0 {
		return
	}
	for _, edge := range m.detector.Observe(m.offset, m.contentHeight(), m.viewHeight()) {
		m.extend(edge)
	}
}

// extend commits the window mutation, re-measures the rendered content,
// and then corrects the scroll offset so the previously visible week keeps
// its on-screen position. Commit, measure, and adjust all happen inside
// one Update call, so no frame ever shows the uncorrected position.
//
// Anchoring on the first visible week is equivalent to adjusting by the
// content height delta when nothing is trimmed, and stays correct when the
// same transition also trims the opposite end.
func (m *Model) extend(edge scroll.Edge) {
	anchorIdx, anchorDelta := m.weekAt(m.offset)
	anchorID := m.window.Weeks()[anchorIdx].ID

	if edge == scroll.Top {
		m.window.ExtendBackward()
	} else {
		m.window.ExtendForward()
	}
	m.refresh()

	if idx := m.weekIndexByID(anchorID); idx >= 0 {
		m.offset = m.lineOffsets[idx] + anchorDelta
	}
	m.clampOffset()
}

// weekAt maps a content line to the week that renders it, returning the
// week index and the line's position inside that week's rows.
func (m *Model) weekAt(line int) (int, int) {
	for i := len(m.lineOffsets) - 1; i >= 0; i-- {
		if m.lineOffsets[i] <= line {
			return i, line - m.lineOffsets[i]
		}
	}
	return 0, 0
}

func (m *Model) weekIndexByID(id string) int {
	for i, w := range m.window.Weeks() {
		if w.ID == id {
			return i
		}
	}
	return -1
}

// gotoDate recenters the window around target and scrolls its week to the
// middle of the viewport. The detector is re-armed because the content
// underneath the sentinels was rebuilt.
func (m *Model) gotoDate(target time.Time) {
	m.window.Recenter(target)
	m.refresh()
	m.detector.Reset()
	m.centerOn(target)
}

func (m *Model) centerOn(target time.Time) {
	idx := m.window.IndexOf(target)
	if idx < 0 {
		idx = m.window.Len() / 2
	}
	m.offset = m.lineOffsets[idx] - m.viewHeight()/2
	m.clampOffset()
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.renderer.Header(m.cfg.WeekStart)

	height := m.viewHeight()
	end := m.offset + height
	if end > len(m.lines) {
		end = len(m.lines)
	}
	visible := make([]string, 0, height)
	visible = append(visible, m.lines[m.offset:end]...)
	for len(visible) < height {
		visible = append(visible, "")
	}

	var footer string
	if m.mode == modeCommand {
		footer = m.th.Footer.Prompt.Render(":") + m.input.View()
	} else {
		left := m.visibleRange()
		right := m.window.Span()
		footer = m.th.Footer.Status.Render(fmt.Sprintf("%s  [%s]  %s", left, right, m.status))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		strings.Join(visible, "\n"),
		footer,
	)
}

// visibleRange labels the months currently on screen.
func (m *Model) visibleRange() string {
	topIdx, _ := m.weekAt(m.offset)
	bottom := m.offset + m.viewHeight() - 1
	if max := m.contentHeight() - 1; bottom > max {
		bottom = max
	}
	bottomIdx, _ := m.weekAt(bottom)

	weeks := m.window.Weeks()
	from := weeks[topIdx].Start.Format("Jan 2006")
	to := weeks[bottomIdx].Days[week.DaysPerWeek-1].Date.Format("Jan 2006")
	if from == to {
		return from
	}
	return from + " to " + to
}

// Window exposes the resident window for the render layer and tests.
func (m *Model) Window() *week.Window {
	return m.window
}

// Offset returns the first visible content line.
func (m *Model) Offset() int {
	return m.offset
}

// SetSize resizes the model without a full message round trip; used by
// tests and embedding callers.
func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
	m.clampOffset()
	m.checkSentinels()
}
