package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
	"golang.org/x/term"

	"github.com/wippyai/utfkit"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	byteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const bytesPerRow = 16

type inspectorModel struct {
	err      error
	source   string
	text     string
	data     []byte
	cursor   *utfkit.Cursor
	vp       viewport.Model
	jump     textinput.Model
	jumping  bool
	ready    bool
	status   string
	points   int
	firstBad int
}

type loadedMsg struct {
	err  error
	data []byte
}

func newInspectorModel(source, text string) *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "byte offset"
	ti.Prompt = "jump to: "
	ti.Width = 20

	return &inspectorModel{
		source: source,
		text:   text,
		jump:   ti,
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return m.loadData
}

func (m *inspectorModel) loadData() tea.Msg {
	if m.text != "" {
		return loadedMsg{data: []byte(m.text)}
	}
	data, err := readInput(m.source, "")
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{data: data}
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - 10
		if height < 3 {
			height = 3
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = height
		}
		m.refresh()

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.data = msg.data
		m.cursor, _ = utfkit.NewCursor(m.data, 0)
		m.firstBad = utfkit.FindInvalid(m.data)
		m.points, _ = utfkit.Distance(m.data, 0, m.firstBad)
		m.refresh()

	case tea.KeyMsg:
		if m.jumping {
			return m.updateJump(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m *inspectorModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.cursor == nil {
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "right", "l":
		m.status = ""
		if err := m.cursor.Next(); err != nil {
			m.status = err.Error()
		}
		m.refresh()

	case "left", "h":
		m.status = ""
		if err := m.cursor.Prev(); err != nil {
			m.status = err.Error()
		}
		m.refresh()

	case "home":
		m.status = ""
		m.cursor, _ = utfkit.NewCursor(m.data, 0)
		m.refresh()

	case "end":
		m.status = ""
		m.cursor, _ = utfkit.NewCursor(m.data, len(m.data))
		m.refresh()

	case "g":
		m.jumping = true
		m.jump.SetValue("")
		m.jump.Focus()

	case "pgdown":
		m.vp.HalfViewDown()

	case "pgup":
		m.vp.HalfViewUp()
	}

	return m, nil
}

func (m *inspectorModel) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.jumping = false
		m.jump.Blur()
		return m, nil

	case "enter":
		m.jumping = false
		m.jump.Blur()
		offset, err := strconv.ParseInt(strings.TrimSpace(m.jump.Value()), 0, 64)
		if err != nil {
			m.status = fmt.Sprintf("bad offset: %v", err)
			return m, nil
		}
		cur, err := utfkit.NewCursor(m.data, int(offset))
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = ""
		m.cursor = cur
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

// refresh rebuilds the hex pane and keeps the cursor row in view.
func (m *inspectorModel) refresh() {
	if !m.ready || m.cursor == nil {
		return
	}

	width := m.sequenceWidth()
	pos := m.cursor.Pos()

	var b strings.Builder
	for row := 0; row < len(m.data); row += bytesPerRow {
		b.WriteString(helpStyle.Render(fmt.Sprintf("%08x", row)))
		b.WriteString("  ")
		for i := row; i < row+bytesPerRow && i < len(m.data); i++ {
			cell := fmt.Sprintf("%02x", m.data[i])
			if i >= pos && i < pos+width {
				b.WriteString(selectedStyle.Render(cell))
			} else {
				b.WriteString(byteStyle.Render(cell))
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	m.vp.SetContent(b.String())

	row := 0
	if len(m.data) > 0 {
		row = pos / bytesPerRow
	}
	if row < m.vp.YOffset {
		m.vp.SetYOffset(row)
	} else if row >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(row - m.vp.Height + 1)
	}
}

// sequenceWidth is the byte width of the sequence under the cursor, one
// for malformed units, zero at the end of data.
func (m *inspectorModel) sequenceWidth() int {
	pos := m.cursor.Pos()
	if pos >= len(m.data) {
		return 0
	}
	_, next, err := utfkit.DecodeNext(m.data, pos)
	if err != nil {
		return 1
	}
	return next - pos
}

func (m *inspectorModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if !m.ready || m.cursor == nil {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("UTF Inspector"))
	b.WriteString(" ")
	b.WriteString(m.sourceName())
	b.WriteString("\n\n")

	b.WriteString(m.vp.View())
	b.WriteString("\n")

	b.WriteString(m.summaryLine())
	b.WriteString("\n")
	b.WriteString(m.detailLines())
	b.WriteString("\n")

	if m.jumping {
		b.WriteString(m.jump.View())
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("←/→ step sequence • g jump • home/end • pgup/pgdn scroll • q quit"))
	return b.String()
}

func (m *inspectorModel) sourceName() string {
	if m.text != "" {
		return fmt.Sprintf("(%d literal bytes)", len(m.data))
	}
	return m.source
}

func (m *inspectorModel) summaryLine() string {
	if m.firstBad == len(m.data) {
		return fmt.Sprintf("%d bytes, %d codepoints, well formed", len(m.data), m.points)
	}
	return fmt.Sprintf("%d bytes, %s", len(m.data),
		errorStyle.Render(fmt.Sprintf("first defect at offset %d", m.firstBad)))
}

func (m *inspectorModel) detailLines() string {
	pos := m.cursor.Pos()
	if pos >= len(m.data) {
		return helpStyle.Render("cursor at end of data")
	}

	lead := m.data[pos]
	var b strings.Builder
	fmt.Fprintf(&b, "offset %d  lead %s  declared length %d\n",
		pos, byteStyle.Render(fmt.Sprintf("0x%02x", lead)), utfkit.SequenceLength(lead))

	cp, err := m.cursor.Rune()
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
		return b.String()
	}

	fmt.Fprintf(&b, "codepoint %s  %s  %d bytes, display width %d",
		valueStyle.Render(fmt.Sprintf("U+%04X", cp)),
		valueStyle.Render(strconv.QuoteRune(cp)),
		utfkit.EncodedLen(cp),
		uniseg.StringWidth(string(cp)))
	return b.String()
}

func runInteractive(inFile, text string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}

	p := tea.NewProgram(newInspectorModel(inFile, text), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
