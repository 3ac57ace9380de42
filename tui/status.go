// Package tui provides a read-only status view of a running Device: its
// adjustment knobs and a bloom-energy indicator. It never edits any of the
// Device's fields — a keyboard-driven parameter editor is a different,
// out-of-scope tool this package deliberately is not.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ntsccrt/crt"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

type tickMsg time.Time

// Model is a bubbletea model that polls a Device's public fields on a
// fixed interval and renders them as a status panel.
type Model struct {
	dvc      *crt.Device
	interval time.Duration
	energy   int // 0-100, caller-supplied bloom indicator (Decode has no getter for its internal beam energy)
}

// NewModel builds a status Model polling dvc every interval.
func NewModel(dvc *crt.Device, interval time.Duration) Model {
	return Model{dvc: dvc, interval: interval}
}

// SetEnergy lets an embedder push a bloom-energy sample (0-100) for the bar
// graph; Decode's internal beam-energy feedback isn't exported, so this is
// how a caller who wants to display it estimates and supplies one.
func (m *Model) SetEnergy(e int) {
	if e < 0 {
		e = 0
	}
	if e > 100 {
		e = 100
	}
	m.energy = e
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case tickMsg:
		return m, tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
	}
	return m, nil
}

func (m Model) View() string {
	row := func(label string, value any) string {
		return fmt.Sprintf("%s %s\n", labelStyle.Render(label+":"), valueStyle.Render(fmt.Sprint(value)))
	}

	filled := m.energy / 5
	bar := barStyle.Render(strings.Repeat("#", filled)) + strings.Repeat(".", 20-filled)

	var b strings.Builder
	b.WriteString(row("system", systemName(m.dvc.Kind())))
	b.WriteString(row("hue", m.dvc.Hue))
	b.WriteString(row("saturation", m.dvc.Saturation))
	b.WriteString(row("brightness", m.dvc.Brightness))
	b.WriteString(row("contrast", m.dvc.Contrast))
	b.WriteString(row("noise", m.dvc.Noise))
	b.WriteString(fmt.Sprintf("%s [%s] %d%%\n", labelStyle.Render("bloom:"), bar, m.energy))
	b.WriteString("\nq to quit\n")
	return b.String()
}

func systemName(k crt.SystemKind) string {
	switch k {
	case crt.SystemNTSC:
		return "ntsc"
	case crt.SystemNTSCVHS:
		return "ntsc-vhs"
	case crt.SystemNES:
		return "nes"
	default:
		return "unknown"
	}
}
