// Package ui is the Bubble Tea front end: the braille map, the year
// slider, and the keys driving playback. The model also closes the render
// loop: the range drawn on one frame is reported back to the orchestrator
// on the next, which is what ultimately triggers sound.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/svanbekk/grantmap/internal/audio"
	"github.com/svanbekk/grantmap/internal/config"
	"github.com/svanbekk/grantmap/internal/dataset"
	"github.com/svanbekk/grantmap/internal/filter"
	"github.com/svanbekk/grantmap/internal/playback"
)

const chromeLines = 9 // header, slider, progress, stats, status, help, padding

// Model is the Bubble Tea model for the grantmap TUI.
type Model struct {
	orch   *playback.Orchestrator
	sink   *audio.Sink
	cfg    config.Config
	bounds dataset.Bounds
	mv     *mapView
	prog   progress.Model

	spring     harmonica.Spring
	visiblePos float64
	visibleVel float64

	width  int
	height int

	lastDrawn int
	haveDrawn bool
	audioUp   bool
	quitting  bool
}

// New builds the model. sink may be nil when audio is unavailable.
func New(orch *playback.Orchestrator, sink *audio.Sink, points []dataset.GrantPoint, bounds dataset.Bounds, cfg config.Config) Model {
	return Model{
		orch:   orch,
		sink:   sink,
		cfg:    cfg,
		bounds: bounds,
		mv:     newMapView(points),
		prog:   progress.New(progress.WithDefaultGradient()),
		spring: harmonica.NewSpring(harmonica.FPS(20), 6.0, 0.7),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.SetWindowTitle("grantmap"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		next, cmd := m.handleKey(msg)
		return next, cmd

	case tea.MouseMsg:
		m.tryResume()
		return m, nil

	case tickMsg:
		next, cmd := m.handleTick()
		return next, cmd

	case sweepDoneMsg:
		// Status line picks the new state up on the next frame.
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prog.Width = max(10, m.width-16)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Any gesture may be the one that unlocks the audio output.
	m.tryResume()

	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		m.orch.Stop()
		if m.sink != nil {
			m.sink.Close()
		}
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case " ":
		if m.orch.State() == playback.Running {
			m.orch.Stop()
			return m, nil
		}
		if m.orch.Play(m.cfg.TickInterval) {
			return m, checkSweepDone(m.orch)
		}
		return m, nil

	case "r":
		m.orch.Stop()
		if m.orch.Play(m.cfg.TickInterval) {
			return m, checkSweepDone(m.orch)
		}
		return m, nil

	case "m":
		m.orch.SetMuted(!m.orch.Muted())
		return m, nil

	case "left", "h":
		m.nudgeRange(0, -1)
	case "right", "l":
		m.nudgeRange(0, 1)
	case "[":
		m.nudgeRange(-1, 0)
	case "]":
		m.nudgeRange(1, 0)
	}
	return m, nil
}

// nudgeRange applies a manual slider move. Direct input always cancels an
// active sweep; the orchestrator enforces that.
func (m *Model) nudgeRange(dLower, dUpper int) {
	r := m.orch.Range()
	lower := clampYear(r.Lower + dLower)
	upper := clampYear(r.Upper + dUpper)
	if lower > upper {
		if dLower != 0 {
			lower = upper
		} else {
			upper = lower
		}
	}
	m.orch.SetRange(filter.NewRange(lower, upper, m.cfg.SoftYears))
}

func clampYear(y int) int {
	if y < dataset.DomainMin {
		return dataset.DomainMin
	}
	if y > dataset.DomainMax {
		return dataset.DomainMax
	}
	return y
}

func (m Model) handleTick() (Model, tea.Cmd) {
	// Close the loop: the frame drawn since the last tick is now on
	// screen, so the orchestrator may sound its year.
	if m.haveDrawn {
		m.orch.FrameRendered(m.lastDrawn)
	}

	r := m.orch.Range()
	m.lastDrawn = r.Upper
	m.haveDrawn = true

	visible, _ := m.orch.Stats()
	m.visiblePos, m.visibleVel = m.spring.Update(m.visiblePos, m.visibleVel, float64(visible))

	m.mv.update(r, max(2, m.width-4), m.mapHeight())
	return m, tickCmd()
}

func (m *Model) tryResume() {
	if m.audioUp || m.sink == nil {
		return
	}
	m.sink.Resume()
	m.audioUp = m.sink.Running()
}

func (m Model) mapHeight() int {
	h := m.height - chromeLines
	if h < 4 {
		h = 4
	}
	return h
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w := m.width
	if w < 40 {
		w = 72
	}
	r := m.orch.Range()
	_, total := m.orch.Stats()
	smoothed := int(m.visiblePos + 0.5)
	if smoothed > total {
		smoothed = total
	}

	header := headerStyle.Render("grantmap") + "  " +
		yearStyle.Render(fmt.Sprintf("%d – %d", r.Lower, r.Upper))

	slider := renderSlider(r, m.bounds, w-16)

	span := m.bounds.MaxYear - m.bounds.MinYear
	frac := 0.0
	if span > 0 {
		frac = float64(r.Upper-m.bounds.MinYear) / float64(span)
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	sweepLine := fmt.Sprintf("%s %s %s",
		sliderStyle.Render(fmt.Sprint(m.bounds.MinYear)),
		m.prog.ViewAs(frac),
		sliderStyle.Render(fmt.Sprint(m.bounds.MaxYear)))

	stats := statsStyle.Render(fmt.Sprintf("%s of %s grants visible", formatCount(smoothed), formatCount(total)))

	status := statusStyle.Render(m.statusText())

	help := helpStyle.Render("space play/stop · r replay · ←/→ upper · [/] lower · m mute · q quit")

	var b strings.Builder
	b.WriteString("\n  " + header + "\n\n")
	b.WriteString(indentBlock(m.mv.view()) + "\n\n")
	b.WriteString("  " + slider + "\n")
	b.WriteString("  " + sweepLine + "\n")
	b.WriteString("  " + stats + "\n")
	b.WriteString("  " + status + "\n")
	b.WriteString("  " + help + "\n")
	return b.String()
}

func (m Model) statusText() string {
	var parts []string
	switch m.orch.State() {
	case playback.Running:
		parts = append(parts, "▶ sweeping")
	case playback.Finished:
		parts = append(parts, "■ finished")
	default:
		parts = append(parts, "❚❚ idle")
	}
	if m.orch.Muted() {
		parts = append(parts, "muted")
	}
	if m.sink == nil {
		parts = append(parts, "no audio")
	} else if !m.audioUp {
		parts = append(parts, "audio waiting for key press")
	}
	return strings.Join(parts, "  ·  ")
}

// renderSlider draws the year window over the data bounds:
// filled for the hard range, shaded for the soft band.
func renderSlider(r filter.Range, b dataset.Bounds, width int) string {
	if width < 10 {
		width = 10
	}
	span := b.MaxYear - b.MinYear
	if span <= 0 {
		span = 1
	}
	pos := func(year int) int {
		p := (year - b.MinYear) * (width - 1) / span
		if p < 0 {
			p = 0
		}
		if p > width-1 {
			p = width - 1
		}
		return p
	}

	runes := []rune(strings.Repeat("─", width))
	for i := pos(r.SoftLower); i <= pos(r.SoftUpper); i++ {
		runes[i] = '▓'
	}
	for i := pos(r.Lower); i <= pos(r.Upper); i++ {
		runes[i] = '█'
	}
	return sliderStyle.Render(fmt.Sprintf("%d ", b.MinYear)) +
		string(runes) +
		sliderStyle.Render(fmt.Sprintf(" %d", b.MaxYear))
}

func indentBlock(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

// formatCount renders an integer with thousands separators.
func formatCount(n int) string {
	s := fmt.Sprint(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
