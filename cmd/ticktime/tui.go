package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/BYTE-6D65/ticktime/pkg/clock"
	"github.com/BYTE-6D65/ticktime/pkg/datetime"
	"github.com/BYTE-6D65/ticktime/pkg/framerate"
	"github.com/BYTE-6D65/ticktime/pkg/stopwatch"
	"github.com/BYTE-6D65/ticktime/pkg/timespan"
)

// Message types
type messageType int

const (
	msgInfo messageType = iota
	msgWarning
	msgSuccess
)

// userMessage represents a dynamic message to the user
type userMessage struct {
	msgType messageType
	text    string
}

// model holds the state of the TUI
type model struct {
	width  int
	height int

	src      clock.Source
	replay   *clock.Replay
	wall     datetime.Source
	watch    *stopwatch.Stopwatch
	laps     *stopwatch.LapRecorder
	fps      *framerate.Counter
	interval time.Duration

	// Animation
	spinnerFrame int
	replayEnded  bool

	// Dynamic user messages
	userMessage *userMessage
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			PaddingLeft(2)

	elapsedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#50FA7B")).
			PaddingLeft(4)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			PaddingLeft(4)

	bestLapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			PaddingTop(1).
			PaddingLeft(2)

	lapsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			MarginLeft(2)

	infoMessageStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#00A9E0")).
				Foreground(lipgloss.Color("#00A9E0")).
				Padding(0, 2).
				MarginTop(1).
				MarginLeft(2)

	warningMessageStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#FFB800")).
				Foreground(lipgloss.Color("#FFB800")).
				Padding(0, 2).
				MarginTop(1).
				MarginLeft(2)

	successMessageStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#50FA7B")).
				Foreground(lipgloss.Color("#50FA7B")).
				Padding(0, 2).
				MarginTop(1).
				MarginLeft(2)
)

type tickMsg struct{}

// visibleLaps is how many of the most recent laps the view lists.
const visibleLaps = 5

func bindDemo(fs *pflag.FlagSet) func(*app, *pflag.FlagSet) error {
	dump := fs.String("dump", "", "write recorded laps as JSON to this file on exit")
	replayFile := fs.String("replay", "", "drive the demo from recorded frame intervals (JSON array of milliseconds)")
	replayLoop := fs.Bool("replay-loop", false, "restart the replay when it runs out")

	return func(a *app, fs *pflag.FlagSet) error {
		var m model
		if *replayFile != "" {
			replay, err := loadReplay(*replayFile)
			if err != nil {
				return err
			}
			replay.SetLoop(*replayLoop)
			a.log.Info("replaying frame intervals", zap.String("file", *replayFile), zap.Int("frames", replay.Len()))
			m = newModel(a, replay)
			m.replay = replay
		} else {
			src, err := a.tickSource()
			if err != nil {
				return err
			}
			m = newModel(a, src)
		}

		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}

		if *dump != "" && m.laps.Len() > 0 {
			f, err := os.Create(*dump)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := m.laps.Dump(f); err != nil {
				return err
			}
			a.log.Info("laps written", zap.String("file", *dump), zap.Int("laps", m.laps.Len()))
		}
		return nil
	}
}

// loadReplay reads a frame interval recording at DateTime tick resolution.
func loadReplay(path string) (*clock.Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return clock.LoadReplay(f, timespan.TicksPerSecond)
}

func newModel(a *app, src clock.Source) model {
	return model{
		src:      src,
		wall:     a.wall,
		watch:    stopwatch.New(src, stopwatch.WithName("demo"), stopwatch.WithMetrics(a.metrics)),
		laps:     stopwatch.NewLapRecorder(a.cfg.LapCapacity, a.wall, stopwatch.WithRecorderMetrics("demo", a.metrics)),
		fps:      framerate.New(src, framerate.WithName("demo"), framerate.WithMetrics(a.metrics)),
		interval: a.cfg.FrameInterval,
		userMessage: &userMessage{
			msgType: msgInfo,
			text:    "Press space to start the stopwatch",
		},
	}
}

func (m model) Init() tea.Cmd {
	return m.tick()
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.replay != nil && !m.replay.Step() {
			if !m.replayEnded {
				m.replayEnded = true
				m.userMessage = &userMessage{msgType: msgWarning, text: "Replay finished, time is frozen"}
			}
			return m, m.tick()
		}
		m.fps.MarkFrame()
		if m.watch.IsRunning() {
			m.spinnerFrame = (m.spinnerFrame + 1) % 10
		}
		return m, m.tick()
	}

	return m, nil
}

func (m model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case " ", "enter":
		if m.watch.IsRunning() {
			m.watch.Stop()
			m.userMessage = &userMessage{msgType: msgInfo, text: "Stopped at " + m.format(m.watch.Read())}
		} else {
			m.watch.Start()
			m.userMessage = nil
		}

	case "l":
		if !m.watch.IsRunning() {
			m.userMessage = &userMessage{msgType: msgWarning, text: "Start the stopwatch before taking a lap"}
			return m, nil
		}
		lap := m.laps.Split(m.watch)
		m.userMessage = &userMessage{
			msgType: msgSuccess,
			text:    fmt.Sprintf("Lap %d: %s", lap.Seq, m.format(lap.Ticks)),
		}

	case "r":
		m.watch.Reset()
		m.laps.Reset()
		m.fps.Restart()
		m.userMessage = &userMessage{msgType: msgInfo, text: "Reset"}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	title := "⏱  ticktime stopwatch"
	if m.replay != nil {
		title += fmt.Sprintf(" (replay %d/%d)", m.replay.Position(), m.replay.Len())
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")

	status := "stopped"
	if m.watch.IsRunning() {
		status = m.spinner() + " running"
	}
	b.WriteString(elapsedStyle.Render(m.format(m.watch.Read())) + "  " + status + "\n\n")

	if now, err := datetime.Now(m.wall); err == nil {
		b.WriteString(labelStyle.Render("Wall clock: "+now.String()) + "\n")
	}
	b.WriteString(labelStyle.Render(fmt.Sprintf("Trips:      %d (avg %.1f ms)", m.watch.Trips(), m.watch.AverageMillis())) + "\n")
	if rate, ok := m.fps.FrameRate(); ok {
		b.WriteString(labelStyle.Render(fmt.Sprintf("Redraw:     %.1f fps", rate)) + "\n")
	} else {
		b.WriteString(labelStyle.Render("Redraw:     measuring...") + "\n")
	}

	if laps := m.laps.Laps(); len(laps) > 0 {
		b.WriteString("\n" + lapsStyle.Render(m.renderLaps(laps)) + "\n")
	}

	if m.userMessage != nil {
		b.WriteString(m.renderUserMessage() + "\n")
	}

	b.WriteString(helpStyle.Render("space start/stop • l lap • r reset • q quit"))
	return b.String()
}

func (m model) renderLaps(laps []stopwatch.Lap) string {
	best, _ := m.laps.Best()

	if len(laps) > visibleLaps {
		laps = laps[len(laps)-visibleLaps:]
	}

	lines := make([]string, 0, len(laps))
	for _, lap := range laps {
		line := fmt.Sprintf("Lap %3d  %s", lap.Seq, m.format(lap.Ticks))
		if lap.ID == best.ID {
			line = bestLapStyle.Render(line + "  best")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// format renders a tick count of the demo source as a span.
func (m model) format(t clock.Tick) string {
	return timespan.FromStd(clock.ToDuration(m.src, t)).String()
}

func (m model) spinner() string {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return frames[m.spinnerFrame]
}

func (m model) renderUserMessage() string {
	if m.userMessage == nil {
		return ""
	}

	var style lipgloss.Style
	var icon string

	switch m.userMessage.msgType {
	case msgInfo:
		style = infoMessageStyle
		icon = "ℹ️ "
	case msgWarning:
		style = warningMessageStyle
		icon = "⚠️  "
	case msgSuccess:
		style = successMessageStyle
		icon = "✅ "
	}

	return style.Render(icon + m.userMessage.text)
}
