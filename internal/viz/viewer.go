package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/resonancex/internal/physics"
)

const (
	fps           = 30
	trailCapacity = 600

	// A full run plays back in this many seconds at the default speed.
	defaultPlaybackSeconds = 20.0
)

// Source is anything that can report star-centred planet positions over a
// time span.
type Source interface {
	Span() float64
	Frame(t float64) ([]physics.Vec2, error)
	Labels() []string
}

type TickMsg time.Time

type loadedMsg struct {
	src Source
	err error
}

type point struct{ x, y int }

// Viewer is the Bubble Tea model that animates a Source.
type Viewer struct {
	title   string
	load    func() (Source, error)
	src     Source
	err     error
	t       float64
	speed   float64 // simulated days per real second
	running bool
	trails  bool
	frame   int
	reach   float64
	canvas  *Canvas
	trail   [][]point
	current []physics.Vec2
}

func NewViewer(title string, src Source) Viewer {
	v := Viewer{title: title, canvas: NewCanvas(60, 24), running: true, trails: true}
	v.setSource(src)
	return v
}

// NewLoader starts the viewer immediately and runs load in the background;
// the animation begins once it returns.
func NewLoader(title string, load func() (Source, error)) Viewer {
	return Viewer{title: title, load: load, canvas: NewCanvas(60, 24), running: true, trails: true}
}

// Run blocks until the user quits. A failed load is returned as the error.
func Run(v Viewer) error {
	final, err := tea.NewProgram(v, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fv, ok := final.(Viewer); ok && fv.err != nil {
		return fv.err
	}
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (v Viewer) Init() tea.Cmd {
	if v.src == nil && v.load != nil {
		load := v.load
		return tea.Batch(tick(), func() tea.Msg {
			src, err := load()
			return loadedMsg{src: src, err: err}
		})
	}
	return tick()
}

func (v *Viewer) setSource(src Source) {
	v.src = src
	v.t = 0
	v.speed = src.Span() / defaultPlaybackSeconds
	v.trail = make([][]point, len(src.Labels()))
	v.reach = reach(src)
	v.draw()
}

// reach samples the source to find the outermost radius for scaling.
func reach(src Source) float64 {
	const samples = 200
	r := 0.0
	for k := 0; k <= samples; k++ {
		pos, err := src.Frame(src.Span() * float64(k) / samples)
		if err != nil {
			continue
		}
		for _, p := range pos {
			r = math.Max(r, p.Norm())
		}
	}
	if r == 0 || math.IsInf(r, 0) || math.IsNaN(r) {
		return 1
	}
	return r * 1.1
}

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return v, tea.Quit
		case " ":
			v.running = !v.running
		case "+", "=":
			v.speed *= 1.5
		case "-", "_":
			v.speed /= 1.5
		case "t":
			v.trails = !v.trails
			v.clearTrails()
		case "r":
			v.t = 0
			v.clearTrails()
		}
	case tea.WindowSizeMsg:
		w, h := msg.Width-44, msg.Height-4
		if w > 10 && h > 5 {
			v.canvas = NewCanvas(w, h)
			v.clearTrails()
		}
	case loadedMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.setSource(msg.src)
	case TickMsg:
		v.frame++
		if v.src != nil && v.running {
			v.advance(v.speed / fps)
		}
		v.draw()
		return v, tick()
	}
	return v, nil
}

// advance moves playback forward by dt days, looping at the end.
func (v *Viewer) advance(dt float64) {
	v.t += dt
	if v.t > v.src.Span() {
		v.t = 0
		v.clearTrails()
	}
}

func (v *Viewer) clearTrails() {
	for i := range v.trail {
		v.trail[i] = v.trail[i][:0]
	}
}

func (v *Viewer) project(p physics.Vec2) point {
	cx, cy := v.canvas.PixelWidth()/2, v.canvas.PixelHeight()/2
	scale := float64(min(cx, cy)) / v.reach
	return point{
		x: cx + int(math.Round(p.X*scale)),
		y: cy - int(math.Round(p.Y*scale)),
	}
}

func (v *Viewer) draw() {
	v.canvas.Clear()
	if v.src == nil {
		return
	}

	star := v.project(physics.Vec2{})
	v.canvas.Disc(star.x, star.y, 1)

	pos, err := v.src.Frame(v.t)
	if err != nil {
		return
	}
	v.current = pos

	for i, p := range pos {
		px := v.project(p)
		if v.trails && i < len(v.trail) {
			v.trail[i] = append(v.trail[i], px)
			if len(v.trail[i]) > trailCapacity {
				v.trail[i] = v.trail[i][1:]
			}
			for k := 1; k < len(v.trail[i]); k++ {
				a, b := v.trail[i][k-1], v.trail[i][k]
				v.canvas.DrawLine(a.x, a.y, b.x, b.y)
			}
		}
		v.canvas.Disc(px.x, px.y, 1)
	}
}

func (v Viewer) View() string {
	var s strings.Builder
	s.WriteString(Title.Render(strings.ToUpper(v.title)) + "\n\n")

	switch {
	case v.err != nil:
		s.WriteString(StatusError.Render("simulation failed") + "\n")
		s.WriteString(Subtle.Render(v.err.Error()) + "\n\n")
		s.WriteString(KeyHint.Render("Q:Quit"))
		return statsStyle.Render(s.String())
	case v.src == nil:
		s.WriteString(StatusRunning.Render(AnimatedSpinner(v.frame)+" integrating...") + "\n\n")
		s.WriteString(KeyHint.Render("Q:Quit"))
		return statsStyle.Render(s.String())
	}

	if v.running {
		s.WriteString(StatusRunning.Render("PLAYING") + "\n\n")
	} else {
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	}

	span := v.src.Span()
	s.WriteString(MetricLabel.Render("Time") + MetricValue.Render(fmt.Sprintf("%.2f / %.1f d", v.t, span)) + "\n")
	s.WriteString(ProgressBar(v.t/span, 22) + "\n")
	s.WriteString(MetricLabel.Render("Speed") + MetricValue.Render(fmt.Sprintf("%.2f d/s", v.speed)) + "\n")
	trails := "off"
	if v.trails {
		trails = "on"
	}
	s.WriteString(MetricLabel.Render("Trails") + MetricValue.Render(trails) + "\n\n")

	s.WriteString("PLANETS\n")
	for i, label := range v.src.Labels() {
		r := "-"
		if i < len(v.current) {
			r = fmt.Sprintf("%.4f AU", v.current[i].Norm())
		}
		s.WriteString(PlanetStyle(i).Render(fmt.Sprintf("  ● %-10s", label)) + Subtle.Render(r) + "\n")
	}

	s.WriteString(KeyHint.Render("\nSP:Pause +/-:Speed\nT:Trails R:Restart Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(v.canvas.String()),
		statsStyle.Render(s.String()))
}
