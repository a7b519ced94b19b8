package viz

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/resonancex/internal/physics"
)

// circle is a single planet on a unit circle with a 10 day period.
type circle struct{}

func (circle) Span() float64 { return 20 }

func (circle) Frame(t float64) ([]physics.Vec2, error) {
	if t < 0 || t > 20 {
		return nil, errors.New("out of range")
	}
	a := 2 * math.Pi * t / 10
	return []physics.Vec2{{X: math.Cos(a), Y: math.Sin(a)}}, nil
}

func (circle) Labels() []string { return []string{"b"} }

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(v Viewer, msg tea.Msg) Viewer {
	m, _ := v.Update(msg)
	return m.(Viewer)
}

func TestViewerAdvances(t *testing.T) {
	v := NewViewer("test", circle{})
	if v.speed != 1 {
		t.Fatalf("expected default speed span/20 = 1, got %g", v.speed)
	}

	v = update(v, TickMsg(time.Now()))
	if math.Abs(v.t-1.0/fps) > 1e-12 {
		t.Errorf("expected t=%g after one tick, got %g", 1.0/fps, v.t)
	}

	v = update(v, key(" "))
	if v.running {
		t.Fatal("space should pause")
	}
	before := v.t
	v = update(v, TickMsg(time.Now()))
	if v.t != before {
		t.Error("paused viewer should not advance")
	}
}

func TestViewerSpeedAndTrails(t *testing.T) {
	v := NewViewer("test", circle{})
	v = update(v, key("+"))
	if math.Abs(v.speed-1.5) > 1e-12 {
		t.Errorf("expected speed 1.5, got %g", v.speed)
	}
	v = update(v, key("-"))
	v = update(v, key("-"))
	if math.Abs(v.speed-1/1.5) > 1e-12 {
		t.Errorf("expected speed %g, got %g", 1/1.5, v.speed)
	}

	for i := 0; i < 5; i++ {
		v = update(v, TickMsg(time.Now()))
	}
	if len(v.trail[0]) == 0 {
		t.Fatal("expected trail points")
	}
	v = update(v, key("t"))
	if v.trails || len(v.trail[0]) != 0 {
		t.Error("t should disable and clear trails")
	}
}

func TestViewerLoops(t *testing.T) {
	v := NewViewer("test", circle{})
	v.t = 19.99
	v = update(v, TickMsg(time.Now()))
	if v.t != 0 {
		t.Errorf("expected playback to wrap to 0, got %g", v.t)
	}
}

func TestViewerLoader(t *testing.T) {
	v := NewLoader("test", func() (Source, error) { return circle{}, nil })
	if !strings.Contains(v.View(), "integrating") {
		t.Error("expected a loading view before the source arrives")
	}

	v = update(v, loadedMsg{src: circle{}})
	if v.src == nil {
		t.Fatal("expected source after load")
	}
	if !strings.Contains(v.View(), "PLAYING") {
		t.Error("expected playback view")
	}

	failed := update(NewLoader("test", nil), loadedMsg{err: errors.New("boom")})
	if !strings.Contains(failed.View(), "boom") {
		t.Error("expected load error in view")
	}
}

func TestViewerQuit(t *testing.T) {
	v := NewViewer("test", circle{})
	_, cmd := v.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestViewerProject(t *testing.T) {
	v := NewViewer("test", circle{})
	c := v.project(physics.Vec2{})
	if c.x != v.canvas.PixelWidth()/2 || c.y != v.canvas.PixelHeight()/2 {
		t.Errorf("origin should map to the canvas centre, got %+v", c)
	}
	edge := v.project(physics.Vec2{X: v.reach})
	if edge.x <= c.x {
		t.Error("+x should map to the right")
	}
	up := v.project(physics.Vec2{Y: 1})
	if up.y >= c.y {
		t.Error("+y should map upward")
	}
}
