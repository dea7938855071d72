package ui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/wvclb/internal/models"
	"github.com/desertthunder/wvclb/internal/paint"
	"github.com/desertthunder/wvclb/internal/services"
	th "github.com/desertthunder/wvclb/internal/testing"
)

type fakeCatalog struct {
	store   *th.MockStore
	filters []models.Filter
	err     error
}

func (f *fakeCatalog) List(ctx context.Context, filter models.Filter) ([]models.Track, error) {
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}
	tracks, err := f.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(tracks), nil
}

func (f *fakeCatalog) Upload(ctx context.Context, req services.UploadRequest) (*models.Track, error) {
	return nil, errors.New("not supported")
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	m, _ = m.Update(cmd())
	return m
}

func TestBrowserModel(t *testing.T) {
	t.Run("loads tracks and genres", func(t *testing.T) {
		cat := &fakeCatalog{store: th.NewMockStore()}
		m := NewBrowserModel(context.Background(), cat)
		m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
		run(t, m, m.Init())

		if got := len(m.list.Items()); got != 6 {
			t.Errorf("items = %d, want 6", got)
		}
		if len(m.genres) != 7 || m.genres[0] != models.GenreAll {
			t.Errorf("genres = %v", m.genres)
		}
	})

	t.Run("g cycles genre and refetches", func(t *testing.T) {
		cat := &fakeCatalog{store: th.NewMockStore()}
		m := NewBrowserModel(context.Background(), cat)
		run(t, m, m.Init())

		_, cmd := m.Update(keyMsg("g"))
		run(t, m, cmd)

		if m.Genre() != "Ambient" {
			t.Errorf("genre = %s", m.Genre())
		}
		if last := cat.filters[len(cat.filters)-1]; last.Genre != "Ambient" {
			t.Errorf("last filter = %+v", last)
		}
		if got := len(m.list.Items()); got != 1 {
			t.Errorf("items = %d, want 1", got)
		}
		if !strings.Contains(m.list.Title, "Ambient") {
			t.Errorf("title = %s", m.list.Title)
		}
	})

	t.Run("enter shows details and esc returns", func(t *testing.T) {
		m := NewBrowserModel(context.Background(), &fakeCatalog{store: th.NewMockStore()})
		m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
		run(t, m, m.Init())

		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if m.view != TrackDetailView || m.detail == nil {
			t.Fatal("expected detail view")
		}
		if !strings.Contains(m.View(), "Midnight Dreams") {
			t.Errorf("detail view missing song: %s", m.View())
		}
		m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if m.view != TrackListView {
			t.Error("esc did not return to the list")
		}
	})

	t.Run("fetch error is shown", func(t *testing.T) {
		m := NewBrowserModel(context.Background(), &fakeCatalog{store: th.NewMockStore(), err: errors.New("offline")})
		run(t, m, m.Init())
		if !strings.Contains(m.View(), "offline") {
			t.Errorf("view = %s", m.View())
		}
	})
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func newPaint(t *testing.T) *PaintModel {
	t.Helper()
	return NewPaintModel(PaintOptions{Cols: 60, Rows: 10, Output: filepath.Join(t.TempDir(), "out.png")})
}

func TestPaintModel(t *testing.T) {
	t.Run("drag on the canvas draws", func(t *testing.T) {
		m := newPaint(t)
		m.Update(mouse(tea.MouseActionPress, 5, 3))
		m.Update(mouse(tea.MouseActionMotion, 15, 3))
		m.Update(mouse(tea.MouseActionRelease, 15, 3))

		c := m.Controller()
		if c.Drawing() || len(c.Segments()) != 1 {
			t.Fatalf("drawing=%v segments=%d", c.Drawing(), len(c.Segments()))
		}
		if got, _ := c.Surface().At(10, 3); got != "#000000" {
			t.Errorf("pixel = %s", got)
		}
	})

	t.Run("leaving the canvas ends the stroke", func(t *testing.T) {
		m := newPaint(t)
		m.Update(mouse(tea.MouseActionPress, 5, 3))
		m.Update(mouse(tea.MouseActionMotion, 5, 30))
		if m.Controller().Drawing() {
			t.Error("stroke survived leaving the canvas")
		}
	})

	t.Run("title bar drag moves the frame", func(t *testing.T) {
		m := newPaint(t)
		m.Update(mouse(tea.MouseActionPress, 3, 0))
		m.Update(mouse(tea.MouseActionMotion, 13, 5))
		m.Update(mouse(tea.MouseActionRelease, 13, 5))

		if got := m.Controller().Frame().Position(); got != paint.Pt(10, 5) {
			t.Fatalf("frame = %v", got)
		}

		m.Update(mouse(tea.MouseActionPress, 15, 8))
		m.Update(mouse(tea.MouseActionMotion, 25, 8))
		m.Update(mouse(tea.MouseActionRelease, 25, 8))
		segs := m.Controller().Segments()
		if len(segs) != 1 || segs[0].From.X != 5.5 {
			t.Errorf("canvas did not follow the frame: %+v", segs)
		}
	})

	t.Run("swatch click and hover", func(t *testing.T) {
		m := newPaint(t)
		row := canvasRow + 10
		m.Update(mouse(tea.MouseActionPress, 2*16, row))
		if m.Controller().Color() != "#FF0000" {
			t.Errorf("color = %s", m.Controller().Color())
		}
		m.Update(tea.MouseMsg{X: 2*18 + 1, Y: row, Action: tea.MouseActionMotion})
		if m.Controller().Tooltip() != "#00FF00" {
			t.Errorf("tooltip = %q", m.Controller().Tooltip())
		}
		m.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionMotion})
		if m.Controller().Tooltip() != "" {
			t.Errorf("tooltip after leaving = %q", m.Controller().Tooltip())
		}
	})

	t.Run("picker row samples the gradient", func(t *testing.T) {
		m := newPaint(t)
		m.Update(keyMsg("p"))
		row := canvasRow + 10 + 1
		m.Update(mouse(tea.MouseActionPress, 25, row))

		want := paint.FormatHex(paint.RampAt(0.51))
		if m.Controller().Color() != want || !m.Controller().Picker().Picking() {
			t.Errorf("color = %s want %s", m.Controller().Color(), want)
		}
		m.Update(mouse(tea.MouseActionRelease, 25, row))
		if m.Controller().Picker().Picking() {
			t.Error("picking survived release")
		}
	})

	t.Run("toolbar and keys", func(t *testing.T) {
		m := newPaint(t)
		m.Update(mouse(tea.MouseActionPress, len("[Brush] ")+1, toolbarRow))
		if m.Controller().Tool() != paint.Eraser {
			t.Error("eraser button not applied")
		}
		m.Update(keyMsg("b"))
		if m.Controller().Tool() != paint.Brush {
			t.Error("b did not select brush")
		}
		m.Update(keyMsg("]"))
		if m.Controller().Color() != "#808080" {
			t.Errorf("] color = %s", m.Controller().Color())
		}
		m.Update(keyMsg("["))
		m.Update(keyMsg("["))
		if m.Controller().Color() != "#FF8040" {
			t.Errorf("[ wrapped to %s", m.Controller().Color())
		}
	})

	t.Run("save writes a png", func(t *testing.T) {
		m := newPaint(t)
		_, cmd := m.Update(keyMsg("s"))
		run(t, m, cmd)
		th.AssertFileExists(t, m.output)
		if !strings.Contains(m.status, "saved") {
			t.Errorf("status = %q", m.status)
		}
	})

	t.Run("view", func(t *testing.T) {
		m := newPaint(t)
		if v := m.View(); !strings.Contains(v, paint.Title) || !strings.Contains(v, "[Picker]") {
			t.Errorf("view missing chrome")
		}
	})
}
