package ui

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/wvclb/internal/paint"
)

// Rows of the frame, relative to its top-left cell.
const (
	titleRow   = 0
	toolbarRow = 1
	canvasRow  = 2

	swatchCells    = 2
	maxPickerCells = 50
)

type region int

const (
	regionNone region = iota
	regionTitle
	regionToolbar
	regionCanvas
	regionSwatch
	regionPicker
)

type toolbarButton struct {
	label  string
	action func(*PaintModel)
}

var toolbarButtons = []toolbarButton{
	{"[Brush]", func(m *PaintModel) { m.ctrl.SelectTool(paint.Brush) }},
	{"[Eraser]", func(m *PaintModel) { m.ctrl.SelectTool(paint.Eraser) }},
	{"[Picker]", func(m *PaintModel) { m.ctrl.TogglePicker() }},
	{"[Clear]", func(m *PaintModel) { m.ctrl.Clear() }},
}

// PaintOptions configures a [PaintModel].
type PaintOptions struct {
	Cols, Rows int    // canvas size in terminal cells; each cell holds two pixels stacked
	Output     string // file written by the save key; .pdf exports a PDF, anything else PNG
	Picker     [2]int // gradient bitmap size in pixels
}

// PaintModel is a mouse-driven terminal front end for [paint.Controller].
//
// The canvas renders with half-block characters, so the surface is Cols x 2*Rows pixels and
// maps one-to-one onto terminal cells horizontally.
type PaintModel struct {
	ctrl        *paint.Controller
	cols, rows  int
	pickerCells int
	output      string
	swatch      int
	status      string
	help        help.Model
	keys        paintKeys
}

// NewPaintModel creates a paint program with a fresh controller.
func NewPaintModel(opts PaintOptions) *PaintModel {
	if opts.Cols <= 0 {
		opts.Cols = 64
	}
	if opts.Rows <= 0 {
		opts.Rows = 16
	}
	if opts.Output == "" {
		opts.Output = "canvas.png"
	}
	m := &PaintModel{
		ctrl: paint.NewController(paint.Options{
			Width:        opts.Cols,
			Height:       opts.Rows * 2,
			PickerWidth:  opts.Picker[0],
			PickerHeight: opts.Picker[1],
		}),
		cols:        opts.Cols,
		rows:        opts.Rows,
		pickerCells: min(opts.Cols, maxPickerCells),
		output:      opts.Output,
		help:        help.New(),
		keys:        newPaintKeys(),
	}
	m.syncLayout()
	return m
}

// Controller exposes the underlying paint state.
func (m *PaintModel) Controller() *paint.Controller { return m.ctrl }

func (m *PaintModel) Init() tea.Cmd { return nil }

// Update handles incoming messages and updates the model state.
func (m *PaintModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case Msg:
		if msg.kind == MsgCanvasSaved {
			saved := msg.data.(canvasSaved)
			if saved.err != nil {
				m.status = styles.err.Render(fmt.Sprintf("save failed: %v", saved.err))
			} else {
				m.status = styles.ok.Render("saved " + saved.path)
			}
		}
	}
	return m, nil
}

func (m *PaintModel) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.brush):
		m.ctrl.SelectTool(paint.Brush)
	case key.Matches(msg, m.keys.eraser):
		m.ctrl.SelectTool(paint.Eraser)
	case key.Matches(msg, m.keys.picker):
		m.ctrl.TogglePicker()
	case key.Matches(msg, m.keys.clear):
		m.ctrl.Clear()
	case key.Matches(msg, m.keys.prev):
		m.selectSwatch(m.swatch - 1 + len(paint.Swatches))
	case key.Matches(msg, m.keys.next):
		m.selectSwatch(m.swatch + 1)
	case key.Matches(msg, m.keys.save):
		return m, m.save()
	}
	return m, nil
}

func (m *PaintModel) selectSwatch(i int) {
	i %= len(paint.Swatches)
	if m.ctrl.SelectSwatch(i) {
		m.swatch = i
	}
}

// save encodes the surface now and writes it off the update loop.
func (m *PaintModel) save() tea.Cmd {
	var buf bytes.Buffer
	var err error
	if strings.EqualFold(filepath.Ext(m.output), ".pdf") {
		err = paint.WritePDF(&buf, m.ctrl.Surface(), paint.Title)
	} else {
		err = paint.EncodePNG(&buf, m.ctrl.Surface())
	}
	path := m.output
	return func() tea.Msg {
		if err != nil {
			return canvasSavedMsg(path, err)
		}
		return canvasSavedMsg(path, os.WriteFile(path, buf.Bytes(), 0644))
	}
}

func (m *PaintModel) origin() (int, int) {
	p := m.ctrl.Frame().Position()
	return int(p.X), int(p.Y)
}

func (m *PaintModel) swatchRow() int { return canvasRow + m.rows }
func (m *PaintModel) pickerRow() int { return m.swatchRow() + 1 }

// syncLayout tells the controller where the canvas and picker sit on screen.
func (m *PaintModel) syncLayout() {
	fx, fy := m.origin()
	m.ctrl.Surface().SetLayout(paint.Layout{
		Left:   float64(fx),
		Top:    float64(fy + canvasRow),
		Width:  float64(m.cols),
		Height: float64(m.rows),
	})
	m.ctrl.Picker().SetLayout(paint.Layout{
		Left:   float64(fx),
		Top:    float64(fy + m.pickerRow()),
		Width:  float64(m.pickerCells),
		Height: 1,
	})
}

func (m *PaintModel) regionAt(x, y int) (region, int) {
	fx, fy := m.origin()
	col, row := x-fx, y-fy
	switch {
	case col < 0:
		return regionNone, 0
	case row == titleRow && col < m.cols:
		return regionTitle, 0
	case row == toolbarRow:
		offset := 0
		for i, b := range toolbarButtons {
			if col >= offset && col < offset+len(b.label) {
				return regionToolbar, i
			}
			offset += len(b.label) + 1
		}
	case row >= canvasRow && row < canvasRow+m.rows && col < m.cols:
		return regionCanvas, 0
	case row == m.swatchRow() && col < len(paint.Swatches)*swatchCells:
		return regionSwatch, col / swatchCells
	case row == m.pickerRow() && m.ctrl.Picker().Visible() && col < m.pickerCells:
		return regionPicker, 0
	}
	return regionNone, 0
}

func (m *PaintModel) handleMouse(msg tea.MouseMsg) {
	m.syncLayout()
	client := paint.Pt(float64(msg.X)+0.5, float64(msg.Y)+0.5)
	ev := func(phase paint.Phase) paint.PointerEvent {
		return paint.PointerEvent{Phase: phase, Source: paint.SourceMouse, Client: client}
	}
	where, index := m.regionAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionRelease:
		m.ctrl.HandleCanvas(ev(paint.PhaseUp))
		m.ctrl.HandlePicker(ev(paint.PhaseUp))
		m.ctrl.HandleTitleBar(ev(paint.PhaseUp))

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		switch where {
		case regionTitle:
			m.ctrl.HandleTitleBar(ev(paint.PhaseDown))
		case regionToolbar:
			toolbarButtons[index].action(m)
		case regionCanvas:
			m.ctrl.HandleCanvas(ev(paint.PhaseDown))
		case regionSwatch:
			m.selectSwatch(index)
		case regionPicker:
			m.ctrl.HandlePicker(ev(paint.PhaseDown))
		}

	case tea.MouseActionMotion:
		if m.ctrl.Frame().Dragging() {
			m.ctrl.HandleTitleBar(ev(paint.PhaseMove))
			m.syncLayout()
			return
		}
		if m.ctrl.Drawing() {
			if where == regionCanvas {
				m.ctrl.HandleCanvas(ev(paint.PhaseMove))
			} else {
				m.ctrl.HandleCanvas(ev(paint.PhaseLeave))
			}
		}
		if m.ctrl.Picker().Picking() {
			if where == regionPicker {
				m.ctrl.HandlePicker(ev(paint.PhaseMove))
			} else {
				m.ctrl.HandlePicker(ev(paint.PhaseLeave))
			}
		}
		if where == regionSwatch {
			m.ctrl.HoverSwatch(index)
		} else {
			m.ctrl.UnhoverSwatch()
		}
	}
}

// View renders the frame at its current position.
func (m *PaintModel) View() string {
	fx, fy := m.origin()
	pad := strings.Repeat(" ", max(fx, 0))

	lines := []string{
		styles.titleBar.Width(m.cols).Render(" " + paint.Title),
		m.renderToolbar(),
	}
	lines = append(lines, m.renderCanvas()...)
	lines = append(lines, m.renderSwatches())
	if m.ctrl.Picker().Visible() {
		lines = append(lines, m.renderPicker())
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", max(fy, 0)))
	for _, l := range lines {
		b.WriteString(pad + l + "\n")
	}
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *PaintModel) renderToolbar() string {
	parts := make([]string, len(toolbarButtons))
	for i, btn := range toolbarButtons {
		active := (i == 0 && m.ctrl.Tool() == paint.Brush) ||
			(i == 1 && m.ctrl.Tool() == paint.Eraser) ||
			(i == 2 && m.ctrl.Picker().Visible())
		if active {
			parts[i] = styles.active.Render(btn.label)
		} else {
			parts[i] = btn.label
		}
	}

	color := m.ctrl.Color()
	bar := strings.Join(parts, " ") + "  " + styles.On("  ", lipgloss.Color(color)) + " " + color
	if tip := m.ctrl.Tooltip(); tip != "" {
		bar += "  " + styles.help.Render(tip)
	}
	return bar
}

func (m *PaintModel) renderCanvas() []string {
	s := m.ctrl.Surface()
	lines := make([]string, m.rows)
	var b strings.Builder
	for r := 0; r < m.rows; r++ {
		b.Reset()
		for x := 0; x < m.cols; x++ {
			upper, _ := s.At(x, 2*r)
			lower, _ := s.At(x, 2*r+1)
			b.WriteString(styles.Cell(upper, lower))
		}
		lines[r] = b.String()
	}
	return lines
}

func (m *PaintModel) renderSwatches() string {
	var b strings.Builder
	for _, hex := range paint.Swatches {
		b.WriteString(styles.On(strings.Repeat(" ", swatchCells), lipgloss.Color(hex)))
	}
	return b.String()
}

func (m *PaintModel) renderPicker() string {
	p := m.ctrl.Picker()
	bmp := p.Bitmap()
	if bmp == nil {
		return ""
	}
	w, h := bmp.Bounds().Dx(), bmp.Bounds().Dy()
	var b strings.Builder
	for c := 0; c < m.pickerCells; c++ {
		x := (2*c + 1) * w / (2 * m.pickerCells)
		hex, _ := p.Sample(paint.Pt(float64(x), float64(h/2)))
		b.WriteString(styles.On(" ", lipgloss.Color(hex)))
	}
	return b.String()
}
