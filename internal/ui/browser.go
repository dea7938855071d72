package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/wvclb/internal/models"
	"github.com/desertthunder/wvclb/internal/services"
)

// BrowserView represents the current view of the track browser.
type BrowserView int

const (
	TrackListView BrowserView = iota
	TrackDetailView
)

// BrowserModel lists the catalogue with fuzzy filtering and a genre selector.
type BrowserModel struct {
	ctx     context.Context
	catalog services.Catalog
	view    BrowserView
	width   int
	height  int
	genres  []string
	genre   int
	list    list.Model
	detail  *trackItem
	loading bool
	err     error
	help    help.Model
	keys    browserKeys
}

// NewBrowserModel creates a browser over catalog.
func NewBrowserModel(ctx context.Context, catalog services.Catalog) *BrowserModel {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.SetShowHelp(false)
	m := &BrowserModel{
		ctx:     ctx,
		catalog: catalog,
		view:    TrackListView,
		genres:  []string{models.GenreAll},
		list:    l,
		loading: true,
		help:    help.New(),
		keys:    newBrowserKeys(),
	}
	m.setTitle()
	return m
}

// Init fetches the full listing.
func (m *BrowserModel) Init() tea.Cmd {
	return m.fetch()
}

// Genre returns the genre currently selected.
func (m *BrowserModel) Genre() string { return m.genres[m.genre] }

// View returns the current view.
func (m *BrowserModel) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress r to retry, q to quit", m.err))
	}

	switch m.view {
	case TrackDetailView:
		return m.renderDetail()
	default:
		return fmt.Sprintf("%s\n\n%s", m.list.View(), m.help.View(m.keys))
	}
}

// Update handles incoming messages and updates the model state.
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-4)
		return m, nil

	case Msg:
		if msg.kind == MsgTracksFetched {
			return m.handleFetched(msg.data.(tracksFetched))
		}
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch m.view {
		case TrackDetailView:
			return m.handleDetailKeys(msg)
		default:
			if model, cmd, handled := m.handleListKeys(msg); handled {
				return model, cmd
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *BrowserModel) handleFetched(data tracksFetched) (tea.Model, tea.Cmd) {
	m.loading = false
	m.err = data.err
	if data.err != nil {
		return m, nil
	}

	if m.Genre() == models.GenreAll {
		m.genres = append([]string{models.GenreAll}, models.Genres(data.tracks)...)
		m.genre = 0
	}
	cmd := m.list.SetItems(trackItems(data.tracks))
	m.setTitle()
	return m, cmd
}

func (m *BrowserModel) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit, true
	case key.Matches(msg, m.keys.genre):
		m.genre = (m.genre + 1) % len(m.genres)
		m.setTitle()
		return m, m.fetch(), true
	case key.Matches(msg, m.keys.reload):
		m.err = nil
		return m, m.fetch(), true
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.list.SelectedItem().(trackItem); ok {
			m.detail = &item
			m.view = TrackDetailView
		}
		return m, nil, true
	}
	return m, nil, false
}

func (m *BrowserModel) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back), key.Matches(msg, m.keys.enter):
		m.view = TrackListView
		m.detail = nil
	}
	return m, nil
}

func (m *BrowserModel) setTitle() {
	m.list.Title = fmt.Sprintf("Tracks · %s", m.Genre())
}

func (m *BrowserModel) fetch() tea.Cmd {
	m.loading = true
	filter := models.Filter{Genre: m.Genre()}
	return func() tea.Msg {
		tracks, err := m.catalog.List(m.ctx, filter)
		return tracksFetchedMsg(tracks, err)
	}
}

func (m *BrowserModel) renderDetail() string {
	if m.detail == nil {
		return ""
	}
	title := styles.title.Render(m.detail.track.SongName)
	back := m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n%s", title, m.detail.details(), back)
}
