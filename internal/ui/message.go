package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/wvclb/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgTracksFetched MsgKind = iota
	MsgCanvasSaved
)

type tracksFetched struct {
	tracks []models.Track
	err    error
}

type canvasSaved struct {
	path string
	err  error
}

// tracksFetchedMsg is the constructor for [MsgTracksFetched]
func tracksFetchedMsg(tracks []models.Track, err error) Msg {
	return Msg{kind: MsgTracksFetched, data: tracksFetched{tracks, err}}
}

// canvasSavedMsg is the constructor for [MsgCanvasSaved]
func canvasSavedMsg(path string, err error) Msg {
	return Msg{kind: MsgCanvasSaved, data: canvasSaved{path, err}}
}
