package ui

import "github.com/charmbracelet/bubbles/key"

// browserKeys defines the [key.Binding] mapping for the track browser.
type browserKeys struct {
	genre  key.Binding
	enter  key.Binding
	back   key.Binding
	reload key.Binding
	quit   key.Binding
}

func newBrowserKeys() browserKeys {
	return browserKeys{
		genre:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "genre")),
		enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browserKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.genre, k.enter, k.reload, k.quit}
}

func (k browserKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.genre, k.enter, k.back},
		{k.reload, k.quit},
	}
}

// paintKeys defines the [key.Binding] mapping for the terminal paint program.
type paintKeys struct {
	brush  key.Binding
	eraser key.Binding
	picker key.Binding
	clear  key.Binding
	prev   key.Binding
	next   key.Binding
	save   key.Binding
	quit   key.Binding
}

func newPaintKeys() paintKeys {
	return paintKeys{
		brush:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "brush")),
		eraser: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "eraser")),
		picker: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "picker")),
		clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		prev:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev swatch")),
		next:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next swatch")),
		save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k paintKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.brush, k.eraser, k.picker, k.clear, k.save, k.quit}
}

func (k paintKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.brush, k.eraser, k.picker},
		{k.prev, k.next, k.clear},
		{k.save, k.quit},
	}
}
