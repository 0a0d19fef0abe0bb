package ui

import tea "github.com/charmbracelet/bubbletea"

// focusRing tracks which control of a screen receives enter and typing.
// Tab and shift+tab cycle through it.
type focusRing struct {
	items []string
	index int
}

func newFocusRing(items ...string) focusRing {
	return focusRing{items: items}
}

// Current returns the focused control, or "" for an empty ring
func (f *focusRing) Current() string {
	if len(f.items) == 0 {
		return ""
	}
	return f.items[f.index]
}

// Is reports whether id has focus
func (f *focusRing) Is(id string) bool {
	return f.Current() == id
}

func (f *focusRing) Next() {
	if len(f.items) > 0 {
		f.index = (f.index + 1) % len(f.items)
	}
}

func (f *focusRing) Prev() {
	if len(f.items) > 0 {
		f.index = (f.index - 1 + len(f.items)) % len(f.items)
	}
}

// Focus moves to id when it is part of the ring
func (f *focusRing) Focus(id string) bool {
	for i, item := range f.items {
		if item == id {
			f.index = i
			return true
		}
	}
	return false
}

// Reset replaces the controls, keeping focus on the same id when possible
func (f *focusRing) Reset(items ...string) {
	current := f.Current()
	f.items = items
	f.index = 0
	f.Focus(current)
}

// handleMove applies tab navigation. It reports whether msg was consumed.
func (f *focusRing) handleMove(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "tab":
		f.Next()
		return true
	case "shift+tab":
		f.Prev()
		return true
	}
	return false
}
