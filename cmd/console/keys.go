package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/expedition/pkg/selection"
)

// keyCode converts a bubbletea key into the code used by the selection keymap.
func keyCode(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyEnter:
		return "enter"
	case tea.KeySpace:
		return "space"
	case tea.KeyRunes:
		if msg.Alt {
			return "alt+" + string(msg.Runes)
		}
		return string(msg.Runes)
	}
	return msg.String()
}

func keyEvent(msg tea.KeyMsg, fromInput bool) selection.KeyEvent {
	return selection.KeyEvent{Code: keyCode(msg), FromTextInput: fromInput}
}
