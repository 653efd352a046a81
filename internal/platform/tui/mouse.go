package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/microarcade/internal/input"
)

// mouseEvent converts a terminal mouse message into a pointer event in client
// coordinates. Cells are addressed by their center so that the pointer lands
// where the ScreenPainter samples. Wheel and non-left buttons are dropped.
func mouseEvent(msg tea.MouseMsg) (input.Event, bool) {
	ev := input.Event{
		ClientX: float64(msg.X) + 0.5,
		ClientY: float64(msg.Y) + 0.5,
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonNone && msg.Button != tea.MouseButtonLeft {
			return input.Event{}, false
		}
		ev.Kind = input.EventMove
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return input.Event{}, false
		}
		ev.Kind = input.EventPress
	case tea.MouseActionRelease:
		ev.Kind = input.EventRelease
	default:
		return input.Event{}, false
	}
	return ev, true
}
