package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// toastDuration is how long a transient status message stays visible.
const toastDuration = 2 * time.Second

// toastExpiredMsg clears the toast once its timer fires. The id guards
// against an older timer clearing a newer toast.
type toastExpiredMsg struct {
	id int
}

// toast is a transient status line. Side-effect failures never raise a
// toast — the absence of success feedback is the whole error surface.
type toast struct {
	text string
	id   int
}

// show replaces the current toast and returns the expiry command.
func (t *toast) show(text string) tea.Cmd {
	t.text = text
	t.id++
	id := t.id
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// expire clears the toast if the message belongs to the latest show.
func (t *toast) expire(msg toastExpiredMsg) {
	if msg.id == t.id {
		t.text = ""
	}
}

// View renders the toast line, or "" when nothing is showing.
func (t toast) View() string {
	if t.text == "" {
		return ""
	}
	return ToastStyle.Render(t.text)
}
