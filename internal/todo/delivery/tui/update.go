package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"todo-sync/internal/model"
	"todo-sync/internal/todo"
)

// snapshotMsg signals that the synchronizer published a change. The pushed
// snapshot can predate local draft edits, so the handler reads the live state.
type snapshotMsg struct{}

type opDoneMsg struct {
	op  string
	err error
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(waitForChange(m.changes), m.loadCmd())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case snapshotMsg:
		m.setSnapshot(m.uc.Snapshot())
		return m, waitForChange(m.changes)
	case opDoneMsg:
		if msg.err != nil {
			m.l.Errorf(m.ctx, "tui: %s failed: %v", msg.op, msg.err)
		}
		m.setSnapshot(m.uc.Snapshot())
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "tab":
		m.focus = (m.focus + 1) % 3
		return nil
	case "shift+tab":
		m.focus = (m.focus + 2) % 3
		return nil
	}

	if m.focus == focusList {
		return m.handleListKey(msg)
	}
	return m.handleFormKey(msg)
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		cur := m.uc.Snapshot()
		if cur.DraftTitle == "" {
			m.focus = focusTitle
			return nil
		}
		if cur.DraftTime == "" {
			m.focus = focusTime
			return nil
		}
		return m.submitCmd()
	case tea.KeyEsc:
		m.focus = focusList
		return nil
	case tea.KeyBackspace:
		m.setDraft(dropLastRune(m.draft()))
		return nil
	case tea.KeySpace:
		m.setDraft(m.draft() + " ")
		return nil
	case tea.KeyRunes:
		m.setDraft(m.draft() + string(msg.Runes))
		return nil
	}
	return nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.snap.Items)-1 {
			m.cursor++
		}
	case " ", "d":
		if id, ok := m.selected(); ok {
			return m.toggleCmd(id)
		}
	case "x", "delete", "backspace":
		if id, ok := m.selected(); ok {
			return m.removeCmd(id)
		}
	case "r":
		return m.loadCmd()
	case "n":
		m.focus = focusTitle
	}
	return nil
}

func (m *Model) draft() string {
	cur := m.uc.Snapshot()
	if m.focus == focusTime {
		return cur.DraftTime
	}
	return cur.DraftTitle
}

func (m *Model) setDraft(v string) {
	if m.focus == focusTime {
		m.uc.SetDraftTime(v)
	} else {
		m.uc.SetDraftTitle(v)
	}
	m.setSnapshot(m.uc.Snapshot())
}

func (m *Model) selected() (model.TaskID, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Items) {
		return model.TaskID{}, false
	}
	return m.snap.Items[m.cursor].Task.ID, true
}

func (m *Model) setSnapshot(s todo.Snapshot) {
	m.snap = s
	if m.cursor >= len(s.Items) {
		m.cursor = len(s.Items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: "load", err: m.uc.LoadAll(m.ctx)}
	}
}

func (m *Model) submitCmd() tea.Cmd {
	return func() tea.Msg {
		_, err := m.uc.Submit(m.ctx)
		if errors.Is(err, todo.ErrEmptyTitle) || errors.Is(err, todo.ErrEmptyTime) {
			return opDoneMsg{op: "submit"}
		}
		return opDoneMsg{op: "create", err: err}
	}
}

func (m *Model) toggleCmd(id model.TaskID) tea.Cmd {
	return func() tea.Msg {
		_, err := m.uc.ToggleDone(m.ctx, id)
		return opDoneMsg{op: "toggle", err: err}
	}
}

func (m *Model) removeCmd(id model.TaskID) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: "delete", err: m.uc.Remove(m.ctx, id)}
	}
}

func waitForChange(ch <-chan todo.Snapshot) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return snapshotMsg{}
	}
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
