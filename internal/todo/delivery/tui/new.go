// Package tui renders the task list synchronizer in the terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"todo-sync/internal/todo"
	pkgLog "todo-sync/pkg/log"
)

type focus int

const (
	focusTitle focus = iota
	focusTime
	focusList
)

// Model is the bubbletea model over a todo.UseCase.
type Model struct {
	ctx         context.Context
	l           pkgLog.Logger
	uc          todo.UseCase
	changes     <-chan todo.Snapshot
	unsubscribe func()

	snap   todo.Snapshot
	focus  focus
	cursor int
}

// New subscribes to uc and returns a model ready to run.
func New(ctx context.Context, l pkgLog.Logger, uc todo.UseCase) *Model {
	ch := make(chan todo.Snapshot, 1)
	m := &Model{
		ctx:     ctx,
		l:       l,
		uc:      uc,
		changes: ch,
		snap:    uc.Snapshot(),
	}
	m.unsubscribe = uc.Subscribe(latestOnly(ch))
	return m
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, l pkgLog.Logger, uc todo.UseCase) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	m := New(ctx, l, uc)
	defer m.unsubscribe()

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

// latestOnly delivers snapshots into a one-slot channel, replacing any
// snapshot the UI has not consumed yet.
func latestOnly(ch chan todo.Snapshot) func(todo.Snapshot) {
	return func(s todo.Snapshot) {
		for {
			select {
			case ch <- s:
				return
			default:
				select {
				case <-ch:
				default:
				}
			}
		}
	}
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
