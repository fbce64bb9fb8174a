// Package tui is the interactive list-creation screen. It renders a
// store.Store and turns key presses into store transitions.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/idilsaglam/lists/internal/model"
	"github.com/idilsaglam/lists/internal/store"
	"github.com/idilsaglam/lists/internal/ui"
)

// Params configures a Model.
type Params struct {
	Context context.Context
	Source  store.Source
	Logger  *zap.Logger
}

// Model implements tea.Model on top of a store.Store.
type Model struct {
	ctx    context.Context
	store  *store.Store
	src    store.Source
	logger *zap.Logger

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	// focus is a column index; store.Len() is the staging column.
	focus        int
	cursors      map[uuid.UUID]int
	stagedCursor int
	alert        string

	width, height int
}

type fetchedMsg struct{ items []model.Item }

type fetchFailedMsg struct{ err error }

// New returns a Model in the loading state. Init starts the fetch.
func New(p Params) Model {
	ctx := p.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(ui.Current().Accent))
	h := help.New()
	h.Styles.ShortKey = ui.Current().Muted
	h.Styles.ShortDesc = ui.Current().Muted
	return Model{
		ctx:     ctx,
		store:   store.New(),
		src:     p.Source,
		logger:  logger,
		keys:    defaultKeys(),
		help:    h,
		spinner: sp,
		cursors: map[uuid.UUID]int{},
	}
}

// Store exposes the underlying state, read-only by convention.
func (m Model) Store() *store.Store { return m.store }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

func (m Model) fetch() tea.Cmd {
	ctx, src := m.ctx, m.src
	return func() tea.Msg {
		items, err := src.Fetch(ctx)
		if err != nil {
			return fetchFailedMsg{err: err}
		}
		return fetchedMsg{items: items}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.store.Mode() != store.ModeLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fetchedMsg:
		m.store.Load(msg.items)
		m.focus, m.stagedCursor = 0, 0
		m.cursors = map[uuid.UUID]int{}
		m.logger.Info("lists loaded", zap.Int("items", len(msg.items)))
		if d := m.store.Dropped(); d > 0 {
			m.logger.Warn("items outside lists 1 and 2 skipped", zap.Int("count", d))
		}
		return m, nil

	case fetchFailedMsg:
		m.store.Fail(msg.err)
		m.logger.Error("loading lists failed", zap.Error(msg.err))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.alert = ""
	m.syncKeys()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Retry):
		m.logger.Info("retrying load")
		m.store.Reset()
		return m, tea.Batch(m.spinner.Tick, m.fetch())

	case key.Matches(msg, m.keys.Left):
		if m.focus > 0 {
			m.focus--
		}

	case key.Matches(msg, m.keys.Right):
		if m.focus < m.columns()-1 {
			m.focus++
		}

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Toggle):
		if !m.onStaging() {
			m.apply(m.store.ToggleSelection(m.focus))
		}

	case key.Matches(msg, m.keys.Create):
		if m.apply(m.store.BeginCreate()) {
			m.logger.Debug("creating list", zap.Int("number", m.store.NextListNumber()))
		}

	case key.Matches(msg, m.keys.Move):
		if it, ok := m.current(); ok {
			m.apply(m.store.MoveItem(it.ID, m.focus))
		}

	case key.Matches(msg, m.keys.Back):
		if it, ok := m.current(); ok {
			m.apply(m.store.MoveItemBack(it.ID))
		}

	case key.Matches(msg, m.keys.Cancel):
		n := len(m.store.Staged())
		if m.apply(m.store.Cancel()) {
			m.logger.Info("list creation canceled", zap.Int("restored", n))
		}

	case key.Matches(msg, m.keys.Update):
		number, n := m.store.NextListNumber(), len(m.store.Staged())
		if m.apply(m.store.Commit()) {
			m.logger.Info("list created", zap.Int("number", number), zap.Int("items", n))
		}
	}

	m.clamp()
	return m, nil
}

// apply turns a rejected transition into the alert line.
func (m *Model) apply(err error) bool {
	if err == nil {
		return true
	}
	m.alert = err.Error()
	if errors.Is(err, store.ErrSelectionCount) {
		m.alert = "You must select exactly 2 lists to create a new list."
	}
	m.logger.Debug("action rejected", zap.Error(err))
	return false
}

func (m *Model) syncKeys() {
	mode := m.store.Mode()
	m.keys.setMode(mode.Ready(), mode == store.ModeCreating, mode == store.ModeError, m.onStaging())
}

func (m Model) columns() int {
	n := m.store.Len()
	if m.store.Mode() == store.ModeCreating {
		n++
	}
	return n
}

func (m Model) onStaging() bool {
	return m.store.Mode() == store.ModeCreating && m.focus == m.store.Len()
}

// current is the item under the cursor in the focused column.
func (m Model) current() (model.Item, bool) {
	if m.onStaging() {
		staged := m.store.Staged()
		if m.stagedCursor < len(staged) {
			return staged[m.stagedCursor], true
		}
		return model.Item{}, false
	}
	lists := m.store.Lists()
	if m.focus < 0 || m.focus >= len(lists) {
		return model.Item{}, false
	}
	l := lists[m.focus]
	c := m.cursors[l.ID]
	if c < len(l.Items) {
		return l.Items[c], true
	}
	return model.Item{}, false
}

func (m *Model) moveCursor(delta int) {
	if m.onStaging() {
		m.stagedCursor += delta
		return
	}
	lists := m.store.Lists()
	if m.focus >= 0 && m.focus < len(lists) {
		m.cursors[lists[m.focus].ID] += delta
	}
}

func (m *Model) clamp() {
	if n := m.columns(); m.focus >= n {
		m.focus = n - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
	for _, l := range m.store.Lists() {
		m.cursors[l.ID] = clampIndex(m.cursors[l.ID], len(l.Items))
	}
	m.stagedCursor = clampIndex(m.stagedCursor, len(m.store.Staged()))
}

func clampIndex(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Run starts the program and returns the final state once the user quits.
func Run(p Params) (*store.Store, error) {
	if p.Context == nil {
		p.Context = context.Background()
	}
	prog := tea.NewProgram(New(p), tea.WithAltScreen(), tea.WithContext(p.Context))
	final, err := prog.Run()
	if err != nil {
		return nil, err
	}
	fm, ok := final.(Model)
	if !ok {
		return nil, nil
	}
	return fm.store, nil
}
