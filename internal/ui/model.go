package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todo-list/internal/domain"
	"todo-list/internal/services"
	"todo-list/internal/validation"
	"todo-list/internal/view"
)

// ShakeDuration is how long the form stays offset after an empty submit
const ShakeDuration = 300 * time.Millisecond

type focus int

const (
	focusText focus = iota
	focusStart
	focusEnd
	focusList
	focusCount
)

// shakeDoneMsg ends the shake started with the same sequence number
type shakeDoneMsg struct{ seq int }

// Options controls presentation
type Options struct {
	Color   bool
	ShowIDs bool
	// TextMaxLength caps the text input in runes. Zero uses
	// validation.DefaultTextMaxLength.
	TextMaxLength int
}

// Model is the interactive to-do screen
type Model struct {
	ctx      context.Context
	service  services.TodoService
	catalog  view.Catalog
	styles   view.Styles
	showIDs  bool
	rendered *view.ListView

	inputs [3]textinput.Model
	focus  focus
	cursor int

	shaking  bool
	shakeSeq int
	feedback string
	status   string
	quitting bool
}

// New builds the model and subscribes it to list changes
func New(ctx context.Context, service services.TodoService, catalog view.Catalog, opts Options) Model {
	rendered := &view.ListView{}
	*rendered = view.Render(service.Tasks(), catalog)
	service.OnChange(func(list domain.TaskList) {
		*rendered = view.Render(list, catalog)
	})

	m := Model{
		ctx:      ctx,
		service:  service,
		catalog:  catalog,
		styles:   view.NewStyles(opts.Color),
		showIDs:  opts.ShowIDs,
		rendered: rendered,
	}

	text := textinput.New()
	text.Placeholder = catalog.TextPrompt
	text.CharLimit = opts.TextMaxLength
	if text.CharLimit <= 0 {
		text.CharLimit = validation.DefaultTextMaxLength
	}
	text.Width = 40
	text.Focus()

	start := textinput.New()
	start.Placeholder = catalog.StartPrompt
	start.CharLimit = 5
	start.Width = 12

	end := textinput.New()
	end.Placeholder = catalog.EndPrompt
	end.CharLimit = 5
	end.Width = 12

	m.inputs = [3]textinput.Model{text, start, end}
	return m
}

// Run starts the full-screen program and blocks until the user quits
func Run(ctx context.Context, service services.TodoService, catalog view.Catalog, opts Options) error {
	program := tea.NewProgram(New(ctx, service, catalog, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case shakeDoneMsg:
		if msg.seq == m.shakeSeq {
			m.shaking = false
		}
		return m, nil
	case tea.WindowSizeMsg:
		if w := msg.Width - 10; w > 10 {
			m.inputs[focusText].Width = w
		}
		return m, nil
	}

	if m.focus < focusList {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		return m.setFocus((m.focus + 1) % focusCount), nil
	case "shift+tab":
		return m.setFocus((m.focus + focusCount - 1) % focusCount), nil
	}

	if m.focus == focusList {
		return m.updateList(msg.String())
	}
	if msg.Type == tea.KeyEnter {
		return m.submit()
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.focus != focusText && m.inputs[m.focus].Value() != before {
		m.feedback = ""
	}
	return m, cmd
}

func (m Model) updateList(key string) (tea.Model, tea.Cmd) {
	items := m.rendered.Items
	switch key {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case " ", "x", "enter":
		if len(items) == 0 {
			return m, nil
		}
		item := items[m.cursor]
		if _, err := m.service.Toggle(m.ctx, item.ID); err != nil {
			m.status = m.catalog.Message(err)
		} else {
			m.status = fmt.Sprintf(m.catalog.Toggled, item.Text)
		}
	case "d", "delete", "backspace":
		if len(items) == 0 {
			return m, nil
		}
		item := items[m.cursor]
		if _, err := m.service.Delete(m.ctx, item.ID); err != nil {
			m.status = m.catalog.Message(err)
		} else {
			m.status = fmt.Sprintf(m.catalog.Deleted, item.Text)
		}
		m.cursor = clampCursor(m.cursor, len(m.rendered.Items))
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	text := m.inputs[focusText].Value()
	start := strings.TrimSpace(m.inputs[focusStart].Value())
	end := strings.TrimSpace(m.inputs[focusEnd].Value())

	task, err := m.service.Add(m.ctx, text, start, end)
	if err != nil {
		if ve, ok := validation.AsValidationError(err); ok {
			// only an empty text shakes; other rejections explain themselves
			if ve.HasFieldError(validation.FieldText) && ve.Errors[0].Type == validation.ErrorTypeRequired {
				return m.shake()
			}
			m.feedback = m.catalog.Message(err)
			return m, nil
		}
		m.status = m.catalog.Message(err)
		if task == nil {
			return m, nil
		}
		// saving failed but the task is already in the list
	} else {
		m.status = fmt.Sprintf(m.catalog.Added, task.Text)
	}

	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.feedback = ""
	m.cursor = 0
	return m.setFocus(focusText), nil
}

func (m Model) shake() (tea.Model, tea.Cmd) {
	m.shaking = true
	m.shakeSeq++
	seq := m.shakeSeq
	return m, tea.Tick(ShakeDuration, func(time.Time) tea.Msg {
		return shakeDoneMsg{seq: seq}
	})
}

func (m Model) setFocus(f focus) Model {
	m.focus = f
	for i := range m.inputs {
		if focus(i) == f {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

