package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/trknhr/ghostfaker/internal/action"
	"github.com/trknhr/ghostfaker/internal/clipboard"
	"github.com/trknhr/ghostfaker/internal/extension"
	"github.com/trknhr/ghostfaker/internal/logger"
)

// Handler is the extension side of the launcher.
type Handler interface {
	Handle(ev extension.Event) (action.Action, error)
}

type tuiModel struct {
	input     textinput.Model
	list      list.Model
	handler   Handler
	copier    clipboard.Copier
	lastInput string
	// subList is set while a sample list is shown; the query input is frozen.
	subList  bool
	width    int
	height   int
	selected string
	copyErr  error
}

var (
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// compactDelegate renders items in a single-line compact form.
type compactDelegate struct{}

func (d compactDelegate) Height() int                               { return 1 }
func (d compactDelegate) Spacing() int                              { return 0 }
func (d compactDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d compactDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(resultItem)
	if !ok {
		return
	}
	str := i.Name
	switch {
	case !i.Highlightable && !i.Small:
		str = dimStyle.Render("  " + str)
	case index == m.Index():
		str = selectedStyle.Render("> " + str)
	default:
		str = "  " + str
	}
	fmt.Fprint(w, str)
}

type resultItem struct{ action.Item }

func (i resultItem) Title() string       { return i.Name }
func (i resultItem) Description() string { return "" }
func (i resultItem) FilterValue() string { return i.Name }

func NewTuiModel(h Handler, copier clipboard.Copier, initialInput string) *tuiModel {
	input := textinput.New()
	input.Placeholder = "Type a provider name (email, date, uuid...)"
	input.SetValue(initialInput)
	input.Focus()

	l := list.New([]list.Item{}, &compactDelegate{}, 40, 10)
	l.SetShowPagination(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	m := &tuiModel{
		input:     input,
		list:      l,
		handler:   h,
		copier:    copier,
		lastInput: initialInput,
	}
	m.dispatch(extension.KeywordQueryEvent{Argument: initialInput})
	return m
}

func (m *tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyEsc:
			if m.subList {
				m.subList = false
				m.input.Focus()
				m.dispatch(extension.KeywordQueryEvent{Argument: m.lastInput})
				return m, nil
			}
			return m, tea.Quit

		case tea.KeyEnter:
			if item, ok := m.list.SelectedItem().(resultItem); ok && item.OnEnter != nil {
				return m, m.activate(item.OnEnter)
			}
			return m, nil

		case tea.KeyUp, tea.KeyDown:
			m.list, _ = m.list.Update(msg)
			return m, nil

		default:
			if m.subList {
				return m, nil
			}
			m.input, _ = m.input.Update(msg)
		}
	}

	if !m.subList {
		query := m.input.Value()
		if query != m.lastInput {
			m.lastInput = query
			m.dispatch(extension.KeywordQueryEvent{Argument: query})
		}
	}

	return m, nil
}

// activate performs an item's action the way a launcher would.
func (m *tuiModel) activate(a action.Action) tea.Cmd {
	switch a := a.(type) {
	case action.ExtensionCustom:
		m.dispatch(extension.ItemEnterEvent{Data: a.Data})
		if !a.KeepAppOpen {
			return tea.Quit
		}
		m.subList = true
		m.input.Blur()
		return nil
	case action.CopyToClipboard:
		m.selected = a.Text
		if err := m.copier.Copy(a.Text); err != nil {
			logger.Warn("copy failed: %v", err)
			m.copyErr = err
		}
		return tea.Quit
	case action.HideWindow:
		return tea.Quit
	case action.RenderResultList:
		m.render(a)
		return nil
	default:
		logger.Warn("unsupported action %T", a)
		return nil
	}
}

func (m *tuiModel) dispatch(ev extension.Event) {
	act, err := m.handler.Handle(ev)
	if err != nil {
		m.list.SetItems([]list.Item{resultItem{action.Item{Name: "Error: " + err.Error()}}})
		return
	}
	if rl, ok := act.(action.RenderResultList); ok {
		m.render(rl)
		return
	}
	m.activate(act)
}

func (m *tuiModel) render(r action.RenderResultList) {
	items := make([]list.Item, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, resultItem{it})
	}
	m.list.SetItems(items)
	m.list.ResetSelected()
}

func (m *tuiModel) View() string {
	s := "Ghostfaker\n\n"
	s += m.input.View() + "\n\n"
	s += m.list.View() + "\n"
	if m.subList {
		s += "(enter = copy, esc = back, ctrl+c = quit)"
	} else {
		s += "(enter = samples, ctrl+c = quit)"
	}
	return s
}

// SelectedText is the value chosen for the clipboard, empty if none.
func (m *tuiModel) SelectedText() string {
	return m.selected
}

// CopyErr reports whether writing the clipboard failed.
func (m *tuiModel) CopyErr() error {
	return m.copyErr
}
