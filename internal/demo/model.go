package demo

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/teaform/teaform"
	"github.com/teaform/teaform/files"
	"github.com/teaform/teaform/store"
)

// focusArea identifies the control holding keyboard focus.
type focusArea int

const (
	focusName focusArea = iota
	focusEmail
	focusRole
	focusNewsletter
	focusSubmit
)

const focusCount = 5

// wireMsg carries the program's send function to the model once the
// event loop is running.
type wireMsg struct {
	send func(tea.Msg)
}

// submittedMsg reports a committed signup back to the model.
type submittedMsg struct {
	signup Signup
}

// readFailedMsg surfaces an attachment read failure.
type readFailedMsg struct {
	err error
}

// Model is the root Bubble Tea model for the demo.
type Model struct {
	cfg    Config
	keys   keyMap
	styles Styles

	cell *store.Store[Signup]
	form teaform.Form[Signup]
	base teaform.Props[Signup]

	nameInput  textinput.Model
	emailInput textinput.Model
	picker     filepicker.Model
	showPicker bool

	setName    teaform.Callback[teaform.InputEvent]
	setEmail   teaform.Callback[teaform.InputEvent]
	setRole    teaform.Callback[teaform.ChangeEvent]
	setFile    teaform.Callback[teaform.ChangeEvent]
	toggleNews teaform.Callback[tea.Msg]
	submit     teaform.Callback[tea.Msg]
	resetForm  teaform.Callback[tea.Msg]

	focus       focusArea
	ready       bool
	submissions []Signup
	status      string
	lastError   string
}

// NewModel builds the demo model around an opened state cell.
func NewModel(cfg Config, cell *store.Store[Signup]) Model {
	styles := DefaultTheme().Styles()

	name := textinput.New()
	name.Placeholder = "Ada Lovelace"
	name.CharLimit = 64
	name.Width = 32
	name.Focus()

	email := textinput.New()
	email.Placeholder = "ada@example.com"
	email.CharLimit = 64
	email.Width = 32

	picker := filepicker.New()
	picker.AutoHeight = false
	picker.Height = 12
	if home, err := os.UserHomeDir(); err == nil {
		picker.CurrentDirectory = home
	} else {
		picker.CurrentDirectory = "."
	}

	props := teaform.Props[Signup]{
		Handle:    cell.Handle(),
		AutoReset: cfg.AutoReset,
		Reader:    files.NewLocalReader(files.WithMaxBytes(cfg.MaxFileBytes)),
		View:      summaryView(styles),
	}
	// Persistent cells arrive carrying their restored value; only the
	// volatile flavors start from the demo default.
	if !cfg.Persistent() {
		def := defaultSignup()
		props.Default = &def
	}

	m := Model{
		cfg:        cfg,
		keys:       DefaultKeyMap(),
		styles:     styles,
		cell:       cell,
		form:       teaform.New(props),
		base:       props,
		nameInput:  name,
		emailInput: email,
		picker:     picker,
		status:     fmt.Sprintf("%s store ready", cfg.Flavor),
	}

	b := m.form.Binder()
	m.setName = b.SetText(func(s *Signup, v string) { s.Name = v })
	m.setEmail = b.SetText(func(s *Signup, v string) { s.Email = v })
	m.setRole = b.SetSelect(func(s *Signup, v string) { s.Role = v })
	m.setFile = b.SetFile(func(s *Signup, d files.Data) {
		s.Attachment = d.Name
		s.AttachmentSize = int64(len(d.Content))
	})
	m.toggleNews = b.Set(func(s *Signup) { s.Newsletter = !s.Newsletter })
	m.submit = b.Submit()
	m.resetForm = b.Reset()

	m.syncInputs()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The form consumes its own lifecycle messages first; everything
	// else passes through untouched.
	var formCmd tea.Cmd
	m.form, formCmd = m.form.Update(msg)
	if formCmd != nil {
		cmds = append(cmds, formCmd)
	}

	switch msg := msg.(type) {
	case wireMsg:
		m.form = m.form.Wire(msg.send)
		send := msg.send
		props := m.base
		props.OnSubmit = teaform.NewCallback(func(s Signup) {
			send(submittedMsg{signup: s})
		})
		props.OnError = teaform.NewCallback(func(err error) {
			send(readFailedMsg{err: err})
		})
		m.form = m.form.SetProps(props)
		m.base = props

	case tea.WindowSizeMsg:
		if h := msg.Height - 10; h > 2 {
			m.picker.Height = h
		}
		m.ready = true

	case teaform.ResetMsg:
		m.syncInputs()
		m.status = "form reset"

	case submittedMsg:
		m.submissions = append(m.submissions, msg.signup)
		m.status = fmt.Sprintf("submitted signup #%d", len(m.submissions))
		m.lastError = ""

	case readFailedMsg:
		m.lastError = msg.err.Error()

	case tea.KeyMsg:
		var (
			nm  Model
			cmd tea.Cmd
		)
		if m.showPicker {
			nm, cmd = m.handlePickerKey(msg)
		} else {
			nm, cmd = m.handleFormKey(msg)
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return nm, tea.Batch(cmds...)

	default:
		if m.showPicker {
			var cmd tea.Cmd
			m, cmd = m.updatePicker(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)

	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)

	case key.Matches(msg, m.keys.Reset):
		m.resetForm.Emit(msg)
		return m, nil

	case key.Matches(msg, m.keys.Attach):
		m.showPicker = true
		return m, m.picker.Init()

	case key.Matches(msg, m.keys.ToggleReset):
		m.base.AutoReset = !m.base.AutoReset
		m.form = m.form.SetProps(m.base)
		if m.base.AutoReset {
			m.status = "auto-reset enabled"
		} else {
			m.status = "auto-reset disabled"
		}
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.submit.Emit(msg)
		return m, nil

	case key.Matches(msg, m.keys.Toggle) && m.focus == focusNewsletter:
		m.toggleNews.Emit(msg)
		return m, nil

	case key.Matches(msg, m.keys.Left) && m.focus == focusRole:
		m.setRole.Emit(teaform.SelectChange(nextRole(m.cell.Snapshot().Role, -1)))
		return m, nil

	case key.Matches(msg, m.keys.Right) && m.focus == focusRole:
		m.setRole.Emit(teaform.SelectChange(nextRole(m.cell.Snapshot().Role, 1)))
		return m, nil
	}

	// Remaining keys go to whichever text input holds focus; each
	// keystroke is mirrored into the form state.
	switch m.focus {
	case focusName:
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		m.setName.Emit(teaform.InputEvent{Value: m.nameInput.Value()})
		return m, cmd
	case focusEmail:
		var cmd tea.Cmd
		m.emailInput, cmd = m.emailInput.Update(msg)
		m.setEmail.Emit(teaform.InputEvent{Value: m.emailInput.Value()})
		return m, cmd
	}
	return m, nil
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.showPicker = false
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m.updatePicker(msg)
}

func (m Model) updatePicker(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.showPicker = false
		m.setFile.Emit(teaform.FileChange(files.FromPath(path)))
		m.status = "reading " + path
	}
	return m, cmd
}

func (m Model) moveFocus(delta int) (Model, tea.Cmd) {
	m.focus = focusArea((int(m.focus) + delta + focusCount) % focusCount)
	m.nameInput.Blur()
	m.emailInput.Blur()

	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		cmd = m.nameInput.Focus()
	case focusEmail:
		cmd = m.emailInput.Focus()
	}
	return m, cmd
}

func (m *Model) syncInputs() {
	snap := m.cell.Snapshot()
	m.nameInput.SetValue(snap.Name)
	m.emailInput.SetValue(snap.Email)
}
