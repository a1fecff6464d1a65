package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"notesapp/internal/config"
	"notesapp/internal/notes"
	"notesapp/internal/tui/messages"
	"notesapp/internal/tui/noteview"
	"notesapp/internal/tui/shared"
)

type focusArea int

const (
	focusNote focusArea = iota
	focusReminder
	focusList
	focusCount
)

// Terminal cells per nominal window pixel, used to turn the configured
// window size into a layout cap.
const (
	pixelsPerColumn = 8
	pixelsPerRow    = 16
)

// AppModel is the root model: it routes keys to the focused widget or the
// open modal and feeds gestures through the notes presenter.
type AppModel struct {
	cfg         *config.Config
	view        *noteview.View
	composer    noteview.ComposerModel
	list        noteview.ListModel
	focus       focusArea
	textDialog  *shared.TextDialogModel
	colorDialog *shared.ColorDialogModel
	showHelp    bool
	width       int
	height      int
	ready       bool
	err         error
}

// NewAppModel creates the root application model over an empty note store.
// now seeds the reminder picker.
func NewAppModel(cfg *config.Config, now func() time.Time) AppModel {
	view := noteview.New(notes.NewStore(), cfg.PendingColor())

	composer := noteview.NewComposer(now)
	composer.SetField(noteview.FieldText)

	list := noteview.NewListModel()
	list.SetRows(view.Rows(), view.Selected())

	return AppModel{
		cfg:      cfg,
		view:     view,
		composer: composer,
		list:     list,
		focus:    focusNote,
	}
}

// Err returns the error that ended the session, if any.
func (m AppModel) Err() error {
	return m.err
}

// Notes returns the presenter, for inspection.
func (m AppModel) Notes() *noteview.View {
	return m.view
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.cfg.Window.Title), textarea.Blink)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case messages.ButtonMsg:
		return m.press(msg.Gesture)

	case messages.RowClickMsg:
		if err := m.view.Click(msg.Index); err != nil {
			return m.fatal(err)
		}
		m.sync()
		return m, nil

	case messages.TextDialogResultMsg:
		m.textDialog = nil
		if _, err := m.view.FinishEdit(msg.Value, msg.OK); err != nil {
			return m.fatal(err)
		}
		m.sync()
		return m, nil

	case messages.ColorDialogResultMsg:
		m.colorDialog = nil
		m.view.ChooseColor(msg.Color, msg.Valid)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blinks and other internal messages
	var cmd tea.Cmd
	switch {
	case m.textDialog != nil:
		_, cmd = m.textDialog.Update(msg)
	case m.colorDialog != nil:
		_, cmd = m.colorDialog.Update(msg)
	default:
		m.composer, cmd = m.composer.Update(msg)
	}
	return m, cmd
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.ForceQuit) {
		return m, tea.Quit
	}

	// Dismiss help overlay on any key
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// An open modal takes every key
	if m.textDialog != nil {
		_, cmd := m.textDialog.Update(msg)
		return m, cmd
	}
	if m.colorDialog != nil {
		_, cmd := m.colorDialog.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.Add):
		return m.press(messages.GestureAdd)
	case key.Matches(msg, keys.Edit):
		return m.press(messages.GestureEdit)
	case key.Matches(msg, keys.Delete):
		return m.press(messages.GestureDelete)
	case key.Matches(msg, keys.Color):
		return m.press(messages.GestureChooseColor)
	case key.Matches(msg, keys.NextFocus):
		return m, m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, keys.PrevFocus):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, keys.Help) && (msg.String() == "f1" || !m.composer.CapturingText()):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, keys.Quit) && m.focus == focusList:
		return m, tea.Quit
	}

	// Row clicks apply before the next key so a following delete sees them
	if m.focus == focusList && key.Matches(msg, keys.RowSelect) {
		if len(m.list.Rows()) == 0 {
			return m, nil
		}
		if err := m.view.Click(m.list.Cursor()); err != nil {
			return m.fatal(err)
		}
		m.sync()
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusList {
		m.list, cmd = m.list.Update(msg)
	} else {
		m.composer, cmd = m.composer.Update(msg)
	}
	return m, cmd
}

func (m AppModel) press(g messages.Gesture) (tea.Model, tea.Cmd) {
	log.Debug().Stringer("gesture", g).Int("selected", m.view.Selected()).Msg("button pressed")

	switch g {
	case messages.GestureAdd:
		added, err := m.view.Add(m.composer.Text(), m.composer.Reminder())
		if err != nil {
			return m.fatal(err)
		}
		if added {
			m.composer.Clear()
			m.sync()
		}
		return m, nil

	case messages.GestureEdit:
		seed, ok, err := m.view.BeginEdit()
		if err != nil {
			return m.fatal(err)
		}
		if !ok {
			return m, nil
		}
		m.textDialog = shared.NewTextDialog("Edit Note", "Edit your note:", seed)
		m.textDialog.SetSize(m.width, m.height)
		return m, m.textDialog.Init()

	case messages.GestureDelete:
		if _, err := m.view.Delete(); err != nil {
			return m.fatal(err)
		}
		m.sync()
		return m, nil

	case messages.GestureChooseColor:
		m.colorDialog = shared.NewColorDialog(m.cfg.Swatches(), m.view.Pending())
		m.colorDialog.SetSize(m.width, m.height)
		return m, m.colorDialog.Init()
	}
	return m, nil
}

// fatal ends the session: the list and the store no longer agree.
func (m AppModel) fatal(err error) (tea.Model, tea.Cmd) {
	log.Error().Err(err).Msg("note list out of sync with store")
	m.err = err
	return m, tea.Quit
}

// sync re-renders the list widget from the presenter's rows.
func (m *AppModel) sync() {
	m.list.SetRows(m.view.Rows(), m.view.Selected())
}

func (m *AppModel) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.list.Blur()

	switch f {
	case focusNote:
		return m.composer.SetField(noteview.FieldText)
	case focusReminder:
		return m.composer.SetField(noteview.FieldReminder)
	default:
		m.list.Focus()
		return m.composer.SetField(noteview.FieldNone)
	}
}
