package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zcohort/internal/identity"
)

// detailModel displays one student of the current cohort.
type detailModel struct {
	identity identity.Identity
	fields   []identityField
	cursor   int
	flash    string
}

func newDetailModel(id identity.Identity) detailModel {
	return detailModel{
		identity: id,
		fields:   identityFields(id),
	}
}

func (m detailModel) Init() tea.Cmd {
	return nil
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m detailModel) handleKey(msg tea.KeyMsg) (detailModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewCohort} }
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		m.flash = copyFlash(m.fields[m.cursor].value, "copied!")
		return m, clearFlashAfter()
	}

	if msg.String() == "c" {
		m.flash = copyFlash(fieldsText(m.fields), "copied all!")
		return m, clearFlashAfter()
	}

	return m, nil
}

func (m detailModel) View() string {
	name := zstyle.Subtitle.Render(m.identity.Title + " " + m.identity.FullName())
	s := "\n  " + name + "\n\n"
	s += renderFields(m.fields, m.cursor) + "\n"
	return s + flashLine(m.flash)
}
