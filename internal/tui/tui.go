// Package tui implements the root Bubble Tea model for zcohort.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zcohort/internal/cohort"
	"github.com/zarlcorp/zcohort/internal/identity"
)

type viewID int

const (
	viewMenu viewID = iota
	viewGenerate
	viewCohort
	viewDetail
)

// accent is the zarlcorp house accent shared with the other tools.
var accent = zstyle.ZburnAccent

// Model is the root TUI model.
type Model struct {
	version    string
	gen        *identity.Generator
	profile    identity.Profile
	cohortSize int

	active   viewID
	menu     menuModel
	generate generateModel
	cohort   cohortModel
	detail   detailModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model. Cohorts are generated with cohortSize
// students drawn from profile.
func New(version string, gen *identity.Generator, profile identity.Profile, cohortSize int) Model {
	return Model{
		version:    version,
		gen:        gen,
		profile:    profile,
		cohortSize: cohortSize,
		active:     viewMenu,
		menu:       newMenuModel(version),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.cohort.height = cohortRows(msg.Height)
		return m, nil

	case navigateMsg:
		return m.navigate(msg.view)

	case quickEmailMsg:
		return m.handleQuickEmail()

	case newCohortMsg:
		return m.handleNewCohort()

	case viewIdentityMsg:
		m.detail = newDetailModel(msg.identity)
		m.active = viewDetail
		return m, nil
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	// the menu carries its own title
	if m.active == viewMenu {
		return m.menu.View()
	}

	var content string
	switch m.active {
	case viewGenerate:
		content = m.generate.View()
	case viewCohort:
		content = m.cohort.View()
	case viewDetail:
		content = m.detail.View()
	}

	header := zstyle.RenderHeader("zcohort", viewTitle(m.active), accent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

func viewTitle(id viewID) string {
	switch id {
	case viewGenerate:
		return "Generate Identity"
	case viewCohort:
		return "Cohort"
	case viewDetail:
		return "Student"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewGenerate:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "copy field"},
			{Key: "c", Desc: "copy all"},
			{Key: "n", Desc: "new"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewCohort:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "view"},
			{Key: "r", Desc: "regenerate"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewDetail:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "copy field"},
			{Key: "c", Desc: "copy all"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewGenerate:
		m.generate, cmd = m.generate.Update(msg)
	case viewCohort:
		m.cohort, cmd = m.cohort.Update(msg)
	case viewDetail:
		m.detail, cmd = m.detail.Update(msg)
	}

	return m, cmd
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	switch view {
	case viewMenu:
		m.menu = newMenuModel(m.version)
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewGenerate:
		id, err := m.gen.Generate(m.profile)
		if err != nil {
			m.menu.flash = "generate: " + err.Error()
			m.active = viewMenu
			return m, clearFlashAfter()
		}
		m.generate = newGenerateModel(id)
		m.active = viewGenerate
		return m, tea.ClearScreen

	case viewCohort:
		// back from a student keeps the current cohort
		m.active = viewCohort
		return m, tea.ClearScreen
	}

	return m, nil
}

func (m Model) handleQuickEmail() (tea.Model, tea.Cmd) {
	email := m.gen.Email("")
	if err := copyToClipboard(email); err != nil {
		m.menu.flash = email + " (copy: " + err.Error() + ")"
		return m, clearFlashAfter()
	}
	m.menu.flash = "copied " + email
	return m, clearFlashAfter()
}

func (m Model) handleNewCohort() (tea.Model, tea.Cmd) {
	c, err := cohort.New(m.gen, m.cohortSize, m.profile)
	if err != nil {
		if m.active == viewCohort {
			m.cohort.flash = "generate: " + err.Error()
		} else {
			m.menu.flash = "generate: " + err.Error()
		}
		return m, clearFlashAfter()
	}

	m.cohort = newCohortModel(c, cohortRows(m.height))
	m.active = viewCohort
	return m, tea.ClearScreen
}
