package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zcohort/internal/cohort"
	"github.com/zarlcorp/zcohort/internal/identity"
)

// rows taken by the header, separator, footer and flash line
const chromeRows = 8

const defaultCohortRows = 15

// cohortModel displays a generated cohort in a scrollable list.
type cohortModel struct {
	cohort cohort.Cohort
	cursor int
	offset int
	height int
	flash  string
}

// viewIdentityMsg requests viewing a specific student.
type viewIdentityMsg struct {
	identity identity.Identity
}

func newCohortModel(c cohort.Cohort, height int) cohortModel {
	return cohortModel{cohort: c, height: height}
}

// cohortRows is the number of students visible for a terminal height.
func cohortRows(termHeight int) int {
	if termHeight <= 0 {
		return defaultCohortRows
	}
	return max(termHeight-chromeRows, 1)
}

func (m cohortModel) Init() tea.Cmd {
	return nil
}

func (m cohortModel) Update(msg tea.Msg) (cohortModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m cohortModel) handleKey(msg tea.KeyMsg) (cohortModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if msg.String() == "r" {
		return m, func() tea.Msg { return newCohortMsg{} }
	}

	students := m.cohort.Students
	if len(students) == 0 {
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		m.scroll()
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(students)-1 {
			m.cursor++
		}
		m.scroll()
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		id := students[m.cursor]
		return m, func() tea.Msg { return viewIdentityMsg{identity: id} }
	}

	return m, nil
}

// scroll keeps the cursor inside the visible window.
func (m *cohortModel) scroll() {
	h := max(m.height, 1)
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

func (m cohortModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)

	students := m.cohort.Students
	s := "\n"

	if len(students) == 0 {
		s += "  " + zstyle.MutedText.Render("empty cohort") + "\n\n"
		return s + flashLine(m.flash)
	}

	end := min(m.offset+max(m.height, 1), len(students))
	for i := m.offset; i < end; i++ {
		id := students[i]
		line := fmt.Sprintf("%-8s %-24s %-8s %-6s %s",
			id.CID, truncate(id.FullName(), 24), id.Username, id.Course, truncate(id.Nationality, 20))

		if i == m.cursor {
			s += "  " + accentStyle.Render("▸") + " " + line + "\n"
		} else {
			s += "    " + line + "\n"
		}
	}

	pos := fmt.Sprintf("%d/%d  %d tutors", m.cursor+1, len(students), len(m.cohort.Tutors))
	s += "\n  " + zstyle.MutedText.Render(pos) + "\n"

	return s + flashLine(m.flash)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
