package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zcohort/internal/identity"
)

// identityField represents a labeled field for display and selection.
type identityField struct {
	label string
	value string
}

// generateModel displays a freshly generated identity.
type generateModel struct {
	identity identity.Identity
	fields   []identityField
	cursor   int
	flash    string
}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

func newGenerateModel(id identity.Identity) generateModel {
	return generateModel{
		identity: id,
		fields:   identityFields(id),
	}
}

func identityFields(id identity.Identity) []identityField {
	return []identityField{
		{"cid", id.CID},
		{"title", id.Title},
		{"name", id.FullName()},
		{"gender", id.Gender},
		{"country", id.Nationality},
		{"course", id.Course},
		{"username", id.Username},
		{"email", id.Email},
		{"personal", id.PersonalEmail},
		{"github", id.GitHub},
		{"fees", id.FeeStatus},
		{"status", id.EnrollmentStatus},
		{"tutor", id.Tutor},
	}
}

func (m generateModel) Init() tea.Cmd {
	return nil
}

func (m generateModel) Update(msg tea.Msg) (generateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m generateModel) handleKey(msg tea.KeyMsg) (generateModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
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

	switch msg.String() {
	case "c":
		m.flash = copyFlash(fieldsText(m.fields), "copied all!")
		return m, clearFlashAfter()

	case "n":
		return m, func() tea.Msg { return navigateMsg{view: viewGenerate} }
	}

	return m, nil
}

func (m generateModel) View() string {
	s := "\n" + renderFields(m.fields, m.cursor) + "\n"
	return s + flashLine(m.flash)
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

// copyFlash copies text and returns the flash to show.
func copyFlash(text, ok string) string {
	if err := copyToClipboard(text); err != nil {
		return "copy: " + err.Error()
	}
	return ok
}

func fieldsText(fields []identityField) string {
	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
	}
	return b.String()
}

func renderFields(fields []identityField, cursor int) string {
	accentStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)

	var s string
	for i, f := range fields {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-10s", f.label))
		if i == cursor {
			s += "  " + accentStyle.Render("▸") + " " + label + " " + f.value + "\n"
		} else {
			s += "    " + label + " " + f.value + "\n"
		}
	}
	return s
}

// flashLine always renders one line so the layout does not shift.
func flashLine(flash string) string {
	if flash == "" {
		return "\n"
	}
	return "  " + zstyle.StatusOK.Render(flash) + "\n"
}
