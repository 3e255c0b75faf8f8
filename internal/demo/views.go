package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/teaform/teaform"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showPicker {
		return m.renderPicker()
	}
	return m.renderForm()
}

func (m Model) renderForm() string {
	snap := m.cell.Snapshot()

	rows := []string{
		m.renderRow("Name", m.nameInput.View(), focusName),
		m.renderRow("Email", m.emailInput.View(), focusEmail),
		m.renderRow("Role", m.renderRole(snap.Role), focusRole),
		m.renderRow("Newsletter", checkbox(snap.Newsletter), focusNewsletter),
		m.renderRow("Attachment", attachmentLabel(snap), -1),
		"",
		m.renderSubmit(),
	}
	card := m.styles.Card.Render(strings.Join(rows, "\n"))

	sections := []string{
		m.styles.Title.Render("Signup"),
		card,
		m.form.View(),
	}
	if panel := m.renderSubmissions(); panel != "" {
		sections = append(sections, panel)
	}
	sections = append(sections, m.renderStatus(), m.renderHints())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderRow(label, value string, area focusArea) string {
	style := m.styles.Label
	if area >= 0 && m.focus == area {
		style = m.styles.LabelFocus
	}
	return fmt.Sprintf("%s %s", style.Render(label), value)
}

func (m Model) renderRole(role string) string {
	arrows := m.styles.Hint
	if m.focus == focusRole {
		arrows = m.styles.LabelFocus
	}
	return fmt.Sprintf("%s %s %s",
		arrows.Render("<"),
		m.styles.Value.Render(fmt.Sprintf("%-10s", role)),
		arrows.Render(">"))
}

func (m Model) renderSubmit() string {
	style := m.styles.Label
	if m.focus == focusSubmit {
		style = m.styles.LabelFocus
	}
	return style.Render("[ Submit ]")
}

func (m Model) renderSubmissions() string {
	if len(m.submissions) == 0 {
		return ""
	}
	start := 0
	if len(m.submissions) > 3 {
		start = len(m.submissions) - 3
	}
	lines := make([]string, 0, 4)
	lines = append(lines, fmt.Sprintf("Submitted (%d)", len(m.submissions)))
	for _, s := range m.submissions[start:] {
		lines = append(lines, fmt.Sprintf("  %s <%s> as %s", s.Name, s.Email, s.Role))
	}
	return m.styles.Summary.Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatus() string {
	if m.lastError != "" {
		return m.styles.Error.Render("error: " + m.lastError)
	}
	mode := "auto-reset on"
	if !m.base.AutoReset {
		mode = "auto-reset off"
	}
	return m.styles.Status.Render(fmt.Sprintf("%s  [%s]", m.status, mode))
}

func (m Model) renderHints() string {
	parts := make([]string, 0, 8)
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	switch m.focus {
	case focusRole:
		parts = append(parts, "left/right change role")
	case focusNewsletter:
		parts = append(parts, "space toggle")
	}
	return m.styles.Hint.Render(strings.Join(parts, " • "))
}

func (m Model) renderPicker() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Attach a file"),
		m.picker.View(),
		m.styles.Hint.Render("enter select • esc back"),
	)
}

// summaryView renders the live draft held by the state cell. It runs
// against the binder so it always sees the latest reductions, even
// ones applied since the last keystroke.
func summaryView(styles Styles) teaform.ViewFn[Signup] {
	return func(b *teaform.Binder[Signup]) string {
		s := b.State()
		fields := []string{
			"name=" + orDash(s.Name),
			"email=" + orDash(s.Email),
			"role=" + orDash(s.Role),
			"newsletter=" + fmt.Sprint(s.Newsletter),
		}
		if s.Attachment != "" {
			fields = append(fields, fmt.Sprintf("attachment=%s (%s)", s.Attachment, formatSize(s.AttachmentSize)))
		}
		return styles.Summary.Render("draft " + strings.Join(fields, " "))
	}
}

func checkbox(on bool) string {
	if on {
		return "[x] subscribed"
	}
	return "[ ] subscribed"
}

func attachmentLabel(s Signup) string {
	if s.Attachment == "" {
		return "none (ctrl+o to pick)"
	}
	return fmt.Sprintf("%s (%s)", s.Attachment, formatSize(s.AttachmentSize))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
