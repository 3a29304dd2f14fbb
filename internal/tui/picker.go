package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/ism7788/math-practice/internal/catalog"
)

// pickerModel lets the player choose a skill, with a live text filter
// over titles and IDs.
type pickerModel struct {
	filter   textinput.Model
	skills   []catalog.Skill
	visible  []catalog.Skill
	selected int
}

func newPicker() pickerModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter skills"
	ti.CharLimit = 40

	skills := catalog.Skills()
	return pickerModel{
		filter:  ti,
		skills:  skills,
		visible: skills,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return m.filter.Focus()
}

// skillChosenMsg is emitted when the player confirms a skill.
type skillChosenMsg struct {
	skill catalog.Skill
}

func (m pickerModel) Update(msg tea.Msg) (pickerModel, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch kmsg.String() {
		case "up":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down":
			if m.selected < len(m.visible)-1 {
				m.selected++
			}
			return m, nil
		case "enter":
			if m.selected < len(m.visible) {
				chosen := m.visible[m.selected]
				return m, func() tea.Msg { return skillChosenMsg{skill: chosen} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refilter()
	return m, cmd
}

func (m *pickerModel) refilter() {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if q == "" {
		m.visible = m.skills
	} else {
		var out []catalog.Skill
		for _, s := range m.skills {
			if strings.Contains(strings.ToLower(s.Title), q) || strings.Contains(s.ID, q) {
				out = append(out, s)
			}
		}
		m.visible = out
	}
	if m.selected >= len(m.visible) {
		m.selected = max(0, len(m.visible)-1)
	}
}

func (m pickerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pick a skill"))
	b.WriteString("\n\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(dimStyle.Render("No skills match."))
		return b.String()
	}

	for i, s := range m.visible {
		line := fmt.Sprintf("%s  %s", s.Title, subtitleStyle.Render(fmt.Sprintf("(grade %d)", s.Grade)))
		if i == m.selected {
			b.WriteString(cursorStyle.Render("▸ " + line))
		} else {
			b.WriteString(choiceStyle.Render("  " + line))
		}
		b.WriteByte('\n')
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("↑↓ navigate • enter start • ctrl+c quit"))
	return b.String()
}
