// Package tui is the interactive terminal player: a skill picker, the
// adaptive quiz loop, and an end-of-session summary.
package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ism7788/math-practice/internal/catalog"
	"github.com/ism7788/math-practice/internal/itemgen"
	"github.com/ism7788/math-practice/internal/player"
	"github.com/ism7788/math-practice/internal/rng"
)

type appState int

const (
	statePicker appState = iota
	statePlay
	stateSummary
)

// appModel is the root Bubble Tea model. It swaps between the picker,
// the play loop, and the summary.
type appModel struct {
	state   appState
	banks   *itemgen.Registry
	src     rng.Source
	picker  pickerModel
	play    playModel
	skill   catalog.Skill
	summary player.Summary
	err     error
	width   int
	height  int
}

func newAppModel(banks *itemgen.Registry, src rng.Source) appModel {
	return appModel{
		banks:  banks,
		src:    src,
		picker: newPicker(),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m appModel) startSession(skill catalog.Skill) (appModel, tea.Cmd) {
	bank, err := m.banks.BankFor(skill.ID)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	engine, err := player.New(bank, player.WithSource(m.src))
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.skill = skill
	m.play = newPlay(skill.Title, engine)
	m.state = statePlay
	return m, m.play.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case skillChosenMsg:
		return m.startSession(msg.skill)

	case sessionDoneMsg:
		m.summary = msg.summary
		m.state = stateSummary
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
		if m.state == stateSummary {
			switch msg.String() {
			case "enter":
				return m.startSession(m.skill)
			case "esc":
				m.state = statePicker
				m.picker = newPicker()
				return m, m.picker.Init()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case statePicker:
		m.picker, cmd = m.picker.Update(msg)
	case statePlay:
		m.play, cmd = m.play.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	switch m.state {
	case statePicker:
		v.SetContent(m.picker.View())
	case statePlay:
		v.SetContent(m.play.View())
	case stateSummary:
		v.SetContent(summaryView(m.skill.Title, m.summary))
	}
	return v
}

// Run starts the interactive player. When skillID is non-empty the
// picker is skipped.
func Run(banks *itemgen.Registry, src rng.Source, skillID string) error {
	m := newAppModel(banks, src)

	if skillID != "" {
		skill, ok := catalog.Get(skillID)
		if !ok {
			skill = catalog.Skill{ID: skillID, Title: skillID}
		}
		m, _ = m.startSession(skill)
		if m.err != nil {
			return m.err
		}
	}

	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(appModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
