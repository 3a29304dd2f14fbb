package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/ism7788/math-practice/internal/player"
	"github.com/ism7788/math-practice/internal/quiz"
)

// playModel drives one session through the engine: pick a choice,
// check it, read the feedback, move on.
type playModel struct {
	title    string
	engine   *player.Engine
	cursor   int
	showHint bool
	lastOK   bool
}

func newPlay(title string, engine *player.Engine) playModel {
	return playModel{title: title, engine: engine}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

// sessionDoneMsg is emitted when the bank is exhausted.
type sessionDoneMsg struct {
	summary player.Summary
}

func (m playModel) Update(msg tea.Msg) (playModel, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	item, err := m.engine.Current()
	if err != nil {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if !m.engine.Checked() && m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if !m.engine.Checked() && m.cursor < len(item.Choices)-1 {
			m.cursor++
		}
	case "h":
		m.showHint = !m.showHint
	case "enter":
		if !m.engine.Checked() {
			ok, err := m.engine.SubmitAnswer(m.cursor)
			if err != nil {
				return m, nil
			}
			m.lastOK = ok
			return m, nil
		}
		if err := m.engine.Advance(); err != nil {
			return m, nil
		}
		m.cursor = 0
		m.showHint = false
		if m.engine.Finished() {
			summary, err := m.engine.Summarize()
			if err != nil {
				return m, nil
			}
			return m, func() tea.Msg { return sessionDoneMsg{summary: summary} }
		}
	}
	return m, nil
}

func choiceText(c quiz.Choice) string {
	if c.Plain != "" {
		return c.Plain
	}
	return c.TeX
}

func stemText(t quiz.Text) string {
	if t.Plain != "" {
		return t.Plain
	}
	return t.TeX
}

func (m playModel) View() string {
	item, err := m.engine.Current()
	if err != nil {
		return ""
	}

	tier := player.BucketFor(item.Difficulty)

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Smart score: %d", m.engine.Score())))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render(tier.Label()))
	b.WriteString("\n\n")

	var card strings.Builder
	if item.Visual != nil {
		card.WriteString(renderVisual(item.Visual))
		card.WriteString("\n\n")
	}
	card.WriteString(stemStyle.Render(stemText(item.Stem)))
	card.WriteString("\n\n")

	labels := "ABCDEFGH"
	for i, c := range item.Choices {
		line := fmt.Sprintf("%c)  %s", labels[i], choiceText(c))
		switch {
		case m.engine.Checked() && item.IsCorrect(i):
			card.WriteString(correctStyle.Render("  " + line))
		case m.engine.Checked() && i == m.cursor:
			card.WriteString(wrongStyle.Render("  " + line))
		case m.engine.Checked():
			card.WriteString(dimStyle.Render("  " + line))
		case i == m.cursor:
			card.WriteString(cursorStyle.Render("▸ " + line))
		default:
			card.WriteString(choiceStyle.Render("  " + line))
		}
		card.WriteByte('\n')
	}

	if m.showHint && item.Hint != nil {
		card.WriteString("\n")
		card.WriteString(hintStyle.Render("Hint: " + stemText(*item.Hint)))
		card.WriteByte('\n')
	}

	if m.engine.Checked() {
		card.WriteString("\n")
		if m.lastOK {
			card.WriteString(correctStyle.Render("Correct!"))
		} else {
			card.WriteString(wrongStyle.Render("Not quite."))
		}
		if item.Explain != nil {
			card.WriteString("\n")
			card.WriteString(dimStyle.Render(stemText(*item.Explain)))
		}
		card.WriteByte('\n')
	}

	b.WriteString(cardStyle.Render(card.String()))
	b.WriteString("\n")
	if m.engine.Checked() {
		b.WriteString(hintStyle.Render("enter next • ctrl+c quit"))
	} else {
		b.WriteString(hintStyle.Render("↑↓ choose • enter check • h hint • ctrl+c quit"))
	}
	return b.String()
}
