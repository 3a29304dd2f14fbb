package tui

import (
	"fmt"
	"strings"

	"github.com/ism7788/math-practice/internal/player"
)

// summaryView renders the end-of-session report.
func summaryView(title string, s player.Summary) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Final smart score: %d", s.Score)))
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("By difficulty"))
	b.WriteString("\n")
	for _, tier := range []player.Bucket{player.BucketEasy, player.BucketMedium, player.BucketHard} {
		st := s.ByTier[tier]
		b.WriteString(choiceStyle.Render(fmt.Sprintf("  %-7s %d/%d", tier.String()+":", st.Correct, st.Total)))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter play again • esc pick another skill • ctrl+c quit"))
	return b.String()
}
