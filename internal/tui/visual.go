package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ism7788/math-practice/internal/quiz"
)

// renderVisual draws an item's visual as terminal art. Unknown or
// absent specs render to nothing.
func renderVisual(spec quiz.VisualSpec) string {
	switch v := spec.(type) {
	case quiz.GridSpec:
		return renderGrid(v)
	case quiz.CircleSpec:
		return renderCircle(v)
	case quiz.TriangleSidesSpec:
		return renderTriangleSides(v)
	case quiz.TriangleAnglesSpec:
		return renderTriangleAngles(v)
	default:
		return ""
	}
}

// renderGrid draws the grid row by row, shading cells left to right,
// top to bottom.
func renderGrid(v quiz.GridSpec) string {
	fill := lipgloss.NewStyle().Foreground(lipgloss.Color(v.Color))
	empty := dimStyle

	var b strings.Builder
	for r := 0; r < v.Rows; r++ {
		for c := 0; c < v.Cols; c++ {
			if r*v.Cols+c < v.Shaded {
				b.WriteString(fill.Render("██"))
			} else {
				b.WriteString(empty.Render("░░"))
			}
			if c < v.Cols-1 {
				b.WriteByte(' ')
			}
		}
		if r < v.Rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// renderCircle flattens the circle into a ring of slice markers; a
// true pie chart does not survive a character grid.
func renderCircle(v quiz.CircleSpec) string {
	fill := lipgloss.NewStyle().Foreground(lipgloss.Color(v.Color))

	var b strings.Builder
	for i := 0; i < v.Parts; i++ {
		if i < v.Shaded {
			b.WriteString(fill.Render("◉"))
		} else {
			b.WriteString(dimStyle.Render("○"))
		}
		if i < v.Parts-1 {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('\n')
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d of %d slices shaded", v.Shaded, v.Parts)))
	return b.String()
}

func renderTriangleSides(v quiz.TriangleSidesSpec) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(v.Color))
	art := strings.Join([]string{
		`    /\`,
		`   /  \`,
		`  /    \`,
		` /______\`,
	}, "\n")
	labels := fmt.Sprintf("a=%d  b=%d  c=%d", v.A, v.B, v.C)
	return style.Render(art) + "\n" + dimStyle.Render(labels)
}

func renderTriangleAngles(v quiz.TriangleAnglesSpec) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(v.Color))

	var art string
	switch v.Class {
	case quiz.ClassRight:
		art = strings.Join([]string{
			`  |\`,
			`  | \`,
			`  |  \`,
			`  |___\`,
		}, "\n")
	case quiz.ClassObtuse:
		art = strings.Join([]string{
			`      __`,
			`   __/ /`,
			`__/   /`,
			`\____/`,
		}, "\n")
	default:
		art = strings.Join([]string{
			`    /\`,
			`   /  \`,
			`  /    \`,
			` /______\`,
		}, "\n")
	}
	return style.Render(art)
}
