package tui

import (
	"strings"
	"testing"

	"github.com/ism7788/math-practice/internal/quiz"
)

func TestRenderGridCellCount(t *testing.T) {
	out := renderGrid(quiz.GridSpec{Rows: 2, Cols: 3, Shaded: 2, Color: "#ef4444"})
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d rows, want 2", len(lines))
	}
	if got := strings.Count(out, "██"); got != 2 {
		t.Errorf("shaded cells = %d, want 2", got)
	}
	if got := strings.Count(out, "░░"); got != 4 {
		t.Errorf("empty cells = %d, want 4", got)
	}
}

func TestRenderCircleSliceCount(t *testing.T) {
	out := renderCircle(quiz.CircleSpec{Parts: 8, Shaded: 3, Color: "#3b82f6"})
	if got := strings.Count(out, "◉"); got != 3 {
		t.Errorf("shaded slices = %d, want 3", got)
	}
	if got := strings.Count(out, "○"); got != 5 {
		t.Errorf("empty slices = %d, want 5", got)
	}
}

func TestRenderVisualAllVariants(t *testing.T) {
	specs := []quiz.VisualSpec{
		quiz.GridSpec{Rows: 2, Cols: 2, Shaded: 1, Color: "#ef4444"},
		quiz.CircleSpec{Parts: 4, Shaded: 2, Color: "#3b82f6"},
		quiz.TriangleSidesSpec{A: 3, B: 4, C: 5, Color: "#10b981"},
		quiz.TriangleAnglesSpec{Class: quiz.ClassRight, Color: "#ef4444"},
	}
	for _, spec := range specs {
		if renderVisual(spec) == "" {
			t.Errorf("renderVisual(%T) is empty", spec)
		}
	}
	if renderVisual(nil) != "" {
		t.Error("renderVisual(nil) should be empty")
	}
}

func TestRenderTriangleSidesLabels(t *testing.T) {
	out := renderTriangleSides(quiz.TriangleSidesSpec{A: 5, B: 5, C: 7, Color: "#10b981"})
	if !strings.Contains(out, "a=5") || !strings.Contains(out, "b=5") || !strings.Contains(out, "c=7") {
		t.Errorf("side labels missing from output:\n%s", out)
	}
}
