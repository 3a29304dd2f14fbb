package itemgen

import (
	"fmt"

	"github.com/ism7788/math-practice/internal/quiz"
)

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// simplify reduces n/d to lowest terms.
func simplify(n, d int) (int, int) {
	g := gcd(n, d)
	return n / g, d / g
}

// equivalentFractions reports whether n/d and a/b represent the same
// value, by cross-multiplication. This is the equivalence check that
// keeps distractors honest: no two choices on a fraction item may be
// secretly equal.
func equivalentFractions(n, d, a, b int) bool {
	return n*b == d*a
}

func fracTeX(n, d int) string {
	return fmt.Sprintf(`\frac{%d}{%d}`, n, d)
}

// fracChoice builds a choice carrying both the plain and TeX forms of
// n/d, so text and terminal surfaces need no markup parsing.
func fracChoice(n, d int) quiz.Choice {
	return quiz.Choice{
		Plain: fmt.Sprintf("%d/%d", n, d),
		TeX:   fracTeX(n, d),
	}
}

func fracKey(n, d int) string {
	return fmt.Sprintf("%d/%d", n, d)
}

// isTriangle reports whether side lengths a, b, c satisfy the triangle
// inequality.
func isTriangle(a, b, c int) bool {
	return a+b > c && a+c > b && b+c > a
}
