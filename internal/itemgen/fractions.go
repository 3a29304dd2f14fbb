package itemgen

import (
	"fmt"

	"github.com/ism7788/math-practice/internal/quiz"
	"github.com/ism7788/math-practice/internal/rng"
)

// fractionsBankSize is the number of items in an equivalent-fractions
// bank: the six-step level cycle across three item families, sliced.
const fractionsBankSize = 12

// BuildFractionsBank generates a fresh equivalent-fractions bank mixing
// symbolic items with shaded-grid and shaded-circle visuals.
func BuildFractionsBank(src rng.Source) ([]quiz.Item, error) {
	var items []quiz.Item
	for i, lv := range levelCycle {
		text, err := equivalentTextItem(src, lv, i)
		if err != nil {
			return nil, err
		}
		grid, err := shadedGridItem(src, lv, i)
		if err != nil {
			return nil, err
		}
		circle, err := shadedCircleItem(src, lv, i)
		if err != nil {
			return nil, err
		}
		items = append(items, text, grid, circle)
	}
	return items[:fractionsBankSize], nil
}

// equivalentTextItem asks which fraction is equivalent to a base
// fraction a/b. The correct choice is a/b scaled by k; distractors are
// near-miss perturbations filtered through the equivalence check so
// none of them reduces back to a/b.
func equivalentTextItem(src rng.Source, lv level, idx int) (quiz.Item, error) {
	var a, b int
	switch lv {
	case levelEasy:
		a = rng.Between(src, 1, 4)
		b = rng.Between(src, a+1, 8)
	case levelMedium:
		a = rng.Between(src, 2, 8)
		b = rng.Between(src, a+2, 12)
	default:
		a = rng.Between(src, 3, 12)
		b = rng.Between(src, a+2, 18)
	}
	a, b = simplify(a, b)

	k := rng.Between(src, 2, 5)
	if lv == levelHard {
		k = rng.Between(src, 4, 9)
	}
	correct := fracChoice(a*k, b*k)

	used := map[string]bool{fracKey(a*k, b*k): true}
	var distractors []quiz.Choice
	for attempts := 0; len(distractors) < 3; attempts++ {
		if attempts >= maxSampleAttempts {
			return quiz.Item{}, fmt.Errorf("fraction distractors for %d/%d: %w", a, b, errSamplingExhausted)
		}

		n, d := a*k, b*k
		switch rng.Between(src, 1, 4) {
		case 1:
			n = max(1, n+rng.Between(src, 1, max(2, k)))
		case 2:
			d = max(2, d+rng.Between(src, 1, max(2, k)))
		case 3:
			n, d = a*(k+1), b*k
		default:
			n, d = a*k, b*(k+1)
		}

		sn, sd := simplify(n, d)
		key := fracKey(sn, sd)
		if equivalentFractions(sn, sd, a, b) || used[key] {
			continue
		}
		used[key] = true
		distractors = append(distractors, fracChoice(sn, sd))
	}

	return quiz.Item{
		ID:   fmt.Sprintf("eq-text-%d", idx),
		Type: quiz.TypeMultipleChoice,
		Stem: quiz.Text{
			Plain: fmt.Sprintf("Which fraction is equivalent to %d/%d?", a, b),
			TeX:   fmt.Sprintf(`\text{Which fraction is equivalent to } %s\,?`, fracTeX(a, b)),
		},
		Choices:    append([]quiz.Choice{correct}, distractors...),
		Correct:    []int{0},
		Difficulty: pickDifficulty(lv, 40, 70, 95),
		Hint: &quiz.Text{
			Plain: "Multiply numerator and denominator by the SAME number.",
		},
		Explain: &quiz.Text{
			TeX: fmt.Sprintf(`\text{Multiply top and bottom by } %d:\; %s=%s.`, k, fracTeX(a, b), fracTeX(a*k, b*k)),
		},
	}, nil
}

// shadedGridItem derives a fraction from shaded cells in a grid.
func shadedGridItem(src rng.Source, lv level, idx int) (quiz.Item, error) {
	var rows, cols int
	switch lv {
	case levelEasy:
		rows, cols = 2, 2
	case levelMedium:
		rows, cols = 3, 4
	default:
		rows, cols = rng.Between(src, 3, 4), rng.Between(src, 4, 5)
	}
	total := rows * cols
	shaded := rng.Between(src, 1, total-1)
	n, d := simplify(shaded, total)

	distractors, err := uniqueFractionDistractors(src, n, d, 3)
	if err != nil {
		return quiz.Item{}, err
	}

	return quiz.Item{
		ID:     fmt.Sprintf("eq-grid-%d", idx),
		Type:   quiz.TypeImageMultipleChoice,
		Visual: quiz.GridSpec{Rows: rows, Cols: cols, Shaded: shaded, Color: rng.Pick(src, visualColors)},
		Stem: quiz.Text{
			Plain: "What fraction of the grid is shaded?",
		},
		Choices:    append([]quiz.Choice{fracChoice(n, d)}, distractors...),
		Correct:    []int{0},
		Difficulty: pickDifficulty(lv, 30, 60, 90),
		Hint: &quiz.Text{
			Plain: "Count shaded squares (numerator) and total squares (denominator).",
		},
		Explain: &quiz.Text{
			TeX: fmt.Sprintf(`\text{Shaded}=%d\,,\; \text{total}=%d\Rightarrow %s=%s.`, shaded, total, fracTeX(shaded, total), fracTeX(n, d)),
		},
	}, nil
}

// shadedCircleItem derives a fraction from shaded slices of a circle.
func shadedCircleItem(src rng.Source, lv level, idx int) (quiz.Item, error) {
	var parts int
	switch lv {
	case levelEasy:
		parts = 2
	case levelMedium:
		parts = 4
	default:
		parts = rng.Pick(src, []int{6, 8, 10, 12})
	}
	shaded := rng.Between(src, 1, parts-1)
	n, d := simplify(shaded, parts)

	distractors, err := uniqueFractionDistractors(src, n, d, 3)
	if err != nil {
		return quiz.Item{}, err
	}

	return quiz.Item{
		ID:     fmt.Sprintf("eq-circle-%d", idx),
		Type:   quiz.TypeImageMultipleChoice,
		Visual: quiz.CircleSpec{Parts: parts, Shaded: shaded, Color: rng.Pick(src, visualColors)},
		Stem: quiz.Text{
			Plain: "What fraction of the circle is shaded?",
		},
		Choices:    append([]quiz.Choice{fracChoice(n, d)}, distractors...),
		Correct:    []int{0},
		Difficulty: pickDifficulty(lv, 35, 65, 92),
		Hint: &quiz.Text{
			TeX: fmt.Sprintf(`\text{Each slice is } %s\text{. Count shaded slices.}`, fracTeX(1, parts)),
		},
		Explain: &quiz.Text{
			TeX: fmt.Sprintf(`\text{Shaded}=%d\,,\; \text{parts}=%d\Rightarrow %s.`, shaded, parts, fracTeX(n, d)),
		},
	}, nil
}

// uniqueFractionDistractors produces count distractors near n/d by
// perturbing numerator and denominator with small offsets. Candidates
// are reduced to lowest terms, then rejected when equivalent to n/d or
// already used, so the resulting choice set is pairwise non-equivalent.
func uniqueFractionDistractors(src rng.Source, n, d, count int) ([]quiz.Choice, error) {
	used := make(map[string]bool)
	var out []quiz.Choice
	for attempts := 0; len(out) < count; attempts++ {
		if attempts >= maxSampleAttempts {
			return nil, fmt.Errorf("distractors near %d/%d: %w", n, d, errSamplingExhausted)
		}

		nn := max(1, n+rng.Between(src, -2, 2))
		dd := max(2, d+rng.Between(src, -2, 2))
		sn, sd := simplify(nn, dd)
		key := fracKey(sn, sd)
		if equivalentFractions(sn, sd, n, d) || used[key] {
			continue
		}
		used[key] = true
		out = append(out, fracChoice(sn, sd))
	}
	return out, nil
}

// pickDifficulty maps a level to its difficulty scalar.
func pickDifficulty(lv level, easy, medium, hard int) int {
	switch lv {
	case levelEasy:
		return easy
	case levelMedium:
		return medium
	default:
		return hard
	}
}
