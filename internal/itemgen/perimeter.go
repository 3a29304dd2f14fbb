package itemgen

import (
	"fmt"

	"github.com/ism7788/math-practice/internal/quiz"
	"github.com/ism7788/math-practice/internal/rng"
)

const perimeterBankSize = 12

// BuildPerimeterBank generates perimeter items alternating rectangles
// and triangles across the level cycle.
func BuildPerimeterBank(src rng.Source) ([]quiz.Item, error) {
	items := make([]quiz.Item, 0, perimeterBankSize)
	for i, lv := range levelCycle {
		rect, err := rectanglePerimeterItem(src, lv, i*2)
		if err != nil {
			return nil, err
		}
		tri, err := trianglePerimeterItem(src, lv, i*2+1)
		if err != nil {
			return nil, err
		}
		items = append(items, rect, tri)
	}
	return items, nil
}

// perimeterChoices assembles correct plus three distractors, dropping
// distractor candidates that collide with the correct value or each
// other and topping up with small random offsets.
func perimeterChoices(src rng.Source, correct int, candidates []int) ([]quiz.Choice, error) {
	used := map[int]bool{correct: true}
	out := []quiz.Choice{{Plain: fmt.Sprintf("%d", correct)}}
	for _, v := range candidates {
		if len(out) == 4 {
			break
		}
		if v < 1 || used[v] {
			continue
		}
		used[v] = true
		out = append(out, quiz.Choice{Plain: fmt.Sprintf("%d", v)})
	}
	for attempts := 0; len(out) < 4; attempts++ {
		if attempts >= maxSampleAttempts {
			return nil, fmt.Errorf("perimeter distractors near %d: %w", correct, errSamplingExhausted)
		}
		v := correct + rng.Between(src, -6, 6)
		if v < 1 || used[v] {
			continue
		}
		used[v] = true
		out = append(out, quiz.Choice{Plain: fmt.Sprintf("%d", v)})
	}
	return out, nil
}

func rectanglePerimeterItem(src rng.Source, lv level, idx int) (quiz.Item, error) {
	var l, w int
	switch lv {
	case levelEasy:
		l = rng.Between(src, 2, 12)
		w = rng.Between(src, 2, 12)
	case levelMedium:
		l = rng.Between(src, 5, 18)
		w = rng.Between(src, 5, 18)
	default:
		l = rng.Between(src, 10, 25)
		w = rng.Between(src, 8, 20)
	}
	p := 2 * (l + w)

	// Candidates mirror the usual slips: adding only one pair of sides,
	// doubling the wrong dimension, or miscounting by two.
	choices, err := perimeterChoices(src, p, []int{2*l + w, l + 2*w, p + 2})
	if err != nil {
		return quiz.Item{}, err
	}

	return quiz.Item{
		ID:   fmt.Sprintf("peri-rect-%d", idx),
		Type: quiz.TypeMultipleChoice,
		Stem: quiz.Text{
			Plain: fmt.Sprintf("A rectangle is %d units long and %d units wide. What is its perimeter?", l, w),
		},
		Choices:    choices,
		Correct:    []int{0},
		Difficulty: pickDifficulty(lv, 35, 65, 90),
		Hint: &quiz.Text{
			TeX: `P=2(L+W)`,
		},
		Explain: &quiz.Text{
			TeX: fmt.Sprintf(`P=2(%d+%d)=%d.`, l, w, p),
		},
	}, nil
}

func samplePerimeterTriangle(src rng.Source, lv level) (a, b, c int, err error) {
	lo, hi := 2, 10
	switch lv {
	case levelMedium:
		lo, hi = 4, 14
	case levelHard:
		lo, hi = 6, 20
	}
	for attempts := 0; ; attempts++ {
		if attempts >= maxSampleAttempts {
			return 0, 0, 0, fmt.Errorf("perimeter triangle: %w", errSamplingExhausted)
		}
		a = rng.Between(src, lo, hi)
		b = rng.Between(src, lo, hi)
		c = rng.Between(src, lo, hi)
		if isTriangle(a, b, c) {
			return a, b, c, nil
		}
	}
}

func trianglePerimeterItem(src rng.Source, lv level, idx int) (quiz.Item, error) {
	a, b, c, err := samplePerimeterTriangle(src, lv)
	if err != nil {
		return quiz.Item{}, err
	}
	p := a + b + c

	choices, err := perimeterChoices(src, p, []int{p + 2, p - 1, a + 2*b})
	if err != nil {
		return quiz.Item{}, err
	}

	return quiz.Item{
		ID:   fmt.Sprintf("peri-tri-%d", idx),
		Type: quiz.TypeMultipleChoice,
		Stem: quiz.Text{
			Plain: fmt.Sprintf("A triangle has sides %d, %d, and %d units. What is its perimeter?", a, b, c),
		},
		Choices:    choices,
		Correct:    []int{0},
		Difficulty: pickDifficulty(lv, 40, 70, 95),
		Hint: &quiz.Text{
			Plain: "Add all three side lengths.",
		},
		Explain: &quiz.Text{
			TeX: fmt.Sprintf(`P=%d+%d+%d=%d.`, a, b, c, p),
		},
	}, nil
}
