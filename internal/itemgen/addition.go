package itemgen

import (
	"fmt"

	"github.com/ism7788/math-practice/internal/quiz"
	"github.com/ism7788/math-practice/internal/rng"
)

const additionBankSize = 12

// BuildAdditionBank generates two-digit addition items within 100: four
// easy sums with no regrouping, then four medium and four hard sums
// that force a carry in the ones column.
func BuildAdditionBank(src rng.Source) ([]quiz.Item, error) {
	items := make([]quiz.Item, 0, additionBankSize)
	for i := 0; i < 4; i++ {
		it, err := additionItem(src, levelEasy, len(items))
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	for i := 0; i < 4; i++ {
		it, err := additionItem(src, levelMedium, len(items))
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	for i := 0; i < 4; i++ {
		it, err := additionItem(src, levelHard, len(items))
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func carries(a, b int) bool {
	return a%10+b%10 >= 10
}

// sampleAddends draws a pair of addends for the level: easy pairs never
// regroup and stay at or below 60; medium and hard pairs always regroup
// and stay within 100.
func sampleAddends(src rng.Source, lv level) (a, b int, err error) {
	for attempts := 0; ; attempts++ {
		if attempts >= maxSampleAttempts {
			return 0, 0, fmt.Errorf("addition addends: %w", errSamplingExhausted)
		}

		switch lv {
		case levelEasy:
			a = rng.Between(src, 10, 29)
			b = rng.Between(src, 10, 29)
			if carries(a, b) || a+b > 60 {
				continue
			}
		case levelMedium:
			a = rng.Between(src, 20, 59)
			b = rng.Between(src, 20, 59)
			if !carries(a, b) || a+b > 100 {
				continue
			}
		default:
			a = rng.Between(src, 30, 79)
			b = rng.Between(src, 20, 69)
			if !carries(a, b) || a+b > 100 {
				continue
			}
		}
		return a, b, nil
	}
}

// additionDistractors builds three wrong sums around the correct one.
// The fixed candidate list covers the classic slips first (off by one,
// off by ten, dropped or doubled carry); random offsets only top up
// when the fixed list runs dry.
func additionDistractors(src rng.Source, correct int) ([]quiz.Choice, error) {
	used := map[int]bool{correct: true}
	var out []quiz.Choice
	for _, v := range []int{correct + 1, correct - 1, correct + 10, correct - 10, correct + 9, correct - 9} {
		if len(out) == 3 {
			break
		}
		if v < 0 || used[v] {
			continue
		}
		used[v] = true
		out = append(out, quiz.Choice{Plain: fmt.Sprintf("%d", v)})
	}
	for attempts := 0; len(out) < 3; attempts++ {
		if attempts >= maxSampleAttempts {
			return nil, fmt.Errorf("addition distractors near %d: %w", correct, errSamplingExhausted)
		}
		v := correct + rng.Between(src, -12, 12)
		if v < 0 || used[v] {
			continue
		}
		used[v] = true
		out = append(out, quiz.Choice{Plain: fmt.Sprintf("%d", v)})
	}
	return out, nil
}

func additionItem(src rng.Source, lv level, idx int) (quiz.Item, error) {
	a, b, err := sampleAddends(src, lv)
	if err != nil {
		return quiz.Item{}, err
	}
	sum := a + b

	distractors, err := additionDistractors(src, sum)
	if err != nil {
		return quiz.Item{}, err
	}

	hint := &quiz.Text{Plain: "Add the ones, then add the tens."}
	if lv != levelEasy {
		hint = &quiz.Text{Plain: "Add the ones first. If they make 10 or more, carry 1 to the tens."}
	}

	return quiz.Item{
		ID:   fmt.Sprintf("add-%d", idx),
		Type: quiz.TypeMultipleChoice,
		Stem: quiz.Text{
			Plain: fmt.Sprintf("%d + %d = ?", a, b),
			TeX:   fmt.Sprintf(`%d+%d=\ ?`, a, b),
		},
		Choices:    append([]quiz.Choice{{Plain: fmt.Sprintf("%d", sum)}}, distractors...),
		Correct:    []int{0},
		Difficulty: pickDifficulty(lv, 35, 70, 92),
		Hint:       hint,
		Explain: &quiz.Text{
			TeX: fmt.Sprintf(`%d+%d=%d.`, a, b, sum),
		},
	}, nil
}
