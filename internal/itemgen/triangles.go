package itemgen

import (
	"fmt"

	"github.com/ism7788/math-practice/internal/quiz"
	"github.com/ism7788/math-practice/internal/rng"
)

// VisualPolicy controls which triangle items get a geometric visual.
type VisualPolicy string

const (
	VisualsNever    VisualPolicy = "never"
	VisualsAlways   VisualPolicy = "always"
	VisualsMediumUp VisualPolicy = "medium+"
)

// TriangleOptions configures the triangle-classification generator.
type TriangleOptions struct {
	// Count is the total number of items to generate.
	Count int
	// MinSide and MaxSide bound sampled side lengths.
	MinSide int
	MaxSide int
	// SidesMix is the probability of a sides item; the remainder are
	// angles items.
	SidesMix float64
	// Visuals gates geometric visuals by level.
	Visuals VisualPolicy
}

// DefaultTriangleOptions returns the documented defaults.
func DefaultTriangleOptions() TriangleOptions {
	return TriangleOptions{
		Count:    12,
		MinSide:  2,
		MaxSide:  12,
		SidesMix: 0.5,
		Visuals:  VisualsMediumUp,
	}
}

// Validate rejects option sets whose sampling space is empty. The
// generator's retry loops rely on this: an invalid range would
// otherwise spin until the attempt bound trips.
func (o TriangleOptions) Validate() error {
	if o.Count < 1 {
		return fmt.Errorf("triangle options: count must be >= 1, got %d", o.Count)
	}
	if o.MinSide < 1 {
		return fmt.Errorf("triangle options: minSide must be >= 1, got %d", o.MinSide)
	}
	if o.MaxSide < o.MinSide+2 {
		return fmt.Errorf("triangle options: maxSide must be at least minSide+2 (got min %d, max %d)", o.MinSide, o.MaxSide)
	}
	if o.SidesMix < 0 || o.SidesMix > 1 {
		return fmt.Errorf("triangle options: sides mix must be in [0,1], got %v", o.SidesMix)
	}
	switch o.Visuals {
	case VisualsNever, VisualsAlways, VisualsMediumUp:
	default:
		return fmt.Errorf("triangle options: unknown visual policy %q", o.Visuals)
	}
	return nil
}

func (o TriangleOptions) visualFor(lv level) bool {
	switch o.Visuals {
	case VisualsAlways:
		return true
	case VisualsNever:
		return false
	default:
		return lv != levelEasy
	}
}

type sideClass int

const (
	sideEquilateral sideClass = iota
	sideIsosceles
	sideScalene
)

var sideLabels = []string{"Equilateral", "Isosceles", "Scalene"}

type angleClass int

const (
	angleAcute angleClass = iota
	angleRight
	angleObtuse
)

var angleLabels = []string{"Acute", "Right", "Obtuse"}

// BuildTrianglesBank generates a classification bank mixing
// classify-by-sides and classify-by-angles items per opts.
func BuildTrianglesBank(src rng.Source, opts TriangleOptions) ([]quiz.Item, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	items := make([]quiz.Item, 0, opts.Count)
	for i := 0; len(items) < opts.Count; i++ {
		lv := levelCycle[i%len(levelCycle)]
		var it quiz.Item
		var err error
		if src.Float64() < opts.SidesMix {
			it, err = sidesItem(src, opts, lv, i)
		} else {
			it, err = anglesItem(src, opts, lv, i)
		}
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// sampleSides draws a triangle of a chosen side class within the
// configured bounds, resampling until the triangle inequality holds.
func sampleSides(src rng.Source, opts TriangleOptions, lv level) (a, b, c int, class sideClass, err error) {
	classes := []sideClass{sideEquilateral, sideIsosceles, sideScalene}
	if lv != levelEasy {
		classes = []sideClass{sideIsosceles, sideScalene, sideEquilateral}
	}

	for attempts := 0; ; attempts++ {
		if attempts >= maxSampleAttempts {
			return 0, 0, 0, 0, fmt.Errorf("triangle sides: %w", errSamplingExhausted)
		}

		class = rng.Pick(src, classes)
		switch class {
		case sideEquilateral:
			hi := min(opts.MaxSide, 8)
			if hi < opts.MinSide {
				hi = opts.MinSide
			}
			a = rng.Between(src, opts.MinSide, hi)
			b, c = a, a

		case sideIsosceles:
			a = rng.Between(src, opts.MinSide, opts.MaxSide-1)
			b = a
			c = rng.Between(src, max(opts.MinSide, a-1), min(opts.MaxSide, a+a-1))
			if c == a {
				// Keep the pair distinct from the base; a-1 can collide
				// with a at the lower bound, so step up instead.
				if a-1 >= opts.MinSide {
					c = a - 1
				} else {
					c = a + 1
				}
			}

		default:
			a = rng.Between(src, opts.MinSide, opts.MaxSide)
			b = rng.Between(src, opts.MinSide, opts.MaxSide)
			c = rng.Between(src, opts.MinSide, opts.MaxSide)
			if a == b || a == c || b == c {
				continue
			}
		}

		if isTriangle(a, b, c) {
			return a, b, c, class, nil
		}
	}
}

func sidesItem(src rng.Source, opts TriangleOptions, lv level, idx int) (quiz.Item, error) {
	a, b, c, class, err := sampleSides(src, opts, lv)
	if err != nil {
		return quiz.Item{}, err
	}

	useVisual := opts.visualFor(lv)
	stem := quiz.Text{Plain: fmt.Sprintf("Classify the triangle with side lengths %d, %d, and %d.", a, b, c)}
	var visual quiz.VisualSpec
	if useVisual {
		stem = quiz.Text{Plain: "Classify the triangle by its sides."}
		visual = quiz.TriangleSidesSpec{A: a, B: b, C: c, Color: rng.Pick(src, visualColors)}
	}

	choices := make([]quiz.Choice, len(sideLabels))
	for i, label := range sideLabels {
		choices[i] = quiz.Choice{Plain: label}
	}

	return quiz.Item{
		ID:         fmt.Sprintf("tri-sides-%d", idx),
		Type:       quiz.TypeMultipleChoice,
		Visual:     visual,
		Stem:       stem,
		Choices:    choices,
		Correct:    []int{int(class)},
		Difficulty: pickDifficulty(lv, 35, 65, 92),
		Hint: &quiz.Text{
			Plain: "Equilateral: all equal. Isosceles: two equal. Scalene: all different.",
		},
		Explain: &quiz.Text{
			Plain: fmt.Sprintf("Sides %d, %d, %d -> %s.", a, b, c, sideLabels[class]),
		},
	}, nil
}

// sampleAngles draws three angles summing to 180 for a chosen angle
// class. Acute draws are rejected when a degenerate or non-acute
// combination comes up.
func sampleAngles(src rng.Source, lv level) (a, b, c int, class angleClass, err error) {
	classes := []angleClass{angleRight, angleAcute, angleObtuse}
	if lv != levelEasy {
		classes = []angleClass{angleAcute, angleObtuse, angleRight}
	}

	for attempts := 0; ; attempts++ {
		if attempts >= maxSampleAttempts {
			return 0, 0, 0, 0, fmt.Errorf("triangle angles: %w", errSamplingExhausted)
		}

		class = rng.Pick(src, classes)
		switch class {
		case angleRight:
			x := rng.Between(src, 20, 70)
			y := 90 - x
			switch rng.Between(src, 0, 2) {
			case 0:
				a, b, c = 90, x, y
			case 1:
				a, b, c = x, 90, y
			default:
				a, b, c = x, y, 90
			}

		case angleAcute:
			a = rng.Between(src, 40, 80)
			b = rng.Between(src, 40, 80)
			c = 180 - a - b
			if c <= 20 || a >= 90 || b >= 90 || c >= 90 {
				continue
			}

		default:
			big := rng.Between(src, 91, 120)
			rest := 180 - big
			x := rng.Between(src, 30, rest-30)
			a, b, c = big, x, rest-x
		}

		return a, b, c, class, nil
	}
}

func anglesItem(src rng.Source, opts TriangleOptions, lv level, idx int) (quiz.Item, error) {
	a, b, c, class, err := sampleAngles(src, lv)
	if err != nil {
		return quiz.Item{}, err
	}

	useVisual := opts.visualFor(lv)
	stem := quiz.Text{Plain: fmt.Sprintf("Classify the triangle with angles %d°, %d°, and %d°.", a, b, c)}
	var visual quiz.VisualSpec
	if useVisual {
		stem = quiz.Text{Plain: "Classify the triangle by its angles."}
		visual = quiz.TriangleAnglesSpec{Class: angleVisualClass(class), Color: rng.Pick(src, visualColors)}
	}

	choices := make([]quiz.Choice, len(angleLabels))
	for i, label := range angleLabels {
		choices[i] = quiz.Choice{Plain: label}
	}

	return quiz.Item{
		ID:         fmt.Sprintf("tri-angles-%d", idx),
		Type:       quiz.TypeMultipleChoice,
		Visual:     visual,
		Stem:       stem,
		Choices:    choices,
		Correct:    []int{int(class)},
		Difficulty: pickDifficulty(lv, 35, 65, 92),
		Hint: &quiz.Text{
			Plain: "Acute: all < 90°. Right: one = 90°. Obtuse: one > 90°.",
		},
		Explain: &quiz.Text{
			Plain: fmt.Sprintf("Angles %d°, %d°, %d° -> %s.", a, b, c, angleLabels[class]),
		},
	}, nil
}

func angleVisualClass(c angleClass) quiz.TriangleClass {
	switch c {
	case angleRight:
		return quiz.ClassRight
	case angleObtuse:
		return quiz.ClassObtuse
	default:
		return quiz.ClassAcute
	}
}
