// Package quiz defines the shared data shapes for a multiple-choice
// question: the item itself, its answer choices, and the visual
// specification that accompanies image questions. The package is pure
// data — generation lives in itemgen, play state in player, and all
// rendering in the presentation layers.
package quiz

// ItemType tags whether an item is plain multiple choice or carries a
// visual that the presentation layer must draw.
type ItemType string

const (
	TypeMultipleChoice      ItemType = "mc"
	TypeImageMultipleChoice ItemType = "image-mc"
)

// Text is a displayable string as plain text, math markup, or both.
// At least one field is set on every generated value.
type Text struct {
	Plain string `json:"text,omitempty"`
	TeX   string `json:"tex,omitempty"`
}

// IsZero reports whether neither representation is present.
func (t Text) IsZero() bool {
	return t.Plain == "" && t.TeX == ""
}

// Choice is one answer option. The order of choices within an item is
// not semantically meaningful; the player engine reshuffles them per
// play-through.
type Choice struct {
	Plain string `json:"text,omitempty"`
	TeX   string `json:"tex,omitempty"`
}

// Item is one quiz question.
type Item struct {
	// ID is an opaque identifier, unique within a bank.
	ID string `json:"id"`

	// Type distinguishes plain and image-backed multiple choice.
	Type ItemType `json:"type"`

	// Stem is the question prompt.
	Stem Text `json:"stem"`

	// Choices holds the answer options, length >= 2.
	Choices []Choice `json:"choices"`

	// Correct holds indices into Choices marking the correct answer(s).
	// Every current generator produces exactly one index.
	Correct []int `json:"correct"`

	// Difficulty is a scalar in [0,100] used only for bucket
	// classification by the player engine.
	Difficulty int `json:"difficulty"`

	// Hint is optional scaffolding shown on a wrong answer.
	Hint *Text `json:"hint,omitempty"`

	// Explain is an optional worked solution.
	Explain *Text `json:"explain,omitempty"`

	// Visual is the drawing specification for image items, nil otherwise.
	Visual VisualSpec `json:"visual,omitempty"`
}

// IsCorrect reports whether picking the choice at index idx answers the
// item correctly.
func (it Item) IsCorrect(idx int) bool {
	for _, c := range it.Correct {
		if c == idx {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the item. Choice and correct-index
// slices are copied so the caller can permute them independently.
func (it Item) Clone() Item {
	out := it
	out.Choices = make([]Choice, len(it.Choices))
	copy(out.Choices, it.Choices)
	out.Correct = make([]int, len(it.Correct))
	copy(out.Correct, it.Correct)
	if it.Hint != nil {
		h := *it.Hint
		out.Hint = &h
	}
	if it.Explain != nil {
		e := *it.Explain
		out.Explain = &e
	}
	return out
}
