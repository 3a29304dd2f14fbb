// Package player implements the adaptive quiz session: a bank of items
// is played through exactly once, a smart score in [0, 100] rises and
// falls with each answer, and the next item is steered toward the tier
// matching the current score.
package player

import (
	"errors"
	"sort"

	"github.com/ism7788/math-practice/internal/quiz"
	"github.com/ism7788/math-practice/internal/rng"
)

var (
	ErrEmptyBank      = errors.New("player: empty bank")
	ErrFinished       = errors.New("player: session finished")
	ErrNotFinished    = errors.New("player: session not finished")
	ErrAlreadyChecked = errors.New("player: answer already checked")
	ErrNotChecked     = errors.New("player: no answer checked")
	ErrChoiceRange    = errors.New("player: choice index out of range")
)

// Attempt records one answered item.
type Attempt struct {
	Item    quiz.Item
	Picked  int
	Correct bool
}

// BucketStats counts answers within one tier.
type BucketStats struct {
	Total   int
	Correct int
}

// Summary is the end-of-session report.
type Summary struct {
	Score   int
	ByTier  map[Bucket]BucketStats
	History []Attempt
}

// Engine runs one session over a bank. It is not safe for concurrent
// use; drive it from a single goroutine.
type Engine struct {
	bank    []quiz.Item
	src     rng.Source
	score   int
	asked   map[int]bool
	current int
	checked bool
	history []Attempt
}

// Option configures a new Engine.
type Option func(*Engine)

// WithSource substitutes the random source. Seeded sources make
// sessions reproducible.
func WithSource(src rng.Source) Option {
	return func(e *Engine) { e.src = src }
}

// New starts a session over bank. Each item's choices are shuffled
// once here, with correct indices remapped, so callers can hand in
// banks whose correct answer always sits at index zero.
func New(bank []quiz.Item, opts ...Option) (*Engine, error) {
	if len(bank) == 0 {
		return nil, ErrEmptyBank
	}

	e := &Engine{
		src:   rng.New(),
		asked: make(map[int]bool),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.bank = make([]quiz.Item, len(bank))
	for i, it := range bank {
		e.bank[i] = shuffleChoices(e.src, it)
	}
	e.current = e.pickNext()
	return e, nil
}

// shuffleChoices returns a copy of it with its choices in random order
// and the correct indices remapped and sorted.
func shuffleChoices(src rng.Source, it quiz.Item) quiz.Item {
	out := it.Clone()

	idxs := make([]int, len(out.Choices))
	for i := range idxs {
		idxs[i] = i
	}
	for i := len(idxs) - 1; i > 0; i-- {
		j := rng.Index(src, i+1)
		idxs[i], idxs[j] = idxs[j], idxs[i]
	}

	remap := make(map[int]int, len(idxs))
	shuffled := make([]quiz.Choice, len(idxs))
	for newI, oldI := range idxs {
		remap[oldI] = newI
		shuffled[newI] = out.Choices[oldI]
	}
	out.Choices = shuffled

	for i, ci := range out.Correct {
		out.Correct[i] = remap[ci]
	}
	sort.Ints(out.Correct)
	return out
}

// pickNext selects the next unasked item: prefer items whose tier
// matches the current score's tier, otherwise any unasked item.
// Returns -1 when the bank is exhausted.
func (e *Engine) pickNext() int {
	var remaining []int
	for i := range e.bank {
		if !e.asked[i] {
			remaining = append(remaining, i)
		}
	}
	if len(remaining) == 0 {
		return -1
	}

	tier := BucketFor(e.score)
	var inTier []int
	for _, i := range remaining {
		if BucketFor(e.bank[i].Difficulty) == tier {
			inTier = append(inTier, i)
		}
	}

	pool := remaining
	if len(inTier) > 0 {
		pool = inTier
	}
	return rng.Pick(e.src, pool)
}

// Finished reports whether every item has been played.
func (e *Engine) Finished() bool { return e.current < 0 }

// Score returns the current smart score.
func (e *Engine) Score() int { return e.score }

// Checked reports whether the current item's answer has been checked.
func (e *Engine) Checked() bool { return e.checked }

// Current returns the item in play.
func (e *Engine) Current() (quiz.Item, error) {
	if e.Finished() {
		return quiz.Item{}, ErrFinished
	}
	return e.bank[e.current], nil
}

// SubmitAnswer checks the picked choice against the current item and
// folds the result into the score. A second submission on the same
// item is rejected.
func (e *Engine) SubmitAnswer(picked int) (bool, error) {
	if e.Finished() {
		return false, ErrFinished
	}
	if e.checked {
		return false, ErrAlreadyChecked
	}
	it := e.bank[e.current]
	if picked < 0 || picked >= len(it.Choices) {
		return false, ErrChoiceRange
	}

	correct := it.IsCorrect(picked)
	e.history = append(e.history, Attempt{Item: it, Picked: picked, Correct: correct})
	e.score = applyAnswer(e.score, BucketFor(it.Difficulty), correct)
	e.checked = true
	return correct, nil
}

// Advance moves to the next item. The current item's answer must have
// been checked first.
func (e *Engine) Advance() error {
	if e.Finished() {
		return ErrFinished
	}
	if !e.checked {
		return ErrNotChecked
	}
	e.asked[e.current] = true
	e.checked = false
	e.current = e.pickNext()
	return nil
}

// History returns the attempts so far, in order.
func (e *Engine) History() []Attempt {
	out := make([]Attempt, len(e.history))
	copy(out, e.history)
	return out
}

// Summarize builds the end-of-session report. The session must be
// finished.
func (e *Engine) Summarize() (Summary, error) {
	if !e.Finished() {
		return Summary{}, ErrNotFinished
	}

	byTier := make(map[Bucket]BucketStats)
	for _, a := range e.history {
		tier := BucketFor(a.Item.Difficulty)
		st := byTier[tier]
		st.Total++
		if a.Correct {
			st.Correct++
		}
		byTier[tier] = st
	}
	return Summary{Score: e.score, ByTier: byTier, History: e.History()}, nil
}
