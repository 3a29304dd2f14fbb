package player

import (
	"errors"
	"testing"

	"github.com/ism7788/math-practice/internal/quiz"
	"github.com/ism7788/math-practice/internal/rng"
)

func testBank(n int) []quiz.Item {
	diffs := []int{35, 35, 70, 70, 92, 92}
	bank := make([]quiz.Item, n)
	for i := range bank {
		bank[i] = quiz.Item{
			ID:   string(rune('a' + i)),
			Type: quiz.TypeMultipleChoice,
			Stem: quiz.Text{Plain: "?"},
			Choices: []quiz.Choice{
				{Plain: "right"}, {Plain: "w1"}, {Plain: "w2"}, {Plain: "w3"},
			},
			Correct:    []int{0},
			Difficulty: diffs[i%len(diffs)],
		}
	}
	return bank
}

func TestNewEmptyBank(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrEmptyBank) {
		t.Fatalf("New(nil) error = %v, want ErrEmptyBank", err)
	}
}

// The shuffle must keep the correct choice identifiable.
func TestShufflePreservesCorrectness(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		e, err := New(testBank(6), WithSource(rng.NewSeeded(seed)))
		if err != nil {
			t.Fatal(err)
		}
		for !e.Finished() {
			it, err := e.Current()
			if err != nil {
				t.Fatal(err)
			}
			if len(it.Correct) != 1 {
				t.Fatalf("item %s has %d correct indices", it.ID, len(it.Correct))
			}
			ci := it.Correct[0]
			if it.Choices[ci].Plain != "right" {
				t.Fatalf("seed %d item %s: correct index %d points at %q", seed, it.ID, ci, it.Choices[ci].Plain)
			}
			if _, err := e.SubmitAnswer(ci); err != nil {
				t.Fatal(err)
			}
			if err := e.Advance(); err != nil {
				t.Fatal(err)
			}
		}
	}
}

// Every item is played exactly once, then the session finishes.
func TestSessionTermination(t *testing.T) {
	e, err := New(testBank(6), WithSource(rng.NewSeeded(9)))
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]int)
	steps := 0
	for !e.Finished() {
		if steps++; steps > 6 {
			t.Fatal("session did not finish after playing every item")
		}
		it, err := e.Current()
		if err != nil {
			t.Fatal(err)
		}
		seen[it.ID]++
		if _, err := e.SubmitAnswer(0); err != nil {
			t.Fatal(err)
		}
		if err := e.Advance(); err != nil {
			t.Fatal(err)
		}
	}

	if len(seen) != 6 {
		t.Errorf("played %d distinct items, want 6", len(seen))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("item %s played %d times", id, n)
		}
	}
}

func TestSubmitErrors(t *testing.T) {
	e, err := New(testBank(2), WithSource(rng.NewSeeded(1)))
	if err != nil {
		t.Fatal(err)
	}

	if err := e.Advance(); !errors.Is(err, ErrNotChecked) {
		t.Errorf("Advance before check: %v, want ErrNotChecked", err)
	}
	if _, err := e.SubmitAnswer(-1); !errors.Is(err, ErrChoiceRange) {
		t.Errorf("SubmitAnswer(-1): %v, want ErrChoiceRange", err)
	}
	if _, err := e.SubmitAnswer(4); !errors.Is(err, ErrChoiceRange) {
		t.Errorf("SubmitAnswer(4): %v, want ErrChoiceRange", err)
	}
	if _, err := e.SubmitAnswer(0); err != nil {
		t.Fatal(err)
	}
	if _, err := e.SubmitAnswer(0); !errors.Is(err, ErrAlreadyChecked) {
		t.Errorf("double submit: %v, want ErrAlreadyChecked", err)
	}
	if _, err := e.Summarize(); !errors.Is(err, ErrNotFinished) {
		t.Errorf("early Summarize: %v, want ErrNotFinished", err)
	}
}

func TestFinishedErrors(t *testing.T) {
	e, err := New(testBank(1), WithSource(rng.NewSeeded(1)))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.SubmitAnswer(0); err != nil {
		t.Fatal(err)
	}
	if err := e.Advance(); err != nil {
		t.Fatal(err)
	}
	if !e.Finished() {
		t.Fatal("session should be finished")
	}
	if _, err := e.Current(); !errors.Is(err, ErrFinished) {
		t.Errorf("Current after finish: %v, want ErrFinished", err)
	}
	if _, err := e.SubmitAnswer(0); !errors.Is(err, ErrFinished) {
		t.Errorf("SubmitAnswer after finish: %v, want ErrFinished", err)
	}
	if err := e.Advance(); !errors.Is(err, ErrFinished) {
		t.Errorf("Advance after finish: %v, want ErrFinished", err)
	}
}

// A fresh session always begins with an easy item: the score starts at
// zero and selection filters to the matching tier.
func TestFirstItemIsEasy(t *testing.T) {
	for seed := uint64(1); seed <= 30; seed++ {
		e, err := New(testBank(6), WithSource(rng.NewSeeded(seed)))
		if err != nil {
			t.Fatal(err)
		}
		it, err := e.Current()
		if err != nil {
			t.Fatal(err)
		}
		if BucketFor(it.Difficulty) != BucketEasy {
			t.Errorf("seed %d: first item difficulty %d, want easy tier", seed, it.Difficulty)
		}
	}
}

// Selection steers toward the score's tier while any unasked item in
// that tier remains.
func TestSelectionFollowsScore(t *testing.T) {
	e, err := New(testBank(6), WithSource(rng.NewSeeded(4)))
	if err != nil {
		t.Fatal(err)
	}
	for !e.Finished() {
		it, err := e.Current()
		if err != nil {
			t.Fatal(err)
		}

		tier := BucketFor(e.Score())
		unaskedInTier := 0
		for i := range e.bank {
			if !e.asked[i] && BucketFor(e.bank[i].Difficulty) == tier {
				unaskedInTier++
			}
		}
		if unaskedInTier > 0 && BucketFor(it.Difficulty) != tier {
			t.Errorf("score %d (tier %v) but got item difficulty %d with %d in-tier items left",
				e.Score(), tier, it.Difficulty, unaskedInTier)
		}

		if _, err := e.SubmitAnswer(it.Correct[0]); err != nil {
			t.Fatal(err)
		}
		if err := e.Advance(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScoreTracksAnswers(t *testing.T) {
	e, err := New(testBank(6), WithSource(rng.NewSeeded(2)))
	if err != nil {
		t.Fatal(err)
	}

	it, _ := e.Current()
	tier := BucketFor(it.Difficulty)
	wrong := (it.Correct[0] + 1) % len(it.Choices)

	ok, err := e.SubmitAnswer(wrong)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("wrong pick reported correct")
	}
	if want := applyAnswer(0, tier, false); e.Score() != want {
		t.Errorf("score after wrong answer = %d, want %d", e.Score(), want)
	}
}

func TestSummary(t *testing.T) {
	e, err := New(testBank(6), WithSource(rng.NewSeeded(12)))
	if err != nil {
		t.Fatal(err)
	}

	answers := 0
	for !e.Finished() {
		it, _ := e.Current()
		pick := it.Correct[0]
		if answers%2 == 1 {
			pick = (pick + 1) % len(it.Choices)
		}
		if _, err := e.SubmitAnswer(pick); err != nil {
			t.Fatal(err)
		}
		if err := e.Advance(); err != nil {
			t.Fatal(err)
		}
		answers++
	}

	sum, err := e.Summarize()
	if err != nil {
		t.Fatal(err)
	}
	if len(sum.History) != 6 {
		t.Errorf("history length = %d, want 6", len(sum.History))
	}
	if sum.Score != e.Score() {
		t.Errorf("summary score = %d, engine score = %d", sum.Score, e.Score())
	}

	total, correct := 0, 0
	for _, st := range sum.ByTier {
		total += st.Total
		correct += st.Correct
	}
	if total != 6 {
		t.Errorf("tier totals sum to %d, want 6", total)
	}
	if correct != 3 {
		t.Errorf("tier corrects sum to %d, want 3", correct)
	}
}

func TestSeededSessionsMatch(t *testing.T) {
	run := func() []string {
		e, err := New(testBank(6), WithSource(rng.NewSeeded(77)))
		if err != nil {
			t.Fatal(err)
		}
		var order []string
		for !e.Finished() {
			it, _ := e.Current()
			order = append(order, it.ID)
			if _, err := e.SubmitAnswer(0); err != nil {
				t.Fatal(err)
			}
			if err := e.Advance(); err != nil {
				t.Fatal(err)
			}
		}
		return order
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("order diverged at %d: %v vs %v", i, a, b)
		}
	}
}
