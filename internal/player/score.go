package player

import "math"

// Bucket is a difficulty tier. Both item difficulties and the running
// score map onto the same three tiers, which is what steers item
// selection toward the player's current level.
type Bucket int

const (
	BucketEasy Bucket = iota
	BucketMedium
	BucketHard
)

// Label returns the tier's display label.
func (b Bucket) Label() string {
	switch b {
	case BucketEasy:
		return "EASY QUESTION"
	case BucketMedium:
		return "MEDIUM QUESTION"
	default:
		return "HARD QUESTION"
	}
}

func (b Bucket) String() string {
	switch b {
	case BucketEasy:
		return "easy"
	case BucketMedium:
		return "medium"
	default:
		return "hard"
	}
}

// BucketFor maps a difficulty or score in [0, 100] to its tier.
func BucketFor(v int) Bucket {
	switch {
	case v <= 50:
		return BucketEasy
	case v <= 90:
		return BucketMedium
	default:
		return BucketHard
	}
}

// gainFor returns the score increase for a correct answer on an item
// in bucket b. Gains shrink as the score approaches 100 and are capped
// at 15 per answer.
func gainFor(score int, b Bucket) int {
	rate := 0.25
	switch b {
	case BucketEasy:
		rate = 0.16
	case BucketMedium:
		rate = 0.20
	}
	g := int(math.Ceil(float64(100-score) * rate))
	return min(15, g)
}

// lossFor returns the score decrease for a wrong answer on an item in
// bucket b. Losses scale with the current score, never drop below 4,
// and are capped at 30. Harder items punish less.
func lossFor(score int, b Bucket) int {
	rate := 0.05
	switch b {
	case BucketEasy:
		rate = 0.09
	case BucketMedium:
		rate = 0.07
	}
	l := int(math.Ceil(math.Max(4, float64(score)*rate)))
	return min(30, l)
}

// applyAnswer folds one answer into the score. A correct answer that
// lands at 96 or above snaps to 100; the result is always clamped to
// [0, 100].
func applyAnswer(score int, b Bucket, correct bool) int {
	ns := score
	if correct {
		ns += gainFor(score, b)
		if ns >= 96 {
			ns = 100
		}
	} else {
		ns -= lossFor(score, b)
	}
	return max(0, min(100, ns))
}
