// Package itemgen procedurally generates multiple-choice question
// banks for each skill. Every builder takes an rng.Source, returns a
// fixed-size bank, and guarantees that no two choices on an item are
// mathematically equivalent. Constraint misses (degenerate triangles,
// duplicate distractors) are resampled locally inside a bounded loop;
// the only errors callers see are configuration errors.
package itemgen

import "errors"

// level is the generation tier of a single item. Item difficulties are
// chosen so that each tier lands in the matching player bucket:
// easy <= 50 < medium <= 90 < hard.
type level int

const (
	levelEasy level = iota
	levelMedium
	levelHard
)

// levelCycle is the tier layout banks are built over: two easy, two
// medium, two hard, repeating.
var levelCycle = []level{levelEasy, levelEasy, levelMedium, levelMedium, levelHard, levelHard}

// visualColors are the accent colors cycled through generated visuals.
var visualColors = []string{"#ef4444", "#3b82f6", "#10b981"}

// maxSampleAttempts bounds every resampling loop. The sampling spaces
// are all far larger than the number of values needed, so hitting the
// bound means the configuration made the space empty.
const maxSampleAttempts = 1000

// errSamplingExhausted is returned when a bounded resampling loop runs
// out of attempts. With valid options this is unreachable.
var errSamplingExhausted = errors.New("itemgen: sampling exhausted")
