package itemgen

import (
	"sort"

	"github.com/ism7788/math-practice/internal/quiz"
	"github.com/ism7788/math-practice/internal/rng"
)

// Builder produces a fresh bank of items.
type Builder func() ([]quiz.Item, error)

// Registry maps skill IDs to bank builders. Skills without a dedicated
// generator fall back to the equivalent-fractions bank so every skill
// stays playable.
type Registry struct {
	src      rng.Source
	builders map[string]Builder
}

// NewRegistry wires the built-in generators against src and cfg.
func NewRegistry(src rng.Source, cfg Config) *Registry {
	r := &Registry{
		src:      src,
		builders: make(map[string]Builder),
	}

	fractions := func() ([]quiz.Item, error) { return BuildFractionsBank(src) }
	triangles := func() ([]quiz.Item, error) { return BuildTrianglesBank(src, cfg.TriangleOptions()) }

	r.builders["g4-fractions-equivalent"] = fractions
	r.builders["g4-triangles-classify"] = triangles
	r.builders["g5-triangles-classification"] = triangles
	r.builders["g4-add-100"] = func() ([]quiz.Item, error) { return BuildAdditionBank(src) }
	r.builders["g4-perimeter"] = func() ([]quiz.Item, error) { return BuildPerimeterBank(src) }
	return r
}

// BankFor builds a fresh bank for the skill, falling back to the
// fractions bank when the skill has no generator of its own.
func (r *Registry) BankFor(skillID string) ([]quiz.Item, error) {
	if b, ok := r.builders[skillID]; ok {
		return b()
	}
	return BuildFractionsBank(r.src)
}

// Registered reports whether the skill has a dedicated generator.
func (r *Registry) Registered(skillID string) bool {
	_, ok := r.builders[skillID]
	return ok
}

// Skills lists the skill IDs with dedicated generators, sorted.
func (r *Registry) Skills() []string {
	ids := make([]string, 0, len(r.builders))
	for id := range r.builders {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
