// Package catalog is the central skill list. Adding a skill here makes
// it show up everywhere; wiring a generator for it is optional since
// unregistered skills fall back to a default bank.
package catalog

// Skill is one practiceable topic.
type Skill struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Grade int    `json:"grade"`
}

var skills = []Skill{
	{ID: "g4-fractions-equivalent", Title: "Equivalent Fractions", Grade: 4},
	{ID: "g5-triangles-classification", Title: "Classify Triangles", Grade: 5},
	{ID: "g6-decimals-compare", Title: "Compare Decimals", Grade: 6},
	{ID: "g7-proportions-intro", Title: "Intro to Proportions", Grade: 7},
	{ID: "g4-triangles-classify", Title: "Classify Triangles (sides)", Grade: 4},
	{ID: "g4-add-100", Title: "Addition within 100", Grade: 4},
	{ID: "g4-perimeter", Title: "Perimeter (rectangles & triangles)", Grade: 4},
}

// Skills returns the full catalog in display order.
func Skills() []Skill {
	out := make([]Skill, len(skills))
	copy(out, skills)
	return out
}

// Get looks up a skill by ID.
func Get(id string) (Skill, bool) {
	for _, s := range skills {
		if s.ID == id {
			return s, true
		}
	}
	return Skill{}, false
}

// ByGrade returns the skills for one grade, in display order.
func ByGrade(grade int) []Skill {
	var out []Skill
	for _, s := range skills {
		if s.Grade == grade {
			out = append(out, s)
		}
	}
	return out
}
