package catalog

import "testing"

func TestGet(t *testing.T) {
	s, ok := Get("g4-add-100")
	if !ok {
		t.Fatal("g4-add-100 not found")
	}
	if s.Title != "Addition within 100" || s.Grade != 4 {
		t.Errorf("unexpected skill: %+v", s)
	}

	if _, ok := Get("nope"); ok {
		t.Error("Get(nope) should miss")
	}
}

func TestByGrade(t *testing.T) {
	g4 := ByGrade(4)
	if len(g4) != 4 {
		t.Fatalf("grade 4 has %d skills, want 4", len(g4))
	}
	for _, s := range g4 {
		if s.Grade != 4 {
			t.Errorf("skill %s has grade %d", s.ID, s.Grade)
		}
	}

	if got := ByGrade(1); got != nil {
		t.Errorf("grade 1 skills = %v, want none", got)
	}
}

func TestSkillsIsACopy(t *testing.T) {
	a := Skills()
	a[0].Title = "mutated"
	b := Skills()
	if b[0].Title == "mutated" {
		t.Error("Skills() exposes internal slice")
	}
}
