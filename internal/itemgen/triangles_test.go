package itemgen

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ism7788/math-practice/internal/quiz"
	"github.com/ism7788/math-practice/internal/rng"
)

func TestTriangleOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TriangleOptions)
		wantErr bool
	}{
		{"defaults", func(o *TriangleOptions) {}, false},
		{"zero count", func(o *TriangleOptions) { o.Count = 0 }, true},
		{"min side zero", func(o *TriangleOptions) { o.MinSide = 0 }, true},
		{"range too narrow", func(o *TriangleOptions) { o.MinSide = 5; o.MaxSide = 6 }, true},
		{"mix below zero", func(o *TriangleOptions) { o.SidesMix = -0.1 }, true},
		{"mix above one", func(o *TriangleOptions) { o.SidesMix = 1.1 }, true},
		{"mix all sides", func(o *TriangleOptions) { o.SidesMix = 1 }, false},
		{"unknown policy", func(o *TriangleOptions) { o.Visuals = "sometimes" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultTriangleOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTrianglesBankRejectsBadOptions(t *testing.T) {
	opts := DefaultTriangleOptions()
	opts.MaxSide = opts.MinSide
	if _, err := BuildTrianglesBank(rng.NewSeeded(1), opts); err == nil {
		t.Fatal("expected error for invalid options")
	}
}

func sidesFromStem(t *testing.T, stem string) (int, int, int) {
	t.Helper()
	var a, b, c int
	_, err := fmt.Sscanf(stem, "Classify the triangle with side lengths %d, %d, and %d.", &a, &b, &c)
	if err != nil {
		t.Fatalf("parse stem %q: %v", stem, err)
	}
	return a, b, c
}

func TestTrianglesSidesClassificationIsConsistent(t *testing.T) {
	opts := DefaultTriangleOptions()
	opts.SidesMix = 1
	opts.Visuals = VisualsNever

	for seed := uint64(1); seed <= 10; seed++ {
		bank, err := BuildTrianglesBank(rng.NewSeeded(seed), opts)
		if err != nil {
			t.Fatal(err)
		}
		if len(bank) != opts.Count {
			t.Fatalf("bank size = %d, want %d", len(bank), opts.Count)
		}
		for _, it := range bank {
			a, b, c := sidesFromStem(t, it.Stem.Plain)
			if !isTriangle(a, b, c) {
				t.Errorf("seed %d item %s: sides %d,%d,%d violate triangle inequality", seed, it.ID, a, b, c)
			}
			if a < opts.MinSide || b < opts.MinSide || c < opts.MinSide ||
				a > opts.MaxSide || b > opts.MaxSide || c > opts.MaxSide {
				t.Errorf("seed %d item %s: sides %d,%d,%d out of [%d,%d]", seed, it.ID, a, b, c, opts.MinSide, opts.MaxSide)
			}

			var want string
			switch {
			case a == b && b == c:
				want = "Equilateral"
			case a == b || a == c || b == c:
				want = "Isosceles"
			default:
				want = "Scalene"
			}
			got := it.Choices[it.Correct[0]].Plain
			if got != want {
				t.Errorf("seed %d item %s: sides %d,%d,%d classified %q, want %q", seed, it.ID, a, b, c, got, want)
			}
		}
	}
}

func TestTrianglesAnglesClassificationIsConsistent(t *testing.T) {
	opts := DefaultTriangleOptions()
	opts.SidesMix = 0
	opts.Visuals = VisualsNever

	for seed := uint64(1); seed <= 10; seed++ {
		bank, err := BuildTrianglesBank(rng.NewSeeded(seed), opts)
		if err != nil {
			t.Fatal(err)
		}
		for _, it := range bank {
			var a, b, c int
			stem := strings.ReplaceAll(it.Stem.Plain, "°", "")
			_, err := fmt.Sscanf(stem, "Classify the triangle with angles %d, %d, and %d.", &a, &b, &c)
			if err != nil {
				t.Fatalf("parse stem %q: %v", it.Stem.Plain, err)
			}
			if a+b+c != 180 {
				t.Errorf("seed %d item %s: angles sum to %d", seed, it.ID, a+b+c)
			}

			biggest := max(a, max(b, c))
			var want string
			switch {
			case biggest > 90:
				want = "Obtuse"
			case biggest == 90:
				want = "Right"
			default:
				want = "Acute"
			}
			got := it.Choices[it.Correct[0]].Plain
			if got != want {
				t.Errorf("seed %d item %s: angles %d,%d,%d classified %q, want %q", seed, it.ID, a, b, c, got, want)
			}
		}
	}
}

func TestTrianglesVisualPolicy(t *testing.T) {
	tests := []struct {
		policy    VisualPolicy
		wantEasy  bool
		wantHard  bool
	}{
		{VisualsNever, false, false},
		{VisualsAlways, true, true},
		{VisualsMediumUp, false, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			opts := DefaultTriangleOptions()
			opts.Visuals = tt.policy
			bank, err := BuildTrianglesBank(rng.NewSeeded(3), opts)
			if err != nil {
				t.Fatal(err)
			}
			for i, it := range bank {
				lv := levelCycle[i%len(levelCycle)]
				want := tt.wantHard
				if lv == levelEasy {
					want = tt.wantEasy
				}
				if got := it.Visual != nil; got != want {
					t.Errorf("item %s (level %d): visual present = %v, want %v", it.ID, lv, got, want)
				}
			}
		})
	}
}

func TestTrianglesVisualMatchesAnswer(t *testing.T) {
	opts := DefaultTriangleOptions()
	opts.Visuals = VisualsAlways
	bank, err := BuildTrianglesBank(rng.NewSeeded(8), opts)
	if err != nil {
		t.Fatal(err)
	}
	for _, it := range bank {
		if v, ok := it.Visual.(quiz.TriangleAnglesSpec); ok {
			want := map[quiz.TriangleClass]string{
				quiz.ClassAcute:  "Acute",
				quiz.ClassRight:  "Right",
				quiz.ClassObtuse: "Obtuse",
			}[v.Class]
			if got := it.Choices[it.Correct[0]].Plain; got != want {
				t.Errorf("item %s: visual class %q but answer %q", it.ID, v.Class, got)
			}
		}
	}
}
