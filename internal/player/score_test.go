package player

import "testing"

func TestBucketFor(t *testing.T) {
	tests := []struct {
		v    int
		want Bucket
	}{
		{0, BucketEasy},
		{35, BucketEasy},
		{50, BucketEasy},
		{51, BucketMedium},
		{70, BucketMedium},
		{90, BucketMedium},
		{91, BucketHard},
		{100, BucketHard},
	}
	for _, tt := range tests {
		if got := BucketFor(tt.v); got != tt.want {
			t.Errorf("BucketFor(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestGainFor(t *testing.T) {
	tests := []struct {
		score int
		b     Bucket
		want  int
	}{
		// ceil((100-score)*rate), capped at 15
		{0, BucketEasy, 15},   // ceil(100*.16)=16 -> 15
		{0, BucketMedium, 15}, // ceil(100*.20)=20 -> 15
		{0, BucketHard, 15},   // ceil(100*.25)=25 -> 15
		{50, BucketEasy, 8},   // ceil(50*.16)=8
		{50, BucketMedium, 10},
		{50, BucketHard, 13}, // ceil(12.5)=13
		{90, BucketEasy, 2},  // ceil(1.6)=2
		{90, BucketHard, 3},  // ceil(2.5)=3
		{99, BucketEasy, 1},
		{100, BucketEasy, 0},
	}
	for _, tt := range tests {
		if got := gainFor(tt.score, tt.b); got != tt.want {
			t.Errorf("gainFor(%d, %v) = %d, want %d", tt.score, tt.b, got, tt.want)
		}
	}
}

func TestLossFor(t *testing.T) {
	tests := []struct {
		score int
		b     Bucket
		want  int
	}{
		// ceil(max(4, score*rate)), capped at 30
		{0, BucketEasy, 4}, // floor of 4
		{0, BucketHard, 4},
		{40, BucketEasy, 4},   // 3.6 -> floor 4
		{50, BucketEasy, 5},   // ceil(4.5)=5
		{100, BucketEasy, 9},  // ceil(9)=9
		{100, BucketMedium, 7},
		{100, BucketHard, 5},
	}
	for _, tt := range tests {
		if got := lossFor(tt.score, tt.b); got != tt.want {
			t.Errorf("lossFor(%d, %v) = %d, want %d", tt.score, tt.b, got, tt.want)
		}
	}
}

func TestApplyAnswer(t *testing.T) {
	tests := []struct {
		name    string
		score   int
		b       Bucket
		correct bool
		want    int
	}{
		{"gain from zero", 0, BucketMedium, true, 15},
		{"loss floors at zero", 0, BucketEasy, false, 0},
		{"loss from mid", 50, BucketEasy, false, 45},
		{"below snap threshold", 90, BucketHard, true, 93},
		{"snaps to 100 at 96+", 95, BucketHard, true, 100},
		{"cap at 100", 100, BucketEasy, true, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := applyAnswer(tt.score, tt.b, tt.correct); got != tt.want {
				t.Errorf("applyAnswer(%d, %v, %v) = %d, want %d", tt.score, tt.b, tt.correct, got, tt.want)
			}
		})
	}
}
