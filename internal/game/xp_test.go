package game

import "testing"

func TestLevelUpThreshold(t *testing.T) {
	cases := []struct {
		level int
		want  int
	}{
		{1, 100},
		{2, 200},
		{10, 1000},
		{0, 100},
	}
	for _, tc := range cases {
		if got := LevelUpThreshold(tc.level); got != tc.want {
			t.Fatalf("LevelUpThreshold(%d) = %d, want %d", tc.level, got, tc.want)
		}
	}
}
