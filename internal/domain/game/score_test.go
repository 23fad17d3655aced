package game

import "testing"

func TestScoreString(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{0.0, "0"},
		{6.5, "6.5"},
		{-6.5, "-6.5"},
		{0.5, "0.5"},
		{-0.5, "-0.5"},
		{6.0, "6"},
		{-6.0, "-6"},
		{375.5, "375.5"},
	}
	for _, c := range cases {
		if got := NewScore(c.value).String(); got != c.want {
			t.Errorf("NewScore(%v).String() = %q; want %q", c.value, got, c.want)
		}
	}
}

func TestScoreFromTenths(t *testing.T) {
	s := ScoreFromTenths(65)
	if s.Float64() != 6.5 {
		t.Errorf("Float64 = %v; want 6.5", s.Float64())
	}
	if s != NewScore(6.5) {
		t.Errorf("ScoreFromTenths(65) = %v; want %v", s, NewScore(6.5))
	}
}
