package sentiment

import "testing"

func TestScoreEmptyIsNeutral(t *testing.T) {
	s := NewScorer()
	for _, text := range []string{"", "   ", "\n\t"} {
		if got := s.Score(text); got != 0 {
			t.Errorf("Score(%q) = %v, want 0", text, got)
		}
	}
}

func TestScoreRange(t *testing.T) {
	s := NewScorer()
	inputs := []string{
		"I am happy",
		"This was a terrible, sad day",
		"!!!",
		"...",
		"오늘은 날씨가 좋았다",
		"12345 67890",
		"a perfectly wonderful amazing fantastic great day",
		"awful horrible disgusting terrible worst",
	}
	for _, text := range inputs {
		got := s.Score(text)
		if got < -1 || got > 1 {
			t.Errorf("Score(%q) = %v, out of [-1, 1]", text, got)
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	s := NewScorer()
	for _, text := range []string{"I am happy", "a mixed day, good and bad"} {
		first := s.Score(text)
		for i := 0; i < 5; i++ {
			if got := s.Score(text); got != first {
				t.Fatalf("Score(%q) varied: %v then %v", text, first, got)
			}
		}
	}
}

func TestScorePolarity(t *testing.T) {
	s := NewScorer()

	if got := s.Score("I am happy"); got <= 0 {
		t.Errorf("Score(positive text) = %v, want > 0", got)
	}
	if got := s.Score("I am sad and everything is terrible"); got >= 0 {
		t.Errorf("Score(negative text) = %v, want < 0", got)
	}
}
