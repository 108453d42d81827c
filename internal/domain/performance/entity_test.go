package performance

import "testing"

func TestOverallRating(t *testing.T) {
	cases := []struct {
		name   string
		review Performance
		want   float64
	}{
		{
			name:   "mixed ratings",
			review: Performance{TechnicalSkills: 4, Communication: 3, Teamwork: 4, Leadership: 3},
			want:   3.5,
		},
		{
			name:   "all fives",
			review: Performance{TechnicalSkills: 5, Communication: 5, Teamwork: 5, Leadership: 5},
			want:   5,
		},
		{
			name:   "rounds to two decimals",
			review: Performance{TechnicalSkills: 4, Communication: 4, Teamwork: 4, Leadership: 3},
			want:   3.75,
		},
		{
			name:   "repeating fraction",
			review: Performance{TechnicalSkills: 1, Communication: 1, Teamwork: 1, Leadership: 2},
			want:   1.25,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.review.OverallRating()
			if got != c.want {
				t.Errorf("OverallRating() = %v, want %v", got, c.want)
			}
		})
	}
}
