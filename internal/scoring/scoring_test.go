package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalScore(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   float64
	}{
		{name: "no categories", scores: nil, want: 0},
		{name: "single top score", scores: []float64{5}, want: 100},
		{name: "single bottom score", scores: []float64{1}, want: 20},
		{name: "mixed four categories", scores: []float64{5, 3, 5, 3}, want: 80},
		{name: "all middle", scores: []float64{3, 3, 3}, want: 60},
		{name: "all bottom", scores: []float64{1, 1, 1, 1}, want: 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalScore(tt.scores))
		})
	}
}

func TestTotalScoreStaysInRange(t *testing.T) {
	allowed := []float64{ScoreLow, ScoreMedium, ScoreHigh}
	for n := 1; n <= 6; n++ {
		scores := make([]float64, n)
		for i := range scores {
			scores[i] = allowed[(i*7+n)%len(allowed)]
		}
		got := TotalScore(scores)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
	}
}

func TestScoresAndLabels(t *testing.T) {
	for _, s := range []float64{1, 3, 5} {
		assert.True(t, ValidScore(s), "score %v", s)
		label, ok := LabelFor(s)
		assert.True(t, ok)
		assert.True(t, ValidLabel(label))
	}
	for _, s := range []float64{0, 2, 4, 4.5, 6, -1} {
		assert.False(t, ValidScore(s), "score %v", s)
	}

	assert.False(t, ValidLabel("최상"))
	assert.False(t, ValidLabel(""))
	high, _ := LabelFor(ScoreHigh)
	assert.NotEqual(t, LabelLow, high)
	_, ok := LabelFor(2)
	assert.False(t, ok)
}

func TestSeverityValid(t *testing.T) {
	for _, s := range []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical} {
		assert.True(t, s.Valid())
	}
	assert.False(t, Severity("severe").Valid())
	assert.False(t, Severity("").Valid())
}

func TestRecommendationValid(t *testing.T) {
	for _, r := range []Recommendation{RecommendationRecommend, RecommendationNotRecommend, RecommendationPending} {
		assert.True(t, r.Valid())
	}
	assert.False(t, Recommendation("maybe").Valid())
	assert.False(t, Recommendation("").Valid())
}
