package scoring

// MaxCategoryScore is the ceiling of every rubric category. Categories carry a
// max_score column but the total is always normalized against this value.
const MaxCategoryScore float64 = 5.0

// Discrete category scores and the labels interviewers pick them by.
const (
	ScoreLow    float64 = 1.0
	ScoreMedium float64 = 3.0
	ScoreHigh   float64 = 5.0

	LabelLow    = "하(1)"
	LabelMedium = "중(3)"
	LabelHigh   = "상(5)"
)

var labelsByScore = map[float64]string{
	ScoreLow:    LabelLow,
	ScoreMedium: LabelMedium,
	ScoreHigh:   LabelHigh,
}

// ValidScore reports whether score is one of the three allowed values.
func ValidScore(score float64) bool {
	_, ok := labelsByScore[score]
	return ok
}

// LabelFor returns the label belonging to a valid score.
func LabelFor(score float64) (string, bool) {
	label, ok := labelsByScore[score]
	return label, ok
}

// ValidLabel reports whether label is one of the three allowed labels.
func ValidLabel(label string) bool {
	for _, l := range labelsByScore {
		if l == label {
			return true
		}
	}
	return false
}

// TotalScore turns category scores into a 0-100 total: the mean category score
// as a percentage of MaxCategoryScore. Category weights are not applied.
// An empty slice scores 0.
func TotalScore(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / (float64(len(scores)) * MaxCategoryScore) * 100
}
