package scoring

// Severity grades a red flag, both as authored on the rubric and as observed
// during an interview.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Recommendation is the hiring outcome recorded on an evaluation. A nil
// *Recommendation on the evaluation means nothing has been decided yet.
type Recommendation string

const (
	RecommendationRecommend    Recommendation = "recommend"
	RecommendationNotRecommend Recommendation = "not_recommend"
	RecommendationPending      Recommendation = "pending"
)

func (r Recommendation) Valid() bool {
	switch r {
	case RecommendationRecommend, RecommendationNotRecommend, RecommendationPending:
		return true
	}
	return false
}
