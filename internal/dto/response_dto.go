package dto

import (
	"time"

	"github.com/supermanager/interview-eval/internal/scoring"
)

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Weight      int       `json:"weight"`
	MaxScore    float64   `json:"maxScore"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
}

type QuestionResponse struct {
	ID           string    `json:"id"`
	CategoryID   string    `json:"categoryId"`
	QuestionText string    `json:"questionText"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CheckpointResponse struct {
	ID             string    `json:"id"`
	CategoryID     string    `json:"categoryId"`
	CheckpointText string    `json:"checkpointText"`
	Order          int       `json:"order"`
	CreatedAt      time.Time `json:"createdAt"`
}

type RedFlagResponse struct {
	ID         string           `json:"id"`
	CategoryID string           `json:"categoryId"`
	FlagText   string           `json:"flagText"`
	Severity   scoring.Severity `json:"severity"`
	Order      int              `json:"order"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// RubricCategoryResponse is one category of the interviewer's form with its
// items in display order.
type RubricCategoryResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description *string              `json:"description"`
	Weight      int                  `json:"weight"`
	MaxScore    float64              `json:"maxScore"`
	Order       int                  `json:"order"`
	Questions   []QuestionResponse   `json:"questions"`
	Checkpoints []CheckpointResponse `json:"checkpoints"`
	RedFlags    []RedFlagResponse    `json:"redFlags"`
}

type RubricResponse struct {
	Categories []RubricCategoryResponse `json:"categories"`
}

// DeletionImpactResponse reports what a cascading delete removes. Deleted is
// false when the caller has not confirmed yet.
type DeletionImpactResponse struct {
	Deleted           bool  `json:"deleted"`
	Questions         int64 `json:"questions"`
	Checkpoints       int64 `json:"checkpoints"`
	RedFlags          int64 `json:"redFlags"`
	CategoryScores    int64 `json:"categoryScores"`
	CheckpointResults int64 `json:"checkpointResults"`
	RedFlagFindings   int64 `json:"redFlagFindings"`
}

type FreelancerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type EvaluationResponse struct {
	ID              string                  `json:"id"`
	FreelancerID    string                  `json:"freelancerId"`
	InterviewerName *string                 `json:"interviewerName"`
	ProjectName     *string                 `json:"projectName"`
	TotalScore      *float64                `json:"totalScore"`
	Recommendation  *scoring.Recommendation `json:"recommendation"`
	Notes           *string                 `json:"notes"`
	EvaluatedAt     time.Time               `json:"evaluatedAt"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

// EvaluationDetailResponse is an evaluation with its child collections joined
// to the rubric texts.
type EvaluationDetailResponse struct {
	EvaluationResponse
	CategoryScores    []CategoryScoreResponse    `json:"categoryScores"`
	CheckpointResults []CheckpointResultResponse `json:"checkpointResults"`
	RedFlagFindings   []RedFlagFindingResponse   `json:"redFlagFindings"`
}

type CategoryScoreResponse struct {
	ID           string    `json:"id"`
	EvaluationID string    `json:"evaluationId"`
	CategoryID   string    `json:"categoryId"`
	CategoryName *string   `json:"categoryName"`
	Score        float64   `json:"score"`
	ScoreLabel   string    `json:"scoreLabel"`
	CheckedCount int       `json:"checkedCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CheckpointResultResponse struct {
	ID             string    `json:"id"`
	EvaluationID   string    `json:"evaluationId"`
	CheckpointID   string    `json:"checkpointId"`
	CheckpointText *string   `json:"checkpointText"`
	IsChecked      bool      `json:"isChecked"`
	Notes          *string   `json:"notes"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type RedFlagFindingResponse struct {
	ID             string            `json:"id"`
	EvaluationID   string            `json:"evaluationId"`
	RedFlagID      string            `json:"redFlagId"`
	FlagText       *string           `json:"flagText"`
	IsFound        bool              `json:"isFound"`
	SeverityActual *scoring.Severity `json:"severityActual"`
	Evidence       *string           `json:"evidence"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

type TotalScoreResponse struct {
	TotalScore float64 `json:"totalScore"`
}

// PageResponse is the envelope returned by every listing.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewPageResponse builds the envelope; totalPages is 0 for an empty result.
func NewPageResponse[T any](data []T, total int64, page, limit int) *PageResponse[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &PageResponse[T]{Data: data, Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
