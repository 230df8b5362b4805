package dto

import "time"

// PageQuery is the page/limit pair shared by every listing.
type PageQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

type CreateFreelancerRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"required,email,max=120"`
	Phone string `json:"phone" binding:"required,max=20"`
}

type CreateEvaluationRequest struct {
	FreelancerID    string     `json:"freelancerId" binding:"required"`
	InterviewerName *string    `json:"interviewerName" binding:"omitempty,max=100"`
	ProjectName     *string    `json:"projectName" binding:"omitempty,max=200"`
	EvaluatedAt     *time.Time `json:"evaluatedAt"`
	Notes           *string    `json:"notes"`
}

// UpdateEvaluationRequest is a patch of the evaluation header. The total
// score is derived and cannot be set here.
type UpdateEvaluationRequest struct {
	InterviewerName *string    `json:"interviewerName" binding:"omitempty,max=100"`
	ProjectName     *string    `json:"projectName" binding:"omitempty,max=200"`
	EvaluatedAt     *time.Time `json:"evaluatedAt"`
	Notes           *string    `json:"notes"`
	Recommendation  *string    `json:"recommendation"`
}

// EvaluationListQuery is bound from the evaluation listing query string.
type EvaluationListQuery struct {
	PageQuery
	FreelancerID   string   `form:"freelancerId"`
	Recommendation string   `form:"recommendation"`
	MinScore       *float64 `form:"minScore"`
	SortBy         string   `form:"sortBy"`
	SortOrder      string   `form:"sortOrder"`
}

type AddCategoryScoreRequest struct {
	CategoryID   string  `json:"categoryId" binding:"required"`
	Score        float64 `json:"score"`
	ScoreLabel   string  `json:"scoreLabel"`
	CheckedCount int     `json:"checkedCount" binding:"min=0"`
}

type UpsertCategoryScoreRequest struct {
	Score        float64 `json:"score"`
	ScoreLabel   string  `json:"scoreLabel"`
	CheckedCount int     `json:"checkedCount" binding:"min=0"`
}

type AddCheckpointResultRequest struct {
	CheckpointID string  `json:"checkpointId" binding:"required"`
	IsChecked    *bool   `json:"isChecked"`
	Notes        *string `json:"notes"`
}

// UpsertCheckpointResultRequest leaves nil fields unchanged on an existing
// result.
type UpsertCheckpointResultRequest struct {
	IsChecked *bool   `json:"isChecked"`
	Notes     *string `json:"notes"`
}

type AddRedFlagFindingRequest struct {
	RedFlagID      string  `json:"redFlagId" binding:"required"`
	IsFound        *bool   `json:"isFound"`
	SeverityActual *string `json:"severityActual"`
	Evidence       *string `json:"evidence"`
}

type UpsertRedFlagFindingRequest struct {
	IsFound        *bool   `json:"isFound"`
	SeverityActual *string `json:"severityActual"`
	Evidence       *string `json:"evidence"`
}

type SetRecommendationRequest struct {
	Recommendation string  `json:"recommendation" binding:"required"`
	Notes          *string `json:"notes"`
}
