package model

import (
	"time"

	"github.com/supermanager/interview-eval/internal/scoring"
)

// Evaluation is one interview of one freelancer. It owns its category scores,
// checkpoint results and red flag findings; deleting it deletes all three.
type Evaluation struct {
	ID                string                  `gorm:"type:varchar(36);primaryKey" json:"id"`
	FreelancerID      string                  `gorm:"type:varchar(36);not null;index" json:"freelancerId"`
	Freelancer        *Freelancer             `gorm:"foreignKey:FreelancerID;constraint:OnDelete:CASCADE" json:"-"`
	InterviewerName   *string                 `gorm:"type:varchar(100)" json:"interviewerName,omitempty"`
	ProjectName       *string                 `gorm:"type:varchar(200)" json:"projectName,omitempty"`
	TotalScore        *float64                `json:"totalScore,omitempty"` // nil until calculated
	Recommendation    *scoring.Recommendation `gorm:"type:varchar(50);index" json:"recommendation,omitempty"`
	Notes             *string                 `gorm:"type:text" json:"notes,omitempty"`
	EvaluatedAt       time.Time               `gorm:"not null;index" json:"evaluatedAt"`
	CategoryScores    []CategoryScore         `gorm:"foreignKey:EvaluationID;constraint:OnDelete:CASCADE" json:"categoryScores,omitempty"`
	CheckpointResults []CheckpointResult      `gorm:"foreignKey:EvaluationID;constraint:OnDelete:CASCADE" json:"checkpointResults,omitempty"`
	RedFlagFindings   []RedFlagFinding        `gorm:"foreignKey:EvaluationID;constraint:OnDelete:CASCADE" json:"redFlagFindings,omitempty"`
	CreatedAt         time.Time               `json:"createdAt"`
	UpdatedAt         time.Time               `json:"updatedAt"`
}

// CategoryScore is the interviewer's 1/3/5 grade for one category.
type CategoryScore struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	EvaluationID string    `gorm:"type:varchar(36);not null;uniqueIndex:uq_eval_category" json:"evaluationId"`
	CategoryID   string    `gorm:"type:varchar(36);not null;uniqueIndex:uq_eval_category;index" json:"categoryId"`
	Category     *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"`
	Score        float64   `gorm:"not null" json:"score"`
	ScoreLabel   string    `gorm:"type:varchar(20);not null" json:"scoreLabel"`
	CheckedCount int       `gorm:"not null" json:"checkedCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CheckpointResult records whether a checkpoint was confirmed in an evaluation.
type CheckpointResult struct {
	ID           string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	EvaluationID string      `gorm:"type:varchar(36);not null;uniqueIndex:uq_eval_checkpoint" json:"evaluationId"`
	CheckpointID string      `gorm:"type:varchar(36);not null;uniqueIndex:uq_eval_checkpoint;index" json:"checkpointId"`
	Checkpoint   *Checkpoint `gorm:"foreignKey:CheckpointID;constraint:OnDelete:CASCADE" json:"checkpoint,omitempty"`
	IsChecked    bool        `gorm:"not null" json:"isChecked"`
	Notes        *string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// RedFlagFinding records whether a red flag was observed in an evaluation.
type RedFlagFinding struct {
	ID             string            `gorm:"type:varchar(36);primaryKey" json:"id"`
	EvaluationID   string            `gorm:"type:varchar(36);not null;uniqueIndex:uq_eval_red_flag" json:"evaluationId"`
	RedFlagID      string            `gorm:"type:varchar(36);not null;uniqueIndex:uq_eval_red_flag;index" json:"redFlagId"`
	RedFlag        *RedFlag          `gorm:"foreignKey:RedFlagID;constraint:OnDelete:CASCADE" json:"redFlag,omitempty"`
	IsFound        bool              `gorm:"not null" json:"isFound"`
	SeverityActual *scoring.Severity `gorm:"type:varchar(20)" json:"severityActual,omitempty"`
	Evidence       *string           `gorm:"type:text" json:"evidence,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}
