package model

import (
	"time"

	"github.com/supermanager/interview-eval/internal/scoring"
)

// Checkpoint is a behaviour the interviewer confirms (or not) per evaluation.
type Checkpoint struct {
	ID             string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CategoryID     string    `gorm:"type:varchar(36);not null;index" json:"categoryId"`
	CheckpointText string    `gorm:"type:text;not null" json:"checkpointText"`
	Order          int       `gorm:"column:sort_order;not null" json:"order"`
	CreatedAt      time.Time `json:"createdAt"`
}

// RedFlag is a warning sign the interviewer watches for within a category.
type RedFlag struct {
	ID         string           `gorm:"type:varchar(36);primaryKey" json:"id"`
	CategoryID string           `gorm:"type:varchar(36);not null;index" json:"categoryId"`
	FlagText   string           `gorm:"type:text;not null" json:"flagText"`
	Severity   scoring.Severity `gorm:"type:varchar(20);not null" json:"severity"`
	Order      int              `gorm:"column:sort_order;not null" json:"order"`
	CreatedAt  time.Time        `json:"createdAt"`
}
