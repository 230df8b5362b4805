package model

import (
	"time"
)

// Category is one section of the interview rubric. It owns its questions,
// checkpoints and red flags.
type Category struct {
	ID          string       `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string       `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Description *string      `gorm:"type:text" json:"description,omitempty"`
	Weight      int          `gorm:"not null" json:"weight"` // informational, not used by the total score
	MaxScore    float64      `gorm:"not null" json:"maxScore"`
	Order       int          `gorm:"column:sort_order;not null" json:"order"`
	Questions   []Question   `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	Checkpoints []Checkpoint `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"checkpoints,omitempty"`
	RedFlags    []RedFlag    `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"redFlags,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}
