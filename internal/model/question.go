package model

import "time"

// Question is a prompt the interviewer asks within a category. Evaluations
// never reference it.
type Question struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CategoryID   string    `gorm:"type:varchar(36);not null;index" json:"categoryId"`
	QuestionText string    `gorm:"type:text;not null" json:"questionText"`
	Order        int       `gorm:"column:sort_order;not null" json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
}
