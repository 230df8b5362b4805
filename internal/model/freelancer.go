package model

import "time"

// Freelancer is the candidate being interviewed. Profile, portfolio and review
// data live elsewhere; evaluations only need the row to exist.
type Freelancer struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;index" json:"name"`
	Email     string    `gorm:"type:varchar(120);not null;uniqueIndex" json:"email"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
