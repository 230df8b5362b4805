package dto

// CreateCategoryRequest creates a rubric category. Omitted numeric fields take
// the defaults weight=1, maxScore=5.0, order=0.
type CreateCategoryRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description *string  `json:"description"`
	Weight      *int     `json:"weight" binding:"omitempty,min=0"`
	MaxScore    *float64 `json:"maxScore" binding:"omitempty,gt=0"`
	Order       *int     `json:"order" binding:"omitempty,min=0"`
}

// UpdateCategoryRequest is a patch: nil fields are left unchanged.
type UpdateCategoryRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description"`
	Weight      *int     `json:"weight" binding:"omitempty,min=0"`
	MaxScore    *float64 `json:"maxScore" binding:"omitempty,gt=0"`
	Order       *int     `json:"order" binding:"omitempty,min=0"`
}

type CreateQuestionRequest struct {
	CategoryID   string `json:"categoryId" binding:"required"`
	QuestionText string `json:"questionText" binding:"required"`
	Order        int    `json:"order" binding:"min=0"`
}

type UpdateQuestionRequest struct {
	QuestionText *string `json:"questionText" binding:"omitempty,min=1"`
	Order        *int    `json:"order" binding:"omitempty,min=0"`
}

type CreateCheckpointRequest struct {
	CategoryID     string `json:"categoryId" binding:"required"`
	CheckpointText string `json:"checkpointText" binding:"required"`
	Order          int    `json:"order" binding:"min=0"`
}

type UpdateCheckpointRequest struct {
	CheckpointText *string `json:"checkpointText" binding:"omitempty,min=1"`
	Order          *int    `json:"order" binding:"omitempty,min=0"`
}

// CreateRedFlagRequest creates a red flag; severity defaults to "medium".
type CreateRedFlagRequest struct {
	CategoryID string  `json:"categoryId" binding:"required"`
	FlagText   string  `json:"flagText" binding:"required"`
	Severity   *string `json:"severity"`
	Order      int     `json:"order" binding:"min=0"`
}

type UpdateRedFlagRequest struct {
	FlagText *string `json:"flagText" binding:"omitempty,min=1"`
	Severity *string `json:"severity"`
	Order    *int    `json:"order" binding:"omitempty,min=0"`
}

// CategoryListQuery is bound from the category listing query string.
type CategoryListQuery struct {
	PageQuery
	Search    string `form:"search"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}
