package dto

type CreateExpenseCategoryRequest struct {
	Name        string  `json:"name"        validate:"required,max=255"`
	Description *string `json:"description"`
	Color       *string `json:"color"       validate:"omitempty,max=7"`
}

type UpdateExpenseCategoryRequest struct {
	Name        *string `json:"name"        validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Color       *string `json:"color"       validate:"omitempty,max=7"`
	IsActive    *bool   `json:"is_active"`
}

type ExpenseCategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	IsActive    bool    `json:"is_active"`
}
