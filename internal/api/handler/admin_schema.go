package handler

// okResponse acknowledges a successful mutation.
type okResponse struct {
	OK bool `json:"ok"`
}

// Patch payloads use pointers throughout: absent fields stay unchanged.

type updateUserRequest struct {
	Name   *string `json:"name"`
	Role   *string `json:"role"   validate:"omitempty,oneof=user admin"`
	Active *bool   `json:"active"`
}

type updateIssueRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=reported in_progress resolved rejected"`
	CategoryID  *int64  `json:"category_id"`
	Priority    *string `json:"priority"`
}

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}
