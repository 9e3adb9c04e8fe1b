package prompt

// CreatePromptDTO is the admin payload for a new prompt.
type CreatePromptDTO struct {
	Slug        string  `json:"slug"        binding:"required"`
	Title       string  `json:"title"       binding:"required"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	PromptCode  string  `json:"prompt_code" binding:"required"`
	CategoryID  *string `json:"category_id"`
	ModelID     *string `json:"model_id"`
	Status      string  `json:"status"`
}

// UpdatePromptDTO carries partial updates; nil fields are left untouched.
type UpdatePromptDTO struct {
	Slug        *string `json:"slug"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	PromptCode  *string `json:"prompt_code"`
	CategoryID  *string `json:"category_id"`
	ModelID     *string `json:"model_id"`
	Status      *string `json:"status"`
}

// ListQuery narrows the public prompt listing.
type ListQuery struct {
	CategorySlug string
	ModelName    string
	Search       string
}
