package landing

type CreateBlockRequest struct {
	Slug        string `json:"slug" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Body        string `json:"body"`
	Position    int    `json:"position"`
	IsPublished bool   `json:"is_published"`
}

type UpdateBlockRequest struct {
	Title       *string `json:"title,omitempty"`
	Body        *string `json:"body,omitempty"`
	Position    *int    `json:"position,omitempty"`
	IsPublished *bool   `json:"is_published,omitempty"`
}
