package request

type CreateArticleRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Content     string `json:"content" validate:"required"`
	IsPublished bool   `json:"isPublished"`
}

type UpdateArticleRequest struct {
	ID          string `json:"id" validate:"required,uuid4"`
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Content     string `json:"content" validate:"required"`
	IsPublished bool   `json:"isPublished"`
}
