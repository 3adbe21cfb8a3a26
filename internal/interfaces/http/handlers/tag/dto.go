package tag

type CreateTagRequest struct {
	Name  string `json:"name" binding:"required,max=30"`
	Color string `json:"color" binding:"required,max=7"`
}

type UpdateTagRequest struct {
	Name  string `json:"name" binding:"required,max=30"`
	Color string `json:"color" binding:"omitempty,max=7"`
}
