package dto

type CreateProjectRequestDTO struct {
	Name string `json:"name" binding:"required"`
}
