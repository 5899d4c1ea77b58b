package request

import (
	"bookhaven/internal/usecase"
)

type CreateBookRequest struct {
	Title       string  `json:"title" binding:"required,max=500"`
	Author      string  `json:"author" binding:"required,max=200"`
	Genre       string  `json:"genre" binding:"required,max=100"`
	Description string  `json:"description" binding:"max=5000"`
	Rating      float64 `json:"rating" binding:"min=0,max=5"`
	Image       string  `json:"image" binding:"omitempty,url"`
	Quantity    int32   `json:"quantity" binding:"min=0"`
}

func (r CreateBookRequest) ToParams() usecase.CreateBookParams {
	return usecase.CreateBookParams{
		Title:       r.Title,
		Author:      r.Author,
		Genre:       r.Genre,
		Description: r.Description,
		Rating:      r.Rating,
		ImageURL:    r.Image,
		Quantity:    r.Quantity,
	}
}

type UpdateBookRequest struct {
	Title       *string  `json:"title,omitempty" binding:"omitempty,max=500"`
	Author      *string  `json:"author,omitempty" binding:"omitempty,max=200"`
	Genre       *string  `json:"genre,omitempty" binding:"omitempty,max=100"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=5000"`
	Rating      *float64 `json:"rating,omitempty" binding:"omitempty,min=0,max=5"`
	Image       *string  `json:"image,omitempty" binding:"omitempty,url"`
}

func (r UpdateBookRequest) ToParams() usecase.UpdateBookParams {
	return usecase.UpdateBookParams{
		Title:       r.Title,
		Author:      r.Author,
		Genre:       r.Genre,
		Description: r.Description,
		Rating:      r.Rating,
		ImageURL:    r.Image,
	}
}
