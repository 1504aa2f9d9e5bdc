package dto

import (
	"time"

	"github.com/usersnack/usersnack/internal/domain/model"
)

type CreatePizzaRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=100"`
	Description string   `json:"description" binding:"max=500"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Ingredients []string `json:"ingredients" binding:"required,min=1"`
	ImageURL    *string  `json:"image_url"`
}

type UpdatePizzaRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description" binding:"omitempty,max=500"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Ingredients []string `json:"ingredients" binding:"omitempty,min=1"`
	ImageURL    *string  `json:"image_url"`
}

type PizzaResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Ingredients []string  `json:"ingredients"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewPizzaResponse(p *model.Pizza) PizzaResponse {
	return PizzaResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Ingredients: p.Ingredients,
		ImageURL:    p.ImageURL,
		Available:   p.Available,
		CreatedAt:   p.CreatedAt,
	}
}

func NewPizzaResponses(pizzas []model.Pizza) []PizzaResponse {
	out := make([]PizzaResponse, 0, len(pizzas))
	for i := range pizzas {
		out = append(out, NewPizzaResponse(&pizzas[i]))
	}
	return out
}
