package dto

import (
	"time"

	"github.com/usersnack/usersnack/internal/domain/model"
)

type CreateExtraRequest struct {
	Name  string  `json:"name" binding:"required,min=1,max=100"`
	Price float64 `json:"price" binding:"required,gt=0"`
}

type UpdateExtraRequest struct {
	Name  *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Price *float64 `json:"price" binding:"omitempty,gt=0"`
}

type ExtraResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
}

func NewExtraResponse(e *model.Extra) ExtraResponse {
	return ExtraResponse{
		ID:        e.ID,
		Name:      e.Name,
		Price:     e.Price,
		Available: e.Available,
		CreatedAt: e.CreatedAt,
	}
}

func NewExtraResponses(extras []model.Extra) []ExtraResponse {
	out := make([]ExtraResponse, 0, len(extras))
	for i := range extras {
		out = append(out, NewExtraResponse(&extras[i]))
	}
	return out
}
