package dto

import (
	"time"

	"github.com/usersnack/usersnack/internal/domain/model"
)

type CreateUserRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=100"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone" binding:"omitempty,min=10,max=20"`
	Address  *string `json:"address" binding:"omitempty,min=1,max=500"`
	Password string  `json:"password" binding:"required,min=8"`
}

type UpdateUserRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone" binding:"omitempty,min=10,max=20"`
	Address *string `json:"address" binding:"omitempty,min=1,max=500"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
